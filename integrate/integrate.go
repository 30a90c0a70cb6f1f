/*
Copyright © 2018 the PolyKin authors.
This file is part of PolyKin.

PolyKin is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

PolyKin is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with PolyKin.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package integrate provides a fixed-step integrator for systems of
// ordinary differential equations whose right-hand side is supplied by
// an external derivative engine.
package integrate

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Integrable is an ODE system that can be advanced through time.
// Implementations manage their own state between steps.
type Integrable interface {
	// GetState returns the current state vector.
	GetState() []float64

	// SetState stores the state vector s reached at time t.
	SetState(t float64, s []float64)

	// Derivative returns the time derivative of the state s at time t.
	// The returned slice must be a fresh allocation.
	Derivative(t float64, s []float64) []float64

	// Done reports whether integration should stop at time t.
	Done(t float64) bool
}

// RK4 is a classical fourth-order Runge-Kutta integrator with a fixed
// step size.
type RK4 struct {
	T0       float64 // start time
	StepSize float64 // fixed step, in the system's time units
	System   Integrable
}

// NewRK4 returns a new RK4 integrator. The step size must be positive.
func NewRK4(t0, stepSize float64, system Integrable) (*RK4, error) {
	if stepSize <= 0 {
		return nil, fmt.Errorf("integrate: step size %g must be positive", stepSize)
	}
	if system == nil {
		return nil, fmt.Errorf("integrate: system may not be nil")
	}
	return &RK4{T0: t0, StepSize: stepSize, System: system}, nil
}

// Solve advances the system until Done reports true, returning the
// number of steps taken and the final time.
func (r *RK4) Solve() (steps int, t float64) {
	t = r.T0
	h := r.StepSize
	for !r.System.Done(t) {
		state := r.System.GetState()
		n := len(state)
		tmp := make([]float64, n)

		k1 := r.System.Derivative(t, state)

		floats.AddScaledTo(tmp, state, h/2, k1)
		k2 := r.System.Derivative(t+h/2, tmp)

		floats.AddScaledTo(tmp, state, h/2, k2)
		k3 := r.System.Derivative(t+h/2, tmp)

		floats.AddScaledTo(tmp, state, h, k3)
		k4 := r.System.Derivative(t+h, tmp)

		next := make([]float64, n)
		copy(next, state)
		floats.AddScaled(next, h/6, k1)
		floats.AddScaled(next, h/3, k2)
		floats.AddScaled(next, h/3, k3)
		floats.AddScaled(next, h/6, k4)

		t += h
		steps++
		r.System.SetState(t, next)
	}
	return steps, t
}
