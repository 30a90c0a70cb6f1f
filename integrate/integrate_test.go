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

package integrate

import (
	"math"
	"testing"
)

// decay is y' = -k·y with exact solution y0·exp(-k·t).
type decay struct {
	k, end float64
	state  []float64
}

func (d *decay) GetState() []float64 { return d.state }

func (d *decay) SetState(t float64, s []float64) { d.state = s }

func (d *decay) Derivative(t float64, s []float64) []float64 {
	o := make([]float64, len(s))
	for i, v := range s {
		o[i] = -d.k * v
	}
	return o
}

// Accumulated time drifts by a few ulps over many steps, so the stop
// condition carries a tolerance much smaller than one step.
func (d *decay) Done(t float64) bool { return t >= d.end-1e-9 }

func TestRK4Decay(t *testing.T) {
	d := &decay{k: 1.5, end: 2, state: []float64{1, 0.25}}
	rk, err := NewRK4(0, 0.01, d)
	if err != nil {
		t.Fatal(err)
	}
	steps, tEnd := rk.Solve()
	if steps != 200 {
		t.Errorf("steps = %d, want 200", steps)
	}
	if math.Abs(tEnd-2) > 1e-9 {
		t.Errorf("final time = %g, want 2", tEnd)
	}
	for i, y0 := range []float64{1, 0.25} {
		want := y0 * math.Exp(-d.k*tEnd)
		if math.Abs(d.state[i]-want) > 1e-8 {
			t.Errorf("state[%d] = %g, want %g", i, d.state[i], want)
		}
	}
}

// oscillator is y'' = -y written as a first-order system; the squared
// amplitude y² + v² is conserved by the exact flow.
type oscillator struct {
	end   float64
	state []float64
}

func (o *oscillator) GetState() []float64 { return o.state }

func (o *oscillator) SetState(t float64, s []float64) { o.state = s }

func (o *oscillator) Derivative(t float64, s []float64) []float64 {
	return []float64{s[1], -s[0]}
}

func (o *oscillator) Done(t float64) bool { return t >= o.end-1e-9 }

func TestRK4Oscillator(t *testing.T) {
	o := &oscillator{end: 2 * math.Pi, state: []float64{1, 0}}
	rk, err := NewRK4(0, 1e-3, o)
	if err != nil {
		t.Fatal(err)
	}
	_, tEnd := rk.Solve()
	// Compare against the exact solution at the actual final time; the
	// step size does not divide the period evenly.
	want0, want1 := math.Cos(tEnd), -math.Sin(tEnd)
	if math.Abs(o.state[0]-want0) > 1e-9 || math.Abs(o.state[1]-want1) > 1e-9 {
		t.Errorf("state at t = %g is %v, want [%g %g]", tEnd, o.state, want0, want1)
	}
	energy := o.state[0]*o.state[0] + o.state[1]*o.state[1]
	if math.Abs(energy-1) > 1e-9 {
		t.Errorf("squared amplitude = %g, want 1", energy)
	}
}

func TestNewRK4Errors(t *testing.T) {
	d := &decay{k: 1, end: 1, state: []float64{1}}
	if _, err := NewRK4(0, 0, d); err == nil {
		t.Error("zero step size: expected error, got none")
	}
	if _, err := NewRK4(0, -0.1, d); err == nil {
		t.Error("negative step size: expected error, got none")
	}
	if _, err := NewRK4(0, 0.1, nil); err == nil {
		t.Error("nil system: expected error, got none")
	}
}
