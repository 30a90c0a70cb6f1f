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

package polykin

import (
	"fmt"

	"github.com/ctessum/sparse"
	"github.com/polymodel/polykin/integrate"
)

// Recorder stores a simulated state trajectory as a dense
// (step × variable) array. Column order follows StateNames, with time
// in an extra leading column.
type Recorder struct {
	// Data holds the trajectory. Shape is [steps+1, len(StateNames)+1].
	Data *sparse.DenseArray

	row int
}

// NewRecorder returns a Recorder with capacity for the initial state
// plus nsteps further steps.
func NewRecorder(nsteps int) *Recorder {
	return &Recorder{Data: sparse.ZerosDense(nsteps+1, len(StateNames)+1)}
}

// Record appends the state vector s at time t [h] to the trajectory.
func (r *Recorder) Record(t float64, s []float64) {
	r.Data.Set(t, r.row, 0)
	for i, v := range s {
		r.Data.Set(v, r.row, i+1)
	}
	r.row++
}

// Rows returns the number of recorded rows, including the initial
// state.
func (r *Recorder) Rows() int { return r.row }

// Column returns the recorded series for the named variable, or for
// "time" the time axis itself.
func (r *Recorder) Column(name string) ([]float64, error) {
	col := -1
	if name == "time" {
		col = 0
	}
	for i, n := range StateNames {
		if n == name {
			col = i + 1
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("polykin: no recorded variable %s", name)
	}
	o := make([]float64, r.row)
	for i := range o {
		o[i] = r.Data.Get(i, col)
	}
	return o, nil
}

// Simulation advances a ReactorState through time with a fixed-step
// integrator, holding temperature, volume, and reactor type constant.
// The mechanism remains a pure derivative engine; all call sequencing
// happens here.
type Simulation struct {
	State     *ReactorState
	Mechanism Mechanism

	// Duration is the simulated time span [h].
	Duration float64

	// StepSize is the integrator step [h].
	StepSize float64

	// Recorder, if non-nil, receives the state after every step.
	Recorder *Recorder

	// OnStep, if non-nil, is called after every step with the current
	// time and state, e.g. for progress logging.
	OnStep func(t float64, s *ReactorState)
}

// GetState implements integrate.Integrable.
func (sim *Simulation) GetState() []float64 { return sim.State.Slice() }

// SetState implements integrate.Integrable.
func (sim *Simulation) SetState(t float64, s []float64) {
	sim.State.SetSlice(s)
	if sim.Recorder != nil {
		sim.Recorder.Record(t, s)
	}
	if sim.OnStep != nil {
		sim.OnStep(t, sim.State)
	}
}

// Derivative implements integrate.Integrable by evaluating the
// mechanism rate vector. The temperature is validated once in Run, so
// an evaluation error here means the integrator produced a non-finite
// intermediate, which is unrecoverable.
func (sim *Simulation) Derivative(t float64, s []float64) []float64 {
	trial := *sim.State
	trial.SetSlice(s)
	r, err := sim.Mechanism.Rates(&trial)
	if err != nil {
		panic(err)
	}
	return r.Slice()
}

// Done implements integrate.Integrable.
func (sim *Simulation) Done(t float64) bool {
	return t >= sim.Duration-sim.StepSize/2
}

// Run advances the simulation from time zero to Duration. The initial
// state is validated (and recorded) before the first step.
func (sim *Simulation) Run() error {
	if _, err := sim.Mechanism.Rates(sim.State); err != nil {
		return err
	}
	if sim.Recorder != nil {
		sim.Recorder.Record(0, sim.State.Slice())
	}
	rk, err := integrate.NewRK4(0, sim.StepSize, sim)
	if err != nil {
		return err
	}
	rk.Solve()
	return nil
}
