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

// Package polykin is a kinetic model of olefin copolymerization in
// stirred gas-phase reactors. The root package holds the reactor state
// and rate-vector types and the simulation driver; reaction mechanisms
// live in subpackages of kinetics and satisfy the Mechanism interface.
package polykin

// Version gives the version number of this version of PolyKin.
const Version = "0.3.1"

// NumSites is the number of catalyst active-site types tracked by the
// model. Dual-site kinetics are hard-wired throughout; this constant
// exists to make the site symmetry explicit.
const NumSites = 2

// NumMonomers is the number of comonomers tracked by the model.
const NumMonomers = 2

// SiteState holds the polymer population attached to one catalyst
// site type. Concentrations are in mol/L of reactor volume.
type SiteState struct {
	// Active is the concentration of vacant (chain-free) active sites.
	Active float64

	// Ends holds the concentrations of living chains whose terminal
	// unit is monomer 1 (ethylene) and monomer 2 (1-hexene).
	Ends [NumMonomers]float64

	// Moments holds the zeroth, first, and second statistical moments
	// of the living chain-length distribution on this site type.
	Moments [3]float64
}

// ReactorState is a snapshot of every tracked species concentration
// together with the reactor conditions needed to evaluate reaction
// rates. All concentrations are mol/L and must be non-negative; zero
// concentrations are a valid state (e.g. at startup). The state is
// never mutated by rate evaluation.
type ReactorState struct {
	Ethylene float64 // monomer 1 [mol/L]
	Hexene   float64 // monomer 2 [mol/L]
	Hydrogen float64 // chain-transfer agent [mol/L]

	Catalyst   float64 // unactivated catalyst precursor [mol/L]
	Cr6        float64 // reduced precursor awaiting hydrogen activation [mol/L]
	Cocatalyst float64 // aluminum alkyl cocatalyst [mol/L]

	Sites [NumSites]SiteState

	Volume      float64 // reactor volume [L]
	Temperature float64 // [K]

	// ReactorType selects the auxiliary hydrogen side-reaction
	// constant. Unrecognized values degrade to a zero constant.
	ReactorType int
}

// SiteRates holds time derivatives for the polymer populations on one
// site type, plus the production rates of the dead-polymer moments,
// which are not part of ReactorState but are needed downstream for
// molecular-weight bookkeeping.
type SiteRates struct {
	Active float64
	Ends   [NumMonomers]float64
	Living [3]float64
	Dead   [3]float64
}

// SpeciesRates holds the time derivative of every species in a
// ReactorState. Units are mol/(L·h) for a concentration-basis set and
// mol/h for a volume-scaled set.
type SpeciesRates struct {
	Ethylene   float64
	Hexene     float64
	Hydrogen   float64
	Catalyst   float64
	Cr6        float64
	Cocatalyst float64
	Sites      [NumSites]SiteRates
}

// Scaled returns a copy of r with every rate multiplied by v,
// converting concentration-basis rates [mol/(L·h)] to absolute molar
// rates [mol/h] for a reactor of volume v liters.
func (r SpeciesRates) Scaled(v float64) SpeciesRates {
	o := r
	o.Ethylene *= v
	o.Hexene *= v
	o.Hydrogen *= v
	o.Catalyst *= v
	o.Cr6 *= v
	o.Cocatalyst *= v
	for j := range o.Sites {
		o.Sites[j].Active *= v
		for i := range o.Sites[j].Ends {
			o.Sites[j].Ends[i] *= v
		}
		for n := range o.Sites[j].Living {
			o.Sites[j].Living[n] *= v
			o.Sites[j].Dead[n] *= v
		}
	}
	return o
}

// RateVector is the output of one rate evaluation: the instantaneous
// time derivative of the reactor state. It is produced fresh on every
// call and carries no identity between calls.
type RateVector struct {
	// Conc holds concentration-basis rates [mol/(L·h)].
	Conc SpeciesRates

	// Molar holds the same rates scaled by reactor volume [mol/h].
	Molar SpeciesRates

	// Production is the polymer mass production rate [g/h], already a
	// whole-reactor total.
	Production float64
}

// Mechanism is an interface for polymerization kinetic mechanisms.
type Mechanism interface {
	// Rates evaluates the instantaneous rate vector for the given
	// state. It is pure: identical inputs yield identical outputs. It
	// returns an error only for a non-positive or non-finite
	// temperature.
	Rates(s *ReactorState) (*RateVector, error)

	// Species returns the names of the species tracked by this
	// mechanism, in state-vector order.
	Species() []string

	// Value returns the concentration of the given variable in the
	// given state, or an error for an invalid variable name.
	Value(s *ReactorState, variable string) (float64, error)

	// Units returns the units of the given variable, or an error for
	// an invalid variable name.
	Units(variable string) (string, error)

	// Len returns the number of species tracked by the mechanism.
	Len() int
}

// StateNames lists the tracked species in the order used by
// (*ReactorState).Slice and rate-vector flattening.
var StateNames = []string{
	"ethylene", "hexene", "hydrogen",
	"catalyst", "cr6", "cocatalyst",
	"sites1", "ends1_1", "ends2_1", "y0_1", "y1_1", "y2_1",
	"sites2", "ends1_2", "ends2_2", "y0_2", "y1_2", "y2_2",
}

// Slice flattens the state concentrations into a vector in StateNames
// order, for use with generic ODE integrators.
func (s *ReactorState) Slice() []float64 {
	o := make([]float64, 0, len(StateNames))
	o = append(o, s.Ethylene, s.Hexene, s.Hydrogen,
		s.Catalyst, s.Cr6, s.Cocatalyst)
	for j := range s.Sites {
		st := &s.Sites[j]
		o = append(o, st.Active, st.Ends[0], st.Ends[1],
			st.Moments[0], st.Moments[1], st.Moments[2])
	}
	return o
}

// SetSlice sets the state concentrations from a vector in StateNames
// order. It is the inverse of Slice.
func (s *ReactorState) SetSlice(v []float64) {
	s.Ethylene, s.Hexene, s.Hydrogen = v[0], v[1], v[2]
	s.Catalyst, s.Cr6, s.Cocatalyst = v[3], v[4], v[5]
	for j := range s.Sites {
		st := &s.Sites[j]
		base := 6 + j*6
		st.Active = v[base]
		st.Ends[0], st.Ends[1] = v[base+1], v[base+2]
		st.Moments[0], st.Moments[1], st.Moments[2] =
			v[base+3], v[base+4], v[base+5]
	}
}

// Slice flattens the concentration-basis rates into a vector in
// StateNames order, matching (*ReactorState).Slice.
func (r *RateVector) Slice() []float64 {
	c := &r.Conc
	o := make([]float64, 0, len(StateNames))
	o = append(o, c.Ethylene, c.Hexene, c.Hydrogen,
		c.Catalyst, c.Cr6, c.Cocatalyst)
	for j := range c.Sites {
		sr := &c.Sites[j]
		o = append(o, sr.Active, sr.Ends[0], sr.Ends[1],
			sr.Living[0], sr.Living[1], sr.Living[2])
	}
	return o
}
