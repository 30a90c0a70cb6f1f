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

// Package zieglernatta contains a dual-site, dual-monomer kinetic
// mechanism for Ziegler-Natta coordination copolymerization of
// ethylene and 1-hexene, following the pseudo-kinetic rate constant
// method for copolymerization described in:
//
// McAuley, K. B., MacGregor, J. F., and Hamielec, A. E. (1990), A
// kinetic model for industrial gas-phase ethylene copolymerization,
// AIChE J., 36: 837-850.
package zieglernatta

import (
	"fmt"

	"github.com/polymodel/polykin"
)

const (
	nSites    = polykin.NumSites
	nMonomers = polykin.NumMonomers
)

// Monomer indices. Ethylene is monomer 1 and 1-hexene is monomer 2
// throughout the parameter table and the rate equations.
const (
	ethylene int = iota
	hexene
)

// Molar masses [grams per mole]
const (
	mwEthylene = 28.054
	mwHexene   = 84.162
)

// Mechanism fulfils the github.com/polymodel/polykin.Mechanism
// interface for dual-site Ziegler-Natta ethylene/1-hexene
// copolymerization. It is stateless apart from the read-only parameter
// table and may be shared between goroutines.
type Mechanism struct {
	Params ParamTable
}

// NewMechanism returns a Mechanism using the compiled-in parameter
// table.
func NewMechanism() *Mechanism {
	return &Mechanism{Params: DefaultParams}
}

// Len returns the number of species tracked by this mechanism (18).
func (m *Mechanism) Len() int { return len(polykin.StateNames) }

// Species returns the names of the tracked species in state-vector
// order.
func (m *Mechanism) Species() []string {
	o := make([]string, len(polykin.StateNames))
	copy(o, polykin.StateNames)
	return o
}

// stateValues maps variable names to accessors on the reactor state.
var stateValues = map[string]func(*polykin.ReactorState) float64{
	"ethylene":   func(s *polykin.ReactorState) float64 { return s.Ethylene },
	"hexene":     func(s *polykin.ReactorState) float64 { return s.Hexene },
	"hydrogen":   func(s *polykin.ReactorState) float64 { return s.Hydrogen },
	"catalyst":   func(s *polykin.ReactorState) float64 { return s.Catalyst },
	"cr6":        func(s *polykin.ReactorState) float64 { return s.Cr6 },
	"cocatalyst": func(s *polykin.ReactorState) float64 { return s.Cocatalyst },
	"sites1":     func(s *polykin.ReactorState) float64 { return s.Sites[0].Active },
	"sites2":     func(s *polykin.ReactorState) float64 { return s.Sites[1].Active },
	"ends1_1":    func(s *polykin.ReactorState) float64 { return s.Sites[0].Ends[ethylene] },
	"ends2_1":    func(s *polykin.ReactorState) float64 { return s.Sites[0].Ends[hexene] },
	"ends1_2":    func(s *polykin.ReactorState) float64 { return s.Sites[1].Ends[ethylene] },
	"ends2_2":    func(s *polykin.ReactorState) float64 { return s.Sites[1].Ends[hexene] },
	"y0_1":       func(s *polykin.ReactorState) float64 { return s.Sites[0].Moments[0] },
	"y1_1":       func(s *polykin.ReactorState) float64 { return s.Sites[0].Moments[1] },
	"y2_1":       func(s *polykin.ReactorState) float64 { return s.Sites[0].Moments[2] },
	"y0_2":       func(s *polykin.ReactorState) float64 { return s.Sites[1].Moments[0] },
	"y1_2":       func(s *polykin.ReactorState) float64 { return s.Sites[1].Moments[1] },
	"y2_2":       func(s *polykin.ReactorState) float64 { return s.Sites[1].Moments[2] },
}

// Value returns the concentration of the given variable in the given
// state. It returns an error if given an invalid variable name.
func (m *Mechanism) Value(s *polykin.ReactorState, variable string) (float64, error) {
	f, ok := stateValues[variable]
	if !ok {
		return 0, fmt.Errorf("zieglernatta: invalid variable name %s; valid names are %v",
			variable, polykin.StateNames)
	}
	return f(s), nil
}

// Units returns the units of the given variable.
func (m *Mechanism) Units(variable string) (string, error) {
	if _, ok := stateValues[variable]; !ok {
		return "", fmt.Errorf("zieglernatta: invalid variable name %s; valid names are %v",
			variable, polykin.StateNames)
	}
	// Every tracked species is a concentration.
	return "mol/L", nil
}
