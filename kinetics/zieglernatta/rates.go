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

package zieglernatta

import "github.com/polymodel/polykin"

// Rates evaluates the instantaneous rate of change of every tracked
// species by mass-action kinetics over the six elementary step kinds
// (activation, initiation, propagation, transfer to monomer, transfer
// to hydrogen, spontaneous deactivation). Every term is evaluated
// unconditionally; negative net rates are valid and expected for
// consumed species. The function is total over finite, non-negative
// concentrations; the single disallowed input is a non-positive or
// non-finite temperature.
func (m *Mechanism) Rates(s *polykin.ReactorState) (*polykin.RateVector, error) {
	k, err := m.Params.constants(s.Temperature, s.ReactorType)
	if err != nil {
		return nil, err
	}
	c := compose(s)
	p := k.blend(c)

	mono := [nMonomers]float64{s.Ethylene, s.Hexene}
	totalMonomer := s.Ethylene + s.Hexene

	var r polykin.SpeciesRates

	// Catalyst activation. The primary path and the reduction path
	// both consume catalyst and cocatalyst jointly; hydrogen
	// activation consumes the reduced precursor.
	primaryFlux := k.activation * s.Catalyst * s.Cocatalyst
	reductionFlux := k.reduction * s.Catalyst * s.Cocatalyst
	hydrogenFlux := k.hydrogenActivation * s.Cr6 * s.Hydrogen
	activationFlux := primaryFlux + hydrogenFlux

	r.Catalyst = -(primaryFlux + reductionFlux)
	r.Cocatalyst = -(primaryFlux + reductionFlux)
	r.Cr6 = reductionFlux - hydrogenFlux

	// Hydrogen: consumed by chain transfer on the living population of
	// both sites, by the hydrogen activation step, and by the
	// reactor-type-specific side reaction.
	r.Hydrogen = -hydrogenFlux - k.auxiliary*s.Hydrogen
	for j := range s.Sites {
		r.Hydrogen -= p.transferHydrogen[j] * s.Sites[j].Moments[0] * s.Hydrogen
	}

	// Monomer consumption: initiation on both sites plus propagation
	// and transfer-to-monomer, weighted by the fraction of chains
	// ending in each terminal unit.
	for i := 0; i < nMonomers; i++ {
		var consumption float64
		for j := range s.Sites {
			consumption += k.initiation[j][i] * s.Sites[j].Active
			for e := 0; e < nMonomers; e++ {
				consumption += (k.propagation[j][e][i] + k.transferMonomer[j][e][i]) *
					c.phi[j][e] * s.Sites[j].Moments[0]
			}
		}
		switch i {
		case ethylene:
			r.Ethylene = -consumption * mono[i]
		case hexene:
			r.Hexene = -consumption * mono[i]
		}
	}

	for j := range s.Sites {
		st := &s.Sites[j]
		sr := &r.Sites[j]

		initFlux := (k.initiation[j][ethylene]*mono[ethylene] +
			k.initiation[j][hexene]*mono[hexene]) * st.Active

		// Vacant sites are replenished by a fixed share of the total
		// activation flux and depleted by initiation on both monomers.
		sr.Active = m.Params.SiteSplit[j]*activationFlux - initFlux

		// Per-chain loss frequency [1/h] and growth fluxes.
		loss := p.transferHydrogen[j]*s.Hydrogen + p.deactivation[j]
		growth := p.propagation[j] * totalMonomer
		reinit := p.transferMonomer[j] * totalMonomer

		Y := st.Moments
		// Transfer to monomer leaves the living count unchanged (a
		// dead chain plus a fresh unit-length chain) but pulls the
		// higher moments toward unit length; the second-moment
		// propagation gain carries the standard factor of 2.
		sr.Living[0] = initFlux - loss*Y[0]
		sr.Living[1] = initFlux + growth*Y[0] + reinit*(Y[0]-Y[1]) - loss*Y[1]
		sr.Living[2] = initFlux + growth*(2*Y[1]+Y[0]) + reinit*(Y[0]-Y[2]) - loss*Y[2]

		// Dead moments accumulate each living moment at the rate its
		// chains convert from living to dead.
		conversion := reinit + p.transferHydrogen[j]*s.Hydrogen + p.deactivation[j]
		for n := range Y {
			sr.Dead[n] = Y[n] * conversion
		}

		// End-group balances: initiation creates a chain ending in the
		// initiating monomer; cross propagation or cross transfer
		// converts end-group identity; hydrogen transfer and
		// deactivation destroy the end group.
		for i := 0; i < nMonomers; i++ {
			o := 1 - i
			sr.Ends[i] = k.initiation[j][i]*st.Active*mono[i] +
				(k.propagation[j][o][i]+k.transferMonomer[j][o][i])*c.phi[j][o]*Y[0]*mono[i] -
				(k.propagation[j][i][o]+k.transferMonomer[j][i][o])*c.phi[j][i]*Y[0]*mono[o] -
				(k.transferHydrogen[j][i]*s.Hydrogen+k.deactivation[j][i])*c.phi[j][i]*Y[0]
		}
	}

	return &polykin.RateVector{
		Conc:  r,
		Molar: r.Scaled(s.Volume),
		// Production is already a whole-reactor total and is scaled by
		// volume exactly once.
		Production: (-r.Ethylene*mwEthylene - r.Hexene*mwHexene) * s.Volume,
	}, nil
}
