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

// pseudoConstants holds the per-site pseudo-homopolymer rate constants
// obtained by composition-weighting the monomer-specific constants.
// The blending collapses the copolymer mechanism into homopolymer-style
// rate equations per site type.
type pseudoConstants struct {
	propagation      [nSites]float64
	transferMonomer  [nSites]float64
	transferHydrogen [nSites]float64
	deactivation     [nSites]float64
}

// blend computes the pseudo-kinetic constants for each site from the
// temperature-evaluated constants and the current composition. The
// term groupings below are mechanism-specific and transcribed exactly;
// they are not a generic weighting rule.
func (k *rateConstants) blend(c composition) pseudoConstants {
	var p pseudoConstants
	f1, f2 := c.f[ethylene], c.f[hexene]
	for j := 0; j < nSites; j++ {
		phi1, phi2 := c.phi[j][ethylene], c.phi[j][hexene]

		// Propagation and transfer-to-monomer consume a specific
		// monomer, so each term carries both a mole fraction and an
		// end-group fraction.
		kp := &k.propagation[j]
		p.propagation[j] = kp[ethylene][ethylene]*f1*phi1 +
			kp[hexene][ethylene]*f1*phi2 +
			kp[hexene][hexene]*f2*phi2 +
			kp[ethylene][hexene]*phi1*f2
		kfm := &k.transferMonomer[j]
		p.transferMonomer[j] = kfm[ethylene][ethylene]*f1*phi1 +
			kfm[hexene][ethylene]*f1*phi2 +
			kfm[hexene][hexene]*f2*phi2 +
			kfm[ethylene][hexene]*phi1*f2

		// Hydrogen transfer and deactivation do not consume a specific
		// monomer; they depend only on the terminal unit.
		p.transferHydrogen[j] = k.transferHydrogen[j][ethylene]*phi1 +
			k.transferHydrogen[j][hexene]*phi2
		p.deactivation[j] = k.deactivation[j][ethylene]*phi1 +
			k.deactivation[j][hexene]*phi2
	}
	return p
}
