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

// epsilon guards fraction denominators so that an all-zero state (a
// legitimate initial condition) yields fractions of exactly 0 rather
// than NaN.
const epsilon = 1e-25

// safeRatio returns num/(den+epsilon). With non-negative inputs the
// result lies in [0,1) and an all-zero numerator/denominator gives 0.
func safeRatio(num, den float64) float64 {
	return num / (den + epsilon)
}

// composition holds the monomer mole fractions and, per site type, the
// living chain end-group fractions. All entries are dimensionless and
// lie in [0,1] for non-negative concentrations.
type composition struct {
	f   [nMonomers]float64
	phi [nSites][nMonomers]float64
}

// compose derives the mole and end-group fractions from the current
// concentrations. Both φ entries are evaluated as guarded ratios, so
// each site's fractions sum to 1 within floating tolerance and an
// empty site yields 0/0 → 0.
func compose(s *polykin.ReactorState) composition {
	var c composition
	mt := s.Ethylene + s.Hexene
	c.f[ethylene] = safeRatio(s.Ethylene, mt)
	c.f[hexene] = safeRatio(s.Hexene, mt)
	for j := range s.Sites {
		nt := s.Sites[j].Ends[ethylene] + s.Sites[j].Ends[hexene]
		c.phi[j][ethylene] = safeRatio(s.Sites[j].Ends[ethylene], nt)
		c.phi[j][hexene] = safeRatio(s.Sites[j].Ends[hexene], nt)
	}
	return c
}
