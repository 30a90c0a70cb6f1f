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

import (
	"testing"

	"github.com/polymodel/polykin"
)

// An all-zero state is a legitimate startup condition; every fraction
// must evaluate to exactly 0, not NaN and not 1.
func TestComposeZeroState(t *testing.T) {
	c := compose(&polykin.ReactorState{Temperature: 363.15})
	for i := 0; i < nMonomers; i++ {
		if c.f[i] != 0 {
			t.Errorf("f[%d] = %g, want 0", i, c.f[i])
		}
		for j := 0; j < nSites; j++ {
			if c.phi[j][i] != 0 {
				t.Errorf("phi[%d][%d] = %g, want 0", j, i, c.phi[j][i])
			}
		}
	}
}

func TestCompose(t *testing.T) {
	s := &polykin.ReactorState{
		Ethylene: 0.9,
		Hexene:   0.3,
	}
	s.Sites[0].Ends = [nMonomers]float64{3e-5, 1e-5}
	s.Sites[1].Ends = [nMonomers]float64{1e-6, 3e-6}

	c := compose(s)

	const tol = 1e-9
	if different(c.f[ethylene], 0.75, tol) || different(c.f[hexene], 0.25, tol) {
		t.Errorf("mole fractions = %v, want [0.75 0.25]", c.f)
	}
	if different(c.phi[0][ethylene], 0.75, tol) || different(c.phi[0][hexene], 0.25, tol) {
		t.Errorf("site 1 end fractions = %v, want [0.75 0.25]", c.phi[0])
	}
	if different(c.phi[1][ethylene], 0.25, tol) || different(c.phi[1][hexene], 0.75, tol) {
		t.Errorf("site 2 end fractions = %v, want [0.25 0.75]", c.phi[1])
	}

	// Each fraction pair must sum to 1 and lie within [0,1].
	if different(c.f[0]+c.f[1], 1, tol) {
		t.Errorf("mole fractions sum to %g, want 1", c.f[0]+c.f[1])
	}
	for j := 0; j < nSites; j++ {
		if different(c.phi[j][0]+c.phi[j][1], 1, tol) {
			t.Errorf("site %d end fractions sum to %g, want 1",
				j+1, c.phi[j][0]+c.phi[j][1])
		}
		for i := 0; i < nMonomers; i++ {
			if c.phi[j][i] < 0 || c.phi[j][i] > 1 {
				t.Errorf("phi[%d][%d] = %g out of [0,1]", j, i, c.phi[j][i])
			}
		}
	}
}
