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
	"fmt"
	"math"

	"github.com/BurntSushi/toml"
)

// Arrhenius holds one pair of fitted rate-constant parameters. The
// rate constant at temperature T [K] is
//
//	k = exp(LnA) · exp(−exp(LnE)/T)
//
// Note the double exponential in the activation term: LnE is the
// logarithm of an activation-energy-like quantity [K], not the
// quantity itself. The parameters were fitted to this exact form, so
// it must not be "corrected" to the conventional single-exponential
// Arrhenius law.
type Arrhenius struct {
	LnA float64 `toml:"lnA"`
	LnE float64 `toml:"lnE"`
}

// At evaluates the rate constant at temperature T [K]. The caller is
// responsible for rejecting non-positive temperatures first.
func (p Arrhenius) At(T float64) float64 {
	return math.Exp(p.LnA) * math.Exp(-math.Exp(p.LnE)/T)
}

// InvalidTemperatureError indicates a temperature at which rate
// constants cannot be evaluated. It is the only input precondition
// failure this mechanism reports; everything else degrades gracefully.
type InvalidTemperatureError struct {
	Temperature float64 // [K]
}

func (e InvalidTemperatureError) Error() string {
	return fmt.Sprintf("zieglernatta: invalid temperature %g K; "+
		"must be positive and finite", e.Temperature)
}

// ParamTable holds the complete set of Arrhenius parameter pairs for
// the elementary steps of the mechanism, indexed by step kind, site
// type, and (where the step consumes or depends on a specific monomer)
// monomer identity. The table is fixed mechanistic data: DefaultParams
// is compiled in and never changes across calls. Monomer-pair indices
// are [terminal unit][adding monomer].
type ParamTable struct {
	// Activation is the primary activation step: catalyst + cocatalyst
	// producing vacant active sites.
	Activation Arrhenius `toml:"activation"`

	// Reduction is the competing activation path: catalyst +
	// cocatalyst producing the reduced precursor (cr6).
	Reduction Arrhenius `toml:"reduction"`

	// HydrogenActivation activates the reduced precursor with
	// hydrogen, producing vacant active sites.
	HydrogenActivation Arrhenius `toml:"hydrogenActivation"`

	Initiation       [nSites][nMonomers]Arrhenius            `toml:"initiation"`
	Propagation      [nSites][nMonomers][nMonomers]Arrhenius `toml:"propagation"`
	TransferMonomer  [nSites][nMonomers][nMonomers]Arrhenius `toml:"transferMonomer"`
	TransferHydrogen [nSites][nMonomers]Arrhenius            `toml:"transferHydrogen"`
	Deactivation     [nSites][nMonomers]Arrhenius            `toml:"deactivation"`

	// SiteSplit gives the fraction of the total activation flux that
	// replenishes each site type. The entries sum to 1.
	SiteSplit [nSites]float64 `toml:"siteSplit"`
}

// DefaultParams is the fitted parameter set for a commercial
// titanium-based catalyst in gas-phase ethylene/1-hexene service.
var DefaultParams = ParamTable{
	Activation:         Arrhenius{19.8521, 8.31204},
	Reduction:          Arrhenius{18.9035, 8.36637},
	HydrogenActivation: Arrhenius{20.4178, 8.25121},
	Initiation: [nSites][nMonomers]Arrhenius{
		{{24.1137, 8.17004}, {22.3098, 8.23417}},
		{{23.8225, 8.19512}, {21.9764, 8.26054}},
	},
	Propagation: [nSites][nMonomers][nMonomers]Arrhenius{
		{ // site 1
			{{25.7632, 8.17621}, {23.4403, 8.28391}},
			{{25.1229, 8.20112}, {22.8817, 8.31540}},
		},
		{ // site 2
			{{25.4106, 8.18325}, {24.0567, 8.24668}},
			{{24.9382, 8.20871}, {23.3114, 8.29443}},
		},
	},
	TransferMonomer: [nSites][nMonomers][nMonomers]Arrhenius{
		{
			{{18.2133, 8.57320}, {16.9071, 8.61125}},
			{{17.8405, 8.58940}, {16.4380, 8.63291}},
		},
		{
			{{19.1206, 8.55103}, {17.7642, 8.59684}},
			{{18.6925, 8.56677}, {17.2588, 8.61472}},
		},
	},
	TransferHydrogen: [nSites][nMonomers]Arrhenius{
		{{20.3424, 8.50095}, {19.2530, 8.54417}},
		{{21.1581, 8.48233}, {20.0307, 8.52391}},
	},
	Deactivation: [nSites][nMonomers]Arrhenius{
		{{13.2217, 8.68710}, {12.8400, 8.70934}},
		{{14.0561, 8.66215}, {13.4972, 8.68004}},
	},
	SiteSplit: [nSites]float64{0.5534, 0.4466},
}

// reactorTypeConstant gives the auxiliary hydrogen side-reaction
// constant [1/h] for each reactor type. Unrecognized reactor types
// yield 0; that is documented fallback behavior, not a fault.
func reactorTypeConstant(reactorType int) float64 {
	switch reactorType {
	case 1:
		return 5.34329
	case 2:
		return 1.13724
	case 3:
		return 0.318066
	case 4:
		return 0.456617
	}
	return 0
}

// rateConstants is the parameter table evaluated at one temperature.
type rateConstants struct {
	activation         float64
	reduction          float64
	hydrogenActivation float64
	initiation         [nSites][nMonomers]float64
	propagation        [nSites][nMonomers][nMonomers]float64
	transferMonomer    [nSites][nMonomers][nMonomers]float64
	transferHydrogen   [nSites][nMonomers]float64
	deactivation       [nSites][nMonomers]float64
	auxiliary          float64
}

// constants evaluates every rate constant in the table at temperature
// T [K] and selects the auxiliary constant for the given reactor type.
// A non-positive or non-finite T is rejected before any evaluation.
func (t *ParamTable) constants(T float64, reactorType int) (*rateConstants, error) {
	if !(T > 0) || math.IsInf(T, 0) {
		return nil, InvalidTemperatureError{Temperature: T}
	}
	k := &rateConstants{
		activation:         t.Activation.At(T),
		reduction:          t.Reduction.At(T),
		hydrogenActivation: t.HydrogenActivation.At(T),
		auxiliary:          reactorTypeConstant(reactorType),
	}
	for j := 0; j < nSites; j++ {
		for i := 0; i < nMonomers; i++ {
			k.initiation[j][i] = t.Initiation[j][i].At(T)
			k.transferHydrogen[j][i] = t.TransferHydrogen[j][i].At(T)
			k.deactivation[j][i] = t.Deactivation[j][i].At(T)
			for i2 := 0; i2 < nMonomers; i2++ {
				k.propagation[j][i][i2] = t.Propagation[j][i][i2].At(T)
				k.transferMonomer[j][i][i2] = t.TransferMonomer[j][i][i2].At(T)
			}
		}
	}
	return k, nil
}

// LoadParams reads a recalibrated parameter table from a TOML file.
// Fields not present in the file keep their zero values, so override
// files should be complete tables (start from an encoding of
// DefaultParams).
func LoadParams(filename string) (ParamTable, error) {
	var t ParamTable
	if _, err := toml.DecodeFile(filename, &t); err != nil {
		return t, fmt.Errorf("zieglernatta: reading parameter table: %v", err)
	}
	if sum := t.SiteSplit[0] + t.SiteSplit[1]; math.Abs(sum-1) > 1e-12 {
		return t, fmt.Errorf("zieglernatta: site split fractions sum to %g; must sum to 1", sum)
	}
	return t, nil
}
