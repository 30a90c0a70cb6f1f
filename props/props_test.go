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

package props

import (
	"math"
	"reflect"
	"testing"
)

func different(a, b, tolerance float64) bool {
	return math.Abs(a-b) > tolerance
}

func TestEvaluate(t *testing.T) {
	poly := Correlation{Polynomial, 100, 500, []float64{1, 2, 3}}
	if v := poly.evaluate(10); different(v, 1+2*10+3*100, 1e-12) {
		t.Errorf("polynomial at 10 = %g, want 321", v)
	}
	ant := Correlation{Antoine, 100, 500, []float64{15, 2000, -40}}
	if v := ant.evaluate(300); different(v, math.Exp(15-2000/260), 1e-9) {
		t.Errorf("Antoine at 300 = %g, want %g", v, math.Exp(15-2000/260))
	}
	and := Correlation{Andrade, 100, 500, []float64{-10, -200}}
	if v := and.evaluate(400); different(v, math.Exp(-10-0.5), 1e-12) {
		t.Errorf("Andrade at 400 = %g, want %g", v, math.Exp(-10.5))
	}
}

// Synthetic table with two constant-valued intervals, so interpolation
// and extrapolation behavior is exact.
func TestTableFallbacks(t *testing.T) {
	table := propertyTable{
		{Polynomial, 100, 200, []float64{1}},
		{Polynomial, 300, 400, []float64{3}},
	}
	cases := map[float64]float64{
		150: 1, // in first interval
		350: 3, // in second interval
		100: 1, // interval endpoint
		250: 2, // midway in the gap: linear between endpoint values
		325: 3,
		50:  1, // below range: constant correlations extrapolate flat
		500: 3, // above range
	}
	for T, want := range cases {
		if have := table.at(T); different(have, want, 1e-9) {
			t.Errorf("at(%g) = %g, want %g", T, have, want)
		}
	}

	// A sloped low-end correlation must extrapolate along its endpoint
	// slope: value = 2·T on [100,200], so at(50) ≈ 100.
	sloped := propertyTable{{Polynomial, 100, 200, []float64{0, 2}}}
	if have := sloped.at(50); different(have, 100, 1e-6) {
		t.Errorf("sloped at(50) = %g, want 100", have)
	}
	if have := sloped.at(250); different(have, 500, 1e-6) {
		t.Errorf("sloped at(250) = %g, want 500", have)
	}
}

func TestComponents(t *testing.T) {
	want := []string{"ethylene", "hexene", "hydrogen", "nitrogen"}
	if have := Components(); !reflect.DeepEqual(have, want) {
		t.Errorf("Components() = %v, want %v", have, want)
	}
}

func TestPropertiesAt(t *testing.T) {
	for _, component := range Components() {
		p, err := PropertiesAt(component, 363.15)
		if err != nil {
			t.Fatalf("%s: %v", component, err)
		}
		for property, v := range p {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Errorf("%s %s = %g; must be finite", component, property, v)
			}
			if _, err := Units(property); err != nil {
				t.Errorf("%s %s: %v", component, property, err)
			}
		}
		if p["heatCapacity"] <= 0 || p["vaporPressure"] <= 0 || p["viscosity"] <= 0 {
			t.Errorf("%s: nonpositive property among %v", component, p)
		}
	}

	// Spot check one value by hand: the ethylene ideal-gas heat
	// capacity polynomial at 300 K.
	p, err := PropertiesAt("ethylene", 300)
	if err != nil {
		t.Fatal(err)
	}
	want := 3.806 + 0.15659*300 - 8.3480e-5*300*300 + 1.7551e-8*300*300*300
	if different(p["heatCapacity"], want, 1e-9) {
		t.Errorf("ethylene heat capacity at 300 K = %g, want %g",
			p["heatCapacity"], want)
	}
}

func TestPropsErrors(t *testing.T) {
	if _, err := PropertiesAt("propane", 300); err == nil {
		t.Error("unknown component: expected error, got none")
	}
	for _, T := range []float64{0, -10, math.NaN()} {
		if _, err := PropertiesAt("ethylene", T); err == nil {
			t.Errorf("T = %g: expected error, got none", T)
		}
	}
	if _, err := Units("density"); err == nil {
		t.Error("unknown property: expected error, got none")
	}
	if u, err := Units("vaporPressure"); err != nil || u != "Pa" {
		t.Errorf("Units(vaporPressure) = %q, %v; want Pa, nil", u, err)
	}
}
