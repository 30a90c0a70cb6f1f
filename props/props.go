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

// Package props is a temperature-dependent pure-component property
// correlator for the species handled by the reactor model. Each
// property of each component is represented by one or more fitted
// correlations, each valid on a temperature interval; temperatures
// between or beyond the tabulated intervals fall back to linear
// interpolation or extrapolation from the nearest interval endpoints.
//
// The rate engine in kinetics does not use this package; it exists for
// callers that need physical properties alongside reaction rates.
package props

import (
	"fmt"
	"math"
	"sort"
)

// Kind selects the functional form of a correlation.
type Kind int

const (
	// Polynomial: value = c0 + c1·T + c2·T² + ...
	Polynomial Kind = iota + 1
	// Antoine: ln(value) = c0 − c1/(T + c2)
	Antoine
	// Andrade: ln(value) = c0 + c1/T
	Andrade
)

// Correlation is one fitted property correlation with its temperature
// interval of validity [K].
type Correlation struct {
	Kind       Kind
	Tmin, Tmax float64
	Coeffs     []float64
}

// evaluate applies the correlation's functional form at T without
// regard to the interval of validity.
func (c Correlation) evaluate(T float64) float64 {
	switch c.Kind {
	case Polynomial:
		v, tn := 0.0, 1.0
		for _, coeff := range c.Coeffs {
			v += coeff * tn
			tn *= T
		}
		return v
	case Antoine:
		return math.Exp(c.Coeffs[0] - c.Coeffs[1]/(T+c.Coeffs[2]))
	case Andrade:
		return math.Exp(c.Coeffs[0] + c.Coeffs[1]/T)
	}
	return math.NaN()
}

// propertyTable holds the correlations for one property of one
// component, sorted by ascending Tmin with non-overlapping intervals.
type propertyTable []Correlation

// at evaluates the property at T. If T falls inside an interval the
// corresponding correlation is used directly. Between intervals the
// value is linearly interpolated between the bracketing endpoint
// values; beyond the tabulated range it is linearly extrapolated from
// the slope at the nearest endpoint.
func (p propertyTable) at(T float64) float64 {
	for _, c := range p {
		if T >= c.Tmin && T <= c.Tmax {
			return c.evaluate(T)
		}
	}
	// finite-difference step for endpoint slopes
	const h = 0.1

	first, last := p[0], p[len(p)-1]
	if T < first.Tmin {
		slope := (first.evaluate(first.Tmin+h) - first.evaluate(first.Tmin)) / h
		return first.evaluate(first.Tmin) + slope*(T-first.Tmin)
	}
	if T > last.Tmax {
		slope := (last.evaluate(last.Tmax) - last.evaluate(last.Tmax-h)) / h
		return last.evaluate(last.Tmax) + slope*(T-last.Tmax)
	}
	// T lies in a gap between two intervals.
	i := sort.Search(len(p), func(i int) bool { return p[i].Tmin > T })
	lo, hi := p[i-1], p[i]
	vLo, vHi := lo.evaluate(lo.Tmax), hi.evaluate(hi.Tmin)
	return vLo + (vHi-vLo)*(T-lo.Tmax)/(hi.Tmin-lo.Tmax)
}

// propertyUnits gives the units of each supported property.
var propertyUnits = map[string]string{
	"heatCapacity":  "J/(mol·K)",
	"vaporPressure": "Pa",
	"viscosity":     "Pa·s",
	"enthalpy":      "J/mol",
}

// components holds the fitted correlation tables. Heat capacities are
// ideal-gas polynomials; vapor pressures are Antoine fits near each
// component's normal operating range; viscosities are gas-phase
// Andrade fits.
var components = map[string]map[string]propertyTable{
	"ethylene": {
		"heatCapacity": {
			{Polynomial, 150, 600, []float64{3.806, 0.15659, -8.3480e-5, 1.7551e-8}},
			{Polynomial, 600, 1200, []float64{14.394, 0.10949, -3.5046e-5, 3.6774e-9}},
		},
		"vaporPressure": {
			{Antoine, 120, 282, []float64{20.8843, 1596.09, -7.16}},
		},
		"viscosity": {
			{Andrade, 200, 500, []float64{-9.5763, -208.43}},
		},
		"enthalpy": {
			{Polynomial, 150, 600, []float64{-12817.0, 3.806, 0.078295, -2.7827e-5}},
		},
	},
	"hexene": {
		"heatCapacity": {
			{Polynomial, 180, 700, []float64{-1.746, 0.51984, -2.9048e-4, 6.5433e-8}},
		},
		"vaporPressure": {
			{Antoine, 220, 504, []float64{20.7769, 2654.81, -47.30}},
		},
		"viscosity": {
			{Andrade, 250, 500, []float64{-10.1211, -73.92}},
		},
		"enthalpy": {
			{Polynomial, 180, 700, []float64{-30265.0, -1.746, 0.25992, -9.6827e-5}},
		},
	},
	"hydrogen": {
		"heatCapacity": {
			{Polynomial, 100, 1000, []float64{27.617, 0.0095600, -1.3208e-5, 7.8587e-9}},
		},
		"vaporPressure": {
			{Antoine, 14, 33, []float64{13.6333, 164.90, 3.19}},
		},
		"viscosity": {
			{Andrade, 100, 600, []float64{-11.0983, -67.81}},
		},
		"enthalpy": {
			{Polynomial, 100, 1000, []float64{-8110.0, 27.617, 0.0047800, -4.4027e-6}},
		},
	},
	"nitrogen": {
		"heatCapacity": {
			{Polynomial, 100, 1500, []float64{31.128, -0.013557, 2.6796e-5, -1.1681e-8}},
		},
		"vaporPressure": {
			{Antoine, 63, 126, []float64{14.9542, 588.72, -6.60}},
		},
		"viscosity": {
			{Andrade, 100, 600, []float64{-10.8220, -103.56}},
		},
		"enthalpy": {
			{Polynomial, 100, 1500, []float64{-9025.0, 31.128, -0.0067785, 8.9320e-6}},
		},
	},
}

// Components returns the names of the components with tabulated
// correlations, sorted alphabetically.
func Components() []string {
	o := make([]string, 0, len(components))
	for name := range components {
		o = append(o, name)
	}
	sort.Strings(o)
	return o
}

// Units returns the units of the given property name, or an error for
// an unknown property.
func Units(property string) (string, error) {
	u, ok := propertyUnits[property]
	if !ok {
		return "", fmt.Errorf("props: invalid property name %s", property)
	}
	return u, nil
}

// PropertiesAt returns every tabulated property of the named component
// evaluated at temperature T [K]. T must be positive; out-of-range
// temperatures use the interpolation/extrapolation fallback rather
// than failing.
func PropertiesAt(component string, T float64) (map[string]float64, error) {
	if !(T > 0) {
		return nil, fmt.Errorf("props: invalid temperature %g K; must be positive", T)
	}
	tables, ok := components[component]
	if !ok {
		return nil, fmt.Errorf("props: unknown component %s; valid components are %v",
			component, Components())
	}
	o := make(map[string]float64, len(tables))
	for name, table := range tables {
		o[name] = table.at(T)
	}
	return o, nil
}
