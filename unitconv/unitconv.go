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

// Package unitconv converts values between pressure, temperature, and
// mass unit systems at the boundaries of the model. The kinetic core
// is unit-fixed (mol/L, K, L, h) and never calls this package.
package unitconv

import (
	"fmt"

	"github.com/ctessum/unit"
)

// Kind is the type of quantity being converted.
type Kind int

const (
	Pressure Kind = iota + 1
	Temperature
	Mass
)

func (k Kind) String() string {
	switch k {
	case Pressure:
		return "pressure"
	case Temperature:
		return "temperature"
	case Mass:
		return "mass"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// pressureDims is the SI dimension signature of pressure [kg/(m·s²)].
var pressureDims = unit.Dimensions{
	unit.MassDim:   1,
	unit.LengthDim: -1,
	unit.TimeDim:   -2,
}

// pressureUnits holds one Pascal-equivalent factor per accepted unit
// name, so dimension bookkeeping stays with the unit library.
var pressureUnits = map[string]*unit.Unit{
	"Pa":      unit.New(1, pressureDims),
	"kPa":     unit.New(1e3, pressureDims),
	"MPa":     unit.New(1e6, pressureDims),
	"bar":     unit.New(1e5, pressureDims),
	"atm":     unit.New(101325, pressureDims),
	"psi":     unit.New(6894.757, pressureDims),
	"mmHg":    unit.New(133.3224, pressureDims),
	"kgf/cm2": unit.New(98066.5, pressureDims),
}

// massUnits holds kilogram-equivalent factors.
var massUnits = map[string]*unit.Unit{
	"kg":  unit.New(1, unit.Kilogram),
	"g":   unit.New(1e-3, unit.Kilogram),
	"t":   unit.New(1e3, unit.Kilogram),
	"lb":  unit.New(0.45359237, unit.Kilogram),
	"ton": unit.New(907.18474, unit.Kilogram), // short ton
}

// factorConvert converts value between two units from the same factor
// table, verifying that the factors carry matching dimensions.
func factorConvert(value float64, from, to string, table map[string]*unit.Unit, kind Kind) (float64, error) {
	f, ok := table[from]
	if !ok {
		return 0, fmt.Errorf("unitconv: unknown %v unit %q", kind, from)
	}
	t, ok := table[to]
	if !ok {
		return 0, fmt.Errorf("unitconv: unknown %v unit %q", kind, to)
	}
	if !f.Dimensions().Matches(t.Dimensions()) {
		return 0, fmt.Errorf("unitconv: dimension mismatch converting %q to %q", from, to)
	}
	return value * f.Value() / t.Value(), nil
}

// toKelvin converts a temperature in the named unit to Kelvin.
func toKelvin(value float64, u string) (float64, error) {
	switch u {
	case "K":
		return value, nil
	case "C":
		return value + 273.15, nil
	case "F":
		return (value-32)/1.8 + 273.15, nil
	case "R":
		return value / 1.8, nil
	}
	return 0, fmt.Errorf("unitconv: unknown temperature unit %q", u)
}

// fromKelvin converts a temperature in Kelvin to the named unit.
func fromKelvin(value float64, u string) (float64, error) {
	switch u {
	case "K":
		return value, nil
	case "C":
		return value - 273.15, nil
	case "F":
		return (value-273.15)*1.8 + 32, nil
	case "R":
		return value * 1.8, nil
	}
	return 0, fmt.Errorf("unitconv: unknown temperature unit %q", u)
}

// Convert converts value from one unit to another within the given
// kind of quantity. Temperature conversions handle scale offsets;
// pressure and mass conversions are pure factors.
func Convert(value float64, from, to string, kind Kind) (float64, error) {
	switch kind {
	case Pressure:
		return factorConvert(value, from, to, pressureUnits, kind)
	case Mass:
		return factorConvert(value, from, to, massUnits, kind)
	case Temperature:
		k, err := toKelvin(value, from)
		if err != nil {
			return 0, err
		}
		return fromKelvin(k, to)
	}
	return 0, fmt.Errorf("unitconv: unknown quantity kind %v", kind)
}
