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

package polykinutil

import (
	"math"
	"reflect"
	"testing"

	"github.com/lnashier/viper"
)

func testConfig() *viper.Viper {
	cfg := viper.New()
	cfg.Set("Reactor.Ethylene", 0.85)
	cfg.Set("Reactor.Hexene", 0.22)
	cfg.Set("Reactor.Hydrogen", 0.015)
	cfg.Set("Reactor.Catalyst", 2.0e-6)
	cfg.Set("Reactor.Cr6", 0.0)
	cfg.Set("Reactor.Cocatalyst", 5.0e-4)
	cfg.Set("Reactor.Volume", 500.0)
	cfg.Set("Reactor.Temperature", 90.0)
	cfg.Set("Reactor.TemperatureUnits", "C")
	cfg.Set("Reactor.Type", 1)
	cfg.Set("Sim.Duration", 1.0)
	cfg.Set("Sim.StepSize", 0.01)
	return cfg
}

func TestReactorFromConfig(t *testing.T) {
	s, err := ReactorFromConfig(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	if s.Ethylene != 0.85 || s.Hexene != 0.22 || s.Hydrogen != 0.015 {
		t.Errorf("concentrations = %g, %g, %g", s.Ethylene, s.Hexene, s.Hydrogen)
	}
	// 90 °C must arrive in the state as Kelvin.
	if math.Abs(s.Temperature-363.15) > 1e-9 {
		t.Errorf("temperature = %g K, want 363.15 K", s.Temperature)
	}
	if s.ReactorType != 1 || s.Volume != 500 {
		t.Errorf("reactor type = %d, volume = %g", s.ReactorType, s.Volume)
	}
	for j := range s.Sites {
		if s.Sites[j].Active != 1.0e-7 || s.Sites[j].Moments[0] != 1.0e-7 {
			t.Errorf("site %d not seeded: %+v", j+1, s.Sites[j])
		}
	}
}

func TestReactorFromConfigBadUnits(t *testing.T) {
	cfg := testConfig()
	cfg.Set("Reactor.TemperatureUnits", "X")
	if _, err := ReactorFromConfig(cfg); err == nil {
		t.Error("expected unit error, got none")
	}
}

func TestSimulationFromConfig(t *testing.T) {
	sim, err := SimulationFromConfig(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	if sim.Duration != 1.0 || sim.StepSize != 0.01 {
		t.Errorf("duration = %g, step = %g", sim.Duration, sim.StepSize)
	}
	if sim.Mechanism == nil || sim.State == nil {
		t.Error("simulation missing mechanism or state")
	}
	if _, err := sim.Mechanism.Rates(sim.State); err != nil {
		t.Errorf("configured state does not evaluate: %v", err)
	}

	cfg := testConfig()
	cfg.Set("Sim.StepSize", 0.0)
	if _, err := SimulationFromConfig(cfg); err == nil {
		t.Error("zero step size: expected error, got none")
	}
}

func TestGetStringMapString(t *testing.T) {
	cfg := viper.New()

	if o := GetStringMapString("Missing", cfg); len(o) != 0 {
		t.Errorf("missing variable: got %v, want empty map", o)
	}

	cfg.Set("FromJSON", `{"conversion": "(0.8 - ethylene) / 0.8"}`)
	want := map[string]string{"conversion": "(0.8 - ethylene) / 0.8"}
	if o := GetStringMapString("FromJSON", cfg); !reflect.DeepEqual(o, want) {
		t.Errorf("json variable: got %v, want %v", o, want)
	}

	cfg.Set("FromMap", map[string]interface{}{"a": "b"})
	if o := GetStringMapString("FromMap", cfg); !reflect.DeepEqual(o, map[string]string{"a": "b"}) {
		t.Errorf("map variable: got %v", o)
	}

	cfg.Set("Empty", "")
	if o := GetStringMapString("Empty", cfg); len(o) != 0 {
		t.Errorf("empty string: got %v, want empty map", o)
	}
}
