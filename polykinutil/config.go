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
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/lnashier/viper"
	"github.com/spf13/cast"

	"github.com/polymodel/polykin"
	"github.com/polymodel/polykin/kinetics/zieglernatta"
	"github.com/polymodel/polykin/unitconv"
)

// ReactorFromConfig unmarshals a viper configuration into an initial
// reactor state. The configured temperature is converted to Kelvin at
// this boundary; the model itself runs in Kelvin.
func ReactorFromConfig(cfg *viper.Viper) (*polykin.ReactorState, error) {
	T, err := unitconv.Convert(cfg.GetFloat64("Reactor.Temperature"),
		cfg.GetString("Reactor.TemperatureUnits"), "K", unitconv.Temperature)
	if err != nil {
		return nil, err
	}
	s := &polykin.ReactorState{
		Ethylene:    cfg.GetFloat64("Reactor.Ethylene"),
		Hexene:      cfg.GetFloat64("Reactor.Hexene"),
		Hydrogen:    cfg.GetFloat64("Reactor.Hydrogen"),
		Catalyst:    cfg.GetFloat64("Reactor.Catalyst"),
		Cr6:         cfg.GetFloat64("Reactor.Cr6"),
		Cocatalyst:  cfg.GetFloat64("Reactor.Cocatalyst"),
		Volume:      cfg.GetFloat64("Reactor.Volume"),
		Temperature: T,
		ReactorType: cfg.GetInt("Reactor.Type"),
	}
	// Seed the site populations with trace concentrations so that the
	// end-group fractions start from a defined composition.
	for j := range s.Sites {
		s.Sites[j].Active = 1.0e-7
		for i := range s.Sites[j].Ends {
			s.Sites[j].Ends[i] = 1.0e-7
		}
		for n := range s.Sites[j].Moments {
			s.Sites[j].Moments[n] = 1.0e-7
		}
	}
	return s, nil
}

// MechanismFromConfig returns the kinetic mechanism, applying a TOML
// parameter-table override if one is configured.
func MechanismFromConfig(cfg *viper.Viper) (*zieglernatta.Mechanism, error) {
	m := zieglernatta.NewMechanism()
	if f := cfg.GetString("ParamFile"); f != "" {
		t, err := zieglernatta.LoadParams(os.ExpandEnv(f))
		if err != nil {
			return nil, err
		}
		m.Params = t
	}
	return m, nil
}

// SimulationFromConfig assembles a simulation from a viper
// configuration.
func SimulationFromConfig(cfg *viper.Viper) (*polykin.Simulation, error) {
	s, err := ReactorFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	m, err := MechanismFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	stepSize := cfg.GetFloat64("Sim.StepSize")
	if stepSize <= 0 {
		return nil, fmt.Errorf("polykin: Sim.StepSize %g must be positive", stepSize)
	}
	return &polykin.Simulation{
		State:     s,
		Mechanism: m,
		Duration:  cfg.GetFloat64("Sim.Duration"),
		StepSize:  stepSize,
	}, nil
}

// GetStringMapString returns a map[string]string from a viper
// configuration, accounting for the fact that it might be a json
// object if it was set from a command line argument.
func GetStringMapString(varName string, cfg *viper.Viper) map[string]string {
	i := cfg.Get(varName)
	switch i.(type) {
	case nil:
		return map[string]string{}
	case map[string]string:
		return i.(map[string]string)
	case map[string]interface{}:
		return cast.ToStringMapString(i)
	case string:
		if i.(string) == "" {
			return map[string]string{}
		}
		b := bytes.NewBuffer(([]byte)(i.(string)))
		d := json.NewDecoder(b)
		o := make(map[string]string)
		if err := d.Decode(&o); err != nil {
			panic(err)
		}
		return o
	default:
		panic(fmt.Errorf("invalid type for GetStringMapString variable %s: %#v", varName, i))
	}
}
