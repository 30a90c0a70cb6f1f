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

// Package polykinutil holds the command-line interface and
// configuration plumbing for the PolyKin reactor model.
package polykinutil

import (
	"fmt"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/polymodel/polykin"
	"github.com/polymodel/polykin/props"
	"github.com/polymodel/polykin/unitconv"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var log = logrus.StandardLogger()

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to PolyKin.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Reactor.Ethylene",
			usage: `
              Reactor.Ethylene is the initial ethylene concentration [mol/L].`,
			defaultVal: 0.08,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Reactor.Hexene",
			usage: `
              Reactor.Hexene is the initial 1-hexene concentration [mol/L].`,
			defaultVal: 0.02,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Reactor.Hydrogen",
			usage: `
              Reactor.Hydrogen is the initial hydrogen concentration [mol/L].`,
			defaultVal: 0.005,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Reactor.Catalyst",
			usage: `
              Reactor.Catalyst is the initial catalyst precursor
              concentration [mol/L].`,
			defaultVal: 1.0e-4,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Reactor.Cr6",
			usage: `
              Reactor.Cr6 is the initial reduced-precursor concentration [mol/L].`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Reactor.Cocatalyst",
			usage: `
              Reactor.Cocatalyst is the initial cocatalyst concentration [mol/L].`,
			defaultVal: 0.01,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Reactor.Volume",
			usage: `
              Reactor.Volume is the reactor volume [L].`,
			defaultVal: 100000.0,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Reactor.Temperature",
			usage: `
              Reactor.Temperature is the reactor temperature, in the units
              given by Reactor.TemperatureUnits.`,
			defaultVal: 363.15,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Reactor.TemperatureUnits",
			usage: `
              Reactor.TemperatureUnits gives the units of Reactor.Temperature:
              one of K, C, F, or R. The model runs in Kelvin internally.`,
			defaultVal: "K",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Reactor.Type",
			usage: `
              Reactor.Type selects the auxiliary hydrogen side-reaction
              constant. Unrecognized types use a zero constant.`,
			defaultVal: 1,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "ParamFile",
			usage: `
              ParamFile is the path to a TOML kinetic parameter table that
              overrides the compiled-in table. Leave empty to use the
              default parameters.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Sim.Duration",
			usage: `
              Sim.Duration is the simulated time span [h].`,
			defaultVal: 2.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Sim.StepSize",
			usage: `
              Sim.StepSize is the integrator step [h].`,
			defaultVal: 0.001,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile is the path where the simulated trajectory is
              written. The extension selects the format: .csv or .xlsx.`,
			shorthand:  "o",
			defaultVal: "polykin_output.csv",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "OutputExpressions",
			usage: `
              OutputExpressions maps derived output names to expressions
              evaluated over the final recorded state, e.g.
              '{"conversion": "(0.08 - ethylene) / 0.08"}'. Expressions
              may use the built-in functions exp and abs.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "PlotFile",
			usage: `
              PlotFile is the path for a PNG plot of selected trajectory
              variables. If empty, no plot is written.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "PlotVars",
			usage: `
              PlotVars lists the trajectory variables to plot.`,
			defaultVal: []string{"ethylene", "hexene"},
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("POLYKIN")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case []string:
				if option.shorthand == "" {
					set.StringSlice(option.name, option.defaultVal.([]string), option.usage)
				} else {
					set.StringSliceP(option.name, option.shorthand, option.defaultVal.([]string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic(fmt.Sprintf("polykinutil: unsupported option type %T", option.defaultVal))
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}

	Root.AddCommand(versionCmd, runCmd, ratesCmd, propsCmd, convertCmd)
}

// setConfig reads the configuration file if one was given.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("polykin: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "polykin",
	Short: "A gas-phase olefin copolymerization reactor model.",
	Long: `PolyKin models dual-site Ziegler-Natta copolymerization of ethylene
and 1-hexene in stirred gas-phase reactors.
Use the subcommands specified below to access the model functionality.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'POLYKIN_var' where 'var'
is the name of the variable to be set.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of PolyKin.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("PolyKin v%s\n", polykin.Version)
	},
	DisableAutoGenTag: true,
}

// runCmd runs a simulation and writes the trajectory.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an isothermal reactor simulation.",
	Long: `run advances the configured reactor state through Sim.Duration hours
with a fixed-step integrator and writes the trajectory to OutputFile.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sim, err := SimulationFromConfig(Cfg)
		if err != nil {
			return err
		}
		nsteps := int(Cfg.GetFloat64("Sim.Duration")/Cfg.GetFloat64("Sim.StepSize") + 0.5)
		sim.Recorder = polykin.NewRecorder(nsteps)

		logEvery := nsteps / 10
		if logEvery < 1 {
			logEvery = 1
		}
		step := 0
		sim.OnStep = func(t float64, s *polykin.ReactorState) {
			step++
			if step%logEvery == 0 {
				log.WithFields(logrus.Fields{
					"t":        t,
					"ethylene": s.Ethylene,
					"hexene":   s.Hexene,
				}).Info("simulation progress")
			}
		}

		log.WithFields(logrus.Fields{
			"duration": Cfg.GetFloat64("Sim.Duration"),
			"stepSize": Cfg.GetFloat64("Sim.StepSize"),
			"steps":    nsteps,
		}).Info("starting simulation")

		if err := sim.Run(); err != nil {
			return err
		}

		outFile := Cfg.GetString("OutputFile")
		if err := WriteTrajectory(sim.Recorder, outFile); err != nil {
			return err
		}
		log.WithField("file", outFile).Info("wrote trajectory")

		exprs := GetStringMapString("OutputExpressions", Cfg)
		if len(exprs) > 0 {
			derived, err := EvalExpressions(sim.Recorder, exprs)
			if err != nil {
				return err
			}
			for name, v := range derived {
				log.WithFields(logrus.Fields{name: v}).Info("derived output")
			}
		}

		if plotFile := Cfg.GetString("PlotFile"); plotFile != "" {
			if err := PlotSeries(sim.Recorder, Cfg.GetStringSlice("PlotVars"), plotFile); err != nil {
				return err
			}
			log.WithField("file", plotFile).Info("wrote plot")
		}
		return nil
	},
	DisableAutoGenTag: true,
}

// ratesCmd evaluates the rate vector once for the configured state.
var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Evaluate instantaneous reaction rates.",
	Long: `rates evaluates the mechanism once for the configured reactor state
and prints the rate of change of every species, on both a concentration
basis [mol/(L·h)] and a whole-reactor basis [mol/h].`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sim, err := SimulationFromConfig(Cfg)
		if err != nil {
			return err
		}
		r, err := sim.Mechanism.Rates(sim.State)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "variable\tmol/(L·h)\tmol/h")
		concSlice := r.Slice()
		molarFactor := sim.State.Volume
		for i, name := range polykin.StateNames {
			fmt.Fprintf(w, "%s\t%g\t%g\n", name, concSlice[i], concSlice[i]*molarFactor)
		}
		fmt.Fprintf(w, "production [g/h]\t\t%g\n", r.Production)
		return w.Flush()
	},
	DisableAutoGenTag: true,
}

// propsCmd prints pure-component property correlations.
var propsCmd = &cobra.Command{
	Use:   "props component temperatureK",
	Short: "Look up pure-component physical properties.",
	Long: `props evaluates the temperature-dependent property correlations for
the named component at the given temperature [K]. Temperatures outside
the tabulated ranges use an interpolation/extrapolation fallback.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		T, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("polykin: parsing temperature %q: %v", args[1], err)
		}
		vals, err := props.PropertiesAt(args[0], T)
		if err != nil {
			return err
		}
		names := make([]string, 0, len(vals))
		for name := range vals {
			names = append(names, name)
		}
		sort.Strings(names)
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
		for _, name := range names {
			u, err := props.Units(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s\t%g\t%s\n", name, vals[name], u)
		}
		return w.Flush()
	},
	DisableAutoGenTag: true,
}

// convertCmd converts a value between unit systems.
var convertCmd = &cobra.Command{
	Use:   "convert value fromUnit toUnit kind",
	Short: "Convert between unit systems.",
	Long: `convert converts a value between unit systems at the model boundary.
kind is one of pressure, temperature, or mass.`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("polykin: parsing value %q: %v", args[0], err)
		}
		var kind unitconv.Kind
		switch args[3] {
		case "pressure":
			kind = unitconv.Pressure
		case "temperature":
			kind = unitconv.Temperature
		case "mass":
			kind = unitconv.Mass
		default:
			return fmt.Errorf("polykin: unknown quantity kind %q; valid kinds are pressure, temperature, and mass", args[3])
		}
		o, err := unitconv.Convert(v, args[1], args[2], kind)
		if err != nil {
			return err
		}
		cmd.Printf("%g %s = %g %s\n", v, args[1], o, args[2])
		return nil
	},
	DisableAutoGenTag: true,
}
