// Config loading for the quadcheck CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gogpu/quad"
)

const (
	configFileName = ".quadcheck"
	configFileType = "yaml"

	// Config keys.
	cfgKeyStep  = "step"
	cfgKeyInput = "input"

	// Defaults when neither config file nor flags say otherwise.
	defaultStepConfig = 0.05
	inputPrecise      = "precise"
	inputDevice       = "device"
)

// loadTolerances resolves the tolerance snapshot for one invocation:
// defaults, then the config file, then command-line flags, each layer
// overriding the previous one.
func loadTolerances(cmd *cobra.Command) (quad.Tolerances, error) {
	configFile, _ := cmd.Flags().GetString("config")

	v := viper.New()
	v.SetDefault(cfgKeyStep, defaultStepConfig)
	v.SetDefault(cfgKeyInput, inputPrecise)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		// A missing default config file is not an error; an explicitly
		// named one must exist and parse.
		if configFile != "" {
			return quad.Tolerances{}, fmt.Errorf("read config: %w", err)
		}
	}

	step := v.GetFloat64(cfgKeyStep)
	if cmd.Flags().Changed("step") {
		step, _ = cmd.Flags().GetFloat64("step")
	}
	if !(step > 0) {
		return quad.Tolerances{}, fmt.Errorf("step must be positive, got %v", step)
	}

	input := v.GetString(cfgKeyInput)
	if cmd.Flags().Changed("input") {
		input, _ = cmd.Flags().GetString("input")
	}

	class, err := parseInputClass(input)
	if err != nil {
		return quad.Tolerances{}, err
	}

	return quad.New(step, quad.WithInputClass(class)), nil
}

// parseInputClass maps a config/flag string to an input class.
func parseInputClass(s string) (quad.InputClass, error) {
	switch s {
	case inputPrecise, "":
		return quad.InputPrecise, nil
	case inputDevice:
		return quad.InputDevice, nil
	default:
		return 0, fmt.Errorf("unknown input class %q (want %s or %s)", s, inputPrecise, inputDevice)
	}
}
