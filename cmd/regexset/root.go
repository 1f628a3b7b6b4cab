package main

import (
	"github.com/coregx/regexset/config"
	"github.com/spf13/cobra"
)

var (
	configPath string
	debug      bool
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "regexset",
		Short: "Set-algebra operations over regular languages",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML engine configuration file")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable construction tracing")

	root.AddCommand(
		newFromRegexCmd(),
		newToRegexCmd(),
		newUnionCmd(),
		newIntersectCmd(),
		newSubtractCmd(),
		newComplementCmd(),
		newIsEmptyCmd(),
		newIsEquivalentCmd(),
		newIsSubsetCmd(),
	)
	return root
}

// loadEngineConfig resolves the engine configuration for this invocation:
// the file named by --config if given, defaults otherwise, with --debug
// always overriding whatever the file specifies.
func loadEngineConfig() (config.EngineConfig, error) {
	cfg := config.DefaultEngineConfig()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return config.EngineConfig{}, err
		}
	}
	if debug {
		cfg.Debug = true
	}
	return cfg, nil
}
