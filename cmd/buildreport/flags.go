package main

import (
	"fmt"

	"github.com/bgricker/buildreport/internal/config"
	"github.com/spf13/cobra"
)

func gatherFlags(cmd *cobra.Command) (config.FlagValues, error) {
	flags := cmd.Flags()
	var values config.FlagValues

	if flags.Changed("env") {
		v, err := flags.GetString("env")
		if err != nil {
			return values, fmt.Errorf("parse --env: %w", err)
		}
		values.Environment = config.StringFlag{Value: v, Set: true}
	}

	if flags.Changed("title") {
		v, err := flags.GetString("title")
		if err != nil {
			return values, fmt.Errorf("parse --title: %w", err)
		}
		values.Title = config.StringFlag{Value: v, Set: true}
	}

	if flags.Changed("output-dir") {
		v, err := flags.GetString("output-dir")
		if err != nil {
			return values, fmt.Errorf("parse --output-dir: %w", err)
		}
		values.OutputDir = config.StringFlag{Value: v, Set: true}
	}

	if flags.Changed("force") {
		v, err := flags.GetBool("force")
		if err != nil {
			return values, fmt.Errorf("parse --force: %w", err)
		}
		values.Overwrite = config.BoolFlag{Value: v, Set: true}
	}

	if flags.Changed("verbose") {
		v, err := flags.GetBool("verbose")
		if err != nil {
			return values, fmt.Errorf("parse --verbose: %w", err)
		}
		values.Verbose = config.BoolFlag{Value: v, Set: true}
	}

	return values, nil
}
