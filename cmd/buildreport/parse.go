package main

import (
	"encoding/json"

	"github.com/bgricker/buildreport/internal/parser"
	"github.com/spf13/cobra"
)

func newParseTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse-test <testLog>",
		Short: "Print raw parsed test metrics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readLog("test", args[0])
			if err != nil {
				return err
			}
			return emitMetrics(cmd, parser.ParseTest(text))
		},
	}
}

func newParseBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse-build <buildLog>",
		Short: "Print raw parsed build metrics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readLog("build", args[0])
			if err != nil {
				return err
			}
			return emitMetrics(cmd, parser.ParseBuild(text))
		},
	}
}

func emitMetrics(cmd *cobra.Command, metrics interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(metrics)
}
