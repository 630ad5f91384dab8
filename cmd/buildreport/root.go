package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "buildreport",
		Short:         "Buildreport turns captured build and test logs into reports",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	persistent := cmd.PersistentFlags()
	persistent.String("env", "", "environment profile override (development|automated|production|<custom>)")
	persistent.String("title", "", "report title")
	persistent.String("output-dir", "", "directory for report files")
	persistent.Bool("force", false, "overwrite existing report files")
	persistent.BoolP("verbose", "v", false, "log parser diagnostics")

	cmd.AddCommand(newDetailedCmd())
	cmd.AddCommand(newSummaryCmd())
	cmd.AddCommand(newJSONCmd())
	cmd.AddCommand(newAutoCmd())
	cmd.AddCommand(newParseTestCmd())
	cmd.AddCommand(newParseBuildCmd())

	return cmd
}
