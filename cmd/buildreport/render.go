package main

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"

	"github.com/bgricker/buildreport/internal/output"
	"github.com/bgricker/buildreport/internal/report"
	"github.com/spf13/cobra"
)

const (
	formatDetailed = "detailed"
	formatSummary  = "summary"
	formatJSON     = "json"
)

func newDetailedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detailed <testLog> <buildLog> [outFile]",
		Short: "Write the full narrative report",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, formatDetailed)
		},
	}
}

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary <testLog> <buildLog> [outFile]",
		Short: "Write the condensed report",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, formatSummary)
		},
	}
}

func newJSONCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "json <testLog> <buildLog> [outFile]",
		Short: "Write the machine-readable report",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, formatJSON)
		},
	}
}

func newAutoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "auto <testLog> <buildLog> [baseName]",
		Short: "Write all three report formats with derived filenames",
		Args:  cobra.RangeArgs(2, 3),
		RunE:  runAuto,
	}
}

// runRender generates one format. With an explicit out file the sink is
// used; otherwise the document goes to stdout. Exit status reflects report
// generation only, never the verdict inside the report.
func runRender(cmd *cobra.Command, args []string, format string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cmd, cfg)

	rep, err := buildReport(cfg, logger, args[0], args[1])
	if err != nil {
		return err
	}

	if len(args) < 3 {
		return renderReport(format, rep, cmd.OutOrStdout())
	}

	var buf bytes.Buffer
	if err := renderReport(format, rep, &buf); err != nil {
		return err
	}
	sink := output.FileSink{Overwrite: cfg.Overwrite}
	path := filepath.Join(cfg.OutputDir, args[2])
	if err := sink.Write(path, buf.Bytes()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}

// runAuto renders every format against the same Report. Writes are
// independent and non-transactional: a failure leaves earlier files behind.
func runAuto(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cmd, cfg)

	rep, err := buildReport(cfg, logger, args[0], args[1])
	if err != nil {
		return err
	}

	base := "build-report"
	if len(args) == 3 {
		base = args[2]
	}

	sink := output.FileSink{Overwrite: cfg.Overwrite}
	outputs := []struct {
		format string
		name   string
	}{
		{formatDetailed, base + "-detailed.md"},
		{formatSummary, base + "-summary.md"},
		{formatJSON, base + ".json"},
	}
	for _, o := range outputs {
		var buf bytes.Buffer
		if err := renderReport(o.format, rep, &buf); err != nil {
			return err
		}
		path := filepath.Join(cfg.OutputDir, o.name)
		if err := sink.Write(path, buf.Bytes()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	}
	return nil
}

func renderReport(format string, rep report.Report, out io.Writer) error {
	switch format {
	case formatDetailed:
		return output.NewDetailed(out).Render(rep)
	case formatSummary:
		return output.NewSummary(out).Render(rep)
	case formatJSON:
		return output.NewJSON(out).Render(rep)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
