package output

import (
	"bytes"
	"fmt"
	"io"

	"github.com/bgricker/buildreport/internal/report"
)

// SummaryRenderer produces the condensed table plus a one-line verdict.
type SummaryRenderer struct {
	out io.Writer
}

// NewSummary creates a SummaryRenderer writing to out.
func NewSummary(out io.Writer) *SummaryRenderer {
	return &SummaryRenderer{out: out}
}

// Render writes the summary document.
func (s *SummaryRenderer) Render(rep report.Report) error {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# %s — Summary\n\n", rep.Title)
	fmt.Fprintf(&buf, "| Field | Value |\n|-------|-------|\n")
	fmt.Fprintf(&buf, "| Generated | %s |\n", rep.GeneratedAt)
	fmt.Fprintf(&buf, "| Environment | %s |\n", rep.Environment.Name)
	fmt.Fprintf(&buf, "| Build | %s (%s) |\n", report.BuildStatus(rep.Build), FormatDuration(int(rep.Build.BuildTimeSeconds)))
	fmt.Fprintf(&buf, "| Tests | %d/%d passed, %d failed, %d skipped |\n",
		rep.Tests.Passed, rep.Tests.Total, rep.Tests.Failed, rep.Tests.Skipped)
	fmt.Fprintf(&buf, "| Success rate | %d%% |\n", rep.Aggregated.SuccessRatePercent)
	fmt.Fprintf(&buf, "| Total elapsed | %s |\n\n", FormatDuration(rep.Aggregated.TotalElapsedSeconds))

	passed := rep.Aggregated.OverallStatus == report.StatusPassed
	fmt.Fprintf(&buf, "%s Overall Status: %s\n", statusGlyph(passed), rep.Aggregated.OverallStatus)

	_, err := buf.WriteTo(s.out)
	return err
}
