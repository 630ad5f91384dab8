package output

import (
	"bytes"
	"fmt"
	"io"

	"github.com/bgricker/buildreport/internal/profile"
	"github.com/bgricker/buildreport/internal/report"
)

// DetailedRenderer produces the full narrative report with environment
// context, metric tables and a performance verdict.
type DetailedRenderer struct {
	out io.Writer
}

// NewDetailed creates a DetailedRenderer writing to out.
func NewDetailed(out io.Writer) *DetailedRenderer {
	return &DetailedRenderer{out: out}
}

// Render writes the detailed document. It is a pure projection of rep: the
// same Report renders byte-identically every time.
func (d *DetailedRenderer) Render(rep report.Report) error {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# %s\n\n", rep.Title)
	fmt.Fprintf(&buf, "Generated: %s\n", rep.GeneratedAt)
	fmt.Fprintf(&buf, "Platform: %s/%s (kernel %s)\n\n", rep.Platform.OS, rep.Platform.Arch, rep.Platform.Kernel)

	fmt.Fprintf(&buf, "## Environment\n\n")
	fmt.Fprintf(&buf, "| Field | Value |\n|-------|-------|\n")
	fmt.Fprintf(&buf, "| Name | %s |\n", rep.Environment.Name)
	fmt.Fprintf(&buf, "| Mock level | %s |\n", rep.Environment.MockLevel)
	fmt.Fprintf(&buf, "| Hardware tests | %s |\n", rep.Environment.HardwareTests)
	fmt.Fprintf(&buf, "| System extension mode | %s |\n", rep.Environment.SystemExtensionMode)
	fmt.Fprintf(&buf, "| Target duration | %s |\n\n", FormatDuration(int(rep.Environment.TargetDuration.Seconds())))
	fmt.Fprintf(&buf, "%s\n\n", rep.Environment.Description)

	fmt.Fprintf(&buf, "## Build\n\n")
	fmt.Fprintf(&buf, "| Metric | Value |\n|--------|-------|\n")
	fmt.Fprintf(&buf, "| Status | %s |\n", report.BuildStatus(rep.Build))
	fmt.Fprintf(&buf, "| Duration | %s |\n", FormatDuration(int(rep.Build.BuildTimeSeconds)))
	fmt.Fprintf(&buf, "| Warnings | %d |\n", rep.Build.WarningCount)
	fmt.Fprintf(&buf, "| Errors | %d |\n\n", rep.Build.ErrorCount)
	if rep.Build.Success && rep.Build.ErrorCount > 0 {
		fmt.Fprintf(&buf, "Note: the build reported completion but %d error line(s) were captured.\n\n", rep.Build.ErrorCount)
	}

	fmt.Fprintf(&buf, "## Tests\n\n")
	fmt.Fprintf(&buf, "| Metric | Value |\n|--------|-------|\n")
	fmt.Fprintf(&buf, "| Total | %d |\n", rep.Tests.Total)
	fmt.Fprintf(&buf, "| Passed | %d |\n", rep.Tests.Passed)
	fmt.Fprintf(&buf, "| Failed | %d |\n", rep.Tests.Failed)
	fmt.Fprintf(&buf, "| Skipped | %d |\n", rep.Tests.Skipped)
	fmt.Fprintf(&buf, "| Success rate | %d%% |\n", rep.Aggregated.SuccessRatePercent)
	fmt.Fprintf(&buf, "| Duration | %s |\n\n", FormatDuration(int(rep.Tests.ExecutionTimeSeconds)))

	fmt.Fprintf(&buf, "## Performance\n\n")
	fmt.Fprintf(&buf, "Total elapsed: %s (build %d%%, tests %d%%)\n",
		FormatDuration(rep.Aggregated.TotalElapsedSeconds),
		rep.Aggregated.BuildPercent, rep.Aggregated.TestPercent)
	fmt.Fprintf(&buf, "%s\n\n", performanceVerdict(rep))

	fmt.Fprintf(&buf, "## Notes\n\n")
	fmt.Fprintf(&buf, "%s\n", profile.Commentary(rep.Environment.Name))

	if rep.Tests.Failed > 0 {
		fmt.Fprintf(&buf, "\n## Failing tests\n\n")
		for _, line := range rep.FailureLines {
			fmt.Fprintf(&buf, "    %s\n", line)
		}
	}

	fmt.Fprintf(&buf, "\n%s Overall Status: %s\n", statusGlyph(rep.Aggregated.OverallStatus == report.StatusPassed), rep.Aggregated.OverallStatus)

	_, err := buf.WriteTo(d.out)
	return err
}

// performanceVerdict compares elapsed time against the profile target. A
// slow run warns; it never fails the report on timing alone.
func performanceVerdict(rep report.Report) string {
	target := int(rep.Environment.TargetDuration.Seconds())
	if rep.Aggregated.TotalElapsedSeconds < target {
		return fmt.Sprintf("Performance: PASSED (under the %s target)", FormatDuration(target))
	}
	return fmt.Sprintf("Performance: WARNING (exceeded the %s target)", FormatDuration(target))
}
