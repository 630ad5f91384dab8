package output

import (
	"encoding/json"
	"io"

	"github.com/bgricker/buildreport/internal/report"
)

// JSONRenderer emits the machine-readable record.
type JSONRenderer struct {
	out io.Writer
}

// NewJSON creates a JSON renderer writing to out.
func NewJSON(out io.Writer) *JSONRenderer {
	return &JSONRenderer{out: out}
}

// Record is the JSON output schema. The status block decomposes the verdict
// into overall/build/tests flags so automation can tell a broken build from
// broken tests without re-parsing logs.
type Record struct {
	Timestamp   string      `json:"timestamp"`
	Environment string      `json:"environment"`
	Platform    PlatformDoc `json:"platform"`
	Build       BuildDoc    `json:"build"`
	Tests       TestsDoc    `json:"tests"`
	Status      StatusDoc   `json:"status"`
}

type PlatformDoc struct {
	OS     string `json:"os"`
	Arch   string `json:"arch"`
	Kernel string `json:"kernel"`
}

type BuildDoc struct {
	Success  bool    `json:"success"`
	Time     float64 `json:"time"`
	Warnings int     `json:"warnings"`
	Errors   int     `json:"errors"`
}

type TestsDoc struct {
	Total         int     `json:"total"`
	Passed        int     `json:"passed"`
	Failed        int     `json:"failed"`
	Skipped       int     `json:"skipped"`
	ExecutionTime float64 `json:"executionTime"`
	SuccessRate   int     `json:"successRate"`
}

type StatusDoc struct {
	Overall report.Status `json:"overall"`
	Build   report.Status `json:"build"`
	Tests   report.Status `json:"tests"`
}

// NewRecord projects a Report into the JSON schema. Every renderer derives
// from the same Report, so the numbers here always agree with the documents.
func NewRecord(rep report.Report) Record {
	return Record{
		Timestamp:   rep.GeneratedAt,
		Environment: rep.Environment.Name,
		Platform: PlatformDoc{
			OS:     rep.Platform.OS,
			Arch:   rep.Platform.Arch,
			Kernel: rep.Platform.Kernel,
		},
		Build: BuildDoc{
			Success:  rep.Build.Success,
			Time:     rep.Build.BuildTimeSeconds,
			Warnings: rep.Build.WarningCount,
			Errors:   rep.Build.ErrorCount,
		},
		Tests: TestsDoc{
			Total:         rep.Tests.Total,
			Passed:        rep.Tests.Passed,
			Failed:        rep.Tests.Failed,
			Skipped:       rep.Tests.Skipped,
			ExecutionTime: rep.Tests.ExecutionTimeSeconds,
			SuccessRate:   rep.Aggregated.SuccessRatePercent,
		},
		Status: StatusDoc{
			Overall: rep.Aggregated.OverallStatus,
			Build:   report.BuildStatus(rep.Build),
			Tests:   report.TestStatus(rep.Tests),
		},
	}
}

// Render encodes the record as indented JSON.
func (j *JSONRenderer) Render(rep report.Report) error {
	enc := json.NewEncoder(j.out)
	enc.SetIndent("", "  ")
	return enc.Encode(NewRecord(rep))
}
