package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/bgricker/buildreport/internal/profile"
	"github.com/bgricker/buildreport/internal/report"
)

func passingReport() report.Report {
	tests := report.TestMetrics{Total: 10, Passed: 10, ExecutionTimeSeconds: 5}
	build := report.BuildMetrics{Success: true, BuildTimeSeconds: 2}
	return report.Report{
		Title:       "Nightly",
		GeneratedAt: "2026-08-30T12:00:00Z",
		Environment: profile.Resolve(profile.Signals{}),
		Tests:       tests,
		Build:       build,
		Aggregated:  report.Aggregate(tests, build),
		Platform:    report.Platform{OS: "darwin", Arch: "arm64", Kernel: "23.0.0"},
	}
}

func failingReport() report.Report {
	tests := report.TestMetrics{Total: 10, Passed: 7, Failed: 3, ExecutionTimeSeconds: 5}
	build := report.BuildMetrics{Success: true, BuildTimeSeconds: 2}
	rep := passingReport()
	rep.Tests = tests
	rep.Aggregated = report.Aggregate(tests, build)
	rep.FailureLines = []string{
		"Test Case '-[CoreTests.ParserTests testFallback]' failed (0.002 seconds).",
	}
	return rep
}

func TestSummaryVerdictLine(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := NewSummary(buf).Render(passingReport()); err != nil {
		t.Fatalf("render summary: %v", err)
	}
	if !strings.Contains(buf.String(), "✅ Overall Status: PASSED") {
		t.Fatalf("expected passing verdict line, got %q", buf.String())
	}

	buf.Reset()
	if err := NewSummary(buf).Render(failingReport()); err != nil {
		t.Fatalf("render summary: %v", err)
	}
	if !strings.Contains(buf.String(), "❌ Overall Status: FAILED") {
		t.Fatalf("expected failing verdict line, got %q", buf.String())
	}
}

func TestDetailedTroubleshootingExcerpt(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := NewDetailed(buf).Render(failingReport()); err != nil {
		t.Fatalf("render detailed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "## Failing tests") {
		t.Fatalf("expected troubleshooting section, got:\n%s", out)
	}
	if !strings.Contains(out, "testFallback") {
		t.Fatalf("expected raw failure line in excerpt, got:\n%s", out)
	}

	buf.Reset()
	if err := NewDetailed(buf).Render(passingReport()); err != nil {
		t.Fatalf("render detailed: %v", err)
	}
	if strings.Contains(buf.String(), "## Failing tests") {
		t.Fatal("passing report must not include a troubleshooting section")
	}
}

func TestDetailedPerformanceVerdict(t *testing.T) {
	rep := passingReport()

	buf := &bytes.Buffer{}
	if err := NewDetailed(buf).Render(rep); err != nil {
		t.Fatalf("render detailed: %v", err)
	}
	if !strings.Contains(buf.String(), "Performance: PASSED") {
		t.Fatalf("7s run should beat the 1m 0s development target, got:\n%s", buf.String())
	}

	slowTests := rep.Tests
	slowTests.ExecutionTimeSeconds = 200
	rep.Tests = slowTests
	rep.Aggregated = report.Aggregate(slowTests, rep.Build)

	buf.Reset()
	if err := NewDetailed(buf).Render(rep); err != nil {
		t.Fatalf("render detailed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Performance: WARNING") {
		t.Fatalf("slow run should warn, got:\n%s", out)
	}
	if !strings.Contains(out, "✅ Overall Status: PASSED") {
		t.Fatalf("timing alone must never fail the report, got:\n%s", out)
	}
}

func TestDetailedSuccessWithErrorsNote(t *testing.T) {
	rep := passingReport()
	build := rep.Build
	build.ErrorCount = 2
	rep.Build = build
	rep.Aggregated = report.Aggregate(rep.Tests, build)

	buf := &bytes.Buffer{}
	if err := NewDetailed(buf).Render(rep); err != nil {
		t.Fatalf("render detailed: %v", err)
	}
	if !strings.Contains(buf.String(), "2 error line(s)") {
		t.Fatalf("expected note about error lines alongside success, got:\n%s", buf.String())
	}
}

func TestJSONRecordFields(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := NewJSON(buf).Render(failingReport()); err != nil {
		t.Fatalf("render json: %v", err)
	}

	var decoded Record
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if decoded.Timestamp != "2026-08-30T12:00:00Z" {
		t.Fatalf("timestamp = %q", decoded.Timestamp)
	}
	if decoded.Environment != profile.NameDevelopment {
		t.Fatalf("environment = %q", decoded.Environment)
	}
	if decoded.Platform.Kernel != "23.0.0" {
		t.Fatalf("kernel = %q", decoded.Platform.Kernel)
	}
	if decoded.Tests.SuccessRate != 70 {
		t.Fatalf("success rate = %d, want 70", decoded.Tests.SuccessRate)
	}
	if decoded.Status.Overall != report.StatusFailed {
		t.Fatalf("overall = %s, want FAILED", decoded.Status.Overall)
	}
	if decoded.Status.Build != report.StatusPassed {
		t.Fatalf("build flag = %s, want PASSED (build broke vs tests broke must stay distinguishable)", decoded.Status.Build)
	}
	if decoded.Status.Tests != report.StatusFailed {
		t.Fatalf("tests flag = %s, want FAILED", decoded.Status.Tests)
	}
}

func TestRenderersAgreeOnStatus(t *testing.T) {
	for _, rep := range []report.Report{passingReport(), failingReport()} {
		var detailed, summary, jsonOut bytes.Buffer
		if err := NewDetailed(&detailed).Render(rep); err != nil {
			t.Fatalf("render detailed: %v", err)
		}
		if err := NewSummary(&summary).Render(rep); err != nil {
			t.Fatalf("render summary: %v", err)
		}
		if err := NewJSON(&jsonOut).Render(rep); err != nil {
			t.Fatalf("render json: %v", err)
		}

		wantLine := "Overall Status: " + string(rep.Aggregated.OverallStatus)
		if !strings.Contains(detailed.String(), wantLine) {
			t.Fatalf("detailed disagrees with %s", rep.Aggregated.OverallStatus)
		}
		if !strings.Contains(summary.String(), wantLine) {
			t.Fatalf("summary disagrees with %s", rep.Aggregated.OverallStatus)
		}
		var decoded Record
		if err := json.Unmarshal(jsonOut.Bytes(), &decoded); err != nil {
			t.Fatalf("decode json: %v", err)
		}
		if decoded.Status.Overall != rep.Aggregated.OverallStatus {
			t.Fatalf("json disagrees: %s vs %s", decoded.Status.Overall, rep.Aggregated.OverallStatus)
		}
	}
}

func TestRenderersIdempotent(t *testing.T) {
	rep := failingReport()
	for name, render := range map[string]func(*bytes.Buffer) error{
		"detailed": func(b *bytes.Buffer) error { return NewDetailed(b).Render(rep) },
		"summary":  func(b *bytes.Buffer) error { return NewSummary(b).Render(rep) },
		"json":     func(b *bytes.Buffer) error { return NewJSON(b).Render(rep) },
	} {
		var first, second bytes.Buffer
		if err := render(&first); err != nil {
			t.Fatalf("%s first render: %v", name, err)
		}
		if err := render(&second); err != nil {
			t.Fatalf("%s second render: %v", name, err)
		}
		if first.String() != second.String() {
			t.Fatalf("%s renders are not byte-identical", name)
		}
	}
}
