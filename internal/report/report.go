package report

import (
	"time"

	"github.com/bgricker/buildreport/internal/profile"
)

// Status is the pass/fail verdict attached to a report or one of its phases.
type Status string

const (
	StatusPassed Status = "PASSED"
	StatusFailed Status = "FAILED"
)

// TestMetrics captures counts extracted from a test run log. Counters come
// from free-text matching, so Passed+Failed+Skipped may undercount Total and
// consumers must tolerate Total == 0.
type TestMetrics struct {
	Total                int     `json:"total"`
	Passed               int     `json:"passed"`
	Failed               int     `json:"failed"`
	Skipped              int     `json:"skipped"`
	ExecutionTimeSeconds float64 `json:"executionTime"`
}

// BuildMetrics captures the outcome of a build step. Success reflects the
// presence of a completion marker and is not reconciled against ErrorCount;
// a build can carry both a success marker and error lines.
type BuildMetrics struct {
	Success          bool    `json:"success"`
	BuildTimeSeconds float64 `json:"time"`
	WarningCount     int     `json:"warnings"`
	ErrorCount       int     `json:"errors"`
}

// Platform describes the host the logs were captured on.
type Platform struct {
	OS     string `json:"os"`
	Arch   string `json:"arch"`
	Kernel string `json:"kernel"`
}

// Aggregated holds values derived from one test and one build record.
type Aggregated struct {
	SuccessRatePercent  int    `json:"successRate"`
	TotalElapsedSeconds int    `json:"totalElapsedSeconds"`
	BuildPercent        int    `json:"buildPercent"`
	TestPercent         int    `json:"testPercent"`
	OverallStatus       Status `json:"overallStatus"`
}

// Report is the immutable snapshot handed to every renderer. One Report is
// built per invocation; the timestamp is fixed at construction so repeated
// renders of the same Report stay byte-identical.
type Report struct {
	Title        string
	GeneratedAt  string
	Environment  profile.Profile
	Tests        TestMetrics
	Build        BuildMetrics
	Aggregated   Aggregated
	Platform     Platform
	FailureLines []string
}

// New assembles a Report, deriving aggregated metrics and stamping the
// generation time in UTC.
func New(title string, env profile.Profile, tests TestMetrics, build BuildMetrics, platform Platform, failureLines []string) Report {
	return Report{
		Title:        title,
		GeneratedAt:  time.Now().UTC().Format(time.RFC3339),
		Environment:  env,
		Tests:        tests,
		Build:        build,
		Aggregated:   Aggregate(tests, build),
		Platform:     platform,
		FailureLines: append([]string{}, failureLines...),
	}
}
