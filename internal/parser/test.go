package parser

import (
	"regexp"

	"github.com/bgricker/buildreport/internal/report"
)

// Per-category test case markers, one count per matching line. XCTest prints
// a started line for every case and then exactly one outcome line, so the
// started count doubles as the total.
var (
	caseStarted = regexp.MustCompile(`Test Case '.+' started`)
	casePassed  = regexp.MustCompile(`Test Case '.+' passed`)
	caseFailed  = regexp.MustCompile(`Test Case '.+' failed`)
	caseSkipped = regexp.MustCompile(`Test Case '.+' skipped`)
)

// executionTimeRules extract the suite duration from the trailing summary,
// e.g. "Executed 10 tests, with 0 failures (0 unexpected) in 0.123 (0.456)
// seconds." The parenthesized wall-clock figure takes precedence; the bare
// figure is the fallback.
var executionTimeRules = []extractRule{
	{name: "executed-wall-clock", pattern: regexp.MustCompile(`Executed \d+ tests?, .* in \d+(?:\.\d+)? \((\d+(?:\.\d+)?)\) seconds`)},
	{name: "executed-bare", pattern: regexp.MustCompile(`Executed \d+ tests?, .* in (\d+(?:\.\d+)?) seconds`)},
}

// ParseTest extracts test metrics from captured test output. Unrecognized
// content degrades to zero counts; the counts are independent line matches,
// so Passed+Failed+Skipped is not guaranteed to reach Total.
func ParseTest(text string) report.TestMetrics {
	return report.TestMetrics{
		Total:                countMatches(text, caseStarted),
		Passed:               countMatches(text, casePassed),
		Failed:               countMatches(text, caseFailed),
		Skipped:              countMatches(text, caseSkipped),
		ExecutionTimeSeconds: extractSeconds(text, executionTimeRules),
	}
}

// FailureLines returns the raw failed-case lines for the troubleshooting
// excerpt of the detailed report.
func FailureLines(text string) []string {
	return matchingLines(text, caseFailed)
}
