package parser

import (
	"regexp"

	"github.com/bgricker/buildreport/internal/report"
)

// successMarkers are the completion lines a build step is known to print.
// Presence of any one of them flips Success; error lines do not flip it back
// (the two signals are reported side by side, not reconciled).
var successMarkers = []string{
	"Build complete!",
	"BUILD SUCCEEDED",
}

const (
	warningMarker = "warning:"
	errorMarker   = "error:"
)

// buildTimeRules extract the build duration in seconds. Matches lines such
// as "Build complete! (12.34s)".
var buildTimeRules = []extractRule{
	{name: "build-complete", pattern: regexp.MustCompile(`Build complete!\s*\((\d+(?:\.\d+)?)s\)`)},
}

// ParseBuild extracts build metrics from captured build output. An empty or
// unrecognized blob yields zero metrics with Success=false; reading the file
// and deciding whether its absence is fatal is the caller's concern.
func ParseBuild(text string) report.BuildMetrics {
	return report.BuildMetrics{
		Success:          containsAny(text, successMarkers),
		BuildTimeSeconds: extractSeconds(text, buildTimeRules),
		WarningCount:     countLines(text, warningMarker),
		ErrorCount:       countLines(text, errorMarker),
	}
}
