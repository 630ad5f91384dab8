package report

// Aggregate derives secondary metrics from one test and one build record.
// All divisions floor, and every zero denominator yields 0 instead of an
// error: an empty log should still produce a renderable report.
func Aggregate(tests TestMetrics, build BuildMetrics) Aggregated {
	elapsed := int(build.BuildTimeSeconds) + int(tests.ExecutionTimeSeconds)

	agg := Aggregated{
		SuccessRatePercent:  SuccessRatePercent(tests.Passed, tests.Total),
		TotalElapsedSeconds: elapsed,
		OverallStatus:       overallStatus(tests, build),
	}
	if elapsed > 0 {
		agg.BuildPercent = 100 * int(build.BuildTimeSeconds) / elapsed
		agg.TestPercent = 100 * int(tests.ExecutionTimeSeconds) / elapsed
	}
	return agg
}

// SuccessRatePercent returns floor(100*passed/total), or 0 when total is 0.
func SuccessRatePercent(passed, total int) int {
	if total == 0 {
		return 0
	}
	return 100 * passed / total
}

// overallStatus is PASSED only for zero failed tests and a successful build.
// Zero detected tests is FAILED, never vacuously PASSED.
func overallStatus(tests TestMetrics, build BuildMetrics) Status {
	if tests.Failed == 0 && tests.Total > 0 && build.Success {
		return StatusPassed
	}
	return StatusFailed
}

// BuildStatus reports the build phase in isolation.
func BuildStatus(build BuildMetrics) Status {
	if build.Success {
		return StatusPassed
	}
	return StatusFailed
}

// TestStatus reports the test phase in isolation. Like the overall verdict,
// zero detected tests does not pass.
func TestStatus(tests TestMetrics) Status {
	if tests.Failed == 0 && tests.Total > 0 {
		return StatusPassed
	}
	return StatusFailed
}
