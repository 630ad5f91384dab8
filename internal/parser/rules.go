// Package parser extracts structured metrics from captured build and test
// output. Parsers are pure over text and never fail: unrecognized content
// degrades to zero-valued metrics so a report can still be produced when a
// tool's output format drifts.
package parser

import (
	"bufio"
	"regexp"
	"strconv"
	"strings"
)

// extractRule is one prioritized attempt at pulling a numeric field out of a
// log. Pattern must capture the number in group 1. Within a rule the last
// matching line wins, because re-running a step inside one capture appends a
// second summary line and the final one reflects the run being reported.
type extractRule struct {
	name    string
	pattern *regexp.Regexp
}

// extractSeconds runs rules in priority order over the whole text and
// returns the first rule that matched anywhere, taking that rule's last
// match. Returns 0 when every rule misses.
func extractSeconds(text string, rules []extractRule) float64 {
	for _, rule := range rules {
		value, ok := lastMatch(text, rule.pattern)
		if ok {
			return value
		}
	}
	return 0
}

func lastMatch(text string, pattern *regexp.Regexp) (float64, bool) {
	var (
		value float64
		found bool
	)
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		m := pattern.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		value = v
		found = true
	}
	return value, found
}

// countLines returns how many lines contain marker. Duplicate markers on one
// line count once; this is substring matching, not log-level parsing.
func countLines(text, marker string) int {
	count := 0
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if strings.Contains(scanner.Text(), marker) {
			count++
		}
	}
	return count
}

// countMatches returns how many lines match pattern, one count per line.
func countMatches(text string, pattern *regexp.Regexp) int {
	count := 0
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if pattern.MatchString(scanner.Text()) {
			count++
		}
	}
	return count
}

// containsAny reports whether any of the markers appears in text.
func containsAny(text string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}

// matchingLines returns every line matching pattern, in order.
func matchingLines(text string, pattern *regexp.Regexp) []string {
	var lines []string
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if pattern.MatchString(scanner.Text()) {
			lines = append(lines, scanner.Text())
		}
	}
	return lines
}
