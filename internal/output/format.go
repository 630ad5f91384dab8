package output

import "fmt"

// FormatDuration renders whole seconds in the most compact unit that keeps
// every component visible: "59s", "1m 0s", "1h 0m 0s".
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	if seconds < 3600 {
		return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
	}
	return fmt.Sprintf("%dh %dm %ds", seconds/3600, seconds%3600/60, seconds%60)
}

func statusGlyph(passed bool) string {
	if passed {
		return "✅"
	}
	return "❌"
}
