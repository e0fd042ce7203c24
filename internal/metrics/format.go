package metrics

import (
	"fmt"
	"math"
)

// FormatDuration renders seconds as "Xm Ys". Negative or non-finite input
// renders as "0m 0s".
func FormatDuration(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return "0m 0s"
	}

	total := int(math.Floor(seconds))
	return fmt.Sprintf("%dm %ds", total/60, total%60)
}

// FormatDurationDetailed renders seconds with an hours unit once the value
// reaches an hour, dropping zero-value leading units. Seconds are always
// shown. Negative or non-finite input renders as "0s".
func FormatDurationDetailed(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return "0s"
	}

	total := int(math.Floor(seconds))
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, secs)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, secs)
	default:
		return fmt.Sprintf("%ds", secs)
	}
}

// FormatPercentage rounds a value to the given number of decimals and
// appends a percent sign. Non-finite input renders as "0.0%".
func FormatPercentage(value float64, decimals int) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "0.0%"
	}
	if decimals < 0 {
		decimals = 0
	}

	return fmt.Sprintf("%.*f%%", decimals, value)
}
