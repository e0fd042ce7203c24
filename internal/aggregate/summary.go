package aggregate

import (
	"sort"
)

// Summary is a study-level statistic over one metric. A summary over zero
// observations is the identity element: Count 0 and a nil Value, which
// JSON-encodes as an explicit null so importers can reconstruct it exactly.
type Summary struct {
	Value *float64 `json:"value"`
	Count int      `json:"count"`
}

// Mean averages the given values. Empty input yields the identity summary,
// never NaN.
func Mean(values []float64) Summary {
	if len(values) == 0 {
		return Summary{Value: nil, Count: 0}
	}

	var sum float64
	for _, v := range values {
		sum += v
	}

	mean := sum / float64(len(values))
	return Summary{Value: &mean, Count: len(values)}
}

// Median returns the middle value of the sorted input, or the average of
// the two middle values for an even count. Used for time-on-task, where a
// single distracted participant would drag a mean badly. The input slice is
// not modified.
func Median(values []float64) Summary {
	if len(values) == 0 {
		return Summary{Value: nil, Count: 0}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	var median float64
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		median = sorted[mid]
	} else {
		median = (sorted[mid-1] + sorted[mid]) / 2
	}

	return Summary{Value: &median, Count: len(sorted)}
}
