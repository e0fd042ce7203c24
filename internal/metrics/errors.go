package metrics

import (
	"uxmetrics/internal/models"
)

// CalculateErrorRate returns observed errors per opportunity as a
// percentage. The rate may exceed 100: one opportunity can produce several
// errors, and that is meaningful signal, not a bug.
func CalculateErrorRate(errs []models.ErrorDetail, opportunities int) MetricResult {
	if opportunities <= 0 {
		return uncalculated("opportunities must be positive")
	}

	return MetricResult{
		Value:      float64(len(errs)) / float64(opportunities) * 100,
		Calculated: true,
		SampleSize: len(errs),
	}
}

// ErrorBreakdown counts errors per tracked category. Every category key is
// present in the result even when its count is zero; errors with an unknown
// type are ignored.
func ErrorBreakdown(errs []models.ErrorDetail) map[models.ErrorType]int {
	breakdown := make(map[models.ErrorType]int, len(models.ErrorTypes))
	for _, t := range models.ErrorTypes {
		breakdown[t] = 0
	}

	for _, e := range errs {
		if _, ok := breakdown[e.Type]; ok {
			breakdown[e.Type]++
		}
	}

	return breakdown
}
