package metrics

import (
	"uxmetrics/internal/models"
)

// CalculateSuccessRate returns the percentage of successful attempts across
// a batch of outcomes. An empty batch yields 0, not an error.
func CalculateSuccessRate(outcomes []bool) float64 {
	if len(outcomes) == 0 {
		return 0
	}

	successes := 0
	for _, ok := range outcomes {
		if ok {
			successes++
		}
	}

	return float64(successes) / float64(len(outcomes)) * 100
}

// SuccessValue maps a single attempt outcome to its rate contribution.
func SuccessValue(successful bool) float64 {
	if successful {
		return 100
	}
	return 0
}

// SuccessMetric calculates the metric for a single task-success observation.
func SuccessMetric(data *models.SuccessData) MetricResult {
	return MetricResult{
		Value:      SuccessValue(data.Successful),
		Calculated: true,
		SampleSize: 1,
	}
}
