package metrics

import (
	"math"

	"uxmetrics/internal/models"
)

// CalculateStepEfficiency compares the optimal step count against the steps
// a participant actually took, as a percentage. The result is deliberately
// not clamped at 100: a participant can beat the optimal path.
func CalculateStepEfficiency(optimalSteps, actualSteps int) MetricResult {
	if actualSteps <= 0 {
		return uncalculated("actual steps must be positive")
	}
	if optimalSteps < 0 {
		return uncalculated("optimal steps must be non-negative")
	}

	return MetricResult{
		Value:      float64(optimalSteps) / float64(actualSteps) * 100,
		Calculated: true,
		SampleSize: 1,
	}
}

// CalculateTimeEfficiency is the time-based variant, comparing the optimal
// completion time against the observed one. Also not clamped at 100.
func CalculateTimeEfficiency(optimalSeconds, actualSeconds float64) MetricResult {
	if math.IsNaN(actualSeconds) || math.IsInf(actualSeconds, 0) ||
		math.IsNaN(optimalSeconds) || math.IsInf(optimalSeconds, 0) {
		return uncalculated("efficiency times must be finite")
	}
	if actualSeconds <= 0 {
		return uncalculated("actual time must be positive")
	}
	if optimalSeconds < 0 {
		return uncalculated("optimal time must be non-negative")
	}

	return MetricResult{
		Value:      optimalSeconds / actualSeconds * 100,
		Calculated: true,
		SampleSize: 1,
	}
}

// EfficiencyMetric dispatches to the step- or time-based variant based on
// which fields the observation carries.
func EfficiencyMetric(data *models.EfficiencyData) MetricResult {
	if data.StepBased() {
		return CalculateStepEfficiency(data.OptimalSteps, data.ActualSteps)
	}
	if data.OptimalTimeSeconds != nil && data.ActualTimeSeconds != nil {
		return CalculateTimeEfficiency(*data.OptimalTimeSeconds, *data.ActualTimeSeconds)
	}
	return uncalculated("efficiency requires step counts or a time pair")
}
