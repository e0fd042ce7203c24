package metrics

import (
	"uxmetrics/internal/models"
)

// MetricResult is the outcome of a single calculation. Calculators never
// return errors: degraded input yields Value 0, Calculated false, and a
// human-readable Note so callers can decide whether to surface or log it.
type MetricResult struct {
	Value      float64 `json:"value"`
	Calculated bool    `json:"calculated"`
	SampleSize int     `json:"sampleSize,omitempty"`
	Note       string  `json:"note,omitempty"`
}

func uncalculated(note string) MetricResult {
	return MetricResult{Value: 0, Calculated: false, Note: note}
}

// Metric keys per assessment kind, used for cached metric rows and chart
// queries.
const (
	KeySuccessRate = "success_rate"
	KeyTimeOnTask  = "time_on_task_seconds"
	KeyEfficiency  = "efficiency"
	KeyErrorRate   = "error_rate"
	KeyErrorCount  = "error_count"
	KeySEQRating   = "seq_rating"
)

// KeyForKind maps an assessment kind to its primary metric key.
func KeyForKind(kind models.AssessmentKind) string {
	switch kind {
	case models.KindTaskSuccess:
		return KeySuccessRate
	case models.KindTimeOnTask:
		return KeyTimeOnTask
	case models.KindTaskEfficiency:
		return KeyEfficiency
	case models.KindErrorRate:
		return KeyErrorRate
	case models.KindSEQ:
		return KeySEQRating
	}
	return ""
}

// CalculateObservationMetrics calculates every metric a single observation
// supports, keyed by metric name. Payload/kind mismatches degrade to an
// uncalculated result, never an error.
func CalculateObservationMetrics(obs *models.Observation) map[string]MetricResult {
	results := make(map[string]MetricResult)

	switch obs.Kind {
	case models.KindTaskSuccess:
		if obs.Success == nil {
			results[KeySuccessRate] = uncalculated("missing success payload")
			break
		}
		results[KeySuccessRate] = SuccessMetric(obs.Success)

	case models.KindTimeOnTask:
		results[KeyTimeOnTask] = CalculateDuration(obs.Duration)

	case models.KindTaskEfficiency:
		if obs.Efficiency == nil {
			results[KeyEfficiency] = uncalculated("missing efficiency payload")
			break
		}
		results[KeyEfficiency] = EfficiencyMetric(obs.Efficiency)

	case models.KindErrorRate:
		if obs.Errors == nil {
			results[KeyErrorRate] = uncalculated("missing error payload")
			break
		}
		results[KeyErrorRate] = CalculateErrorRate(obs.Errors.Errors, obs.Errors.Opportunities)
		results[KeyErrorCount] = MetricResult{
			Value:      float64(len(obs.Errors.Errors)),
			Calculated: true,
			SampleSize: len(obs.Errors.Errors),
		}

	case models.KindSEQ:
		if obs.SEQ == nil {
			results[KeySEQRating] = uncalculated("missing seq payload")
			break
		}
		results[KeySEQRating] = SEQMetric(obs.SEQ)

	default:
		results[string(obs.Kind)] = uncalculated("unknown assessment kind")
	}

	return results
}

// ObservationValue resolves the primary metric value for one observation.
// This is the per-observation input to the aggregation engine.
func ObservationValue(obs *models.Observation) MetricResult {
	key := KeyForKind(obs.Kind)
	if key == "" {
		return uncalculated("unknown assessment kind")
	}
	return CalculateObservationMetrics(obs)[key]
}
