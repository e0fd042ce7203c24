// Package aggregate collapses filtered observation sets into study-level
// summaries and compares them. Every call recomputes from the full filtered
// set: there is no incremental state to go stale when new observations land.
package aggregate

import (
	"uxmetrics/internal/metrics"
	"uxmetrics/internal/models"
)

// Summarize collapses the observations of one assessment kind into a
// summary. Time-on-task aggregates with the median; every other kind with
// the mean. Observations whose metric could not be calculated are skipped.
func Summarize(kind models.AssessmentKind, observations []models.Observation, filter Filter) Summary {
	values := make([]float64, 0, len(observations))

	for _, obs := range Apply(filter, observations) {
		if obs.Kind != kind {
			continue
		}
		result := metrics.ObservationValue(&obs)
		if !result.Calculated {
			continue
		}
		values = append(values, result.Value)
	}

	if kind == models.KindTimeOnTask {
		return Median(values)
	}
	return Mean(values)
}

// SummarizeAll computes one summary per assessment kind over the same
// filtered set. Kinds with no matching observations map to the identity
// summary.
func SummarizeAll(observations []models.Observation, filter Filter) map[models.AssessmentKind]Summary {
	kinds := []models.AssessmentKind{
		models.KindTaskSuccess,
		models.KindTimeOnTask,
		models.KindTaskEfficiency,
		models.KindErrorRate,
		models.KindSEQ,
	}

	summaries := make(map[models.AssessmentKind]Summary, len(kinds))
	for _, kind := range kinds {
		summaries[kind] = Summarize(kind, observations, filter)
	}
	return summaries
}
