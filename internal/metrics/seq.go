package metrics

import (
	"math"

	"uxmetrics/internal/models"
)

// ValidSEQRating reports whether a candidate Single Ease Question rating is
// an integer within the 1-7 scale. Out-of-contract values are rejected with
// a boolean, never an error.
func ValidSEQRating(rating float64) bool {
	if math.IsNaN(rating) || math.IsInf(rating, 0) {
		return false
	}
	if rating != math.Trunc(rating) {
		return false
	}
	return rating >= 1 && rating <= 7
}

// SEQMetric calculates the metric for a single SEQ observation.
func SEQMetric(data *models.SEQData) MetricResult {
	if !ValidSEQRating(data.Rating) {
		return uncalculated("seq rating must be an integer between 1 and 7")
	}

	return MetricResult{
		Value:      data.Rating,
		Calculated: true,
		SampleSize: 1,
	}
}
