package metrics

import (
	"math"
	"time"

	"uxmetrics/internal/models"
)

// CalculateDuration resolves a time-on-task observation to seconds. A manual
// duration takes precedence over the timestamp pair. Missing fields,
// unparsable timestamps, and an end before the start all resolve to 0 with a
// note rather than an error.
func CalculateDuration(data *models.DurationData) MetricResult {
	if data == nil {
		return uncalculated("missing duration payload")
	}

	if data.ManualDurationSeconds != nil {
		manual := *data.ManualDurationSeconds
		if math.IsNaN(manual) || math.IsInf(manual, 0) {
			return uncalculated("manual duration is not a finite number")
		}
		if manual < 0 {
			return uncalculated("manual duration is negative")
		}
		return MetricResult{Value: manual, Calculated: true, SampleSize: 1}
	}

	if data.StartTime == "" || data.EndTime == "" {
		return uncalculated("duration requires a manual value or a start/end pair")
	}

	start, err := time.Parse(time.RFC3339Nano, data.StartTime)
	if err != nil {
		return uncalculated("unparsable start time")
	}
	end, err := time.Parse(time.RFC3339Nano, data.EndTime)
	if err != nil {
		return uncalculated("unparsable end time")
	}

	if end.Before(start) {
		return uncalculated("end time precedes start time")
	}

	return MetricResult{
		Value:      end.Sub(start).Seconds(),
		Calculated: true,
		SampleSize: 1,
	}
}
