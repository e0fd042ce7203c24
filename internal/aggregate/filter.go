package aggregate

import (
	"time"

	"uxmetrics/internal/models"
)

// Filter narrows an observation set before aggregation. Date bounds are
// inclusive on the observation's recorded timestamp. Participant and task
// filters match exactly on their identifiers; task matching deliberately
// uses the stable task id rather than substring matching on the description.
type Filter struct {
	From          *time.Time
	To            *time.Time
	ParticipantID string
	TaskID        string
}

// Matches reports whether one observation passes the filter.
func (f Filter) Matches(obs *models.Observation) bool {
	if f.From != nil && obs.RecordedAt.Before(*f.From) {
		return false
	}
	if f.To != nil && obs.RecordedAt.After(*f.To) {
		return false
	}
	if f.ParticipantID != "" && obs.ParticipantID != f.ParticipantID {
		return false
	}
	if f.TaskID != "" && obs.TaskID != f.TaskID {
		return false
	}
	return true
}

// Apply returns the observations passing the filter. The source slice is
// never mutated.
func Apply(f Filter, observations []models.Observation) []models.Observation {
	filtered := make([]models.Observation, 0, len(observations))
	for i := range observations {
		if f.Matches(&observations[i]) {
			filtered = append(filtered, observations[i])
		}
	}
	return filtered
}
