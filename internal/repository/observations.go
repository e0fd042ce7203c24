// internal/repository/observations.go
package repository

import (
	"uxmetrics/internal/aggregate"
	"uxmetrics/internal/database"
	"uxmetrics/internal/metrics"
	"uxmetrics/internal/models"

	"gorm.io/gorm"
)

// SaveObservationTx persists an observation together with its calculated
// metric rows in a single transaction. Uncalculated results are not stored;
// their notes are returned to the caller for logging.
func SaveObservationTx(obs *models.Observation, results map[string]metrics.MetricResult) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(obs).Error; err != nil {
			return err
		}

		for key, result := range results {
			if !result.Calculated {
				continue
			}
			row := models.ObservationMetric{
				ObservationID: obs.ID,
				SessionID:     obs.SessionID,
				TaskID:        obs.TaskID,
				MetricKey:     key,
				MetricValue:   result.Value,
				SampleSize:    result.SampleSize,
				Note:          result.Note,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// ListObservations loads a study's observations narrowed by the filter.
// Bounds are inclusive, matching the in-memory filter semantics.
func ListObservations(studyID string, f aggregate.Filter) ([]models.Observation, error) {
	q := database.DB.Where("study_id = ?", studyID)

	if f.From != nil {
		q = q.Where("recorded_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("recorded_at <= ?", *f.To)
	}
	if f.ParticipantID != "" {
		q = q.Where("participant_id = ?", f.ParticipantID)
	}
	if f.TaskID != "" {
		q = q.Where("task_id = ?", f.TaskID)
	}

	var observations []models.Observation
	err := q.Order("recorded_at").Find(&observations).Error
	return observations, err
}
