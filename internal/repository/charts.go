// internal/repository/charts.go
package repository

import (
	"context"
	"time"

	"uxmetrics/internal/database"
)

type TimelineDataPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

type CorrelationDataPoint struct {
	MetricValue float64 `json:"metricValue"`
	SEQValue    float64 `json:"seqValue"`
}

// GetTimelineData returns one task metric over time for a study.
func GetTimelineData(ctx context.Context, studyID, taskID, metricKey string) ([]TimelineDataPoint, error) {
	var data []TimelineDataPoint

	query := `
		SELECT
			o.recorded_at AS date,
			m.metric_value AS value
		FROM observation_metrics m
		JOIN observations o ON m.observation_id = o.id
		WHERE o.study_id = ? AND m.task_id = ? AND m.metric_key = ?
		ORDER BY o.recorded_at;
	`

	err := database.DB.WithContext(ctx).Raw(query, studyID, taskID, metricKey).Scan(&data).Error
	return data, err
}

// GetCorrelationData pairs a task metric with the same session's SEQ rating
// for the task, so a performance measure can be plotted against perceived
// ease.
func GetCorrelationData(ctx context.Context, studyID, taskID, metricKey string) ([]CorrelationDataPoint, error) {
	var data []CorrelationDataPoint

	query := `
		SELECT
			task_metric.metric_value AS metric_value,
			seq.metric_value AS seq_value
		FROM
			(
				SELECT m.session_id, m.metric_value
				FROM observation_metrics m
				JOIN observations o ON m.observation_id = o.id
				WHERE o.study_id = ? AND m.task_id = ? AND m.metric_key = ?
			) AS task_metric
		JOIN
			(
				SELECT m.session_id, m.metric_value
				FROM observation_metrics m
				JOIN observations o ON m.observation_id = o.id
				WHERE o.study_id = ? AND m.metric_key = 'seq_rating'
			) AS seq ON task_metric.session_id = seq.session_id;
	`

	err := database.DB.WithContext(ctx).
		Raw(query, studyID, taskID, metricKey, studyID).
		Scan(&data).Error
	return data, err
}
