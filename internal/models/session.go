package models

import (
	"time"

	"github.com/lib/pq"
)

// Session groups the observations recorded while one participant works
// through a study's tasks. The task order is snapshotted at creation so a
// later edit to the study definition does not reorder historical sessions.
type Session struct {
	ID            string `gorm:"primaryKey"`
	StudyID       string `gorm:"index"`
	ParticipantID string `gorm:"index"`
	TaskOrder     pq.StringArray `gorm:"type:text[]"`
	IsComplete    bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ObservationMetric is one calculated metric value cached alongside its
// source observation for display. It is never authoritative: summaries are
// always recomputed from the observations themselves.
type ObservationMetric struct {
	ID            uint `gorm:"primaryKey"`
	ObservationID uint
	SessionID     string
	TaskID        string
	MetricKey     string
	MetricValue   float64
	SampleSize    int
	Note          string
	CreatedAt     time.Time
}
