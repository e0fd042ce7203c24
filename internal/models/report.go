package models

import (
	"encoding/json"
	"time"

	"github.com/lib/pq"
)

// ReportSource distinguishes researcher-authored reports from the ones the
// snapshot scheduler writes.
type ReportSource string

const (
	ReportSourceManual   ReportSource = "manual"
	ReportSourceSnapshot ReportSource = "snapshot"
)

// Report is an exported set of study summaries plus free-text commentary.
// Summaries are kept as raw JSON so the exported document round-trips
// byte-for-byte on re-import: explicit nulls stay explicit and numeric
// fields keep full precision.
type Report struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	StudyID    string         `gorm:"index" json:"studyId"`
	Source     ReportSource   `json:"source"`
	TaskIDs    pq.StringArray `gorm:"type:text[]" json:"taskIds"`
	Summaries  json.RawMessage `gorm:"type:jsonb" json:"summaries"`
	Commentary string          `json:"commentary"`
	CreatedAt  time.Time       `json:"createdAt"`
}
