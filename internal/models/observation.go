package models

import (
	"time"
)

// AssessmentKind identifies which kind of measurement an observation carries.
type AssessmentKind string

const (
	KindTaskSuccess    AssessmentKind = "task_success"
	KindTimeOnTask     AssessmentKind = "time_on_task"
	KindTaskEfficiency AssessmentKind = "task_efficiency"
	KindErrorRate      AssessmentKind = "error_rate"
	KindSEQ            AssessmentKind = "seq"
)

// Valid reports whether k is one of the five supported assessment kinds.
func (k AssessmentKind) Valid() bool {
	switch k {
	case KindTaskSuccess, KindTimeOnTask, KindTaskEfficiency, KindErrorRate, KindSEQ:
		return true
	}
	return false
}

// ErrorType is one of the fixed error categories tracked during a task attempt.
type ErrorType string

const (
	ErrorWrongClick        ErrorType = "wrong_click"
	ErrorInvalidSubmission ErrorType = "invalid_submission"
	ErrorNavigationError   ErrorType = "navigation_error"
)

// ErrorTypes lists every tracked category. Breakdown maps carry all of these
// keys even when the count is zero.
var ErrorTypes = []ErrorType{ErrorWrongClick, ErrorInvalidSubmission, ErrorNavigationError}

// ErrorDetail is a single observed error. Multiple errors of the same type
// within one attempt are all retained.
type ErrorDetail struct {
	Type        ErrorType `json:"type"`
	Description string    `json:"description,omitempty"`
}

// SuccessData is the payload for a task-success observation.
type SuccessData struct {
	Successful bool `json:"successful"`
}

// DurationData is the payload for a time-on-task observation. A manual
// duration, when present, takes precedence over the start/end pair.
// Timestamps are RFC 3339 strings supplied by the session client so that
// duration calculation stays deterministic.
type DurationData struct {
	ManualDurationSeconds *float64 `json:"manualDurationSeconds,omitempty"`
	StartTime             string   `json:"startTime,omitempty"`
	EndTime               string   `json:"endTime,omitempty"`
}

// EfficiencyData is the payload for a task-efficiency observation. The
// step-based variant is used when ActualSteps is set; otherwise the
// time-based variant applies.
type EfficiencyData struct {
	OptimalSteps       int      `json:"optimalSteps,omitempty"`
	ActualSteps        int      `json:"actualSteps,omitempty"`
	OptimalTimeSeconds *float64 `json:"optimalTimeSeconds,omitempty"`
	ActualTimeSeconds  *float64 `json:"actualTimeSeconds,omitempty"`
}

// StepBased reports whether the observation was recorded in steps.
func (e *EfficiencyData) StepBased() bool {
	return e.ActualSteps != 0 || e.OptimalSteps != 0
}

// ErrorRateData is the payload for an error-rate observation.
type ErrorRateData struct {
	Errors        []ErrorDetail `json:"errors"`
	Opportunities int           `json:"opportunities"`
}

// SEQData is the payload for a Single Ease Question observation. The rating
// is declared as float64 so an out-of-contract non-integer submission is
// representable and can be rejected by validation instead of silently
// truncated during decoding.
type SEQData struct {
	Rating float64 `json:"rating"`
}

// Observation is one measured instance of a task by one participant within a
// session. Exactly one payload field should be set, matching Kind. Payloads
// are stored as jsonb columns.
type Observation struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	SessionID       string         `gorm:"index" json:"sessionId"`
	StudyID         string         `gorm:"index" json:"studyId"`
	ParticipantID   string         `gorm:"index" json:"participantId"`
	TaskID          string         `gorm:"index" json:"taskId"`
	TaskDescription string         `json:"taskDescription,omitempty"`
	Kind            AssessmentKind `gorm:"index" json:"kind"`

	Success    *SuccessData    `gorm:"serializer:json;type:jsonb" json:"success,omitempty"`
	Duration   *DurationData   `gorm:"serializer:json;type:jsonb" json:"duration,omitempty"`
	Efficiency *EfficiencyData `gorm:"serializer:json;type:jsonb" json:"efficiency,omitempty"`
	Errors     *ErrorRateData  `gorm:"serializer:json;type:jsonb" json:"errors,omitempty"`
	SEQ        *SEQData        `gorm:"serializer:json;type:jsonb" json:"seq,omitempty"`

	RecordedAt time.Time `gorm:"index" json:"recordedAt"`
	CreatedAt  time.Time `json:"createdAt"`
}
