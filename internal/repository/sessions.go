// internal/repository/sessions.go
package repository

import (
	"time"

	"uxmetrics/internal/database"
	"uxmetrics/internal/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// CreateSession opens a new session for a participant, snapshotting the
// study's task order at creation time.
func CreateSession(study *models.Study, participantID string) (*models.Session, error) {
	session := &models.Session{
		ID:            uuid.NewString(),
		StudyID:       study.ID,
		ParticipantID: participantID,
		TaskOrder:     pq.StringArray(study.TaskIDs()),
		IsComplete:    false,
		CreatedAt:     time.Now().UTC(),
	}

	if err := database.DB.Create(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}

// GetSession looks up one session by id.
func GetSession(id string) (*models.Session, error) {
	var session models.Session
	if err := database.DB.First(&session, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// CompleteSession marks a session finished.
func CompleteSession(id string) error {
	return database.DB.Model(&models.Session{}).
		Where("id = ?", id).
		Update("is_complete", true).Error
}
