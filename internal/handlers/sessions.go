// internal/handlers/sessions.go
package handlers

import (
	"net/http"

	"uxmetrics/internal/models"
	"uxmetrics/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SessionsHandler struct {
	log   *zap.Logger
	Study *models.Study
}

func NewSessionsHandler(log *zap.Logger, study *models.Study) *SessionsHandler {
	return &SessionsHandler{log: log, Study: study}
}

type createSessionRequest struct {
	ParticipantID string `json:"participantId" binding:"required"`
}

// Create opens a session for a participant.
func (h *SessionsHandler) Create(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "participantId is required"})
		return
	}

	session, err := repository.CreateSession(h.Study, req.ParticipantID)
	if err != nil {
		h.log.Error("Failed to create session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	c.JSON(http.StatusCreated, session)
}

// Complete marks a session finished.
func (h *SessionsHandler) Complete(c *gin.Context) {
	id := c.Param("id")

	if _, err := repository.GetSession(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}

	if err := repository.CompleteSession(id); err != nil {
		h.log.Error("Failed to complete session", zap.Error(err), zap.String("sessionID", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete session"})
		return
	}

	c.Status(http.StatusOK)
}
