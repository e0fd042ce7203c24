// internal/handlers/observations.go
package handlers

import (
	"net/http"
	"time"

	"uxmetrics/internal/metrics"
	"uxmetrics/internal/models"
	"uxmetrics/internal/repository"
	"uxmetrics/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ObservationsHandler struct {
	log   *zap.Logger
	Study *models.Study
}

func NewObservationsHandler(log *zap.Logger, study *models.Study) *ObservationsHandler {
	return &ObservationsHandler{log: log, Study: study}
}

// Submit records one observation for a session, calculates its metrics and
// stores both. Degraded calculator input never fails the request: the
// observation is stored, the note is logged, and the uncalculated result is
// returned so the client can render it honestly.
func (h *ObservationsHandler) Submit(c *gin.Context) {
	session, err := repository.GetSession(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}

	var obs models.Observation
	if err := c.ShouldBindJSON(&obs); err != nil {
		h.log.Error("Failed to bind observation", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}

	if !obs.Kind.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown assessment kind"})
		return
	}
	if _, ok := h.Study.TaskByID(obs.TaskID); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown task"})
		return
	}

	// The session is authoritative for ownership fields.
	obs.ID = 0
	obs.SessionID = session.ID
	obs.StudyID = session.StudyID
	if obs.ParticipantID == "" {
		obs.ParticipantID = session.ParticipantID
	}
	if obs.RecordedAt.IsZero() {
		obs.RecordedAt = time.Now().UTC()
	}

	results := metrics.CalculateObservationMetrics(&obs)
	for key, result := range results {
		if !result.Calculated {
			h.log.Warn("Metric degraded to default",
				zap.String("metricKey", key),
				zap.String("taskID", obs.TaskID),
				zap.String("sessionID", session.ID),
				zap.String("note", result.Note),
			)
		}
	}

	if err := repository.SaveObservationTx(&obs, results); err != nil {
		h.log.Error("Failed to save observation", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save observation"})
		return
	}

	telemetry.RecordObservationIngested(string(obs.Kind))

	c.JSON(http.StatusOK, gin.H{
		"observation":       obs,
		"calculatedMetrics": results,
	})
}
