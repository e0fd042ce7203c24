// internal/handlers/compare.go
package handlers

import (
	"net/http"

	"uxmetrics/internal/aggregate"
	"uxmetrics/internal/models"
	"uxmetrics/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CompareHandler struct {
	log *zap.Logger
}

func NewCompareHandler(log *zap.Logger) *CompareHandler {
	return &CompareHandler{log: log}
}

// Compare aggregates two windows of the same metric and reports their
// difference and ratio. The baseline window uses baseline_from/baseline_to
// (and optionally baseline_study for a cross-study comparison); the shared
// participant/task filters apply to both sides. When either side has no
// data the response says so explicitly instead of inventing a delta.
func (h *CompareHandler) Compare(c *gin.Context) {
	studyID := c.Param("id")

	kind := models.AssessmentKind(c.Query("kind"))
	if !kind.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A valid assessment kind is required"})
		return
	}

	filter, ok := parseFilter(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date bound"})
		return
	}

	baseline := aggregate.Filter{
		ParticipantID: filter.ParticipantID,
		TaskID:        filter.TaskID,
	}
	if raw := c.Query("baseline_from"); raw != "" {
		t, ok := parseBound(raw, false)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid baseline date bound"})
			return
		}
		baseline.From = &t
	}
	if raw := c.Query("baseline_to"); raw != "" {
		t, ok := parseBound(raw, true)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid baseline date bound"})
			return
		}
		baseline.To = &t
	}

	baselineStudyID := c.Query("baseline_study")
	if baselineStudyID == "" {
		baselineStudyID = studyID
	}

	current, err := repository.ListObservations(studyID, filter)
	if err != nil {
		h.log.Error("Failed to list observations", zap.Error(err), zap.String("studyID", studyID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load observations"})
		return
	}
	base, err := repository.ListObservations(baselineStudyID, baseline)
	if err != nil {
		h.log.Error("Failed to list baseline observations", zap.Error(err), zap.String("studyID", baselineStudyID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load observations"})
		return
	}

	a := aggregate.Summarize(kind, current, filter)
	b := aggregate.Summarize(kind, base, baseline)
	comparison := aggregate.Compare(a, b)

	if comparison == nil {
		c.JSON(http.StatusOK, gin.H{
			"kind":       kind,
			"comparable": false,
			"current":    a,
			"baseline":   b,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"kind":       kind,
		"comparable": true,
		"current":    a,
		"baseline":   b,
		"comparison": comparison,
	})
}
