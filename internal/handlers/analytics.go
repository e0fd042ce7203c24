// internal/handlers/analytics.go
package handlers

import (
	"net/http"
	"time"

	"uxmetrics/internal/aggregate"
	"uxmetrics/internal/metrics"
	"uxmetrics/internal/models"
	"uxmetrics/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AnalyticsHandler struct {
	log   *zap.Logger
	Study *models.Study
}

func NewAnalyticsHandler(log *zap.Logger, study *models.Study) *AnalyticsHandler {
	return &AnalyticsHandler{log: log, Study: study}
}

// parseFilter reads the shared filter query parameters. Date bounds accept
// RFC 3339 or plain dates; a plain "to" date extends to the end of that day
// so bounds stay inclusive.
func parseFilter(c *gin.Context) (aggregate.Filter, bool) {
	filter := aggregate.Filter{
		ParticipantID: c.Query("participant"),
		TaskID:        c.Query("task"),
	}

	if raw := c.Query("from"); raw != "" {
		t, ok := parseBound(raw, false)
		if !ok {
			return filter, false
		}
		filter.From = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, ok := parseBound(raw, true)
		if !ok {
			return filter, false
		}
		filter.To = &t
	}

	return filter, true
}

func parseBound(raw string, endOfDay bool) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, false
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, true
}

// Summary aggregates a study's observations into per-kind summaries,
// recomputed from the filtered set on every request.
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	studyID := c.Param("id")

	filter, ok := parseFilter(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date bound"})
		return
	}

	observations, err := repository.ListObservations(studyID, filter)
	if err != nil {
		h.log.Error("Failed to list observations", zap.Error(err), zap.String("studyID", studyID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load observations"})
		return
	}

	if raw := c.Query("kind"); raw != "" {
		kind := models.AssessmentKind(raw)
		if !kind.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown assessment kind"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"studyId":   studyID,
			"summaries": map[models.AssessmentKind]aggregate.Summary{kind: aggregate.Summarize(kind, observations, filter)},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"studyId":   studyID,
		"summaries": aggregate.SummarizeAll(observations, filter),
	})
}

// ErrorBreakdown tallies the filtered error observations per category. All
// three category keys are present even when nothing matched.
func (h *AnalyticsHandler) ErrorBreakdown(c *gin.Context) {
	studyID := c.Param("id")

	filter, ok := parseFilter(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date bound"})
		return
	}

	observations, err := repository.ListObservations(studyID, filter)
	if err != nil {
		h.log.Error("Failed to list observations", zap.Error(err), zap.String("studyID", studyID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load observations"})
		return
	}

	var details []models.ErrorDetail
	for i := range observations {
		if observations[i].Kind == models.KindErrorRate && observations[i].Errors != nil {
			details = append(details, observations[i].Errors.Errors...)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"studyId":   studyID,
		"breakdown": metrics.ErrorBreakdown(details),
	})
}
