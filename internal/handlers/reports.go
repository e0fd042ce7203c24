// internal/handlers/reports.go
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"uxmetrics/internal/aggregate"
	"uxmetrics/internal/models"
	"uxmetrics/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type ReportsHandler struct {
	log   *zap.Logger
	Study *models.Study
}

func NewReportsHandler(log *zap.Logger, study *models.Study) *ReportsHandler {
	return &ReportsHandler{log: log, Study: study}
}

// ReportDocument is the exported JSON form of a report. Summaries stay raw
// so re-import reproduces the stored bytes exactly: nulls remain explicit
// and numbers keep full precision.
type ReportDocument struct {
	StudyID     string          `json:"studyId"`
	TaskIDs     []string        `json:"taskIds"`
	Summaries   json.RawMessage `json:"summaries"`
	Commentary  string          `json:"commentary"`
	GeneratedAt time.Time       `json:"generatedAt"`
}

type createReportRequest struct {
	Commentary  string `json:"commentary"`
	From        string `json:"from,omitempty"`
	To          string `json:"to,omitempty"`
	Participant string `json:"participant,omitempty"`
	Task        string `json:"task,omitempty"`
}

// Create computes the study's current summaries under the requested filter
// and stores them with commentary as a report.
func (h *ReportsHandler) Create(c *gin.Context) {
	studyID := c.Param("id")

	var req createReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}

	filter := aggregate.Filter{ParticipantID: req.Participant, TaskID: req.Task}
	if req.From != "" {
		t, ok := parseBound(req.From, false)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date bound"})
			return
		}
		filter.From = &t
	}
	if req.To != "" {
		t, ok := parseBound(req.To, true)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date bound"})
			return
		}
		filter.To = &t
	}

	observations, err := repository.ListObservations(studyID, filter)
	if err != nil {
		h.log.Error("Failed to list observations", zap.Error(err), zap.String("studyID", studyID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load observations"})
		return
	}

	summaries, err := json.Marshal(aggregate.SummarizeAll(observations, filter))
	if err != nil {
		h.log.Error("Failed to encode summaries", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	report := &models.Report{
		StudyID:    studyID,
		Source:     models.ReportSourceManual,
		TaskIDs:    pq.StringArray(h.Study.TaskIDs()),
		Summaries:  summaries,
		Commentary: req.Commentary,
		CreatedAt:  time.Now().UTC(),
	}
	if err := repository.SaveReport(report); err != nil {
		h.log.Error("Failed to save report", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save report"})
		return
	}

	c.JSON(http.StatusCreated, report)
}

// List returns a study's reports, newest first.
func (h *ReportsHandler) List(c *gin.Context) {
	reports, err := repository.ListReports(c.Param("id"))
	if err != nil {
		h.log.Error("Failed to list reports", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reports"})
		return
	}
	c.JSON(http.StatusOK, reports)
}

// Export renders a stored report as its portable document form.
func (h *ReportsHandler) Export(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("reportId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report id"})
		return
	}

	report, err := repository.GetReport(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}

	c.JSON(http.StatusOK, ReportDocument{
		StudyID:     report.StudyID,
		TaskIDs:     []string(report.TaskIDs),
		Summaries:   report.Summaries,
		Commentary:  report.Commentary,
		GeneratedAt: report.CreatedAt,
	})
}

// Import stores a previously exported document unchanged. The summaries
// block is persisted as received, so export after import returns the same
// bytes.
func (h *ReportsHandler) Import(c *gin.Context) {
	var doc ReportDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report document"})
		return
	}
	if doc.StudyID == "" || len(doc.Summaries) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Report document is incomplete"})
		return
	}

	report := &models.Report{
		StudyID:    doc.StudyID,
		Source:     models.ReportSourceManual,
		TaskIDs:    pq.StringArray(doc.TaskIDs),
		Summaries:  doc.Summaries,
		Commentary: doc.Commentary,
		CreatedAt:  doc.GeneratedAt,
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now().UTC()
	}

	if err := repository.SaveReport(report); err != nil {
		h.log.Error("Failed to import report", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import report"})
		return
	}

	c.JSON(http.StatusCreated, report)
}
