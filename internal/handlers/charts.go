// internal/handlers/charts.go
package handlers

import (
	"net/http"
	"strings"

	"uxmetrics/internal/metrics"
	"uxmetrics/internal/models"
	"uxmetrics/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

type ChartsHandler struct {
	log   *zap.Logger
	Study *models.Study
}

func NewChartsHandler(log *zap.Logger, study *models.Study) *ChartsHandler {
	return &ChartsHandler{log: log, Study: study}
}

// MetricOption pairs a metric key with its display label.
type MetricOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// availableMetrics lists the chartable metrics for a task's kind.
func availableMetrics(task models.Task) []MetricOption {
	switch task.Kind {
	case models.KindTaskSuccess:
		return []MetricOption{{Value: metrics.KeySuccessRate, Label: "Success Rate (%)"}}
	case models.KindTimeOnTask:
		return []MetricOption{{Value: metrics.KeyTimeOnTask, Label: "Time on Task (s)"}}
	case models.KindTaskEfficiency:
		return []MetricOption{{Value: metrics.KeyEfficiency, Label: "Task Efficiency (%)"}}
	case models.KindErrorRate:
		return []MetricOption{
			{Value: metrics.KeyErrorRate, Label: "Error Rate (%)"},
			{Value: metrics.KeyErrorCount, Label: "Error Count"},
		}
	case models.KindSEQ:
		return []MetricOption{{Value: metrics.KeySEQRating, Label: "SEQ Rating (1-7)"}}
	default:
		return nil
	}
}

// Timeline returns go-echarts line options plotting one task metric over
// time, ready for the dashboard to hand to echarts.
func (h *ChartsHandler) Timeline(c *gin.Context) {
	studyID := c.Param("id")
	taskID := c.Query("task")
	metricKey := c.Query("metric")

	task, found := h.Study.TaskByID(taskID)
	if !found {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown task"})
		return
	}

	options := availableMetrics(task)
	label := ""
	for _, opt := range options {
		if opt.Value == metricKey {
			label = opt.Label
			break
		}
	}
	// Fall back to the task's primary metric when none or an invalid one was
	// requested.
	if label == "" && len(options) > 0 {
		metricKey = options[0].Value
		label = options[0].Label
	}

	data, err := repository.GetTimelineData(c, studyID, taskID, metricKey)
	if err != nil {
		h.log.Error("Failed to get timeline data", zap.Error(err),
			zap.String("taskID", taskID), zap.String("metricKey", metricKey))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load timeline data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"task":             taskID,
		"metric":           metricKey,
		"availableMetrics": options,
		"chart":            generateTimelineChart(data, label).JSON(),
	})
}

// Correlation returns go-echarts scatter options plotting a task metric
// against the same session's SEQ rating.
func (h *ChartsHandler) Correlation(c *gin.Context) {
	studyID := c.Param("id")
	taskID := c.Query("task")
	metricKey := c.Query("metric")

	task, found := h.Study.TaskByID(taskID)
	if !found {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown task"})
		return
	}
	if metricKey == "" {
		metricKey = metrics.KeyForKind(task.Kind)
	}

	data, err := repository.GetCorrelationData(c, studyID, taskID, metricKey)
	if err != nil {
		h.log.Error("Failed to get correlation data", zap.Error(err),
			zap.String("taskID", taskID), zap.String("metricKey", metricKey))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load correlation data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"task":   taskID,
		"metric": metricKey,
		"chart":  generateCorrelationChart(data, metricKey).JSON(),
	})
}

func generateTimelineChart(data []repository.TimelineDataPoint, metricLabel string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Metric Over Time",
			Subtitle: metricLabel,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "time",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:  "value",
			Scale: opts.Bool(true),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider"}),
	)

	items := make([]opts.LineData, 0)
	for _, point := range data {
		items = append(items, opts.LineData{Value: []interface{}{point.Date, point.Value}})
	}

	line.AddSeries(metricLabel, items).SetSeriesOptions(charts.WithLineStyleOpts(opts.LineStyle{Width: 2}))
	return line
}

func generateCorrelationChart(data []repository.CorrelationDataPoint, metricKey string) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Metric vs. Perceived Ease",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: strings.ReplaceAll(metricKey, "_", " "),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "SEQ rating",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	items := make([]opts.ScatterData, 0)
	for _, point := range data {
		items = append(items, opts.ScatterData{Value: []interface{}{point.MetricValue, point.SEQValue}})
	}

	scatter.AddSeries("Correlation", items)
	return scatter
}
