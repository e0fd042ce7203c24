package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"uxmetrics/internal/metrics"
	"uxmetrics/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T, query string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req, err := http.NewRequest(http.MethodGet, "/api/studies/s/summary?"+query, nil)
	require.NoError(t, err)
	c.Request = req
	return c
}

func TestParseBound(t *testing.T) {
	bound, ok := parseBound("2026-08-01T10:00:00Z", false)
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC), bound)

	_, ok = parseBound("yesterday", false)
	assert.False(t, ok)
}

func TestParseBound_PlainDateExtendsToEndOfDay(t *testing.T) {
	lower, ok := parseBound("2026-08-01", false)
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), lower)

	upper, ok := parseBound("2026-08-01", true)
	require.True(t, ok)
	assert.True(t, upper.After(lower))
	assert.Equal(t, 1, upper.Day())
	assert.Equal(t, 23, upper.Hour())
}

func TestParseFilter(t *testing.T) {
	c := testContext(t, "from=2026-08-01&to=2026-08-07&participant=p1&task=find-product")

	filter, ok := parseFilter(c)

	require.True(t, ok)
	require.NotNil(t, filter.From)
	require.NotNil(t, filter.To)
	assert.Equal(t, "p1", filter.ParticipantID)
	assert.Equal(t, "find-product", filter.TaskID)
}

func TestParseFilter_InvalidBound(t *testing.T) {
	c := testContext(t, "from=not-a-date")

	_, ok := parseFilter(c)

	assert.False(t, ok)
}

func TestParseFilter_Empty(t *testing.T) {
	c := testContext(t, "")

	filter, ok := parseFilter(c)

	require.True(t, ok)
	assert.Nil(t, filter.From)
	assert.Nil(t, filter.To)
	assert.Empty(t, filter.ParticipantID)
	assert.Empty(t, filter.TaskID)
}

func TestReportDocument_SummariesRoundTripBytes(t *testing.T) {
	// The summaries block must survive a decode/encode cycle unchanged,
	// explicit nulls included.
	summaries := `{"task_success":{"value":66.66666666666667,"count":3},"seq":{"value":null,"count":0}}`
	doc := ReportDocument{
		StudyID:   "checkout-redesign",
		TaskIDs:   []string{"find-product"},
		Summaries: json.RawMessage(summaries),
	}

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var restored ReportDocument
	require.NoError(t, json.Unmarshal(data, &restored))

	assert.JSONEq(t, summaries, string(restored.Summaries))
	assert.Contains(t, string(restored.Summaries), `"value":null`)
	assert.Contains(t, string(restored.Summaries), "66.66666666666667")
}

func TestAvailableMetrics(t *testing.T) {
	options := availableMetrics(models.Task{Kind: models.KindErrorRate})
	require.Len(t, options, 2)
	assert.Equal(t, metrics.KeyErrorRate, options[0].Value)

	options = availableMetrics(models.Task{Kind: models.KindTimeOnTask})
	require.Len(t, options, 1)
	assert.Equal(t, metrics.KeyTimeOnTask, options[0].Value)

	assert.Nil(t, availableMetrics(models.Task{Kind: models.AssessmentKind("eye_tracking")}))
}
