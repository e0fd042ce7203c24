package aggregate

import (
	"testing"
	"time"

	"uxmetrics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func successObs(taskID, participantID string, successful bool, at time.Time) models.Observation {
	return models.Observation{
		TaskID:        taskID,
		ParticipantID: participantID,
		Kind:          models.KindTaskSuccess,
		Success:       &models.SuccessData{Successful: successful},
		RecordedAt:    at,
	}
}

func durationObs(taskID string, seconds float64, at time.Time) models.Observation {
	return models.Observation{
		TaskID:     taskID,
		Kind:       models.KindTimeOnTask,
		Duration:   &models.DurationData{ManualDurationSeconds: &seconds},
		RecordedAt: at,
	}
}

func TestSummarize_SuccessRateMean(t *testing.T) {
	now := time.Now()
	observations := []models.Observation{
		successObs("find-product", "p1", true, now),
		successObs("find-product", "p2", true, now),
		successObs("find-product", "p3", false, now),
	}

	summary := Summarize(models.KindTaskSuccess, observations, Filter{})

	require.NotNil(t, summary.Value)
	assert.InDelta(t, 66.67, *summary.Value, 0.01)
	assert.Equal(t, 3, summary.Count)
}

func TestSummarize_TimeOnTaskUsesMedian(t *testing.T) {
	now := time.Now()
	observations := []models.Observation{
		durationObs("add-to-cart", 10, now),
		durationObs("add-to-cart", 20, now),
		durationObs("add-to-cart", 30, now),
	}

	summary := Summarize(models.KindTimeOnTask, observations, Filter{})

	require.NotNil(t, summary.Value)
	assert.Equal(t, 20.0, *summary.Value)

	observations = append(observations, durationObs("add-to-cart", 40, now))
	summary = Summarize(models.KindTimeOnTask, observations, Filter{})

	require.NotNil(t, summary.Value)
	assert.Equal(t, 25.0, *summary.Value)
}

func TestSummarize_EmptySetIsIdentity(t *testing.T) {
	summary := Summarize(models.KindSEQ, nil, Filter{})

	assert.Nil(t, summary.Value)
	assert.Equal(t, 0, summary.Count)
}

func TestSummarize_SkipsUncalculated(t *testing.T) {
	now := time.Now()
	observations := []models.Observation{
		durationObs("add-to-cart", 30, now),
		// No payload at all: degrades to uncalculated, excluded from the set.
		{TaskID: "add-to-cart", Kind: models.KindTimeOnTask, RecordedAt: now},
	}

	summary := Summarize(models.KindTimeOnTask, observations, Filter{})

	require.NotNil(t, summary.Value)
	assert.Equal(t, 30.0, *summary.Value)
	assert.Equal(t, 1, summary.Count)
}

func TestSummarize_RecomputeReflectsNewObservation(t *testing.T) {
	now := time.Now()
	observations := []models.Observation{
		successObs("find-product", "p1", true, now),
	}

	first := Summarize(models.KindTaskSuccess, observations, Filter{})
	require.NotNil(t, first.Value)
	assert.Equal(t, 100.0, *first.Value)

	observations = append(observations, successObs("find-product", "p2", false, now))
	second := Summarize(models.KindTaskSuccess, observations, Filter{})

	require.NotNil(t, second.Value)
	assert.Equal(t, 50.0, *second.Value)
	assert.Equal(t, 2, second.Count)
}

func TestFilter_DateBoundsInclusive(t *testing.T) {
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)

	inside := successObs("find-product", "p1", true, from)
	onUpperBound := successObs("find-product", "p2", true, to)
	outside := successObs("find-product", "p3", true, to.Add(time.Second))

	filter := Filter{From: &from, To: &to}
	filtered := Apply(filter, []models.Observation{inside, onUpperBound, outside})

	assert.Len(t, filtered, 2)
}

func TestFilter_ParticipantAndTaskExactMatch(t *testing.T) {
	now := time.Now()
	observations := []models.Observation{
		successObs("find-product", "p1", true, now),
		successObs("find-product-v2", "p1", true, now),
		successObs("find-product", "p2", true, now),
	}

	filtered := Apply(Filter{TaskID: "find-product"}, observations)
	assert.Len(t, filtered, 2)

	filtered = Apply(Filter{TaskID: "find-product", ParticipantID: "p1"}, observations)
	assert.Len(t, filtered, 1)

	// "find" is not an exact task id, so nothing matches.
	filtered = Apply(Filter{TaskID: "find"}, observations)
	assert.Empty(t, filtered)
}

func TestFilter_DoesNotMutateSource(t *testing.T) {
	now := time.Now()
	observations := []models.Observation{
		successObs("find-product", "p1", true, now),
		successObs("find-product", "p2", false, now),
	}

	Apply(Filter{ParticipantID: "p2"}, observations)

	assert.Equal(t, "p1", observations[0].ParticipantID)
	assert.Equal(t, "p2", observations[1].ParticipantID)
}

func TestSummarizeAll_CoversEveryKind(t *testing.T) {
	now := time.Now()
	observations := []models.Observation{
		successObs("find-product", "p1", true, now),
		durationObs("add-to-cart", 45, now),
	}

	summaries := SummarizeAll(observations, Filter{})

	require.Len(t, summaries, 5)
	require.NotNil(t, summaries[models.KindTaskSuccess].Value)
	require.NotNil(t, summaries[models.KindTimeOnTask].Value)
	assert.Nil(t, summaries[models.KindTaskEfficiency].Value)
	assert.Nil(t, summaries[models.KindErrorRate].Value)
	assert.Nil(t, summaries[models.KindSEQ].Value)
}
