package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "2m 30s", FormatDuration(150))
	assert.Equal(t, "0m 45s", FormatDuration(45))
	assert.Equal(t, "0m 0s", FormatDuration(0))
	assert.Equal(t, "1m 0s", FormatDuration(60))
	assert.Equal(t, "61m 1s", FormatDuration(3661))
}

func TestFormatDuration_DegradedInput(t *testing.T) {
	assert.Equal(t, "0m 0s", FormatDuration(-5))
	assert.Equal(t, "0m 0s", FormatDuration(math.NaN()))
	assert.Equal(t, "0m 0s", FormatDuration(math.Inf(1)))
}

func TestFormatDurationDetailed(t *testing.T) {
	assert.Equal(t, "30s", FormatDurationDetailed(30))
	assert.Equal(t, "1m 30s", FormatDurationDetailed(90))
	assert.Equal(t, "1h 1m 1s", FormatDurationDetailed(3661))
	assert.Equal(t, "1h 0m 0s", FormatDurationDetailed(3600))
	assert.Equal(t, "0s", FormatDurationDetailed(0))
}

func TestFormatDurationDetailed_DegradedInput(t *testing.T) {
	assert.Equal(t, "0s", FormatDurationDetailed(-1))
	assert.Equal(t, "0s", FormatDurationDetailed(math.NaN()))
	assert.Equal(t, "0s", FormatDurationDetailed(math.Inf(-1)))
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "66.7%", FormatPercentage(66.666666, 1))
	assert.Equal(t, "50%", FormatPercentage(50, 0))
	assert.Equal(t, "12.35%", FormatPercentage(12.345, 2))
}

func TestFormatPercentage_DegradedInput(t *testing.T) {
	assert.Equal(t, "0.0%", FormatPercentage(math.NaN(), 1))
	assert.Equal(t, "0.0%", FormatPercentage(math.Inf(1), 2))
	// Negative decimals clamp to whole percentages rather than erroring.
	assert.Equal(t, "67%", FormatPercentage(66.666666, -1))
}
