package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func summaryOf(value float64, count int) Summary {
	return Summary{Value: &value, Count: count}
}

func TestCompare(t *testing.T) {
	comparison := Compare(summaryOf(80, 10), summaryOf(60, 12))

	require.NotNil(t, comparison)
	assert.InDelta(t, 20.0, comparison.Difference, 1e-9)
	require.NotNil(t, comparison.Ratio)
	assert.InDelta(t, 80.0/60.0, *comparison.Ratio, 1e-9)
}

func TestCompare_NotComparableOnEmptySide(t *testing.T) {
	empty := Summary{Value: nil, Count: 0}

	assert.Nil(t, Compare(empty, summaryOf(60, 12)))
	assert.Nil(t, Compare(summaryOf(80, 10), empty))
	assert.Nil(t, Compare(empty, empty))
}

func TestCompare_ZeroBaselineOmitsRatio(t *testing.T) {
	comparison := Compare(summaryOf(80, 10), summaryOf(0, 5))

	require.NotNil(t, comparison)
	assert.Equal(t, 80.0, comparison.Difference)
	assert.Nil(t, comparison.Ratio)
}

func TestCompare_NegativeDifference(t *testing.T) {
	comparison := Compare(summaryOf(40, 8), summaryOf(60, 8))

	require.NotNil(t, comparison)
	assert.Equal(t, -20.0, comparison.Difference)
}
