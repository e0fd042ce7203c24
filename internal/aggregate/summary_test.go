package aggregate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMean(t *testing.T) {
	summary := Mean([]float64{10, 20, 30})

	require.NotNil(t, summary.Value)
	assert.Equal(t, 20.0, *summary.Value)
	assert.Equal(t, 3, summary.Count)
}

func TestMean_EmptyIsIdentity(t *testing.T) {
	summary := Mean(nil)

	assert.Nil(t, summary.Value)
	assert.Equal(t, 0, summary.Count)
}

func TestMedian_OddCount(t *testing.T) {
	summary := Median([]float64{30, 10, 20})

	require.NotNil(t, summary.Value)
	assert.Equal(t, 20.0, *summary.Value)
	assert.Equal(t, 3, summary.Count)
}

func TestMedian_EvenCount(t *testing.T) {
	summary := Median([]float64{40, 10, 30, 20})

	require.NotNil(t, summary.Value)
	assert.Equal(t, 25.0, *summary.Value)
	assert.Equal(t, 4, summary.Count)
}

func TestMedian_EmptyIsIdentity(t *testing.T) {
	summary := Median([]float64{})

	assert.Nil(t, summary.Value)
	assert.Equal(t, 0, summary.Count)
}

func TestMedian_DoesNotMutateInput(t *testing.T) {
	values := []float64{30, 10, 20}
	Median(values)

	assert.Equal(t, []float64{30, 10, 20}, values)
}

func TestSummary_IdentityEncodesExplicitNull(t *testing.T) {
	data, err := json.Marshal(Mean(nil))

	require.NoError(t, err)
	assert.JSONEq(t, `{"value":null,"count":0}`, string(data))
}

func TestSummary_RoundTrip(t *testing.T) {
	original := Mean([]float64{66.666666666666667})
	data, err := json.Marshal(original)
	require.NoError(t, err)

	var restored Summary
	require.NoError(t, json.Unmarshal(data, &restored))

	require.NotNil(t, restored.Value)
	assert.Equal(t, *original.Value, *restored.Value)
	assert.Equal(t, original.Count, restored.Count)
}
