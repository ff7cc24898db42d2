package analyzers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/report-splash/pkg/models/domain"
)

func TestSummarize_EmptySampleIsNil(t *testing.T) {
	assert.Nil(t, summarize(nil))
	assert.Nil(t, summarize([]float64{}))
}

func TestSummarize_SingleSample(t *testing.T) {
	s := summarize([]float64{42})
	require.NotNil(t, s)
	assert.Equal(t, 1, s.Count)
	assert.Equal(t, 42.0, s.Min)
	assert.Equal(t, 42.0, s.Max)
	assert.Equal(t, 42.0, s.Mean)
	assert.Equal(t, 42.0, s.Median)
	assert.Equal(t, 42.0, s.P90)
}

func TestSummarize_Interpolation(t *testing.T) {
	// P90 over [10,20,30,40,50]: rank 3.6 interpolates between 40 and 50.
	s := summarize([]float64{50, 10, 40, 20, 30})
	require.NotNil(t, s)
	assert.Equal(t, 5, s.Count)
	assert.Equal(t, 10.0, s.Min)
	assert.Equal(t, 50.0, s.Max)
	assert.Equal(t, 30.0, s.Mean)
	assert.Equal(t, 30.0, s.Median)
	assert.InDelta(t, 46.0, s.P90, 1e-9)
}

func TestPercentile_EvenSampleMedian(t *testing.T) {
	assert.InDelta(t, 15.0, percentile([]float64{10, 20}, 50), 1e-9)
	assert.InDelta(t, 20.0, percentile([]float64{10, 20}, 100), 1e-9)
	assert.InDelta(t, 10.0, percentile([]float64{10, 20}, 0), 1e-9)
}

func TestRatePercent_ZeroDenominator(t *testing.T) {
	assert.Equal(t, 0.0, ratePercent(3, 0))
	assert.InDelta(t, 33.333, ratePercent(1, 3), 0.001)
}

func TestSortedCounts_Deterministic(t *testing.T) {
	counts := map[string]int{"b": 2, "c": 5, "a": 2}

	got := sortedCounts(counts)
	require.Len(t, got, 3)
	assert.Equal(t, []domain.NameCount{
		{Name: "c", Count: 5},
		{Name: "a", Count: 2},
		{Name: "b", Count: 2},
	}, got)

	assert.Nil(t, sortedCounts(nil))
}

func TestCapCounts(t *testing.T) {
	counts := []domain.NameCount{{Name: "a"}, {Name: "b"}, {Name: "c"}}
	assert.Len(t, capCounts(counts, 2), 2)
	assert.Len(t, capCounts(counts, 5), 3)
}
