package analyzers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/report-splash/pkg/models/domain"
)

func tsPtr(hour, minute int) *time.Time {
	t := time.Date(2025, 1, 15, hour, minute, 0, 0, time.UTC)
	return &t
}

func timedRun(name string, start, end *time.Time) domain.ReportRun {
	return domain.ReportRun{
		ReportName: name,
		Status:     domain.StatusCompleted,
		StartTime:  start,
		EndTime:    end,
	}
}

func timedDataset(rows ...domain.ReportRun) *domain.Dataset {
	return &domain.Dataset{
		Rows: rows,
		Columns: domain.ColumnSet{
			domain.ColStartDatetime: true,
			domain.ColEndDatetime:   true,
		},
	}
}

func TestTiming_NilWithoutTimestampColumns(t *testing.T) {
	ds := &domain.Dataset{
		Rows:    []domain.ReportRun{timedRun("A", tsPtr(8, 0), tsPtr(8, 5))},
		Columns: domain.ColumnSet{domain.ColStartDatetime: true},
	}
	assert.Nil(t, Timing(ds))
}

func TestTiming_HistogramAndSchedules(t *testing.T) {
	ds := timedDataset(
		timedRun("A", tsPtr(8, 0), tsPtr(8, 0)),  // <1s
		timedRun("B", tsPtr(9, 0), tsPtr(9, 2)),  // 1-5m
		timedRun("C", tsPtr(9, 30), nil),         // timed but no duration
		timedRun("D", nil, nil),
	)

	td := Timing(ds)
	require.NotNil(t, td)
	assert.Equal(t, 3, td.TimedRows)
	assert.Equal(t, 2, td.DurationSamples)

	byLabel := make(map[string]int)
	for _, b := range td.DurationHistogram {
		byLabel[b.Label] = b.Count
	}
	assert.Equal(t, 1, byLabel["<1s"])
	assert.Equal(t, 1, byLabel["1-5m"])

	// 2025-01-15 is a Wednesday; Monday-first index 2.
	assert.Equal(t, 3, td.WeekdayCounts[2])
	assert.Equal(t, 1, td.HourlyCounts[8])
	assert.Equal(t, 2, td.HourlyCounts[9])
}

func TestTiming_OverlapDetection(t *testing.T) {
	ds := timedDataset(
		timedRun("A", tsPtr(10, 0), tsPtr(10, 30)),
		timedRun("B", tsPtr(10, 15), tsPtr(10, 45)),
		timedRun("C", tsPtr(11, 0), tsPtr(11, 30)),
	)

	td := Timing(ds)
	require.NotNil(t, td)
	require.Len(t, td.OverlappingRuns, 2)
	assert.Equal(t, "A", td.OverlappingRuns[0].ReportName)
	assert.Equal(t, "B", td.OverlappingRuns[1].ReportName)
}

func TestTiming_TouchingEndpointsDoNotOverlap(t *testing.T) {
	ds := timedDataset(
		timedRun("A", tsPtr(10, 0), tsPtr(10, 30)),
		timedRun("B", tsPtr(10, 30), tsPtr(11, 0)),
	)

	td := Timing(ds)
	require.NotNil(t, td)
	assert.Empty(t, td.OverlappingRuns)
}

func TestOverlaps_HalfOpenSemantics(t *testing.T) {
	a1, a2 := *tsPtr(10, 0), *tsPtr(10, 30)
	b1, b2 := *tsPtr(10, 15), *tsPtr(10, 45)
	c1, c2 := *tsPtr(10, 30), *tsPtr(11, 0)

	assert.True(t, Overlaps(a1, a2, b1, b2))
	assert.True(t, Overlaps(b1, b2, a1, a2))
	assert.False(t, Overlaps(a1, a2, c1, c2))
	assert.False(t, Overlaps(c1, c2, a1, a2))
}

func TestTiming_OpenEndedBucket(t *testing.T) {
	ds := timedDataset(timedRun("A", tsPtr(8, 0), tsPtr(12, 0)))

	td := Timing(ds)
	require.NotNil(t, td)
	last := td.DurationHistogram[len(td.DurationHistogram)-1]
	assert.Equal(t, "30m+", last.Label)
	assert.Equal(t, 1, last.Count)
}
