package loader

import (
	"testing"
	"time"

	"github.com/de-tools/report-splash/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func datasetWithStarts(starts ...*time.Time) *domain.Dataset {
	rows := make([]domain.ReportRun, len(starts))
	for i, s := range starts {
		rows[i] = domain.ReportRun{
			ReportName: "A",
			Status:     domain.StatusCompleted,
			StartTime:  s,
		}
	}
	return &domain.Dataset{Rows: rows, Columns: domain.ColumnSet{}}
}

func TestFilterByDate_InclusiveBounds(t *testing.T) {
	day := func(d int) *time.Time {
		t := time.Date(2025, 1, d, 10, 0, 0, 0, time.UTC)
		return &t
	}
	ds := datasetWithStarts(day(10), day(15), day(20), nil)

	start := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)

	out := FilterByDate(ds, &start, &end)
	assert.Len(t, out.Rows, 2)
}

func TestFilterByDate_NoBoundsPassesThrough(t *testing.T) {
	ds := datasetWithStarts(nil, nil)
	out := FilterByDate(ds, nil, nil)
	assert.Len(t, out.Rows, 2)
}

func TestFilterByDate_MissingStartExcludedWhenBounded(t *testing.T) {
	ds := datasetWithStarts(nil)
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	out := FilterByDate(ds, &start, nil)
	assert.Empty(t, out.Rows)
}
