package loader

import (
	"time"

	"github.com/de-tools/report-splash/pkg/models/domain"
)

// FilterByDate keeps rows whose start_datetime falls within the inclusive
// [start, end] date range. Rows without a start_datetime are excluded whenever
// a bound is given, since they cannot be placed in the range. Nil bounds are
// open-ended; with both bounds nil the dataset is returned unchanged.
func FilterByDate(ds *domain.Dataset, start, end *time.Time) *domain.Dataset {
	if start == nil && end == nil {
		return ds
	}

	rows := make([]domain.ReportRun, 0, len(ds.Rows))
	for _, row := range ds.Rows {
		if row.StartTime == nil {
			continue
		}
		day := row.StartTime.Truncate(24 * time.Hour)
		if start != nil && day.Before(*start) {
			continue
		}
		if end != nil && day.After(*end) {
			continue
		}
		rows = append(rows, row)
	}

	return ds.Subset(rows)
}
