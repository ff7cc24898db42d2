package analyzers

import (
	"sort"
	"time"

	"github.com/de-tools/report-splash/pkg/models/domain"
)

// durationBuckets are the fixed histogram edges, half-open [lo, hi).
var durationBuckets = []struct {
	Label string
	Lo    float64
	Hi    float64
}{
	{"<1s", 0, 1},
	{"1-10s", 1, 10},
	{"10s-1m", 10, 60},
	{"1-5m", 60, 300},
	{"5-30m", 300, 1800},
	{"30m+", 1800, 0}, // open-ended
}

const overlapCap = 50

// Timing computes duration and scheduling distributions. It returns nil when
// the dataset has no usable start/end column pair.
func Timing(ds *domain.Dataset) *domain.TimingData {
	hasStart := ds.Columns.HasAny(domain.ColStartDatetime, domain.ColBirtStart)
	hasEnd := ds.Columns.HasAny(domain.ColEndDatetime, domain.ColBirtEnd)
	if !hasStart || !hasEnd {
		return nil
	}

	td := &domain.TimingData{
		DurationHistogram: make([]domain.HistogramBucket, len(durationBuckets)),
	}
	for i, b := range durationBuckets {
		td.DurationHistogram[i].Label = b.Label
	}

	type interval struct {
		start, end time.Time
		row        int
	}
	var intervals []interval

	for i := range ds.Rows {
		row := &ds.Rows[i]

		if start := row.EffectiveStart(); start != nil {
			td.TimedRows++
			td.HourlyCounts[start.Hour()]++
			// time.Weekday starts on Sunday; the dashboard week starts Monday.
			td.WeekdayCounts[(int(start.Weekday())+6)%7]++
		}

		if secs := durationSeconds(row); secs != nil {
			td.DurationSamples++
			bucketInto(td.DurationHistogram, *secs)
		}

		start, end := row.EffectiveStart(), row.EffectiveEnd()
		if start != nil && end != nil {
			intervals = append(intervals, interval{start: *start, end: *end, row: i})
		}
	}

	// Overlap sweep: sort by start, then any run starting before the previous
	// one ends overlaps it. Half-open intervals, touching endpoints don't
	// overlap.
	sort.SliceStable(intervals, func(i, j int) bool {
		return intervals[i].start.Before(intervals[j].start)
	})

	seen := make(map[int]bool)
	addOverlap := func(iv interval) {
		if seen[iv.row] {
			return
		}
		seen[iv.row] = true
		td.OverlappingRuns = append(td.OverlappingRuns, domain.OverlapEntry{
			ReportName: ds.Rows[iv.row].ReportName,
			Start:      iv.start,
			End:        iv.end,
		})
	}
	for i := 0; i+1 < len(intervals); i++ {
		a, b := intervals[i], intervals[i+1]
		if b.start.Before(a.end) {
			addOverlap(a)
			addOverlap(b)
		}
	}
	if len(td.OverlappingRuns) > overlapCap {
		td.OverlappingRuns = td.OverlappingRuns[:overlapCap]
	}

	return td
}

func bucketInto(hist []domain.HistogramBucket, secs float64) {
	for i, b := range durationBuckets {
		if secs >= b.Lo && (b.Hi == 0 || secs < b.Hi) {
			hist[i].Count++
			return
		}
	}
}

// Overlaps reports whether two half-open [start, end) intervals intersect.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
