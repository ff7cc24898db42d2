package analyzers

import (
	"sort"

	"github.com/de-tools/report-splash/pkg/models/domain"
)

const (
	slowestRunsCap   = 20
	slowestReportCap = 10
	scatterCap       = 500
)

// Performance computes throughput and sizing statistics. Returns nil when no
// start/end column pair exists or no row carries a usable duration.
func Performance(ds *domain.Dataset) *domain.PerformanceData {
	hasStart := ds.Columns.HasAny(domain.ColStartDatetime, domain.ColBirtStart)
	hasEnd := ds.Columns.HasAny(domain.ColEndDatetime, domain.ColBirtEnd)
	if !hasStart || !hasEnd {
		return nil
	}

	type timedRow struct {
		secs float64
		row  int
	}
	var timed []timedRow
	perReport := make(map[string][]float64)
	var reportOrder []string

	for i := range ds.Rows {
		row := &ds.Rows[i]
		secs := durationSeconds(row)
		if secs == nil {
			continue
		}
		timed = append(timed, timedRow{secs: *secs, row: i})
		if _, ok := perReport[row.ReportName]; !ok {
			reportOrder = append(reportOrder, row.ReportName)
		}
		perReport[row.ReportName] = append(perReport[row.ReportName], *secs)
	}
	if len(timed) == 0 {
		return nil
	}

	pd := &domain.PerformanceData{}

	sort.SliceStable(timed, func(i, j int) bool { return timed[i].secs > timed[j].secs })
	for _, tr := range timed {
		if len(pd.SlowestRuns) >= slowestRunsCap {
			break
		}
		row := &ds.Rows[tr.row]
		pd.SlowestRuns = append(pd.SlowestRuns, domain.SlowRun{
			ReportName:   row.ReportName,
			Start:        row.EffectiveStart(),
			DurationSecs: tr.secs,
			QueueSecs:    queueSeconds(row),
			Engine:       row.ActualEngine,
		})
	}

	// Slowest reports by mean and by median duration.
	aggs := make([]domain.ReportDurationAgg, 0, len(reportOrder))
	for _, name := range reportOrder {
		sample := perReport[name]
		aggs = append(aggs, domain.ReportDurationAgg{
			ReportName: name,
			Runs:       len(sample),
			MeanSecs:   mean(sample),
			MedianSecs: median(sample),
		})
	}
	pd.SlowestByMean = topAggs(aggs, func(a domain.ReportDurationAgg) float64 { return a.MeanSecs })
	pd.SlowestByMedian = topAggs(aggs, func(a domain.ReportDurationAgg) float64 { return a.MedianSecs })

	if ds.Columns.Has(domain.ColOutputFileSize) {
		for _, tr := range timed {
			if len(pd.DurationVsSize) >= scatterCap {
				break
			}
			row := &ds.Rows[tr.row]
			if row.OutputFileSize == nil {
				continue
			}
			pd.DurationVsSize = append(pd.DurationVsSize, domain.ScatterPoint{
				ReportName:   row.ReportName,
				DurationSecs: tr.secs,
				SizeBytes:    *row.OutputFileSize,
			})
		}
	}

	if ds.Columns.Has(domain.ColOutputFileSize) {
		pd.FileSizeStats = summarize(collectInt64(ds, func(r *domain.ReportRun) *int64 {
			return r.OutputFileSize
		}))
	}
	if ds.Columns.Has(domain.ColReportObjectCount) {
		pd.ObjectCountStats = summarize(collectInt64(ds, func(r *domain.ReportRun) *int64 {
			return r.ReportObjectCount
		}))
	}
	if ds.Columns.Has(domain.ColStartDatetime, domain.ColBirtStart) {
		var sample []float64
		for i := range ds.Rows {
			if qs := queueSeconds(&ds.Rows[i]); qs != nil {
				sample = append(sample, *qs)
			}
		}
		pd.QueueTimeStats = summarize(sample)
	}

	return pd
}

func topAggs(aggs []domain.ReportDurationAgg, key func(domain.ReportDurationAgg) float64) []domain.ReportDurationAgg {
	out := make([]domain.ReportDurationAgg, len(aggs))
	copy(out, aggs)
	sort.SliceStable(out, func(i, j int) bool { return key(out[i]) > key(out[j]) })
	if len(out) > slowestReportCap {
		out = out[:slowestReportCap]
	}
	return out
}

func collectInt64(ds *domain.Dataset, get func(*domain.ReportRun) *int64) []float64 {
	var sample []float64
	for i := range ds.Rows {
		if v := get(&ds.Rows[i]); v != nil {
			sample = append(sample, float64(*v))
		}
	}
	return sample
}
