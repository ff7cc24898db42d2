package analyzers

import (
	"sort"

	"github.com/de-tools/report-splash/pkg/models/domain"
)

const executionLogCap = 500

// ReportDetails builds the drill-down for every distinct report in the
// dataset. schemaName scopes the details to a tenant and is empty when the
// input carries no schema_name column. Details are ordered by run count
// descending so the busiest reports come first in the selector.
func ReportDetails(ds *domain.Dataset, schemaName string) []domain.ReportDetail {
	groups := make(map[string][]int)
	var order []string
	for i := range ds.Rows {
		name := ds.Rows[i].ReportName
		if _, ok := groups[name]; !ok {
			order = append(order, name)
		}
		groups[name] = append(groups[name], i)
	}

	details := make([]domain.ReportDetail, 0, len(order))
	for _, name := range order {
		details = append(details, buildReportDetail(ds, schemaName, name, groups[name]))
	}
	sort.SliceStable(details, func(i, j int) bool {
		if details[i].KPIs.RunCount != details[j].KPIs.RunCount {
			return details[i].KPIs.RunCount > details[j].KPIs.RunCount
		}
		return details[i].ReportName < details[j].ReportName
	})
	return details
}

func buildReportDetail(ds *domain.Dataset, schemaName, name string, rowIdx []int) domain.ReportDetail {
	detail := domain.ReportDetail{
		SchemaName: schemaName,
		ReportName: name,
		DurationHistogram: func() []domain.HistogramBucket {
			hist := make([]domain.HistogramBucket, len(durationBuckets))
			for i, b := range durationBuckets {
				hist[i].Label = b.Label
			}
			return hist
		}(),
	}

	statusCounts := make(map[string]int)
	engineCounts := make(map[string]int)
	errorCodes := make(map[string]int)
	var durations, queues []float64

	for _, i := range rowIdx {
		row := &ds.Rows[i]

		detail.KPIs.RunCount++
		if row.IsFailure() {
			detail.KPIs.FailureCount++
			if row.ErrorCode != "" {
				errorCodes[row.ErrorCode]++
			}
		}

		statusCounts[row.Status.Label()]++
		if row.ActualEngine != "" {
			engineCounts[row.ActualEngine]++
		}

		start := row.EffectiveStart()
		if start != nil {
			detail.HourlyCounts[start.Hour()]++
		}

		if secs := durationSeconds(row); secs != nil {
			durations = append(durations, *secs)
			bucketInto(detail.DurationHistogram, *secs)
			if start != nil {
				detail.DurationSeries = append(detail.DurationSeries, domain.SeriesPoint{
					Start:     *start,
					Seconds:   *secs,
					IsFailure: row.IsFailure(),
				})
			}
		}
		if qs := queueSeconds(row); qs != nil {
			queues = append(queues, *qs)
			if start != nil {
				detail.QueueSeries = append(detail.QueueSeries, domain.SeriesPoint{
					Start:   *start,
					Seconds: *qs,
				})
			}
		}

		detail.Executions = append(detail.Executions, makeLogEntry(row))
	}

	detail.KPIs.FailureRate = ratePercent(detail.KPIs.FailureCount, detail.KPIs.RunCount)
	detail.KPIs.Duration = summarize(durations)
	detail.KPIs.QueueTime = summarize(queues)
	detail.StatusCounts = sortedCounts(statusCounts)
	detail.EngineCounts = sortedCounts(engineCounts)
	detail.ErrorCodes = sortedCounts(errorCodes)

	sortSeries(detail.DurationSeries)
	sortSeries(detail.QueueSeries)

	// Execution log ascending by start; rows without a start sort first in
	// input order.
	sort.SliceStable(detail.Executions, func(i, j int) bool {
		a, b := detail.Executions[i].Start, detail.Executions[j].Start
		switch {
		case a == nil:
			return b != nil
		case b == nil:
			return false
		default:
			return a.Before(*b)
		}
	})
	if len(detail.Executions) > executionLogCap {
		detail.Executions = detail.Executions[:executionLogCap]
	}

	return detail
}

func sortSeries(series []domain.SeriesPoint) {
	sort.SliceStable(series, func(i, j int) bool {
		return series[i].Start.Before(series[j].Start)
	})
}
