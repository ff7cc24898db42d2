package analyzers

import (
	"sort"
	"strings"
	"time"

	"github.com/de-tools/report-splash/pkg/models/domain"
)

const (
	concurrentLoadCap = 50
	failureLogCap     = 200
	mostFailingCap    = 20
)

// Errors computes the failure-oriented statistics: rates per grouping key,
// error message groups, failure logs and concurrent load at failure time.
func Errors(ds *domain.Dataset) *domain.ErrorData {
	ed := &domain.ErrorData{
		TotalExecutions: len(ds.Rows),
	}

	errorCodes := make(map[string]int)
	dailyFailures := make(map[string]int)
	reportTotals := make(map[string]int)
	reportFailures := make(map[string]int)
	engineTotals := make(map[string]int)
	engineFailures := make(map[string]int)

	type msgGroup struct {
		sample string
		count  int
		seq    int
	}
	messageGroups := make(map[string]*msgGroup)

	type interval struct {
		start, end time.Time
		row        int
	}
	var intervals []interval
	var failures []*domain.ReportRun
	var failureRows []int

	for i := range ds.Rows {
		row := &ds.Rows[i]
		reportTotals[row.ReportName]++

		if row.ActualEngine != "" {
			engineTotals[row.ActualEngine]++
		}

		if start, end := row.EffectiveStart(), row.EffectiveEnd(); start != nil && end != nil {
			intervals = append(intervals, interval{start: *start, end: *end, row: i})
		}

		if !row.IsFailure() {
			continue
		}

		ed.FailureCount++
		failures = append(failures, row)
		failureRows = append(failureRows, i)
		reportFailures[row.ReportName]++

		if row.ActualEngine != "" {
			engineFailures[row.ActualEngine]++
		}
		if row.ErrorCode != "" {
			errorCodes[row.ErrorCode]++
		}
		if row.ErrorMessage != "" {
			key := normalizeMessage(row.ErrorMessage)
			g, ok := messageGroups[key]
			if !ok {
				g = &msgGroup{sample: row.ErrorMessage, seq: len(messageGroups)}
				messageGroups[key] = g
			}
			g.count++
		}
		if start := row.EffectiveStart(); start != nil {
			dailyFailures[start.Format("2006-01-02")]++
			ed.FailuresByHour[start.Hour()]++
		}
	}

	ed.FailureRate = ratePercent(ed.FailureCount, ed.TotalExecutions)
	ed.ErrorCodes = sortedCounts(errorCodes)
	ed.MostFailingReports = capCounts(sortedCounts(reportFailures), mostFailingCap)

	// Failures per day, chronological.
	if len(dailyFailures) > 0 {
		days := make([]domain.NameCount, 0, len(dailyFailures))
		for day, count := range dailyFailures {
			days = append(days, domain.NameCount{Name: day, Count: count})
		}
		sort.Slice(days, func(i, j int) bool { return days[i].Name < days[j].Name })
		ed.FailuresPerDay = days
	}

	ed.FailureRateByReport = rateEntries(reportTotals, reportFailures)
	if ds.Columns.Has(domain.ColActualEngine) && len(engineTotals) > 0 {
		ed.FailuresByEngine = rateEntries(engineTotals, engineFailures)
	}

	if len(messageGroups) > 0 {
		groups := make([]domain.MessageGroup, 0, len(messageGroups))
		seqs := make(map[string]int, len(messageGroups))
		for _, g := range messageGroups {
			groups = append(groups, domain.MessageGroup{Sample: g.sample, Count: g.count})
			seqs[g.sample] = g.seq
		}
		sort.Slice(groups, func(i, j int) bool {
			if groups[i].Count != groups[j].Count {
				return groups[i].Count > groups[j].Count
			}
			return seqs[groups[i].Sample] < seqs[groups[j].Sample]
		})
		ed.MessageGroups = groups
	}

	// Concurrent load at failure: other runs whose interval contains the
	// failing run's start.
	for fi, row := range failures {
		if len(ed.ConcurrentLoad) >= concurrentLoadCap {
			break
		}
		start := row.EffectiveStart()
		if start == nil || row.EffectiveEnd() == nil {
			continue
		}
		count := 0
		for _, iv := range intervals {
			if iv.row == failureRows[fi] {
				continue
			}
			if !iv.start.After(*start) && iv.end.After(*start) {
				count++
			}
		}
		ed.ConcurrentLoad = append(ed.ConcurrentLoad, domain.ConcurrentLoadEntry{
			ReportName: row.ReportName,
			Start:      *start,
			Concurrent: count,
			ErrorCode:  row.ErrorCode,
		})
	}
	sort.SliceStable(ed.ConcurrentLoad, func(i, j int) bool {
		return ed.ConcurrentLoad[i].Concurrent > ed.ConcurrentLoad[j].Concurrent
	})

	// Failure log, newest first.
	log := make([]domain.LogEntry, 0, len(failures))
	for _, row := range failures {
		log = append(log, makeLogEntry(row))
	}
	sort.SliceStable(log, func(i, j int) bool {
		a, b := log[i].Start, log[j].Start
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
	if len(log) > failureLogCap {
		log = log[:failureLogCap]
	}
	ed.FailureLog = log

	return ed
}

func rateEntries(totals, failures map[string]int) []domain.FailureRateEntry {
	entries := make([]domain.FailureRateEntry, 0, len(totals))
	for name, total := range totals {
		entries = append(entries, domain.FailureRateEntry{
			Name:     name,
			Total:    total,
			Failures: failures[name],
			Rate:     ratePercent(failures[name], total),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Rate != entries[j].Rate {
			return entries[i].Rate > entries[j].Rate
		}
		if entries[i].Total != entries[j].Total {
			return entries[i].Total > entries[j].Total
		}
		return entries[i].Name < entries[j].Name
	})
	return entries
}

// normalizeMessage groups error text case-insensitively with whitespace
// collapsed, so retries of the same failure land in one bucket.
func normalizeMessage(msg string) string {
	return strings.Join(strings.Fields(strings.ToLower(msg)), " ")
}
