// Package analyzers computes every statistic the dashboard document carries.
// Each analyzer is a pure function over the dataset: same input order, same
// output. Rows missing the field a metric needs are excluded, never counted
// as zero, and every aggregate reports how many rows it actually included.
package analyzers

import (
	"sort"

	"github.com/de-tools/report-splash/pkg/models/domain"
)

// summarize computes min/max/mean/median/P90 over a sample. An empty sample
// yields nil so "no data" stays distinct from zero.
func summarize(sample []float64) *domain.SummaryStats {
	if len(sample) == 0 {
		return nil
	}

	sorted := make([]float64, len(sample))
	copy(sorted, sample)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}

	return &domain.SummaryStats{
		Count:  len(sorted),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Mean:   sum / float64(len(sorted)),
		Median: percentile(sorted, 50),
		P90:    percentile(sorted, 90),
	}
}

// percentile interpolates linearly on an already-sorted sample. A single
// sample returns that value for every percentile.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}

	rank := p / 100 * float64(len(sorted)-1)
	lo := int(rank)
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

func mean(sample []float64) float64 {
	var sum float64
	for _, v := range sample {
		sum += v
	}
	return sum / float64(len(sample))
}

func median(sample []float64) float64 {
	sorted := make([]float64, len(sample))
	copy(sorted, sample)
	sort.Float64s(sorted)
	return percentile(sorted, 50)
}

// ratePercent guards the zero-denominator case.
func ratePercent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// sortedCounts turns a counter map into a deterministic slice, highest count
// first, ties broken by name.
func sortedCounts(counts map[string]int) []domain.NameCount {
	if len(counts) == 0 {
		return nil
	}
	out := make([]domain.NameCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, domain.NameCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func capCounts(counts []domain.NameCount, n int) []domain.NameCount {
	if len(counts) > n {
		return counts[:n]
	}
	return counts
}

func durationSeconds(r *domain.ReportRun) *float64 {
	d := r.Duration()
	if d == nil {
		return nil
	}
	s := d.Seconds()
	return &s
}

func queueSeconds(r *domain.ReportRun) *float64 {
	d := r.QueueTime()
	if d == nil {
		return nil
	}
	s := d.Seconds()
	return &s
}
