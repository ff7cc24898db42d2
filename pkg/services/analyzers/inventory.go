package analyzers

import (
	"sort"

	"github.com/de-tools/report-splash/pkg/models/domain"
)

const topReportsCap = 20

// Inventory counts what reports exist, how often they run, and how their
// parameters vary. Parameter-driven tables are nil when the parameters
// column is unavailable.
func Inventory(ds *domain.Dataset) *domain.InventoryData {
	nameCounts := make(map[string]int)
	typeCounts := make(map[string]int)
	paramSets := make(map[string]map[string]bool)
	firstSeen := make(map[string]*domain.ReportOverview)
	var order []string

	hasType := ds.Columns.Has(domain.ColReportType)
	hasParams := ds.Columns.Has(domain.ColParameters)

	for i := range ds.Rows {
		row := &ds.Rows[i]
		name := row.ReportName

		if _, ok := nameCounts[name]; !ok {
			order = append(order, name)
		}
		nameCounts[name]++

		if hasType && row.ReportType != "" {
			typeCounts[row.ReportType]++
		}

		if hasParams {
			variants, ok := paramSets[name]
			if !ok {
				variants = make(map[string]bool)
				paramSets[name] = variants
			}
			variants[row.Parameters] = true
		}

		if _, ok := firstSeen[name]; !ok {
			firstSeen[name] = &domain.ReportOverview{
				ReportName:        name,
				ReportType:        row.ReportType,
				Hyperfind:         row.Extracted.Hyperfind,
				WorkUnitHyperfind: row.Extracted.WorkUnitHyperfind,
				TimeframeStart:    row.Extracted.TimeframeStart,
				TimeframeEnd:      row.Extracted.TimeframeEnd,
			}
		}
	}

	inv := &domain.InventoryData{
		UniqueReportCount: len(nameCounts),
		TopReports:        capCounts(sortedCounts(nameCounts), topReportsCap),
	}
	if hasType {
		inv.ReportsByType = sortedCounts(typeCounts)
	}

	if hasParams {
		variations := make(map[string]int, len(paramSets))
		for name, variants := range paramSets {
			variations[name] = len(variants)
		}
		inv.ParameterVariations = capCounts(sortedCounts(variations), topReportsCap)

		overview := make([]domain.ReportOverview, 0, len(order))
		for _, name := range order {
			entry := *firstSeen[name]
			entry.Executions = nameCounts[name]
			overview = append(overview, entry)
		}
		sort.SliceStable(overview, func(i, j int) bool {
			return overview[i].Executions > overview[j].Executions
		})
		inv.Overview = overview
	}

	return inv
}
