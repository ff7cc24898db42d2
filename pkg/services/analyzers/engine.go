package analyzers

import (
	"sort"

	"github.com/de-tools/report-splash/pkg/models/domain"
)

// Engine computes routing statistics: load per engine and node, and the rows
// that ran on a different engine than the router expected. Returns nil when
// neither actual_engine nor route_to_node is available.
func Engine(ds *domain.Dataset) *domain.EngineData {
	hasEngine := ds.Columns.Has(domain.ColActualEngine)
	hasNode := ds.Columns.Has(domain.ColRouteToNode)
	if !hasEngine && !hasNode {
		return nil
	}

	engineCounts := make(map[string]int)
	nodeCounts := make(map[string]int)
	pairCounts := make(map[domain.MismatchPair]int)
	var pairOrder []domain.MismatchPair

	ed := &domain.EngineData{}
	checkMismatch := hasEngine && ds.Columns.Has(domain.ColExpectedEngine)

	for i := range ds.Rows {
		row := &ds.Rows[i]

		if hasEngine && row.ActualEngine != "" {
			engineCounts[row.ActualEngine]++
		}
		if hasNode && row.RouteToNode != "" {
			nodeCounts[row.RouteToNode]++
		}

		if !checkMismatch || row.ActualEngine == "" || row.ExpectedEngine == "" {
			continue
		}
		ed.RowsWithBoth++
		if row.ActualEngine == row.ExpectedEngine {
			continue
		}
		ed.MismatchCount++
		pair := domain.MismatchPair{Expected: row.ExpectedEngine, Actual: row.ActualEngine}
		if _, ok := pairCounts[pair]; !ok {
			pairOrder = append(pairOrder, pair)
		}
		pairCounts[pair]++
	}

	if hasEngine {
		ed.LoadPerEngine = sortedCounts(engineCounts)
	}
	if hasNode {
		ed.LoadPerNode = sortedCounts(nodeCounts)
	}

	if ed.RowsWithBoth > 0 {
		rate := ratePercent(ed.MismatchCount, ed.RowsWithBoth)
		ed.MismatchRate = &rate
	}

	for _, pair := range pairOrder {
		pair.Count = pairCounts[pair]
		ed.MismatchPairs = append(ed.MismatchPairs, pair)
	}
	sort.SliceStable(ed.MismatchPairs, func(i, j int) bool {
		a, b := ed.MismatchPairs[i], ed.MismatchPairs[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		if a.Expected != b.Expected {
			return a.Expected < b.Expected
		}
		return a.Actual < b.Actual
	})

	return ed
}
