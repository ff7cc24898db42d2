package analyzers

import (
	"sort"

	"github.com/de-tools/report-splash/pkg/models/domain"
)

// Tenants groups rows by schema_name and re-runs the section analyzers over
// each tenant's slice. Returns nil when the column is unavailable or no row
// carries a value. Views are ordered by execution count descending.
func Tenants(ds *domain.Dataset) []domain.TenantView {
	if !ds.Columns.Has(domain.ColSchemaName) {
		return nil
	}

	groups := make(map[string][]domain.ReportRun)
	var order []string
	for i := range ds.Rows {
		sn := ds.Rows[i].SchemaName
		if sn == "" {
			continue
		}
		if _, ok := groups[sn]; !ok {
			order = append(order, sn)
		}
		groups[sn] = append(groups[sn], ds.Rows[i])
	}
	if len(groups) == 0 {
		return nil
	}

	views := make([]domain.TenantView, 0, len(order))
	for _, sn := range order {
		sub := ds.Subset(groups[sn])

		view := domain.TenantView{
			SchemaName:      sn,
			TotalExecutions: len(sub.Rows),
			Timing:          Timing(sub),
			Inventory:       Inventory(sub),
			Errors:          Errors(sub),
			Engine:          Engine(sub),
			Performance:     Performance(sub),
			Reports:         ReportDetails(sub, sn),
		}

		uniqueReports := make(map[string]bool)
		for i := range sub.Rows {
			uniqueReports[sub.Rows[i].ReportName] = true
			if sub.Rows[i].IsFailure() {
				view.FailureCount++
			}
		}
		view.UniqueReports = len(uniqueReports)
		view.FailureRate = ratePercent(view.FailureCount, view.TotalExecutions)

		views = append(views, view)
	}

	sort.SliceStable(views, func(i, j int) bool {
		if views[i].TotalExecutions != views[j].TotalExecutions {
			return views[i].TotalExecutions > views[j].TotalExecutions
		}
		return views[i].SchemaName < views[j].SchemaName
	})
	return views
}
