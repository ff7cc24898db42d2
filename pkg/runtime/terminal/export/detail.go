package export

import (
	"github.com/de-tools/report-splash/pkg/models/domain"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// drilldownSection renders the per-report drill-downs, nested under tenant
// panels when the input carries tenants.
func drilldownSection(doc *domain.DashboardDocument) Node {
	if doc.Sections.Tenants {
		tenants := make([]Node, 0, len(doc.Tenants))
		for i := range doc.Tenants {
			tenants = append(tenants, tenantPanel(&doc.Tenants[i]))
		}
		return Group(tenants)
	}

	if len(doc.Reports) == 0 {
		return Text("")
	}
	return panel("Report Drill-Down", reportDetails(doc.Reports))
}

func tenantPanel(tv *domain.TenantView) Node {
	body := []Node{
		Div(Class("kpi-row"),
			kpi("executions", fmtCount(tv.TotalExecutions), false),
			kpi("distinct reports", fmtCount(tv.UniqueReports), false),
			kpi("failures", fmtCount(tv.FailureCount), tv.FailureCount > 0),
			kpi("failure rate", fmtPct(tv.FailureRate), tv.FailureCount > 0),
		),
		reportDetails(tv.Reports),
	}
	return panel("Tenant: "+tv.SchemaName, body...)
}

func reportDetails(details []domain.ReportDetail) Node {
	nodes := make([]Node, 0, len(details))
	for i := range details {
		nodes = append(nodes, reportDetailPanel(&details[i]))
	}
	return Group(nodes)
}

func reportDetailPanel(d *domain.ReportDetail) Node {
	body := []Node{
		Div(Class("kpi-row"),
			kpi("runs", fmtCount(d.KPIs.RunCount), false),
			kpi("failures", fmtCount(d.KPIs.FailureCount), d.KPIs.FailureCount > 0),
			kpi("failure rate", fmtPct(d.KPIs.FailureRate), d.KPIs.FailureCount > 0),
		),
		H3(Text("Duration")),
		statsRow(d.KPIs.Duration, fmtSecs),
		H3(Text("Queue time")),
		statsRow(d.KPIs.QueueTime, fmtSecs),
		H3(Text("Status distribution")),
		nameCountTable("Status", d.StatusCounts),
	}

	if d.EngineCounts != nil {
		body = append(body, H3(Text("Engine distribution")), nameCountTable("Engine", d.EngineCounts))
	}
	if d.ErrorCodes != nil {
		body = append(body, H3(Text("Error codes (failed runs)")), nameCountTable("Code", d.ErrorCodes))
	}

	if d.KPIs.Duration != nil {
		histLabels := make([]string, len(d.DurationHistogram))
		histValues := make([]int, len(d.DurationHistogram))
		for i, b := range d.DurationHistogram {
			histLabels[i] = b.Label
			histValues[i] = b.Count
		}
		body = append(body,
			H3(Text("Duration histogram")),
			barChart(histLabels, histValues),
			H3(Text("Runs by hour of day")),
			barChart(hourLabels(), d.HourlyCounts[:]),
		)
	}

	if len(d.DurationSeries) > 0 {
		body = append(body, H3(Text("Durations over time (failures tinted)")), sparkline(d.DurationSeries))
	}
	if len(d.QueueSeries) > 0 {
		body = append(body, H3(Text("Queue times over time")), sparkline(d.QueueSeries))
	}

	if len(d.Executions) > 0 {
		body = append(body, H3(Text("Execution log")), executionTable(d.Executions))
	}

	return Details(Class("drilldown"),
		Summary(Textf("%s — %s runs, %s failure rate",
			d.ReportName, fmtCount(d.KPIs.RunCount), fmtPct(d.KPIs.FailureRate))),
		Div(Group(body)),
	)
}
