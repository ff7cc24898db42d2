package export

import (
	"strings"

	"github.com/de-tools/report-splash/pkg/models/domain"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func dashboardPage(doc *domain.DashboardDocument) Node {
	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(Text(doc.Title)),
				StyleEl(Raw(appCSS)),
			),
			Body(
				Header(Class("masthead"),
					H1(Text(doc.Title)),
					P(Textf("%s rows from %s — generated %s",
						fmtCount(doc.TotalRows),
						strings.Join(doc.SourceFiles, ", "),
						doc.GeneratedAt.Format("2006-01-02 15:04:05"))),
				),
				Main(
					warningsSection(doc),
					inventorySection(doc),
					timingSection(doc),
					errorsSection(doc),
					engineSection(doc),
					performanceSection(doc),
					drilldownSection(doc),
				),
				Footer(Textf("columns detected: %s", strings.Join(doc.AvailableColumns, ", "))),
			),
		),
	)
}

// panel wraps one dashboard section.
func panel(title string, body ...Node) Node {
	return Section(Class("panel"), H2(Text(title)), Group(body))
}

// noData is the rendering of a section whose source columns are unavailable.
// Absent data renders as a note, never as zeros.
func noData(what string) Node {
	return P(Class("note"), Textf("No data: the source files carry no %s.", what))
}

func kpi(label, value string, failure bool) Node {
	class := "kpi"
	if failure {
		class = "kpi failure"
	}
	return Div(Class(class),
		Span(Class("kpi-value"), Text(value)),
		Span(Class("kpi-label"), Text(label)),
	)
}

func warningsSection(doc *domain.DashboardDocument) Node {
	var notes []Node
	if len(doc.SourceFiles) > 1 && !doc.DedupApplied {
		notes = append(notes, Li(Text(
			"Multiple input files were combined without an identity column; duplicate rows may be present.")))
	}
	for _, w := range doc.Warnings {
		notes = append(notes, Li(Text(w.String())))
	}
	if len(notes) == 0 {
		return Text("")
	}
	return panel("Warnings", Ul(Class("warnings"), Group(notes)))
}

func inventorySection(doc *domain.DashboardDocument) Node {
	inv := doc.Inventory
	if inv == nil {
		return Text("")
	}

	body := []Node{
		Div(Class("kpi-row"),
			kpi("distinct reports", fmtCount(inv.UniqueReportCount), false),
			kpi("total executions", fmtCount(doc.TotalRows), false),
		),
		H3(Text("Most frequently run")),
		nameCountTable("Report", inv.TopReports),
	}

	if inv.ReportsByType != nil {
		body = append(body, H3(Text("Runs by report type")), nameCountTable("Type", inv.ReportsByType))
	}
	if doc.Sections.Parameters {
		if inv.ParameterVariations != nil {
			body = append(body,
				H3(Text("Parameter variations per report")),
				nameCountTable("Report", inv.ParameterVariations))
		}
		if inv.Overview != nil {
			body = append(body, H3(Text("Report overview")), overviewTable(inv.Overview))
		}
	}

	return panel("Inventory", body...)
}

func timingSection(doc *domain.DashboardDocument) Node {
	if !doc.Sections.Timing || doc.Timing == nil {
		return panel("Timing & Scheduling", noData("start/end timestamps"))
	}
	td := doc.Timing

	histLabels := make([]string, len(td.DurationHistogram))
	histValues := make([]int, len(td.DurationHistogram))
	for i, b := range td.DurationHistogram {
		histLabels[i] = b.Label
		histValues[i] = b.Count
	}

	body := []Node{
		H3(Textf("Duration distribution (%s runs with measurable duration)", fmtCount(td.DurationSamples))),
		barChart(histLabels, histValues),
		H3(Textf("Runs by hour of day (%s runs with a start time)", fmtCount(td.TimedRows))),
		barChart(hourLabels(), td.HourlyCounts[:]),
		H3(Text("Runs by day of week")),
		barChart(weekdayLabels, td.WeekdayCounts[:]),
	}

	if len(td.OverlappingRuns) > 0 {
		rows := make([]Node, 0, len(td.OverlappingRuns))
		for _, o := range td.OverlappingRuns {
			start, end := o.Start, o.End
			rows = append(rows, Tr(
				Td(Text(o.ReportName)),
				Td(Text(fmtTime(&start))),
				Td(Text(fmtTime(&end))),
			))
		}
		body = append(body,
			H3(Textf("Overlapping runs (%d shown)", len(td.OverlappingRuns))),
			Table(
				THead(Tr(Th(Text("Report")), Th(Text("Start")), Th(Text("End")))),
				TBody(Group(rows)),
			),
		)
	}

	return panel("Timing & Scheduling", body...)
}

func errorsSection(doc *domain.DashboardDocument) Node {
	ed := doc.Errors
	if ed == nil {
		return Text("")
	}

	body := []Node{
		Div(Class("kpi-row"),
			kpi("total executions", fmtCount(ed.TotalExecutions), false),
			kpi("failures", fmtCount(ed.FailureCount), ed.FailureCount > 0),
			kpi("failure rate", fmtPct(ed.FailureRate), ed.FailureCount > 0),
		),
	}

	if len(ed.FailureRateByReport) > 0 {
		body = append(body, H3(Text("Failure rate by report")), rateTable("Report", ed.FailureRateByReport))
	}
	if ed.FailuresByEngine != nil {
		body = append(body, H3(Text("Failure rate by engine")), rateTable("Engine", ed.FailuresByEngine))
	}
	if ed.FailureCount > 0 {
		body = append(body, H3(Text("Failures by hour of day")), barChart(hourLabels(), ed.FailuresByHour[:]))
	}
	if len(ed.FailuresPerDay) > 0 {
		body = append(body, H3(Text("Failures per day")), nameCountTable("Date", ed.FailuresPerDay))
	}
	if len(ed.ErrorCodes) > 0 {
		body = append(body, H3(Text("Error codes")), nameCountTable("Code", ed.ErrorCodes))
	}
	if ed.MessageGroups != nil {
		rows := make([]Node, 0, len(ed.MessageGroups))
		for _, mg := range ed.MessageGroups {
			rows = append(rows, Tr(
				Td(Text(mg.Sample)),
				Td(Class("num"), Text(fmtCount(mg.Count))),
			))
		}
		body = append(body,
			H3(Text("Error messages (grouped by normalized text)")),
			Table(
				THead(Tr(Th(Text("Representative message")), Th(Class("num"), Text("Count")))),
				TBody(Group(rows)),
			),
		)
	}
	if len(ed.ConcurrentLoad) > 0 {
		rows := make([]Node, 0, len(ed.ConcurrentLoad))
		for _, cl := range ed.ConcurrentLoad {
			start := cl.Start
			rows = append(rows, Tr(
				Td(Text(cl.ReportName)),
				Td(Text(fmtTime(&start))),
				Td(Class("num"), Text(fmtCount(cl.Concurrent))),
				Td(Text(cl.ErrorCode)),
			))
		}
		body = append(body,
			H3(Text("Concurrent load when failures started")),
			Table(
				THead(Tr(
					Th(Text("Report")), Th(Text("Start")),
					Th(Class("num"), Text("Concurrent runs")), Th(Text("Error code")),
				)),
				TBody(Group(rows)),
			),
		)
	}
	if len(ed.FailureLog) > 0 {
		body = append(body,
			H3(Textf("Failure log (%d most recent)", len(ed.FailureLog))),
			executionTable(ed.FailureLog),
		)
	}

	return panel("Error Analysis", body...)
}

func engineSection(doc *domain.DashboardDocument) Node {
	if !doc.Sections.EngineLoad || doc.Engine == nil {
		return panel("Engine Routing", noData("engine or node routing columns"))
	}
	ed := doc.Engine

	var body []Node
	if ed.LoadPerEngine != nil {
		body = append(body, H3(Text("Load per engine")), nameCountTable("Engine", ed.LoadPerEngine))
	}
	if ed.LoadPerNode != nil {
		body = append(body, H3(Text("Load per node")), nameCountTable("Node", ed.LoadPerNode))
	}

	if doc.Sections.Routing {
		if ed.MismatchRate != nil {
			body = append(body, Div(Class("kpi-row"),
				kpi("rows with expected+actual", fmtCount(ed.RowsWithBoth), false),
				kpi("mismatched", fmtCount(ed.MismatchCount), ed.MismatchCount > 0),
				kpi("mismatch rate", fmtPct(*ed.MismatchRate), ed.MismatchCount > 0),
			))
		}
		if len(ed.MismatchPairs) > 0 {
			rows := make([]Node, 0, len(ed.MismatchPairs))
			for _, mp := range ed.MismatchPairs {
				rows = append(rows, Tr(
					Td(Text(mp.Expected)),
					Td(Text(mp.Actual)),
					Td(Class("num"), Text(fmtCount(mp.Count))),
				))
			}
			body = append(body,
				H3(Text("Routing mismatches (expected → actual)")),
				Table(
					THead(Tr(
						Th(Text("Expected")), Th(Text("Actual")), Th(Class("num"), Text("Count")),
					)),
					TBody(Group(rows)),
				),
			)
		}
	}

	return panel("Engine Routing", body...)
}

func performanceSection(doc *domain.DashboardDocument) Node {
	if !doc.Sections.Performance || doc.Performance == nil {
		return panel("Performance", noData("start/end timestamps"))
	}
	pd := doc.Performance

	var body []Node

	if len(pd.SlowestRuns) > 0 {
		rows := make([]Node, 0, len(pd.SlowestRuns))
		for _, sr := range pd.SlowestRuns {
			rows = append(rows, Tr(
				Td(Text(sr.ReportName)),
				Td(Text(fmtTime(sr.Start))),
				Td(Class("num"), Text(fmtSecs(sr.DurationSecs))),
				Td(Class("num"), Text(fmtOptSecs(sr.QueueSecs))),
				Td(Text(sr.Engine)),
			))
		}
		body = append(body,
			H3(Text("Slowest executions")),
			Table(
				THead(Tr(
					Th(Text("Report")), Th(Text("Start")),
					Th(Class("num"), Text("Duration")), Th(Class("num"), Text("Queue")),
					Th(Text("Engine")),
				)),
				TBody(Group(rows)),
			),
		)
	}

	if len(pd.SlowestByMean) > 0 {
		body = append(body, H3(Text("Slowest reports by mean duration")), aggTable(pd.SlowestByMean))
	}
	if len(pd.SlowestByMedian) > 0 {
		body = append(body, H3(Text("Slowest reports by median duration")), aggTable(pd.SlowestByMedian))
	}

	if doc.Sections.QueueTimes {
		body = append(body, H3(Text("Queue time")), statsRow(pd.QueueTimeStats, fmtSecs))
	}
	if doc.Sections.FileSizes {
		body = append(body, H3(Text("Output file size")), statsRow(pd.FileSizeStats, fmtBytes))
	}
	if doc.Sections.ObjectCounts {
		body = append(body, H3(Text("Report object count")),
			statsRow(pd.ObjectCountStats, func(v float64) string { return fmtCount(int(v)) }))
	}
	if doc.Sections.FileSizes && len(pd.DurationVsSize) > 0 {
		body = append(body,
			H3(Textf("Duration vs output size (%d runs with both)", len(pd.DurationVsSize))),
			scatterChart(pd.DurationVsSize),
		)
	}

	return panel("Performance", body...)
}

// statsRow renders one SummaryStats as a KPI row, or the no-data note when
// the sample was empty.
func statsRow(stats *domain.SummaryStats, format func(float64) string) Node {
	if stats == nil {
		return P(Class("note"), Text("No data: no row carries this field."))
	}
	return Div(Class("kpi-row"),
		kpi("rows included", fmtCount(stats.Count), false),
		kpi("min", format(stats.Min), false),
		kpi("mean", format(stats.Mean), false),
		kpi("median", format(stats.Median), false),
		kpi("P90", format(stats.P90), false),
		kpi("max", format(stats.Max), false),
	)
}

func nameCountTable(header string, counts []domain.NameCount) Node {
	rows := make([]Node, 0, len(counts))
	for _, nc := range counts {
		rows = append(rows, Tr(
			Td(Text(nc.Name)),
			Td(Class("num"), Text(fmtCount(nc.Count))),
		))
	}
	return Table(
		THead(Tr(Th(Text(header)), Th(Class("num"), Text("Count")))),
		TBody(Group(rows)),
	)
}

func rateTable(header string, entries []domain.FailureRateEntry) Node {
	rows := make([]Node, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, Tr(
			Td(Text(e.Name)),
			Td(Class("num"), Text(fmtCount(e.Total))),
			Td(Class("num"), Text(fmtCount(e.Failures))),
			Td(Class("num"), Text(fmtPct(e.Rate))),
		))
	}
	return Table(
		THead(Tr(
			Th(Text(header)), Th(Class("num"), Text("Runs")),
			Th(Class("num"), Text("Failures")), Th(Class("num"), Text("Rate")),
		)),
		TBody(Group(rows)),
	)
}

func aggTable(aggs []domain.ReportDurationAgg) Node {
	rows := make([]Node, 0, len(aggs))
	for _, a := range aggs {
		rows = append(rows, Tr(
			Td(Text(a.ReportName)),
			Td(Class("num"), Text(fmtCount(a.Runs))),
			Td(Class("num"), Text(fmtSecs(a.MeanSecs))),
			Td(Class("num"), Text(fmtSecs(a.MedianSecs))),
		))
	}
	return Table(
		THead(Tr(
			Th(Text("Report")), Th(Class("num"), Text("Runs")),
			Th(Class("num"), Text("Mean")), Th(Class("num"), Text("Median")),
		)),
		TBody(Group(rows)),
	)
}

func overviewTable(overview []domain.ReportOverview) Node {
	rows := make([]Node, 0, len(overview))
	for _, o := range overview {
		timeframe := o.TimeframeStart
		if o.TimeframeEnd != "" {
			if timeframe != "" {
				timeframe += " – " + o.TimeframeEnd
			} else {
				timeframe = o.TimeframeEnd
			}
		}
		rows = append(rows, Tr(
			Td(Text(o.ReportName)),
			Td(Text(o.ReportType)),
			Td(Text(o.Hyperfind)),
			Td(Text(o.WorkUnitHyperfind)),
			Td(Text(timeframe)),
			Td(Class("num"), Text(fmtCount(o.Executions))),
		))
	}
	return Table(
		THead(Tr(
			Th(Text("Report")), Th(Text("Type")), Th(Text("Hyperfind")),
			Th(Text("Work unit hyperfind")), Th(Text("Timeframe")),
			Th(Class("num"), Text("Executions")),
		)),
		TBody(Group(rows)),
	)
}

func executionTable(entries []domain.LogEntry) Node {
	rows := make([]Node, 0, len(entries))
	for _, e := range entries {
		tr := Tr(
			If(e.IsFailure, Class("failure")),
			Td(Text(fmtTime(e.Start))),
			Td(Text(e.ReportName)),
			Td(Text(e.Status)),
			Td(Class("num"), Text(fmtOptSecs(e.DurationSecs))),
			Td(Class("num"), Text(fmtOptSecs(e.QueueSecs))),
			Td(Text(e.Engine)),
			Td(Text(e.Node)),
			Td(Class("num"), Text(fmtOptBytes(e.FileSize))),
			Td(Class("num"), Text(fmtOptInt(e.ObjectCount))),
			Td(Text(e.ErrorCode)),
			Td(Text(e.ErrorMessage)),
		)
		rows = append(rows, tr)
	}
	return Table(
		THead(Tr(
			Th(Text("Start")), Th(Text("Report")), Th(Text("Status")),
			Th(Class("num"), Text("Duration")), Th(Class("num"), Text("Queue")),
			Th(Text("Engine")), Th(Text("Node")),
			Th(Class("num"), Text("Size")), Th(Class("num"), Text("Objects")),
			Th(Text("Code")), Th(Text("Message")),
		)),
		TBody(Group(rows)),
	)
}
