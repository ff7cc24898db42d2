package domain

import "time"

// NameCount is a labeled counter used by the various distribution tables.
type NameCount struct {
	Name  string
	Count int
}

// SummaryStats describes one metric sample. Count is the number of rows that
// actually carried the field; consumers use it to judge statistical validity.
// A metric with an empty sample is represented by a nil *SummaryStats, never
// by a zeroed one.
type SummaryStats struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	P90    float64
}

// HistogramBucket is one bar of a duration histogram.
type HistogramBucket struct {
	Label string
	Count int
}

// OverlapEntry is a run that overlaps at least one other run in time.
type OverlapEntry struct {
	ReportName string
	Start      time.Time
	End        time.Time
}

// TimingData aggregates scheduling and duration distributions.
type TimingData struct {
	DurationHistogram []HistogramBucket
	DurationSamples   int
	HourlyCounts      [24]int
	WeekdayCounts     [7]int // Monday..Sunday
	TimedRows         int    // rows with a usable start timestamp
	OverlappingRuns   []OverlapEntry
}

// ReportOverview is one row of the inventory overview table, carrying the
// first-seen parameter extraction per report.
type ReportOverview struct {
	ReportName        string
	ReportType        string
	Hyperfind         string
	WorkUnitHyperfind string
	TimeframeStart    string
	TimeframeEnd      string
	Executions        int
}

// InventoryData describes what reports exist and how often they run.
type InventoryData struct {
	UniqueReportCount   int
	TopReports          []NameCount
	ReportsByType       []NameCount      // nil when report_type is unavailable
	ParameterVariations []NameCount      // nil when parameters is unavailable
	Overview            []ReportOverview // nil when parameters is unavailable
}

// FailureRateEntry is a failure rate over one grouping key.
type FailureRateEntry struct {
	Name     string
	Total    int
	Failures int
	Rate     float64 // percent
}

// ConcurrentLoadEntry records how many other runs were in flight when a
// failing run started.
type ConcurrentLoadEntry struct {
	ReportName string
	Start      time.Time
	Concurrent int
	ErrorCode  string
}

// MessageGroup groups failures by normalized error message text.
type MessageGroup struct {
	Sample string // original text of the first occurrence
	Count  int
}

// LogEntry is one execution in a rendered log table.
type LogEntry struct {
	ReportName     string
	Status         string
	Start          *time.Time
	DurationSecs   *float64
	QueueSecs      *float64
	Engine         string
	ExpectedEngine string
	Node           string
	FileSize       *int64
	ObjectCount    *int64
	ErrorCode      string
	ErrorMessage   string
	IsFailure      bool
}

// ErrorData aggregates every failure-oriented statistic.
type ErrorData struct {
	TotalExecutions     int
	FailureCount        int
	FailureRate         float64 // percent
	ErrorCodes          []NameCount
	FailuresPerDay      []NameCount // Name is a YYYY-MM-DD date
	MostFailingReports  []NameCount
	FailureRateByReport []FailureRateEntry
	FailuresByEngine    []FailureRateEntry // nil when actual_engine is unavailable
	FailuresByHour      [24]int
	ConcurrentLoad      []ConcurrentLoadEntry
	MessageGroups       []MessageGroup // nil when error_message is unavailable
	FailureLog          []LogEntry
}

// MismatchPair counts rows routed to a different engine than expected.
type MismatchPair struct {
	Expected string
	Actual   string
	Count    int
}

// EngineData aggregates engine routing statistics.
type EngineData struct {
	LoadPerEngine []NameCount // nil when actual_engine is unavailable
	LoadPerNode   []NameCount // nil when route_to_node is unavailable
	RowsWithBoth  int         // rows carrying both expected and actual engine
	MismatchCount int
	MismatchRate  *float64 // percent; nil when no row carries both fields
	MismatchPairs []MismatchPair
}

// SlowRun is one entry of the slowest-executions table.
type SlowRun struct {
	ReportName   string
	Start        *time.Time
	DurationSecs float64
	QueueSecs    *float64
	Engine       string
}

// ReportDurationAgg ranks reports by an aggregate of their durations.
type ReportDurationAgg struct {
	ReportName string
	Runs       int
	MeanSecs   float64
	MedianSecs float64
}

// ScatterPoint pairs a run's duration with its output size.
type ScatterPoint struct {
	ReportName   string
	DurationSecs float64
	SizeBytes    int64
}

// PerformanceData aggregates throughput and sizing statistics.
type PerformanceData struct {
	SlowestRuns      []SlowRun
	SlowestByMean    []ReportDurationAgg
	SlowestByMedian  []ReportDurationAgg
	DurationVsSize   []ScatterPoint // nil when output_file_size is unavailable
	FileSizeStats    *SummaryStats
	ObjectCountStats *SummaryStats
	QueueTimeStats   *SummaryStats
}

// SeriesPoint is one point of a chronological metric series.
type SeriesPoint struct {
	Start     time.Time
	Seconds   float64
	IsFailure bool
}

// ReportKPIs is the headline block of a per-report drill-down.
type ReportKPIs struct {
	RunCount     int
	FailureCount int
	FailureRate  float64 // percent
	Duration     *SummaryStats
	QueueTime    *SummaryStats
}

// ReportDetail is the full drill-down for one (tenant, report) pair. The
// tenant is empty when the input carries no schema_name column.
type ReportDetail struct {
	SchemaName        string
	ReportName        string
	KPIs              ReportKPIs
	StatusCounts      []NameCount
	EngineCounts      []NameCount
	ErrorCodes        []NameCount // failed rows only
	DurationHistogram []HistogramBucket
	HourlyCounts      [24]int
	DurationSeries    []SeriesPoint
	QueueSeries       []SeriesPoint
	Executions        []LogEntry // ascending by start time
}

// TenantView is the drill-down for one schema_name, re-running the section
// analyzers over the tenant's rows.
type TenantView struct {
	SchemaName      string
	TotalExecutions int
	FailureCount    int
	FailureRate     float64 // percent
	UniqueReports   int

	Timing      *TimingData
	Inventory   *InventoryData
	Errors      *ErrorData
	Engine      *EngineData
	Performance *PerformanceData
	Reports     []ReportDetail
}

// SectionFlags records which optional dashboard sections are enabled, derived
// once from column availability so "section enabled?" logic lives in one place.
type SectionFlags struct {
	Timing       bool
	Parameters   bool
	ErrorDetail  bool
	EngineLoad   bool
	Routing      bool
	Performance  bool
	FileSizes    bool
	ObjectCounts bool
	QueueTimes   bool
	Tenants      bool
}

// DashboardDocument is the single assembled artifact handed to the renderer.
type DashboardDocument struct {
	Title            string
	GeneratedAt      time.Time
	TotalRows        int
	SourceFiles      []string
	AvailableColumns []string
	Sections         SectionFlags
	DedupApplied     bool
	Warnings         []Warning

	Inventory   *InventoryData
	Timing      *TimingData
	Errors      *ErrorData
	Engine      *EngineData
	Performance *PerformanceData
	Reports     []ReportDetail
	Tenants     []TenantView
}
