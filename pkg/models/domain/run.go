package domain

import (
	"strconv"
	"time"
)

// Status is the report execution status code as exported by the source system.
type Status int

const (
	StatusRunning   Status = 1
	StatusCompleted Status = 2
	StatusFailed    Status = 3
	StatusSuspended Status = 5
)

var statusLabels = map[Status]string{
	StatusRunning:   "RUNNING",
	StatusCompleted: "COMPLETED",
	StatusFailed:    "FAILED",
	StatusSuspended: "SUSPENDED",
}

func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return "UNKNOWN (" + strconv.Itoa(int(s)) + ")"
}

// IsFailure reports whether the status counts as a failed execution.
// SUSPENDED runs never completed and are treated as failures alongside FAILED.
func (s Status) IsFailure() bool {
	return s == StatusFailed || s == StatusSuspended
}

// EngineLabel maps a numeric engine routing class to its name.
func EngineLabel(id int) string {
	switch id {
	case 1:
		return "ADHOC"
	case 2:
		return "MEDIUM"
	case 3:
		return "LARGE"
	case 4:
		return "SMALL"
	case 6:
		return "HCA"
	}
	return "UNKNOWN (" + strconv.Itoa(id) + ")"
}

// ReportRun is one execution record from the history export. Optional fields
// are pointers (or empty strings) so that an absent cell stays distinct from a
// present zero; aggregations exclude absent values instead of coercing them.
type ReportRun struct {
	ID         string
	ReportName string
	Status     Status

	SchemaName string
	ReportType string

	ActualEngine    string
	ExpectedEngine  string
	RequestedEngine string
	RouteToNode     string

	ErrorCode    string
	ErrorMessage string
	ErrorStack   string

	OutputFileSize    *int64
	ReportObjectCount *int64

	Parameters string
	Extracted  HyperfindTimeframe

	StartTime *time.Time
	EndTime   *time.Time
	BirtStart *time.Time
	BirtEnd   *time.Time

	SourceFile string
	SourceLine int
}

// HyperfindTimeframe is the best-effort extraction from the parameters blob.
type HyperfindTimeframe struct {
	Hyperfind         string
	WorkUnitHyperfind string
	TimeframeStart    string
	TimeframeEnd      string
}

func (h HyperfindTimeframe) Empty() bool {
	return h.Hyperfind == "" && h.WorkUnitHyperfind == "" &&
		h.TimeframeStart == "" && h.TimeframeEnd == ""
}

// EffectiveStart returns start_datetime, falling back to the BIRT start time
// for exports that only carry engine-side timestamps.
func (r *ReportRun) EffectiveStart() *time.Time {
	if r.StartTime != nil {
		return r.StartTime
	}
	return r.BirtStart
}

func (r *ReportRun) EffectiveEnd() *time.Time {
	if r.EndTime != nil {
		return r.EndTime
	}
	return r.BirtEnd
}

// Duration returns end minus start when both timestamps are present and the
// interval is not negative (clock skew in the source), nil otherwise.
func (r *ReportRun) Duration() *time.Duration {
	start := r.EffectiveStart()
	end := r.EffectiveEnd()
	if start == nil || end == nil {
		return nil
	}
	d := end.Sub(*start)
	if d < 0 {
		return nil
	}
	return &d
}

// QueueTime returns the wait between the logical start and the BIRT engine
// picking the run up. Both primary columns must be present.
func (r *ReportRun) QueueTime() *time.Duration {
	if r.StartTime == nil || r.BirtStart == nil {
		return nil
	}
	d := r.BirtStart.Sub(*r.StartTime)
	if d < 0 {
		return nil
	}
	return &d
}

func (r *ReportRun) IsFailure() bool {
	return r.Status.IsFailure()
}

