package domain

import "sort"

// Column names the logical CSV fields the pipeline understands. Names match
// the export headers exactly (after trim + lowercase normalization).
type Column string

const (
	ColID         Column = "id"
	ColReportName Column = "report_name"
	ColReportType Column = "report_type"
	ColParameters Column = "parameters"
	ColSchemaName Column = "schema_name"

	ColStartDatetime Column = "start_datetime"
	ColEndDatetime   Column = "end_datetime"
	ColBirtStart     Column = "birt_report_starttime"
	ColBirtEnd       Column = "birt_report_endtime"

	ColStatusID     Column = "report_execution_status_id"
	ColErrorCode    Column = "error_code"
	ColErrorMessage Column = "error_message"
	ColErrorStack   Column = "error_stack"

	ColActualEngine    Column = "actual_engine"
	ColExpectedEngine  Column = "expected_engine"
	ColRequestedEngine Column = "requested_engine"
	ColRouteToNode     Column = "route_to_node"

	ColOutputFileSize    Column = "output_file_size"
	ColReportObjectCount Column = "report_object_count"
)

// KnownColumns lists every column the pipeline can consume.
var KnownColumns = []Column{
	ColID, ColReportName, ColReportType, ColParameters, ColSchemaName,
	ColStartDatetime, ColEndDatetime, ColBirtStart, ColBirtEnd,
	ColStatusID, ColErrorCode, ColErrorMessage, ColErrorStack,
	ColActualEngine, ColExpectedEngine, ColRequestedEngine, ColRouteToNode,
	ColOutputFileSize, ColReportObjectCount,
}

// ColumnSet tracks which logical fields are available across the union of all
// input files. A field is available if at least one file declared it.
type ColumnSet map[Column]bool

func (cs ColumnSet) Has(cols ...Column) bool {
	for _, c := range cols {
		if !cs[c] {
			return false
		}
	}
	return true
}

// HasAny reports whether at least one of the columns is available.
func (cs ColumnSet) HasAny(cols ...Column) bool {
	for _, c := range cols {
		if cs[c] {
			return true
		}
	}
	return false
}

// Names returns the available column names sorted for deterministic output.
func (cs ColumnSet) Names() []string {
	names := make([]string, 0, len(cs))
	for c, ok := range cs {
		if ok {
			names = append(names, string(c))
		}
	}
	sort.Strings(names)
	return names
}

// Dataset is the parsed, deduplicated, enriched input to the aggregation
// engine. It is built once by the loader and never mutated afterwards.
type Dataset struct {
	Rows        []ReportRun
	Columns     ColumnSet
	SourceFiles []string
}

// Subset returns a dataset over the given rows sharing this dataset's column
// availability. Used for tenant drill-downs.
func (d *Dataset) Subset(rows []ReportRun) *Dataset {
	return &Dataset{
		Rows:        rows,
		Columns:     d.Columns,
		SourceFiles: d.SourceFiles,
	}
}
