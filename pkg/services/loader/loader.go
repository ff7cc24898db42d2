package loader

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/de-tools/report-splash/pkg/models/domain"
	"github.com/de-tools/report-splash/pkg/services/params"
	"github.com/rs/zerolog"
)

// Datetime layouts accepted in the exports, tried in order.
var datetimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999",
	"01/02/2006 15:04:05",
	"01/02/2006 03:04:05 PM",
}

var requiredColumns = []domain.Column{
	domain.ColReportName,
	domain.ColStatusID,
}

// Load parses the given CSV files into a Dataset. Missing required columns or
// empty required cells are fatal; malformed optional cells are recorded on the
// warnings collector and treated as absent.
func Load(ctx context.Context, paths []string, warns *domain.Warnings) (*domain.Dataset, error) {
	logger := zerolog.Ctx(ctx)

	ds := &domain.Dataset{
		Columns: make(domain.ColumnSet),
	}

	for _, path := range paths {
		name := filepath.Base(path)
		ds.SourceFiles = append(ds.SourceFiles, name)

		if err := loadFile(path, name, ds, warns); err != nil {
			return nil, err
		}
	}

	logger.Debug().
		Int("rows", len(ds.Rows)).
		Int("columns", len(ds.Columns)).
		Msg("loaded csv sources")

	return ds, nil
}

func loadFile(path, name string, ds *domain.Dataset, warns *domain.Warnings) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	// Error stacks span lines and rows can be ragged; don't enforce a fixed
	// field count.
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return fmt.Errorf("%s: file is empty", name)
	}
	if err != nil {
		return fmt.Errorf("reading header of %s: %w", name, err)
	}

	index := headerIndex(header)
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return fmt.Errorf("%s: required column %q is missing from the header", name, col)
		}
	}
	for col := range index {
		ds.Columns[col] = true
	}

	line := 1
	for {
		record, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading %s: %w", name, err)
		}
		line++

		run, err := parseRecord(record, index, name, line, warns)
		if err != nil {
			return err
		}
		ds.Rows = append(ds.Rows, run)
	}
}

// headerIndex maps known columns to their position. Header cells are trimmed
// and lowercased; a UTF-8 BOM on the first cell is stripped.
func headerIndex(header []string) map[domain.Column]int {
	known := make(map[domain.Column]bool, len(domain.KnownColumns))
	for _, c := range domain.KnownColumns {
		known[c] = true
	}

	index := make(map[domain.Column]int)
	for i, cell := range header {
		if i == 0 {
			cell = strings.TrimPrefix(cell, "\ufeff")
		}
		col := domain.Column(strings.ToLower(strings.TrimSpace(cell)))
		if known[col] {
			index[col] = i
		}
	}
	return index
}

func parseRecord(
	record []string,
	index map[domain.Column]int,
	file string,
	line int,
	warns *domain.Warnings,
) (domain.ReportRun, error) {
	cell := func(col domain.Column) string {
		i, ok := index[col]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	reportName := cell(domain.ColReportName)
	if reportName == "" {
		return domain.ReportRun{}, fmt.Errorf(
			"%s:%d: required cell %q is empty", file, line, domain.ColReportName)
	}

	statusRaw := cell(domain.ColStatusID)
	if statusRaw == "" {
		return domain.ReportRun{}, fmt.Errorf(
			"%s:%d: required cell %q is empty", file, line, domain.ColStatusID)
	}
	statusCode, err := parseInt(statusRaw)
	if err != nil {
		return domain.ReportRun{}, fmt.Errorf(
			"%s:%d: status code %q is not numeric", file, line, statusRaw)
	}

	run := domain.ReportRun{
		ID:              cell(domain.ColID),
		ReportName:      reportName,
		Status:          domain.Status(statusCode),
		SchemaName:      cell(domain.ColSchemaName),
		ReportType:      cell(domain.ColReportType),
		RouteToNode:     cell(domain.ColRouteToNode),
		ErrorCode:       cell(domain.ColErrorCode),
		ErrorMessage:    cell(domain.ColErrorMessage),
		ErrorStack:      cell(domain.ColErrorStack),
		Parameters:      cell(domain.ColParameters),
		ActualEngine:    engineCell(cell(domain.ColActualEngine)),
		ExpectedEngine:  engineCell(cell(domain.ColExpectedEngine)),
		RequestedEngine: engineCell(cell(domain.ColRequestedEngine)),
		SourceFile:      file,
		SourceLine:      line,
	}

	// Fixed iteration order keeps the warning list deterministic.
	for _, tc := range []struct {
		col domain.Column
		dst **time.Time
	}{
		{domain.ColStartDatetime, &run.StartTime},
		{domain.ColEndDatetime, &run.EndTime},
		{domain.ColBirtStart, &run.BirtStart},
		{domain.ColBirtEnd, &run.BirtEnd},
	} {
		col, dst := tc.col, tc.dst
		raw := cell(col)
		if raw == "" {
			continue
		}
		ts, ok := parseDatetime(raw)
		if !ok {
			warns.AddParse(file, line, "unparseable %s value %q", col, raw)
			continue
		}
		*dst = &ts
	}

	for _, nc := range []struct {
		col domain.Column
		dst **int64
	}{
		{domain.ColOutputFileSize, &run.OutputFileSize},
		{domain.ColReportObjectCount, &run.ReportObjectCount},
	} {
		col, dst := nc.col, nc.dst
		raw := cell(col)
		if raw == "" {
			continue
		}
		n, err := parseInt(raw)
		if err != nil {
			warns.AddParse(file, line, "non-numeric %s value %q", col, raw)
			continue
		}
		v := n
		*dst = &v
	}

	run.Extracted = params.Extract(run.Parameters)

	return run, nil
}

// engineCell resolves an engine routing cell to its label. Numeric cells map
// through the routing class table; free-text cells keep their trimmed value.
func engineCell(raw string) string {
	if raw == "" {
		return ""
	}
	if n, err := parseInt(raw); err == nil {
		return domain.EngineLabel(int(n))
	}
	return raw
}

func parseDatetime(raw string) (time.Time, bool) {
	for _, layout := range datetimeLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// parseInt accepts integer cells that the source sometimes exports as floats
// ("123.0").
func parseInt(raw string) (int64, error) {
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	return int64(f), nil
}
