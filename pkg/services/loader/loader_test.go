package loader

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/de-tools/report-splash/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ParsesTypedFields(t *testing.T) {
	path := writeCSV(t, "runs.csv",
		"report_name,report_execution_status_id,start_datetime,end_datetime,output_file_size,actual_engine\n"+
			"Daily Hours,2,2025-01-15 08:00:00,2025-01-15 08:05:30,2048,2\n"+
			"Daily Hours,3,2025-01-15 09:00:00,,," + "\n")

	warns := &domain.Warnings{}
	ds, err := Load(context.Background(), []string{path}, warns)
	require.NoError(t, err)
	require.Len(t, ds.Rows, 2)

	first := ds.Rows[0]
	assert.Equal(t, "Daily Hours", first.ReportName)
	assert.Equal(t, domain.StatusCompleted, first.Status)
	assert.Equal(t, "MEDIUM", first.ActualEngine)
	require.NotNil(t, first.OutputFileSize)
	assert.Equal(t, int64(2048), *first.OutputFileSize)
	require.NotNil(t, first.Duration())
	assert.Equal(t, 5*time.Minute+30*time.Second, *first.Duration())

	second := ds.Rows[1]
	assert.True(t, second.IsFailure())
	assert.Nil(t, second.EndTime)
	assert.Nil(t, second.Duration())
	assert.Nil(t, second.OutputFileSize)

	assert.True(t, ds.Columns.Has(domain.ColOutputFileSize))
	assert.False(t, ds.Columns.Has(domain.ColSchemaName))
	assert.Equal(t, 0, warns.Len())
}

func TestLoad_MissingRequiredColumnIsFatal(t *testing.T) {
	path := writeCSV(t, "runs.csv", "report_name,start_datetime\nDaily Hours,2025-01-15 08:00:00\n")

	_, err := Load(context.Background(), []string{path}, &domain.Warnings{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "report_execution_status_id")
	assert.Contains(t, err.Error(), "runs.csv")
}

func TestLoad_EmptyRequiredCellIsFatal(t *testing.T) {
	path := writeCSV(t, "runs.csv",
		"report_name,report_execution_status_id\nDaily Hours,2\n,2\n")

	_, err := Load(context.Background(), []string{path}, &domain.Warnings{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "runs.csv:3")
	assert.Contains(t, err.Error(), "report_name")
}

func TestLoad_NonNumericStatusIsFatal(t *testing.T) {
	path := writeCSV(t, "runs.csv",
		"report_name,report_execution_status_id\nDaily Hours,done\n")

	_, err := Load(context.Background(), []string{path}, &domain.Warnings{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"done"`)
}

func TestLoad_MalformedOptionalCellWarnsAndContinues(t *testing.T) {
	path := writeCSV(t, "runs.csv",
		"report_name,report_execution_status_id,start_datetime,output_file_size\n"+
			"Daily Hours,2,not-a-date,huge\n")

	warns := &domain.Warnings{}
	ds, err := Load(context.Background(), []string{path}, warns)
	require.NoError(t, err)
	require.Len(t, ds.Rows, 1)

	assert.Nil(t, ds.Rows[0].StartTime)
	assert.Nil(t, ds.Rows[0].OutputFileSize)
	require.Equal(t, 2, warns.Len())
	assert.Equal(t, domain.WarningParse, warns.Items()[0].Kind)
	assert.Equal(t, 2, warns.Items()[0].Line)
}

func TestLoad_UnknownStatusCodePreserved(t *testing.T) {
	path := writeCSV(t, "runs.csv",
		"report_name,report_execution_status_id\nDaily Hours,9\n")

	ds, err := Load(context.Background(), []string{path}, &domain.Warnings{})
	require.NoError(t, err)
	assert.Equal(t, "UNKNOWN (9)", ds.Rows[0].Status.Label())
	assert.False(t, ds.Rows[0].IsFailure())
}

func TestLoad_ColumnAvailabilityIsUnionAcrossFiles(t *testing.T) {
	a := writeCSV(t, "a.csv", "report_name,report_execution_status_id\nA,2\n")
	b := writeCSV(t, "b.csv", "report_name,report_execution_status_id,schema_name\nB,2,tenant1\n")

	ds, err := Load(context.Background(), []string{a, b}, &domain.Warnings{})
	require.NoError(t, err)
	assert.True(t, ds.Columns.Has(domain.ColSchemaName))
	assert.Equal(t, []string{"a.csv", "b.csv"}, ds.SourceFiles)
}

func TestLoad_HeaderNormalization(t *testing.T) {
	path := writeCSV(t, "runs.csv",
		"\uFEFFREPORT_NAME , Report_Execution_Status_ID\nDaily Hours,2\n")

	ds, err := Load(context.Background(), []string{path}, &domain.Warnings{})
	require.NoError(t, err)
	require.Len(t, ds.Rows, 1)
	assert.Equal(t, "Daily Hours", ds.Rows[0].ReportName)
}

func TestLoad_FloatExportedIntegers(t *testing.T) {
	path := writeCSV(t, "runs.csv",
		"report_name,report_execution_status_id,report_object_count\nDaily Hours,2.0,1500.0\n")

	ds, err := Load(context.Background(), []string{path}, &domain.Warnings{})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, ds.Rows[0].Status)
	require.NotNil(t, ds.Rows[0].ReportObjectCount)
	assert.Equal(t, int64(1500), *ds.Rows[0].ReportObjectCount)
}
