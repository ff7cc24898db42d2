package analyzers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/report-splash/pkg/models/domain"
)

func TestInventory_CountsAndTopReports(t *testing.T) {
	ds := &domain.Dataset{
		Rows: []domain.ReportRun{
			{ReportName: "A", Status: domain.StatusCompleted},
			{ReportName: "B", Status: domain.StatusCompleted},
			{ReportName: "A", Status: domain.StatusFailed},
		},
		Columns: domain.ColumnSet{domain.ColReportName: true},
	}

	inv := Inventory(ds)
	require.NotNil(t, inv)
	assert.Equal(t, 2, inv.UniqueReportCount)
	assert.Equal(t, []domain.NameCount{
		{Name: "A", Count: 2},
		{Name: "B", Count: 1},
	}, inv.TopReports)
	assert.Nil(t, inv.ReportsByType)
	assert.Nil(t, inv.ParameterVariations)
	assert.Nil(t, inv.Overview)
}

func TestInventory_ParameterVariations(t *testing.T) {
	ds := &domain.Dataset{
		Rows: []domain.ReportRun{
			{ReportName: "A", Status: domain.StatusCompleted, Parameters: `{"x":1}`},
			{ReportName: "A", Status: domain.StatusCompleted, Parameters: `{"x":2}`},
			{ReportName: "A", Status: domain.StatusCompleted, Parameters: `{"x":1}`},
			{ReportName: "B", Status: domain.StatusCompleted, Parameters: ""},
		},
		Columns: domain.ColumnSet{
			domain.ColReportName: true,
			domain.ColParameters: true,
		},
	}

	inv := Inventory(ds)
	require.NotNil(t, inv)
	assert.Equal(t, []domain.NameCount{
		{Name: "A", Count: 2},
		{Name: "B", Count: 1},
	}, inv.ParameterVariations)

	require.Len(t, inv.Overview, 2)
	assert.Equal(t, "A", inv.Overview[0].ReportName)
	assert.Equal(t, 3, inv.Overview[0].Executions)
}

func TestInventory_OverviewKeepsFirstExtraction(t *testing.T) {
	first := domain.ReportRun{ReportName: "A", Status: domain.StatusCompleted}
	first.Extracted.Hyperfind = "All Home"
	second := domain.ReportRun{ReportName: "A", Status: domain.StatusCompleted}
	second.Extracted.Hyperfind = "Night Shift"

	ds := &domain.Dataset{
		Rows: []domain.ReportRun{first, second},
		Columns: domain.ColumnSet{
			domain.ColReportName: true,
			domain.ColParameters: true,
		},
	}

	inv := Inventory(ds)
	require.Len(t, inv.Overview, 1)
	assert.Equal(t, "All Home", inv.Overview[0].Hyperfind)
}
