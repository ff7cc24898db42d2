package analyzers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/report-splash/pkg/models/domain"
)

func engineRun(expected, actual string) domain.ReportRun {
	return domain.ReportRun{
		ReportName:     "A",
		Status:         domain.StatusCompleted,
		ExpectedEngine: expected,
		ActualEngine:   actual,
	}
}

func TestEngine_NilWithoutRoutingColumns(t *testing.T) {
	ds := &domain.Dataset{
		Rows:    []domain.ReportRun{engineRun("LARGE", "MEDIUM")},
		Columns: domain.ColumnSet{domain.ColExpectedEngine: true},
	}
	assert.Nil(t, Engine(ds))
}

func TestEngine_MismatchPairsCountedOnce(t *testing.T) {
	ds := &domain.Dataset{
		Rows: []domain.ReportRun{
			engineRun("LARGE", "MEDIUM"),
			engineRun("LARGE", "MEDIUM"),
			engineRun("MEDIUM", "MEDIUM"),
			engineRun("", "SMALL"), // missing expected: excluded from comparison
		},
		Columns: domain.ColumnSet{
			domain.ColActualEngine:   true,
			domain.ColExpectedEngine: true,
		},
	}

	ed := Engine(ds)
	require.NotNil(t, ed)
	assert.Equal(t, 3, ed.RowsWithBoth)
	assert.Equal(t, 2, ed.MismatchCount)
	require.NotNil(t, ed.MismatchRate)
	assert.InDelta(t, 66.666, *ed.MismatchRate, 0.001)

	require.Len(t, ed.MismatchPairs, 1)
	assert.Equal(t, "LARGE", ed.MismatchPairs[0].Expected)
	assert.Equal(t, "MEDIUM", ed.MismatchPairs[0].Actual)
	assert.Equal(t, 2, ed.MismatchPairs[0].Count)
}

func TestEngine_LoadCountsWithoutMismatchColumns(t *testing.T) {
	ds := &domain.Dataset{
		Rows: []domain.ReportRun{
			{ReportName: "A", Status: domain.StatusCompleted, ActualEngine: "MEDIUM"},
			{ReportName: "B", Status: domain.StatusCompleted, ActualEngine: "MEDIUM"},
			{ReportName: "C", Status: domain.StatusCompleted, ActualEngine: "ADHOC"},
		},
		Columns: domain.ColumnSet{domain.ColActualEngine: true},
	}

	ed := Engine(ds)
	require.NotNil(t, ed)
	assert.Equal(t, []domain.NameCount{
		{Name: "MEDIUM", Count: 2},
		{Name: "ADHOC", Count: 1},
	}, ed.LoadPerEngine)
	assert.Nil(t, ed.MismatchRate)
	assert.Empty(t, ed.MismatchPairs)
}

func TestEngine_NodeLoad(t *testing.T) {
	ds := &domain.Dataset{
		Rows: []domain.ReportRun{
			{ReportName: "A", Status: domain.StatusCompleted, RouteToNode: "node-1"},
			{ReportName: "B", Status: domain.StatusCompleted, RouteToNode: "node-2"},
			{ReportName: "C", Status: domain.StatusCompleted, RouteToNode: "node-1"},
		},
		Columns: domain.ColumnSet{domain.ColRouteToNode: true},
	}

	ed := Engine(ds)
	require.NotNil(t, ed)
	assert.Equal(t, []domain.NameCount{
		{Name: "node-1", Count: 2},
		{Name: "node-2", Count: 1},
	}, ed.LoadPerNode)
}
