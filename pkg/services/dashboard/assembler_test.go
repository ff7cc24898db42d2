package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/report-splash/pkg/models/domain"
)

func minimalDataset() *domain.Dataset {
	return &domain.Dataset{
		Rows: []domain.ReportRun{
			{ReportName: "Daily Hours", Status: domain.StatusCompleted},
			{ReportName: "Daily Hours", Status: domain.StatusFailed},
			{ReportName: "Daily Hours", Status: domain.StatusCompleted},
		},
		Columns: domain.ColumnSet{
			domain.ColReportName: true,
			domain.ColStatusID:   true,
		},
		SourceFiles: []string{"runs.csv"},
	}
}

func TestAssemble_MinimalColumns(t *testing.T) {
	ds := minimalDataset()

	doc := Assemble(context.Background(), ds, &domain.Warnings{}, Options{
		Title: "Splash Report",
	})

	assert.Equal(t, "Splash Report", doc.Title)
	assert.Equal(t, 3, doc.TotalRows)
	assert.False(t, doc.GeneratedAt.IsZero())

	require.NotNil(t, doc.Inventory)
	assert.Equal(t, 1, doc.Inventory.UniqueReportCount)

	require.NotNil(t, doc.Errors)
	assert.Equal(t, 1, doc.Errors.FailureCount)
	assert.InDelta(t, 33.333, doc.Errors.FailureRate, 0.001)

	// Sections needing absent columns stay disabled and their data nil.
	assert.False(t, doc.Sections.Timing)
	assert.False(t, doc.Sections.EngineLoad)
	assert.False(t, doc.Sections.Performance)
	assert.Nil(t, doc.Timing)
	assert.Nil(t, doc.Engine)
	assert.Nil(t, doc.Performance)
	assert.Empty(t, doc.Tenants)
	require.Len(t, doc.Reports, 1)
	assert.Equal(t, "Daily Hours", doc.Reports[0].ReportName)
}

func TestAssemble_TenantsTakeOverDrilldowns(t *testing.T) {
	ds := minimalDataset()
	ds.Columns[domain.ColSchemaName] = true
	ds.Rows[0].SchemaName = "tenant_a"
	ds.Rows[1].SchemaName = "tenant_a"
	ds.Rows[2].SchemaName = "tenant_b"

	doc := Assemble(context.Background(), ds, &domain.Warnings{}, Options{})

	assert.True(t, doc.Sections.Tenants)
	require.Len(t, doc.Tenants, 2)
	assert.Equal(t, "tenant_a", doc.Tenants[0].SchemaName)
	assert.Equal(t, 2, doc.Tenants[0].TotalExecutions)
	assert.Empty(t, doc.Reports)
}

func TestAssemble_CarriesWarningsAndDedupFlag(t *testing.T) {
	warns := &domain.Warnings{}
	warns.AddSemantic("no id column across %d files; duplicates not detectable", 2)

	doc := Assemble(context.Background(), minimalDataset(), warns, Options{
		DedupApplied: false,
	})

	require.Len(t, doc.Warnings, 1)
	assert.Equal(t, domain.WarningSemantic, doc.Warnings[0].Kind)
	assert.False(t, doc.DedupApplied)
}

func TestAssemble_Deterministic(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	opts := Options{Title: "Splash Report", GeneratedAt: at}

	a := Assemble(context.Background(), minimalDataset(), &domain.Warnings{}, opts)
	b := Assemble(context.Background(), minimalDataset(), &domain.Warnings{}, opts)

	assert.Equal(t, a, b)
}
