// Package dashboard composes the aggregation outputs into the single document
// the renderer consumes. It performs no HTML generation itself.
package dashboard

import (
	"context"
	"time"

	"github.com/de-tools/report-splash/pkg/models/domain"
	"github.com/de-tools/report-splash/pkg/services/analyzers"
	"github.com/rs/zerolog"
)

// Options configure one assembly run.
type Options struct {
	Title string
	// GeneratedAt stamps the document; the zero value means time.Now(). It is
	// the only non-deterministic field of the document.
	GeneratedAt time.Time
	// DedupApplied records whether the loader collapsed rows by identity.
	DedupApplied bool
}

// Assemble runs every analyzer over the dataset and builds the dashboard
// document, tagging which optional sections the column availability enables.
func Assemble(ctx context.Context, ds *domain.Dataset, warns *domain.Warnings, opts Options) *domain.DashboardDocument {
	generatedAt := opts.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now()
	}

	doc := &domain.DashboardDocument{
		Title:            opts.Title,
		GeneratedAt:      generatedAt,
		TotalRows:        len(ds.Rows),
		SourceFiles:      ds.SourceFiles,
		AvailableColumns: ds.Columns.Names(),
		Sections:         sectionFlags(ds),
		DedupApplied:     opts.DedupApplied,
		Warnings:         warns.Items(),

		Inventory:   analyzers.Inventory(ds),
		Timing:      analyzers.Timing(ds),
		Errors:      analyzers.Errors(ds),
		Engine:      analyzers.Engine(ds),
		Performance: analyzers.Performance(ds),
		Tenants:     analyzers.Tenants(ds),
	}

	// Per-report drill-downs live inside the tenant views when tenants exist;
	// otherwise they hang off the document root.
	if len(doc.Tenants) == 0 {
		doc.Reports = analyzers.ReportDetails(ds, "")
	}

	zerolog.Ctx(ctx).Debug().
		Int("rows", doc.TotalRows).
		Int("tenants", len(doc.Tenants)).
		Int("warnings", len(doc.Warnings)).
		Msg("dashboard document assembled")

	return doc
}

// sectionFlags derives the enabled optional sections from column availability
// in one place, so the renderer and consumers never re-derive it per row.
func sectionFlags(ds *domain.Dataset) domain.SectionFlags {
	hasStart := ds.Columns.HasAny(domain.ColStartDatetime, domain.ColBirtStart)
	hasEnd := ds.Columns.HasAny(domain.ColEndDatetime, domain.ColBirtEnd)

	hasTenants := false
	if ds.Columns.Has(domain.ColSchemaName) {
		for i := range ds.Rows {
			if ds.Rows[i].SchemaName != "" {
				hasTenants = true
				break
			}
		}
	}

	return domain.SectionFlags{
		Timing:       hasStart && hasEnd,
		Parameters:   ds.Columns.Has(domain.ColParameters),
		ErrorDetail:  ds.Columns.HasAny(domain.ColErrorCode, domain.ColErrorMessage),
		EngineLoad:   ds.Columns.HasAny(domain.ColActualEngine, domain.ColRouteToNode),
		Routing:      ds.Columns.Has(domain.ColActualEngine, domain.ColExpectedEngine),
		Performance:  hasStart && hasEnd,
		FileSizes:    ds.Columns.Has(domain.ColOutputFileSize),
		ObjectCounts: ds.Columns.Has(domain.ColReportObjectCount),
		QueueTimes:   ds.Columns.Has(domain.ColStartDatetime, domain.ColBirtStart),
		Tenants:      hasTenants,
	}
}
