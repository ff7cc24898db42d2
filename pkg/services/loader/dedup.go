package loader

import (
	"context"

	"github.com/de-tools/report-splash/pkg/models/domain"
	"github.com/rs/zerolog"
)

// Deduplicate collapses rows sharing an identity key to the first occurrence
// in input order. It only applies when more than one source file was supplied
// and the id column is available; a single file is already unique by source.
// When multiple files were given without an identity column, the rows pass
// through unchanged and a semantic warning is recorded.
func Deduplicate(ctx context.Context, ds *domain.Dataset, warns *domain.Warnings) (*domain.Dataset, bool) {
	if len(ds.SourceFiles) <= 1 {
		return ds, false
	}

	if !ds.Columns.Has(domain.ColID) {
		warns.AddSemantic(
			"multiple input files without an %q column: duplicate rows cannot be removed",
			domain.ColID)
		return ds, false
	}

	seen := make(map[string]bool, len(ds.Rows))
	rows := make([]domain.ReportRun, 0, len(ds.Rows))
	for _, row := range ds.Rows {
		if row.ID != "" {
			if seen[row.ID] {
				continue
			}
			seen[row.ID] = true
		}
		rows = append(rows, row)
	}

	if removed := len(ds.Rows) - len(rows); removed > 0 {
		zerolog.Ctx(ctx).Info().
			Int("removed", removed).
			Msg("removed duplicate rows across input files")
	}

	out := ds.Subset(rows)
	return out, true
}
