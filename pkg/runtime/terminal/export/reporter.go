// Package export renders the assembled dashboard document into one
// self-contained HTML file. All styling is embedded and all charts are inline
// SVG; the artifact never fetches anything at view time.
package export

import (
	"fmt"
	"io"
	"os"

	"github.com/de-tools/report-splash/pkg/models/domain"
)

type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (r *Reporter) Handle(doc *domain.DashboardDocument) error {
	if err := dashboardPage(doc).Render(r.writer); err != nil {
		return fmt.Errorf("rendering dashboard: %w", err)
	}
	return nil
}
