package analyzers

import "github.com/de-tools/report-splash/pkg/models/domain"

// makeLogEntry projects a run into the shape the execution log tables render.
func makeLogEntry(row *domain.ReportRun) domain.LogEntry {
	return domain.LogEntry{
		ReportName:     row.ReportName,
		Status:         row.Status.Label(),
		Start:          row.EffectiveStart(),
		DurationSecs:   durationSeconds(row),
		QueueSecs:      queueSeconds(row),
		Engine:         row.ActualEngine,
		ExpectedEngine: row.ExpectedEngine,
		Node:           row.RouteToNode,
		FileSize:       row.OutputFileSize,
		ObjectCount:    row.ReportObjectCount,
		ErrorCode:      row.ErrorCode,
		ErrorMessage:   row.ErrorMessage,
		IsFailure:      row.IsFailure(),
	}
}
