package domain

import "fmt"

// WarningKind classifies recoverable issues per the error handling taxonomy.
type WarningKind string

const (
	// WarningParse marks an optional cell that was present but malformed and
	// therefore treated as absent.
	WarningParse WarningKind = "parse"
	// WarningSemantic marks a pipeline-level degradation, e.g. dedup skipped
	// because no identity column was available.
	WarningSemantic WarningKind = "semantic"
)

// Warning is one recoverable issue recorded during a pipeline invocation.
type Warning struct {
	Kind    WarningKind
	Message string
	File    string
	Line    int
}

func (w Warning) String() string {
	if w.File != "" && w.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", w.File, w.Line, w.Message)
	}
	if w.File != "" {
		return fmt.Sprintf("%s: %s", w.File, w.Message)
	}
	return w.Message
}

// Warnings collects recoverable issues for one invocation. It is passed
// explicitly through the pipeline stages; there is no process-wide collector.
type Warnings struct {
	items []Warning
}

func (w *Warnings) AddParse(file string, line int, format string, args ...any) {
	w.items = append(w.items, Warning{
		Kind:    WarningParse,
		Message: fmt.Sprintf(format, args...),
		File:    file,
		Line:    line,
	})
}

func (w *Warnings) AddSemantic(format string, args ...any) {
	w.items = append(w.items, Warning{
		Kind:    WarningSemantic,
		Message: fmt.Sprintf(format, args...),
	})
}

func (w *Warnings) Items() []Warning {
	return w.items
}

func (w *Warnings) Len() int {
	return len(w.items)
}
