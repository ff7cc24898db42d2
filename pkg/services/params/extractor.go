// Package params recovers hyperfind and timeframe metadata from the free-form
// parameters field of a report run. The field's grammar is owned by the source
// system and not guaranteed; extraction is best-effort and never fails.
package params

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/de-tools/report-splash/pkg/models/domain"
)

// Keys the source system uses for the metadata we surface.
const (
	keyHyperfind         = "HyperFindSelector_name"
	keyWorkUnitHyperfind = "WorkUnitHyperFind_Title"
	keyTimeframeStart    = "TimeFrame_startDate"
	keyTimeframeEnd      = "TimeFrame_endDate"
)

var extractionKeys = []string{
	keyHyperfind,
	keyWorkUnitHyperfind,
	keyTimeframeStart,
	keyTimeframeEnd,
}

// patternFor matches `"key":"value"` and `key=value` shapes for one key.
var keyPatterns = func() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(extractionKeys))
	for _, key := range extractionKeys {
		patterns[key] = regexp.MustCompile(
			fmt.Sprintf(`(?i)%s"?\s*[:=]\s*"?([^",}\n]+)`, regexp.QuoteMeta(key)))
	}
	return patterns
}()

// Extract pulls hyperfind and timeframe metadata out of a raw parameters
// string. The blob is decoded as JSON when possible; otherwise the known keys
// are scanned with pattern matching. Unrecognized or malformed input yields an
// empty extraction, never an error.
func Extract(raw string) domain.HyperfindTimeframe {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return domain.HyperfindTimeframe{}
	}

	if values, ok := extractJSON(raw); ok {
		return fromValues(values)
	}
	return fromValues(extractPatterns(raw))
}

func extractJSON(raw string) (map[string]string, bool) {
	var blob map[string]any
	if err := json.Unmarshal([]byte(raw), &blob); err != nil {
		return nil, false
	}

	values := make(map[string]string, len(extractionKeys))
	for _, key := range extractionKeys {
		if v, ok := blob[key]; ok && v != nil {
			if s := strings.TrimSpace(fmt.Sprint(v)); s != "" {
				values[key] = s
			}
		}
	}
	return values, true
}

func extractPatterns(raw string) map[string]string {
	values := make(map[string]string, len(extractionKeys))
	for _, key := range extractionKeys {
		m := keyPatterns[key].FindStringSubmatch(raw)
		if m == nil {
			continue
		}
		if v := strings.TrimSpace(m[1]); v != "" {
			values[key] = v
		}
	}
	return values
}

func fromValues(values map[string]string) domain.HyperfindTimeframe {
	return domain.HyperfindTimeframe{
		Hyperfind:         values[keyHyperfind],
		WorkUnitHyperfind: values[keyWorkUnitHyperfind],
		TimeframeStart:    values[keyTimeframeStart],
		TimeframeEnd:      values[keyTimeframeEnd],
	}
}
