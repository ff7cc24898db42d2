package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// fmtCount renders an integer with thousands separators.
func fmtCount(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// fmtBytes renders a byte count in the nearest binary unit.
func fmtBytes(n float64) string {
	v := n
	for _, unit := range []string{"B", "KB", "MB", "GB"} {
		if v < 1024 && v > -1024 {
			return fmt.Sprintf("%.1f %s", v, unit)
		}
		v /= 1024
	}
	return fmt.Sprintf("%.1f TB", v)
}

// fmtSecs renders a duration given in seconds at a scale a human reads
// comfortably: ms below one second, then s, m, h.
func fmtSecs(secs float64) string {
	switch {
	case secs < 1:
		return fmt.Sprintf("%.0fms", secs*1000)
	case secs < 60:
		return fmt.Sprintf("%.1fs", secs)
	case secs < 3600:
		return fmt.Sprintf("%.1fm", secs/60)
	default:
		return fmt.Sprintf("%.1fh", secs/3600)
	}
}

func fmtPct(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

func fmtTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}

func fmtOptSecs(secs *float64) string {
	if secs == nil {
		return "—"
	}
	return fmtSecs(*secs)
}

func fmtOptInt(n *int64) string {
	if n == nil {
		return "—"
	}
	return fmtCount(int(*n))
}

func fmtOptBytes(n *int64) string {
	if n == nil {
		return "—"
	}
	return fmtBytes(float64(*n))
}
