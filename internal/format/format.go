// Package format holds small presentation helpers for report text.
package format

import (
	"fmt"
	"strings"
	"time"
)

// FormatBytes renders a byte count in a compact human form.
func FormatBytes(b uint64) string {
	const k = 1024
	switch {
	case b >= k*k*k:
		return fmt.Sprintf("%.1fG", float64(b)/(k*k*k))
	case b >= k*k:
		return fmt.Sprintf("%.1fM", float64(b)/(k*k))
	case b >= k:
		return fmt.Sprintf("%.0fK", float64(b)/k)
	default:
		return fmt.Sprintf("%dB", b)
	}
}

// FormatDuration formats a duration readably for diagnostics.
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Round(time.Millisecond).Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

// Truncate truncates a string to max length.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "~"
}

// SanitizeLabel makes a label safe for use as a perfdata key: separator and
// quoting characters of the perfdata grammar are replaced with '_'.
func SanitizeLabel(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '=', '\'', '"', ';', '|', ',':
			return '_'
		default:
			return r
		}
	}, s)
}
