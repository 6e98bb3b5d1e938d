package utils

import (
	"time"

	"github.com/dustin/go-humanize"
)

// CtimeLayout mirrors the C library's %c output
const CtimeLayout = "Mon Jan _2 15:04:05 2006"

// FormatCtime formats a time the way the C library's %c does
func FormatCtime(t time.Time) string {
	if t.IsZero() {
		return "Unknown"
	}
	return t.Local().Format(CtimeLayout)
}

// FormatTimeAgo returns a relative time such as "3 days ago"
func FormatTimeAgo(t time.Time) string {
	if t.IsZero() {
		return "Unknown"
	}
	return humanize.Time(t)
}

