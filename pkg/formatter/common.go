package formatter

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Format selects how records are printed
type Format string

const (
	// FormatTable prints kubectl style aligned tables
	FormatTable Format = "table"
	// FormatPlain prints one comma separated line per record
	FormatPlain Format = "plain"
)

// ParseFormat validates an --output value
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatTable:
		return FormatTable, nil
	case FormatPlain:
		return FormatPlain, nil
	default:
		return "", fmt.Errorf("unknown output format %q (valid: %s, %s)", s, FormatTable, FormatPlain)
	}
}

// newTabWriter returns the kubectl style tabwriter used by every table
func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
}

// plainLine joins fields the way the plain output format expects
func plainLine(w io.Writer, fields ...string) {
	fmt.Fprintln(w, strings.Join(fields, ", "))
}
