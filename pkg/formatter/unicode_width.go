package formatter

import (
	"github.com/mattn/go-runewidth"
)

// MaxNameWidth defines the maximum width for Name columns
const MaxNameWidth = 20

// TruncateName shortens s to at most width display columns, marking the cut with "..".
// East Asian wide characters (한글, 한자, かな) count as two columns.
func TruncateName(s string, width int) string {
	return runewidth.Truncate(s, width, "..")
}
