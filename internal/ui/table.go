package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Table prints a left-aligned, two-column table — the only shape
// anything in this shell needs: the history builtin's "#"/command
// listing. The first column is padded to its widest entry.
type Table struct {
	writer  io.Writer
	headers [2]string
	rows    [][2]string
}

// NewTable creates a new table writing to w.
func NewTable(w io.Writer) *Table {
	return &Table{writer: w}
}

// SetHeaders sets the two column headers.
func (t *Table) SetHeaders(col1, col2 string) {
	t.headers = [2]string{col1, col2}
}

// AddRow adds a row to the table.
func (t *Table) AddRow(col1, col2 string) {
	t.rows = append(t.rows, [2]string{col1, col2})
}

// Render prints the accumulated headers and rows.
func (t *Table) Render() {
	if t.headers == ([2]string{}) && len(t.rows) == 0 {
		return
	}

	width := visibleLen(t.headers[0])
	for _, row := range t.rows {
		if w := visibleLen(row[0]); w > width {
			width = w
		}
	}

	t.printRow(t.headers, width)
	for _, row := range t.rows {
		t.printRow(row, width)
	}
}

func (t *Table) printRow(row [2]string, width int) {
	pad := width - visibleLen(row[0])
	fmt.Fprintln(t.writer, row[0]+strings.Repeat(" ", pad+2)+row[1])
}

// visibleLen returns the display width of s, ignoring ANSI escapes.
func visibleLen(s string) int {
	return runewidth.StringWidth(stripANSI(s))
}

func stripANSI(s string) string {
	var result strings.Builder
	inEscape := false
	for _, r := range s {
		if r == '\033' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}
