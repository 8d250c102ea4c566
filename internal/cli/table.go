package cli

import (
	"strings"

	"github.com/jmylchreest/boxtint/internal/colour"
)

// Table is a plain-text table whose column widths follow the widest cell.
// Cells may contain ANSI colour sequences; they do not count toward width.
type Table struct {
	headers []string
	rows    [][]string
	padding int
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers: headers,
		rows:    make([][]string, 0),
		padding: 2, // 2 spaces between columns
	}
}

// AddRow adds a row, padding or truncating it to the header count.
func (t *Table) AddRow(row []string) {
	newRow := make([]string, len(t.headers))
	copy(newRow, row)
	t.rows = append(t.rows, newRow)
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	colWidths := make([]int, len(t.headers))
	for i, h := range t.headers {
		colWidths[i] = colour.VisibleWidth(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			colWidths[i] = max(colWidths[i], colour.VisibleWidth(cell))
		}
	}

	sep := strings.Repeat(" ", t.padding)
	var result strings.Builder

	writeRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, c := range cells {
			parts[i] = padRight(c, colWidths[i])
		}
		result.WriteString(strings.TrimRight(strings.Join(parts, sep), " "))
		result.WriteString("\n")
	}

	writeRow(t.headers)

	rule := make([]string, len(colWidths))
	for i, w := range colWidths {
		rule[i] = strings.Repeat("-", w)
	}
	writeRow(rule)

	for _, row := range t.rows {
		writeRow(row)
	}

	return result.String()
}

// padRight pads s with spaces until its visible width reaches width.
func padRight(s string, width int) string {
	if w := colour.VisibleWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
