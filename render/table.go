package render

import (
	"fmt"
	"strings"
)

// Table accumulates display rows and renders them as aligned columns.
// A header label starting with "-" is printed left-justified with the
// marker stripped; all other columns are right-justified. Column width
// is the widest cell in the column, header included.
type Table struct {
	headers []string
	left    []bool
	rows    [][]string
}

// NewTable creates a table from alignment-marked header labels.
func NewTable(headers ...string) *Table {
	t := &Table{
		headers: make([]string, len(headers)),
		left:    make([]bool, len(headers)),
	}
	for i, h := range headers {
		if strings.HasPrefix(h, "-") {
			t.left[i] = true
			h = h[1:]
		}
		t.headers[i] = h
	}
	return t
}

// AddRow appends one row. The cell count must match the header count.
func (t *Table) AddRow(cells ...string) error {
	if len(cells) != len(t.headers) {
		return fmt.Errorf("render: row has %d columns, table has %d", len(cells), len(t.headers))
	}
	t.rows = append(t.rows, cells)
	return nil
}

// Render returns the header line, a dash rule of the same length, and one
// line per row, columns joined by two spaces. Rows keep insertion order.
func (t *Table) Render() string {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	writeLine := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				b.WriteString("  ")
			}
			if t.left[i] {
				fmt.Fprintf(&b, "%-*s", widths[i], cell)
			} else {
				fmt.Fprintf(&b, "%*s", widths[i], cell)
			}
		}
		b.WriteByte('\n')
	}

	writeLine(t.headers)

	ruleLen := 0
	for _, w := range widths {
		ruleLen += w
	}
	if len(widths) > 1 {
		ruleLen += 2 * (len(widths) - 1)
	}
	b.WriteString(strings.Repeat("-", ruleLen))
	b.WriteByte('\n')

	for _, row := range t.rows {
		writeLine(row)
	}
	return b.String()
}
