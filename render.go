package texttab

import (
	"fmt"
	"strings"
)

// borderLine draws "+-----+--------+" for the field widths.
func borderLine(fields []Field, widths map[Field]int) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = strings.Repeat("-", widths[f])
	}
	return "+-" + strings.Join(parts, "-+-") + "-+"
}

func (r *Renderer) rowLine(fields []Field, widths map[Field]int, cell func(Field) string) string {
	cells := make([]string, len(fields))
	for i, f := range fields {
		cells[i] = r.FormatCell(cell(f), widths[f])
	}
	return "| " + strings.Join(cells, " | ") + " |"
}

// describeCount is the trailing row-count line.
func describeCount(n int) string {
	if n == 1 {
		return "1 row in set"
	}
	return fmt.Sprintf("%d rows in set", n)
}

// renderTable assembles the bordered table: border, header block, body,
// closing border, and the optional description line. An empty row set
// emits only the description.
func (r *Renderer) renderTable(p prepared, widths map[Field]int, opts Options) string {
	if len(p.rows) == 0 {
		if opts.description() {
			return describeCount(0)
		}
		return ""
	}
	border := borderLine(p.fields, widths)
	var lines []string
	if len(p.fields) > 0 {
		lines = append(lines, border,
			r.rowLine(p.fields, widths, func(f Field) string { return p.headers[f] }),
			border)
	} else {
		lines = append(lines, border)
	}
	for _, row := range p.rows {
		lines = append(lines, r.rowLine(p.fields, widths, func(f Field) string { return displayString(row[f]) }))
	}
	lines = append(lines, border)
	if opts.description() {
		lines = append(lines, describeCount(len(p.rows)))
	}
	return strings.Join(lines, "\n")
}
