package texttab

// minFieldWidth leaves room for the truncation marker.
const minFieldWidth = 3

// naturalWidths computes each field's unconstrained content width: the
// wider of its header label and its widest cell. A field with no rows
// keeps its header's width.
func (r *Renderer) naturalWidths(fields []Field, headers map[Field]string, rows []Row) map[Field]int {
	widths := make(map[Field]int, len(fields))
	for _, f := range fields {
		w := r.length(headers[f])
		for _, row := range rows {
			if cw := r.length(displayString(row[f])); cw > w {
				w = cw
			}
		}
		widths[f] = w
	}
	return widths
}

// renderedWidth is the total printed width of one table line: the cell
// content plus the "| " prefix, " | " separators, and trailing " |",
// three border characters per field plus one.
func renderedWidth(fields []Field, widths map[Field]int) int {
	total := 1
	for _, f := range fields {
		total += widths[f] + 3
	}
	return total
}

// resize shrinks a copy of widths until the rendered total fits target,
// one column at a time off the rightmost of the currently-widest fields,
// never taking a field below minFieldWidth. The second result is false
// when even minimum widths do not fit; the caller decides the fallback.
func resize(fields []Field, widths map[Field]int, target int) (map[Field]int, bool) {
	out := make(map[Field]int, len(widths))
	for f, w := range widths {
		out[f] = w
	}
	total := renderedWidth(fields, out)
	for total > target {
		widest := -1
		for i, f := range fields {
			if out[f] <= minFieldWidth {
				continue
			}
			if widest == -1 || out[f] >= out[fields[widest]] {
				widest = i
			}
		}
		if widest == -1 {
			return nil, false
		}
		out[fields[widest]]--
		total--
	}
	return out, true
}
