package texttab

import (
	"fmt"
	"strings"
)

// VerticalRenderer renders rows one field per line. It serves both the
// explicit Vertical option and the overflow fallback, always receiving
// the original rows and options.
type VerticalRenderer interface {
	RenderVertical(rows []any, opts Options) (string, error)
}

func (r *Renderer) renderVertical(rows []any, opts Options) (string, error) {
	if r.Vertical != nil {
		return r.Vertical.RenderVertical(rows, opts)
	}
	return r.verticalText(rows, opts)
}

// verticalText is the built-in vertical layout. It runs the same
// normalization pipeline as the table path, then emits a numbered
// separator per row and right-aligned "label: value" lines.
func (r *Renderer) verticalText(rows []any, opts Options) (string, error) {
	p, err := r.prepare(rows, opts)
	if err != nil {
		return "", err
	}
	labelWidth := 0
	for _, f := range p.fields {
		if w := r.length(p.headers[f]); w > labelWidth {
			labelWidth = w
		}
	}
	var lines []string
	for i, row := range p.rows {
		lines = append(lines, fmt.Sprintf("*************************** %d. row ***************************", i+1))
		for _, f := range p.fields {
			label := p.headers[f]
			pad := strings.Repeat(" ", labelWidth-r.length(label))
			lines = append(lines, pad+label+": "+displayString(row[f]))
		}
	}
	if opts.description() {
		lines = append(lines, describeCount(len(p.rows)))
	}
	return strings.Join(lines, "\n"), nil
}
