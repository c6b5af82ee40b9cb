package texttab

import "strings"

// ellipsis marks truncated cells.
const ellipsis = "..."

// FormatCell truncates or pads s to exactly width display columns. Cells
// narrower than five columns are cut with no marker; wider cells keep
// width-3 columns of content followed by the marker. Text is
// left-justified with trailing spaces. Measurement uses the renderer's
// Length func, the same one the width calculator uses, so alignment
// never breaks on multi-byte input.
func (r *Renderer) FormatCell(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if r.length(s) > width {
		if width < 5 {
			s = r.truncate(s, width)
		} else {
			s = r.truncate(s, width-3) + ellipsis
		}
	}
	if pad := width - r.length(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// truncate cuts s to the longest rune-boundary prefix measuring at most
// target columns. A wide rune that does not fit is dropped entirely.
func (r *Renderer) truncate(s string, target int) string {
	if target <= 0 {
		return ""
	}
	if r.length(s) <= target {
		return s
	}
	end := 0
	for i := range s {
		if r.length(s[:i]) > target {
			return s[:end]
		}
		end = i
	}
	return s[:end]
}
