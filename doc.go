// Package texttab renders heterogeneous row sets as aligned,
// width-constrained, ASCII-bordered text tables for terminal display.
//
// Rows arrive either as ordered sequences or as field-keyed mappings, in
// any mix of Go map and slice types. The pipeline normalizes them to a
// uniform field→value shape, applies per-cell and per-row filters,
// resolves header labels, computes column widths (shrinking to a target
// total width when one is set), and assembles the bordered output. The
// central entry points are [Renderer.Render] and [Renderer.Write]:
//
//	r := &texttab.Renderer{MaxWidth: 80}
//	res, err := r.Render([]any{
//		map[string]any{"age": 10, "weight": 100},
//		map[string]any{"age": 80, "weight": 500},
//	}, texttab.Options{})
//
// which yields
//
//	+-----+--------+
//	| age | weight |
//	+-----+--------+
//	| 10  | 100    |
//	| 80  | 500    |
//	+-----+--------+
//	2 rows in set
//
// # Field Resolution
//
// An explicit [Options].Fields list is used verbatim. Otherwise the first
// row decides: mapping rows take the first row's keys sorted ascending by
// string form (or, with AllFields, the sorted union of every row's keys);
// sequence rows take positional fields "0", "1", and so on. Row shape is
// inferred from the first row only; mixed shapes in one call are a
// caller contract violation, not a guarded error.
//
// # Filters
//
// A [Filter] is one of three variants, resolved in order: an anonymous
// function ([FilterFunc]), a method called on the value itself
// ([FilterMethod]), or a name looked up in the renderer's registry
// ([FilterNamed]). Per-field filters attach through [Options].Filters;
// [Options].HeaderFilter transforms labels. With [Options].FilterValues
// set, a field whose values all share one dynamic type picks up a default
// filter from the class→filter table ([Renderer].FilterClasses, merged
// under [Options].FilterClasses). Resolution failures (unknown registry
// name, missing method) return errors.
//
// [Hook]s registered on the renderer transform the whole row set before
// layout, in ascending order of name; search, pagination, or dedup slot
// in without touching the pipeline. [Options].DeleteCallbacks suppresses
// hooks by name for one call.
//
// # Width Constraints
//
// Each column's natural width is the wider of its header and cells.
// When a target total width applies ([Options].MaxWidth, else
// [Renderer].MaxWidth), the widest columns shrink first, down to a
// three-column floor. If even minimum widths cannot fit, Render does not
// fail: it warns on [Renderer].Diag and falls back to the vertical
// one-field-per-line layout, also reachable directly through
// [Options].Vertical or a custom [VerticalRenderer].
//
// All width arithmetic and truncation share one length function
// ([Renderer].Length, runewidth by default), so multi-byte characters
// never skew alignment.
//
// # Options
//
// [Options] is a per-call record; every field carries a yaml tag and
// [ParseOptions] decodes a YAML document, so host tools can keep render
// settings in configuration files. The mapping-or-positional forms of
// headers and change_fields decode from either a YAML mapping or
// sequence. [Options].ReturnRows skips rendering and hands back the
// normalized rows.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnknownFilter] — registry-name filter with no registered entry
//   - [ErrFilterMethod] — method filter the value cannot satisfy
//
// Width overflow is never an error; it degrades to vertical output.
package texttab
