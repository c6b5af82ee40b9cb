package texttab

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-runewidth"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnknownFilter = errors.New("unknown filter")
	ErrFilterMethod  = errors.New("filter method not usable")
)

// Field identifies a column. Lookup and ordering go through the field's
// string form; positional inputs produce fields "0", "1", and so on.
type Field string

// FieldIndex returns the positional field for index i.
func FieldIndex(i int) Field { return Field(strconv.Itoa(i)) }

// Value is a displayable cell value. Cells are frozen to strings once the
// pipeline validates them.
type Value = any

// Row is one record keyed by field. Column order lives in the
// accompanying []Field, not in the map.
type Row map[Field]Value

// Renderer renders row sets as bordered text tables. The zero value is
// usable: unlimited width, runewidth measurement, warnings to stderr, the
// built-in vertical layout, and no filters or hooks registered.
//
// A Renderer is safe for concurrent Render calls as long as its fields
// are not mutated concurrently; all per-call state is freshly allocated.
type Renderer struct {
	// MaxWidth is the default target total width, including borders.
	// Zero means unconstrained. Options.MaxWidth overrides it per call.
	MaxWidth int

	// Length measures the displayed width of a string. Defaults to
	// runewidth.StringWidth. Width computation and cell formatting share
	// this one function, so alignment survives multi-byte input.
	Length func(string) int

	// Diag receives the warning emitted when a table cannot fit MaxWidth
	// and rendering falls back to the vertical layout. Defaults to
	// os.Stderr.
	Diag io.Writer

	// Vertical renders the one-field-per-line layout, used for the
	// vertical option and as the overflow fallback. Nil selects the
	// built-in implementation.
	Vertical VerticalRenderer

	// Filters resolves registry-name filters (see FilterNamed).
	Filters map[string]func(Value) (Value, error)

	// FilterClasses maps value classes (see valueClass) to default
	// filters, consulted when Options.FilterValues is set.
	// Options.FilterClasses merges over it per call.
	FilterClasses map[string]Filter

	// Hooks are the registered row transforms. They run in ascending
	// order of name, regardless of registration order.
	Hooks []Hook
}

func (r *Renderer) length(s string) int {
	if r.Length != nil {
		return r.Length(s)
	}
	return runewidth.StringWidth(s)
}

func (r *Renderer) diag() io.Writer {
	if r.Diag != nil {
		return r.Diag
	}
	return os.Stderr
}

func (r *Renderer) target(opts Options) int {
	if opts.MaxWidth > 0 {
		return opts.MaxWidth
	}
	return r.MaxWidth
}

// Result is the outcome of one Render call: rendered text, or, with the
// ReturnRows option, the normalized rows and their field order.
type Result struct {
	Text   string
	Rows   []Row
	Fields []Field
}

// prepared is the per-call pipeline state after normalization, filtering,
// header resolution, numbering, and hooks.
type prepared struct {
	fields  []Field
	headers map[Field]string
	rows    []Row
}

func (r *Renderer) prepare(raw []any, opts Options) (prepared, error) {
	fields, rows := normalizeRows(raw, opts)
	if err := r.applyFilters(fields, rows, opts); err != nil {
		return prepared{}, err
	}
	validateRows(fields, rows, opts)
	headers, err := r.resolveHeaders(fields, opts)
	if err != nil {
		return prepared{}, err
	}
	if opts.Number {
		fields, headers, rows = numberRows(fields, headers, rows)
	}
	rows = r.runHooks(rows, opts)
	return prepared{fields: fields, headers: headers, rows: rows}, nil
}

// Render renders rows according to opts. Paths, in priority order: the
// vertical layout when opts.Vertical is set, the normalized row set when
// opts.ReturnRows is set, otherwise the bordered table.
//
// A table too wide for the target width is not an error: Render warns on
// Diag and re-renders the same rows vertically. Filter resolution
// failures do return errors; they are caller configuration mistakes.
func (r *Renderer) Render(rows []any, opts Options) (Result, error) {
	if opts.Vertical {
		text, err := r.renderVertical(rows, opts)
		return Result{Text: text}, err
	}
	p, err := r.prepare(rows, opts)
	if err != nil {
		return Result{}, err
	}
	if opts.ReturnRows {
		return Result{Rows: p.rows, Fields: p.fields}, nil
	}
	widths, ok := r.computeWidths(p, opts)
	if !ok {
		fmt.Fprintf(r.diag(), "texttab: rows do not fit in %d columns even at minimum field widths, using vertical layout\n", r.target(opts))
		text, err := r.renderVertical(rows, opts)
		return Result{Text: text}, err
	}
	return Result{Text: r.renderTable(p, widths, opts)}, nil
}

// Write renders rows to w, with a trailing newline. ReturnRows makes no
// sense here and is ignored.
func (r *Renderer) Write(w io.Writer, rows []any, opts Options) error {
	opts.ReturnRows = false
	res, err := r.Render(rows, opts)
	if err != nil {
		return err
	}
	if res.Text == "" {
		return nil
	}
	_, err = io.WriteString(w, res.Text+"\n")
	return err
}

func (r *Renderer) computeWidths(p prepared, opts Options) (map[Field]int, bool) {
	widths := r.naturalWidths(p.fields, p.headers, p.rows)
	if len(opts.FieldLengths) > 0 {
		// Explicit overrides win outright; no shrink step runs.
		for _, f := range p.fields {
			if w, ok := opts.FieldLengths[f]; ok {
				widths[f] = w
			}
		}
		return widths, true
	}
	target := r.target(opts)
	if target <= 0 {
		return widths, true
	}
	return resize(p.fields, widths, target)
}
