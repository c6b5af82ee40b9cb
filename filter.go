package texttab

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Filter transforms one cell or header value. Exactly one variant is set;
// application resolves them in order: anonymous function, method call on
// the value itself, registry name. A filter that cannot be resolved is a
// caller configuration mistake and surfaces as an error.
type Filter struct {
	fn     func(Value) (Value, error)
	method string
	args   []Value
	name   string
}

// FilterFunc wraps fn as a Filter.
func FilterFunc(fn func(Value) (Value, error)) Filter { return Filter{fn: fn} }

// FilterMethod builds a Filter that calls the named method on the value
// itself with the given arguments.
func FilterMethod(name string, args ...Value) Filter {
	return Filter{method: name, args: args}
}

// FilterNamed builds a Filter resolved through the renderer's Filters
// registry.
func FilterNamed(name string) Filter { return Filter{name: name} }

// IsZero reports whether no variant is set.
func (f Filter) IsZero() bool { return f.fn == nil && f.method == "" && f.name == "" }

// UnmarshalYAML decodes a scalar as a registry-name filter. Function and
// method filters have no configuration-file form.
func (f *Filter) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	*f = FilterNamed(name)
	return nil
}

func (r *Renderer) applyFilter(f Filter, v Value) (Value, error) {
	switch {
	case f.fn != nil:
		return f.fn(v)
	case f.method != "":
		return callMethod(v, f.method, f.args)
	case f.name != "":
		fn, ok := r.Filters[f.name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, f.name)
		}
		return fn(v)
	}
	return v, nil
}

// callMethod invokes the named method on v. The method must accept the
// given arguments and return one value, optionally followed by an error.
func callMethod(v Value, name string, args []Value) (Value, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, fmt.Errorf("%w: %q on nil value", ErrFilterMethod, name)
	}
	m := rv.MethodByName(name)
	if !m.IsValid() {
		return nil, fmt.Errorf("%w: no method %q on %T", ErrFilterMethod, name, v)
	}
	if !m.Type().IsVariadic() && m.Type().NumIn() != len(args) {
		return nil, fmt.Errorf("%w: %q on %T takes %d args, got %d", ErrFilterMethod, name, v, m.Type().NumIn(), len(args))
	}
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		in[i] = reflect.ValueOf(a)
	}
	out := m.Call(in)
	switch len(out) {
	case 1:
		return out[0].Interface(), nil
	case 2:
		if err, ok := out[1].Interface().(error); ok && err != nil {
			return nil, err
		}
		return out[0].Interface(), nil
	}
	return nil, fmt.Errorf("%w: %q on %T returns %d values", ErrFilterMethod, name, v, len(out))
}

// valueClass names the dynamic type of v, e.g. "int", "string",
// "time.Time". Class-based default filters key on these names.
func valueClass(v Value) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}

// fieldFilter resolves the filter for one field. An explicit per-field
// filter wins. Otherwise, with FilterValues enabled, the merged
// class→filter table applies, but only when every value observed for the
// field shares exactly one class; a tie between classes yields no filter.
func (r *Renderer) fieldFilter(f Field, rows []Row, opts Options) Filter {
	if flt, ok := opts.Filters[f]; ok && !flt.IsZero() {
		return flt
	}
	if !opts.FilterValues {
		return Filter{}
	}
	class := ""
	found := false
	for _, row := range rows {
		v, ok := row[f]
		if !ok {
			continue
		}
		c := valueClass(v)
		if !found {
			class, found = c, true
			continue
		}
		if c != class {
			return Filter{}
		}
	}
	if !found {
		return Filter{}
	}
	if flt, ok := opts.FilterClasses[class]; ok {
		return flt
	}
	if flt, ok := r.FilterClasses[class]; ok {
		return flt
	}
	return Filter{}
}

// applyFilters runs each field's resolved filter over every cell,
// mutating rows in place.
func (r *Renderer) applyFilters(fields []Field, rows []Row, opts Options) error {
	for _, f := range fields {
		flt := r.fieldFilter(f, rows, opts)
		if flt.IsZero() {
			continue
		}
		for _, row := range rows {
			v, ok := row[f]
			if !ok {
				continue
			}
			nv, err := r.applyFilter(flt, v)
			if err != nil {
				return err
			}
			row[f] = nv
		}
	}
	return nil
}

var specialChars = strings.NewReplacer("\t", `\t`, "\r", `\r`, "\n", `\n`)

// validateRows freezes every cell to its display string. Absent and nil
// cells become empty strings; with escaping on, literal tab, carriage
// return, and newline characters take their escaped text form so they
// cannot corrupt row alignment.
func validateRows(fields []Field, rows []Row, opts Options) {
	escape := opts.escapeSpecialChars()
	for _, row := range rows {
		for _, f := range fields {
			s := displayString(row[f])
			if escape {
				s = specialChars.Replace(s)
			}
			row[f] = s
		}
	}
}

func displayString(v Value) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	}
	return fmt.Sprint(v)
}

// Hook is a named transform applied to the whole row set after per-cell
// filtering and header setup, before width computation. Hooks run in
// ascending lexicographic order of Name, each fully replacing the row set
// with its return value. Row-level operations like search, pagination, or
// dedup plug in here without touching the pipeline.
type Hook struct {
	Name string
	Fn   func(rows []Row, opts Options) []Row
}

func (r *Renderer) runHooks(rows []Row, opts Options) []Row {
	if len(r.Hooks) == 0 {
		return rows
	}
	skip := make(map[string]bool, len(opts.DeleteCallbacks))
	for _, name := range opts.DeleteCallbacks {
		skip[name] = true
	}
	hooks := make([]Hook, 0, len(r.Hooks))
	for _, h := range r.Hooks {
		if h.Fn != nil && !skip[h.Name] {
			hooks = append(hooks, h)
		}
	}
	sort.SliceStable(hooks, func(i, j int) bool { return hooks[i].Name < hooks[j].Name })
	for _, h := range hooks {
		rows = h.Fn(rows, opts)
	}
	return rows
}
