package texttab

import (
	"fmt"
	"reflect"
	"sort"
)

// normalizeRows resolves the field set and converts every raw row into a
// fresh field-keyed Row. Row shape is inferred from the first row only;
// feeding mixed shapes is a caller contract violation, not a guarded
// error path.
func normalizeRows(raw []any, opts Options) ([]Field, []Row) {
	fields := resolveFields(raw, opts)
	fields, renames := applyRename(fields, opts.ChangeFields)
	rows := make([]Row, len(raw))
	for i, rr := range raw {
		rows[i] = normalizeRow(rr, fields, renames)
	}
	return fields, rows
}

func resolveFields(raw []any, opts Options) []Field {
	if len(opts.Fields) > 0 {
		fields := make([]Field, len(opts.Fields))
		copy(fields, opts.Fields)
		return fields
	}
	if len(raw) == 0 {
		return nil
	}
	if m, ok := asMapping(raw[0]); ok {
		set := make(map[Field]struct{}, len(m))
		for f := range m {
			set[f] = struct{}{}
		}
		if opts.AllFields {
			for _, rr := range raw[1:] {
				if mm, ok := asMapping(rr); ok {
					for f := range mm {
						set[f] = struct{}{}
					}
				}
			}
		}
		fields := make([]Field, 0, len(set))
		for f := range set {
			fields = append(fields, f)
		}
		sort.Slice(fields, func(i, j int) bool { return fields[i] < fields[j] })
		return fields
	}
	if s, ok := asSequence(raw[0]); ok {
		fields := make([]Field, len(s))
		for i := range s {
			fields[i] = FieldIndex(i)
		}
		return fields
	}
	return nil
}

// applyRename relabels fields in place, preserving column position, and
// appends unmatched names as new trailing fields. The returned map
// translates old row keys to their new fields. Unmatched mapping entries
// append in ascending name order so output stays deterministic.
func applyRename(fields []Field, ren Rename) ([]Field, map[Field]Field) {
	renames := make(map[Field]Field)
	if ren.IsZero() {
		return fields, renames
	}
	if len(ren.seq) > 0 {
		for i, name := range ren.seq {
			if i < len(fields) {
				renames[fields[i]] = name
				fields[i] = name
			} else {
				fields = append(fields, name)
			}
		}
		return fields, renames
	}
	matched := make(map[Field]bool, len(ren.byField))
	for i, f := range fields {
		if name, ok := ren.byField[f]; ok {
			renames[f] = name
			fields[i] = name
			matched[f] = true
		}
	}
	var extra []Field
	for old, name := range ren.byField {
		if !matched[old] {
			extra = append(extra, name)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(fields, extra...), renames
}

func normalizeRow(raw any, fields []Field, renames map[Field]Field) Row {
	row := Row{}
	if m, ok := asMapping(raw); ok {
		for f, v := range m {
			if name, ok := renames[f]; ok {
				f = name
			}
			row[f] = v
		}
		return row
	}
	if s, ok := asSequence(raw); ok {
		for i, v := range s {
			if i < len(fields) {
				row[fields[i]] = v
			}
		}
		return row
	}
	return row
}

// asMapping adapts a raw row to a keyed Row. Fast paths cover the
// package's own types; any other map kind goes through reflection with
// keys reduced to their string form.
func asMapping(raw any) (Row, bool) {
	switch m := raw.(type) {
	case Row:
		return m, true
	case map[Field]Value:
		return Row(m), true
	case map[string]any:
		row := make(Row, len(m))
		for k, v := range m {
			row[Field(k)] = v
		}
		return row, true
	case map[string]string:
		row := make(Row, len(m))
		for k, v := range m {
			row[Field(k)] = v
		}
		return row, true
	}
	rv := reflect.ValueOf(raw)
	if !rv.IsValid() || rv.Kind() != reflect.Map {
		return nil, false
	}
	row := make(Row, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		row[Field(fmt.Sprint(iter.Key().Interface()))] = iter.Value().Interface()
	}
	return row, true
}

// asSequence adapts a raw row to an ordered value slice.
func asSequence(raw any) ([]Value, bool) {
	switch s := raw.(type) {
	case []Value:
		return s, true
	case []string:
		vals := make([]Value, len(s))
		for i, v := range s {
			vals[i] = v
		}
		return vals, true
	}
	rv := reflect.ValueOf(raw)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, false
	}
	vals := make([]Value, rv.Len())
	for i := range vals {
		vals[i] = rv.Index(i).Interface()
	}
	return vals, true
}
