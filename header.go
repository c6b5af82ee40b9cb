package texttab

import "strconv"

// NumberField is the reserved field prepended by the Number option.
const NumberField = Field("number")

// resolveHeaders computes each field's display label: the field's string
// form, overridden per field or positionally, then passed through the
// header filter. Positional overrides beyond the field count are ignored.
func (r *Renderer) resolveHeaders(fields []Field, opts Options) (map[Field]string, error) {
	headers := make(map[Field]string, len(fields))
	for _, f := range fields {
		headers[f] = string(f)
	}
	for f, label := range opts.Headers.byField {
		if _, ok := headers[f]; ok {
			headers[f] = label
		}
	}
	for i, label := range opts.Headers.seq {
		if i >= len(fields) {
			break
		}
		headers[fields[i]] = label
	}
	if !opts.HeaderFilter.IsZero() {
		for f, label := range headers {
			v, err := r.applyFilter(opts.HeaderFilter, label)
			if err != nil {
				return nil, err
			}
			headers[f] = displayString(v)
		}
	}
	return headers, nil
}

// numberRows prepends the reserved number column with 1-based values.
// Running before hooks means a filtering hook keeps original positions.
func numberRows(fields []Field, headers map[Field]string, rows []Row) ([]Field, map[Field]string, []Row) {
	fields = append([]Field{NumberField}, fields...)
	headers[NumberField] = "number"
	for i, row := range rows {
		row[NumberField] = strconv.Itoa(i + 1)
	}
	return fields, headers, rows
}
