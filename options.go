package texttab

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Options configures a single Render call. The zero value renders with
// defaults. Description and EscapeSpecialChars are tri-state: nil means
// true; use [Bool] to set them explicitly.
//
// Every field carries a yaml tag so hosts can keep render settings in
// configuration files and decode them with [ParseOptions].
type Options struct {
	// Fields is an explicit ordered field list. When set, field
	// resolution from the rows is skipped entirely.
	Fields []Field `yaml:"fields"`

	// Headers overrides display labels, per field or positionally.
	Headers Labels `yaml:"headers"`

	// FieldLengths fixes per-field content widths. Any entry disables
	// the shrink step; unmentioned fields keep their natural width.
	FieldLengths map[Field]int `yaml:"field_lengths"`

	// MaxWidth is the target total rendered width for this call,
	// overriding Renderer.MaxWidth. Zero defers to the renderer.
	MaxWidth int `yaml:"max_width"`

	// Number prepends an auto-incrementing row-number column.
	Number bool `yaml:"number"`

	// ChangeFields renames existing fields in place or appends new
	// trailing ones.
	ChangeFields Rename `yaml:"change_fields"`

	// Filters sets per-field value filters.
	Filters map[Field]Filter `yaml:"filters"`

	// HeaderFilter applies to every header label after overrides merge.
	HeaderFilter Filter `yaml:"header_filter"`

	// FilterValues enables class-based default filtering: a field whose
	// values all share one class gets that class's filter from the
	// merged FilterClasses table.
	FilterValues bool `yaml:"filter_values"`

	// FilterClasses extends or overrides the renderer's default
	// class→filter table for this call.
	FilterClasses map[string]Filter `yaml:"filter_classes"`

	// Vertical forces the one-field-per-line layout.
	Vertical bool `yaml:"vertical"`

	// AllFields resolves fields from the union of every row's keys
	// instead of the first row's keys (mapping rows only).
	AllFields bool `yaml:"all_fields"`

	// Description controls the trailing "N rows in set" line.
	// Default true.
	Description *bool `yaml:"description"`

	// EscapeSpecialChars rewrites literal tab, carriage return, and
	// newline characters in cell text so they cannot break row
	// alignment. Default true.
	EscapeSpecialChars *bool `yaml:"escape_special_chars"`

	// ReturnRows short-circuits rendering and returns the normalized
	// rows in Result.Rows.
	ReturnRows bool `yaml:"return_rows"`

	// DeleteCallbacks lists hook names to suppress for this call.
	DeleteCallbacks []string `yaml:"delete_callbacks"`
}

func (o Options) description() bool {
	return o.Description == nil || *o.Description
}

func (o Options) escapeSpecialChars() bool {
	return o.EscapeSpecialChars == nil || *o.EscapeSpecialChars
}

// Bool returns a pointer to v, for the tri-state option fields.
func Bool(v bool) *bool { return &v }

// Labels holds header overrides in one of two shapes: a per-field mapping
// or a positional sequence applied to the resolved field order.
type Labels struct {
	byField map[Field]string
	seq     []string
}

// LabelMap builds mapping-form header overrides.
func LabelMap(m map[Field]string) Labels { return Labels{byField: m} }

// LabelSeq builds positional header overrides.
func LabelSeq(labels ...string) Labels { return Labels{seq: labels} }

// IsZero reports whether no overrides are set.
func (l Labels) IsZero() bool { return len(l.byField) == 0 && len(l.seq) == 0 }

// UnmarshalYAML accepts either a mapping or a sequence node.
func (l *Labels) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		return node.Decode(&l.byField)
	case yaml.SequenceNode:
		return node.Decode(&l.seq)
	}
	return fmt.Errorf("headers: expected mapping or sequence, got %s", nodeKind(node))
}

// Rename relabels fields: a mapping from old field to new name, or a
// positional sequence applied index by index to the resolved field order.
// Entries that match no existing field append as new trailing fields.
type Rename struct {
	byField map[Field]Field
	seq     []Field
}

// RenameMap builds mapping-form renames.
func RenameMap(m map[Field]Field) Rename { return Rename{byField: m} }

// RenameSeq builds positional renames.
func RenameSeq(names ...Field) Rename { return Rename{seq: names} }

// IsZero reports whether no renames are set.
func (r Rename) IsZero() bool { return len(r.byField) == 0 && len(r.seq) == 0 }

// UnmarshalYAML accepts either a mapping or a sequence node.
func (r *Rename) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		return node.Decode(&r.byField)
	case yaml.SequenceNode:
		return node.Decode(&r.seq)
	}
	return fmt.Errorf("change_fields: expected mapping or sequence, got %s", nodeKind(node))
}

func nodeKind(node *yaml.Node) string {
	switch node.Kind {
	case yaml.ScalarNode:
		return "scalar"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.AliasNode:
		return "alias"
	}
	return "document"
}

// ParseOptions decodes a YAML document into Options.
func ParseOptions(data []byte) (Options, error) {
	var opts Options
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("parse options: %w", err)
	}
	return opts, nil
}
