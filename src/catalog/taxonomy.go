package catalog

import "github.com/sharedplanet/wfh-lse/src/aggregates"

// FieldKind distinguishes single aggregate columns from multi-select families.
type FieldKind int

const (
	SingleSelect FieldKind = iota
	MultiSelect
)

// Field is the explicit, load-time form of what the key space only implies:
// either a single aggregate column, or a multi-select family together with its
// discovered choice identifiers.
type Field struct {
	ID      string
	Kind    FieldKind
	Choices []string // sorted full choice identifiers; nil for single-select
}

// Taxonomy maps every catalog question to its Field. It is materialized once
// from the store's key space so selection resolution never rescans the store.
type Taxonomy struct {
	fields map[string]Field
}

// BuildTaxonomy scans the store once and declares a Field for every catalog
// question. Multi-select choices are the distinct field segments sharing the
// family prefix, in sorted order; a family with no matching keys simply has no
// choices.
func BuildTaxonomy(c *Catalog, s *aggregates.Store) *Taxonomy {
	t := &Taxonomy{fields: make(map[string]Field, len(c.Questions()))}
	for _, q := range c.Questions() {
		f := Field{ID: q.Value, Kind: SingleSelect}
		if IsMultiSelect(q.Value) {
			f.Kind = MultiSelect
			f.Choices = s.FieldsWithPrefix(q.Value)
		}
		t.fields[q.Value] = f
	}
	return t
}

// Field returns the declared structure for a field identifier.
func (t *Taxonomy) Field(id string) (Field, bool) {
	f, ok := t.fields[id]
	return f, ok
}

// Choices returns the sorted choice identifiers of a multi-select family.
// Single-select fields and unknown identifiers yield nil.
func (t *Taxonomy) Choices(id string) []string {
	return t.fields[id].Choices
}
