// Package selection keeps the dependent dashboard controls consistent with the
// independent ones. Resolve is a pure function of the catalog, the taxonomy
// and the previous control values: identical inputs yield identical outputs,
// and resolving an already-resolved state returns it unchanged. The UI layers
// (web and desktop) feed every incoming control change through Resolve before
// building a chart, so the chart builder never sees a field or choice outside
// the catalogs.
package selection

import (
	"strings"

	"github.com/sharedplanet/wfh-lse/src/aggregates"
	"github.com/sharedplanet/wfh-lse/src/catalog"
)

// State is the raw value of every control as delivered by a UI. Zero values
// are legal: Resolve normalizes them to the defaults.
type State struct {
	Filter string
	Field  string
	Choice string
	Disagg string
}

// Resolved is a normalized State plus the option list every control should
// present. The JSON shape doubles as the web dashboard's /api/selection
// response.
type Resolved struct {
	Filter        string `json:"filter"`
	Field         string `json:"field"`
	Choice        string `json:"choice,omitempty"`
	Disagg        string `json:"disagg"`
	ChoiceVisible bool   `json:"choiceVisible"`

	Filters   []catalog.Option `json:"filters"`
	Questions []catalog.Option `json:"questions"`
	Choices   []catalog.Option `json:"choices,omitempty"`
	Disaggs   []catalog.Option `json:"disaggs"`
}

// State returns just the normalized control values of r.
func (r Resolved) State() State {
	return State{Filter: r.Filter, Field: r.Field, Choice: r.Choice, Disagg: r.Disagg}
}

// Key returns the aggregate key the selection addresses: the choice identifier
// when a multi-select choice is active, otherwise the field identifier.
func (r Resolved) Key() aggregates.Key {
	field := r.Field
	if r.ChoiceVisible && r.Choice != "" {
		field = r.Choice
	}
	return aggregates.Key{Filter: r.Filter, Field: field, Disagg: r.Disagg}
}

// Resolver derives consistent selections from an immutable catalog and
// taxonomy. It holds no mutable state and may be shared across sessions.
type Resolver struct {
	cat *catalog.Catalog
	tax *catalog.Taxonomy
}

// NewResolver builds a resolver over the given survey configuration.
func NewResolver(cat *catalog.Catalog, tax *catalog.Taxonomy) *Resolver {
	return &Resolver{cat: cat, tax: tax}
}

// Resolve normalizes prev into a consistent selection:
//
//   - an unknown filter falls back to the default filter;
//   - the never-remote filter narrows the question catalog to the Q25
//     singleton, every other filter sees the full catalog minus Q25;
//   - the previous field survives while the new catalog still offers it,
//     otherwise the catalog's first entry applies;
//   - a multi-select field exposes its discovered choices (family prefix
//     stripped for display, identifiers sorted), keeping the previous choice
//     while offered; a single-select field hides and clears the choice;
//   - an unknown disaggregation falls back to the workforce-size bucket.
func (r *Resolver) Resolve(prev State) Resolved {
	out := Resolved{
		Filters: r.cat.Filters(),
		Disaggs: r.cat.Disaggregations(),
	}

	out.Filter = prev.Filter
	if !r.cat.HasFilter(out.Filter) {
		out.Filter = catalog.DefaultFilter
	}

	out.Questions = r.questionOptions(out.Filter)
	out.Field = prev.Field
	if !hasValue(out.Questions, out.Field) {
		out.Field = out.Questions[0].Value
	}

	if f, ok := r.tax.Field(out.Field); ok && f.Kind == catalog.MultiSelect {
		out.ChoiceVisible = true
		out.Choices = choiceOptions(f)
		if len(out.Choices) > 0 {
			out.Choice = prev.Choice
			if !hasValue(out.Choices, out.Choice) {
				out.Choice = out.Choices[0].Value
			}
		}
	}

	out.Disagg = prev.Disagg
	if !r.cat.HasDisagg(out.Disagg) {
		out.Disagg = catalog.DefaultDisagg
	}
	return out
}

// questionOptions applies the filter-dependent catalog rule. The result is
// never empty: the catalog always declares Q25 and at least one other entry.
func (r *Resolver) questionOptions(filter string) []catalog.Option {
	all := r.cat.Questions()
	out := make([]catalog.Option, 0, len(all))
	for _, q := range all {
		isQ25 := q.Value == catalog.NonAdopterField
		if filter == catalog.FilterNeverRemote {
			if isQ25 {
				out = append(out, q)
			}
		} else if !isQ25 {
			out = append(out, q)
		}
	}
	return out
}

func choiceOptions(f catalog.Field) []catalog.Option {
	out := make([]catalog.Option, 0, len(f.Choices))
	for _, c := range f.Choices {
		out = append(out, catalog.Option{Label: strings.TrimPrefix(c, f.ID), Value: c})
	}
	return out
}

func hasValue(opts []catalog.Option, v string) bool {
	if v == "" {
		return false
	}
	for _, o := range opts {
		if o.Value == v {
			return true
		}
	}
	return false
}
