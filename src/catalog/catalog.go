// Package catalog declares the static survey metadata: which questions and
// disaggregation dimensions exist, how they map to field identifiers in the
// aggregate key space, and the fixed display order of the workforce-size
// buckets. Catalogs are insertion-ordered so that dropdowns and defaults are
// deterministic.
package catalog

import "strings"

// Option is one dropdown entry: a human-readable label and the identifier it
// selects in the aggregate key space.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Q8 filter values. The filter is a radio control, not a free dimension: the
// upstream dataset is keyed on exactly these two strings.
const (
	FilterEverRemote  = "Yes (currently or at some point in time)"
	FilterNeverRemote = "No, never"
)

// MultiSelectSuffix marks a field identifier as a multi-select family. The
// identifier is then a prefix shared by all of the family's choice keys
// (e.g. "15_" covers "15_Senior manager", "15_Apprentice", ...).
const MultiSelectSuffix = "_"

// NonAdopterField identifies Q25, the only question asked of respondents whose
// organisations never adopted remote working.
const NonAdopterField = "25_"

// WorkforceBucketField is the disaggregation identifier with a fixed ordinal
// display order (see BucketOrder).
const WorkforceBucketField = "7_Response_Bucket"

// Defaults applied by the resolver when a selection is empty or invalid.
const (
	DefaultFilter = FilterEverRemote
	DefaultDisagg = WorkforceBucketField
)

// BucketOrder is the required category order whenever the disaggregation
// dimension is the workforce-size bucket, regardless of how the store happens
// to order its rows.
var BucketOrder = []string{
	"Micro (1–9)",
	"Small (10–49)",
	"Medium (50–249)",
	"Large (250+)",
}

// IsMultiSelect reports whether a field identifier denotes a multi-select
// question family rather than a single column.
func IsMultiSelect(field string) bool {
	return strings.HasSuffix(field, MultiSelectSuffix)
}

// Catalog is the immutable survey configuration handed to the resolver and the
// chart builder at construction time. There is no process-global state; tests
// construct their own instances.
type Catalog struct {
	questions []Option
	disaggs   []Option
	filters   []Option
}

// Default returns the production catalog for the remote/hybrid-work survey.
// Labels and identifiers mirror the upstream questionnaire; the en dashes in
// the labels are part of the published question titles.
func Default() *Catalog {
	return &Catalog{
		questions: []Option{
			{"Q11 – Policy change since pandemic", "11_Response"},
			{"Q12 – Likelihood of return-to-office", "12_Response"},
			{"Q13 – Proportion working remotely", "13_Response"},
			{"Q14 – Frequency of WFH", "14_Response"},
			{"Q15 – Roles in organization - multi-select", "15_"},
			{"Q16 – Benefits of WFH - multi-select", "16_"},
			{"Q17 – Difficulties in Management - multi-select", "17_"},
			{"Q18 – Impact: Productivity", "18_Productivity"},
			{"Q18 – Impact: Innovation", "18_Innovation"},
			{"Q18 – Impact: Staff recruitment and retention", "18_Staff recruitment and retention"},
			{"Q18 – Impact: Staff wellbeing", "18_Staff wellbeing"},
			{"Q18 – Impact: Training and career development", "18_Training and career development"},
			{"Q18 – Impact: Team collaboration", "18_Team collaboration"},
			{"Q18 – Impact: Overall business growth", "18_Overall business growth"},
			{"Q19 – Idea development and collaboration", "19_Idea development and collaboration (e.g. brainstorming, informal knowledge sharing)"},
			{"Q19 – Speed and implementation of innovation", "19_Speed and implementation of innovation (e.g. introduction of new products or services)"},
			{"Q19 – Adoption of new technologies/tools", "19_Adoption of new technologies or tools"},
			{"Q19 – Access to external collaborators", "19_Access to external collaborators (e.g. partners, clients)"},
			{"Q19 – Access to new talent/skills", "19_Access to new talent or innovation-related skills"},
			{"Q19 – Other (please select/specify)", "19_Other (please select and specify below)"},
			{"Q19 – Other (please specify)", "19_Other (please specify)"},
			{"Q20 – Barriers to scaling - multi-select", "20_"},
			{"Q21 – Technologies of enablement - multi-select", "21_"},
			{"Q23 – Barriers to scaling - multi-select", "23_"},
			{"Q24 – Adoption of AI impact on remote work - multi-select", "24_"},
			{"Q25 – Reasons for non-adoption - multi-select", NonAdopterField},
		},
		disaggs: []Option{
			{"Years since business incorporated", "2_Response"},
			{"Sector", "3_Response"},
			{"Workforce size (Q7 buckets)", WorkforceBucketField},
		},
		filters: []Option{
			{FilterEverRemote, FilterEverRemote},
			{FilterNeverRemote, FilterNeverRemote},
		},
	}
}

// Questions returns the full question catalog in declaration order. Callers
// must not modify the returned slice.
func (c *Catalog) Questions() []Option { return c.questions }

// Disaggregations returns the disaggregation catalog in declaration order.
func (c *Catalog) Disaggregations() []Option { return c.disaggs }

// Filters returns the Q8 filter options.
func (c *Catalog) Filters() []Option { return c.filters }

// QuestionLabel returns the label declared for a field identifier, or the
// identifier itself when it is not in the catalog.
func (c *Catalog) QuestionLabel(field string) string {
	for _, o := range c.questions {
		if o.Value == field {
			return o.Label
		}
	}
	return field
}

// HasDisagg reports whether id is a declared disaggregation identifier.
func (c *Catalog) HasDisagg(id string) bool {
	for _, o := range c.disaggs {
		if o.Value == id {
			return true
		}
	}
	return false
}

// HasFilter reports whether v is a declared Q8 filter value.
func (c *Catalog) HasFilter(v string) bool {
	for _, o := range c.filters {
		if o.Value == v {
			return true
		}
	}
	return false
}
