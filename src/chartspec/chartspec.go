// Package chartspec translates a resolved selection and its aggregate records
// into a renderer-agnostic chart description. The builder is pure: it reads
// the store, never mutates it, and produces the same Spec for the same input.
package chartspec

import (
	"fmt"
	"strings"

	"github.com/sharedplanet/wfh-lse/src/aggregates"
	"github.com/sharedplanet/wfh-lse/src/catalog"
	"github.com/sharedplanet/wfh-lse/src/selection"
)

// NoDataTitle is shown when the resolved selection has no aggregate entry.
// Absence is a displayable state, not an error.
const NoDataTitle = "No data available for this selection."

// DefaultMinLabelPercent is the cutoff below which segment labels are
// omitted. Thin segments cannot fit their text.
const DefaultMinLabelPercent = 3.0

// Segment is one stacked slice of a bar.
type Segment struct {
	// Stack names the legend entry the segment belongs to. Empty for
	// multi-select charts, which have one unnamed segment per bar.
	Stack   string
	Percent float64
	Count   int
	// Label is the rendered annotation, "24.0% (12)", or empty when the
	// segment is below the label cutoff.
	Label string
}

// Bar is one category of the disaggregation dimension with its segments in
// record order.
type Bar struct {
	Category string
	Segments []Segment
}

// Spec is a complete chart description. Bars appear in display order, top to
// bottom.
type Spec struct {
	Title      string
	XAxisTitle string
	Bars       []Bar
	// Legend lists the stack names in first-seen record order. Nil for
	// multi-select and no-data charts.
	Legend []string
	// PinXAxis fixes the value axis to [0,100]. Set for multi-select charts,
	// whose percentages are independent proportions rather than parts of one
	// whole.
	PinXAxis bool
	NoData   bool
}

// Builder turns resolved selections into chart specs against one store.
type Builder struct {
	Store *aggregates.Store

	// MinLabelPercent overrides the label cutoff. Zero applies
	// DefaultMinLabelPercent; a negative value labels every segment.
	MinLabelPercent float64
}

func (b Builder) labelCutoff() float64 {
	if b.MinLabelPercent == 0 {
		return DefaultMinLabelPercent
	}
	if b.MinLabelPercent < 0 {
		return 0
	}
	return b.MinLabelPercent
}

// Build constructs the chart spec for a resolved selection. A selection whose
// key is absent from the store yields a no-data placeholder spec with zero
// bars.
func (b Builder) Build(sel selection.Resolved) Spec {
	records, ok := b.Store.Get(sel.Key())
	if !ok {
		return Spec{Title: NoDataTitle, NoData: true}
	}

	multi := sel.ChoiceVisible && sel.Choice != ""

	var spec Spec
	if multi {
		spec.Title = fmt.Sprintf("%s by %s", strings.TrimPrefix(sel.Choice, sel.Field), sel.Disagg)
		spec.XAxisTitle = "Percentage of respondents"
		spec.PinXAxis = true
	} else {
		spec.Title = fmt.Sprintf("%s by %s (Q8=%s)", sel.Field, sel.Disagg, sel.Filter)
		spec.XAxisTitle = "Percentage of responses"
	}

	cutoff := b.labelCutoff()
	barIndex := make(map[string]int)
	inLegend := make(map[string]bool)
	for _, rec := range records {
		i, seen := barIndex[rec.Category]
		if !seen {
			i = len(spec.Bars)
			barIndex[rec.Category] = i
			spec.Bars = append(spec.Bars, Bar{Category: rec.Category})
		}

		seg := Segment{Percent: rec.Percent, Count: rec.Count}
		if rec.Percent >= cutoff {
			seg.Label = fmt.Sprintf("%.1f%% (%d)", rec.Percent, rec.Count)
		}
		if !multi {
			seg.Stack = rec.Answer
			if !inLegend[rec.Answer] {
				inLegend[rec.Answer] = true
				spec.Legend = append(spec.Legend, rec.Answer)
			}
		}
		spec.Bars[i].Segments = append(spec.Bars[i].Segments, seg)
	}

	if sel.Disagg == catalog.WorkforceBucketField {
		spec.Bars = orderByBucket(spec.Bars)
	}
	return spec
}

// orderByBucket reorders bars into the fixed workforce-size sequence. Bars
// whose category is not a known bucket keep their first-seen order and follow
// the known ones.
func orderByBucket(bars []Bar) []Bar {
	out := make([]Bar, 0, len(bars))
	used := make([]bool, len(bars))
	for _, want := range catalog.BucketOrder {
		for i, bar := range bars {
			if !used[i] && bar.Category == want {
				out = append(out, bar)
				used[i] = true
			}
		}
	}
	for i, bar := range bars {
		if !used[i] {
			out = append(out, bar)
		}
	}
	return out
}
