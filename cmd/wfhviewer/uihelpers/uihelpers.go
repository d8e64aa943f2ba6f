// Package uihelpers holds pure helpers for the viewer UI, kept free of fyne
// types so they can be unit tested.
package uihelpers

import "github.com/sharedplanet/wfh-lse/src/catalog"

// OptionLabels projects catalog options to their display labels, in order.
// fyne selects carry plain strings, so the viewer shows labels and maps back
// to identifiers on change.
func OptionLabels(opts []catalog.Option) []string {
	out := make([]string, 0, len(opts))
	for _, o := range opts {
		out = append(out, o.Label)
	}
	return out
}

// ValueForLabel maps a selected display label back to its identifier. Falls
// back to the label itself when it is not in the options, which keeps stale
// widget events harmless: the resolver normalizes unknown values anyway.
func ValueForLabel(opts []catalog.Option, label string) string {
	for _, o := range opts {
		if o.Label == label {
			return o.Value
		}
	}
	return label
}

// LabelForValue maps an identifier to its display label, or returns the
// identifier when it is not in the options.
func LabelForValue(opts []catalog.Option, value string) string {
	for _, o := range opts {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

// ChartWidth derives the chart raster width from the window width, leaving
// room for padding and never dropping below a readable minimum.
func ChartWidth(windowWidth int) int {
	w := windowWidth - 48
	if w < 640 {
		w = 640
	}
	return w
}
