// wfhreader is a command line inspection tool for aggregates files: it loads
// the dataset and prints key-space statistics, optionally narrowed to one
// field identifier prefix.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/sharedplanet/wfh-lse/src/aggregates"
	"github.com/sharedplanet/wfh-lse/src/catalog"
)

type summary struct {
	Total    int
	Filters  map[string]int
	Disaggs  map[string]int
	Families map[string]int // multi-select family -> distinct choice count
}

// summarize counts keys per filter and per disaggregation, and sizes each
// multi-select family's discovered choice set. An optional prefix narrows the
// count to matching field identifiers.
func summarize(store *aggregates.Store, prefix string) summary {
	out := summary{
		Filters:  map[string]int{},
		Disaggs:  map[string]int{},
		Families: map[string]int{},
	}
	for _, ks := range store.Keys() {
		k, err := aggregates.ParseKey(ks)
		if err != nil {
			// Load rejects malformed keys, so this cannot happen.
			continue
		}
		if prefix != "" && !strings.HasPrefix(k.Field, prefix) {
			continue
		}
		out.Total++
		out.Filters[k.Filter]++
		out.Disaggs[k.Disagg]++
	}
	for _, q := range catalog.Default().Questions() {
		if !catalog.IsMultiSelect(q.Value) {
			continue
		}
		if prefix != "" && !strings.HasPrefix(q.Value, prefix) {
			continue
		}
		out.Families[q.Value] = len(store.FieldsWithPrefix(q.Value))
	}
	return out
}

func sortedKeys(m map[string]int) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func main() {
	var file string
	var prefix string
	flag.StringVar(&file, "file", "aggregates.json", "Path to the aggregates JSON file")
	flag.StringVar(&prefix, "prefix", "", "Optional field identifier prefix filter (e.g. 15_)")
	flag.Parse()

	store, err := aggregates.Load(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	s := summarize(store, prefix)
	fmt.Printf("Total keys: %d\n", s.Total)
	fmt.Println("Filters:")
	for _, k := range sortedKeys(s.Filters) {
		fmt.Printf("  %s: %d\n", k, s.Filters[k])
	}
	fmt.Println("Disaggregations:")
	for _, k := range sortedKeys(s.Disaggs) {
		fmt.Printf("  %s: %d\n", k, s.Disaggs[k])
	}
	fmt.Println("Multi-select families:")
	for _, k := range sortedKeys(s.Families) {
		fmt.Printf("  %s: %d choices\n", k, s.Families[k])
	}
}
