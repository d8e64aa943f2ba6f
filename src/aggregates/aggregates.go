// Package aggregates loads and serves the pre-aggregated survey dataset.
//
// The input file is a JSON object mapping composite keys of the form
// "{filter}|{field}|{disagg}" to ordered lists of row objects produced by an
// upstream aggregation step. Rows are normalized into typed Records at load
// time; after Load the store is immutable and safe for concurrent readers.
package aggregates

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// KeySeparator joins the three segments of a composite aggregate key.
const KeySeparator = "|"

// Key addresses one ordered list of aggregate records.
type Key struct {
	Filter string // Q8 filter value, e.g. "Yes (currently or at some point in time)"
	Field  string // question field identifier, or a multi-select choice identifier
	Disagg string // disaggregation identifier, e.g. "7_Response_Bucket"
}

// String renders the key in the file's composite form.
func (k Key) String() string {
	return k.Filter + KeySeparator + k.Field + KeySeparator + k.Disagg
}

// ParseKey splits a composite key into its three segments.
func ParseKey(s string) (Key, error) {
	parts := strings.Split(s, KeySeparator)
	if len(parts) != 3 {
		return Key{}, fmt.Errorf("aggregate key %q: want 3 %q-separated segments, got %d", s, KeySeparator, len(parts))
	}
	return Key{Filter: parts[0], Field: parts[1], Disagg: parts[2]}, nil
}

// Record is one bar segment: the share of respondents falling in one category
// of the disaggregation dimension and, for single-select questions, one answer
// level of the selected question.
type Record struct {
	// Category is the value of the disaggregation dimension (the bar group).
	Category string `json:"category"`
	// Answer is the answer level of the question column. Empty for
	// multi-select choice rows, which carry no per-answer split.
	Answer string `json:"answer,omitempty"`
	// Count is the absolute respondent count behind the segment.
	Count int `json:"count"`
	// Percent is the share in [0,100].
	Percent float64 `json:"percent"`
}

// Store is the immutable aggregate lookup table. It is loaded once at startup
// and never written afterwards, so it may be shared across goroutines without
// locking.
type Store struct {
	entries map[string][]Record
	keys    []string // sorted key space
	fields  []string // sorted distinct field segments
}

// Load reads and normalizes an aggregates file. Any I/O failure, JSON syntax
// error or malformed key is fatal here: a process must not start on a broken
// dataset.
func Load(path string) (*Store, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read aggregates: %w", err)
	}
	var raw map[string][]map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("parse aggregates %s: %w", path, err)
	}
	s := &Store{
		entries: make(map[string][]Record, len(raw)),
		keys:    make([]string, 0, len(raw)),
	}
	fieldSet := make(map[string]struct{})
	for ks, rows := range raw {
		k, err := ParseKey(ks)
		if err != nil {
			return nil, fmt.Errorf("aggregates %s: %w", path, err)
		}
		recs := make([]Record, 0, len(rows))
		for _, row := range rows {
			recs = append(recs, normalizeRow(k, row))
		}
		s.entries[ks] = recs
		s.keys = append(s.keys, ks)
		fieldSet[k.Field] = struct{}{}
	}
	sort.Strings(s.keys)
	s.fields = make([]string, 0, len(fieldSet))
	for f := range fieldSet {
		s.fields = append(s.fields, f)
	}
	sort.Strings(s.fields)
	return s, nil
}

// normalizeRow converts one raw row into a Record using the key to locate the
// dynamically named category and answer columns. Beyond key shape the file is
// trusted; absent or mistyped cells yield zero values rather than errors.
func normalizeRow(k Key, row map[string]any) Record {
	var r Record
	if v, ok := row["Count"].(float64); ok {
		r.Count = int(v)
	}
	if v, ok := row["Percent"].(float64); ok {
		r.Percent = v
	}
	if v, ok := row[k.Disagg].(string); ok {
		r.Category = v
	}
	if v, ok := row[k.Field].(string); ok {
		r.Answer = v
	}
	return r
}

// Get returns the ordered records stored under k. The second result reports
// whether the key exists; an absent key is an expected, displayable state, not
// an error. Callers must treat the returned slice as read-only.
func (s *Store) Get(k Key) ([]Record, bool) {
	recs, ok := s.entries[k.String()]
	return recs, ok
}

// Len reports the number of keys in the store.
func (s *Store) Len() int { return len(s.entries) }

// Keys returns a copy of the sorted key space.
func (s *Store) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// FieldsWithPrefix returns the distinct field segments of the key space that
// start with prefix, sorted. Multi-select questions use this to discover their
// choice identifiers, which are not declared anywhere else in the dataset.
func (s *Store) FieldsWithPrefix(prefix string) []string {
	var out []string
	for _, f := range s.fields {
		if strings.HasPrefix(f, prefix) {
			out = append(out, f)
		}
	}
	return out
}
