package aggregates

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// writeAggregates marshals rows into a temp aggregates.json and returns its path.
func writeAggregates(t *testing.T, data map[string][]map[string]any) string {
	t.Helper()
	b, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	path := filepath.Join(t.TempDir(), "aggregates.json")
	if err := os.WriteFile(path, b, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadNormalizesRows(t *testing.T) {
	path := writeAggregates(t, map[string][]map[string]any{
		"Yes (currently or at some point in time)|11_Response|3_Response": {
			{"3_Response": "Finance", "11_Response": "Yes, expanded", "Count": 12.0, "Percent": 24.0},
			{"3_Response": "Retail", "11_Response": "Yes, expanded", "Count": 8.0, "Percent": 16.0},
		},
		"Yes (currently or at some point in time)|15_Manager|7_Response_Bucket": {
			{"7_Response_Bucket": "Micro (1–9)", "Count": 3.0, "Percent": 30.0},
		},
	})
	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 keys got %d", s.Len())
	}

	recs, ok := s.Get(Key{
		Filter: "Yes (currently or at some point in time)",
		Field:  "11_Response",
		Disagg: "3_Response",
	})
	if !ok {
		t.Fatalf("expected key present")
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records got %d", len(recs))
	}
	want := Record{Category: "Finance", Answer: "Yes, expanded", Count: 12, Percent: 24.0}
	if recs[0] != want {
		t.Fatalf("record[0] = %+v want %+v", recs[0], want)
	}
	if recs[1].Category != "Retail" || recs[1].Count != 8 || recs[1].Percent != 16.0 {
		t.Fatalf("record[1] = %+v", recs[1])
	}

	// Multi-select choice rows have no answer column; the slot stays empty.
	recs, ok = s.Get(Key{
		Filter: "Yes (currently or at some point in time)",
		Field:  "15_Manager",
		Disagg: "7_Response_Bucket",
	})
	if !ok || len(recs) != 1 {
		t.Fatalf("choice key: ok=%v len=%d", ok, len(recs))
	}
	if recs[0].Answer != "" || recs[0].Category != "Micro (1–9)" {
		t.Fatalf("choice record = %+v", recs[0])
	}
}

func TestGetMissingKey(t *testing.T) {
	path := writeAggregates(t, map[string][]map[string]any{
		"Yes (currently or at some point in time)|11_Response|3_Response": {},
	})
	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, ok := s.Get(Key{Filter: "No, never", Field: "11_Response", Disagg: "7_Response_Bucket"}); ok {
		t.Fatalf("absent key reported present")
	}
}

func TestKeysSorted(t *testing.T) {
	path := writeAggregates(t, map[string][]map[string]any{
		"b|2_|x": {}, "a|1_|x": {}, "c|3_|x": {},
	})
	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	keys := s.Keys()
	if len(keys) != 3 || keys[0] != "a|1_|x" || keys[2] != "c|3_|x" {
		t.Fatalf("keys not sorted: %v", keys)
	}
	// Mutating the copy must not affect the store.
	keys[0] = "zzz"
	if got := s.Keys()[0]; got != "a|1_|x" {
		t.Fatalf("store keys mutated through copy: %q", got)
	}
}

func TestRowsWithMissingCellsLoadAsZeroValues(t *testing.T) {
	path := writeAggregates(t, map[string][]map[string]any{
		"f|q|d": {
			{"d": "Cat"}, // no Count/Percent columns
		},
	})
	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	recs, _ := s.Get(Key{Filter: "f", Field: "q", Disagg: "d"})
	if recs[0].Count != 0 || recs[0].Percent != 0 || recs[0].Category != "Cat" {
		t.Fatalf("unexpected normalization: %+v", recs[0])
	}
}
