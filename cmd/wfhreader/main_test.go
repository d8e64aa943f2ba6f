package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sharedplanet/wfh-lse/src/aggregates"
)

func loadStore(t *testing.T, keys ...string) *aggregates.Store {
	t.Helper()
	data := map[string][]map[string]any{}
	for _, k := range keys {
		data[k] = []map[string]any{}
	}
	b, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	path := filepath.Join(t.TempDir(), "aggregates.json")
	if err := os.WriteFile(path, b, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	store, err := aggregates.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return store
}

func TestSummarize(t *testing.T) {
	store := loadStore(t,
		"Yes (currently or at some point in time)|11_Response|7_Response_Bucket",
		"Yes (currently or at some point in time)|11_Response|3_Response",
		"Yes (currently or at some point in time)|15_Senior manager|7_Response_Bucket",
		"Yes (currently or at some point in time)|15_Apprentice|7_Response_Bucket",
		"No, never|25_No suitable roles|7_Response_Bucket",
	)
	s := summarize(store, "")
	if s.Total != 5 {
		t.Fatalf("total = %d", s.Total)
	}
	if s.Filters["Yes (currently or at some point in time)"] != 4 || s.Filters["No, never"] != 1 {
		t.Fatalf("filters = %v", s.Filters)
	}
	if s.Disaggs["7_Response_Bucket"] != 4 || s.Disaggs["3_Response"] != 1 {
		t.Fatalf("disaggs = %v", s.Disaggs)
	}
	if s.Families["15_"] != 2 {
		t.Fatalf("15_ choices = %d", s.Families["15_"])
	}
	if s.Families["25_"] != 1 {
		t.Fatalf("25_ choices = %d", s.Families["25_"])
	}
	if n, ok := s.Families["16_"]; !ok || n != 0 {
		t.Fatalf("16_ should be reported with zero choices: %v", s.Families)
	}
}

func TestSummarizePrefix(t *testing.T) {
	store := loadStore(t,
		"Yes (currently or at some point in time)|11_Response|7_Response_Bucket",
		"Yes (currently or at some point in time)|15_Senior manager|7_Response_Bucket",
		"Yes (currently or at some point in time)|15_Apprentice|3_Response",
	)
	s := summarize(store, "15_")
	if s.Total != 2 {
		t.Fatalf("total = %d", s.Total)
	}
	if len(s.Families) != 1 || s.Families["15_"] != 2 {
		t.Fatalf("families = %v", s.Families)
	}
	if s.Disaggs["7_Response_Bucket"] != 1 || s.Disaggs["3_Response"] != 1 {
		t.Fatalf("disaggs = %v", s.Disaggs)
	}
}
