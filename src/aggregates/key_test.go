package aggregates

import "testing"

func TestKeyRoundTrip(t *testing.T) {
	k := Key{
		Filter: "Yes (currently or at some point in time)",
		Field:  "19_Adoption of new technologies or tools",
		Disagg: "7_Response_Bucket",
	}
	parsed, err := ParseKey(k.String())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed != k {
		t.Fatalf("round trip mismatch: %+v != %+v", parsed, k)
	}
}

func TestParseKeySegmentCount(t *testing.T) {
	for _, s := range []string{"", "a", "a|b", "a|b|c|d"} {
		if _, err := ParseKey(s); err == nil {
			t.Fatalf("expected error for %q", s)
		}
	}
}

func TestFieldsWithPrefix(t *testing.T) {
	path := writeAggregates(t, map[string][]map[string]any{
		"f|15_Senior manager|d": {},
		"f|15_Apprentice|d":     {},
		"f|15_Apprentice|d2":    {}, // same field under a second disagg: one entry, not two
		"f|16_Commute|d":        {},
		"f|11_Response|d":       {},
	})
	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	got := s.FieldsWithPrefix("15_")
	if len(got) != 2 || got[0] != "15_Apprentice" || got[1] != "15_Senior manager" {
		t.Fatalf("prefix scan not sorted/distinct: %v", got)
	}
	if got := s.FieldsWithPrefix("99_"); len(got) != 0 {
		t.Fatalf("expected no matches, got %v", got)
	}
}
