package aggregates

import (
	"os"
	"path/filepath"
	"testing"
)

// Startup must fail fast on a missing or malformed dataset (load errors are fatal).

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aggregates.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for invalid JSON")
	}
}

func TestLoadWrongShape(t *testing.T) {
	// Valid JSON, but values are not lists of row objects.
	path := filepath.Join(t.TempDir(), "aggregates.json")
	if err := os.WriteFile(path, []byte(`{"a|b|c": 42}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for wrong value shape")
	}
}

func TestLoadMalformedKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aggregates.json")
	if err := os.WriteFile(path, []byte(`{"only two|segments": []}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for key with wrong segment count")
	}
}
