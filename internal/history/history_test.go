package history

import (
	"database/sql"
	"os"
	"testing"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemory()
	defer s.Close()

	// Empty store yields nothing
	entries, err := s.Recent(0)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if entries != nil {
		t.Errorf("expected nil for empty store, got %v", entries)
	}

	if err := s.Append(Entry{Input: "42+", Result: "6"}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := s.Append(Entry{Input: "42*", Result: "8"}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	// Recent returns newest-first
	entries, err = s.Recent(0)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Input != "42*" || entries[1].Input != "42+" {
		t.Errorf("unexpected order: %q, %q", entries[0].Input, entries[1].Input)
	}
	if entries[0].When == 0 {
		t.Error("expected non-zero timestamp")
	}

	// Recent with limit
	entries, err = s.Recent(1)
	if err != nil {
		t.Fatalf("Recent with limit failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry with limit, got %d", len(entries))
	}
	if entries[0].Input != "42*" {
		t.Errorf("expected newest entry, got %q", entries[0].Input)
	}
}

func TestSQLiteStore(t *testing.T) {
	// Create temp file
	f, err := os.CreateTemp("", "lazycalc-test-*.db")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	path := f.Name()
	f.Close()
	defer os.Remove(path)

	s, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("Failed to create SQLite store: %v", err)
	}

	if err := s.Append(Entry{Input: "42+", Result: "6"}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := s.Append(Entry{Input: "02&", Result: "error: unknown operator"}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	// Close and reopen to verify persistence
	s.Close()

	s2, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("Failed to reopen SQLite store: %v", err)
	}
	defer s2.Close()

	entries, err := s2.Recent(0)
	if err != nil {
		t.Fatalf("Recent after reopen failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries after reopen, got %d", len(entries))
	}
	if entries[0].Input != "02&" || entries[1].Input != "42+" {
		t.Errorf("unexpected order: %q, %q", entries[0].Input, entries[1].Input)
	}
	if entries[0].Result != "error: unknown operator" {
		t.Errorf("unexpected result: %q", entries[0].Result)
	}
	if entries[0].When == 0 {
		t.Error("expected non-zero timestamp")
	}

	entries, err = s2.Recent(1)
	if err != nil {
		t.Fatalf("Recent with limit failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 with limit, got %d", len(entries))
	}
}

func TestSQLiteSchemaVersion(t *testing.T) {
	f, err := os.CreateTemp("", "lazycalc-schema-test-*.db")
	if err != nil {
		t.Fatalf("temp file: %v", err)
	}
	path := f.Name()
	f.Close()
	defer os.Remove(path)

	// Create a database with a future schema version manually
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("sql.Open: %v", err)
	}
	db.Exec(`
		CREATE TABLE metadata (key TEXT PRIMARY KEY, value TEXT NOT NULL);
		INSERT INTO metadata (key, value) VALUES ('schema_version', '99');
	`)
	db.Close()

	// NewSQLite must refuse the unknown version
	if _, err := NewSQLite(path); err == nil {
		t.Fatal("expected error for unsupported schema version")
	}
}
