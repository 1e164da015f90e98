package report

import (
	"strings"
	"testing"

	"github.com/rankworks/criterium/internal/topsis"
)

func sampleResult() *topsis.Result {
	return &topsis.Result{
		Columns: []string{"Model", "Price", "Storage", "Topsis Score", "Rank"},
		Rows: []topsis.ResultRow{
			{Cells: []string{"M3", "300", "32"}, Score: 1, Rank: 1},
			{Cells: []string{"M1, deluxe", "250", "16"}, Score: 0.431782, Rank: 2},
			{Cells: []string{"M2", "200", "16"}, Score: 0, Rank: 3},
		},
	}
}

func TestRenderCSV(t *testing.T) {
	out := RenderCSV(sampleResult())
	lines := strings.Split(strings.TrimSpace(out), "\n")

	if len(lines) != 4 {
		t.Fatalf("expected header + 3 rows, got %d lines", len(lines))
	}
	if lines[0] != "Model,Price,Storage,Topsis Score,Rank" {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if lines[1] != "M3,300,32,1.000000,1" {
		t.Errorf("unexpected first row: %s", lines[1])
	}
	// Identifier containing a comma must be quoted.
	if !strings.HasPrefix(lines[2], `"M1, deluxe"`) {
		t.Errorf("expected quoted identifier, got: %s", lines[2])
	}
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(sampleResult())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "Topsis Score") || !strings.Contains(lines[0], "Rank") {
		t.Errorf("header missing result columns: %s", lines[0])
	}
	if !strings.Contains(lines[1], "1.000000") {
		t.Errorf("first row missing score: %s", lines[1])
	}
	// All lines share the same width.
	for i := 1; i < len(lines); i++ {
		if len(lines[i]) != len(lines[0]) {
			t.Errorf("line %d width %d != header width %d", i, len(lines[i]), len(lines[0]))
		}
	}
}

func TestStoreRoundTrip(t *testing.T) {
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	name := NewResultName()
	if !ValidName(name) {
		t.Fatalf("generated name %q does not validate", name)
	}
	if err := s.Save(name, []byte("a,b\n1,2\n")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := s.Read(name)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(data) != "a,b\n1,2\n" {
		t.Errorf("unexpected contents: %q", data)
	}
}

func TestStoreRejectsForeignNames(t *testing.T) {
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	for _, name := range []string{
		"../../etc/passwd",
		"topsis_result_..%2f..%2fsecrets.csv",
		"notes.txt",
		"topsis_result_zzzz.csv",
	} {
		if ValidName(name) {
			t.Errorf("name %q should not validate", name)
		}
		if _, err := s.Read(name); err != ErrNotFound {
			t.Errorf("Read(%q) = %v, want ErrNotFound", name, err)
		}
	}
}

func TestStoreReadMissing(t *testing.T) {
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if _, err := s.Read(NewResultName()); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
