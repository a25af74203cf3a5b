package report

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/jmylchreest/sftnews/pkg/outlier"
)

func writeFile(t *testing.T, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sft.csv")
	if err := os.WriteFile(path, bytes.Repeat([]byte("x"), size), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSummarize(t *testing.T) {
	path := writeFile(t, 2048)

	r, err := Summarize(path, 10)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if r.Bytes != 2048 || r.Samples != 10 || r.Path != path {
		t.Errorf("unexpected report %+v", r)
	}

	if _, err := Summarize(filepath.Join(t.TempDir(), "missing.csv"), 0); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReportPrint(t *testing.T) {
	r := Report{Path: "out/sft.csv", Bytes: 3 * 1024 * 1024, Samples: 42}

	var buf bytes.Buffer
	if err := r.Print(&buf); err != nil {
		t.Fatalf("Print() error = %v", err)
	}

	want := []string{
		"Successfully saved dataset to out/sft.csv",
		"Memory Footprint of the Dataset = 3.00 MB",
		"Size of the Dataset = 42 Samples",
		"Size on Disk = 3.0 MiB",
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(want), len(lines), buf.String())
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestCheckSize(t *testing.T) {
	r := Report{Bytes: 2000}

	tests := []struct {
		name    string
		limit   uint64
		wantErr bool
	}{
		{"no limit", 0, false},
		{"under", 5000, false},
		{"exact", 2000, false},
		{"over", 1000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.CheckSize(tt.limit)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckSize() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrOutputTooLarge) {
				t.Errorf("expected ErrOutputTooLarge, got %v", err)
			}
		})
	}
}

func TestManifestRoundTrip(t *testing.T) {
	m := NewManifest()
	if _, err := uuid.Parse(m.RunID); err != nil {
		t.Fatalf("RunID %q is not a UUID: %v", m.RunID, err)
	}

	th := outlier.NewThreshold(1, 2, 3, 4)
	m.Seed = 442
	m.Threshold = &th
	m.Counts = Counts{Input: 5, Cleaned: 4, Filtered: 3}
	m.SetReport(Report{Path: "sft.csv", Bytes: 1024 * 1024, Samples: 6})

	path := ManifestPath(filepath.Join(t.TempDir(), "sft.csv"))
	if !strings.HasSuffix(path, "sft.csv.manifest.json") {
		t.Errorf("ManifestPath() = %q", path)
	}
	if err := m.Write(path); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := ReadManifest(path)
	if err != nil {
		t.Fatalf("ReadManifest() error = %v", err)
	}
	if got.RunID != m.RunID || got.Seed != 442 || got.Counts.Examples != 6 || got.Size != "1.00 MB" {
		t.Errorf("unexpected manifest %+v", got)
	}
	if got.Threshold == nil || *got.Threshold != th {
		t.Errorf("Threshold = %v", got.Threshold)
	}
}

func TestNewManifest_UniqueRunIDs(t *testing.T) {
	if NewManifest().RunID == NewManifest().RunID {
		t.Error("expected distinct run IDs")
	}
}
