package ingest

import (
	"os"
	"path/filepath"
	"testing"
)

func writeBatch(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCombine(t *testing.T) {
	dir := t.TempDir()
	first := writeBatch(t, dir, "batch_1.json", `[
  {"url": "u1", "title": "One", "content": "first body", "status": "Success", "error_msg": "", "total_title_words": 99},
  {"url": "u2", "title": "", "content": "", "status": "Failure", "error_msg": "timeout", "total_title_words": null},
  {"url": "u3", "title": " Three ", "content": "third", "status": "Success", "error_msg": ""}
]`)
	second := writeBatch(t, dir, "batch_2.json", `[
  {"url": "u1", "title": "One again", "content": "newer body", "status": "Success", "error_msg": ""}
]`)

	articles, stats, err := Combine([]string{first, second}, CombineOptions{})
	if err != nil {
		t.Fatalf("Combine() error = %v", err)
	}

	if len(articles) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(articles))
	}
	if articles[0].URL != "u1" || articles[0].Title != "One again" {
		t.Errorf("later batch should replace u1 in place, got %+v", articles[0])
	}
	if articles[0].TotalTitleWords != 2 {
		t.Errorf("TotalTitleWords = %d, want 2", articles[0].TotalTitleWords)
	}
	if articles[1].Title != "Three" {
		t.Errorf("Title = %q, want trimmed", articles[1].Title)
	}

	want := CombineStats{Files: 2, Records: 4, Duplicates: 1, Failures: 1, Articles: 2}
	if stats != want {
		t.Errorf("stats = %+v, want %+v", stats, want)
	}
}

func TestCombine_KeepFailures(t *testing.T) {
	dir := t.TempDir()
	path := writeBatch(t, dir, "b.json", `[{"url": "u", "title": "", "content": "", "status": "Failure", "error_msg": "404"}]`)

	articles, _, err := Combine([]string{path}, CombineOptions{KeepFailures: true})
	if err != nil {
		t.Fatalf("Combine() error = %v", err)
	}
	if len(articles) != 1 {
		t.Errorf("expected failure record to be kept, got %d", len(articles))
	}
}

func TestCombine_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := writeBatch(t, dir, "bad.json", `{"not": "an array"}`)

	tests := []struct {
		name  string
		paths []string
	}{
		{"missing file", []string{filepath.Join(dir, "missing.json")}},
		{"bad json", []string{bad}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := Combine(tt.paths, CombineOptions{}); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestCombine_NoFiles(t *testing.T) {
	articles, stats, err := Combine(nil, CombineOptions{})
	if err != nil {
		t.Fatalf("Combine() error = %v", err)
	}
	if articles == nil || len(articles) != 0 || stats.Files != 0 {
		t.Errorf("expected empty result, got %v %+v", articles, stats)
	}
}

func TestCombineDir(t *testing.T) {
	dir := t.TempDir()
	writeBatch(t, dir, "batch_2.json", `[{"url": "u", "title": "second", "content": "x", "status": "Success"}]`)
	writeBatch(t, dir, "batch_1.json", `[{"url": "u", "title": "first", "content": "x", "status": "Success"}]`)
	writeBatch(t, dir, "readme.txt", `not json`)

	articles, stats, err := CombineDir(dir, CombineOptions{})
	if err != nil {
		t.Fatalf("CombineDir() error = %v", err)
	}
	if stats.Files != 2 {
		t.Errorf("Files = %d, want 2", stats.Files)
	}
	if len(articles) != 1 || articles[0].Title != "second" {
		t.Errorf("expected batch_2 to win, got %+v", articles)
	}
}
