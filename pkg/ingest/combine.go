package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/jmylchreest/sftnews/pkg/article"
)

// Scrape outcomes recorded in batch files.
const (
	StatusSuccess = "Success"
	StatusFailure = "Failure"
)

// Record is one entry of a scraped batch file. Count fields in the file are
// ignored and recomputed.
type Record struct {
	URL      string `json:"url"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Status   string `json:"status"`
	ErrorMsg string `json:"error_msg"`
}

// CombineOptions controls Combine.
type CombineOptions struct {
	// KeepFailures keeps records whose status is Failure.
	KeepFailures bool
}

// CombineStats describes a Combine run.
type CombineStats struct {
	Files      int `json:"files"`
	Records    int `json:"records"`
	Duplicates int `json:"duplicates"`
	Failures   int `json:"failures"`
	Articles   int `json:"articles"`
}

// Combine merges batch files in the given order. A URL seen again replaces the
// earlier record but keeps its position.
func Combine(paths []string, opts CombineOptions) ([]article.Article, CombineStats, error) {
	var stats CombineStats
	index := make(map[string]int)
	var out []article.Article

	for _, path := range paths {
		records, err := readBatch(path)
		if err != nil {
			return nil, stats, err
		}
		stats.Files++

		for _, r := range records {
			stats.Records++
			if r.Status == StatusFailure && !opts.KeepFailures {
				stats.Failures++
				continue
			}

			a := article.New(r.URL, strings.TrimSpace(r.Title), strings.TrimSpace(r.Content))
			if i, ok := index[r.URL]; ok {
				stats.Duplicates++
				out[i] = a
				continue
			}
			index[r.URL] = len(out)
			out = append(out, a)
		}
	}

	if out == nil {
		out = []article.Article{}
	}
	stats.Articles = len(out)
	return out, stats, nil
}

// CombineDir merges every .json file directly inside dir in lexical order.
func CombineDir(dir string, opts CombineOptions) ([]article.Article, CombineStats, error) {
	paths, err := BatchFiles(dir)
	if err != nil {
		return nil, CombineStats{}, err
	}
	return Combine(paths, opts)
}

// BatchFiles lists the .json files directly inside dir in lexical order.
func BatchFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read batch dir: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".json") {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	slices.Sort(paths)
	return paths, nil
}

func readBatch(path string) ([]Record, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- path comes from user input
	if err != nil {
		return nil, fmt.Errorf("read batch: %w", err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse batch %s: %w", path, err)
	}
	return records, nil
}
