package article

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Required column sets for the pipeline stages.
var (
	// CleanColumns are needed by the cleaner and the empty diagnostics.
	CleanColumns = []string{ColumnURL, ColumnTitle, ColumnContent}

	// GenerateColumns are needed by the dataset generator.
	GenerateColumns = []string{ColumnTitle, ColumnContent}
)

// ReadCSV reads articles from CSV data with a header row.
// Every name in required must appear in the header, otherwise a
// *MissingFieldError is returned. Count columns in the input are ignored;
// counts are always recomputed from the text.
func ReadCSV(r io.Reader, required ...string) ([]Article, error) {
	return readCSV(r, "", required)
}

// ReadCSVFile reads articles from the CSV file at path.
func ReadCSVFile(path string, required ...string) ([]Article, error) {
	f, err := os.Open(path) //#nosec G304 -- CLI tool reads user-specified input file
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	return readCSV(f, path, required)
}

func readCSV(r io.Reader, source string, required []string) ([]Article, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		header = nil
	} else if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}

	for _, field := range required {
		if _, ok := index[field]; !ok {
			return nil, &MissingFieldError{Field: field, Source: source}
		}
	}

	get := func(rec []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return rec[i]
	}

	articles := make([]Article, 0)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(articles)+1, err)
		}
		articles = append(articles, New(
			get(rec, ColumnURL),
			get(rec, ColumnTitle),
			get(rec, ColumnContent),
		))
	}

	return articles, nil
}
