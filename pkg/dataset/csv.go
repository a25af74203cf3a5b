package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jmylchreest/sftnews/pkg/article"
)

// ReadCSV reads a dataset written with the inputs,targets header. Task is
// unknown for rows read back from disk.
func ReadCSV(r io.Reader) (Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read header: %w", err)
	}

	in, out := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")) {
		case ColumnInputs:
			in = i
		case ColumnTargets:
			out = i
		}
	}
	if in < 0 {
		return nil, &article.MissingFieldError{Field: ColumnInputs}
	}
	if out < 0 {
		return nil, &article.MissingFieldError{Field: ColumnTargets}
	}

	ds := make(Dataset, 0)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(ds)+1, err)
		}
		if in >= len(rec) || out >= len(rec) {
			return nil, fmt.Errorf("read row %d: expected %d fields, got %d", len(ds)+1, max(in, out)+1, len(rec))
		}
		ds = append(ds, Example{Inputs: rec[in], Targets: rec[out]})
	}
	return ds, nil
}

// ReadCSVFile reads a dataset from path.
func ReadCSVFile(path string) (Dataset, error) {
	f, err := os.Open(path) //#nosec G304 -- CLI tool reads user-specified input file
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	ds, err := ReadCSV(f)
	if err != nil {
		var mf *article.MissingFieldError
		if errors.As(err, &mf) {
			mf.Source = path
		}
		return nil, err
	}
	return ds, nil
}
