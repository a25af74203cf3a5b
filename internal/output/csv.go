package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
)

// CSVWriter writes rows as CSV with a single header line.
type CSVWriter struct {
	w             *csv.Writer
	header        []string
	headerWritten bool
}

// NewCSVWriter creates a CSV writer. If header is nil it is taken from the
// first row written.
func NewCSVWriter(w io.Writer, header []string) *CSVWriter {
	return &CSVWriter{
		w:      csv.NewWriter(w),
		header: header,
	}
}

// Write writes a single row. data must implement Row.
func (w *CSVWriter) Write(data any) error {
	row, ok := data.(Row)
	if !ok {
		return fmt.Errorf("csv output needs a Row, got %T", data)
	}

	if w.header == nil {
		w.header = row.Header()
	} else if !slices.Equal(w.header, row.Header()) {
		return fmt.Errorf("csv row columns %v do not match header %v", row.Header(), w.header)
	}
	if err := w.writeHeader(); err != nil {
		return err
	}
	return w.w.Write(row.Record())
}

// WriteAll writes multiple rows.
func (w *CSVWriter) WriteAll(data []any) error {
	for _, item := range data {
		if err := w.Write(item); err != nil {
			return err
		}
	}
	return nil
}

func (w *CSVWriter) writeHeader() error {
	if w.headerWritten || w.header == nil {
		return nil
	}
	w.headerWritten = true
	return w.w.Write(w.header)
}

// Flush writes the header if nothing has been written yet and flushes the buffer.
func (w *CSVWriter) Flush() error {
	if err := w.writeHeader(); err != nil {
		return err
	}
	w.w.Flush()
	return w.w.Error()
}

// Close flushes the writer.
func (w *CSVWriter) Close() error {
	return w.Flush()
}
