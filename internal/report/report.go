// Package report prints the post-run dataset summary and writes run manifests.
package report

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
)

// ErrOutputTooLarge is returned by CheckSize when the written dataset exceeds
// the configured limit.
var ErrOutputTooLarge = errors.New("dataset exceeds max output size")

// Report describes a written dataset.
type Report struct {
	Path    string `json:"path"`
	Bytes   int64  `json:"bytes"`
	Samples int    `json:"samples"`
}

// Summarize stats the written dataset at path.
func Summarize(path string, samples int) (Report, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Report{}, fmt.Errorf("stat dataset: %w", err)
	}
	return Report{Path: path, Bytes: info.Size(), Samples: samples}, nil
}

// MegaBytes returns the file size in MiB.
func (r Report) MegaBytes() float64 {
	return float64(r.Bytes) / (1024 * 1024)
}

// Print writes the summary lines.
func (r Report) Print(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"Successfully saved dataset to %s\n"+
			"Memory Footprint of the Dataset = %.2f MB\n"+
			"Size of the Dataset = %d Samples\n"+
			"Size on Disk = %s\n",
		r.Path, r.MegaBytes(), r.Samples, humanize.IBytes(uint64(max(r.Bytes, 0))))
	return err
}

// CheckSize fails when the dataset is larger than limit bytes. A zero limit
// disables the check.
func (r Report) CheckSize(limit uint64) error {
	if limit == 0 || uint64(max(r.Bytes, 0)) <= limit {
		return nil
	}
	return fmt.Errorf("%w: %s > %s", ErrOutputTooLarge,
		humanize.Bytes(uint64(r.Bytes)), humanize.Bytes(limit))
}
