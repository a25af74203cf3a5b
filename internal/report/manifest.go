package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/jmylchreest/sftnews/internal/version"
	"github.com/jmylchreest/sftnews/pkg/outlier"
)

// ManifestSuffix is appended to the dataset path to name its manifest.
const ManifestSuffix = ".manifest.json"

// Counts tracks rows through the pipeline. Stages that did not run stay zero.
type Counts struct {
	Input    int `json:"input"`
	Cleaned  int `json:"cleaned,omitempty"`
	Filtered int `json:"filtered,omitempty"`
	Examples int `json:"examples"`
	Headline int `json:"headline_examples"`
	Article  int `json:"article_examples"`
}

// Manifest records how a dataset was produced.
type Manifest struct {
	RunID      string             `json:"run_id"`
	CreatedAt  time.Time          `json:"created_at"`
	Build      version.Info       `json:"build"`
	Input      string             `json:"input"`
	Output     string             `json:"output"`
	Format     string             `json:"format"`
	Seed       int64              `json:"seed"`
	PhraseSeed int64              `json:"phrase_seed,omitempty"`
	Vocabulary string             `json:"vocabulary,omitempty"`
	Threshold  *outlier.Threshold `json:"threshold,omitempty"`
	Counts     Counts             `json:"counts"`
	Bytes      int64              `json:"bytes"`
	Size       string             `json:"size"`
}

// NewManifest starts a manifest with a fresh run ID.
func NewManifest() *Manifest {
	return &Manifest{
		RunID:     uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Build:     version.Get(),
	}
}

// SetReport copies the written dataset's path and size.
func (m *Manifest) SetReport(r Report) {
	m.Output = r.Path
	m.Bytes = r.Bytes
	m.Counts.Examples = r.Samples
	m.Size = fmt.Sprintf("%.2f MB", r.MegaBytes())
}

// ManifestPath returns the manifest path for a dataset.
func ManifestPath(output string) string {
	return output + ManifestSuffix
}

// Write saves the manifest as indented JSON.
func (m *Manifest) Write(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// ReadManifest loads a manifest written by Write.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- path comes from user input
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	return &m, nil
}
