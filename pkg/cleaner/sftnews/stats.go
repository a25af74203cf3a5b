package sftnews

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"
)

// Stats captures metrics about what the cleaner did.
type Stats struct {
	RowsIn  int `json:"rows_in"`
	RowsOut int `json:"rows_out"`

	// DroppedInvalidTitle counts rows removed by the marker-word filter.
	DroppedInvalidTitle int `json:"dropped_invalid_title"`

	// MarkerMatches counts dropped rows per marker word. A title containing
	// two markers is counted under both.
	MarkerMatches map[string]int `json:"marker_matches"`

	TitlesChanged   int `json:"titles_changed"`
	ContentsChanged int `json:"contents_changed"`

	// EmptyTitles and EmptyContents are counted after cleaning.
	EmptyTitles   int `json:"empty_titles"`
	EmptyContents int `json:"empty_contents"`

	TotalDuration time.Duration `json:"total_duration_ns"`
}

// NewStats creates a new Stats instance with initialized maps.
func NewStats() *Stats {
	return &Stats{
		MarkerMatches: make(map[string]int),
	}
}

// RetainedPercent returns the share of input rows that survived cleaning.
func (s *Stats) RetainedPercent() float64 {
	if s.RowsIn == 0 {
		return 0
	}
	return float64(s.RowsOut) / float64(s.RowsIn) * 100
}

// RecordMarker records that a marker word caused a row to be dropped.
func (s *Stats) RecordMarker(word string) {
	s.MarkerMatches[word]++
}

// String returns a human-readable summary of the stats.
func (s *Stats) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Rows: %d -> %d (%.1f%% retained)\n",
		s.RowsIn, s.RowsOut, s.RetainedPercent()))

	sb.WriteString(fmt.Sprintf("Dropped (invalid title): %d\n", s.DroppedInvalidTitle))

	if len(s.MarkerMatches) > 0 {
		sb.WriteString("Dropped by marker: ")
		parts := make([]string, 0, len(s.MarkerMatches))
		for _, word := range slices.Sorted(maps.Keys(s.MarkerMatches)) {
			parts = append(parts, fmt.Sprintf("%s=%d", word, s.MarkerMatches[word]))
		}
		sb.WriteString(strings.Join(parts, ", "))
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Changed: %d titles, %d contents\n", s.TitlesChanged, s.ContentsChanged))

	if s.EmptyTitles > 0 || s.EmptyContents > 0 {
		sb.WriteString(fmt.Sprintf("Empty after cleaning: %d titles, %d contents\n", s.EmptyTitles, s.EmptyContents))
	}

	sb.WriteString(fmt.Sprintf("Timing: total=%v\n", s.TotalDuration.Round(time.Millisecond)))

	return sb.String()
}
