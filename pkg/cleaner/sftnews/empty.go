package sftnews

import (
	"fmt"
	"io"

	"github.com/jmylchreest/sftnews/pkg/article"
)

// EmptyReport lists the URLs of articles with empty titles and/or content.
// Emptiness is judged on the derived character counts.
type EmptyReport struct {
	// Both holds rows where title and content are empty.
	Both []string `json:"empty_title_content"`
	// OnlyContent holds rows with empty content and a non-empty title.
	OnlyContent []string `json:"only_empty_content"`
	// OnlyTitle holds rows with an empty title and non-empty content.
	OnlyTitle []string `json:"only_empty_title"`
	// Either holds rows where title or content is empty. It is evaluated on
	// its own predicate rather than assembled from the other three lists.
	Either []string `json:"empty_title_or_content"`
}

// CheckEmpty builds the empty-field report for articles.
func CheckEmpty(articles []article.Article) EmptyReport {
	report := EmptyReport{
		Both:        []string{},
		OnlyContent: []string{},
		OnlyTitle:   []string{},
		Either:      []string{},
	}

	for _, a := range articles {
		noTitle := a.TotalTitleChar == 0
		noContent := a.TotalContentChar == 0

		if noContent && noTitle {
			report.Both = append(report.Both, a.URL)
		}
		if noContent && !noTitle {
			report.OnlyContent = append(report.OnlyContent, a.URL)
		}
		if !noContent && noTitle {
			report.OnlyTitle = append(report.OnlyTitle, a.URL)
		}
		if noContent || noTitle {
			report.Either = append(report.Either, a.URL)
		}
	}

	return report
}

// Print writes the four counts as plain lines.
func (r EmptyReport) Print(w io.Writer) error {
	lines := []struct {
		label string
		count int
	}{
		{"Total Empty Title & Content", len(r.Both)},
		{"Total only Empty Title", len(r.OnlyTitle)},
		{"Total only Empty Content", len(r.OnlyContent)},
		{"Total Empty Title or Content", len(r.Either)},
	}

	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%s: %d\n", l.label, l.count); err != nil {
			return err
		}
	}
	return nil
}
