package sftnews

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/jmylchreest/sftnews/pkg/article"
	"github.com/jmylchreest/sftnews/pkg/cleaner"
)

// Cleaner cleans article tables.
type Cleaner struct {
	config  *Config
	title   cleaner.Cleaner
	content cleaner.Cleaner
	stats   *Stats
}

// New creates a new Cleaner with the given configuration.
// If config is nil, DefaultConfig() is used.
func New(config *Config) *Cleaner {
	if config == nil {
		config = DefaultConfig()
	}

	var titleRules, contentRules []cleaner.Cleaner
	if config.StripHTML {
		titleRules = append(titleRules, cleaner.NewHTMLText(true))
		contentRules = append(contentRules, cleaner.NewHTMLText(false))
	}

	artifacts := cleaner.NewRemove("artifacts", config.CharactersToRemove...)
	commas := cleaner.MustReplace("commas", `,+`, ",")

	titleRules = append(titleRules,
		artifacts,
		commas,
		cleaner.MustReplace("ellipsis", `\.{2}`, "..."),
		cleaner.MustReplace("long-ellipsis", `\.{4,}`, "..."),
	)
	contentRules = append(contentRules,
		artifacts,
		commas,
		cleaner.MustReplace("periods", `\.{2,}`, "."),
	)

	return &Cleaner{
		config:  config,
		title:   cleaner.NewChain(titleRules...),
		content: cleaner.NewChain(contentRules...),
	}
}

// Name returns the cleaner name for logging.
func (c *Cleaner) Name() string {
	return "sftnews(title=" + c.title.Name() + ", content=" + c.content.Name() + ")"
}

// Clean returns a cleaned copy of articles. The input slice is not modified.
func (c *Cleaner) Clean(articles []article.Article) ([]article.Article, error) {
	result, err := c.CleanWithStats(articles)
	if err != nil {
		return nil, err
	}
	return result.Articles, nil
}

// Result contains the output of a cleaning pass.
type Result struct {
	Articles []article.Article
	Stats    *Stats
}

// CleanWithStats performs cleaning and returns detailed stats.
func (c *Cleaner) CleanWithStats(articles []article.Article) (*Result, error) {
	start := time.Now()
	stats := NewStats()
	stats.RowsIn = len(articles)

	out := make([]article.Article, 0, len(articles))
	for i, a := range articles {
		if c.HasInvalidTitle(a.Title) {
			stats.DroppedInvalidTitle++
			for _, m := range c.markersIn(a.Title) {
				stats.RecordMarker(m)
			}
			continue
		}

		title, err := c.title.Clean(a.Title)
		if err != nil {
			return nil, fmt.Errorf("clean title of row %d: %w", i, err)
		}
		content, err := c.content.Clean(a.Content)
		if err != nil {
			return nil, fmt.Errorf("clean content of row %d: %w", i, err)
		}

		if title != a.Title {
			stats.TitlesChanged++
		}
		if content != a.Content {
			stats.ContentsChanged++
		}

		cleaned := article.New(a.URL, title, content)
		if cleaned.TotalTitleChar == 0 {
			stats.EmptyTitles++
		}
		if cleaned.TotalContentChar == 0 {
			stats.EmptyContents++
		}
		out = append(out, cleaned)
	}

	stats.RowsOut = len(out)
	stats.TotalDuration = time.Since(start)
	c.stats = stats

	return &Result{Articles: out, Stats: stats}, nil
}

// Stats returns the stats from the last Clean operation.
func (c *Cleaner) Stats() *Stats {
	return c.stats
}

// HasInvalidTitle reports whether title contains any configured marker word.
func (c *Cleaner) HasInvalidTitle(title string) bool {
	return slices.ContainsFunc(c.config.InvalidTitleWords, func(word string) bool {
		return word != "" && strings.Contains(title, word)
	})
}

func (c *Cleaner) markersIn(title string) []string {
	var found []string
	for _, word := range c.config.InvalidTitleWords {
		if word != "" && strings.Contains(title, word) {
			found = append(found, word)
		}
	}
	return found
}
