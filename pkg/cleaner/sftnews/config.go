// Package sftnews cleans tables of scraped news articles before they are
// turned into fine-tuning examples. It drops rows with boilerplate titles,
// strips scraping artifacts, normalizes comma and period runs and recomputes
// the derived length columns.
package sftnews

import (
	"fmt"
	"regexp"
)

// Config defines the cleaning options.
type Config struct {
	// InvalidTitleWords mark "today's news" style boilerplate titles.
	// A row is dropped when its title contains any of them (case-sensitive).
	InvalidTitleWords []string `json:"invalid_title_words" yaml:"invalid_title_words" mapstructure:"invalid_title_words"`

	// CharactersToRemove are artifact sequences deleted from title and content.
	// Entries are matched literally, never as regular expressions: write
	// "[U+200E]", not `\[U\+200E\]`.
	CharactersToRemove []string `json:"characters_to_remove" yaml:"characters_to_remove" mapstructure:"characters_to_remove"`

	// StripHTML reduces leftover markup to text before the other rules run.
	StripHTML bool `json:"strip_html" yaml:"strip_html" mapstructure:"strip_html"`
}

// DefaultInvalidTitleWords are Telugu words for "today", "now" and
// "currently" that appear in daily round-up titles.
var DefaultInvalidTitleWords = []string{
	"నేటి",
	"ఈరోజు",
	"ఈనాడు",
	"నేడు",
	"ఇవ్వాళ",
	"ఈ రోజు",
	"ఈ నాడు",
	"ఇప్పుడు",
	"ప్రస్తుతం",
}

// DefaultCharactersToRemove are entity remnants, invisible code points and
// control characters left behind by the scraper.
var DefaultCharactersToRemove = []string{
	"&zwnj ",
	"&nbsp ",
	"[U+200E]",
	"\u200c", // zero-width non-joiner
	"\u00a0", // no-break space
	"\x02",
	"&zwnj;",
}

// DefaultConfig returns the configuration used for the Telugu news corpus.
func DefaultConfig() *Config {
	return &Config{
		InvalidTitleWords:  append([]string(nil), DefaultInvalidTitleWords...),
		CharactersToRemove: append([]string(nil), DefaultCharactersToRemove...),
		StripHTML:          false,
	}
}

var regexEscape = regexp.MustCompile(`\\[\\\[\](){}.*+?^$|]`)

// Validate rejects artifact entries written as escaped regular expressions,
// which would never match as literal text.
func (c *Config) Validate() error {
	for _, seq := range c.CharactersToRemove {
		if regexEscape.MatchString(seq) {
			return fmt.Errorf("characters_to_remove entry %q looks like a regular expression; entries are removed literally", seq)
		}
	}
	return nil
}

// PresetMarkup returns the default configuration with HTML stripping enabled,
// for scrapes whose content still carries tags.
func PresetMarkup() *Config {
	cfg := DefaultConfig()
	cfg.StripHTML = true
	return cfg
}

// Merge merges another config into this one.
// Word and character lists are appended (deduplicated), StripHTML wins if true.
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	merged := *c
	merged.InvalidTitleWords = appendUnique(c.InvalidTitleWords, other.InvalidTitleWords)
	merged.CharactersToRemove = appendUnique(c.CharactersToRemove, other.CharactersToRemove)
	if other.StripHTML {
		merged.StripHTML = true
	}

	return &merged
}

func appendUnique(base, extra []string) []string {
	out := append([]string(nil), base...)
	seen := make(map[string]bool, len(base))
	for _, s := range base {
		seen[s] = true
	}
	for _, s := range extra {
		if !seen[s] {
			out = append(out, s)
			seen[s] = true
		}
	}
	return out
}
