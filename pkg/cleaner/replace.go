package cleaner

import (
	"fmt"
	"regexp"
	"strings"
)

// ReplaceCleaner replaces every match of a regular expression.
type ReplaceCleaner struct {
	name    string
	pattern *regexp.Regexp
	repl    string
}

// NewReplace compiles pattern and returns a cleaner replacing each
// non-overlapping match with repl. repl is used literally ($ is not expanded).
func NewReplace(name, pattern, repl string) (*ReplaceCleaner, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile %s pattern %q: %w", name, pattern, err)
	}
	return &ReplaceCleaner{name: name, pattern: re, repl: repl}, nil
}

// MustReplace is like NewReplace but panics on an invalid pattern.
// Use it for compile-time constant patterns only.
func MustReplace(name, pattern, repl string) *ReplaceCleaner {
	c, err := NewReplace(name, pattern, repl)
	if err != nil {
		panic(err)
	}
	return c
}

// Clean replaces all matches.
func (c *ReplaceCleaner) Clean(text string) (string, error) {
	return c.pattern.ReplaceAllLiteralString(text, c.repl), nil
}

// Name returns the rule name.
func (c *ReplaceCleaner) Name() string {
	return c.name
}

// RemoveCleaner deletes fixed character sequences.
// Sequences are removed one after another in the order given, so a removal
// can expose an occurrence of a later sequence but never of an earlier one.
type RemoveCleaner struct {
	name      string
	sequences []string
}

// NewRemove returns a cleaner deleting every occurrence of each sequence.
// Empty sequences are skipped.
func NewRemove(name string, sequences ...string) *RemoveCleaner {
	seqs := make([]string, 0, len(sequences))
	for _, seq := range sequences {
		if seq != "" {
			seqs = append(seqs, seq)
		}
	}
	return &RemoveCleaner{name: name, sequences: seqs}
}

// Clean removes the configured sequences.
func (c *RemoveCleaner) Clean(text string) (string, error) {
	for _, seq := range c.sequences {
		text = strings.ReplaceAll(text, seq, "")
	}
	return text, nil
}

// Name returns the rule name.
func (c *RemoveCleaner) Name() string {
	return c.name
}
