package cleaner

import (
	"strings"
)

// ChainCleaner applies multiple cleaners in sequence.
// Rule order matters: the title period rules only produce the expected
// ellipsis when the two-period rule runs before the four-or-more rule.
type ChainCleaner struct {
	cleaners []Cleaner
}

// NewChain creates a new cleaner that applies multiple cleaners in sequence.
// Cleaners are applied in the order provided.
//
// Example:
//
//	title := cleaner.NewChain(
//	    cleaner.NewRemove("artifacts", "&nbsp ", "&zwnj;"),
//	    cleaner.MustReplace("commas", `,+`, ","),
//	)
func NewChain(cleaners ...Cleaner) *ChainCleaner {
	return &ChainCleaner{
		cleaners: cleaners,
	}
}

// Clean applies all cleaners in sequence.
func (c *ChainCleaner) Clean(text string) (string, error) {
	var err error
	for _, cl := range c.cleaners {
		text, err = cl.Clean(text)
		if err != nil {
			return "", err
		}
	}
	return text, nil
}

// Name returns the names of all chained cleaners.
func (c *ChainCleaner) Name() string {
	names := make([]string, len(c.cleaners))
	for i, cl := range c.cleaners {
		names[i] = cl.Name()
	}
	return "chain(" + strings.Join(names, "->") + ")"
}
