package outlier

import "github.com/jmylchreest/sftnews/pkg/article"

// Keep reports whether a falls within t. Bounds are inclusive.
func (t Threshold) Keep(a article.Article) bool {
	return a.TotalTitleWords >= t.MinTitleWords &&
		a.TotalTitleWords <= t.MaxTitleWords &&
		a.TotalContentWords >= t.MinContentWords &&
		a.TotalContentWords <= t.MaxContentWords
}

// Filter returns the articles whose title and content word counts fall within t.
// The result is a new slice in input order; articles is not modified.
// Word counts are read from the derived fields, so articles must have been
// recounted (cleaned or loaded) beforehand.
func Filter(articles []article.Article, t Threshold) ([]article.Article, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	out := make([]article.Article, 0, len(articles))
	for _, a := range articles {
		if t.Keep(a) {
			out = append(out, a)
		}
	}
	return out, nil
}
