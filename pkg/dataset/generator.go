// Package dataset turns articles into prompt/completion pairs for supervised
// fine-tuning.
//
// Each article yields two examples: a headline task (article in, headline
// out) and an article task (headline in, article out). Prompts wrap the text
// in templated phrasing with randomly chosen word variants.
package dataset

import (
	"errors"
	"math/rand"
	"time"

	"github.com/jmylchreest/sftnews/pkg/article"
)

// DefaultSeed drives the final shuffle when no seed is configured.
const DefaultSeed int64 = 442

// ErrEmptyInput is reported by callers when a dataset is built from no
// articles. CreateDataset itself returns an empty dataset without error.
var ErrEmptyInput = errors.New("no input articles")

// Generator builds datasets. It is not safe for concurrent use because the
// phrase source is shared between calls.
type Generator struct {
	seed    int64
	phrases *rand.Rand
	vocab   Vocabulary
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the seed of the final shuffle.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// WithPhraseSource sets the source used to pick phrase variants.
func WithPhraseSource(src rand.Source) Option {
	return func(g *Generator) {
		g.phrases = rand.New(src)
	}
}

// WithPhraseSeed makes phrase selection reproducible.
func WithPhraseSeed(seed int64) Option {
	return WithPhraseSource(rand.NewSource(seed))
}

// WithVocabulary replaces the phrase set.
func WithVocabulary(v Vocabulary) Option {
	return func(g *Generator) {
		g.vocab = v
	}
}

// New creates a Generator. Phrase selection is unseeded unless
// WithPhraseSource or WithPhraseSeed is given.
func New(opts ...Option) *Generator {
	g := &Generator{
		seed:  DefaultSeed,
		vocab: DefaultVocabulary(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.phrases == nil {
		g.phrases = rand.New(rand.NewSource(time.Now().UnixNano())) //#nosec G404 -- phrase variety, not security
	}
	return g
}

// Seed returns the shuffle seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

func (g *Generator) pick(options []string) string {
	return options[g.phrases.Intn(len(options))]
}

// PromptType1 asks for a headline for the given article text.
func (g *Generator) PromptType1(content string) string {
	start := g.pick(g.vocab.Start)
	news := g.pick(g.vocab.NewsArticleType1)
	title := g.pick(g.vocab.TitleType1)
	end := g.pick(g.vocab.End)
	return start + " " + news + " " + title + " " + end + ":\n" + content
}

// CompletionType1 states that title suits the article.
func (g *Generator) CompletionType1(title string) string {
	start := g.pick(g.vocab.CompletionStart)
	news := g.pick(g.vocab.NewsArticleType1)
	suitable := g.pick(g.vocab.Suitable)
	word := g.pick(g.vocab.TitlePlain)
	return start + " " + news + " " + suitable + " " + word + " '" + title + "'."
}

// PromptType2 asks for an article with the given headline.
func (g *Generator) PromptType2(title string) string {
	start := g.pick(g.vocab.Start)
	word := g.pick(g.vocab.TitleType2)
	news := g.pick(g.vocab.NewsArticleType2)
	end := g.pick(g.vocab.End)
	return start + " " + word + " " + news + " " + end + ":\n" + title
}

// CompletionType2 returns the article text unchanged.
func (g *Generator) CompletionType2(content string) string {
	return content
}

// CreateDataset builds two examples per article: all headline tasks in
// article order, then all article tasks, then a shuffle seeded afresh on every
// call. Identical inputs with identical phrase choices therefore always land
// in the same order.
func (g *Generator) CreateDataset(articles []article.Article) (Dataset, error) {
	if err := g.vocab.Validate(); err != nil {
		return nil, err
	}

	ds := make(Dataset, 0, 2*len(articles))
	for _, a := range articles {
		ds = append(ds, Example{
			Inputs:  g.PromptType1(a.Content),
			Targets: g.CompletionType1(a.Title),
			Task:    TaskHeadline,
		})
	}
	for _, a := range articles {
		ds = append(ds, Example{
			Inputs:  g.PromptType2(a.Title),
			Targets: g.CompletionType2(a.Content),
			Task:    TaskArticle,
		})
	}

	rng := rand.New(rand.NewSource(g.seed)) //#nosec G404 -- reproducible shuffle
	rng.Shuffle(len(ds), func(i, j int) {
		ds[i], ds[j] = ds[j], ds[i]
	})

	return ds, nil
}
