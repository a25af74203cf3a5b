package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/sftnews/internal/config"
	"github.com/jmylchreest/sftnews/internal/logger"
	"github.com/jmylchreest/sftnews/internal/report"
	"github.com/jmylchreest/sftnews/pkg/article"
	"github.com/jmylchreest/sftnews/pkg/cleaner/sftnews"
	"github.com/jmylchreest/sftnews/pkg/dataset"
	"github.com/jmylchreest/sftnews/pkg/outlier"
)

func cleanArticles(cfg *config.Config, articles []article.Article) ([]article.Article, error) {
	c := sftnews.New(cfg.CleanerConfig())
	logger.Debug("cleaning articles", "cleaner", c.Name())

	result, err := c.CleanWithStats(articles)
	if err != nil {
		return nil, fmt.Errorf("clean: %w", err)
	}

	s := result.Stats
	logger.Info("cleaned articles",
		"rows_in", s.RowsIn,
		"rows_out", s.RowsOut,
		"dropped_invalid_title", s.DroppedInvalidTitle,
		"titles_changed", s.TitlesChanged,
		"contents_changed", s.ContentsChanged,
		"duration", s.TotalDuration,
	)
	logger.Debug("cleaner stats\n" + s.String())
	return result.Articles, nil
}

func filterArticles(cfg *config.Config, articles []article.Article) ([]article.Article, error) {
	out, err := outlier.Filter(articles, cfg.Threshold)
	if err != nil {
		return nil, err
	}
	logger.Info("filtered outliers",
		"threshold", cfg.Threshold.String(),
		"rows_in", len(articles),
		"rows_out", len(out),
	)
	return out, nil
}

func generateDataset(cfg *config.Config, articles []article.Article) (dataset.Dataset, error) {
	if len(articles) == 0 {
		logger.Warn("writing empty dataset", "error", fmt.Errorf("generate: %w", dataset.ErrEmptyInput))
	}

	opts, err := cfg.GeneratorOptions()
	if err != nil {
		return nil, err
	}
	g := dataset.New(opts...)

	ds, err := g.CreateDataset(articles)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	counts := ds.Count()
	logger.Info("generated dataset",
		"examples", len(ds),
		"headline", counts[dataset.TaskHeadline],
		"article", counts[dataset.TaskArticle],
		"seed", g.Seed(),
	)
	return ds, nil
}

// saveDataset writes ds, prints the size report and optionally a manifest.
// m may be nil when no manifest was requested.
func saveDataset(cmd *cobra.Command, cfg *config.Config, ds dataset.Dataset, m *report.Manifest) error {
	if cfg.Output == "" || cfg.Output == "-" {
		return errNoOutput
	}
	if err := writeRows(cmd, cfg.Output, cfg.Format, ds, dataset.Example{}.Header()); err != nil {
		return err
	}

	r, err := report.Summarize(cfg.Output, len(ds))
	if err != nil {
		return err
	}
	if err := r.Print(cmd.OutOrStdout()); err != nil {
		return err
	}

	limit, err := cfg.MaxOutputBytes()
	if err != nil {
		return err
	}
	if err := r.CheckSize(limit); err != nil {
		return err
	}

	if m == nil {
		return nil
	}
	format, err := resolveFormat(cfg.Format, cfg.Output)
	if err != nil {
		return err
	}
	counts := ds.Count()
	m.Input = cfg.Input
	m.Format = string(format)
	m.Seed = cfg.Seed
	m.PhraseSeed = cfg.PhraseSeed
	m.Vocabulary = cfg.Vocabulary
	m.Counts.Headline = counts[dataset.TaskHeadline]
	m.Counts.Article = counts[dataset.TaskArticle]
	m.SetReport(r)

	path := report.ManifestPath(cfg.Output)
	if err := m.Write(path); err != nil {
		return err
	}
	logger.Info("wrote manifest", "path", path, "run_id", m.RunID)
	return nil
}

func newManifest(cfg *config.Config) *report.Manifest {
	if !cfg.Manifest {
		return nil
	}
	return report.NewManifest()
}
