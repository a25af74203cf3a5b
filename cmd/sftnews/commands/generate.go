package commands

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/sftnews/pkg/article"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate prompt/completion pairs from articles",
	Long: `Generate a supervised fine-tuning dataset from an article table.

Every article yields two examples: one asking for a headline given the
article, one asking for the article given the headline. Phrasing is
varied from a fixed vocabulary and the result is shuffled with a fixed
seed, so the row order is reproducible.

Examples:
  sftnews generate -i filtered.csv -o sft.csv
  sftnews generate -i filtered.csv -o sft.jsonl --phrase-seed 7 --manifest`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	addIOFlags(generateCmd, "dataset file (required)")
	addGenerateFlags(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := requireInput(cfg); err != nil {
		return err
	}
	if cfg.Output == "" {
		return errNoOutput
	}

	articles, err := readArticles(cfg.Input, article.GenerateColumns...)
	if err != nil {
		return err
	}

	ds, err := generateDataset(cfg, articles)
	if err != nil {
		return err
	}

	m := newManifest(cfg)
	if m != nil {
		m.Counts.Input = len(articles)
	}
	return saveDataset(cmd, cfg, ds, m)
}
