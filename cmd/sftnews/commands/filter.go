package commands

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/sftnews/pkg/article"
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Drop articles whose word counts fall outside the thresholds",
	Long: `Filter a cleaned article table by title and content word counts.

Bounds are inclusive. Unset bounds come from the config file or the
built-in defaults; use "sftnews stats --suggest" to derive them from data.

Examples:
  sftnews filter -i cleaned.csv -o filtered.csv
  sftnews filter -i cleaned.csv -o filtered.csv \
      --min-title-words 2 --max-title-words 25 --max-content-words 800`,
	RunE: runFilter,
}

func init() {
	rootCmd.AddCommand(filterCmd)

	addIOFlags(filterCmd, "output file (default: stdout)")
	addThresholdFlags(filterCmd)
}

func runFilter(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := requireInput(cfg); err != nil {
		return err
	}

	articles, err := readArticles(cfg.Input, article.GenerateColumns...)
	if err != nil {
		return err
	}

	filtered, err := filterArticles(cfg, articles)
	if err != nil {
		return err
	}

	return writeArticles(cmd, cfg.Output, cfg.Format, filtered)
}
