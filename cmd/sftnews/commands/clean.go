package commands

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/sftnews/pkg/article"
	"github.com/jmylchreest/sftnews/pkg/cleaner/sftnews"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean scraped articles and recompute their counts",
	Long: `Clean a scraped article table.

Rows whose title contains a date marker word are dropped, scraping
artifacts are removed, repeated commas and periods are collapsed, and
character and word counts are recomputed. Empty-field diagnostics for
the cleaned table are printed afterwards.

Examples:
  sftnews clean -i scraped.csv -o cleaned.csv
  sftnews clean -i scraped.csv -o cleaned.csv --strip-html`,
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	addIOFlags(cleanCmd, "output file (default: stdout)")
	flags := cleanCmd.Flags()
	flags.Bool("strip-html", false, "reduce leftover HTML markup to text before cleaning")
	flags.Bool("no-diagnose", false, "skip the empty-field report")
}

func runClean(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := requireInput(cfg); err != nil {
		return err
	}

	articles, err := readArticles(cfg.Input, article.CleanColumns...)
	if err != nil {
		return err
	}

	cleaned, err := cleanArticles(cfg, articles)
	if err != nil {
		return err
	}

	if err := writeArticles(cmd, cfg.Output, cfg.Format, cleaned); err != nil {
		return err
	}

	if skip, _ := cmd.Flags().GetBool("no-diagnose"); skip || cfg.Output == "" || cfg.Output == "-" {
		return nil
	}
	return sftnews.CheckEmpty(cleaned).Print(cmd.OutOrStdout())
}
