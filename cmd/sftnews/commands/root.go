// Package commands implements the CLI commands for sftnews.
package commands

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/sftnews/internal/config"
	"github.com/jmylchreest/sftnews/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "sftnews",
	Short: "Build supervised fine-tuning datasets from scraped news articles",
	Long: `sftnews turns scraped news articles into prompt/completion pairs
for supervised fine-tuning.

Articles are cleaned of scraping artifacts, rows with date-marker titles
are dropped, outliers are filtered by word count, and every remaining
article yields a headline-generation and an article-generation example.

Examples:
  # Full pipeline from raw scrape to dataset
  sftnews run -i scraped.csv -o sft.csv

  # Inspect word-count distributions before picking thresholds
  sftnews stats -i cleaned.csv --suggest

  # Step by step
  sftnews clean -i scraped.csv -o cleaned.csv
  sftnews filter -i cleaned.csv -o filtered.csv --max-content-words 800
  sftnews generate -i filtered.csv -o sft.jsonl --manifest`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// flagKeys maps CLI flag names to config keys. Only flags defined on the
// running command are bound, so commands can share names without clobbering
// each other's bindings.
var flagKeys = map[string]string{
	"debug":    "debug",
	"quiet":    "quiet",
	"log-json": "log_json",

	"input":           "input",
	"output":          "output",
	"format":          "format",
	"seed":            "seed",
	"phrase-seed":     "phrase_seed",
	"vocabulary":      "vocabulary",
	"manifest":        "manifest",
	"max-output-size": "max_output_size",

	"min-title-words":   "threshold.min_title_words",
	"max-title-words":   "threshold.max_title_words",
	"min-content-words": "threshold.min_content_words",
	"max-content-words": "threshold.max_content_words",

	"strip-html": "cleaner.strip_html",

	"title-selector":       "ingest.title_selector",
	"content-selector":     "ingest.content_selector",
	"readability-fallback": "ingest.readability_fallback",

	"left-quantile":  "stats.left_quantile",
	"right-quantile": "stats.right_quantile",
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default $HOME/.sftnews.yaml)")
	flags.Bool("debug", false, "enable debug logging")
	flags.BoolP("quiet", "q", false, "only log errors")
	flags.Bool("log-json", false, "log as JSON")
}

func setup(cmd *cobra.Command, _ []string) error {
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			_ = viper.BindPFlag(key, f)
		}
	}

	cfgFile, _ := cmd.Flags().GetString("config")
	cfgErr := config.Setup(viper.GetViper(), cfgFile)

	logger.Init(logger.Options{
		Debug:  viper.GetBool("debug"),
		Quiet:  viper.GetBool("quiet"),
		JSON:   viper.GetBool("log_json"),
		Output: cmd.ErrOrStderr(),
	})

	if cfgErr != nil {
		return cfgErr
	}
	if used := viper.ConfigFileUsed(); used != "" {
		logger.Debug("loaded config", "path", used)
	}
	return nil
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Error("command failed", "error", err)
		return err
	}
	return nil
}

func loadConfig() (*config.Config, error) {
	return config.Load(viper.GetViper())
}
