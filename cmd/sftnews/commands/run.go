package commands

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/sftnews/internal/logger"
	"github.com/jmylchreest/sftnews/pkg/article"
	"github.com/jmylchreest/sftnews/pkg/cleaner/sftnews"
)

const pipelineSteps = 4

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Clean, filter and generate in one pass",
	Long: `Run the whole pipeline: clean the scraped table, report empty fields,
filter outliers and generate the dataset.

Intermediate tables are only written when --cleaned or --filtered are set.

Examples:
  sftnews run -i scraped.csv -o sft.csv
  sftnews run -i scraped.csv -o sft.csv --cleaned cleaned.csv --manifest`,
	RunE: runPipeline,
}

func init() {
	rootCmd.AddCommand(runCmd)

	addIOFlags(runCmd, "dataset file (required)")
	addThresholdFlags(runCmd)
	addGenerateFlags(runCmd)

	flags := runCmd.Flags()
	flags.Bool("strip-html", false, "reduce leftover HTML markup to text before cleaning")
	flags.String("cleaned", "", "also write the cleaned article table here (csv)")
	flags.String("filtered", "", "also write the filtered article table here (csv)")
}

func runPipeline(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

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

	articles, err := readArticles(cfg.Input, article.CleanColumns...)
	if err != nil {
		return err
	}
	m := newManifest(cfg)

	logger.Step(1, pipelineSteps, "cleaning articles")
	cleaned, err := cleanArticles(cfg, articles)
	if err != nil {
		return err
	}
	if path, _ := cmd.Flags().GetString("cleaned"); path != "" {
		if err := writeArticles(cmd, path, "", cleaned); err != nil {
			return err
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	logger.Step(2, pipelineSteps, "checking empty fields")
	if err := sftnews.CheckEmpty(cleaned).Print(cmd.OutOrStdout()); err != nil {
		return err
	}

	logger.Step(3, pipelineSteps, "filtering outliers")
	filtered, err := filterArticles(cfg, cleaned)
	if err != nil {
		return err
	}
	if path, _ := cmd.Flags().GetString("filtered"); path != "" {
		if err := writeArticles(cmd, path, "", filtered); err != nil {
			return err
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	logger.Step(4, pipelineSteps, "generating dataset")
	ds, err := generateDataset(cfg, filtered)
	if err != nil {
		return err
	}

	if m != nil {
		th := cfg.Threshold
		m.Threshold = &th
		m.Counts.Input = len(articles)
		m.Counts.Cleaned = len(cleaned)
		m.Counts.Filtered = len(filtered)
	}
	return saveDataset(cmd, cfg, ds, m)
}
