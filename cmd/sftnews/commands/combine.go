package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/sftnews/internal/logger"
	"github.com/jmylchreest/sftnews/pkg/ingest"
)

var combineCmd = &cobra.Command{
	Use:   "combine [dir-or-file...]",
	Short: "Merge scraped JSON batch files into one article table",
	Long: `Merge the JSON batch files written by the scraper.

Each batch is an array of {url, title, content, status, error_msg}
records. Later batches win for repeated URLs and failed scrapes are
skipped unless --keep-failures is set. Directories contribute every .json
file they contain, in name order.

Examples:
  sftnews combine batches/ -o scraped.csv
  sftnews combine batch_1.json batch_2.json -o scraped.csv --keep-failures`,
	RunE: runCombine,
}

func init() {
	rootCmd.AddCommand(combineCmd)

	flags := combineCmd.Flags()
	flags.StringP("output", "o", "", "output file (default: stdout)")
	flags.StringP("format", "f", "", "output format: csv, json, jsonl, yaml (default: from output extension)")
	flags.Bool("keep-failures", false, "keep records whose scrape failed")
}

func runCombine(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return errors.New("combine needs at least one directory or JSON file")
	}

	keep, _ := cmd.Flags().GetBool("keep-failures")
	opts := ingest.CombineOptions{KeepFailures: keep}

	var paths []string
	for _, arg := range args {
		if !isDir(arg) {
			paths = append(paths, arg)
			continue
		}
		files, err := ingest.BatchFiles(arg)
		if err != nil {
			return err
		}
		paths = append(paths, files...)
	}

	articles, stats, err := ingest.Combine(paths, opts)
	if err != nil {
		return err
	}
	logger.Info("combined batches",
		"files", stats.Files,
		"records", stats.Records,
		"duplicates", stats.Duplicates,
		"failures_skipped", stats.Failures,
		"articles", stats.Articles,
	)

	return writeArticles(cmd, cfg.Output, cfg.Format, articles)
}
