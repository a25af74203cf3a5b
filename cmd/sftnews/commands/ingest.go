package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/sftnews/pkg/article"
	"github.com/jmylchreest/sftnews/pkg/ingest"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [dir-or-file...]",
	Short: "Extract articles from saved HTML pages",
	Long: `Read saved article pages and write an article table.

Title and content are taken from CSS selectors; pages where neither
matches fall back to readability extraction. The URL comes from the
page's canonical link, its og:url, or the file path.

Examples:
  sftnews ingest pages/ -o scraped.csv
  sftnews ingest pages/ -o scraped.csv \
      --title-selector "article h1" --content-selector "article .body p"`,
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)

	flags := ingestCmd.Flags()
	flags.StringP("output", "o", "", "output file (default: stdout)")
	flags.StringP("format", "f", "", "output format: csv, json, jsonl, yaml (default: from output extension)")
	flags.String("title-selector", ingest.DefaultTitleSelector, "CSS selector for the title")
	flags.String("content-selector", ingest.DefaultContentSelector, "CSS selector for the content")
	flags.Bool("readability-fallback", true, "use readability when no selector matches")
}

func runIngest(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return errors.New("ingest needs at least one directory or HTML file")
	}

	e := ingest.NewExtractor(cfg.Ingest)
	var articles []article.Article
	for _, arg := range args {
		if err := cmd.Context().Err(); err != nil {
			return err
		}
		batch, err := extractPath(e, arg)
		if err != nil {
			return err
		}
		articles = append(articles, batch...)
	}

	return writeArticles(cmd, cfg.Output, cfg.Format, articles)
}

func extractPath(e *ingest.Extractor, path string) ([]article.Article, error) {
	if isDir(path) {
		return e.ExtractDir(path)
	}
	a, err := e.ExtractFile(path)
	if err != nil {
		return nil, err
	}
	return []article.Article{a}, nil
}
