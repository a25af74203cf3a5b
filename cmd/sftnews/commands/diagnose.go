package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/sftnews/internal/output"
	"github.com/jmylchreest/sftnews/pkg/article"
	"github.com/jmylchreest/sftnews/pkg/cleaner/sftnews"
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose",
	Short: "Report articles with empty titles or contents",
	Long: `Count articles whose title, content or both are empty.

Examples:
  sftnews diagnose -i cleaned.csv
  sftnews diagnose -i cleaned.csv --urls
  sftnews diagnose -i cleaned.csv --format json`,
	RunE: runDiagnose,
}

func init() {
	rootCmd.AddCommand(diagnoseCmd)

	flags := diagnoseCmd.Flags()
	flags.StringP("input", "i", "", "article table")
	flags.StringP("format", "f", "", "print the full report as json or yaml instead of counts")
	flags.Bool("urls", false, "list the URLs in each group")
}

func runDiagnose(cmd *cobra.Command, _ []string) error {
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
	r := sftnews.CheckEmpty(articles)
	out := cmd.OutOrStdout()

	if cfg.Format != "" {
		f, err := output.ParseFormat(cfg.Format)
		if err != nil {
			return err
		}
		if f != output.FormatJSON && f != output.FormatYAML {
			return fmt.Errorf("diagnose supports json or yaml, got %s", f)
		}
		w, err := output.NewWriter(out, f)
		if err != nil {
			return err
		}
		if err := w.Write(r); err != nil {
			return err
		}
		return w.Close()
	}

	if err := r.Print(out); err != nil {
		return err
	}
	if listURLs, _ := cmd.Flags().GetBool("urls"); listURLs {
		return printURLGroups(out, r)
	}
	return nil
}

func printURLGroups(w io.Writer, r sftnews.EmptyReport) error {
	groups := []struct {
		name string
		urls []string
	}{
		{"Empty Title & Content", r.Both},
		{"Only Empty Title", r.OnlyTitle},
		{"Only Empty Content", r.OnlyContent},
	}
	for _, g := range groups {
		if len(g.urls) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "\n%s:\n", g.name); err != nil {
			return err
		}
		for _, u := range g.urls {
			if _, err := fmt.Fprintf(w, "  %s\n", u); err != nil {
				return err
			}
		}
	}
	return nil
}
