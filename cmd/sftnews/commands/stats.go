package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/sftnews/pkg/article"
	"github.com/jmylchreest/sftnews/pkg/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarise article lengths and suggest outlier thresholds",
	Long: `Print the distribution of title and content lengths.

For each column the minimum, maximum, mean, highest-frequency bin and the
values in the left and right quantile tails are shown. With --suggest,
word-count thresholds are derived from the quantiles.

Examples:
  sftnews stats -i cleaned.csv
  sftnews stats -i cleaned.csv --column total_content_words --histogram
  sftnews stats -i cleaned.csv --left-quantile 0.01 --right-quantile 0.99 --suggest`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	flags := statsCmd.Flags()
	flags.StringP("input", "i", "", "article table")
	flags.StringSlice("column", nil, "columns to summarise (default: all count columns)")
	flags.Float64("left-quantile", 0.05, "left tail quantile")
	flags.Float64("right-quantile", 0.95, "right tail quantile")
	flags.Bool("histogram", false, "draw a text histogram per column")
	flags.Int("width", 40, "histogram bar width")
	flags.Int("tail-values", 10, "max values listed per tail")
	flags.Bool("suggest", false, "print suggested word-count thresholds")
}

func runStats(cmd *cobra.Command, _ []string) error {
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

	columns := stats.Columns
	if names, _ := cmd.Flags().GetStringSlice("column"); len(names) > 0 {
		columns, err = parseColumns(names)
		if err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	drawHistogram, _ := flags.GetBool("histogram")
	width, _ := flags.GetInt("width")
	tailValues, _ := flags.GetInt("tail-values")
	out := cmd.OutOrStdout()
	left, right := cfg.Stats.LeftQuantile, cfg.Stats.RightQuantile

	for _, col := range columns {
		values := stats.Values(articles, col)
		if err := printColumn(out, col, values, left, right, tailValues); err != nil {
			return err
		}
		if drawHistogram {
			if err := stats.NewHistogram(values).Render(out, width); err != nil {
				return err
			}
		}
	}

	if suggest, _ := flags.GetBool("suggest"); suggest {
		th := stats.SuggestThreshold(articles, left, right)
		_, err := fmt.Fprintf(out, "\nSuggested thresholds (q%.2f-q%.2f):\n"+
			"  --min-title-words %d --max-title-words %d\n"+
			"  --min-content-words %d --max-content-words %d\n",
			left, right, th.MinTitleWords, th.MaxTitleWords, th.MinContentWords, th.MaxContentWords)
		return err
	}
	return nil
}

func parseColumns(names []string) ([]stats.Column, error) {
	out := make([]stats.Column, 0, len(names))
	for _, name := range names {
		col := stats.Column(strings.TrimSpace(name))
		known := false
		for _, c := range stats.Columns {
			if c == col {
				known = true
				break
			}
		}
		if !known {
			return nil, fmt.Errorf("unknown column %q", name)
		}
		out = append(out, col)
	}
	return out, nil
}

func printColumn(w io.Writer, col stats.Column, values []float64, left, right float64, tailValues int) error {
	s := stats.Describe(values)
	if _, err := fmt.Fprintf(w, "\n%s\n  Count: %d  Min: %.2f  Max: %.2f  Mean: %.2f\n",
		titleCase(string(col)), s.Count, s.Min, s.Max, s.Mean); err != nil {
		return err
	}

	if bin, ok := stats.NewHistogram(values).HighestFrequencyBin(); ok {
		if _, err := fmt.Fprintf(w, "  Highest Frequency Bin: [%.2f, %.2f] (%d)\n", bin.Lo, bin.Hi, bin.Count); err != nil {
			return err
		}
	}

	tails := stats.Tails(values, left, right)
	if _, err := fmt.Fprintf(w, "  Left Tail  (<= %.2f): %s\n", tails.LeftCutoff, formatCounts(tails.Left, tailValues)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "  Right Tail (>= %.2f): %s\n", tails.RightCutoff, formatCounts(tails.Right, tailValues))
	return err
}

func formatCounts(counts []stats.ValueCount, limit int) string {
	if len(counts) == 0 {
		return "-"
	}
	parts := make([]string, 0, min(len(counts), limit)+1)
	for i, vc := range counts {
		if limit > 0 && i == limit {
			parts = append(parts, fmt.Sprintf("... %d more", len(counts)-limit))
			break
		}
		parts = append(parts, fmt.Sprintf("%g:%d", vc.Value, vc.Count))
	}
	return strings.Join(parts, " ")
}

func titleCase(snake string) string {
	words := strings.Split(snake, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
