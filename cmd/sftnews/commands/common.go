package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/sftnews/internal/config"
	"github.com/jmylchreest/sftnews/internal/logger"
	"github.com/jmylchreest/sftnews/internal/output"
	"github.com/jmylchreest/sftnews/pkg/article"
)

var (
	errNoInput  = errors.New("no input given: use --input or set input in the config file")
	errNoOutput = errors.New("no output given: use --output or set output in the config file")
)

func addIOFlags(cmd *cobra.Command, outputHelp string) {
	flags := cmd.Flags()
	flags.StringP("input", "i", "", "input file")
	flags.StringP("output", "o", "", outputHelp)
	flags.StringP("format", "f", "", "output format: csv, json, jsonl, yaml (default: from output extension)")
}

func addThresholdFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.Int("min-title-words", 0, "minimum title words (inclusive)")
	flags.Int("max-title-words", 0, "maximum title words (inclusive)")
	flags.Int("min-content-words", 0, "minimum content words (inclusive)")
	flags.Int("max-content-words", 0, "maximum content words (inclusive)")
}

func addGenerateFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.Int64("seed", 0, "shuffle seed (default 442)")
	flags.Int64("phrase-seed", 0, "seed for phrase variants (0 = random)")
	flags.String("vocabulary", "", "YAML file overriding prompt phrases")
	flags.Bool("manifest", false, "write <output>.manifest.json next to the dataset")
	flags.String("max-output-size", "", "fail if the dataset file is larger than this (e.g. 500MB)")
}

func requireInput(cfg *config.Config) error {
	if cfg.Input == "" {
		return errNoInput
	}
	return nil
}

func readArticles(path string, required ...string) ([]article.Article, error) {
	done := logger.Timed("read articles", "path", path)
	defer done()

	articles, err := article.ReadCSVFile(path, required...)
	if err != nil {
		return nil, err
	}
	logger.Info("loaded articles", "path", path, "rows", len(articles))
	return articles, nil
}

func resolveFormat(name, path string) (output.Format, error) {
	if name != "" {
		return output.ParseFormat(name)
	}
	return output.FormatFromPath(path), nil
}

// createOutput opens path for writing, creating parent directories. An empty
// path or "-" writes to the command's stdout.
func createOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, nil, fmt.Errorf("create output dir: %w", err)
		}
	}
	f, err := os.Create(path) //#nosec G304 -- CLI tool writes user-specified output file
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, f.Close, nil
}

func writeRows[T output.Row](cmd *cobra.Command, path, format string, rows []T, header []string) error {
	f, err := resolveFormat(format, path)
	if err != nil {
		return err
	}

	dst, closeFn, err := createOutput(cmd, path)
	if err != nil {
		return err
	}

	w, err := output.NewWriter(dst, f, output.WithHeader(header))
	if err != nil {
		_ = closeFn()
		return err
	}
	if err := w.WriteAll(output.Items(rows)); err != nil {
		_ = closeFn()
		return fmt.Errorf("write output: %w", err)
	}
	if err := w.Close(); err != nil {
		_ = closeFn()
		return fmt.Errorf("write output: %w", err)
	}
	if err := closeFn(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}

	if path != "" && path != "-" {
		logger.Info("wrote output", "path", path, "rows", len(rows), "format", f)
	}
	return nil
}

func writeArticles(cmd *cobra.Command, path, format string, articles []article.Article) error {
	return writeRows(cmd, path, format, articles, article.Article{}.Header())
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
