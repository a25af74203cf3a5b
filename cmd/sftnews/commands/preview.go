package commands

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/sftnews/internal/output"
	"github.com/jmylchreest/sftnews/pkg/dataset"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show the first rows of a generated dataset",
	Long: `Print the first rows of a dataset CSV as a table.

Cells are flattened to a single line and truncated to --width display
columns, so Telugu text lines up in a terminal.

Examples:
  sftnews preview -i sft.csv
  sftnews preview -i sft.csv --limit 20 --width 60`,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	flags := previewCmd.Flags()
	flags.StringP("input", "i", "", "dataset CSV with inputs and targets columns")
	flags.IntP("limit", "n", 5, "number of rows to show")
	flags.Int("width", 48, "maximum display width of each cell")
}

func runPreview(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := requireInput(cfg); err != nil {
		return err
	}

	limit, _ := cmd.Flags().GetInt("limit")
	width, _ := cmd.Flags().GetInt("width")

	ds, err := dataset.ReadCSVFile(cfg.Input)
	if err != nil {
		return err
	}

	rows := make([]output.Row, len(ds))
	for i, ex := range ds {
		rows[i] = ex
	}
	return output.Preview(cmd.OutOrStdout(), rows, limit, width)
}
