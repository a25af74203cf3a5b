package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Preview writes up to limit rows as an aligned table. Cells are flattened to
// one line and truncated to width display columns.
func Preview(w io.Writer, rows []Row, limit, width int) error {
	if len(rows) == 0 {
		return nil
	}
	if limit <= 0 || limit > len(rows) {
		limit = len(rows)
	}
	if width < 4 {
		width = 4
	}

	header := rows[0].Header()
	cells := make([][]string, 0, limit+1)
	cells = append(cells, header)
	for _, r := range rows[:limit] {
		rec := r.Record()
		line := make([]string, len(header))
		for i := range line {
			if i < len(rec) {
				line[i] = runewidth.Truncate(flatten(rec[i]), width, "…")
			}
		}
		cells = append(cells, line)
	}

	widths := make([]int, len(header))
	for _, line := range cells {
		for i, c := range line {
			widths[i] = max(widths[i], runewidth.StringWidth(c))
		}
	}

	for n, line := range cells {
		if err := writeLine(w, line, widths); err != nil {
			return err
		}
		if n == 0 {
			sep := make([]string, len(widths))
			for i, cw := range widths {
				sep[i] = strings.Repeat("-", cw)
			}
			if err := writeLine(w, sep, widths); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeLine(w io.Writer, line []string, widths []int) error {
	padded := make([]string, len(line))
	for i, c := range line {
		padded[i] = runewidth.FillRight(c, widths[i])
	}
	_, err := fmt.Fprintln(w, strings.TrimRight("| "+strings.Join(padded, " | ")+" |", " "))
	return err
}

func flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
