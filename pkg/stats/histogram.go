package stats

import (
	"fmt"
	"io"
	"math"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
)

// maxIntegerBins is the largest maximum value that still gets one bin per
// integer. Wider columns fall back to automatic binning.
const maxIntegerBins = 250

// Bin is a half-open [Lo, Hi) interval. The last bin of a histogram also
// includes Hi.
type Bin struct {
	Lo    float64 `json:"lo"`
	Hi    float64 `json:"hi"`
	Count int     `json:"count"`
}

// Histogram is an equal-width histogram.
type Histogram struct {
	Bins []Bin `json:"bins"`
}

// NewHistogram bins values. Columns whose maximum is at most 250 get
// int(max) bins; wider ones use the smaller of the Sturges and
// Freedman-Diaconis bin widths.
func NewHistogram(values []float64) Histogram {
	if len(values) == 0 {
		return Histogram{}
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)
	lo, hi := sorted[0], sorted[len(sorted)-1]

	var n int
	if hi <= maxIntegerBins {
		n = int(hi)
	} else {
		n = autoBins(sorted)
	}
	if n < 1 {
		n = 1
	}

	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}

	width := (hi - lo) / float64(n)
	h := Histogram{Bins: make([]Bin, n)}
	for i := range h.Bins {
		h.Bins[i].Lo = lo + float64(i)*width
		h.Bins[i].Hi = lo + float64(i+1)*width
	}
	h.Bins[n-1].Hi = hi

	for _, v := range sorted {
		i := int((v - lo) / width)
		if i >= n {
			i = n - 1
		}
		h.Bins[i].Count++
	}
	return h
}

func autoBins(sorted []float64) int {
	span := sorted[len(sorted)-1] - sorted[0]
	if span == 0 {
		return 1
	}

	size := float64(len(sorted))
	sturges := span / (math.Log2(size) + 1)
	iqr := quantileSorted(sorted, 0.75) - quantileSorted(sorted, 0.25)
	fd := 2 * iqr / math.Cbrt(size)

	width := sturges
	if fd > 0 && fd < sturges {
		width = fd
	}
	return int(math.Ceil(span / width))
}

// HighestFrequencyBin returns the first bin with the largest count.
func (h Histogram) HighestFrequencyBin() (Bin, bool) {
	if len(h.Bins) == 0 {
		return Bin{}, false
	}
	best := h.Bins[0]
	for _, b := range h.Bins[1:] {
		if b.Count > best.Count {
			best = b
		}
	}
	return best, true
}

// Render writes one line per non-empty bin with a bar scaled to width.
func (h Histogram) Render(w io.Writer, width int) error {
	top, ok := h.HighestFrequencyBin()
	if !ok || top.Count == 0 {
		return nil
	}
	for _, b := range h.Bins {
		if b.Count == 0 {
			continue
		}
		bar := int(math.Round(float64(b.Count) / float64(top.Count) * float64(width)))
		if bar == 0 {
			bar = 1
		}
		if _, err := fmt.Fprintf(w, "[%8.2f, %8.2f) %s %s\n",
			b.Lo, b.Hi, strings.Repeat("#", bar), humanize.Comma(int64(b.Count))); err != nil {
			return err
		}
	}
	return nil
}
