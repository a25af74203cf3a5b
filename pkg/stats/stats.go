// Package stats summarises article length columns so outlier thresholds can
// be chosen from the data.
package stats

import (
	"math"
	"slices"

	"github.com/jmylchreest/sftnews/pkg/article"
	"github.com/jmylchreest/sftnews/pkg/outlier"
)

// Column selects a derived count from an article.
type Column string

// Columns understood by Values.
const (
	TitleChars   Column = article.ColumnTotalTitleChar
	ContentChars Column = article.ColumnTotalContentChar
	TitleWords   Column = article.ColumnTotalTitleWords
	ContentWords Column = article.ColumnTotalContentWords
)

// Columns lists every supported column in table order.
var Columns = []Column{TitleChars, ContentChars, TitleWords, ContentWords}

// Values extracts one column from articles. Unknown columns yield nil.
func Values(articles []article.Article, col Column) []float64 {
	var get func(article.Article) int
	switch col {
	case TitleChars:
		get = func(a article.Article) int { return a.TotalTitleChar }
	case ContentChars:
		get = func(a article.Article) int { return a.TotalContentChar }
	case TitleWords:
		get = func(a article.Article) int { return a.TotalTitleWords }
	case ContentWords:
		get = func(a article.Article) int { return a.TotalContentWords }
	default:
		return nil
	}

	out := make([]float64, len(articles))
	for i, a := range articles {
		out[i] = float64(get(a))
	}
	return out
}

// Summary describes a column.
type Summary struct {
	Count int     `json:"count"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Mean  float64 `json:"mean"`
}

// Describe returns count, min, max and mean of values.
func Describe(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	s := Summary{Count: len(values), Min: values[0], Max: values[0]}
	var sum float64
	for _, v := range values {
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
		sum += v
	}
	s.Mean = sum / float64(len(values))
	return s
}

// Quantile returns the q-th quantile of values using linear interpolation
// between the closest ranks. q is clamped to [0, 1]; empty input yields NaN.
func Quantile(values []float64, q float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	return quantileSorted(sorted, q)
}

func quantileSorted(sorted []float64, q float64) float64 {
	q = math.Max(0, math.Min(1, q))
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	return sorted[lo] + (pos-float64(lo))*(sorted[hi]-sorted[lo])
}

// ValueCount is the number of occurrences of a value.
type ValueCount struct {
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

// TailReport lists the values at or beyond each quantile cutoff.
type TailReport struct {
	LeftQuantile  float64      `json:"left_quantile"`
	RightQuantile float64      `json:"right_quantile"`
	LeftCutoff    float64      `json:"left_cutoff"`
	RightCutoff   float64      `json:"right_cutoff"`
	Left          []ValueCount `json:"left"`
	Right         []ValueCount `json:"right"`
}

// Tails counts values <= the left quantile and >= the right quantile, each
// list sorted by value.
func Tails(values []float64, left, right float64) TailReport {
	r := TailReport{LeftQuantile: left, RightQuantile: right}
	if len(values) == 0 {
		return r
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)
	r.LeftCutoff = quantileSorted(sorted, left)
	r.RightCutoff = quantileSorted(sorted, right)

	for _, vc := range valueCounts(sorted) {
		if vc.Value <= r.LeftCutoff {
			r.Left = append(r.Left, vc)
		}
		if vc.Value >= r.RightCutoff {
			r.Right = append(r.Right, vc)
		}
	}
	return r
}

func valueCounts(sorted []float64) []ValueCount {
	var out []ValueCount
	for _, v := range sorted {
		if n := len(out); n > 0 && out[n-1].Value == v {
			out[n-1].Count++
			continue
		}
		out = append(out, ValueCount{Value: v, Count: 1})
	}
	return out
}

// SuggestThreshold derives word-count bounds from the left and right
// quantiles of the title and content columns. Minimums round up and maximums
// round down so the tails themselves are excluded.
func SuggestThreshold(articles []article.Article, left, right float64) outlier.Threshold {
	if len(articles) == 0 {
		return outlier.DefaultThreshold()
	}

	bounds := func(col Column) (int, int) {
		values := Values(articles, col)
		lo := int(math.Ceil(Quantile(values, left)))
		hi := int(math.Floor(Quantile(values, right)))
		if hi < lo {
			hi = lo
		}
		return lo, hi
	}

	minTitle, maxTitle := bounds(TitleWords)
	minContent, maxContent := bounds(ContentWords)
	return outlier.NewThreshold(minTitle, maxTitle, minContent, maxContent)
}
