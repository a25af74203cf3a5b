package stats

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/jmylchreest/sftnews/pkg/article"
)

func TestDescribe(t *testing.T) {
	s := Describe([]float64{3, 1, 2, 6})

	if s.Count != 4 || s.Min != 1 || s.Max != 6 || s.Mean != 3 {
		t.Errorf("Describe() = %+v", s)
	}
	if (Describe(nil) != Summary{}) {
		t.Error("expected zero summary for empty input")
	}
}

func TestQuantile(t *testing.T) {
	values := []float64{4, 1, 3, 2}

	tests := []struct {
		q    float64
		want float64
	}{
		{0, 1},
		{1, 4},
		{0.5, 2.5},
		{0.25, 1.75},
		{0.9, 3.7},
		{-1, 1},
		{2, 4},
	}

	for _, tt := range tests {
		got := Quantile(values, tt.q)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Quantile(%v) = %v, want %v", tt.q, got, tt.want)
		}
	}

	if !math.IsNaN(Quantile(nil, 0.5)) {
		t.Error("expected NaN for empty input")
	}
	if values[0] != 4 {
		t.Error("Quantile should not sort the input in place")
	}
}

func TestTails(t *testing.T) {
	values := []float64{1, 1, 2, 3, 4, 5, 5, 5, 9, 10}

	r := Tails(values, 0.1, 0.9)

	if r.LeftCutoff != 1 {
		t.Errorf("LeftCutoff = %v, want 1", r.LeftCutoff)
	}
	if math.Abs(r.RightCutoff-9.1) > 1e-9 {
		t.Errorf("RightCutoff = %v, want 9.1", r.RightCutoff)
	}
	if len(r.Left) != 1 || r.Left[0] != (ValueCount{Value: 1, Count: 2}) {
		t.Errorf("Left = %+v", r.Left)
	}
	if len(r.Right) != 1 || r.Right[0].Value != 10 {
		t.Errorf("Right = %+v", r.Right)
	}
}

func TestTails_Empty(t *testing.T) {
	r := Tails(nil, 0.05, 0.95)
	if r.Left != nil || r.Right != nil {
		t.Errorf("expected empty tails, got %+v", r)
	}
}

func TestValues(t *testing.T) {
	in := []article.Article{article.New("a", "one two", "x")}

	tests := []struct {
		col  Column
		want float64
	}{
		{TitleChars, 7},
		{ContentChars, 1},
		{TitleWords, 2},
		{ContentWords, 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.col), func(t *testing.T) {
			got := Values(in, tt.col)
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("Values() = %v, want [%v]", got, tt.want)
			}
		})
	}

	if Values(in, "nope") != nil {
		t.Error("expected nil for unknown column")
	}
}

func TestSuggestThreshold(t *testing.T) {
	var in []article.Article
	for i := 1; i <= 11; i++ {
		title := strings.TrimSpace(strings.Repeat("t ", i))
		content := strings.TrimSpace(strings.Repeat("c ", i*10))
		in = append(in, article.New("u", title, content))
	}

	th := SuggestThreshold(in, 0.1, 0.9)

	if th.MinTitleWords != 2 || th.MaxTitleWords != 10 {
		t.Errorf("title bounds = [%d,%d], want [2,10]", th.MinTitleWords, th.MaxTitleWords)
	}
	if th.MinContentWords != 20 || th.MaxContentWords != 100 {
		t.Errorf("content bounds = [%d,%d], want [20,100]", th.MinContentWords, th.MaxContentWords)
	}
	if err := th.Validate(); err != nil {
		t.Errorf("suggested threshold invalid: %v", err)
	}
}

func TestSuggestThreshold_Narrow(t *testing.T) {
	in := []article.Article{
		article.New("a", "x y", "a b c"),
		article.New("b", "x y z", "a b c d"),
	}

	th := SuggestThreshold(in, 0.4, 0.6)
	if err := th.Validate(); err != nil {
		t.Errorf("expected a valid threshold, got %v", err)
	}
}

func TestHistogram_IntegerBins(t *testing.T) {
	h := NewHistogram([]float64{1, 2, 2, 3, 4})

	if len(h.Bins) != 4 {
		t.Fatalf("expected 4 bins, got %d", len(h.Bins))
	}

	total := 0
	for _, b := range h.Bins {
		total += b.Count
	}
	if total != 5 {
		t.Errorf("bins hold %d values, want 5", total)
	}
	if h.Bins[3].Hi != 4 || h.Bins[3].Count != 1 {
		t.Errorf("last bin should include the maximum: %+v", h.Bins[3])
	}

	top, ok := h.HighestFrequencyBin()
	if !ok {
		t.Fatal("expected a highest-frequency bin")
	}
	if top.Count != 2 || top.Lo != 1.75 {
		t.Errorf("HighestFrequencyBin() = %+v", top)
	}
}

func TestHistogram_AutoBins(t *testing.T) {
	values := make([]float64, 0, 1000)
	for i := 0; i < 1000; i++ {
		values = append(values, float64(i))
	}

	h := NewHistogram(values)

	// Sturges gives 11 bins for 1000 values; Freedman-Diaconis is wider here.
	if len(h.Bins) != 11 {
		t.Errorf("expected 11 bins, got %d", len(h.Bins))
	}

	total := 0
	for _, b := range h.Bins {
		total += b.Count
	}
	if total != len(values) {
		t.Errorf("bins hold %d values, want %d", total, len(values))
	}
}

func TestHistogram_Degenerate(t *testing.T) {
	if len(NewHistogram(nil).Bins) != 0 {
		t.Error("expected no bins for empty input")
	}

	h := NewHistogram([]float64{0, 0, 0})
	if len(h.Bins) != 1 || h.Bins[0].Count != 3 {
		t.Errorf("expected a single bin with every value, got %+v", h.Bins)
	}
}

func TestHistogram_Render(t *testing.T) {
	h := NewHistogram([]float64{1, 2, 2})

	var buf bytes.Buffer
	if err := h.Render(&buf, 10); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[1], "##########") {
		t.Errorf("expected the fullest bin to have a full bar: %q", lines[1])
	}
}
