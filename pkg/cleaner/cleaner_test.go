package cleaner

import (
	"errors"
	"strings"
	"testing"
)

// --- ReplaceCleaner Tests ---

func TestReplaceCleaner_Clean(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		repl    string
		input   string
		want    string
	}{
		{"collapse_commas", `,+`, ",", "a,,,b,c", "a,b,c"},
		{"two_periods_to_ellipsis", `\.{2}`, "...", "a..b", "a...b"},
		{"four_or_more_periods", `\.{4,}`, "...", "a.......b", "a...b"},
		{"content_periods", `\.{2,}`, ".", "a....b", "a.b"},
		{"literal_dollar", `x`, "$1", "axb", "a$1b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewReplace(tt.name, tt.pattern, tt.repl)
			if err != nil {
				t.Fatalf("NewReplace() error = %v", err)
			}
			got, err := c.Clean(tt.input)
			if err != nil {
				t.Fatalf("Clean() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewReplace_InvalidPattern(t *testing.T) {
	_, err := NewReplace("bad", "[invalid", "")
	if err == nil {
		t.Fatal("expected error for invalid pattern")
	}
	if !strings.Contains(err.Error(), "bad") {
		t.Errorf("expected error to name the rule, got %v", err)
	}
}

func TestMustReplace_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected MustReplace to panic on invalid pattern")
		}
	}()
	MustReplace("bad", "(", "")
}

func TestReplaceCleaner_Idempotent(t *testing.T) {
	c := MustReplace("commas", `,+`, ",")

	once, _ := c.Clean("a,,b,,,,c")
	twice, _ := c.Clean(once)
	if once != twice {
		t.Errorf("second pass changed text: %q -> %q", once, twice)
	}
}

// --- RemoveCleaner Tests ---

func TestRemoveCleaner_Clean(t *testing.T) {
	c := NewRemove("artifacts", "&zwnj ", "&nbsp ", "[U+200E]", "\u200c", "\u00a0", "\x02", "", "&zwnj;")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no_artifacts", "Cats and dogs.", "Cats and dogs."},
		{"entity_with_space", "a&nbsp b", "ab"},
		{"bracketed_code_point", "x[U+200E]y", "xy"},
		{"zero_width_non_joiner", "a\u200cb", "ab"},
		{"non_breaking_space", "a\u00a0b", "ab"},
		{"entity_with_semicolon", "a&zwnj;b", "ab"},
		{"several", "&zwnj a&nbsp b\u00a0c", "abc"},
		{"control_char", "a\x02b", "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Clean(tt.input)
			if err != nil {
				t.Fatalf("Clean() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRemoveCleaner_OnlyEmptySequences(t *testing.T) {
	c := NewRemove("empty", "", "")

	got, err := c.Clean("unchanged")
	if err != nil {
		t.Fatalf("Clean() error = %v", err)
	}
	if got != "unchanged" {
		t.Errorf("Clean() = %q, want %q", got, "unchanged")
	}
}

// --- HTMLTextCleaner Tests ---

func TestHTMLTextCleaner_PlainTextUntouched(t *testing.T) {
	c := NewHTMLText(true)

	input := "a&nbsp b  <- not a tag"
	got, err := c.Clean(input)
	if err != nil {
		t.Fatalf("Clean() error = %v", err)
	}
	if got != input {
		t.Errorf("Clean() = %q, want %q", got, input)
	}
}

func TestHTMLTextCleaner_StripsMarkup(t *testing.T) {
	c := NewHTMLText(true)

	got, err := c.Clean("<p>First</p><p>Second <b>bold</b></p><script>var x;</script>")
	if err != nil {
		t.Fatalf("Clean() error = %v", err)
	}
	if got != "First Second bold" {
		t.Errorf("Clean() = %q, want %q", got, "First Second bold")
	}
}

func TestHTMLTextCleaner_Name(t *testing.T) {
	if got := NewHTMLText(false).Name(); got != "html-text" {
		t.Errorf("Name() = %q, want %q", got, "html-text")
	}
}

// --- ChainCleaner Tests ---

func TestChainCleaner_Empty(t *testing.T) {
	c := NewChain()

	input := "unchanged content"
	got, err := c.Clean(input)
	if err != nil {
		t.Fatalf("Clean() error = %v", err)
	}

	if got != input {
		t.Errorf("Clean() = %q, want %q", got, input)
	}
}

func TestChainCleaner_Order(t *testing.T) {
	// Two-period rule first turns "...." into "......", which the
	// four-or-more rule then reduces to an ellipsis.
	c := NewChain(
		MustReplace("ellipsis", `\.{2}`, "..."),
		MustReplace("long-ellipsis", `\.{4,}`, "..."),
	)

	tests := []struct {
		input string
		want  string
	}{
		{"a.b", "a.b"},
		{"a..b", "a...b"},
		{"a...b", "a...b"},
		{"a....b", "a...b"},
		{"a.....b", "a...b"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := c.Clean(tt.input)
			if err != nil {
				t.Fatalf("Clean() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// errorCleaner is a test cleaner that always returns an error
type errorCleaner struct{}

func (c *errorCleaner) Clean(string) (string, error) {
	return "", errors.New("test error")
}

func (c *errorCleaner) Name() string {
	return "error"
}

func TestChainCleaner_ErrorPropagation(t *testing.T) {
	c := NewChain(NewRemove("artifacts", "x"), &errorCleaner{}, NewRemove("artifacts", "y"))

	_, err := c.Clean("test")
	if err == nil {
		t.Fatal("expected error to propagate")
	}

	if !strings.Contains(err.Error(), "test error") {
		t.Errorf("expected error containing 'test error', got %v", err)
	}
}

func TestChainCleaner_Name(t *testing.T) {
	tests := []struct {
		name     string
		cleaners []Cleaner
		want     string
	}{
		{"empty", []Cleaner{}, "chain()"},
		{"single", []Cleaner{NewRemove("artifacts")}, "chain(artifacts)"},
		{"double", []Cleaner{NewRemove("artifacts"), MustReplace("commas", ",+", ",")}, "chain(artifacts->commas)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewChain(tt.cleaners...)
			if got := c.Name(); got != tt.want {
				t.Errorf("Name() = %q, want %q", got, tt.want)
			}
		})
	}
}
