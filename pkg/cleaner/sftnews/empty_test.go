package sftnews

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jmylchreest/sftnews/pkg/article"
)

func TestCheckEmpty(t *testing.T) {
	articles := []article.Article{
		article.New("both", "", ""),
		article.New("content", "title", ""),
		article.New("title", "", "content"),
		article.New("full", "title", "content"),
	}

	r := CheckEmpty(articles)

	tests := []struct {
		name string
		got  []string
		want []string
	}{
		{"both", r.Both, []string{"both"}},
		{"only_content", r.OnlyContent, []string{"content"}},
		{"only_title", r.OnlyTitle, []string{"title"}},
		{"either", r.Either, []string{"both", "content", "title"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if strings.Join(tt.got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestCheckEmpty_EitherIsTrueUnion(t *testing.T) {
	articles := []article.Article{
		article.New("a", "", ""),
		article.New("b", "", "x"),
		article.New("c", "x", ""),
		article.New("d", "x", "y"),
		article.New("e", "", ""),
	}

	r := CheckEmpty(articles)

	if len(r.Either) != len(r.Both)+len(r.OnlyTitle)+len(r.OnlyContent) {
		t.Errorf("either = %d, want %d", len(r.Either), len(r.Both)+len(r.OnlyTitle)+len(r.OnlyContent))
	}
}

func TestCheckEmpty_NoArticles(t *testing.T) {
	r := CheckEmpty(nil)
	if r.Both == nil || r.Either == nil {
		t.Error("expected initialized lists")
	}
}

func TestEmptyReport_Print(t *testing.T) {
	r := CheckEmpty([]article.Article{
		article.New("a", "", ""),
		article.New("b", "t", ""),
	})

	var buf bytes.Buffer
	if err := r.Print(&buf); err != nil {
		t.Fatalf("Print() error = %v", err)
	}

	want := "Total Empty Title & Content: 1\n" +
		"Total only Empty Title: 0\n" +
		"Total only Empty Content: 1\n" +
		"Total Empty Title or Content: 2\n"
	if buf.String() != want {
		t.Errorf("Print() =\n%s\nwant\n%s", buf.String(), want)
	}
}
