// Package article defines the scraped news article record and its flat-file I/O.
package article

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Column names used in article tables.
const (
	ColumnURL               = "url"
	ColumnTitle             = "title"
	ColumnContent           = "content"
	ColumnTotalTitleChar    = "total_title_char"
	ColumnTotalContentChar  = "total_content_char"
	ColumnTotalTitleWords   = "total_title_words"
	ColumnTotalContentWords = "total_content_words"
)

// Article is a single scraped news article.
// The Total* fields are derived from Title and Content and must be refreshed
// with Recount whenever either text changes.
type Article struct {
	URL     string `json:"url" yaml:"url"`
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`

	TotalTitleChar    int `json:"total_title_char" yaml:"total_title_char"`
	TotalContentChar  int `json:"total_content_char" yaml:"total_content_char"`
	TotalTitleWords   int `json:"total_title_words" yaml:"total_title_words"`
	TotalContentWords int `json:"total_content_words" yaml:"total_content_words"`
}

// New creates an article with its derived counts already computed.
func New(url, title, content string) Article {
	a := Article{URL: url, Title: title, Content: content}
	a.Recount()
	return a
}

// Recount recomputes the character and word counts from the current text.
// Characters are counted as code points; words as whitespace-delimited tokens.
func (a *Article) Recount() {
	a.TotalTitleChar = utf8.RuneCountInString(a.Title)
	a.TotalContentChar = utf8.RuneCountInString(a.Content)
	a.TotalTitleWords = WordCount(a.Title)
	a.TotalContentWords = WordCount(a.Content)
}

// WordCount returns the number of whitespace-delimited tokens in s.
// Whitespace is Unicode white space plus the information separators
// U+001C..U+001F.
func WordCount(s string) int {
	return len(strings.FieldsFunc(s, isSpace))
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= '\x1c' && r <= '\x1f')
}

// Header returns the CSV column order for articles.
func (a Article) Header() []string {
	return []string{
		ColumnURL,
		ColumnTitle,
		ColumnContent,
		ColumnTotalTitleChar,
		ColumnTotalContentChar,
		ColumnTotalTitleWords,
		ColumnTotalContentWords,
	}
}

// Record returns the article as a CSV row matching Header.
func (a Article) Record() []string {
	return []string{
		a.URL,
		a.Title,
		a.Content,
		strconv.Itoa(a.TotalTitleChar),
		strconv.Itoa(a.TotalContentChar),
		strconv.Itoa(a.TotalTitleWords),
		strconv.Itoa(a.TotalContentWords),
	}
}
