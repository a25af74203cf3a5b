package cleaner

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	markupRegex     = regexp.MustCompile(`<[a-zA-Z/!][^>]*>`)
	blockOpenRegex  = regexp.MustCompile(`(?i)<(div|p|br|li|td|tr|h[1-6])\b[^>]*>`)
	blockCloseRegex = regexp.MustCompile(`(?i)</(div|p|li|td|tr|h[1-6])>`)
	whitespaceRegex = regexp.MustCompile(`[ \t\r\n\f]+`)
)

// HTMLTextCleaner reduces leftover HTML markup to its text content.
// Text without any tags is returned untouched, so plain articles (and their
// literal entity artifacts) pass through for the artifact rules to handle.
type HTMLTextCleaner struct {
	collapseWhitespace bool
}

// NewHTMLText creates an HTML-to-text cleaner.
func NewHTMLText(collapseWhitespace bool) *HTMLTextCleaner {
	return &HTMLTextCleaner{collapseWhitespace: collapseWhitespace}
}

// Clean extracts the text of any markup present in text.
func (c *HTMLTextCleaner) Clean(text string) (string, error) {
	if !markupRegex.MatchString(text) {
		return text, nil
	}

	// Pad block elements so adjacent paragraphs don't run together.
	padded := blockOpenRegex.ReplaceAllString(text, " $0")
	padded = blockCloseRegex.ReplaceAllString(padded, "$0 ")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(padded))
	if err != nil {
		return strings.TrimSpace(markupRegex.ReplaceAllString(text, "")), nil
	}

	doc.Find("script, style, noscript").Remove()
	out := doc.Text()
	if c.collapseWhitespace {
		out = whitespaceRegex.ReplaceAllString(out, " ")
	}
	return strings.TrimSpace(out), nil
}

// Name returns the cleaner type.
func (c *HTMLTextCleaner) Name() string {
	return "html-text"
}
