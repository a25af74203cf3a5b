// Package ingest turns saved article pages and scraped JSON batches into
// article tables. It reads local files only.
package ingest

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"github.com/jmylchreest/sftnews/pkg/article"
	"github.com/jmylchreest/sftnews/pkg/cleaner"
)

// Default selectors for the news site layout the scraper targeted.
const (
	DefaultTitleSelector   = ".col-lg-12.col-md-12 h1"
	DefaultContentSelector = ".col-lg-12.col-md-12 .col-md-12 span"
)

// Config controls how pages are read.
type Config struct {
	TitleSelector       string `json:"title_selector" yaml:"title_selector" mapstructure:"title_selector"`
	ContentSelector     string `json:"content_selector" yaml:"content_selector" mapstructure:"content_selector"`
	ReadabilityFallback bool   `json:"readability_fallback" yaml:"readability_fallback" mapstructure:"readability_fallback"`
}

// DefaultConfig returns selectors for the default layout with the
// readability fallback enabled.
func DefaultConfig() Config {
	return Config{
		TitleSelector:       DefaultTitleSelector,
		ContentSelector:     DefaultContentSelector,
		ReadabilityFallback: true,
	}
}

// Extractor pulls title and content out of saved HTML pages.
type Extractor struct {
	cfg  Config
	text cleaner.Cleaner
}

// NewExtractor creates an extractor. Empty selectors fall back to the defaults.
func NewExtractor(cfg Config) *Extractor {
	if cfg.TitleSelector == "" {
		cfg.TitleSelector = DefaultTitleSelector
	}
	if cfg.ContentSelector == "" {
		cfg.ContentSelector = DefaultContentSelector
	}
	return &Extractor{
		cfg:  cfg,
		text: cleaner.NewHTMLText(true),
	}
}

// Extract reads one page. source identifies the page when it carries no
// canonical URL of its own.
func (e *Extractor) Extract(r io.Reader, source string) (article.Article, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return article.Article{}, fmt.Errorf("read %s: %w", source, err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return article.Article{}, fmt.Errorf("parse %s: %w", source, err)
	}

	pageURL := canonicalURL(doc, source)
	title := strings.TrimSpace(doc.Find(e.cfg.TitleSelector).Text())
	content := strings.TrimSpace(doc.Find(e.cfg.ContentSelector).Text())

	if title == "" && content == "" && e.cfg.ReadabilityFallback {
		title, content, err = e.readable(data, pageURL)
		if err != nil {
			return article.Article{}, fmt.Errorf("readability %s: %w", source, err)
		}
	}

	return article.New(pageURL, title, content), nil
}

func (e *Extractor) readable(data []byte, pageURL string) (string, string, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		parsed = &url.URL{Scheme: "file", Path: pageURL}
	}

	doc, err := readability.FromReader(bytes.NewReader(data), parsed)
	if err != nil {
		return "", "", err
	}

	content, err := e.text.Clean(doc.Content)
	if err != nil {
		return "", "", err
	}
	return strings.TrimSpace(doc.Title), content, nil
}

func canonicalURL(doc *goquery.Document, source string) string {
	if href, ok := doc.Find(`link[rel="canonical"]`).First().Attr("href"); ok && strings.TrimSpace(href) != "" {
		return strings.TrimSpace(href)
	}
	if content, ok := doc.Find(`meta[property="og:url"]`).First().Attr("content"); ok && strings.TrimSpace(content) != "" {
		return strings.TrimSpace(content)
	}
	return source
}

// ExtractFile reads a single saved page.
func (e *Extractor) ExtractFile(path string) (article.Article, error) {
	f, err := os.Open(path) //#nosec G304 -- path comes from user input
	if err != nil {
		return article.Article{}, fmt.Errorf("open page: %w", err)
	}
	defer func() { _ = f.Close() }()

	return e.Extract(f, path)
}

// ExtractDir reads every .html and .htm file under dir in lexical path order.
func (e *Extractor) ExtractDir(dir string) ([]article.Article, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".html", ".htm":
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}
	slices.Sort(paths)

	out := make([]article.Article, 0, len(paths))
	for _, path := range paths {
		a, err := e.ExtractFile(path)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}
