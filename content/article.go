// Package content holds the article data model and the read-only catalog
// that the HTTP handlers and the client share.
package content

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ArticleSummary is one entry of the article index.
type ArticleSummary struct {
	ID   int    `json:"id"`
	Path string `json:"path"`
}

// Article is a full article record. Path is the lookup key (the slug).
type Article struct {
	ID            int      `json:"id" yaml:"id"`
	Path          string   `json:"path" yaml:"path"`
	Title         string   `json:"title" yaml:"title"`
	Author        string   `json:"author" yaml:"author"`
	PublishedDate string   `json:"publishedDate" yaml:"publishedDate"` // YYYY-MM-DD
	Tags          []string `json:"tags" yaml:"tags"`
	Content       string   `json:"content" yaml:"-"`
}

// Summary returns the index entry for a.
func (a Article) Summary() ArticleSummary {
	return ArticleSummary{ID: a.ID, Path: a.Path}
}

// TitleFromPath turns a slug into a display label: words split on "-",
// each with an upper-cased first letter.
func TitleFromPath(path string) string {
	words := strings.Split(path, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
