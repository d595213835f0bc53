package content

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoFrontMatter is returned when a file does not open with a "---" block.
var ErrNoFrontMatter = errors.New("content: missing front matter")

var delimiter = []byte("---")

// LoadDir reads every *.md file at the root of fsys, in name order, and
// returns one article per file. Each file starts with a YAML front-matter
// block:
//
//	---
//	id: 4
//	title: Hello
//	author: Alex Doe
//	publishedDate: 2024-11-02
//	tags: [Go, Echo]
//	---
//	# Hello
//
// The path defaults to the file name without its extension.
func LoadDir(fsys fs.FS) ([]Article, error) {
	names, err := fs.Glob(fsys, "*.md")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	articles := make([]Article, 0, len(names))
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("content: read %s: %w", name, err)
		}
		a, err := ParseFile(data)
		if err != nil {
			return nil, fmt.Errorf("content: %s: %w", name, err)
		}
		if a.Path == "" {
			a.Path = strings.TrimSuffix(path.Base(name), ".md")
		}
		articles = append(articles, a)
	}
	return articles, nil
}

// ParseFile splits a markdown document into its front matter and body.
func ParseFile(data []byte) (Article, error) {
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
	head, body, err := splitFrontMatter(data)
	if err != nil {
		return Article{}, err
	}
	var a Article
	if err := yaml.Unmarshal(head, &a); err != nil {
		return Article{}, fmt.Errorf("parse front matter: %w", err)
	}
	a.Content = string(body)
	return a, nil
}

func splitFrontMatter(data []byte) (head, body []byte, err error) {
	first, rest, ok := bytes.Cut(data, []byte("\n"))
	if !ok || !bytes.Equal(bytes.TrimSpace(first), delimiter) {
		return nil, nil, ErrNoFrontMatter
	}
	var headLines [][]byte
	for {
		line, remaining, more := bytes.Cut(rest, []byte("\n"))
		if bytes.Equal(bytes.TrimSpace(line), delimiter) {
			return bytes.Join(headLines, []byte("\n")), remaining, nil
		}
		if !more {
			return nil, nil, fmt.Errorf("%w: unterminated block", ErrNoFrontMatter)
		}
		headLines = append(headLines, line)
		rest = remaining
	}
}
