package content

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyPath is returned by NewCatalog for an article without a path.
	ErrEmptyPath = errors.New("content: article path is empty")
	// ErrInvalidPath is returned for a path that is not a single URL segment,
	// such as "../x", "a/b" or `a\b`.
	ErrInvalidPath = errors.New("content: article path must be a single segment")
)

// Catalog is an immutable slug -> Article mapping with a stable index order.
// It is safe for concurrent use because nothing mutates it after NewCatalog.
type Catalog struct {
	index  []ArticleSummary
	bySlug map[string]Article
}

// NewCatalog builds a catalog from articles, keeping their order for the index.
// The index is derived from the articles, so every article has exactly one
// summary and vice versa.
func NewCatalog(articles []Article) (*Catalog, error) {
	c := &Catalog{
		index:  make([]ArticleSummary, 0, len(articles)),
		bySlug: make(map[string]Article, len(articles)),
	}
	ids := make(map[int]string, len(articles))
	for _, a := range articles {
		if err := ValidatePath(a.Path); err != nil {
			return nil, fmt.Errorf("%w (id %d, path %q)", err, a.ID, a.Path)
		}
		if _, dup := c.bySlug[a.Path]; dup {
			return nil, fmt.Errorf("content: duplicate article path %q", a.Path)
		}
		if other, dup := ids[a.ID]; dup {
			return nil, fmt.Errorf("content: duplicate article id %d (%q and %q)", a.ID, other, a.Path)
		}
		ids[a.ID] = a.Path
		if a.Tags == nil {
			a.Tags = []string{}
		} else {
			a.Tags = append([]string(nil), a.Tags...)
		}
		c.bySlug[a.Path] = a
		c.index = append(c.index, a.Summary())
	}
	return c, nil
}

// Index returns the article summaries in declaration order.
func (c *Catalog) Index() []ArticleSummary {
	out := make([]ArticleSummary, len(c.index))
	copy(out, c.index)
	return out
}

// Article looks up an article by slug. The boolean is false when the slug
// is unknown.
func (c *Catalog) Article(slug string) (Article, bool) {
	a, ok := c.bySlug[slug]
	if !ok {
		return Article{}, false
	}
	a.Tags = append([]string{}, a.Tags...)
	return a, true
}

// Articles returns every article in index order.
func (c *Catalog) Articles() []Article {
	out := make([]Article, 0, len(c.index))
	for _, s := range c.index {
		a, _ := c.Article(s.Path)
		out = append(out, a)
	}
	return out
}

// Len reports the number of articles.
func (c *Catalog) Len() int {
	return len(c.index)
}

// ValidatePath reports whether path can be used as a slug. Slugs are one
// route segment, so "/" and `\` are rejected along with "." and "..".
func ValidatePath(path string) error {
	switch {
	case path == "":
		return ErrEmptyPath
	case path == "." || path == "..", strings.ContainsAny(path, "/\\"):
		return ErrInvalidPath
	}
	return nil
}
