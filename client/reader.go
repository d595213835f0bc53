package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/labstack/gommon/log"

	"github.com/eringen/pagesblog/content"
)

// Reader drives the two-step reading flow: load the index once, then load
// whichever article the user selects. Both sources report failures through
// a single shared error message.
type Reader struct {
	client  *Client
	logger  *log.Logger
	Index   Source[[]content.ArticleSummary]
	Article Source[content.Article]

	mu       sync.Mutex
	selected string
	errMsg   string
}

// NewReader returns a Reader backed by c. A nil logger discards output.
func NewReader(c *Client, logger *log.Logger) *Reader {
	if logger == nil {
		logger = log.New("pagesblog")
		logger.SetLevel(log.OFF)
	}
	return &Reader{client: c, logger: logger}
}

// LoadIndex fetches the article list.
func (r *Reader) LoadIndex(ctx context.Context) {
	r.Index.Load(ctx, r.client.Index, func(err error) string {
		msg := fmt.Sprintf("Failed to fetch the list of articles: %v", err)
		r.logger.Error(msg)
		r.setError(msg)
		return msg
	})
}

// Select fetches the article at slug, replacing any previous selection.
// The shared error message is cleared before the request starts.
func (r *Reader) Select(ctx context.Context, slug string) {
	r.mu.Lock()
	r.selected = slug
	r.errMsg = ""
	r.mu.Unlock()

	fetch := func(ctx context.Context) (content.Article, error) {
		return r.client.Article(ctx, slug)
	}
	r.Article.Load(ctx, fetch, func(err error) string {
		msg := fmt.Sprintf("Failed to fetch the article: %s. Error: %v", slug, err)
		r.logger.Error(msg)
		r.setError(msg)
		return msg
	})
}

func (r *Reader) setError(msg string) {
	r.mu.Lock()
	r.errMsg = msg
	r.mu.Unlock()
}

// Err returns the most recent failure message, or "" if none.
func (r *Reader) Err() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.errMsg
}

// Selected returns the slug of the current selection.
func (r *Reader) Selected() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.selected
}
