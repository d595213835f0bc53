// Package client fetches articles from a pagesblog server and tracks the
// loading state of each data source.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/eringen/pagesblog/content"
)

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Code int
	// Path is the slug echoed back by the article endpoint's 404 body.
	Path string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.Code)
}

// IsNotFound reports whether err is a 404 from the server.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusNotFound
}

// Client talks to the /articles API.
type Client struct {
	base string
	http *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// New returns a Client for the server at baseURL, e.g. "http://localhost:3000".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		base: strings.TrimSuffix(baseURL, "/"),
		http: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Index fetches the article index.
func (c *Client) Index(ctx context.Context) ([]content.ArticleSummary, error) {
	var index []content.ArticleSummary
	if err := c.get(ctx, "/articles", &index); err != nil {
		return nil, err
	}
	return index, nil
}

// Article fetches one article by slug.
func (c *Client) Article(ctx context.Context, slug string) (content.Article, error) {
	var a content.Article
	if err := c.get(ctx, "/articles/"+url.PathEscape(slug), &a); err != nil {
		return content.Article{}, err
	}
	return a, nil
}

func (c *Client) get(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		se := &StatusError{Code: resp.StatusCode}
		var body struct {
			Path string `json:"path"`
		}
		if json.NewDecoder(resp.Body).Decode(&body) == nil {
			se.Path = body.Path
		}
		return se
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
