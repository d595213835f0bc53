package pagesblog

import (
	"sync"
	"time"
)

type cachedPage struct {
	body    []byte
	fetched time.Time
}

// PageCache is an in-memory cache of rendered article pages with TTL.
// The catalog never changes, so entries only expire to bound memory held
// by pages nobody reads any more.
type PageCache struct {
	mu    sync.RWMutex
	pages map[string]cachedPage
	ttl   time.Duration
	now   func() time.Time
}

// NewPageCache creates an empty PageCache.
func NewPageCache(ttl time.Duration) *PageCache {
	return &PageCache{
		pages: make(map[string]cachedPage),
		ttl:   ttl,
		now:   time.Now,
	}
}

func (c *PageCache) valid(p cachedPage, ok bool) bool {
	return ok && c.now().Sub(p.fetched) < c.ttl
}

// Get returns the cached page for key, calling build to render it when the
// entry is missing or stale. It tries a read lock first; only takes a write
// lock if a rebuild is needed.
func (c *PageCache) Get(key string, build func() ([]byte, error)) ([]byte, error) {
	c.mu.RLock()
	p, ok := c.pages[key]
	if c.valid(p, ok) {
		c.mu.RUnlock()
		return p.body, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if p, ok := c.pages[key]; c.valid(p, ok) {
		return p.body, nil
	}
	body, err := build()
	if err != nil {
		return nil, err
	}
	c.pages[key] = cachedPage{body: body, fetched: c.now()}
	return body, nil
}

// Len reports how many pages are cached, stale or not.
func (c *PageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.pages)
}
