// Package pagesblog is a small article site built with Go, Echo, and templ.
// It serves a read-only article catalog as a JSON API and as server-rendered
// pages, plus RSS, sitemap, and social cards derived from the same catalog.
package pagesblog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/eringen/pagesblog/content"
)

const shutdownTimeout = 10 * time.Second

// App is the central pagesblog application. It wires together the catalog,
// page cache, handlers, and middleware.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Catalog *content.Catalog
	Pages   *PageCache

	customRoutes []func(*App)
	ready        bool
}

// New creates a new App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
	}
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Setup loads the catalog (unless one was supplied), then installs
// middleware and routes. It is idempotent.
func (a *App) Setup() error {
	if a.ready {
		return nil
	}
	if lvl, ok := parseLevel(a.Config.LogLevel); ok {
		a.Echo.Logger.SetLevel(lvl)
	}
	if a.Catalog == nil {
		cat, err := a.loadCatalog()
		if err != nil {
			return fmt.Errorf("pagesblog: load catalog: %w", err)
		}
		a.Catalog = cat
	}
	a.Pages = NewPageCache(a.Config.PageCacheTTL)

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	a.ready = true
	a.Echo.Logger.Infof("catalog ready with %d articles", a.Catalog.Len())
	return nil
}

// loadCatalog picks the first configured source: a content directory, a
// SQLite database, or the builtin articles.
func (a *App) loadCatalog() (*content.Catalog, error) {
	switch {
	case a.Config.ContentDir != "":
		articles, err := content.LoadDir(os.DirFS(a.Config.ContentDir))
		if err != nil {
			return nil, err
		}
		return content.NewCatalog(articles)
	case a.Config.DatabasePath != "":
		store, err := NewStore(a.Config.DatabasePath)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		articles, err := store.ListArticles()
		if err != nil {
			return nil, err
		}
		return content.NewCatalog(articles)
	default:
		return content.NewCatalog(content.Builtin())
	}
}

// Start sets the app up and serves until ctx is cancelled, then shuts the
// server down gracefully.
func (a *App) Start(ctx context.Context) error {
	if err := a.Setup(); err != nil {
		return err
	}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return a.Echo.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func (a *App) setupRoutes() {
	e := a.Echo

	assets, _ := fs.Sub(EmbeddedAssets, "embedded")
	e.StaticFS("/public", assets)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	// JSON API
	e.GET("/articles", a.handleIndex)
	e.GET("/articles/:slug", a.handleArticle)

	// Pages
	e.GET("/", a.handleHome)
	e.GET("/read/:slug/", a.handleRead)
	e.GET("/read/:slug/card.png", a.handleCard)

	if a.Config.Debug {
		pprof.Register(e)
	}
}

// Close releases resources held by the server.
func (a *App) Close() error {
	return a.Echo.Close()
}
