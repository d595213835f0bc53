package pagesblog

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eringen/pagesblog/views"
)

func (a *App) handleIndex(c echo.Context) error {
	return c.JSON(http.StatusOK, a.Catalog.Index())
}

func (a *App) handleArticle(c echo.Context) error {
	slug := c.Param("slug")
	article, ok := a.Catalog.Article(slug)
	if !ok {
		return c.JSON(http.StatusNotFound, NotFoundBody{Error: notFoundMessage, Path: slug})
	}
	return c.JSON(http.StatusOK, article)
}

func (a *App) handleHome(c echo.Context) error {
	return Render(c, views.Home(a.site(), a.Catalog.Index()))
}

func (a *App) handleRead(c echo.Context) error {
	slug := c.Param("slug")
	article, ok := a.Catalog.Article(slug)
	if !ok {
		return a.renderNotFound(c, slug)
	}
	page, err := a.Pages.Get(slug, func() ([]byte, error) {
		pageURL := ArticleURL(a.Config.URL, slug)
		meta := views.PageMeta{
			Title:       article.Title,
			Description: articleDescription(article),
			URL:         pageURL,
			OGType:      "article",
			Image:       pageURL + "card.png",
			JsonLD:      ArticleJsonLD(article, a.Config),
		}
		var buf bytes.Buffer
		cmp := views.Article(a.site(), meta, a.Catalog.Index(), article)
		if err := cmp.Render(c.Request().Context(), &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	})
	if err != nil {
		return fmt.Errorf("render %s: %w", slug, err)
	}
	return c.HTMLBlob(http.StatusOK, page)
}

func (a *App) handleCard(c echo.Context) error {
	slug := c.Param("slug")
	article, ok := a.Catalog.Article(slug)
	if !ok {
		return a.renderNotFound(c, slug)
	}
	var buf bytes.Buffer
	if err := RenderCard(&buf, article, a.Config.Name); err != nil {
		return fmt.Errorf("card %s: %w", slug, err)
	}
	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}

func (a *App) handleSitemap(c echo.Context) error {
	return a.renderSitemap(c, a.Catalog.Articles())
}

func (a *App) handleFeed(c echo.Context) error {
	return a.renderRSS(c, a.Catalog.Articles())
}

func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /debug/\n\nSitemap: %s/sitemap.xml\n", a.Config.URL)
	return c.String(http.StatusOK, body)
}

func (a *App) renderNotFound(c echo.Context, slug string) error {
	msg := "Article not found: " + slug
	return RenderStatus(c, http.StatusNotFound, views.NotFound(a.site(), a.Catalog.Index(), msg))
}

func (a *App) site() views.Site {
	return views.Site{
		Name:        a.Config.Name,
		Tagline:     a.Config.Tagline,
		URL:         a.Config.URL,
		Description: a.Config.Description,
		JsonLD:      WebsiteJsonLD(a.Config),
	}
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.site(), a.Catalog.Index(), "Page not found"))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, views.ServerError(a.site()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
