package views

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/pagesblog/content"
)

var testSite = Site{Name: "Test Blog", Tagline: "tag line", URL: "http://example.com"}

func index() []content.ArticleSummary {
	var out []content.ArticleSummary
	for _, a := range content.Builtin() {
		out = append(out, a.Summary())
	}
	return out
}

func TestHome(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Home(testSite, index()).Render(context.Background(), &buf))
	html := buf.String()

	assert.True(t, strings.HasPrefix(html, "<!doctype html>"))
	assert.Contains(t, html, "<title>Test Blog</title>")
	assert.Contains(t, html, SelectPrompt)
	assert.Contains(t, html, `href="/read/tailwind-with-react/"`)
	assert.Contains(t, html, ">Deploying A React App To Cloudflare Pages</a>")
	assert.NotContains(t, html, "bg-blue-50 p-3")
}

func TestPageEscapesAttributes(t *testing.T) {
	site := testSite
	site.Name = `Tom "&" Jerry`
	meta := PageMeta{Title: "<b>", Description: `say "hi"`}

	var buf bytes.Buffer
	require.NoError(t, Page(site, meta, templ.NopComponent).Render(context.Background(), &buf))
	html := buf.String()

	assert.Contains(t, html, "<title>&lt;b&gt; | Tom &#34;&amp;&#34; Jerry</title>")
	assert.Contains(t, html, `<meta name="description" content="say &#34;hi&#34;">`)
	assert.Contains(t, html, `title="Tom &#34;&amp;&#34; Jerry" href="/feed.xml"`)
	assert.NotContains(t, html, `rel="canonical"`)
}

func TestArticlePage(t *testing.T) {
	a := content.Builtin()[0]
	meta := PageMeta{Title: a.Title, URL: "http://example.com/read/" + a.Path + "/", OGType: "article", Image: "http://example.com/card.png"}

	var buf bytes.Buffer
	require.NoError(t, Article(testSite, meta, index(), a).Render(context.Background(), &buf))
	html := buf.String()

	assert.Contains(t, html, "<title>Introduction to Cloudflare Pages | Test Blog</title>")
	assert.Contains(t, html, "By Alex Doe</span> | <span>Published on 2024-10-01")
	assert.Contains(t, html, ">Serverless</span>")
	assert.Contains(t, html, "Welcome to Cloudflare Pages!</h1>")
	assert.Contains(t, html, `<meta property="og:image" content="http://example.com/card.png">`)
	assert.Contains(t, html, `<a class="block w-full rounded-lg bg-blue-50 p-3 text-left text-blue-800" href="/read/introduction-to-cloudflare-pages/">`)
	assert.NotContains(t, html, SelectPrompt)
}

func TestNotFoundEscapesMessage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NotFound(testSite, index(), "Article not found: <x>").Render(context.Background(), &buf))
	html := buf.String()

	assert.Contains(t, html, `role="alert">Article not found: &lt;x&gt;</div>`)
	assert.NotContains(t, html, "<x>")
}

func TestJsonLDIncluded(t *testing.T) {
	site := testSite
	site.JsonLD = `{"@type":"WebSite"}`

	var buf bytes.Buffer
	require.NoError(t, ServerError(site).Render(context.Background(), &buf))
	assert.Contains(t, buf.String(), `<script type="application/ld+json">{"@type":"WebSite"}</script>`)
	assert.Contains(t, buf.String(), "Something went wrong")
}

func TestReadLinkEscapes(t *testing.T) {
	assert.Equal(t, "/read/a%20b/", ReadLink("a b"))
}
