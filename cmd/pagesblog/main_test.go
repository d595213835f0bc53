package main

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/pagesblog"
	"github.com/eringen/pagesblog/content"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	cat, err := content.NewCatalog(content.Builtin())
	require.NoError(t, err)
	app := pagesblog.New(pagesblog.SiteConfig{LogLevel: "off"}, pagesblog.WithCatalog(cat))
	require.NoError(t, app.Setup())
	srv := httptest.NewServer(app.Echo)
	t.Cleanup(srv.Close)
	return srv
}

func TestVersion(t *testing.T) {
	out, err := runCmd(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "pagesblog dev\n", out)
}

func TestReadIndex(t *testing.T) {
	srv := newServer(t)
	out, err := runCmd(t, "read", "--url", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "Introduction To Cloudflare Pages")
	assert.Contains(t, out, "Deploying A React App To Cloudflare Pages")
	assert.Contains(t, out, "(tailwind-with-react)")
}

func TestReadArticle(t *testing.T) {
	srv := newServer(t)
	out, err := runCmd(t, "read", "--url", srv.URL, "tailwind-with-react")
	require.NoError(t, err)
	assert.Contains(t, out, "Setting Up Tailwind CSS with React")
	assert.Contains(t, out, "Published on")
	assert.Contains(t, out, "TailwindCSS")
}

func TestReadArticleNotFound(t *testing.T) {
	srv := newServer(t)
	out, err := runCmd(t, "read", "--url", srv.URL, "missing")
	require.Error(t, err)
	assert.Contains(t, out, "Failed to fetch the article: missing. Error: HTTP error! status: 404")
}

func TestSeedThenServeFromDatabase(t *testing.T) {
	db := filepath.Join(t.TempDir(), "blog.db")
	out, err := runCmd(t, "seed", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "seeded 3 articles")

	store, err := pagesblog.NewStore(db)
	require.NoError(t, err)
	defer store.Close()
	articles, err := store.ListArticles()
	require.NoError(t, err)
	require.Len(t, articles, 3)
	assert.Equal(t, "introduction-to-cloudflare-pages", articles[0].Path)
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	out, err := runCmd(t, "export", "--config", filepath.Join(dir, "none.toml"), "--out", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "exported 3 articles")

	data, err := os.ReadFile(filepath.Join(dir, "articles.json"))
	require.NoError(t, err)
	var index []content.ArticleSummary
	require.NoError(t, json.Unmarshal(data, &index))
	assert.Len(t, index, 3)
}

func TestReadArticlePlain(t *testing.T) {
	srv := newServer(t)
	out, err := runCmd(t, "read", "--url", srv.URL, "--plain", "introduction-to-cloudflare-pages")
	require.NoError(t, err)
	assert.Contains(t, out, "Welcome to Cloudflare Pages!")
	assert.Contains(t, out, "• **Git Integration:**")
	assert.NotContains(t, out, "# ")
}

func TestSeedReplacesPreviousArticles(t *testing.T) {
	db := filepath.Join(t.TempDir(), "blog.db")
	_, err := runCmd(t, "seed", "--db", db)
	require.NoError(t, err)

	dir := t.TempDir()
	doc := "---\nid: 1\ntitle: Only\nauthor: Alex Doe\n---\n# Only\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "only.md"), []byte(doc), 0o644))
	out, err := runCmd(t, "seed", "--db", db, "--content", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "seeded 1 articles")

	store, err := pagesblog.NewStore(db)
	require.NoError(t, err)
	defer store.Close()
	articles, err := store.ListArticles()
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "only", articles[0].Path)
}
