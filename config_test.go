package pagesblog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, "My Awesome Blog", cfg.Name)
	assert.Equal(t, "http://localhost:3000", cfg.URL)
	assert.Equal(t, ":3000", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5*time.Minute, cfg.PageCacheTTL)
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pagesblog.toml")
	data := `
name = "Field Notes"
url = "https://notes.example.com/"
addr = ":8080"
page_cache_ttl = "90s"
debug = true
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	t.Setenv("SITE_NAME", "Env Notes")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Env Notes", cfg.Name)
	assert.Equal(t, "https://notes.example.com", cfg.URL)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 90*time.Second, cfg.PageCacheTTL)
	assert.True(t, cfg.Debug)
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("name = "), 0o644))
	_, err := LoadConfig(bad)
	assert.Error(t, err)

	level := filepath.Join(dir, "level.toml")
	require.NoError(t, os.WriteFile(level, []byte(`log_level = "chatty"`), 0o644))
	_, err = LoadConfig(level)
	assert.Error(t, err)
}

func TestSetupLoadsCatalogSources(t *testing.T) {
	t.Run("builtin", func(t *testing.T) {
		a := New(SiteConfig{LogLevel: "off"})
		require.NoError(t, a.Setup())
		assert.Equal(t, 3, a.Catalog.Len())
	})

	t.Run("content dir", func(t *testing.T) {
		dir := t.TempDir()
		doc := "---\nid: 10\ntitle: Hello\nauthor: Alex Doe\n---\n# Hello\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "hello.md"), []byte(doc), 0o644))
		a := New(SiteConfig{LogLevel: "off", ContentDir: dir})
		require.NoError(t, a.Setup())
		got, ok := a.Catalog.Article("hello")
		require.True(t, ok)
		assert.Equal(t, 10, got.ID)
	})

	t.Run("sqlite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "articles.db")
		s, err := NewStore(path)
		require.NoError(t, err)
		require.NoError(t, s.SaveArticles(newTestApp(t).Catalog.Articles()[:2]))
		require.NoError(t, s.Close())

		a := New(SiteConfig{LogLevel: "off", DatabasePath: path})
		require.NoError(t, a.Setup())
		assert.Equal(t, 2, a.Catalog.Len())
	})
}
