package pagesblog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/pagesblog/content"
)

func TestExportJSON(t *testing.T) {
	cat, err := content.NewCatalog(content.Builtin())
	require.NoError(t, err)
	dir := t.TempDir()

	require.NoError(t, ExportJSON(cat, dir))

	raw, err := os.ReadFile(filepath.Join(dir, "articles.json"))
	require.NoError(t, err)
	var index []content.ArticleSummary
	require.NoError(t, json.Unmarshal(raw, &index))
	assert.Equal(t, cat.Index(), index)

	for _, s := range index {
		raw, err := os.ReadFile(filepath.Join(dir, "articles", s.Path+".json"))
		require.NoError(t, err)
		var a content.Article
		require.NoError(t, json.Unmarshal(raw, &a))
		want, _ := cat.Article(s.Path)
		assert.Equal(t, want, a)
	}
}

func TestExportJSONOverwrites(t *testing.T) {
	dir := t.TempDir()
	first, err := content.NewCatalog([]content.Article{{ID: 1, Path: "a", Title: "Old"}})
	require.NoError(t, err)
	second, err := content.NewCatalog([]content.Article{{ID: 1, Path: "a", Title: "New"}})
	require.NoError(t, err)

	require.NoError(t, ExportJSON(first, dir))
	require.NoError(t, ExportJSON(second, dir))

	raw, err := os.ReadFile(filepath.Join(dir, "articles", "a.json"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"title":"New"`)
}

func TestExportPathStaysInsideDir(t *testing.T) {
	dir := t.TempDir()
	got, err := exportPath(dir, "tailwind-with-react")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "articles", "tailwind-with-react.json"), got)
	_, err = exportPath(dir, "..hidden")
	assert.NoError(t, err)

	for _, slug := range []string{"../../escaped", "..", "/abs", `a\b`, ""} {
		_, err := exportPath(dir, slug)
		assert.Error(t, err, slug)
	}
}

func TestExportRejectsTraversalFromContentDir(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "src")
	require.NoError(t, os.MkdirAll(src, 0o755))
	doc := "---\nid: 1\npath: ../../escaped\ntitle: X\n---\nbody\n"
	require.NoError(t, os.WriteFile(filepath.Join(src, "x.md"), []byte(doc), 0o644))

	articles, err := content.LoadDir(os.DirFS(src))
	require.NoError(t, err)
	_, err = content.NewCatalog(articles)
	require.ErrorIs(t, err, content.ErrInvalidPath)

	_, statErr := os.Stat(filepath.Join(root, "escaped.json"))
	assert.True(t, os.IsNotExist(statErr))
}
