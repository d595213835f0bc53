package pagesblog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/eringen/pagesblog/content"
)

// ExportJSON writes the API responses as static files so the catalog can be
// hosted without the server: dir/articles.json holds the index and
// dir/articles/<slug>.json each article. Files are replaced atomically.
func ExportJSON(cat *content.Catalog, dir string) error {
	if err := os.MkdirAll(filepath.Join(dir, "articles"), 0o755); err != nil {
		return fmt.Errorf("pagesblog: export: %w", err)
	}
	if err := writeJSONFile(filepath.Join(dir, "articles.json"), cat.Index()); err != nil {
		return err
	}
	for _, a := range cat.Articles() {
		target, err := exportPath(dir, a.Path)
		if err != nil {
			return err
		}
		if err := writeJSONFile(target, a); err != nil {
			return err
		}
	}
	return nil
}

// exportPath returns dir/articles/<slug>.json, refusing any slug that would
// land outside dir/articles.
func exportPath(dir, slug string) (string, error) {
	if err := content.ValidatePath(slug); err != nil {
		return "", fmt.Errorf("pagesblog: export %q: %w", slug, err)
	}
	base := filepath.Join(dir, "articles")
	target := filepath.Join(base, slug+".json")
	if rel, err := filepath.Rel(base, target); err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("pagesblog: export %q: %w", slug, content.ErrInvalidPath)
	}
	return target, nil
}

func writeJSONFile(path string, v any) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		return fmt.Errorf("pagesblog: encode %s: %w", path, err)
	}
	if err := atomic.WriteFile(path, &buf); err != nil {
		return fmt.Errorf("pagesblog: write %s: %w", path, err)
	}
	return nil
}
