package pagesblog

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/eringen/pagesblog/content"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "articles.db")

	s, err := NewStore(path)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNewStore(t *testing.T) {
	s := setupTestStore(t)
	if s.db == nil {
		t.Fatal("db should not be nil")
	}
	articles, err := s.ListArticles()
	if err != nil {
		t.Fatalf("ListArticles failed: %v", err)
	}
	if len(articles) != 0 {
		t.Errorf("new store has %d articles, want 0", len(articles))
	}
}

func TestSaveAndListBuiltinArticles(t *testing.T) {
	s := setupTestStore(t)
	want := content.Builtin()

	if err := s.SaveArticles(want); err != nil {
		t.Fatalf("SaveArticles failed: %v", err)
	}
	got, err := s.ListArticles()
	if err != nil {
		t.Fatalf("ListArticles failed: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("ListArticles returned %d articles, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ID != want[i].ID || got[i].Path != want[i].Path {
			t.Errorf("article %d = (%d, %q), want (%d, %q)", i, got[i].ID, got[i].Path, want[i].ID, want[i].Path)
		}
		if got[i].Content != want[i].Content {
			t.Errorf("article %q content changed on round-trip", want[i].Path)
		}
		if got[i].PublishedDate != want[i].PublishedDate {
			t.Errorf("PublishedDate = %q, want %q", got[i].PublishedDate, want[i].PublishedDate)
		}
	}
}

func TestGetArticlePreservesTagCaseAndOrder(t *testing.T) {
	s := setupTestStore(t)
	if err := s.SaveArticles(content.Builtin()); err != nil {
		t.Fatalf("SaveArticles failed: %v", err)
	}
	got, err := s.GetArticle("tailwind-with-react")
	if err != nil {
		t.Fatalf("GetArticle failed: %v", err)
	}
	if got.Title != "Setting Up Tailwind CSS with React" {
		t.Errorf("Title = %q", got.Title)
	}
	wantTags := []string{"React", "TailwindCSS", "CSS"}
	if len(got.Tags) != len(wantTags) {
		t.Fatalf("Tags = %v, want %v", got.Tags, wantTags)
	}
	for i := range wantTags {
		if got.Tags[i] != wantTags[i] {
			t.Errorf("Tags = %v, want %v", got.Tags, wantTags)
		}
	}
}

func TestGetArticleMissing(t *testing.T) {
	s := setupTestStore(t)
	if _, err := s.GetArticle("nope"); err != sql.ErrNoRows {
		t.Errorf("GetArticle(nope) error = %v, want sql.ErrNoRows", err)
	}
}

func TestSaveArticlesOverwrites(t *testing.T) {
	s := setupTestStore(t)
	a := content.Article{ID: 1, Path: "a", Title: "Original", Tags: []string{"x"}}
	if err := s.SaveArticles([]content.Article{a}); err != nil {
		t.Fatalf("SaveArticles failed: %v", err)
	}
	a.Title = "Updated"
	a.Tags = nil
	if err := s.SaveArticles([]content.Article{a}); err != nil {
		t.Fatalf("SaveArticles update failed: %v", err)
	}
	got, err := s.GetArticle("a")
	if err != nil {
		t.Fatalf("GetArticle failed: %v", err)
	}
	if got.Title != "Updated" {
		t.Errorf("Title = %q, want %q", got.Title, "Updated")
	}
	if got.Tags == nil || len(got.Tags) != 0 {
		t.Errorf("Tags = %#v, want empty non-nil slice", got.Tags)
	}
}

func TestSaveArticlesDropsStaleRows(t *testing.T) {
	s := setupTestStore(t)
	if err := s.SaveArticles(content.Builtin()); err != nil {
		t.Fatalf("SaveArticles failed: %v", err)
	}
	smaller := content.Builtin()[:1]
	if err := s.SaveArticles(smaller); err != nil {
		t.Fatalf("SaveArticles reseed failed: %v", err)
	}
	got, err := s.ListArticles()
	if err != nil {
		t.Fatalf("ListArticles failed: %v", err)
	}
	if len(got) != 1 || got[0].Path != smaller[0].Path {
		t.Fatalf("ListArticles after reseed = %d articles, want only %q", len(got), smaller[0].Path)
	}
	if _, err := s.GetArticle("tailwind-with-react"); err != sql.ErrNoRows {
		t.Errorf("GetArticle(tailwind-with-react) error = %v, want sql.ErrNoRows", err)
	}
}

func TestSaveArticlesRejectsCommaTags(t *testing.T) {
	s := setupTestStore(t)
	if err := s.SaveArticles(content.Builtin()); err != nil {
		t.Fatalf("SaveArticles failed: %v", err)
	}
	bad := []content.Article{{ID: 9, Path: "bad", Tags: []string{"Go, Web"}}}
	if err := s.SaveArticles(bad); !errors.Is(err, ErrTagComma) {
		t.Fatalf("SaveArticles error = %v, want ErrTagComma", err)
	}
	got, err := s.ListArticles()
	if err != nil {
		t.Fatalf("ListArticles failed: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("rejected save changed the table: %d articles, want 3", len(got))
	}
}

func TestParseTags(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{",Go,Web,", []string{"Go", "Web"}},
		{"", []string{}},
		{",,", []string{}},
		{",React, CSS ,", []string{"React", "CSS"}},
	}
	for _, tt := range tests {
		got := ParseTags(tt.input)
		if len(got) != len(tt.expected) {
			t.Errorf("ParseTags(%q) = %v, want %v", tt.input, got, tt.expected)
			continue
		}
		for i := range got {
			if got[i] != tt.expected[i] {
				t.Errorf("ParseTags(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		}
	}
}

func TestFormatTags(t *testing.T) {
	tests := []struct {
		input    []string
		expected string
	}{
		{[]string{"React", "CSS"}, ",React,CSS,"},
		{nil, ""},
		{[]string{" ", ""}, ""},
	}
	for _, tt := range tests {
		if got := FormatTags(tt.input); got != tt.expected {
			t.Errorf("FormatTags(%v) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
