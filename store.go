package pagesblog

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/eringen/pagesblog/content"
)

// ErrTagComma is returned by SaveArticles for a tag containing a comma,
// which is the stored tag separator.
var ErrTagComma = errors.New("pagesblog: tag contains a comma")

// Store wraps a SQLite database holding article rows. The server only reads
// it once at startup to build the catalog; the seed command writes it.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and creates the schema.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS articles (
    id INTEGER PRIMARY KEY,
    path TEXT NOT NULL UNIQUE,
    title TEXT NOT NULL,
    author TEXT NOT NULL,
    published_date TEXT NOT NULL,
    tags TEXT NOT NULL,
    content TEXT NOT NULL
);
`)
	return err
}

// ListArticles returns every article ordered by id, which is the index order.
func (s *Store) ListArticles() ([]content.Article, error) {
	rows, err := s.db.Query(`SELECT id, path, title, author, published_date, tags, content FROM articles ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []content.Article
	for rows.Next() {
		var a content.Article
		var tags string
		if err := rows.Scan(&a.ID, &a.Path, &a.Title, &a.Author, &a.PublishedDate, &tags, &a.Content); err != nil {
			return nil, err
		}
		a.Tags = ParseTags(tags)
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// GetArticle returns a single article by path, or sql.ErrNoRows.
func (s *Store) GetArticle(path string) (content.Article, error) {
	a := content.Article{Path: path}
	var tags string
	err := s.db.QueryRow(`SELECT id, title, author, published_date, tags, content FROM articles WHERE path = ?`, path).
		Scan(&a.ID, &a.Title, &a.Author, &a.PublishedDate, &tags, &a.Content)
	if err != nil {
		return content.Article{}, err
	}
	a.Tags = ParseTags(tags)
	return a, nil
}

// SaveArticles replaces the stored articles with articles in one
// transaction. Tags keep their case and order.
func (s *Store) SaveArticles(articles []content.Article) error {
	for _, a := range articles {
		for _, t := range a.Tags {
			if strings.Contains(t, ",") {
				return fmt.Errorf("%w: %q in %s", ErrTagComma, t, a.Path)
			}
		}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM articles`); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`INSERT INTO articles (id, path, title, author, published_date, tags, content) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, a := range articles {
		if _, err := stmt.Exec(a.ID, a.Path, a.Title, a.Author, a.PublishedDate, FormatTags(a.Tags), a.Content); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// FormatTags joins tags into the stored ",a,b," form.
func FormatTags(tags []string) string {
	cleaned := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			cleaned = append(cleaned, t)
		}
	}
	if len(cleaned) == 0 {
		return ""
	}
	return "," + strings.Join(cleaned, ",") + ","
}

// ParseTags splits a comma-delimited tag string (e.g. ",Go,Web,") into a slice.
func ParseTags(tagString string) []string {
	tagString = strings.Trim(tagString, ",")
	if tagString == "" {
		return []string{}
	}
	parts := strings.Split(tagString, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
