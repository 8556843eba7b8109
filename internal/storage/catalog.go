// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/blogsmith/pkg/types"
)

// Catalog is the SQLite index over saved posts. It exists so listing and
// lookups do not re-read every file; rows are rewritten on every save.
type Catalog struct {
	db *sql.DB
}

// NewCatalog opens or creates the catalog database and its schema.
func NewCatalog(path string) (*Catalog, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}

	c := &Catalog{db: db}
	if err := c.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating catalog schema: %w", err)
	}
	return c, nil
}

// Close releases the database connection.
func (c *Catalog) Close() error {
	return c.db.Close()
}

func (c *Catalog) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS posts (
			slug TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT,
			keywords TEXT,
			reading_time INTEGER,
			sentiment TEXT,
			run_id TEXT,
			created_at TEXT,
			unverified INTEGER,
			warnings TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_posts_created_at ON posts(created_at)`,
	}
	for _, stmt := range statements {
		if _, err := c.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Upsert writes or replaces the row for a post.
func (c *Catalog) Upsert(meta types.ArtifactMeta) error {
	unverified := 0
	if meta.Unverified {
		unverified = 1
	}
	_, err := c.db.Exec(
		`INSERT INTO posts (slug, title, description, keywords, reading_time, sentiment, run_id, created_at, unverified, warnings)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(slug) DO UPDATE SET
			title=excluded.title, description=excluded.description,
			keywords=excluded.keywords, reading_time=excluded.reading_time,
			sentiment=excluded.sentiment, run_id=excluded.run_id,
			created_at=excluded.created_at, unverified=excluded.unverified,
			warnings=excluded.warnings`,
		meta.Slug, meta.Title, meta.Description, strings.Join(meta.Keywords, ","),
		meta.ReadingTime, string(meta.Sentiment), meta.RunID,
		meta.CreatedAt.UTC().Format(time.RFC3339), unverified,
		strings.Join(meta.Warnings, "\n"),
	)
	if err != nil {
		return fmt.Errorf("upserting post %q: %w", meta.Slug, err)
	}
	return nil
}

// Delete removes a post's row. Missing rows are not an error; the files are
// authoritative.
func (c *Catalog) Delete(slug string) error {
	if _, err := c.db.Exec(`DELETE FROM posts WHERE slug = ?`, slug); err != nil {
		return fmt.Errorf("deleting post %q from catalog: %w", slug, err)
	}
	return nil
}

// List returns all post metadata, newest first.
func (c *Catalog) List() ([]types.ArtifactMeta, error) {
	rows, err := c.db.Query(
		`SELECT slug, title, description, keywords, reading_time, sentiment, run_id, created_at, unverified, warnings
		 FROM posts ORDER BY created_at DESC, slug`)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var metas []types.ArtifactMeta
	for rows.Next() {
		meta, err := scanMeta(rows)
		if err != nil {
			return nil, err
		}
		metas = append(metas, meta)
	}
	return metas, rows.Err()
}

// Get returns one post's metadata by slug.
func (c *Catalog) Get(slug string) (types.ArtifactMeta, error) {
	rows, err := c.db.Query(
		`SELECT slug, title, description, keywords, reading_time, sentiment, run_id, created_at, unverified, warnings
		 FROM posts WHERE slug = ?`, slug)
	if err != nil {
		return types.ArtifactMeta{}, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return types.ArtifactMeta{}, fmt.Errorf("no catalog entry for %q", slug)
	}
	return scanMeta(rows)
}

func scanMeta(rows *sql.Rows) (types.ArtifactMeta, error) {
	var meta types.ArtifactMeta
	var keywords, sentiment, createdAt, warnings string
	var unverified int

	if err := rows.Scan(&meta.Slug, &meta.Title, &meta.Description, &keywords,
		&meta.ReadingTime, &sentiment, &meta.RunID, &createdAt, &unverified, &warnings); err != nil {
		return meta, fmt.Errorf("scanning catalog row: %w", err)
	}

	if keywords != "" {
		meta.Keywords = strings.Split(keywords, ",")
	}
	meta.Sentiment = types.SentimentLabel(sentiment)
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		meta.CreatedAt = t
	}
	meta.Unverified = unverified == 1
	if warnings != "" {
		meta.Warnings = strings.Split(warnings, "\n")
	}
	return meta, nil
}
