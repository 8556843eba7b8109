// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package storage persists published artifacts as Markdown/HTML file pairs
// keyed by slug, with a SQLite catalog as a derived index for listing. The
// files are the source of truth; the catalog can always be rebuilt from
// them.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/blogsmith/pkg/types"
)

// frontMatterDelim separates the YAML front matter from the Markdown body.
const frontMatterDelim = "---\n"

// maxSlugProbes bounds collision resolution; a directory with this many
// same-slug posts indicates something else is wrong.
const maxSlugProbes = 1000

// Store manages the posts directory and its catalog.
type Store struct {
	dir     string
	catalog *Catalog
}

// NewStore creates the posts directory if needed and opens the catalog.
func NewStore(cfg types.StorageConfig) (*Store, error) {
	dir := cfg.PostsDir
	if dir == "" {
		dir = "posts"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating posts directory: %w", err)
	}

	catalogPath := cfg.CatalogPath
	if catalogPath == "" {
		catalogPath = filepath.Join(dir, "catalog.db")
	}
	catalog, err := NewCatalog(catalogPath)
	if err != nil {
		return nil, err
	}

	return &Store{dir: dir, catalog: catalog}, nil
}

// Close releases the catalog connection.
func (s *Store) Close() error {
	return s.catalog.Close()
}

// Save persists a new artifact. When the derived slug is already taken it
// probes slug-2, slug-3, ... and claims the first free name with an
// exclusive create, so near-simultaneous runs never pick the same filename.
// The artifact's Meta.Slug is updated to the claimed slug.
func (s *Store) Save(artifact *types.PublishedArtifact) error {
	base := artifact.Meta.Slug
	if base == "" {
		return fmt.Errorf("artifact has no slug")
	}

	for i := 1; i <= maxSlugProbes; i++ {
		slug := base
		if i > 1 {
			slug = fmt.Sprintf("%s-%d", base, i)
		}

		f, err := os.OpenFile(s.markdownPath(slug), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err != nil {
			if os.IsExist(err) {
				continue
			}
			return fmt.Errorf("creating %s.md: %w", slug, err)
		}

		artifact.Meta.Slug = slug
		if err := s.writeTo(f, artifact); err != nil {
			f.Close()
			os.Remove(s.markdownPath(slug))
			return err
		}
		if err := f.Close(); err != nil {
			os.Remove(s.markdownPath(slug))
			return fmt.Errorf("writing %s.md: %w", slug, err)
		}

		if err := s.finishSave(artifact); err != nil {
			// Release the slug; a half-saved post must not claim the name.
			os.Remove(s.markdownPath(slug))
			return err
		}
		return nil
	}
	return fmt.Errorf("no free slug for %q after %d probes", base, maxSlugProbes)
}

// Update rewrites an existing artifact under its current slug. The Markdown
// is written to a temporary file and renamed over the old one.
func (s *Store) Update(artifact *types.PublishedArtifact) error {
	slug := artifact.Meta.Slug
	if slug == "" {
		return fmt.Errorf("artifact has no slug")
	}
	if _, err := os.Stat(s.markdownPath(slug)); err != nil {
		return fmt.Errorf("no saved post with slug %q: %w", slug, err)
	}

	tmp, err := os.CreateTemp(s.dir, slug+".md.tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	if err := s.writeTo(tmp, artifact); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.markdownPath(slug)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing %s.md: %w", slug, err)
	}

	return s.finishSave(artifact)
}

// writeTo writes the front matter and Markdown body.
func (s *Store) writeTo(f *os.File, artifact *types.PublishedArtifact) error {
	meta, err := yaml.Marshal(artifact.Meta)
	if err != nil {
		return fmt.Errorf("encoding front matter: %w", err)
	}
	content := frontMatterDelim + string(meta) + frontMatterDelim + "\n" + artifact.Markdown
	if _, err := f.WriteString(content); err != nil {
		return fmt.Errorf("writing markdown: %w", err)
	}
	return nil
}

// finishSave writes the HTML rendering and the catalog row.
func (s *Store) finishSave(artifact *types.PublishedArtifact) error {
	slug := artifact.Meta.Slug
	if err := os.WriteFile(s.htmlPath(slug), []byte(artifact.HTML), 0o644); err != nil {
		return fmt.Errorf("writing %s.html: %w", slug, err)
	}
	if err := s.catalog.Upsert(artifact.Meta); err != nil {
		return fmt.Errorf("updating catalog: %w", err)
	}
	return nil
}

// Load reads a saved artifact by slug: front matter, Markdown body, and the
// HTML rendering when present.
func (s *Store) Load(slug string) (*types.PublishedArtifact, error) {
	data, err := os.ReadFile(s.markdownPath(slug))
	if err != nil {
		return nil, fmt.Errorf("reading post %q: %w", slug, err)
	}

	meta, markdown, err := splitFrontMatter(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing post %q: %w", slug, err)
	}
	meta.Slug = slug

	artifact := &types.PublishedArtifact{Meta: meta, Markdown: markdown}
	if html, err := os.ReadFile(s.htmlPath(slug)); err == nil {
		artifact.HTML = string(html)
	}
	return artifact, nil
}

// List returns saved post metadata, newest first.
func (s *Store) List() ([]types.ArtifactMeta, error) {
	return s.catalog.List()
}

// Delete removes a post's files and catalog row. Deleting a slug that does
// not exist is an error.
func (s *Store) Delete(slug string) error {
	if err := os.Remove(s.markdownPath(slug)); err != nil {
		return fmt.Errorf("deleting post %q: %w", slug, err)
	}
	// The HTML rendering may be absent; only the Markdown is canonical.
	if err := os.Remove(s.htmlPath(slug)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting %s.html: %w", slug, err)
	}
	return s.catalog.Delete(slug)
}

// Reindex rebuilds the catalog from the files on disk.
func (s *Store) Reindex() (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("reading posts directory: %w", err)
	}

	count := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		slug := strings.TrimSuffix(entry.Name(), ".md")
		artifact, err := s.Load(slug)
		if err != nil {
			return count, err
		}
		if err := s.catalog.Upsert(artifact.Meta); err != nil {
			return count, fmt.Errorf("indexing %q: %w", slug, err)
		}
		count++
	}
	return count, nil
}

func (s *Store) markdownPath(slug string) string {
	return filepath.Join(s.dir, slug+".md")
}

func (s *Store) htmlPath(slug string) string {
	return filepath.Join(s.dir, slug+".html")
}

// splitFrontMatter separates the YAML front matter from the body.
func splitFrontMatter(content string) (types.ArtifactMeta, string, error) {
	var meta types.ArtifactMeta

	if !strings.HasPrefix(content, frontMatterDelim) {
		// Legacy or hand-written post: no front matter, whole file is body.
		return meta, content, nil
	}

	rest := content[len(frontMatterDelim):]
	end := strings.Index(rest, frontMatterDelim)
	if end < 0 {
		return meta, "", fmt.Errorf("unterminated front matter")
	}

	if err := yaml.Unmarshal([]byte(rest[:end]), &meta); err != nil {
		return meta, "", fmt.Errorf("parsing front matter: %w", err)
	}
	body := strings.TrimPrefix(rest[end+len(frontMatterDelim):], "\n")
	return meta, body, nil
}
