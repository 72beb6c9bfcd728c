// Package media stores generated images and narration audio on disk, keyed
// by game id, and maps them to the URLs the HTTP layer serves them under.
package media

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// URLPrefix is the route the HTTP layer serves media files from.
const URLPrefix = "/media/"

type Store struct {
	dir string
}

// NewStore creates the media directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the on-disk root, for wiring the file server.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes a blob for a game and returns the URL path it is served under.
func (s *Store) Save(gameID, name string, data []byte) (string, error) {
	dir := filepath.Join(s.dir, gameID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return "", err
	}
	return URLPrefix + gameID + "/" + name, nil
}

// Read loads a previously saved blob by its URL path. Used to feed earlier
// illustrations and portraits back into image generation as references.
func (s *Store) Read(urlPath string) ([]byte, error) {
	rel, ok := strings.CutPrefix(urlPath, URLPrefix)
	if !ok || rel == "" {
		return nil, fmt.Errorf("not a media path: %q", urlPath)
	}
	rel = filepath.Clean(rel)
	if strings.HasPrefix(rel, "..") || filepath.IsAbs(rel) {
		return nil, fmt.Errorf("invalid media path: %q", urlPath)
	}
	return os.ReadFile(filepath.Join(s.dir, rel))
}
