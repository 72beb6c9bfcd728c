package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/MarekLipan/generated-adventures/models"
)

// FileStore keeps one JSON file per game under dir. This is the default
// persistence backend.
type FileStore struct {
	dir string
}

// NewFileStore creates the games directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create games directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}

func (s *FileStore) Get(ctx context.Context, id string) (*models.Game, error) {
	data, err := os.ReadFile(s.path(id))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var game models.Game
	if err := json.Unmarshal(data, &game); err != nil {
		return nil, fmt.Errorf("corrupted game file %s: %w", s.path(id), err)
	}
	return &game, nil
}

func (s *FileStore) Put(ctx context.Context, game *models.Game) error {
	data, err := json.MarshalIndent(game, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(game.ID), data, 0o644)
}

// List returns summaries of every saved game. Corrupted files are skipped.
func (s *FileStore) List(ctx context.Context) ([]GameSummary, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	summaries := []GameSummary{}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			continue
		}
		var game models.Game
		if err := json.Unmarshal(data, &game); err != nil {
			log.Printf("[STORE_SKIP] Skipping corrupted game file %s: %v", entry.Name(), err)
			continue
		}
		if game.ID == "" {
			game.ID = entry.Name()[:len(entry.Name())-len(".json")]
		}
		summaries = append(summaries, summarize(&game))
	}
	return summaries, nil
}

func (s *FileStore) Delete(ctx context.Context, id string) error {
	err := os.Remove(s.path(id))
	if os.IsNotExist(err) {
		return ErrNotFound
	}
	return err
}
