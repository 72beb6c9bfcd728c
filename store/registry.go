package store

import (
	"context"
	"sync"

	"github.com/MarekLipan/generated-adventures/models"
)

// Registry is the in-memory map of active games, fronting a GameStore.
// It also hands out per-game locks so scene transitions on the same game are
// serialized: the merger and scene append do not tolerate interleaved writers.
type Registry struct {
	mu    sync.Mutex
	games map[string]*models.Game
	locks map[string]*sync.Mutex
	store GameStore
}

func NewRegistry(store GameStore) *Registry {
	return &Registry{
		games: make(map[string]*models.Game),
		locks: make(map[string]*sync.Mutex),
		store: store,
	}
}

// Get returns the active game, loading it from the backing store on first
// access (session resumption).
func (r *Registry) Get(ctx context.Context, id string) (*models.Game, error) {
	r.mu.Lock()
	game, ok := r.games[id]
	r.mu.Unlock()
	if ok {
		return game, nil
	}

	game, err := r.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	// Another goroutine may have loaded it meanwhile; keep the first copy.
	if cached, ok := r.games[id]; ok {
		game = cached
	} else {
		r.games[id] = game
	}
	r.mu.Unlock()
	return game, nil
}

// Put persists the game, then swaps it into the in-memory map. The map is
// only updated after the write succeeds, so a failed persist leaves the
// cached state untouched.
func (r *Registry) Put(ctx context.Context, game *models.Game) error {
	if err := r.store.Put(ctx, game); err != nil {
		return err
	}
	r.mu.Lock()
	r.games[game.ID] = game
	r.mu.Unlock()
	return nil
}

// List reads summaries from the backing store.
func (r *Registry) List(ctx context.Context) ([]GameSummary, error) {
	return r.store.List(ctx)
}

// Delete removes the game from the store and from memory.
func (r *Registry) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, id); err != nil {
		return err
	}
	r.mu.Lock()
	delete(r.games, id)
	delete(r.locks, id)
	r.mu.Unlock()
	return nil
}

// Lock acquires the transition lock for a game id and returns the unlock
// function. One in-flight transition per game at a time.
func (r *Registry) Lock(id string) func() {
	r.mu.Lock()
	lock, ok := r.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		r.locks[id] = lock
	}
	r.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
