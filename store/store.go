package store

import (
	"context"
	"errors"

	"github.com/MarekLipan/generated-adventures/models"
)

// ErrNotFound is returned when no game exists for the requested id.
var ErrNotFound = errors.New("game not found")

// GameSummary is the listing shape for the resume screen.
type GameSummary struct {
	ID           string `json:"id"`
	ScenarioName string `json:"scenario_name"`
	Characters   int    `json:"characters"`
	Scenes       int    `json:"scenes"`
}

// GameStore persists whole game documents keyed by game id. Writes replace
// the entire record; there are no partial updates.
type GameStore interface {
	Get(ctx context.Context, id string) (*models.Game, error)
	Put(ctx context.Context, game *models.Game) error
	List(ctx context.Context) ([]GameSummary, error)
	Delete(ctx context.Context, id string) error
}

func summarize(g *models.Game) GameSummary {
	name := g.ScenarioName
	if name == "" {
		name = "Unknown Scenario"
	}
	return GameSummary{
		ID:           g.ID,
		ScenarioName: name,
		Characters:   len(g.Characters),
		Scenes:       len(g.Scenes),
	}
}
