package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GameStatus reports whether the adventure is still playable after a scene.
type GameStatus string

const (
	StatusOngoing   GameStatus = "ongoing"
	StatusCompleted GameStatus = "completed"
	StatusFailed    GameStatus = "failed"
)

// Valid reports whether s is one of the three known statuses.
func (s GameStatus) Valid() bool {
	switch s {
	case StatusOngoing, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

// Terminal reports whether the status ends the game.
func (s GameStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Character represents a single party member.
type Character struct {
	Name          string   `json:"name" bson:"name"`
	Strength      int      `json:"strength" bson:"strength"`
	Intelligence  int      `json:"intelligence" bson:"intelligence"`
	Agility       int      `json:"agility" bson:"agility"`
	MaximumHealth int      `json:"maximum_health" bson:"maximum_health"`
	CurrentHealth int      `json:"current_health" bson:"current_health"`
	Backstory     string   `json:"backstory" bson:"backstory"`
	Appearance    string   `json:"appearance" bson:"appearance"`
	Personality   string   `json:"personality" bson:"personality"`
	Skills        []string `json:"skills" bson:"skills"`
	Inventory     []string `json:"inventory" bson:"inventory"`
	ImagePath     string   `json:"image_path,omitempty" bson:"image_path,omitempty"`
}

// Stat bounds for strength, intelligence and agility.
const (
	StatMin = 0
	StatMax = 20
)

// Validate checks the character invariants: stats within [0, 20],
// maximum_health >= 1 and current_health within [0, maximum_health].
func (c *Character) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("character has no name")
	}
	for _, stat := range []struct {
		name  string
		value int
	}{
		{"strength", c.Strength},
		{"intelligence", c.Intelligence},
		{"agility", c.Agility},
	} {
		if stat.value < StatMin || stat.value > StatMax {
			return fmt.Errorf("character %q: %s %d out of range [%d, %d]", c.Name, stat.name, stat.value, StatMin, StatMax)
		}
	}
	if c.MaximumHealth < 1 {
		return fmt.Errorf("character %q: maximum_health %d must be at least 1", c.Name, c.MaximumHealth)
	}
	if c.CurrentHealth < 0 || c.CurrentHealth > c.MaximumHealth {
		return fmt.Errorf("character %q: current_health %d out of range [0, %d]", c.Name, c.CurrentHealth, c.MaximumHealth)
	}
	return nil
}

// AssetType distinguishes recurring NPCs from notable objects.
type AssetType string

const (
	AssetNPC    AssetType = "npc"
	AssetObject AssetType = "object"
)

// Asset is a recurring NPC or notable object tracked so illustrations stay
// visually consistent across scenes.
type Asset struct {
	ID          string    `json:"id" bson:"id"`
	Name        string    `json:"name" bson:"name"`
	Type        AssetType `json:"type" bson:"type"`
	Description string    `json:"description" bson:"description"`
	ImagePath   string    `json:"image_path,omitempty" bson:"image_path,omitempty"`
}

// Scene is one immutable narrative beat plus its follow-up prompt.
type Scene struct {
	ID            int        `json:"id" bson:"id"`
	Text          string     `json:"text" bson:"text"`
	Prompt        Prompt     `json:"prompt" bson:"prompt"`
	ImagePath     string     `json:"image_path,omitempty" bson:"image_path,omitempty"`
	AudioPath     string     `json:"audio_path,omitempty" bson:"audio_path,omitempty"`
	VisibleAssets []string   `json:"visible_assets,omitempty" bson:"visible_assets,omitempty"`
	GameStatus    GameStatus `json:"game_status" bson:"game_status"`
}

// Game is the aggregate root for a single adventure. It exclusively owns its
// characters, scenes and assets; mutation goes through the game engine only.
type Game struct {
	ID              string           `json:"id" bson:"_id"`
	Players         int              `json:"players" bson:"players"`
	ScenarioName    string           `json:"scenario_name,omitempty" bson:"scenario_name,omitempty"`
	ScenarioDetails string           `json:"scenario_details,omitempty" bson:"scenario_details,omitempty"`
	Characters      []Character      `json:"characters" bson:"characters"`
	Scenes          []Scene          `json:"scenes" bson:"scenes"`
	PlayerActions   []string         `json:"player_actions" bson:"player_actions"`
	Assets          map[string]Asset `json:"assets,omitempty" bson:"assets,omitempty"`
	CreatedAt       time.Time        `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at" bson:"updated_at"`
}

// NewGame creates an empty game for the given number of players.
func NewGame(players int) *Game {
	now := time.Now().UTC()
	return &Game{
		ID:        uuid.NewString(),
		Players:   players,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CurrentScene returns the last scene, or nil before the opening scene.
func (g *Game) CurrentScene() *Scene {
	if len(g.Scenes) == 0 {
		return nil
	}
	return &g.Scenes[len(g.Scenes)-1]
}

// Status derives the game status from the last scene.
func (g *Game) Status() GameStatus {
	scene := g.CurrentScene()
	if scene == nil {
		return StatusOngoing
	}
	return scene.GameStatus
}

// Character returns the party member with the given name, or nil.
func (g *Game) Character(name string) *Character {
	for i := range g.Characters {
		if g.Characters[i].Name == name {
			return &g.Characters[i]
		}
	}
	return nil
}

// AssetByName returns the tracked asset with the given name, or nil.
// Assets are keyed by id in the map but looked up by name on reuse.
func (g *Game) AssetByName(name string) *Asset {
	for id, asset := range g.Assets {
		if asset.Name == name {
			a := g.Assets[id]
			return &a
		}
	}
	return nil
}

// Clone returns a deep copy of the game. Scene transitions mutate a clone and
// swap it in only after persistence succeeds, so a failed transition never
// leaves a half-updated game behind.
func (g *Game) Clone() *Game {
	clone := *g
	clone.Characters = make([]Character, len(g.Characters))
	for i, c := range g.Characters {
		clone.Characters[i] = c
		clone.Characters[i].Skills = append([]string(nil), c.Skills...)
		clone.Characters[i].Inventory = append([]string(nil), c.Inventory...)
	}
	clone.Scenes = make([]Scene, len(g.Scenes))
	for i, s := range g.Scenes {
		clone.Scenes[i] = s
		clone.Scenes[i].VisibleAssets = append([]string(nil), s.VisibleAssets...)
		if s.Prompt.TargetCharacters != nil {
			clone.Scenes[i].Prompt.TargetCharacters = append([]string(nil), s.Prompt.TargetCharacters...)
		}
	}
	clone.PlayerActions = append([]string(nil), g.PlayerActions...)
	if g.Assets != nil {
		clone.Assets = make(map[string]Asset, len(g.Assets))
		for id, a := range g.Assets {
			clone.Assets[id] = a
		}
	}
	return &clone
}
