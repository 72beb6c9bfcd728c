package gen

import (
	"context"
	"fmt"

	"github.com/MarekLipan/generated-adventures/models"
	"github.com/MarekLipan/generated-adventures/prompts"
)

// CharacterUpdate is the full replacement character sheet the backend returns
// after every scene. Matched to the roster by name; unknown names are skipped.
type CharacterUpdate struct {
	Name          string   `json:"name"`
	Strength      int      `json:"strength"`
	Intelligence  int      `json:"intelligence"`
	Agility       int      `json:"agility"`
	MaximumHealth int      `json:"maximum_health"`
	CurrentHealth int      `json:"current_health"`
	Backstory     string   `json:"backstory"`
	Appearance    string   `json:"appearance"`
	Personality   string   `json:"personality"`
	Skills        []string `json:"skills"`
	Inventory     []string `json:"inventory"`
}

// AssetSighting is an NPC or notable object the backend reports as present in
// the new scene.
type AssetSighting struct {
	Name        string           `json:"name"`
	Type        models.AssetType `json:"type"`
	Description string           `json:"description"`
}

// SceneTurn is the structured result of one narrative generation call.
type SceneTurn struct {
	SceneText         string            `json:"scene_text"`
	Prompt            models.Prompt     `json:"prompt"`
	UpdatedCharacters []CharacterUpdate `json:"updated_characters"`
	GameStatus        models.GameStatus `json:"game_status"`
	VisibleAssets     []AssetSighting   `json:"visible_assets"`
}

// Validate rejects a SceneTurn that violates the response contract. Checked
// at the boundary so the orchestrator never touches a half-valid result.
func (t *SceneTurn) Validate() error {
	if t.SceneText == "" {
		return fmt.Errorf("scene_text is empty")
	}
	if err := t.Prompt.Validate(); err != nil {
		return fmt.Errorf("invalid prompt: %w", err)
	}
	if !t.GameStatus.Valid() {
		return fmt.Errorf("unknown game_status %q", t.GameStatus)
	}
	for _, sighting := range t.VisibleAssets {
		if sighting.Name == "" {
			return fmt.Errorf("visible asset with empty name")
		}
		if sighting.Type != models.AssetNPC && sighting.Type != models.AssetObject {
			return fmt.Errorf("visible asset %q has unknown type %q", sighting.Name, sighting.Type)
		}
	}
	return nil
}

// Generator is the generative backend consumed by the game engine. The Gemini
// implementation lives in this package; tests inject fakes.
type Generator interface {
	// GenerateScenarios produces scenario titles for the new-game picker.
	GenerateScenarios(ctx context.Context) ([]string, error)

	// GenerateScenarioDetails produces the DM background notes for a
	// scenario, as markdown.
	GenerateScenarioDetails(ctx context.Context, scenarioName string) (string, error)

	// GenerateCharacters produces party candidates fitting the scenario.
	GenerateCharacters(ctx context.Context, scenarioName string, count int) ([]models.Character, error)

	// GenerateScene produces the next narrative beat from the full request
	// context. The backend is stateless between calls; req carries the
	// entire conversation history.
	GenerateScene(ctx context.Context, req *prompts.SceneRequest) (*SceneTurn, error)

	// GenerateImage renders a single raster image for the given prompt.
	// refs are reference images (previous illustration, portraits) passed
	// along for visual continuity. Returns PNG bytes.
	GenerateImage(ctx context.Context, prompt string, refs [][]byte) ([]byte, error)

	// GenerateSpeech narrates text with the configured voice. Returns a
	// complete WAV file (mono, 16-bit, 24kHz).
	GenerateSpeech(ctx context.Context, text string) ([]byte, error)
}
