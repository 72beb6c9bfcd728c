package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/MarekLipan/generated-adventures/gen"
	"github.com/MarekLipan/generated-adventures/media"
	"github.com/MarekLipan/generated-adventures/models"
	"github.com/MarekLipan/generated-adventures/prompts"
	"github.com/MarekLipan/generated-adventures/store"
)

var (
	// ErrNotReady is returned when a game has not reached the state a step
	// requires (no scenario yet, party incomplete, and so on).
	ErrNotReady = errors.New("game is not ready for this step")
	// ErrGameOver is returned when a scene is requested after the adventure
	// ended.
	ErrGameOver = errors.New("the adventure has already ended")
)

// Engine drives game progression: it owns every mutation of a Game, from
// creation through scenario and party selection to scene generation.
// Dependencies are injected so the engine is testable with fakes.
type Engine struct {
	store *store.Registry
	gen   gen.Generator
	media *media.Store
}

func New(registry *store.Registry, generator gen.Generator, mediaStore *media.Store) *Engine {
	return &Engine{store: registry, gen: generator, media: mediaStore}
}

// CreateGame initializes an empty game for the given number of players.
func (e *Engine) CreateGame(ctx context.Context, players int) (*models.Game, error) {
	if players < 1 {
		return nil, fmt.Errorf("%w: at least one player required", ErrNotReady)
	}
	game := models.NewGame(players)
	if err := e.store.Put(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

// GetGame returns the game, loading it from disk on first access.
func (e *Engine) GetGame(ctx context.Context, id string) (*models.Game, error) {
	return e.store.Get(ctx, id)
}

// ListGames returns summaries of every saved game.
func (e *Engine) ListGames(ctx context.Context) ([]store.GameSummary, error) {
	return e.store.List(ctx)
}

// DeleteGame removes a game permanently. Only ever called on explicit player
// request.
func (e *Engine) DeleteGame(ctx context.Context, id string) error {
	return e.store.Delete(ctx, id)
}

// GenerateScenarios produces scenario titles for the new-game picker.
func (e *Engine) GenerateScenarios(ctx context.Context) ([]string, error) {
	return e.gen.GenerateScenarios(ctx)
}

// SelectScenario records the chosen scenario on the game.
func (e *Engine) SelectScenario(ctx context.Context, id, scenarioName string) error {
	if scenarioName == "" {
		return fmt.Errorf("%w: scenario name is empty", ErrNotReady)
	}
	unlock := e.store.Lock(id)
	defer unlock()

	game, err := e.store.Get(ctx, id)
	if err != nil {
		return err
	}
	work := game.Clone()
	work.ScenarioName = scenarioName
	work.UpdatedAt = time.Now().UTC()
	return e.store.Put(ctx, work)
}

// GenerateScenarioDetails generates and stores the DM background notes for
// the selected scenario.
func (e *Engine) GenerateScenarioDetails(ctx context.Context, id string) (string, error) {
	unlock := e.store.Lock(id)
	defer unlock()

	game, err := e.store.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if game.ScenarioName == "" {
		return "", fmt.Errorf("%w: no scenario selected", ErrNotReady)
	}

	details, err := e.gen.GenerateScenarioDetails(ctx, game.ScenarioName)
	if err != nil {
		return "", err
	}

	work := game.Clone()
	work.ScenarioDetails = details
	work.UpdatedAt = time.Now().UTC()
	if err := e.store.Put(ctx, work); err != nil {
		return "", err
	}
	return details, nil
}

// GenerateCharacterConcepts produces party candidates for the scenario, with
// a portrait per candidate. Portrait failures degrade to a concept without
// one.
func (e *Engine) GenerateCharacterConcepts(ctx context.Context, id string, count int) ([]models.Character, error) {
	game, err := e.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if game.ScenarioName == "" {
		return nil, fmt.Errorf("%w: no scenario selected", ErrNotReady)
	}

	concepts, err := e.gen.GenerateCharacters(ctx, game.ScenarioName, count)
	if err != nil {
		return nil, err
	}

	for i := range concepts {
		data, err := e.gen.GenerateImage(ctx, prompts.PortraitPrompt(&concepts[i]), nil)
		if err != nil {
			log.Printf("[PORTRAIT_ERROR] Portrait for %q failed: %v", concepts[i].Name, err)
			continue
		}
		path, err := e.media.Save(game.ID, fmt.Sprintf("portrait_%s.png", slug(concepts[i].Name)), data)
		if err != nil {
			log.Printf("[PORTRAIT_ERROR] Saving portrait for %q failed: %v", concepts[i].Name, err)
			continue
		}
		concepts[i].ImagePath = path
	}
	return concepts, nil
}

// AddCharacter adds a selected character to the party. The roster is capped
// at the player count and names must be unique, since they are the merge key.
func (e *Engine) AddCharacter(ctx context.Context, id string, character models.Character) error {
	if err := character.Validate(); err != nil {
		return err
	}
	unlock := e.store.Lock(id)
	defer unlock()

	game, err := e.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if len(game.Characters) >= game.Players {
		return fmt.Errorf("%w: the party is already complete", ErrNotReady)
	}
	if game.Character(character.Name) != nil {
		return fmt.Errorf("%w: character %q is already in the party", ErrNotReady, character.Name)
	}

	work := game.Clone()
	work.Characters = append(work.Characters, character)
	work.UpdatedAt = time.Now().UTC()
	return e.store.Put(ctx, work)
}

// GenerateOpeningScene generates scene 1. Requires the scenario to be chosen,
// its details generated and the party fully selected.
func (e *Engine) GenerateOpeningScene(ctx context.Context, id string) (*models.Scene, error) {
	return e.runTransition(ctx, id, nil, true)
}

// AdvanceScene records the player's action and generates the next scene.
// action is nil when resuming a session without a pending response.
func (e *Engine) AdvanceScene(ctx context.Context, id string, action *string) (*models.Scene, error) {
	return e.runTransition(ctx, id, action, false)
}

// runTransition is the single state-machine step that produces a scene.
// It operates on a clone of the game and swaps the clone in only after
// persistence succeeds: a failed transition leaves the stored game untouched
// and is safe to re-issue with the same inputs.
func (e *Engine) runTransition(ctx context.Context, id string, action *string, opening bool) (*models.Scene, error) {
	unlock := e.store.Lock(id)
	defer unlock()

	game, err := e.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if opening {
		if err := openingPreconditions(game); err != nil {
			return nil, err
		}
	} else {
		if len(game.Scenes) == 0 {
			return nil, fmt.Errorf("%w: the opening scene has not been generated", ErrNotReady)
		}
		if game.Status().Terminal() {
			return nil, ErrGameOver
		}
	}

	work := game.Clone()
	if action != nil {
		work.PlayerActions = append(work.PlayerActions, *action)
	}

	turn, err := e.gen.GenerateScene(ctx, sceneRequest(work, action))
	if err != nil {
		return nil, err
	}

	merged, _ := mergeCharacters(work.Characters, turn.UpdatedCharacters)
	work.Characters = merged

	visible := e.reconcileAssets(ctx, work, turn.VisibleAssets)
	sceneID := len(work.Scenes) + 1
	imagePath, audioPath := e.generateSceneMedia(ctx, work, turn, sceneID, visible)

	scene, err := assembleScene(sceneID, turn, imagePath, audioPath, visible)
	if err != nil {
		return nil, err
	}

	work.Scenes = append(work.Scenes, *scene)
	work.UpdatedAt = time.Now().UTC()
	if err := e.store.Put(ctx, work); err != nil {
		return nil, fmt.Errorf("failed to persist game: %w", err)
	}
	return scene, nil
}

func openingPreconditions(game *models.Game) error {
	switch {
	case game.ScenarioName == "":
		return fmt.Errorf("%w: no scenario selected", ErrNotReady)
	case game.ScenarioDetails == "":
		return fmt.Errorf("%w: scenario details have not been generated", ErrNotReady)
	case len(game.Characters) != game.Players:
		return fmt.Errorf("%w: party has %d of %d characters", ErrNotReady, len(game.Characters), game.Players)
	case len(game.Scenes) != 0:
		return fmt.Errorf("%w: the opening scene already exists", ErrNotReady)
	}
	return nil
}

// sceneRequest builds the full generation request from the game: character
// sheets, the complete ordered history and the pending action. The dice
// resolution rules ride along only when the immediately preceding prompt was
// a dice check.
func sceneRequest(work *models.Game, action *string) *prompts.SceneRequest {
	history := make([]prompts.HistoryEntry, len(work.Scenes))
	for i, scene := range work.Scenes {
		entry := prompts.HistoryEntry{
			SceneID:   scene.ID,
			SceneText: scene.Text,
			Prompt:    scene.Prompt,
		}
		if i < len(work.PlayerActions) {
			response := work.PlayerActions[i]
			entry.PlayerAction = &response
		}
		history[i] = entry
	}

	prevDice := false
	if last := work.CurrentScene(); last != nil {
		prevDice = last.Prompt.Type == models.PromptDiceCheck
	}

	return &prompts.SceneRequest{
		ScenarioName:         work.ScenarioName,
		ScenarioDetails:      work.ScenarioDetails,
		Characters:           work.Characters,
		History:              history,
		PlayerAction:         action,
		PreviousWasDiceCheck: prevDice,
		KnownAssets:          knownAssets(work),
	}
}

// generateSceneMedia runs illustration and voice narration concurrently.
// The two are independent and both are enhancements: either may fail without
// failing the transition, the scene just ships without that medium.
func (e *Engine) generateSceneMedia(ctx context.Context, work *models.Game, turn *gen.SceneTurn, sceneID int, visible []string) (imagePath, audioPath string) {
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		imagePath = e.generateIllustration(ctx, work, turn, sceneID, visible)
	}()
	go func() {
		defer wg.Done()
		audioPath = e.generateNarration(ctx, work.ID, turn.SceneText, sceneID)
	}()

	wg.Wait()
	return imagePath, audioPath
}

// generateIllustration renders the scene image, feeding back the previous
// scene's illustration for continuity plus party portraits and reference
// images of the assets in frame. Returns "" on failure.
func (e *Engine) generateIllustration(ctx context.Context, work *models.Game, turn *gen.SceneTurn, sceneID int, visible []string) string {
	var refs [][]byte
	addRef := func(path string) {
		if path == "" {
			return
		}
		data, err := e.media.Read(path)
		if err != nil {
			log.Printf("[IMAGE_REF_SKIP] Could not read reference %s: %v", path, err)
			return
		}
		refs = append(refs, data)
	}

	if prev := work.CurrentScene(); prev != nil {
		addRef(prev.ImagePath)
	}
	for _, c := range work.Characters {
		addRef(c.ImagePath)
	}
	visibleAssets := make([]models.Asset, 0, len(visible))
	for _, assetID := range visible {
		if asset, ok := work.Assets[assetID]; ok {
			visibleAssets = append(visibleAssets, asset)
			addRef(asset.ImagePath)
		}
	}

	prompt := prompts.IllustrationPrompt(turn.SceneText, visibleAssets, len(refs) > 0)
	data, err := e.gen.GenerateImage(ctx, prompt, refs)
	if err != nil {
		log.Printf("[IMAGE_ERROR] Illustration for scene %d failed: %v", sceneID, err)
		return ""
	}
	path, err := e.media.Save(work.ID, fmt.Sprintf("scene_%d.png", sceneID), data)
	if err != nil {
		log.Printf("[IMAGE_ERROR] Saving illustration for scene %d failed: %v", sceneID, err)
		return ""
	}
	return path
}

// generateNarration produces the voice-over WAV. Returns "" on failure.
func (e *Engine) generateNarration(ctx context.Context, gameID, text string, sceneID int) string {
	data, err := e.gen.GenerateSpeech(ctx, text)
	if err != nil {
		log.Printf("[VOICE_ERROR] Narration for scene %d failed: %v", sceneID, err)
		return ""
	}
	path, err := e.media.Save(gameID, fmt.Sprintf("scene_%d.wav", sceneID), data)
	if err != nil {
		log.Printf("[VOICE_ERROR] Saving narration for scene %d failed: %v", sceneID, err)
		return ""
	}
	return path
}

// assembleScene builds the immutable scene record, re-validating the prompt
// invariant. Missing media references are allowed; an invalid prompt is not.
func assembleScene(sceneID int, turn *gen.SceneTurn, imagePath, audioPath string, visible []string) (*models.Scene, error) {
	if err := turn.Prompt.Validate(); err != nil {
		return nil, &gen.GenerationError{
			Title:   "Scene generation failed",
			Message: "The AI service returned an invalid prompt",
			Err:     err,
		}
	}
	if !turn.GameStatus.Valid() {
		return nil, &gen.GenerationError{
			Title:   "Scene generation failed",
			Message: "The AI service returned an unknown game status",
			Err:     fmt.Errorf("game_status %q", turn.GameStatus),
		}
	}
	return &models.Scene{
		ID:            sceneID,
		Text:          turn.SceneText,
		Prompt:        turn.Prompt,
		ImagePath:     imagePath,
		AudioPath:     audioPath,
		VisibleAssets: visible,
		GameStatus:    turn.GameStatus,
	}, nil
}

// slug makes a character name safe for a file name.
func slug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteByte('-')
		}
	}
	if b.Len() == 0 {
		return "character"
	}
	return b.String()
}
