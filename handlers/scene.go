package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MarekLipan/generated-adventures/models"
)

// OpeningSceneHandler generates scene 1 once the party is complete.
func (h *Handlers) OpeningSceneHandler(w http.ResponseWriter, r *http.Request) {
	scene, err := h.engine.GenerateOpeningScene(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]*models.Scene{"scene": scene})
}

type advanceSceneRequest struct {
	// PlayerAction is the literal free-text response. Null on session
	// resumption, when a scene is generated without a pending response.
	PlayerAction *string `json:"player_action"`
	// Responses carries per-character answers for prompts addressed to
	// several characters, keyed by character name.
	Responses map[string]string `json:"responses,omitempty"`
}

// AdvanceSceneHandler records the player's response and generates the next
// scene.
func (h *Handlers) AdvanceSceneHandler(w http.ResponseWriter, r *http.Request) {
	var req advanceSceneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	id := r.PathValue("id")
	game, err := h.engine.GetGame(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	var lastPrompt *models.Prompt
	if scene := game.CurrentScene(); scene != nil {
		lastPrompt = &scene.Prompt
	}
	action := formatPlayerAction(lastPrompt, req.PlayerAction, req.Responses)

	scene, err := h.engine.AdvanceScene(r.Context(), id, action)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]*models.Scene{"scene": scene})
}

// formatPlayerAction renders the UI's raw input into the literal action
// string recorded in the history: dialogue is quoted, multi-character
// responses become "Name1: value1, Name2: value2", everything else is passed
// through as typed.
func formatPlayerAction(prompt *models.Prompt, action *string, responses map[string]string) *string {
	if len(responses) > 0 {
		parts := make([]string, 0, len(responses))
		if prompt != nil && len(prompt.TargetCharacters) > 0 {
			for _, name := range prompt.TargetCharacters {
				if value, ok := responses[name]; ok {
					parts = append(parts, fmt.Sprintf("%s: %s", name, value))
				}
			}
		} else {
			for name, value := range responses {
				parts = append(parts, fmt.Sprintf("%s: %s", name, value))
			}
		}
		combined := strings.Join(parts, ", ")
		return &combined
	}

	if action == nil {
		return nil
	}
	if prompt != nil && prompt.Type == models.PromptDialogue {
		quoted := fmt.Sprintf("%q", *action)
		return &quoted
	}
	return action
}
