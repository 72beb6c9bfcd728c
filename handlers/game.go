package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/MarekLipan/generated-adventures/config"
	"github.com/MarekLipan/generated-adventures/models"
)

type createGameRequest struct {
	Players int `json:"players"`
}

type createGameResponse struct {
	GameID string `json:"game_id"`
}

// CreateGameHandler starts a new empty game.
func (h *Handlers) CreateGameHandler(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	game, err := h.engine.CreateGame(r.Context(), req.Players)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, createGameResponse{GameID: game.ID})
}

// ListGamesHandler returns summaries of every saved game for the resume
// screen.
func (h *Handlers) ListGamesHandler(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.engine.ListGames(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"games": summaries})
}

// GameDetailHandler returns the full game state. Scenario details are for the
// Dungeon Master and stay hidden unless SHOW_DM_NOTES is enabled.
func (h *Handlers) GameDetailHandler(w http.ResponseWriter, r *http.Request) {
	game, err := h.engine.GetGame(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, redactGame(game))
}

// DeleteGameHandler removes a saved game on explicit player request.
func (h *Handlers) DeleteGameHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.engine.DeleteGame(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func redactGame(game *models.Game) *models.Game {
	if config.ShowDMNotes() {
		return game
	}
	redacted := game.Clone()
	redacted.ScenarioDetails = ""
	return redacted
}
