// Package handlers exposes the game engine as the JSON HTTP API the browser
// UI talks to.
package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/MarekLipan/generated-adventures/game"
	"github.com/MarekLipan/generated-adventures/gen"
	"github.com/MarekLipan/generated-adventures/store"
)

// Handlers carries the injected engine. No package-level state.
type Handlers struct {
	engine *game.Engine
}

func New(engine *game.Engine) *Handlers {
	return &Handlers{engine: engine}
}

type errorResponse struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps engine failures onto HTTP statuses. Generation failures
// keep their title and message so the UI can offer a retry that re-issues
// the exact same transition.
func writeError(w http.ResponseWriter, err error) {
	var genErr *gen.GenerationError
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Title: "Not found", Message: "Game not found"})
	case errors.Is(err, game.ErrGameOver):
		writeJSON(w, http.StatusConflict, errorResponse{Title: "Game over", Message: "The adventure has already ended"})
	case errors.Is(err, game.ErrNotReady):
		writeJSON(w, http.StatusConflict, errorResponse{Title: "Not ready", Message: err.Error()})
	case errors.As(err, &genErr):
		writeJSON(w, http.StatusBadGateway, errorResponse{Title: genErr.Title, Message: genErr.Message})
	default:
		log.Printf("[HANDLER_ERROR] %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Title: "Internal error", Message: "Something went wrong"})
	}
}
