package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/MarekLipan/generated-adventures/models"
)

type generateCharactersRequest struct {
	Count int `json:"count"`
}

// GenerateCharactersHandler produces party candidates for the game's
// scenario, portraits included.
func (h *Handlers) GenerateCharactersHandler(w http.ResponseWriter, r *http.Request) {
	var req generateCharactersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	if req.Count < 1 {
		req.Count = 6
	}

	concepts, err := h.engine.GenerateCharacterConcepts(r.Context(), r.PathValue("id"), req.Count)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]models.Character{"characters": concepts})
}

// AddCharacterHandler adds a selected candidate to the party.
func (h *Handlers) AddCharacterHandler(w http.ResponseWriter, r *http.Request) {
	var character models.Character
	if err := json.NewDecoder(r.Body).Decode(&character); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	if err := h.engine.AddCharacter(r.Context(), r.PathValue("id"), character); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"added": true})
}
