package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/MarekLipan/generated-adventures/config"
)

// ScenariosHandler generates scenario titles for the new-game picker.
func (h *Handlers) ScenariosHandler(w http.ResponseWriter, r *http.Request) {
	scenarios, err := h.engine.GenerateScenarios(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"scenarios": scenarios})
}

type selectScenarioRequest struct {
	ScenarioName string `json:"scenario_name"`
}

// SelectScenarioHandler records the chosen scenario on a game.
func (h *Handlers) SelectScenarioHandler(w http.ResponseWriter, r *http.Request) {
	var req selectScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	if err := h.engine.SelectScenario(r.Context(), r.PathValue("id"), req.ScenarioName); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"selected": true})
}

type scenarioDetailsResponse struct {
	Generated       bool   `json:"generated"`
	ScenarioDetails string `json:"scenario_details,omitempty"`
}

// GenerateDetailsHandler generates the DM background notes for the selected
// scenario. The notes themselves are only echoed back when DM notes are
// enabled.
func (h *Handlers) GenerateDetailsHandler(w http.ResponseWriter, r *http.Request) {
	details, err := h.engine.GenerateScenarioDetails(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	resp := scenarioDetailsResponse{Generated: true}
	if config.ShowDMNotes() {
		resp.ScenarioDetails = details
	}
	writeJSON(w, http.StatusOK, resp)
}
