package prompts

import (
	"strings"
	"testing"

	"github.com/MarekLipan/generated-adventures/models"
)

func testRequest() *SceneRequest {
	response := "I draw my sword"
	return &SceneRequest{
		ScenarioName:    "Siege of Emberhold",
		ScenarioDetails: "## The Plot\nHold the gate.",
		Characters: []models.Character{{
			Name:          "Kaelen",
			Strength:      14,
			Intelligence:  9,
			Agility:       12,
			MaximumHealth: 100,
			CurrentHealth: 80,
			Backstory:     "A disgraced knight.",
			Skills:        []string{"Swordplay", "Siegecraft"},
			Inventory:     []string{"Longsword"},
		}},
		History: []HistoryEntry{{
			SceneID:   1,
			SceneText: "The gates groan under the first assault.",
			Prompt: models.Prompt{
				Type:            models.PromptDiceCheck,
				DiceType:        models.DiceD6,
				TargetCharacter: "Kaelen",
				PromptText:      "Kaelen, roll a d6",
			},
			PlayerAction: &response,
		}},
		PlayerAction:         &response,
		PreviousWasDiceCheck: true,
	}
}

func TestBuildSceneRequestIncludesContext(t *testing.T) {
	text := BuildSceneRequest(testRequest())

	for _, want := range []string{
		"Siege of Emberhold",
		"Hold the gate.",
		"### Kaelen",
		"Strength: 14, Intelligence: 9, Agility: 12",
		"Health: 80/100",
		"Swordplay, Siegecraft",
		"Longsword",
		"--- Scene 1 ---",
		"Player response: I draw my sword",
		"PROMPT CONSTRUCTION RULES:",
		"IMPOSSIBLE ACTION RULES:",
		"RESPONSE REQUIREMENTS:",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("request missing %q", want)
		}
	}
}

func TestDiceRulesOnlyAfterDiceCheck(t *testing.T) {
	req := testRequest()
	withDice := BuildSceneRequest(req)
	if !strings.Contains(withDice, "DICE RESOLUTION RULES:") {
		t.Error("dice resolution rules missing after a dice_check prompt")
	}
	if !strings.Contains(withDice, "16-20 gives +2") {
		t.Error("modifier table missing from dice rules")
	}

	req.PreviousWasDiceCheck = false
	withoutDice := BuildSceneRequest(req)
	if strings.Contains(withoutDice, "DICE RESOLUTION RULES:") {
		t.Error("dice resolution rules included without a preceding dice_check")
	}
}

func TestBuildSceneRequestOpening(t *testing.T) {
	req := testRequest()
	req.History = nil
	req.PlayerAction = nil
	req.PreviousWasDiceCheck = false

	text := BuildSceneRequest(req)
	if !strings.Contains(text, "OPENING SCENE") {
		t.Error("opening request missing the opening instruction")
	}
	if strings.Contains(text, "STORY SO FAR") || strings.Contains(text, "LATEST PLAYER RESPONSE") {
		t.Error("opening request carries history sections")
	}
}

func TestBuildSceneRequestMissingResponse(t *testing.T) {
	req := testRequest()
	req.History[0].PlayerAction = nil
	req.PlayerAction = nil

	text := BuildSceneRequest(req)
	if !strings.Contains(text, "Player response: (no response)") {
		t.Error("absent player response not rendered")
	}
}

func TestBuildSceneRequestKnownAssets(t *testing.T) {
	req := testRequest()
	req.KnownAssets = []models.Asset{
		{ID: "a1", Name: "Elara", Type: models.AssetNPC, Description: "A seer in grey robes"},
	}

	text := BuildSceneRequest(req)
	if !strings.Contains(text, "KNOWN ASSETS") || !strings.Contains(text, "Elara (npc): A seer in grey robes") {
		t.Error("known assets not rendered")
	}
}

func TestDescribePromptTargets(t *testing.T) {
	tests := []struct {
		name   string
		prompt models.Prompt
		want   string
	}{
		{
			name:   "entire party",
			prompt: models.Prompt{Type: models.PromptAction, PromptText: "Go"},
			want:   "the entire party",
		},
		{
			name: "single target dice check",
			prompt: models.Prompt{
				Type: models.PromptDiceCheck, DiceType: models.DiceD10,
				TargetCharacter: "Mira", PromptText: "Roll",
			},
			want: "d10, roll by Mira",
		},
		{
			name: "multiple targets",
			prompt: models.Prompt{
				Type: models.PromptDiceCheck, DiceType: models.DiceD6,
				TargetCharacters: []string{"Mira", "Kaelen"}, PromptText: "Roll",
			},
			want: "Mira, Kaelen",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := describePrompt(&tc.prompt)
			if !strings.Contains(got, tc.want) {
				t.Errorf("describePrompt() = %q, want it to contain %q", got, tc.want)
			}
		})
	}
}
