package prompts

import (
	"fmt"
	"strings"

	"github.com/MarekLipan/generated-adventures/models"
)

// HistoryEntry is one past exchange: a scene, the prompt it issued and the
// player's literal response. The response is nil when the session was resumed
// without one.
type HistoryEntry struct {
	SceneID      int
	SceneText    string
	Prompt       models.Prompt
	PlayerAction *string
}

// SceneRequest carries everything the backend needs to generate the next
// scene. The backend is stateless, so the full ordered history rides along on
// every call.
type SceneRequest struct {
	ScenarioName         string
	ScenarioDetails      string
	Characters           []models.Character
	History              []HistoryEntry
	PlayerAction         *string
	PreviousWasDiceCheck bool
	KnownAssets          []models.Asset
}

// BuildSceneRequest renders the complete generation request text for the next
// scene. Dice resolution rules are included only when the immediately
// preceding prompt was a dice check.
func BuildSceneRequest(req *SceneRequest) string {
	var b strings.Builder

	b.WriteString("You are the Dungeon Master of a text adventure. Narrate the next scene of the adventure and decide its consequences.\n\n")
	fmt.Fprintf(&b, "SCENARIO: %s\n\n", req.ScenarioName)
	if req.ScenarioDetails != "" {
		fmt.Fprintf(&b, "DUNGEON MASTER NOTES (never reveal directly to players):\n%s\n\n", req.ScenarioDetails)
	}

	b.WriteString("THE PARTY:\n")
	for _, c := range req.Characters {
		b.WriteString(CharacterSheet(&c))
		b.WriteString("\n")
	}

	if len(req.KnownAssets) > 0 {
		b.WriteString("KNOWN ASSETS (established NPCs and objects):\n")
		for _, a := range req.KnownAssets {
			fmt.Fprintf(&b, "- %s (%s): %s\n", a.Name, a.Type, a.Description)
		}
		b.WriteString("\n")
	}

	if len(req.History) > 0 {
		b.WriteString("STORY SO FAR (every scene, prompt and player response, in order):\n")
		for _, entry := range req.History {
			fmt.Fprintf(&b, "--- Scene %d ---\n%s\n", entry.SceneID, entry.SceneText)
			fmt.Fprintf(&b, "Prompt issued: %s\n", describePrompt(&entry.Prompt))
			if entry.PlayerAction != nil {
				fmt.Fprintf(&b, "Player response: %s\n", *entry.PlayerAction)
			} else {
				b.WriteString("Player response: (no response)\n")
			}
		}
		b.WriteString("\n")
	} else {
		b.WriteString("This is the OPENING SCENE. Set the stage, introduce the party into the scenario and end on a hook.\n\n")
	}

	if req.PlayerAction != nil {
		fmt.Fprintf(&b, "LATEST PLAYER RESPONSE (drive the new scene from this): %s\n\n", *req.PlayerAction)
	}

	if req.PreviousWasDiceCheck {
		b.WriteString(diceResolutionRules)
		b.WriteString("\n\n")
	}
	b.WriteString(promptConstructionRules)
	b.WriteString("\n\n")
	b.WriteString(impossibleActionRules)
	b.WriteString("\n\n")
	b.WriteString(assetConsistencyRules)
	b.WriteString("\n\n")
	b.WriteString(responseContractRules)

	return b.String()
}

// CharacterSheet renders a full character sheet so the backend can reason
// about current state.
func CharacterSheet(c *models.Character) string {
	var b strings.Builder
	fmt.Fprintf(&b, "### %s\n", c.Name)
	fmt.Fprintf(&b, "Strength: %d, Intelligence: %d, Agility: %d\n", c.Strength, c.Intelligence, c.Agility)
	fmt.Fprintf(&b, "Health: %d/%d\n", c.CurrentHealth, c.MaximumHealth)
	if c.Backstory != "" {
		fmt.Fprintf(&b, "Backstory: %s\n", c.Backstory)
	}
	if c.Appearance != "" {
		fmt.Fprintf(&b, "Appearance: %s\n", c.Appearance)
	}
	if c.Personality != "" {
		fmt.Fprintf(&b, "Personality: %s\n", c.Personality)
	}
	fmt.Fprintf(&b, "Skills: %s\n", listOrNone(c.Skills))
	fmt.Fprintf(&b, "Inventory: %s\n", listOrNone(c.Inventory))
	return b.String()
}

func listOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}

func describePrompt(p *models.Prompt) string {
	target := "the entire party"
	switch {
	case p.TargetCharacter != "":
		target = p.TargetCharacter
	case len(p.TargetCharacters) > 0:
		target = strings.Join(p.TargetCharacters, ", ")
	}
	if p.Type == models.PromptDiceCheck {
		return fmt.Sprintf("[%s, %s, roll by %s] %s", p.Type, p.DiceType, target, p.PromptText)
	}
	return fmt.Sprintf("[%s, addressed to %s] %s", p.Type, target, p.PromptText)
}
