package prompts

import (
	"fmt"
	"strings"

	"github.com/MarekLipan/generated-adventures/models"
)

// ScenarioListPrompt asks for adventure scenario titles for the new-game
// picker.
func ScenarioListPrompt(count int) string {
	return fmt.Sprintf(`You are a Dungeon Master preparing one-shot fantasy adventures.

Invent %d distinct adventure scenarios. Each title should be short and evocative, like "Siege of Emberhold" or "The Lost Tomb of Varaxis".

Respond with a JSON object: {"scenarios": ["title", ...]}`, count)
}

// ScenarioDetailsPrompt asks for the Dungeon Master background notes for a
// chosen scenario.
func ScenarioDetailsPrompt(scenarioName string) string {
	return fmt.Sprintf(`You are a Dungeon Master preparing the adventure "%s".

Write the background notes you will run the adventure from, in markdown with these sections:

# %s

## The Setting
## The Plot
## Main Quest
## Important NPCs

Keep it to one page. Name the key NPCs in bold with a one-line hook each. These notes are for the Dungeon Master only; they will never be shown to players verbatim.`, scenarioName, scenarioName)
}

// CharacterConceptsPrompt asks for party candidates fitting the scenario.
func CharacterConceptsPrompt(scenarioName string, count int) string {
	return fmt.Sprintf(`You are a Dungeon Master preparing the adventure "%s".

Invent %d distinct playable characters that fit this scenario. For each character provide:
- "name": a memorable fantasy name
- "strength", "intelligence", "agility": integers between %d and %d, varied across the party
- "maximum_health": an integer, typically around 100
- "current_health": equal to maximum_health
- "backstory": 2-3 sentences
- "appearance": 1-2 sentences of visual description, usable for a portrait
- "personality": 1-2 sentences
- "skills": 2-4 short ability tags, like "Swordplay" or "Herbalism"
- "inventory": 2-4 starting items

Respond with a JSON object: {"characters": [ ... ]}`, scenarioName, count, models.StatMin, models.StatMax)
}

// PortraitPrompt renders the image prompt for a party member's portrait.
func PortraitPrompt(c *models.Character) string {
	return fmt.Sprintf(`Generate a fantasy character portrait of %s. %s Painterly style, dramatic lighting, head and shoulders, no text.`, c.Name, c.Appearance)
}

// IllustrationPrompt renders the image prompt for a scene illustration.
// hasReferences signals that reference images ride along with the request:
// the previous scene's illustration for continuity plus party portraits.
func IllustrationPrompt(sceneText string, visible []models.Asset, hasReferences bool) string {
	var b strings.Builder
	b.WriteString("Illustrate the following scene from a fantasy adventure. Painterly style, wide shot, no text in the image.\n\n")
	b.WriteString(sceneText)
	if len(visible) > 0 {
		b.WriteString("\n\nPresent in the scene:\n")
		for _, a := range visible {
			fmt.Fprintf(&b, "- %s: %s\n", a.Name, a.Description)
		}
	}
	if hasReferences {
		b.WriteString("\nUse the attached images as references: keep characters, recurring figures and objects visually consistent with them.")
	}
	return b.String()
}

// AssetImagePrompt renders the image prompt for a recurring NPC or object's
// reference image.
func AssetImagePrompt(a *models.Asset) string {
	subject := "notable object"
	if a.Type == models.AssetNPC {
		subject = "character"
	}
	return fmt.Sprintf(`Generate a reference illustration of the fantasy %s %q: %s Neutral background, painterly style, no text.`, subject, a.Name, a.Description)
}
