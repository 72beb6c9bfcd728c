package models

import "fmt"

// PromptType classifies the interaction requested from the players after a
// scene.
type PromptType string

const (
	PromptDialogue  PromptType = "dialogue"
	PromptAction    PromptType = "action"
	PromptDiceCheck PromptType = "dice_check"
)

// DiceType is the kind of die rolled for a dice_check prompt. Dice checks are
// always a single die.
type DiceType string

const (
	DiceD6  DiceType = "d6"
	DiceD10 DiceType = "d10"
)

// Prompt is the structured request for player input that follows a scene.
type Prompt struct {
	Type             PromptType `json:"type" bson:"type"`
	DiceType         DiceType   `json:"dice_type,omitempty" bson:"dice_type,omitempty"`
	TargetCharacter  string     `json:"target_character,omitempty" bson:"target_character,omitempty"`
	TargetCharacters []string   `json:"target_characters,omitempty" bson:"target_characters,omitempty"`
	PromptText       string     `json:"prompt_text" bson:"prompt_text"`
}

// Validate enforces the prompt invariants. A dice_check must name a die and
// exactly one of target_character or target_characters; other prompt types may
// leave both targets empty to address the entire party.
func (p *Prompt) Validate() error {
	switch p.Type {
	case PromptDialogue, PromptAction, PromptDiceCheck:
	default:
		return fmt.Errorf("unknown prompt type %q", p.Type)
	}
	if p.PromptText == "" {
		return fmt.Errorf("%s prompt has empty prompt_text", p.Type)
	}
	if p.TargetCharacter != "" && len(p.TargetCharacters) > 0 {
		return fmt.Errorf("%s prompt cannot specify both target_character and target_characters", p.Type)
	}
	if p.Type != PromptDiceCheck {
		if p.DiceType != "" {
			return fmt.Errorf("%s prompt must not set dice_type", p.Type)
		}
		return nil
	}
	switch p.DiceType {
	case DiceD6, DiceD10:
	case "":
		return fmt.Errorf("dice_check prompt must specify dice_type")
	default:
		return fmt.Errorf("dice_check prompt has unknown dice_type %q", p.DiceType)
	}
	if p.TargetCharacter == "" && len(p.TargetCharacters) == 0 {
		return fmt.Errorf("dice_check prompt must specify either 'target_character' or 'target_characters'")
	}
	return nil
}
