package models

import "testing"

func validCharacter() Character {
	return Character{
		Name:          "Kaelen",
		Strength:      14,
		Intelligence:  9,
		Agility:       12,
		MaximumHealth: 100,
		CurrentHealth: 80,
		Skills:        []string{"Swordplay"},
		Inventory:     []string{"Longsword"},
	}
}

func TestCharacterValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Character)
		wantErr bool
	}{
		{"valid", func(c *Character) {}, false},
		{"no name", func(c *Character) { c.Name = "" }, true},
		{"strength too high", func(c *Character) { c.Strength = 21 }, true},
		{"agility negative", func(c *Character) { c.Agility = -1 }, true},
		{"zero maximum health", func(c *Character) { c.MaximumHealth = 0 }, true},
		{"health above maximum", func(c *Character) { c.CurrentHealth = 101 }, true},
		{"health negative", func(c *Character) { c.CurrentHealth = -5 }, true},
		{"zero health is a valid terminal state", func(c *Character) { c.CurrentHealth = 0 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := validCharacter()
			tc.mutate(&c)
			err := c.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() = %v, wantErr = %v", err, tc.wantErr)
			}
		})
	}
}

func TestGameStatusDerivedFromLastScene(t *testing.T) {
	g := NewGame(2)
	if got := g.Status(); got != StatusOngoing {
		t.Fatalf("empty game status = %q, want %q", got, StatusOngoing)
	}

	g.Scenes = append(g.Scenes, Scene{ID: 1, GameStatus: StatusOngoing})
	if got := g.Status(); got != StatusOngoing {
		t.Fatalf("status after scene 1 = %q, want %q", got, StatusOngoing)
	}

	g.Scenes = append(g.Scenes, Scene{ID: 2, GameStatus: StatusFailed})
	if got := g.Status(); got != StatusFailed {
		t.Fatalf("status after scene 2 = %q, want %q", got, StatusFailed)
	}
	if !g.Status().Terminal() {
		t.Error("failed status should be terminal")
	}
}

func TestGameCloneIsDeep(t *testing.T) {
	g := NewGame(1)
	g.ScenarioName = "Siege of Emberhold"
	g.Characters = []Character{validCharacter()}
	g.Scenes = []Scene{{
		ID:         1,
		Text:       "The gates hold, for now.",
		Prompt:     Prompt{Type: PromptAction, PromptText: "What does the party do?"},
		GameStatus: StatusOngoing,
	}}
	g.Assets = map[string]Asset{
		"a1": {ID: "a1", Name: "Elara", Type: AssetNPC, Description: "A seer"},
	}

	clone := g.Clone()
	clone.Characters[0].CurrentHealth = 1
	clone.Characters[0].Inventory = append(clone.Characters[0].Inventory, "Torch")
	clone.Scenes = append(clone.Scenes, Scene{ID: 2, GameStatus: StatusOngoing})
	clone.PlayerActions = append(clone.PlayerActions, "I draw my sword")
	clone.Assets["a2"] = Asset{ID: "a2", Name: "Sunstone", Type: AssetObject}

	if g.Characters[0].CurrentHealth != 80 {
		t.Error("clone mutation leaked into original character health")
	}
	if len(g.Characters[0].Inventory) != 1 {
		t.Error("clone mutation leaked into original inventory")
	}
	if len(g.Scenes) != 1 || len(g.PlayerActions) != 0 {
		t.Error("clone mutation leaked into original scenes or actions")
	}
	if len(g.Assets) != 1 {
		t.Error("clone mutation leaked into original assets")
	}
}

func TestAssetLookupByName(t *testing.T) {
	g := NewGame(1)
	g.Assets = map[string]Asset{
		"a1": {ID: "a1", Name: "Elara", Type: AssetNPC, Description: "A seer"},
	}
	if got := g.AssetByName("Elara"); got == nil || got.ID != "a1" {
		t.Errorf("AssetByName(Elara) = %v, want asset a1", got)
	}
	if got := g.AssetByName("Malakor"); got != nil {
		t.Errorf("AssetByName(Malakor) = %v, want nil", got)
	}
}
