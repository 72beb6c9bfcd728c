package game

import (
	"reflect"
	"testing"

	"github.com/MarekLipan/generated-adventures/gen"
	"github.com/MarekLipan/generated-adventures/models"
)

func roster() []models.Character {
	return []models.Character{
		{
			Name:          "Kaelen",
			Strength:      14,
			Intelligence:  9,
			Agility:       12,
			MaximumHealth: 100,
			CurrentHealth: 80,
			Backstory:     "A disgraced knight.",
			Appearance:    "Scarred, broad-shouldered.",
			Personality:   "Gruff but loyal.",
			Skills:        []string{"Swordplay"},
			Inventory:     []string{"Longsword", "Shield"},
		},
		{
			Name:          "Mira",
			Strength:      6,
			Intelligence:  18,
			Agility:       10,
			MaximumHealth: 60,
			CurrentHealth: 60,
			Skills:        []string{"Pyromancy"},
			Inventory:     []string{"Staff"},
		},
	}
}

func updateFor(c models.Character) gen.CharacterUpdate {
	return gen.CharacterUpdate{
		Name:          c.Name,
		Strength:      c.Strength,
		Intelligence:  c.Intelligence,
		Agility:       c.Agility,
		MaximumHealth: c.MaximumHealth,
		CurrentHealth: c.CurrentHealth,
		Backstory:     c.Backstory,
		Appearance:    c.Appearance,
		Personality:   c.Personality,
		Skills:        append([]string(nil), c.Skills...),
		Inventory:     append([]string(nil), c.Inventory...),
	}
}

func TestMergeClampsHealth(t *testing.T) {
	tests := []struct {
		name     string
		proposed int
		want     int
	}{
		{"unchanged", 80, 80},
		{"normal damage", 35, 35},
		{"negative overflow", -250, 0},
		{"exactly zero", 0, 0},
		{"overheal", 900, 100},
		{"exactly maximum", 100, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			existing := roster()
			update := updateFor(existing[0])
			update.CurrentHealth = tc.proposed

			merged, _ := mergeCharacters(existing, []gen.CharacterUpdate{update})
			got := merged[0].CurrentHealth
			if got != tc.want {
				t.Errorf("current_health = %d, want %d", got, tc.want)
			}
			if got < 0 || got > merged[0].MaximumHealth {
				t.Errorf("health invariant violated: %d not in [0, %d]", got, merged[0].MaximumHealth)
			}
		})
	}
}

func TestMergeClampsStats(t *testing.T) {
	existing := roster()
	update := updateFor(existing[0])
	update.Strength = 99
	update.Agility = -3

	merged, _ := mergeCharacters(existing, []gen.CharacterUpdate{update})
	if merged[0].Strength != models.StatMax {
		t.Errorf("strength = %d, want %d", merged[0].Strength, models.StatMax)
	}
	if merged[0].Agility != models.StatMin {
		t.Errorf("agility = %d, want %d", merged[0].Agility, models.StatMin)
	}
}

func TestMergeMaximumHealthIsImmutable(t *testing.T) {
	existing := roster()
	update := updateFor(existing[0])
	update.MaximumHealth = 500
	update.CurrentHealth = 400

	merged, _ := mergeCharacters(existing, []gen.CharacterUpdate{update})
	if merged[0].MaximumHealth != 100 {
		t.Errorf("maximum_health = %d, want 100", merged[0].MaximumHealth)
	}
	if merged[0].CurrentHealth != 100 {
		t.Errorf("current_health = %d, want clamped to old maximum 100", merged[0].CurrentHealth)
	}
}

func TestMergeSkipsUnknownCharacters(t *testing.T) {
	existing := roster()
	intruder := gen.CharacterUpdate{Name: "Stranger", CurrentHealth: 50, MaximumHealth: 50}

	merged, changes := mergeCharacters(existing, []gen.CharacterUpdate{intruder})
	if len(merged) != 2 {
		t.Fatalf("roster grew to %d, want 2", len(merged))
	}
	if len(changes) != 0 {
		t.Errorf("unexpected changes: %+v", changes)
	}
}

func TestMergeIdempotent(t *testing.T) {
	existing := roster()
	updates := []gen.CharacterUpdate{updateFor(existing[0]), updateFor(existing[1])}

	merged, changes := mergeCharacters(existing, updates)
	if len(changes) != 0 {
		t.Errorf("identical merge produced %d changes: %+v", len(changes), changes)
	}
	if !reflect.DeepEqual(merged, existing) {
		t.Errorf("identical merge changed the roster:\ngot  %+v\nwant %+v", merged, existing)
	}
}

func TestMergeCarriesOverAbsentCharacters(t *testing.T) {
	existing := roster()
	update := updateFor(existing[0])
	update.CurrentHealth = 10
	update.Inventory = []string{"Longsword"}

	merged, changes := mergeCharacters(existing, []gen.CharacterUpdate{update})
	if !reflect.DeepEqual(merged[1], existing[1]) {
		t.Errorf("absent character changed: %+v", merged[1])
	}
	for _, c := range changes {
		if c.Character != "Kaelen" {
			t.Errorf("change recorded for %q, want only Kaelen", c.Character)
		}
	}

	wantFields := map[string]bool{"current_health": true, "inventory": true}
	gotFields := map[string]bool{}
	for _, c := range changes {
		gotFields[c.Field] = true
	}
	if !reflect.DeepEqual(gotFields, wantFields) {
		t.Errorf("changed fields = %v, want %v", gotFields, wantFields)
	}
}

func TestMergeDoesNotMutateInput(t *testing.T) {
	existing := roster()
	snapshot := roster()

	update := updateFor(existing[0])
	update.CurrentHealth = 1
	update.Skills = []string{"Begging"}
	mergeCharacters(existing, []gen.CharacterUpdate{update})

	if !reflect.DeepEqual(existing, snapshot) {
		t.Error("mergeCharacters mutated its input roster")
	}
}
