package game

import (
	"fmt"
	"log"
	"reflect"

	"github.com/MarekLipan/generated-adventures/gen"
	"github.com/MarekLipan/generated-adventures/models"
)

// Change is one field-level difference recorded while merging a proposed
// character update into the roster.
type Change struct {
	Character string
	Field     string
	Old       string
	New       string
}

// mergeCharacters reconciles the party roster with the backend's proposed
// replacement sheets. Matching is by name. Unknown names are skipped; the
// roster is fixed at party selection and never grows here. Characters absent
// from the proposal carry over unchanged.
//
// The input roster is never mutated; the merged roster is a fresh copy, so a
// transition that fails later commits nothing.
func mergeCharacters(existing []models.Character, proposed []gen.CharacterUpdate) ([]models.Character, []Change) {
	byName := make(map[string]*gen.CharacterUpdate, len(proposed))
	known := make(map[string]bool, len(existing))
	for i := range existing {
		known[existing[i].Name] = true
	}
	for i := range proposed {
		if !known[proposed[i].Name] {
			log.Printf("[MERGE_SKIP] Backend proposed unknown character %q, skipping", proposed[i].Name)
			continue
		}
		byName[proposed[i].Name] = &proposed[i]
	}

	merged := make([]models.Character, len(existing))
	var changes []Change
	for i, current := range existing {
		merged[i] = current
		merged[i].Skills = append([]string(nil), current.Skills...)
		merged[i].Inventory = append([]string(nil), current.Inventory...)

		update, ok := byName[current.Name]
		if !ok {
			continue
		}
		changes = append(changes, applyUpdate(&merged[i], &current, update)...)
	}

	for _, c := range changes {
		log.Printf("[MERGE] %s: %s %s -> %s", c.Character, c.Field, c.Old, c.New)
	}
	return merged, changes
}

// applyUpdate overwrites one character from its proposed sheet, clamping
// bounded fields. maximum_health is immutable after creation.
func applyUpdate(dst *models.Character, old *models.Character, update *gen.CharacterUpdate) []Change {
	dst.Strength = clamp(update.Strength, models.StatMin, models.StatMax)
	dst.Intelligence = clamp(update.Intelligence, models.StatMin, models.StatMax)
	dst.Agility = clamp(update.Agility, models.StatMin, models.StatMax)
	dst.CurrentHealth = clamp(update.CurrentHealth, 0, old.MaximumHealth)
	// Effectively immutable, but a divergent value is trusted rather than
	// rejected.
	dst.Backstory = update.Backstory
	dst.Appearance = update.Appearance
	dst.Personality = update.Personality
	dst.Skills = append([]string(nil), update.Skills...)
	dst.Inventory = append([]string(nil), update.Inventory...)

	var changes []Change
	record := func(field string, oldVal, newVal any) {
		if equalValues(oldVal, newVal) {
			return
		}
		changes = append(changes, Change{
			Character: old.Name,
			Field:     field,
			Old:       fmt.Sprint(oldVal),
			New:       fmt.Sprint(newVal),
		})
	}
	record("strength", old.Strength, dst.Strength)
	record("intelligence", old.Intelligence, dst.Intelligence)
	record("agility", old.Agility, dst.Agility)
	record("current_health", old.CurrentHealth, dst.CurrentHealth)
	record("backstory", old.Backstory, dst.Backstory)
	record("appearance", old.Appearance, dst.Appearance)
	record("personality", old.Personality, dst.Personality)
	record("skills", old.Skills, dst.Skills)
	record("inventory", old.Inventory, dst.Inventory)
	return changes
}

// equalValues compares field values for change reporting. Empty and nil
// string slices count as equal so a model echoing back an empty list does
// not show up as a change.
func equalValues(a, b any) bool {
	as, aok := a.([]string)
	bs, bok := b.([]string)
	if aok && bok && len(as) == 0 && len(bs) == 0 {
		return true
	}
	return reflect.DeepEqual(a, b)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
