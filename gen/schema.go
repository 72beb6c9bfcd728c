package gen

import "google.golang.org/genai"

// Expected-output schemas declared alongside each structured call. The
// backend is told the exact shape; anything that still slips through is
// rejected by the boundary validation in generator.go.

var scenarioListSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"scenarios": {
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
	},
	Required: []string{"scenarios"},
}

var characterSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"name":           {Type: genai.TypeString},
		"strength":       {Type: genai.TypeInteger},
		"intelligence":   {Type: genai.TypeInteger},
		"agility":        {Type: genai.TypeInteger},
		"maximum_health": {Type: genai.TypeInteger},
		"current_health": {Type: genai.TypeInteger},
		"backstory":      {Type: genai.TypeString},
		"appearance":     {Type: genai.TypeString},
		"personality":    {Type: genai.TypeString},
		"skills":         {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"inventory":      {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
	},
	Required: []string{
		"name", "strength", "intelligence", "agility",
		"maximum_health", "current_health",
		"backstory", "appearance", "personality",
		"skills", "inventory",
	},
}

var characterListSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"characters": {
			Type:  genai.TypeArray,
			Items: characterSchema,
		},
	},
	Required: []string{"characters"},
}

var promptSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"type": {
			Type: genai.TypeString,
			Enum: []string{"dialogue", "action", "dice_check"},
		},
		"dice_type": {
			Type: genai.TypeString,
			Enum: []string{"d6", "d10"},
		},
		"target_character": {Type: genai.TypeString},
		"target_characters": {
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
		"prompt_text": {Type: genai.TypeString},
	},
	Required: []string{"type", "prompt_text"},
}

var sceneTurnSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"scene_text": {Type: genai.TypeString},
		"prompt":     promptSchema,
		"updated_characters": {
			Type:  genai.TypeArray,
			Items: characterSchema,
		},
		"game_status": {
			Type: genai.TypeString,
			Enum: []string{"ongoing", "completed", "failed"},
		},
		"visible_assets": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name":        {Type: genai.TypeString},
					"type":        {Type: genai.TypeString, Enum: []string{"npc", "object"}},
					"description": {Type: genai.TypeString},
				},
				Required: []string{"name", "type", "description"},
			},
		},
	},
	Required: []string{"scene_text", "prompt", "updated_characters", "game_status", "visible_assets"},
}
