package gen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/MarekLipan/generated-adventures/config"
	"github.com/MarekLipan/generated-adventures/models"
	"github.com/MarekLipan/generated-adventures/prompts"
)

// Gemini implements Generator on top of the Gemini API. All calls go through
// the retry executor with a per-attempt deadline.
type Gemini struct {
	client *genai.Client
}

// NewGemini creates a client from the GEMINI_* environment configuration.
func NewGemini(ctx context.Context) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: config.GetGeminiAPIKey(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Gemini{client: client}, nil
}

// generateJSON issues one structured-output call through the retry executor
// and returns the raw JSON text.
func (g *Gemini) generateJSON(ctx context.Context, title, prompt string, schema *genai.Schema) (string, error) {
	genConfig := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}

	return withRetry(ctx, title, func(ctx context.Context) (string, error) {
		ctx, cancel := context.WithTimeout(ctx, config.GetGeminiTimeout())
		defer cancel()

		resp, err := g.client.Models.GenerateContent(ctx, config.GetGeminiModel(),
			[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)},
			genConfig)
		if err != nil {
			return "", err
		}
		return resp.Text(), nil
	})
}

func (g *Gemini) GenerateScenarios(ctx context.Context) ([]string, error) {
	const title = "Scenario generation failed"

	text, err := g.generateJSON(ctx, title, prompts.ScenarioListPrompt(3), scenarioListSchema)
	if err != nil {
		return nil, err
	}

	var result struct {
		Scenarios []string `json:"scenarios"`
	}
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, contractViolation(title, err)
	}
	if len(result.Scenarios) == 0 {
		return nil, contractViolation(title, fmt.Errorf("no scenarios returned"))
	}
	return result.Scenarios, nil
}

func (g *Gemini) GenerateScenarioDetails(ctx context.Context, scenarioName string) (string, error) {
	const title = "Scenario details generation failed"

	details, err := withRetry(ctx, title, func(ctx context.Context) (string, error) {
		ctx, cancel := context.WithTimeout(ctx, config.GetGeminiTimeout())
		defer cancel()

		resp, err := g.client.Models.GenerateContent(ctx, config.GetGeminiModel(),
			[]*genai.Content{genai.NewContentFromText(prompts.ScenarioDetailsPrompt(scenarioName), genai.RoleUser)},
			nil)
		if err != nil {
			return "", err
		}
		return resp.Text(), nil
	})
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(details) == "" {
		return "", contractViolation(title, fmt.Errorf("empty scenario details"))
	}
	return details, nil
}

func (g *Gemini) GenerateCharacters(ctx context.Context, scenarioName string, count int) ([]models.Character, error) {
	const title = "Character generation failed"

	text, err := g.generateJSON(ctx, title, prompts.CharacterConceptsPrompt(scenarioName, count), characterListSchema)
	if err != nil {
		return nil, err
	}

	var result struct {
		Characters []models.Character `json:"characters"`
	}
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, contractViolation(title, err)
	}
	for i := range result.Characters {
		if err := result.Characters[i].Validate(); err != nil {
			return nil, contractViolation(title, err)
		}
	}
	return result.Characters, nil
}

func (g *Gemini) GenerateScene(ctx context.Context, req *prompts.SceneRequest) (*SceneTurn, error) {
	const title = "Scene generation failed"

	text, err := g.generateJSON(ctx, title, prompts.BuildSceneRequest(req), sceneTurnSchema)
	if err != nil {
		return nil, err
	}

	var turn SceneTurn
	if err := json.Unmarshal([]byte(text), &turn); err != nil {
		return nil, contractViolation(title, err)
	}
	if err := turn.Validate(); err != nil {
		return nil, contractViolation(title, err)
	}
	return &turn, nil
}

func (g *Gemini) GenerateImage(ctx context.Context, prompt string, refs [][]byte) ([]byte, error) {
	const title = "Image generation failed"

	parts := []*genai.Part{genai.NewPartFromText(prompt)}
	for _, ref := range refs {
		parts = append(parts, genai.NewPartFromBytes(ref, "image/png"))
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	return withRetry(ctx, title, func(ctx context.Context) ([]byte, error) {
		ctx, cancel := context.WithTimeout(ctx, config.GetGeminiTimeout())
		defer cancel()

		resp, err := g.client.Models.GenerateContent(ctx, config.GetGeminiImageModel(), contents, nil)
		if err != nil {
			return nil, err
		}
		return firstInlineData(resp)
	})
}

func (g *Gemini) GenerateSpeech(ctx context.Context, text string) ([]byte, error) {
	const title = "Voice narration failed"

	genConfig := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{
					VoiceName: config.GetGeminiTTSVoice(),
				},
			},
		},
	}
	contents := []*genai.Content{genai.NewContentFromText("Narrate the following adventure scene with gravitas:\n\n"+text, genai.RoleUser)}

	pcm, err := withRetry(ctx, title, func(ctx context.Context) ([]byte, error) {
		ctx, cancel := context.WithTimeout(ctx, config.GetGeminiTimeout())
		defer cancel()

		resp, err := g.client.Models.GenerateContent(ctx, config.GetGeminiTTSModel(), contents, genConfig)
		if err != nil {
			return nil, err
		}
		return firstInlineData(resp)
	})
	if err != nil {
		return nil, err
	}
	return wavFromPCM(pcm), nil
}

// firstInlineData returns the first binary blob in the response, the shape
// image and TTS models deliver results in.
func firstInlineData(resp *genai.GenerateContentResponse) ([]byte, error) {
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data, nil
			}
		}
	}
	return nil, fmt.Errorf("no binary content returned")
}
