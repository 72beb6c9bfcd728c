package game

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/MarekLipan/generated-adventures/gen"
	"github.com/MarekLipan/generated-adventures/models"
	"github.com/MarekLipan/generated-adventures/prompts"
)

// reconcileAssets records which tracked NPCs and objects appear in the new
// scene, creating assets for first sightings. For a new asset a reference
// image is generated so later illustrations can keep it visually consistent;
// image failures degrade to an asset without one.
//
// Existing assets are matched by name and their stored description is kept.
// The backend is instructed not to redefine established assets; a divergent
// re-description is only logged.
func (e *Engine) reconcileAssets(ctx context.Context, game *models.Game, sightings []gen.AssetSighting) []string {
	visible := make([]string, 0, len(sightings))
	for _, sighting := range sightings {
		if existing := game.AssetByName(sighting.Name); existing != nil {
			if sighting.Description != existing.Description {
				log.Printf("[ASSET_REDEFINED] Backend re-described %q; keeping stored description", sighting.Name)
			}
			visible = append(visible, existing.ID)
			continue
		}

		asset := models.Asset{
			ID:          uuid.NewString(),
			Name:        sighting.Name,
			Type:        sighting.Type,
			Description: sighting.Description,
		}
		if data, err := e.gen.GenerateImage(ctx, prompts.AssetImagePrompt(&asset), nil); err != nil {
			log.Printf("[ASSET_IMAGE_ERROR] Reference image for %q failed: %v", asset.Name, err)
		} else if path, err := e.media.Save(game.ID, fmt.Sprintf("asset_%s.png", asset.ID), data); err != nil {
			log.Printf("[ASSET_IMAGE_ERROR] Saving reference image for %q failed: %v", asset.Name, err)
		} else {
			asset.ImagePath = path
		}

		if game.Assets == nil {
			game.Assets = make(map[string]models.Asset)
		}
		game.Assets[asset.ID] = asset
		visible = append(visible, asset.ID)
		log.Printf("[ASSET_NEW] Tracking %s %q", asset.Type, asset.Name)
	}
	return visible
}

// knownAssets lists the game's assets in a stable order for prompt rendering.
func knownAssets(game *models.Game) []models.Asset {
	if len(game.Assets) == 0 {
		return nil
	}
	assets := make([]models.Asset, 0, len(game.Assets))
	for _, scene := range game.Scenes {
		for _, id := range scene.VisibleAssets {
			if asset, ok := game.Assets[id]; ok && !containsAsset(assets, id) {
				assets = append(assets, asset)
			}
		}
	}
	// Anything never referenced by a scene yet still belongs at the end.
	for _, asset := range game.Assets {
		if !containsAsset(assets, asset.ID) {
			assets = append(assets, asset)
		}
	}
	return assets
}

func containsAsset(assets []models.Asset, id string) bool {
	for _, a := range assets {
		if a.ID == id {
			return true
		}
	}
	return false
}
