package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/MarekLipan/generated-adventures/config"
	"github.com/MarekLipan/generated-adventures/game"
	"github.com/MarekLipan/generated-adventures/gen"
	"github.com/MarekLipan/generated-adventures/handlers"
	"github.com/MarekLipan/generated-adventures/media"
	"github.com/MarekLipan/generated-adventures/middleware"
	"github.com/MarekLipan/generated-adventures/store"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	ctx := context.Background()

	// Pick the persistence backend: MongoDB when configured, JSON files
	// under the data directory otherwise.
	var gameStore store.GameStore
	if uri := config.GetMongoDBURI(); uri != "" {
		mongoStore, err := store.NewMongoStore(ctx, uri)
		if err != nil {
			log.Fatal("Failed to connect to MongoDB:", err)
		}
		defer mongoStore.Close(ctx)
		gameStore = mongoStore
		log.Println("Persisting games to MongoDB")
	} else {
		fileStore, err := store.NewFileStore(filepath.Join(config.GetDataDir(), "games"))
		if err != nil {
			log.Fatal("Failed to prepare games directory:", err)
		}
		gameStore = fileStore
	}

	mediaStore, err := media.NewStore(filepath.Join(config.GetDataDir(), "media"))
	if err != nil {
		log.Fatal("Failed to prepare media directory:", err)
	}

	generator, err := gen.NewGemini(ctx)
	if err != nil {
		log.Fatal("Failed to create Gemini client:", err)
	}

	engine := game.New(store.NewRegistry(gameStore), generator, mediaStore)
	h := handlers.New(engine)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /games", h.CreateGameHandler)
	mux.HandleFunc("GET /games", h.ListGamesHandler)
	mux.HandleFunc("GET /games/{id}", h.GameDetailHandler)
	mux.HandleFunc("DELETE /games/{id}", h.DeleteGameHandler)
	mux.HandleFunc("GET /scenarios", h.ScenariosHandler)
	mux.HandleFunc("POST /games/{id}/scenario", h.SelectScenarioHandler)
	mux.HandleFunc("POST /games/{id}/details", h.GenerateDetailsHandler)
	mux.HandleFunc("POST /games/{id}/characters/generate", h.GenerateCharactersHandler)
	mux.HandleFunc("POST /games/{id}/characters", h.AddCharacterHandler)
	mux.HandleFunc("POST /games/{id}/scenes/opening", h.OpeningSceneHandler)
	mux.HandleFunc("POST /games/{id}/scenes", h.AdvanceSceneHandler)
	mux.Handle("GET "+media.URLPrefix, http.StripPrefix(media.URLPrefix, http.FileServer(http.Dir(mediaStore.Dir()))))

	addr := ":" + config.GetPort()
	fmt.Println("Server running on http://localhost" + addr)
	log.Fatal(http.ListenAndServe(addr, middleware.EnableCORS(mux)))
}
