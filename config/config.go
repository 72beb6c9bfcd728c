package config

import (
	"os"
	"strconv"
	"time"
)

// GetGeminiModel returns the Gemini text model to use from environment variable
// Defaults to "gemini-2.5-flash" if not set
func GetGeminiModel() string {
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		// Default to flash model if not specified
		return "gemini-2.5-flash"
	}
	return model
}

// GetGeminiImageModel returns the Gemini model used for portraits,
// illustrations and asset reference images
func GetGeminiImageModel() string {
	model := os.Getenv("GEMINI_IMAGE_MODEL")
	if model == "" {
		return "gemini-2.5-flash-image-preview"
	}
	return model
}

// GetGeminiTTSModel returns the Gemini model used for voice narration
func GetGeminiTTSModel() string {
	model := os.Getenv("GEMINI_TTS_MODEL")
	if model == "" {
		return "gemini-2.5-flash-preview-tts"
	}
	return model
}

// GetGeminiTTSVoice returns the prebuilt voice used for narration audio
func GetGeminiTTSVoice() string {
	voice := os.Getenv("GEMINI_TTS_VOICE")
	if voice == "" {
		return "Kore"
	}
	return voice
}

// GetGeminiAPIKey returns the Gemini API key from environment variable
func GetGeminiAPIKey() string {
	return os.Getenv("GEMINI_API_KEY")
}

// GetGeminiTimeout returns the per-attempt deadline for generation calls
func GetGeminiTimeout() time.Duration {
	seconds, err := strconv.Atoi(os.Getenv("GEMINI_TIMEOUT_SECONDS"))
	if err != nil || seconds <= 0 {
		return 120 * time.Second
	}
	return time.Duration(seconds) * time.Second
}

// GetMongoDBURI returns the MongoDB connection URI from environment variable.
// When empty, games are persisted as JSON files under the data directory
func GetMongoDBURI() string {
	return os.Getenv("MONGODB_URI")
}

// GetDataDir returns the root directory for saved games and generated media
func GetDataDir() string {
	dir := os.Getenv("DATA_DIR")
	if dir == "" {
		return "data"
	}
	return dir
}

// GetAllowedOrigins returns the allowed CORS origins from environment variable
func GetAllowedOrigins() string {
	return os.Getenv("ALLOWED_ORIGINS")
}

// GetPort returns the HTTP listen port
func GetPort() string {
	port := os.Getenv("PORT")
	if port == "" {
		return "8080"
	}
	return port
}

// ShowDMNotes reports whether scenario details are exposed to players.
// The details are written for the Dungeon Master's eyes
func ShowDMNotes() bool {
	return os.Getenv("SHOW_DM_NOTES") == "1"
}
