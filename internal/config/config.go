package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server    ServerConfig
	OpenAI    OpenAIConfig
	PredictHQ PredictHQConfig
	Google    GoogleConfig
	Search    SearchConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type OpenAIConfig struct {
	APIKey string
	Model  string
}

type PredictHQConfig struct {
	Token   string
	BaseURL string
}

type GoogleConfig struct {
	PlacesAPIKey     string
	PlacesBaseURL    string
	GeocodingAPIKey  string
	GeocodingBaseURL string
}

// SearchConfig is the read-only pipeline configuration: result limits per
// source, the offerings enrichment flag, and the bound applied to every
// external call.
type SearchConfig struct {
	EventLimit      int
	PlaceLimit      int
	EnrichOfferings bool
	UpstreamTimeout time.Duration
	FanOutWorkers   int
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getEnvAsDuration("READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getEnvAsDuration("WRITE_TIMEOUT", 60*time.Second),
			IdleTimeout:  getEnvAsDuration("IDLE_TIMEOUT", 60*time.Second),
		},
		OpenAI: OpenAIConfig{
			APIKey: getEnv("OPENAI_API_KEY", ""),
			Model:  getEnv("LLM_MODEL", "gpt-4o-mini"),
		},
		PredictHQ: PredictHQConfig{
			Token:   getEnv("PREDICTHQ_API_TOKEN", ""),
			BaseURL: getEnv("PREDICTHQ_BASE_URL", "https://api.predicthq.com"),
		},
		Google: GoogleConfig{
			PlacesAPIKey:     getEnv("GOOGLE_PLACES_API_KEY", ""),
			PlacesBaseURL:    getEnv("GOOGLE_PLACES_BASE_URL", "https://maps.googleapis.com"),
			GeocodingAPIKey:  getEnv("GEOCODING_API_KEY", ""),
			GeocodingBaseURL: getEnv("GEOCODING_BASE_URL", "https://maps.googleapis.com"),
		},
		Search: SearchConfig{
			EventLimit:      getEnvAsInt("EVENT_RESULT_LIMIT", 5),
			PlaceLimit:      getEnvAsInt("PLACE_RESULT_LIMIT", 5),
			EnrichOfferings: getEnvAsBool("ENRICH_OFFERINGS", false),
			UpstreamTimeout: getEnvAsDuration("UPSTREAM_TIMEOUT", 15*time.Second),
			FanOutWorkers:   getEnvAsInt("FANOUT_WORKERS", 4),
		},
	}

	if cfg.OpenAI.APIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	if cfg.PredictHQ.Token == "" {
		return nil, fmt.Errorf("PREDICTHQ_API_TOKEN is required")
	}
	if cfg.Google.PlacesAPIKey == "" {
		return nil, fmt.Errorf("GOOGLE_PLACES_API_KEY is required")
	}
	if cfg.Google.GeocodingAPIKey == "" {
		return nil, fmt.Errorf("GEOCODING_API_KEY is required")
	}
	if cfg.Search.EventLimit <= 0 || cfg.Search.PlaceLimit <= 0 {
		return nil, fmt.Errorf("result limits must be positive")
	}
	if cfg.Search.FanOutWorkers <= 0 {
		return nil, fmt.Errorf("FANOUT_WORKERS must be positive")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
