package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for our application
type Config struct {
	Port        string
	Origin      string
	Environment string
	ModelPath   string
	LogLevel    string
	Engine      EngineConfig
}

// EngineConfig holds the diagnostic engine tunables
type EngineConfig struct {
	UnknownSymptomPenalty float64
	MinProbability        float64
	NegationWindow        int
	LocationBoost         float64
	EnablePatterns        bool
	EnableLocations       bool
	MaxQueryLength        int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	penalty, err := getEnvFloat("ENGINE_UNKNOWN_SYMPTOM_PENALTY", 0.05)
	if err != nil {
		return nil, err
	}

	minProb, err := getEnvFloat("ENGINE_MIN_PROBABILITY", 0.0001)
	if err != nil {
		return nil, err
	}

	negationWindow, err := getEnvInt("ENGINE_NEGATION_WINDOW", 60)
	if err != nil {
		return nil, err
	}

	locationBoost, err := getEnvFloat("ENGINE_LOCATION_BOOST", 1.5)
	if err != nil {
		return nil, err
	}

	maxQueryLength, err := getEnvInt("ENGINE_MAX_QUERY_LENGTH", 5000)
	if err != nil {
		return nil, err
	}

	engineConfig := EngineConfig{
		UnknownSymptomPenalty: penalty,
		MinProbability:        minProb,
		NegationWindow:        negationWindow,
		LocationBoost:         locationBoost,
		EnablePatterns:        getEnvBool("ENGINE_ENABLE_PATTERNS", true),
		EnableLocations:       getEnvBool("ENGINE_ENABLE_LOCATIONS", true),
		MaxQueryLength:        maxQueryLength,
	}

	// Return complete configuration
	return &Config{
		Port:        getEnv("PORT", "3001"),
		Origin:      getEnv("ORIGIN", "http://localhost:4200"),
		Environment: getEnv("APP_ENV", "development"),
		ModelPath:   getEnv("MODEL_PATH", "model/trained_model.json"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Engine:      engineConfig,
	}, nil
}

// Helper function to get environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func getEnvBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}
