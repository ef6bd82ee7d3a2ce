package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Dataset   DatasetConfig
	Storage   StorageConfig
	Export    ExportConfig
	Scoring   ScoringConfig
	Inference InferenceConfig
	RateLimit RateLimitConfig
	Log       LogConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// DatasetConfig holds source and canonical table paths
type DatasetConfig struct {
	InputPath  string `mapstructure:"input_path"`
	OutputPath string `mapstructure:"output_path"`
}

// StorageConfig selects where the canonical record set is persisted
type StorageConfig struct {
	Type       string `mapstructure:"type"` // "csv" or "sqlite"
	SQLitePath string `mapstructure:"sqlite_path"`
}

// ExportConfig holds the symbolic fact export path
type ExportConfig struct {
	FactsPath string `mapstructure:"facts_path"`
}

// ScoringConfig holds matcher and scorer tuning
type ScoringConfig struct {
	BudgetSlack        float64 `mapstructure:"budget_slack"`
	MaxResults         int     `mapstructure:"max_results"`
	DefaultRating      int     `mapstructure:"default_rating"`
	EnableDebugLogging bool    `mapstructure:"enable_debug_logging"`
}

// InferenceConfig holds the transmission inference seed (0 = time-based)
type InferenceConfig struct {
	Seed int64 `mapstructure:"seed"`
}

// RateLimitConfig holds query throttling configuration
type RateLimitConfig struct {
	PerMinute int `mapstructure:"per_minute"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "console" or "json"
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/smartcar/")

	// Environment variable settings
	v.SetEnvPrefix("SMARTCAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:*"})

	// Dataset defaults
	v.SetDefault("dataset.input_path", "data/cars_raw.csv")
	v.SetDefault("dataset.output_path", "data/cars_clean.csv")

	// Storage defaults
	v.SetDefault("storage.type", "csv")
	v.SetDefault("storage.sqlite_path", "data/cars.db")

	// Export defaults
	v.SetDefault("export.facts_path", "cars_facts.pl")

	// Scoring defaults
	v.SetDefault("scoring.budget_slack", 1.25)
	v.SetDefault("scoring.max_results", 10)
	v.SetDefault("scoring.default_rating", 3)
	v.SetDefault("scoring.enable_debug_logging", false)

	// Inference defaults
	v.SetDefault("inference.seed", 0)

	// Rate limit defaults
	v.SetDefault("ratelimit.per_minute", 100)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Storage.Type != "csv" && config.Storage.Type != "sqlite" {
		return fmt.Errorf("storage type must be 'csv' or 'sqlite', got: %s", config.Storage.Type)
	}

	if config.Storage.Type == "sqlite" && config.Storage.SQLitePath == "" {
		return fmt.Errorf("sqlite path is required when storage type is 'sqlite'")
	}

	if config.Scoring.BudgetSlack <= 0 {
		return fmt.Errorf("scoring budget slack must be positive, got: %v", config.Scoring.BudgetSlack)
	}

	if config.Scoring.MaxResults <= 0 {
		return fmt.Errorf("scoring max results must be positive, got: %d", config.Scoring.MaxResults)
	}

	if config.Scoring.DefaultRating < 1 || config.Scoring.DefaultRating > 5 {
		return fmt.Errorf("scoring default rating must be in [1,5], got: %d", config.Scoring.DefaultRating)
	}

	return nil
}
