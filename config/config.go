package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Catalog  CatalogConfig
	Cache    CacheConfig
	Matching MatchingConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	PublicURL      string   `mapstructure:"public_url"`
}

// CatalogConfig holds the location of the static JSON catalog files
type CatalogConfig struct {
	BaseURL     string `mapstructure:"base_url"`
	RecipesPath string `mapstructure:"recipes_path"`
	FoodsPath   string `mapstructure:"foods_path"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// MatchingConfig holds tuning knobs for the ingredient matcher
type MatchingConfig struct {
	MinContainmentLength int           `mapstructure:"min_containment_length"`
	MinSimilarityLength  int           `mapstructure:"min_similarity_length"`
	SimilarityThreshold  float64       `mapstructure:"similarity_threshold"`
	QuorumRatio          float64       `mapstructure:"quorum_ratio"`
	DebounceDelay        time.Duration `mapstructure:"debounce_delay"`
	EnableDebugLogging   bool          `mapstructure:"enable_debug_logging"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/cozinhapp/")

	// Environment variable settings
	v.SetEnvPrefix("COZINHAPP")
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
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.public_url", "https://cozinhapp.com")

	// Catalog defaults
	v.SetDefault("catalog.base_url", "https://cozinhapp.com")
	v.SetDefault("catalog.recipes_path", "/data/receitas.json")
	v.SetDefault("catalog.foods_path", "/data/alimentos.json")

	// Cache defaults
	v.SetDefault("cache.ttl", "24h")

	// Matching defaults mirror the front end's original behavior
	v.SetDefault("matching.min_containment_length", 3)
	v.SetDefault("matching.min_similarity_length", 4)
	v.SetDefault("matching.similarity_threshold", 0.6)
	v.SetDefault("matching.quorum_ratio", 0.7)
	v.SetDefault("matching.debounce_delay", "300ms")
	v.SetDefault("matching.enable_debug_logging", false)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Catalog.BaseURL == "" {
		return fmt.Errorf("catalog base URL is required (set COZINHAPP_CATALOG_BASE_URL)")
	}

	if config.Matching.SimilarityThreshold <= 0 || config.Matching.SimilarityThreshold > 1 {
		return fmt.Errorf("matching similarity threshold must be in (0, 1], got: %g", config.Matching.SimilarityThreshold)
	}

	if config.Matching.QuorumRatio <= 0 || config.Matching.QuorumRatio > 1 {
		return fmt.Errorf("matching quorum ratio must be in (0, 1], got: %g", config.Matching.QuorumRatio)
	}

	return nil
}
