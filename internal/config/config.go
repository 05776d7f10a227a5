package config

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// Artifact storage
	FilesPath string `mapstructure:"FILES_PATH"`

	// Token derivation: hex-encoded AES-256 key (64 hex chars) and
	// CBC initialization vector (32 hex chars)
	TokenSecretKey string `mapstructure:"TOKEN_SECRET_KEY"`
	TokenIV        string `mapstructure:"TOKEN_IV"`

	// Session JWT configuration
	JWTSecret       string `mapstructure:"JWT_SECRET"`
	SessionTTLHours int    `mapstructure:"SESSION_TTL_HOURS"`

	// Search
	SearchWorkers int `mapstructure:"SEARCH_WORKERS"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Identity provider (OAuth2)
	OAuthClientID     string `mapstructure:"OAUTH_CLIENT_ID"`
	OAuthClientSecret string `mapstructure:"OAUTH_CLIENT_SECRET"`
	OAuthAuthURL      string `mapstructure:"OAUTH_AUTH_URL"`
	OAuthTokenURL     string `mapstructure:"OAUTH_TOKEN_URL"`
	OAuthUserURL      string `mapstructure:"OAUTH_USER_URL"`
	OAuthRedirectURI  string `mapstructure:"OAUTH_REDIRECT_URI"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "8000")
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_NAME", "mod_registry")
	viper.SetDefault("DB_SSL_MODE", "disable")

	viper.SetDefault("FILES_PATH", "./files")
	viper.SetDefault("SESSION_TTL_HOURS", 24)
	viper.SetDefault("SEARCH_WORKERS", 4)
}

func buildDatabaseURL(c *Config) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DatabaseUser,
		c.DatabasePassword,
		c.DatabaseHost,
		c.DatabasePort,
		c.DatabaseName,
		c.DatabaseSSLMode,
	)
}

func validate(c *Config) error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.FilesPath == "" {
		return fmt.Errorf("FILES_PATH is required")
	}

	// Token key material is fixed-length; reject the wrong size up front
	// instead of failing on the first issuance.
	key, err := hex.DecodeString(c.TokenSecretKey)
	if err != nil || len(key) != 32 {
		return fmt.Errorf("TOKEN_SECRET_KEY must be 64 hex characters (32 bytes)")
	}
	iv, err := hex.DecodeString(c.TokenIV)
	if err != nil || len(iv) != 16 {
		return fmt.Errorf("TOKEN_IV must be 32 hex characters (16 bytes)")
	}

	return nil
}

// TokenKey returns the decoded AES key. Load has already validated the size.
func (c *Config) TokenKey() []byte {
	key, _ := hex.DecodeString(c.TokenSecretKey)
	return key
}

// TokenInitVector returns the decoded CBC initialization vector.
func (c *Config) TokenInitVector() []byte {
	iv, _ := hex.DecodeString(c.TokenIV)
	return iv
}
