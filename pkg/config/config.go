package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server     ServerConfig     `envconfig:"SERVER"`
	LLM        LLMConfig        `envconfig:"LLM"`
	Templates  TemplateConfig   `envconfig:"TEMPLATE"`
	Storage    StorageConfig    `envconfig:"STORAGE"`
	Redis      RedisConfig      `envconfig:"REDIS"`
	Assembly   AssemblyAIConfig `envconfig:"ASSEMBLYAI"`
	Roster     RosterConfig     `envconfig:"ROSTER"`
	Processing ProcessingConfig `envconfig:"PROCESSING"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
	BodyLimit       string   `envconfig:"BODY_LIMIT" default:"50M"`
}

// LLMConfig holds the external language model configuration
type LLMConfig struct {
	Provider    string        `envconfig:"PROVIDER" default:"groq"` // groq, openai, anthropic or none
	APIKey      string        `envconfig:"API_KEY"`
	Model       string        `envconfig:"MODEL"`
	BaseURL     string        `envconfig:"BASE_URL"`
	Timeout     time.Duration `envconfig:"TIMEOUT" default:"60s"`
	MaxRetries  uint64        `envconfig:"MAX_RETRIES" default:"0"`
	MaxTokens   int           `envconfig:"MAX_TOKENS" default:"4096"`
	Temperature float64       `envconfig:"TEMPERATURE" default:"0.2"`
	CacheTTL    time.Duration `envconfig:"CACHE_TTL" default:"1h"`
	Fallback    bool          `envconfig:"FALLBACK" default:"true"`
}

// TemplateConfig holds document template source configuration
type TemplateConfig struct {
	Dir        string        `envconfig:"DIR" default:"templates"`
	BaseURL    string        `envconfig:"BASE_URL"`
	Timeout    time.Duration `envconfig:"TIMEOUT" default:"10s"`
	MaxRetries uint64        `envconfig:"MAX_RETRIES" default:"0"`
}

// StorageConfig holds output storage configuration
type StorageConfig struct {
	Backend         string `envconfig:"BACKEND" default:"local"` // "local" or "minio"
	BaseDir         string `envconfig:"BASE_DIR" default:"BusyBee"`
	Endpoint        string `envconfig:"ENDPOINT" default:"localhost:9000"`
	AccessKeyID     string `envconfig:"ACCESS_KEY"`
	SecretAccessKey string `envconfig:"SECRET_KEY"`
	BucketName      string `envconfig:"BUCKET" default:"busybee"`
	UseSSL          bool   `envconfig:"USE_SSL" default:"false"`
	PublicURL       string `envconfig:"PUBLIC_URL"`
}

// RedisConfig holds Redis configuration. An empty Addr keeps cache and
// history in process memory.
type RedisConfig struct {
	Addr         string `envconfig:"ADDR"`
	Password     string `envconfig:"PASSWORD"`
	DB           int    `envconfig:"DB" default:"0"`
	KeyPrefix    string `envconfig:"KEY_PREFIX" default:"busybee:"`
	HistoryLimit int64  `envconfig:"HISTORY_LIMIT" default:"200"`
}

// AssemblyAIConfig holds transcription configuration
type AssemblyAIConfig struct {
	APIKey       string `envconfig:"API_KEY"`
	LanguageCode string `envconfig:"LANGUAGE_CODE" default:"en"`
}

// RosterConfig points at an optional YAML roster file
type RosterConfig struct {
	File string `envconfig:"FILE"`
}

// ProcessingConfig holds pipeline defaults
type ProcessingConfig struct {
	NormalizeNames bool   `envconfig:"NORMALIZE_NAMES" default:"true"`
	DefaultMode    string `envconfig:"DEFAULT_MODE" default:"ai"` // "ai" or "heuristic"
	PreviewChars   int    `envconfig:"PREVIEW_CHARS" default:"500"`
}

// Load loads configuration from .env and environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}
	return LoadFromEnv()
}

// LoadFromEnv decodes the process environment without touching .env files
func LoadFromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode environment: %w", err)
	}

	cfg.LLM.Provider = strings.ToLower(strings.TrimSpace(cfg.LLM.Provider))
	cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(cfg.Storage.Backend))
	cfg.Processing.DefaultMode = strings.ToLower(strings.TrimSpace(cfg.Processing.DefaultMode))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case ProviderGroq, ProviderOpenAI, ProviderAnthropic, ProviderNone:
	default:
		return fmt.Errorf("LLM_PROVIDER must be one of groq, openai, anthropic, none (got %q)", c.LLM.Provider)
	}
	switch c.Storage.Backend {
	case "local":
		if c.Storage.BaseDir == "" {
			return fmt.Errorf("STORAGE_BASE_DIR is required for local storage")
		}
	case "minio":
		if c.Storage.Endpoint == "" || c.Storage.BucketName == "" {
			return fmt.Errorf("STORAGE_ENDPOINT and STORAGE_BUCKET are required for minio storage")
		}
	default:
		return fmt.Errorf("STORAGE_BACKEND must be local or minio (got %q)", c.Storage.Backend)
	}
	switch c.Processing.DefaultMode {
	case "ai", "heuristic":
	default:
		return fmt.Errorf("PROCESSING_DEFAULT_MODE must be ai or heuristic (got %q)", c.Processing.DefaultMode)
	}
	if c.Processing.PreviewChars <= 0 {
		return fmt.Errorf("PROCESSING_PREVIEW_CHARS must be positive")
	}
	return nil
}

// LLM provider names
const (
	ProviderGroq      = "groq"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderNone      = "none"
)

// LLMEnabled reports whether an external model can be called at all
func (c *Config) LLMEnabled() bool {
	return c.LLM.Provider != ProviderNone && c.LLM.APIKey != ""
}

// ModelOrDefault returns the configured model or the provider default
func (c LLMConfig) ModelOrDefault() string {
	if c.Model != "" {
		return c.Model
	}
	switch c.Provider {
	case ProviderOpenAI:
		return "gpt-4o-mini"
	case ProviderAnthropic:
		return "claude-haiku-4-5"
	default:
		return "llama-3.3-70b-versatile"
	}
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}
