package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, ProviderGroq, cfg.LLM.Provider)
	assert.Equal(t, time.Hour, cfg.LLM.CacheTTL)
	assert.Equal(t, uint64(0), cfg.LLM.MaxRetries)
	assert.True(t, cfg.LLM.Fallback)
	assert.Equal(t, "local", cfg.Storage.Backend)
	assert.Equal(t, "BusyBee", cfg.Storage.BaseDir)
	assert.True(t, cfg.Processing.NormalizeNames)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "OpenAI")
	t.Setenv("LLM_API_KEY", "sk-test")
	t.Setenv("LLM_CACHE_TTL", "15m")
	t.Setenv("STORAGE_BACKEND", "minio")
	t.Setenv("PROCESSING_NORMALIZE_NAMES", "false")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, ProviderOpenAI, cfg.LLM.Provider)
	assert.Equal(t, 15*time.Minute, cfg.LLM.CacheTTL)
	assert.True(t, cfg.LLMEnabled())
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.ModelOrDefault())
	assert.Equal(t, "minio", cfg.Storage.Backend)
	assert.False(t, cfg.Processing.NormalizeNames)
}

func TestLoadFromEnv_RejectsUnknownProvider(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "bard")

	_, err := LoadFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LLM_PROVIDER")
}

func TestLLMEnabled(t *testing.T) {
	cfg := &Config{LLM: LLMConfig{Provider: ProviderGroq}}
	assert.False(t, cfg.LLMEnabled(), "missing key disables the model")

	cfg.LLM.APIKey = "key"
	assert.True(t, cfg.LLMEnabled())

	cfg.LLM.Provider = ProviderNone
	assert.False(t, cfg.LLMEnabled())
}
