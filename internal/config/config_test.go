package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estudaia/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("USE_SAMPLE_DATA", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Store.Driver)
	assert.False(t, cfg.Store.UsesPostgres())
	assert.Equal(t, int64(25), cfg.Upload.MaxFileSizeMB)
	assert.Equal(t, int64(25*1024*1024), cfg.Upload.MaxBytes())
	assert.Equal(t, 50, cfg.Upload.MinTextLength)
	assert.Equal(t, 300, cfg.Upload.ShortTextThreshold)
	assert.Equal(t, "gemini-flash-latest", cfg.AI.Google.DefaultModel)
	assert.Equal(t, "https://api.x.ai/v1", cfg.AI.Grok.BaseURL)
	assert.Equal(t, 50, cfg.Records.DefaultLimit)
	assert.Equal(t, 20, cfg.Records.QuizSessionLimit)
	assert.False(t, cfg.AI.UseSampleData)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ESTUDAIA_SERVER_PORT", ":9090")
	t.Setenv("ESTUDAIA_STORE_DRIVER", "postgres")
	t.Setenv("ESTUDAIA_AI_GOOGLE_API_KEY", "g-key")
	t.Setenv("ESTUDAIA_AI_TIMEOUT_SECS", "15")
	t.Setenv("ESTUDAIA_CORS_ALLOWED_ORIGINS", "https://estudaia.app, ,https://www.estudaia.app")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.True(t, cfg.Store.UsesPostgres())
	assert.True(t, cfg.AI.Google.Configured())
	assert.Equal(t, "google", cfg.AI.Google.Name)
	assert.Equal(t, 15*time.Second, cfg.AI.Timeout())
	assert.Equal(t, []string{"https://estudaia.app", "https://www.estudaia.app"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_PlatformPort(t *testing.T) {
	t.Setenv("ESTUDAIA_SERVER_PORT", "")
	t.Setenv("PORT", "5000")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":5000", cfg.Server.Port)
}

func TestLoad_UnprefixedFallbacks(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-env")
	t.Setenv("ESTUDAIA_AI_USE_SAMPLE_DATA", "")
	t.Setenv("USE_SAMPLE_DATA", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "sk-env", cfg.AI.FallbackOpenAIKey)
	assert.True(t, cfg.AI.UseSampleData)
}

func TestAIConfig_ProvidersPriorityOrder(t *testing.T) {
	cfg := config.AIConfig{
		OpenAI:    config.ProviderConfig{Name: "openai"},
		Anthropic: config.ProviderConfig{Name: "anthropic"},
		Google:    config.ProviderConfig{Name: "google"},
		Grok:      config.ProviderConfig{Name: "grok"},
	}

	var names []string
	for _, p := range cfg.Providers() {
		names = append(names, p.Name)
	}

	assert.Equal(t, []string{"openai", "anthropic", "google", "grok"}, names)
}

func TestProviderConfig_Configured(t *testing.T) {
	assert.False(t, (&config.ProviderConfig{APIKey: "   "}).Configured())
	assert.True(t, (&config.ProviderConfig{APIKey: "sk"}).Configured())
}

func TestAIConfig_TimeoutDefault(t *testing.T) {
	cfg := config.AIConfig{}
	assert.Equal(t, 120*time.Second, cfg.Timeout())
}
