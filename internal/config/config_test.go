package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*1024*1024, cfg.BodyLimit())
	assert.Equal(t, "googleai", cfg.LLM.Provider)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 1, cfg.LLM.MaxRetries)
	assert.Equal(t, "temp-uploads", cfg.Storage.Bucket)
	assert.Equal(t, 24*time.Hour, cfg.Facts.CacheTTL)
	assert.Empty(t, cfg.Redis.Address)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "gemini-secret")
	t.Setenv("STORAGE_SECRET_ACCESS_KEY", "storage-secret")
	t.Setenv("REDIS_ADDRESS", "localhost:6379")
	t.Setenv("LLM_PROVIDER", "OLLAMA")
	t.Setenv("LLM_TIMEOUT", "12")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "gemini-secret", cfg.LLM.APIKey)
	assert.Equal(t, "storage-secret", cfg.Storage.SecretAccessKey)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address)
	assert.Equal(t, "ollama", cfg.LLM.Provider)
	assert.Equal(t, 12*time.Second, cfg.LLM.Timeout)
}

func TestFromViper_ClampsRetries(t *testing.T) {
	tests := []struct {
		name     string
		retries  int
		expected int
	}{
		{name: "negative", retries: -3, expected: 0},
		{name: "zero", retries: 0, expected: 0},
		{name: "one", retries: 1, expected: 1},
		{name: "too many", retries: 5, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			setDefaults(v)
			v.Set("llm.max_retries", tt.retries)

			cfg, err := fromViper(v)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.LLM.MaxRetries)
		})
	}
}

func TestFromViper_RejectsNonPositiveTimeout(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("llm.timeout", 0)

	_, err := fromViper(v)
	assert.Error(t, err)
}
