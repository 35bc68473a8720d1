package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	BindEnv(v)
	return v
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newViper())
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "reviews.text", cfg.Dataset.TextColumn)
	assert.Equal(t, "vader", cfg.Scorer.Backend)
	assert.Equal(t, 24*time.Hour, cfg.Cache.TTL)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SENTIREVIEW_SCORER_BACKEND", "openai")
	t.Setenv("SENTIREVIEW_PIPELINE_WORKERS", "4")
	t.Setenv("SENTIREVIEW_CACHE_TTL", "90m")

	cfg, err := Load(newViper())
	require.NoError(t, err)

	assert.Equal(t, "openai", cfg.Scorer.Backend)
	assert.Equal(t, 4, cfg.Pipeline.Workers)
	assert.Equal(t, 90*time.Minute, cfg.Cache.TTL)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
scorer:
  backend: hugot
pipeline:
  failure_policy: isolate
  examples: 5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	v := newViper()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "hugot", cfg.Scorer.Backend)
	assert.Equal(t, "isolate", cfg.Pipeline.FailurePolicy)
	assert.Equal(t, 5, cfg.Pipeline.Examples)
	assert.Equal(t, 1, cfg.Pipeline.Workers)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad backend", func(c *Config) { c.Scorer.Backend = "spacy" }},
		{"bad cache", func(c *Config) { c.Cache.Backend = "redis" }},
		{"bad policy", func(c *Config) { c.Pipeline.FailurePolicy = "retry" }},
		{"no workers", func(c *Config) { c.Pipeline.Workers = 0 }},
		{"no text column", func(c *Config) { c.Dataset.TextColumn = "" }},
		{"kafka without topic", func(c *Config) {
			c.Sinks.Kafka.Enabled = true
			c.Sinks.Kafka.Topic = ""
		}},
		{"dynamodb without table", func(c *Config) {
			c.Sinks.DynamoDB.Enabled = true
			c.Sinks.DynamoDB.Table = ""
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	assert.NoError(t, Default().Validate())
}

func TestAppEnv(t *testing.T) {
	t.Setenv("APP_ENV", "")
	assert.Equal(t, "dev", AppEnv())

	t.Setenv("APP_ENV", "production")
	assert.Equal(t, "production", AppEnv())
}
