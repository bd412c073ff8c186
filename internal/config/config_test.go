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

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "classic", cfg.Template)
	assert.Equal(t, 3*time.Second, cfg.NotificationTTL)
	assert.Equal(t, 5*time.Second, cfg.AutoSave.Interval)
	assert.Equal(t, 0.8, cfg.AutoSave.Threshold)
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, Default(), *cfg)
}

func TestLoad_YAMLFile(t *testing.T) {
	content := `
port: 9090
template: modern
notification_ttl: 5s
autosave:
  enabled: false
  interval: 30s
pdf:
  margin_mm: 15
  raster: false
log:
  json: true
ratelimit:
  default_limit: 50
  whitelist: ["10.0.0.1"]
`
	path := filepath.Join(t.TempDir(), "resume_builder.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "modern", cfg.Template)
	assert.Equal(t, 5*time.Second, cfg.NotificationTTL)
	assert.False(t, cfg.AutoSave.Enabled)
	assert.Equal(t, 30*time.Second, cfg.AutoSave.Interval)
	assert.Equal(t, 0.8, cfg.AutoSave.Threshold)
	assert.Equal(t, 15.0, cfg.PDF.MarginMM)
	assert.False(t, cfg.PDF.Raster)
	assert.Equal(t, 2.0, cfg.PDF.Scale)
	assert.True(t, cfg.Log.JSON)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 50, cfg.RateLimit.DefaultLimit)
	assert.Equal(t, []string{"10.0.0.1"}, cfg.RateLimit.Whitelist)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume_builder.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"port": 9090}`), 0644))
	t.Setenv("RESUME_BUILDER_PORT", "7070")
	t.Setenv("RESUME_BUILDER_PDF_SCALE", "1.5")
	t.Setenv("RESUME_BUILDER_RATELIMIT_ENABLED", "false")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, 1.5, cfg.PDF.Scale)
	assert.False(t, cfg.RateLimit.Enabled)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "zero port", mutate: func(c *Config) { c.Port = 0 }},
		{name: "port too large", mutate: func(c *Config) { c.Port = 70000 }},
		{name: "unknown template", mutate: func(c *Config) { c.Template = "baroque" }},
		{name: "threshold above one", mutate: func(c *Config) { c.AutoSave.Threshold = 1.5 }},
		{name: "zero autosave interval", mutate: func(c *Config) { c.AutoSave.Interval = 0 }},
		{name: "zero export timeout", mutate: func(c *Config) { c.ExportTimeout = 0 }},
		{name: "bad pdf scale", mutate: func(c *Config) { c.PDF.Scale = 0 }},
		{name: "negative rate limit", mutate: func(c *Config) { c.RateLimit.DefaultLimit = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
