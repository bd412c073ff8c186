// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/notify"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/server/ratelimit"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable override, e.g. RESUME_BUILDER_PORT.
const EnvPrefix = "RESUME_BUILDER"

// Config is the full runtime configuration. Every field has a default, so
// a config file is optional.
type Config struct {
	Port            int               `mapstructure:"port" validate:"min=1,max=65535"`
	Template        string            `mapstructure:"template"`
	NotificationTTL time.Duration     `mapstructure:"notification_ttl" validate:"gt=0"`
	ChromePath      string            `mapstructure:"chrome_path"`
	ExportTimeout   time.Duration     `mapstructure:"export_timeout" validate:"gt=0"`
	AutoSave        AutoSaveConfig    `mapstructure:"autosave"`
	PDF             export.PDFOptions `mapstructure:"pdf"`
	Log             LogConfig         `mapstructure:"log"`
	RateLimit       ratelimit.Config  `mapstructure:"ratelimit"`
}

// AutoSaveConfig controls the cosmetic auto-save notification.
type AutoSaveConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	Interval  time.Duration `mapstructure:"interval" validate:"gt=0"`
	Threshold float64       `mapstructure:"threshold" validate:"gte=0,lte=1"`
}

// LogConfig selects the log encoding and level.
type LogConfig struct {
	JSON  bool `mapstructure:"json"`
	Debug bool `mapstructure:"debug"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Port:            8080,
		Template:        rendering.DefaultTemplate,
		NotificationTTL: notify.DefaultTTL,
		ExportTimeout:   60 * time.Second,
		AutoSave: AutoSaveConfig{
			Enabled:   true,
			Interval:  notify.DefaultAutoSaveInterval,
			Threshold: notify.DefaultAutoSaveThreshold,
		},
		PDF:       export.DefaultPDFOptions(),
		RateLimit: defaultRateLimit(),
	}
}

// defaultRateLimit leaves endpoint tiers unset; the server supplies them.
func defaultRateLimit() ratelimit.Config {
	rl := ratelimit.DefaultConfig()
	rl.EndpointConfigs = nil
	return rl
}

// SetDefaults registers Default() on v so that env overrides work for every key.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("port", d.Port)
	v.SetDefault("template", d.Template)
	v.SetDefault("notification_ttl", d.NotificationTTL)
	v.SetDefault("chrome_path", d.ChromePath)
	v.SetDefault("export_timeout", d.ExportTimeout)
	v.SetDefault("autosave.enabled", d.AutoSave.Enabled)
	v.SetDefault("autosave.interval", d.AutoSave.Interval)
	v.SetDefault("autosave.threshold", d.AutoSave.Threshold)
	v.SetDefault("pdf.margin_mm", d.PDF.MarginMM)
	v.SetDefault("pdf.image_quality", d.PDF.ImageQuality)
	v.SetDefault("pdf.scale", d.PDF.Scale)
	v.SetDefault("pdf.format", d.PDF.Format)
	v.SetDefault("pdf.orientation", d.PDF.Orientation)
	v.SetDefault("pdf.raster", d.PDF.Raster)
	v.SetDefault("log.json", d.Log.JSON)
	v.SetDefault("log.debug", d.Log.Debug)
	v.SetDefault("ratelimit.enabled", d.RateLimit.Enabled)
	v.SetDefault("ratelimit.default_limit", d.RateLimit.DefaultLimit)
	v.SetDefault("ratelimit.default_window", d.RateLimit.DefaultWindow)
	v.SetDefault("ratelimit.cleanup_interval", d.RateLimit.CleanupInterval)
}

// Load reads configuration from v. When path is non-empty the file is read
// first (YAML, JSON or TOML by extension); environment variables override it.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if _, err := rendering.LookupTemplate(c.Template); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := c.PDF.Validate(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}
