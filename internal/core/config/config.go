// Package config handles configuration loading and validation for pixpost.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/pixpost/internal/core/scale"
	"github.com/colonyops/pixpost/internal/core/styles"
	"github.com/colonyops/pixpost/internal/core/validate"
)

// Config holds the application configuration.
type Config struct {
	Upload  UploadConfig `yaml:"upload"`
	Submit  SubmitConfig `yaml:"submit"`
	TUI     TUIConfig    `yaml:"tui"`
	DataDir string       `yaml:"-"` // set by caller, not from config file
}

// UploadConfig holds the limits applied to every upload session.
type UploadConfig struct {
	AllowedExtensions    []string    `yaml:"allowed_extensions"`
	MaxHashtags          int         `yaml:"max_hashtags"`
	MaxDescriptionLength int         `yaml:"max_description_length"`
	Scale                ScaleConfig `yaml:"scale"`
}

// ScaleConfig bounds the zoom control.
type ScaleConfig struct {
	Min  int `yaml:"min"`
	Max  int `yaml:"max"`
	Step int `yaml:"step"`
}

// SubmitConfig selects where posts are sent.
type SubmitConfig struct {
	// Endpoint is the URL posts are uploaded to. Empty stores posts in the
	// local database instead.
	Endpoint string        `yaml:"endpoint"`
	Timeout  time.Duration `yaml:"timeout"`

	// OnSuccess is a shell command template run after a post was delivered.
	OnSuccess string `yaml:"on_success"`
}

// TUIConfig holds terminal UI options.
type TUIConfig struct {
	Theme    string        `yaml:"theme"`
	Locale   string        `yaml:"locale"`
	ToastTTL time.Duration `yaml:"toast_ttl"`
	StartDir string        `yaml:"start_dir"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Upload: UploadConfig{
			AllowedExtensions:    []string{".jpg", ".jpeg", ".png"},
			MaxHashtags:          5,
			MaxDescriptionLength: 140,
			Scale:                ScaleConfig{Min: 25, Max: 100, Step: 25},
		},
		Submit: SubmitConfig{
			Timeout: 10 * time.Second,
		},
		TUI: TUIConfig{
			Theme:    styles.DefaultTheme,
			Locale:   string(validate.LocaleEN),
			ToastTTL: 5 * time.Second,
			StartDir: ".",
		},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options and
// normalizes extensions to lower-case with a leading dot.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if len(c.Upload.AllowedExtensions) == 0 {
		c.Upload.AllowedExtensions = defaults.Upload.AllowedExtensions
	}
	for i, ext := range c.Upload.AllowedExtensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Upload.AllowedExtensions[i] = ext
	}

	if c.Upload.MaxHashtags == 0 {
		c.Upload.MaxHashtags = defaults.Upload.MaxHashtags
	}
	if c.Upload.MaxDescriptionLength == 0 {
		c.Upload.MaxDescriptionLength = defaults.Upload.MaxDescriptionLength
	}
	if c.Upload.Scale == (ScaleConfig{}) {
		c.Upload.Scale = defaults.Upload.Scale
	}
	if c.Submit.Timeout == 0 {
		c.Submit.Timeout = defaults.Submit.Timeout
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	if c.TUI.Locale == "" {
		c.TUI.Locale = defaults.TUI.Locale
	}
	if c.TUI.ToastTTL == 0 {
		c.TUI.ToastTTL = defaults.TUI.ToastTTL
	}
	if c.TUI.StartDir == "" {
		c.TUI.StartDir = defaults.TUI.StartDir
	}
}

// ScaleLimits converts the scale section for the scale controller.
func (c *Config) ScaleLimits() scale.Limits {
	return scale.Limits{
		Min:  c.Upload.Scale.Min,
		Max:  c.Upload.Scale.Max,
		Step: c.Upload.Scale.Step,
	}
}

// FieldLimits converts the upload section for the field rules.
func (c *Config) FieldLimits() validate.Limits {
	return validate.Limits{
		MaxHashtags:          c.Upload.MaxHashtags,
		MaxDescriptionLength: c.Upload.MaxDescriptionLength,
	}
}

// Messages returns the validation messages in the configured locale.
func (c *Config) Messages() validate.Messages {
	return validate.MessagesFor(validate.Locale(c.TUI.Locale), c.FieldLimits())
}

// UsesLocalStore reports whether posts are stored locally instead of being
// sent to an endpoint.
func (c *Config) UsesLocalStore() bool {
	return c.Submit.Endpoint == ""
}
