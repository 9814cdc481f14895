package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"slices"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/pixpost/internal/core/styles"
	"github.com/colonyops/pixpost/internal/core/validate"
	"github.com/colonyops/pixpost/pkg/tmpl"
)

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
		c.validateUpload(),
		c.validateSubmit(),
		c.validateTUI(),
	)
}

func (c *Config) validateUpload() error {
	var errs criterio.FieldErrorsBuilder

	if len(c.Upload.AllowedExtensions) == 0 {
		errs = errs.Append("upload.allowed_extensions", errors.New("at least one extension is required"))
	}
	for i, ext := range c.Upload.AllowedExtensions {
		if ext == "" || ext == "." {
			errs = errs.Append(fmt.Sprintf("upload.allowed_extensions[%d]", i), errors.New("extension cannot be empty"))
		}
	}

	if c.Upload.MaxHashtags < 1 {
		errs = errs.Append("upload.max_hashtags", errors.New("must be at least 1"))
	}
	if c.Upload.MaxDescriptionLength < 1 {
		errs = errs.Append("upload.max_description_length", errors.New("must be at least 1"))
	}

	s := c.Upload.Scale
	if s.Min < 1 {
		errs = errs.Append("upload.scale.min", errors.New("must be at least 1"))
	}
	if s.Max < s.Min {
		errs = errs.Append("upload.scale.max", fmt.Errorf("must be >= min (%d)", s.Min))
	}
	if s.Step < 1 {
		errs = errs.Append("upload.scale.step", errors.New("must be at least 1"))
	}

	return errs.ToError()
}

func (c *Config) validateSubmit() error {
	var errs criterio.FieldErrorsBuilder

	if c.Submit.Endpoint != "" {
		u, err := url.Parse(c.Submit.Endpoint)
		switch {
		case err != nil:
			errs = errs.Append("submit.endpoint", fmt.Errorf("invalid url: %w", err))
		case u.Scheme != "http" && u.Scheme != "https":
			errs = errs.Append("submit.endpoint", fmt.Errorf("scheme must be http or https, got %q", u.Scheme))
		case u.Host == "":
			errs = errs.Append("submit.endpoint", errors.New("host is required"))
		}
	}

	if c.Submit.Timeout < 0 {
		errs = errs.Append("submit.timeout", errors.New("cannot be negative"))
	}

	if c.Submit.OnSuccess != "" {
		if err := tmpl.Check(c.Submit.OnSuccess); err != nil {
			errs = errs.Append("submit.on_success", fmt.Errorf("template error: %w", err))
		}
	}

	return errs.ToError()
}

func (c *Config) validateTUI() error {
	var errs criterio.FieldErrorsBuilder

	if _, ok := styles.GetPalette(c.TUI.Theme); !ok {
		errs = errs.Append("tui.theme", fmt.Errorf("unknown theme %q, available: %v", c.TUI.Theme, styles.ThemeNames()))
	}
	if !slices.Contains(validate.Locales(), validate.Locale(c.TUI.Locale)) {
		errs = errs.Append("tui.locale", fmt.Errorf("unknown locale %q, available: %v", c.TUI.Locale, validate.Locales()))
	}
	if c.TUI.ToastTTL < 0 {
		errs = errs.Append("tui.toast_ttl", errors.New("cannot be negative"))
	}

	return errs.ToError()
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return errors.New("data directory cannot be empty")
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return errors.New("exists but is not a directory")
	}
	return nil
}
