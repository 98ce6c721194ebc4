package internal

import (
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/gebo/internal/section"
)

// Config represents the application configuration.
type Config struct {
	App   ApplicationConfig `yaml:"app"`
	Vault VaultConfig       `yaml:"vault"`
	Run   RunConfig         `yaml:"run"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Vault.Validate(); err != nil {
		return err
	}
	return c.Run.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
}

// VaultConfig holds the path to the Markdown vault directory.
type VaultConfig struct {
	Path string `yaml:"path"`
}

// Validate validates the vault configuration.
func (c *VaultConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// RunConfig holds the backlink pass settings.
//
// Mode controls how an existing "## Backlinks" section is handled:
//   - "append" (default): documents that already carry a section are left alone.
//   - "replace": the first existing section is rewritten in place.
type RunConfig struct {
	Mode     string `yaml:"mode"`
	TextRefs bool   `yaml:"text_refs"`
	DryRun   bool   `yaml:"dry_run"`
	Workers  int    `yaml:"workers"`
}

// Validate validates the run configuration.
func (c *RunConfig) Validate() error {
	// Normalise empty mode to the default policy.
	if c.Mode == "" {
		c.Mode = string(section.ModeAppend)
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.Mode, validation.Required,
			validation.In(string(section.ModeAppend), string(section.ModeReplace))),
		validation.Field(&c.Workers, validation.Min(1)),
	)
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
		},
		Run: RunConfig{
			Mode:    string(section.ModeAppend),
			Workers: 4,
		},
	}
}
