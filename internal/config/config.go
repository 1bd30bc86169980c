// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/yamllint/internal/logging"
	"github.com/jonathan/yamllint/internal/schemas"
)

// Environment variables read by ApplyEnv.
const (
	EnvConfig    = "YAMLLINT_CONFIG"
	EnvPattern   = "YAMLLINT_PATTERN"
	EnvLogLevel  = "YAMLLINT_LOG_LEVEL"
	EnvResources = "YAMLLINT_RESOURCES"
	EnvNoColor   = "NO_COLOR"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	// Glob matched against file names in directory mode
	Pattern string `json:"pattern,omitempty" validate:"omitempty,glob"`
	// Alias name (without @) -> directory
	Resources map[string]string `json:"resources,omitempty" validate:"dive,keys,required,excludes=/,endkeys,required"`
	LogLevel  string            `json:"log_level,omitempty" validate:"omitempty,loglevel"`
	NoColor   bool              `json:"no_color,omitempty"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Pattern:  "*.yml",
		LogLevel: "warn",
	}
}

// LoadConfig loads configuration from a JSON file.
// The content is checked against the configuration schema before decoding,
// and relative resource directories are resolved against the file's directory.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := schemas.ValidateConfig(data); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	base := filepath.Dir(path)
	for name, dir := range cfg.Resources {
		if !filepath.IsAbs(dir) {
			cfg.Resources[name] = filepath.Join(base, dir)
		}
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation("glob", validateGlob); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := validate.RegisterValidation("loglevel", validateLogLevel); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

func validateGlob(fl validator.FieldLevel) bool {
	_, err := filepath.Match(fl.Field().String(), "")
	return err == nil
}

func validateLogLevel(fl validator.FieldLevel) bool {
	return logging.ValidLevel(fl.Field().String())
}

// ApplyEnv overlays values from environment variables using lookup
// (typically os.LookupEnv). Set variables win over file values.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvPattern); ok && v != "" {
		c.Pattern = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	if v, ok := lookup(EnvNoColor); ok && v != "" {
		c.NoColor = true
	}
	if v, ok := lookup(EnvResources); ok && v != "" {
		resources, err := ParseResources(strings.Split(v, ","))
		if err != nil {
			return fmt.Errorf("config error: %s: %w", EnvResources, err)
		}
		c.AddResources(resources)
	}
	return nil
}

// AddResources merges aliases into the configuration, replacing existing
// entries with the same name.
func (c *Config) AddResources(resources map[string]string) {
	if len(resources) == 0 {
		return
	}
	if c.Resources == nil {
		c.Resources = make(map[string]string, len(resources))
	}
	for name, dir := range resources {
		c.Resources[name] = dir
	}
}

// ParseResources parses NAME=DIR pairs. A leading @ on NAME is dropped.
func ParseResources(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, dir, ok := strings.Cut(pair, "=")
		name = strings.TrimPrefix(strings.TrimSpace(name), "@")
		dir = strings.TrimSpace(dir)
		if !ok || name == "" || dir == "" {
			return nil, fmt.Errorf("invalid resource %q: expected NAME=DIR", pair)
		}
		out[name] = dir
	}
	return out, nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Pattern == "" {
		result.Pattern = defaults.Pattern
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}

	// Resources: defaults only fill names the config does not define
	if len(defaults.Resources) > 0 {
		merged := make(map[string]string, len(defaults.Resources)+len(result.Resources))
		for name, dir := range defaults.Resources {
			merged[name] = dir
		}
		for name, dir := range result.Resources {
			merged[name] = dir
		}
		result.Resources = merged
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
