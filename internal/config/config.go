package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v10"
	"gopkg.in/yaml.v3"

	"github.com/arixsnow/monolith/pkg/monolith"
)

// Config holds process-level settings for the generator.
type Config struct {
	// ContentDir is where the YAML content documents live.
	ContentDir string `env:"MONOLITH_CONTENT_DIR" envDefault:"content"`

	// LogLevel controls the verbosity of logging (debug, info, warn, error).
	LogLevel string `env:"MONOLITH_LOG_LEVEL" envDefault:"info"`
}

// Site describes where one render reads its template from and writes its
// output to. The values come from the content document itself, with defaults
// applied for anything omitted.
type Site struct {
	TemplateDir string
	Template    string
	OutputDir   string
	OutputFile  string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.ContentDir == "" {
		return fmt.Errorf("MONOLITH_CONTENT_DIR is required")
	}

	if !isValidLogLevel(c.LogLevel) {
		return fmt.Errorf("MONOLITH_LOG_LEVEL must be one of: debug, info, warn, error")
	}

	return nil
}

func isValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}

// LoadContent reads the named YAML content document from the content
// directory. The decoded document is the root context for rendering; the
// same document also carries the site settings under the keys
// template_path, template, outpath, and render.
func (c *Config) LoadContent(name string) (monolith.Context, *Site, error) {
	path := filepath.Join(c.ContentDir, name)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading content file %q: %w", path, err)
	}

	var tree map[string]interface{}
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, nil, fmt.Errorf("parsing content file %q: %w", path, err)
	}
	if tree == nil {
		return nil, nil, fmt.Errorf("content file %q is empty", path)
	}

	site := &Site{
		TemplateDir: stringOr(tree, "template_path", "templates"),
		Template:    stringOr(tree, "template", "base.html"),
		OutputDir:   stringOr(tree, "outpath", "output"),
		OutputFile:  stringOr(tree, "render", "render.html"),
	}

	return monolith.Context(tree), site, nil
}

// stringOr returns the string value under key, or fallback when the key is
// missing or not a string.
func stringOr(tree map[string]interface{}, key, fallback string) string {
	if v, ok := tree[key].(string); ok && v != "" {
		return v
	}
	return fallback
}
