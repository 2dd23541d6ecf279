package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the prisma-to-zod configuration.
type Config struct {
	// Client is the path to the generated Prisma client declaration file.
	Client string `json:"client,omitempty"`
	// Output is the path the generated schema module is written to.
	Output string `json:"output,omitempty"`
	// Exclude lists type name patterns to skip in addition to the built-in
	// generator-internal families (e.g., "Legacy*").
	Exclude []string `json:"exclude,omitempty"`
	// UseNamespaceEnums controls whether the $Enums namespace is walked for
	// enum declarations. Defaults to true; top-level enum declarations and
	// literal-union aliases are always walked.
	UseNamespaceEnums *bool `json:"useNamespaceEnums,omitempty"`
}

// ConfigFileName is the auto-discovered config file in the working directory.
const ConfigFileName = "prisma-to-zod.config.json"

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Client: filepath.Join("node_modules", ".prisma", "client", "index.d.ts"),
		Output: filepath.Join("prisma", "zod", "index.ts"),
	}
}

// Load reads and parses a prisma-to-zod config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config in %q: %w", path, err)
	}

	return &config, nil
}

// Discover returns the path of a config file in dir, or empty string if none
// exists.
func Discover(dir string) string {
	p := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return ""
}

// Validate checks the config for logical errors.
func (c *Config) Validate() error {
	if c.Client == "" {
		return fmt.Errorf("client must not be empty")
	}
	if filepath.Ext(c.Client) != ".ts" {
		return fmt.Errorf("client must point at a .d.ts declaration file, got %q", c.Client)
	}

	if c.Output == "" {
		return fmt.Errorf("output must not be empty")
	}
	if filepath.Ext(c.Output) != ".ts" {
		return fmt.Errorf("output must have a .ts extension, got %q", filepath.Ext(c.Output))
	}

	return nil
}

// NamespaceEnums reports whether the $Enums namespace pass is enabled.
func (c *Config) NamespaceEnums() bool {
	return c.UseNamespaceEnums == nil || *c.UseNamespaceEnums
}
