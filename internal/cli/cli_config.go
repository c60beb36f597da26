package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// CLIConfig represents the configuration for the CLI
type CLIConfig struct {
	// Format is the default output format for show
	Format string `yaml:"format" validate:"omitempty,oneof=json yaml"`
	// Indent is the JSON indent width used by show and convert
	Indent int `yaml:"indent" validate:"gte=0,lte=16"`
	// Namespace is the default namespace for configmap
	Namespace string `yaml:"namespace"`
	// ServeDir is the default directory for serve
	ServeDir string `yaml:"serveDir"`
	// NoColor disables colored output
	NoColor bool `yaml:"noColor"`
}

var cliValidate = validator.New()

// DefaultCLIConfig returns the settings used when nothing overrides them.
func DefaultCLIConfig() *CLIConfig {
	return &CLIConfig{
		Format:    "json",
		Indent:    2,
		Namespace: "default",
		ServeDir:  ".",
	}
}

// LoadCLIConfig loads configuration from multiple sources in order of precedence:
// 1. Flags (handled by caller)
// 2. Environment variables
// 3. Config file (~/.uconfig/config.yaml)
func LoadCLIConfig() (*CLIConfig, error) {
	path := ""
	if homeDir, err := os.UserHomeDir(); err == nil {
		path = filepath.Join(homeDir, ".uconfig", "config.yaml")
	}
	return LoadCLIConfigFrom(path)
}

// LoadCLIConfigFrom is LoadCLIConfig with an explicit settings file. A
// missing file is not an error.
func LoadCLIConfigFrom(path string) (*CLIConfig, error) {
	config := DefaultCLIConfig()

	if path != "" {
		if data, err := os.ReadFile(path); err == nil {
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if v := os.Getenv("UCONFIG_FORMAT"); v != "" {
		config.Format = strings.ToLower(v)
	}
	if v := os.Getenv("UCONFIG_INDENT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid UCONFIG_INDENT %q: %w", v, err)
		}
		config.Indent = n
	}
	if v := os.Getenv("UCONFIG_NAMESPACE"); v != "" {
		config.Namespace = v
	}
	if v := os.Getenv("UCONFIG_DIR"); v != "" {
		config.ServeDir = v
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		config.NoColor = true
	}

	if err := cliValidate.Struct(config); err != nil {
		return nil, fmt.Errorf("invalid CLI settings: %w", err)
	}

	return config, nil
}
