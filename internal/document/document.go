// Package document loads config documents from disk or memory into
// uconfig.Config instances. Documents go through uconfig.New, so tuples are
// normalized and every value is checked against the allowed types.
package document

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nauticalab/uconfig/pkg/uconfig"
)

// Format identifies the encoding of a config document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported config file extension %q (expected .json, .yaml or .yml)", filepath.Ext(path))
	}
}

// ParseFormat validates a user supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format %q (expected json or yaml)", s)
	}
}

// NameFromPath derives a config name from a file name without its extension.
func NameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// LoadFile reads and parses the config document at path.
func LoadFile(path string) (*uconfig.Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	// Check if the config file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, err := LoadBytes(NameFromPath(path), data, format)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}
	return cfg, nil
}

// LoadBytes parses data as a document of the given format and builds a
// config named name from its top-level fields.
func LoadBytes(name string, data []byte, format Format) (*uconfig.Config, error) {
	fields := uconfig.NewMap()

	switch format {
	case FormatJSON:
		if err := fields.UnmarshalJSON(bytes.TrimSpace(data)); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, fields); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}

	return FromFields(name, fields)
}

// FromFields builds a config named name whose fields are copied from fields
// in order.
func FromFields(name string, fields *uconfig.Map) (*uconfig.Config, error) {
	return uconfig.New(uconfig.Named(name, uconfig.DefineFunc(func(b *uconfig.Builder) error {
		fields.Range(func(key string, v uconfig.Value) bool {
			b.Set(key, v)
			return b.Err() == nil
		})
		return nil
	})))
}

// Encode renders cfg in the given format.
func Encode(cfg *uconfig.Config, format Format) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatJSON:
		if err := cfg.Encode(&buf); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := cfg.EncodeYAML(&buf); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	return buf.Bytes(), nil
}

// WriteFile saves cfg to path using the format implied by its extension.
// The options apply to JSON output only.
func WriteFile(cfg *uconfig.Config, path string, opts ...uconfig.SaveOption) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if format == FormatYAML {
		return cfg.SaveYAML(path)
	}
	return cfg.Save(path, opts...)
}
