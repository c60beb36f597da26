package uconfig

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// SaveOptions controls how a config is written.
type SaveOptions struct {
	// IndentWidth is the number of spaces per nesting level.
	IndentWidth int `validate:"gte=0"`
	// IndentString, when set, is used verbatim instead of IndentWidth spaces.
	IndentString string
}

// SaveOption configures Save and Encode.
type SaveOption func(*SaveOptions)

// WithIndent indents output by n spaces per level. Zero writes one value
// per line with no indentation.
func WithIndent(n int) SaveOption {
	return func(o *SaveOptions) {
		o.IndentWidth = n
		o.IndentString = ""
	}
}

// WithIndentString indents output with s per level, e.g. "\t".
func WithIndentString(s string) SaveOption {
	return func(o *SaveOptions) {
		o.IndentString = s
	}
}

func buildSaveOptions(opts []SaveOption) (string, error) {
	o := SaveOptions{IndentWidth: DefaultJSONIndent}
	for _, opt := range opts {
		opt(&o)
	}
	if err := validate.Struct(&o); err != nil {
		return "", formatValidationError("save options", err)
	}
	if o.IndentString != "" {
		return o.IndentString, nil
	}
	return strings.Repeat(" ", o.IndentWidth), nil
}

// Encode writes the flattened fields of c to w as an indented JSON object.
func (c *Config) Encode(w io.Writer, opts ...SaveOption) error {
	indent, err := buildSaveOptions(opts)
	if err != nil {
		return err
	}

	data, err := MarshalIndentJSON(MapValue(c.Flattened()), indent)
	if err != nil {
		return fmt.Errorf("failed to encode config %s: %w", c.name, err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write config %s: %w", c.name, err)
	}
	return nil
}

// Save writes the config to path as JSON, replacing any existing file.
func (c *Config) Save(path string, opts ...SaveOption) (err error) {
	var buf bytes.Buffer
	if err := c.Encode(&buf, opts...); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close config file %s: %w", path, cerr)
		}
	}()

	if _, err := f.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}

// Decode replaces every field of c with the top-level keys of the JSON
// object read from r. The decoded data is adopted as is: it is neither
// normalized nor validated.
func (c *Config) Decode(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", c.name, err)
	}
	fields := NewMap()
	if err := fields.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("failed to parse JSON for config %s: %w", c.name, err)
	}
	c.fields = fields
	return nil
}

// Load replaces every field of c with the JSON object stored at path.
// See Decode; call Revalidate to check the loaded data.
func (c *Config) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config file %s: %w", path, err)
	}
	defer f.Close()

	if err := c.Decode(f); err != nil {
		return fmt.Errorf("failed to load config file %s: %w", path, err)
	}
	return nil
}

// EncodeYAML writes the flattened fields of c to w as YAML.
func (c *Config) EncodeYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(DefaultJSONIndent)
	if err := enc.Encode(c.Flattened()); err != nil {
		return fmt.Errorf("failed to encode config %s as YAML: %w", c.name, err)
	}
	return enc.Close()
}

// DecodeYAML is Decode for YAML input.
func (c *Config) DecodeYAML(r io.Reader) error {
	fields := NewMap()
	if err := yaml.NewDecoder(r).Decode(fields); err != nil {
		return fmt.Errorf("failed to parse YAML for config %s: %w", c.name, err)
	}
	c.fields = fields
	return nil
}

// SaveYAML writes the config to path as YAML, replacing any existing file.
func (c *Config) SaveYAML(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close config file %s: %w", path, cerr)
		}
	}()
	return c.EncodeYAML(f)
}

// LoadYAML is Load for YAML files.
func (c *Config) LoadYAML(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config file %s: %w", path, err)
	}
	defer f.Close()

	if err := c.DecodeYAML(f); err != nil {
		return fmt.Errorf("failed to load config file %s: %w", path, err)
	}
	return nil
}
