package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nauticalab/uconfig/pkg/uconfig"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"app.json", FormatJSON, false},
		{"app.JSON", FormatJSON, false},
		{"app.yaml", FormatYAML, false},
		{"dir/app.yml", FormatYAML, false},
		{"app.toml", "", true},
		{"app", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ParseFormat("xml")
	assert.ErrorContains(t, err, "unsupported format")
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("json keeps order", func(t *testing.T) {
		path := writeFile(t, dir, "server.json", `{"port": 8080, "hosts": ["a", "b"], "tls": {"enabled": false}}`)

		cfg, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "server", cfg.Name())
		assert.Equal(t, []string{"port", "hosts", "tls"}, cfg.Keys())

		port, _ := cfg.Get("port")
		n, ok := port.AsInt()
		require.True(t, ok)
		assert.Equal(t, int64(8080), n)
	})

	t.Run("yaml", func(t *testing.T) {
		path := writeFile(t, dir, "server.yaml", "port: 8080\nhosts:\n  - a\n  - b\ntls:\n  enabled: false\n")

		cfg, err := LoadFile(path)
		require.NoError(t, err)

		fromJSON, err := LoadFile(filepath.Join(dir, "server.json"))
		require.NoError(t, err)

		equal, err := cfg.Equal(fromJSON)
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("yaml timestamps are not allowed", func(t *testing.T) {
		path := writeFile(t, dir, "dated.yaml", "created: 2024-01-02\n")

		_, err := LoadFile(path)
		require.Error(t, err)
		assert.ErrorIs(t, err, uconfig.ErrValidation)
		assert.Contains(t, err.Error(), "invalid configuration in")
	})

	t.Run("reserved field names", func(t *testing.T) {
		path := writeFile(t, dir, "private.json", `{"_secret": 1}`)

		_, err := LoadFile(path)
		assert.ErrorContains(t, err, "reserved prefix")
	})

	t.Run("top level must be an object", func(t *testing.T) {
		path := writeFile(t, dir, "list.json", `[1, 2]`)

		_, err := LoadFile(path)
		assert.ErrorContains(t, err, "failed to parse JSON")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "absent.json"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unknown extension", func(t *testing.T) {
		_, err := LoadFile(writeFile(t, dir, "app.ini", "a=1"))
		assert.ErrorContains(t, err, "unsupported config file extension")
	})
}

func TestLoadBytes(t *testing.T) {
	cfg, err := LoadBytes("inline", []byte("{}\n"), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "inline", cfg.Name())
	assert.Equal(t, 0, cfg.Len())

	cfg, err = LoadBytes("empty", nil, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Len())

	_, err = LoadBytes("bad", []byte("{}"), Format("toml"))
	assert.Error(t, err)
}

func TestEncodeAndWriteFile(t *testing.T) {
	cfg, err := LoadBytes("app", []byte(`{"b": 1, "a": [1.5, null]}`), FormatJSON)
	require.NoError(t, err)

	data, err := Encode(cfg, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"b\": 1,\n  \"a\": [\n    1.5,\n    null\n  ]\n}", string(data))

	data, err = Encode(cfg, FormatYAML)
	require.NoError(t, err)
	assert.Contains(t, string(data), "b: 1\na:\n")
	assert.Contains(t, string(data), "- 1.5")

	dir := t.TempDir()
	out := filepath.Join(dir, "app.yml")
	require.NoError(t, WriteFile(cfg, out))

	reloaded, err := LoadFile(out)
	require.NoError(t, err)
	equal, err := reloaded.Equal(cfg)
	require.NoError(t, err)
	assert.True(t, equal)

	assert.Error(t, WriteFile(cfg, filepath.Join(dir, "app.txt")))
}
