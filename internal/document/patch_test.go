package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nauticalab/uconfig/pkg/uconfig"
)

func TestApplyPatch(t *testing.T) {
	cfg, err := LoadBytes("app", []byte(`{"zeta": 1, "db": {"port": 5432, "host": "a"}, "tags": ["x"], "ratio": 2.0}`), FormatJSON)
	require.NoError(t, err)

	t.Run("keeps key order", func(t *testing.T) {
		patch, err := DecodePatch([]byte(`[
			{"op": "replace", "path": "/db/port", "value": 6543},
			{"op": "add", "path": "/tags/-", "value": "y"},
			{"op": "add", "path": "/alpha", "value": true},
			{"op": "remove", "path": "/zeta"}
		]`), FormatJSON)
		require.NoError(t, err)

		patched, err := ApplyPatch(cfg, patch)
		require.NoError(t, err)
		assert.Equal(t, "app", patched.Name())
		assert.Equal(t, []string{"db", "tags", "ratio", "alpha"}, patched.Keys())

		db, _ := patched.Get("db")
		assert.Equal(t, []string{"port", "host"}, db.AsMap().Keys())

		ratio, _ := patched.Get("ratio")
		assert.Equal(t, uconfig.KindFloat, ratio.Kind())

		assert.Equal(t, map[string]any{
			"db":    map[string]any{"port": int64(6543), "host": "a"},
			"tags":  []any{"x", "y"},
			"ratio": 2.0,
			"alpha": true,
		}, patched.ToPlainMap())

		// the input config is left untouched
		assert.True(t, cfg.Has("zeta"))
	})

	t.Run("yaml patch", func(t *testing.T) {
		patch, err := DecodePatch([]byte("- op: replace\n  path: /zeta\n  value: 2\n"), FormatYAML)
		require.NoError(t, err)

		patched, err := ApplyPatch(cfg, patch)
		require.NoError(t, err)
		zeta, _ := patched.Get("zeta")
		n, _ := zeta.AsInt()
		assert.Equal(t, int64(2), n)
	})

	t.Run("failed test op", func(t *testing.T) {
		patch, err := DecodePatch([]byte(`[{"op": "test", "path": "/zeta", "value": 9}]`), FormatJSON)
		require.NoError(t, err)

		_, err = ApplyPatch(cfg, patch)
		assert.ErrorContains(t, err, "failed to apply patch to app")
	})

	t.Run("reserved name added", func(t *testing.T) {
		patch, err := DecodePatch([]byte(`[{"op": "add", "path": "/_hidden", "value": 1}]`), FormatJSON)
		require.NoError(t, err)

		_, err = ApplyPatch(cfg, patch)
		assert.ErrorContains(t, err, "reserved prefix")
	})

	t.Run("malformed patch", func(t *testing.T) {
		_, err := DecodePatch([]byte(`{"op": "add"}`), FormatJSON)
		assert.Error(t, err)
	})
}
