package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nauticalab/uconfig/internal/document"
)

func setupTestServer(t *testing.T) *Server {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"alpha.json":  `{"x": 5, "y": "a", "list": [1, 2]}`,
		"beta.yaml":   "x: 3\ny: a\nlist: [1, 2]\nz: true\n",
		"gamma.json":  `{"x": 5.0, "y": "a", "list": [1, 2]}`,
		"broken.yaml": "created: 2024-01-02\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(content), 0o644))
	}

	dir, err := document.NewDir(root)
	require.NoError(t, err)

	handler := NewHandler(dir, "v1", "commit", "time", "go1.24")

	// Setup routes directly (skip middleware for handler testing)
	router := chi.NewRouter()
	setupRoutes(router, handler)

	return &Server{router: router, handler: handler}
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func TestHandler_Health(t *testing.T) {
	w := get(t, setupTestServer(t), "/api/v1/health")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestHandler_Version(t *testing.T) {
	w := get(t, setupTestServer(t), "/api/v1/version")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp VersionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "v1", resp.Version)
	assert.Equal(t, "commit", resp.GitCommit)
}

func TestHandler_ListConfigs(t *testing.T) {
	w := get(t, setupTestServer(t), "/api/v1/configs")
	require.Equal(t, http.StatusOK, w.Code)

	var resp ListConfigsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 4, resp.Count)

	names := make([]string, 0, resp.Count)
	for _, c := range resp.Configs {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"alpha", "beta", "broken", "gamma"}, names)

	assert.True(t, resp.Configs[0].Valid)
	assert.Equal(t, 3, resp.Configs[0].Fields)
	assert.Equal(t, "yaml", resp.Configs[1].Format)
	assert.False(t, resp.Configs[2].Valid)
	assert.Contains(t, resp.Configs[2].Error, "not one of the allowed types")
}

func TestHandler_GetConfig(t *testing.T) {
	s := setupTestServer(t)

	t.Run("preserves field order", func(t *testing.T) {
		w := get(t, s, "/api/v1/configs/alpha")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"name":"alpha","fields":{"x":5,"y":"a","list":[1,2]}}`, w.Body.String())
		assert.Contains(t, w.Body.String(), `{"x":5,"y":"a","list":[1,2]}`)
	})

	tests := []struct {
		name string
		path string
		code int
	}{
		{"missing", "/api/v1/configs/absent", http.StatusNotFound},
		{"invalid document", "/api/v1/configs/broken", http.StatusUnprocessableEntity},
		{"hidden name", "/api/v1/configs/.alpha", http.StatusBadRequest},
		{"encoded traversal", "/api/v1/configs/..%2Falpha", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(t, s, tt.path)
			assert.Equal(t, tt.code, w.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.code, resp.Code)
		})
	}
}

func TestHandler_DiffConfigs(t *testing.T) {
	s := setupTestServer(t)

	t.Run("different", func(t *testing.T) {
		w := get(t, s, "/api/v1/configs/alpha/diff/beta")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"differences":{"first.x":5,"second.x":3,"second.z":true}`)

		var resp struct {
			Equal bool `json:"equal"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Equal)
	})

	t.Run("int and float are equal", func(t *testing.T) {
		w := get(t, s, "/api/v1/configs/alpha/diff/gamma")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"first":"alpha","second":"gamma","equal":true,"differences":{}}`, w.Body.String())
	})

	t.Run("missing other", func(t *testing.T) {
		w := get(t, s, "/api/v1/configs/alpha/diff/absent")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestNewServer(t *testing.T) {
	s, err := NewServer(ServerConfig{Port: 0, Dir: t.TempDir(), Version: "dev"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/configs", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"configs":[],"count":0}`, w.Body.String())

	_, err = NewServer(ServerConfig{Dir: filepath.Join(t.TempDir(), "absent")})
	assert.Error(t, err)
}

func TestServer_StartWithContext(t *testing.T) {
	s, err := NewServer(ServerConfig{Port: 0, Dir: t.TempDir()})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.StartWithContext(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_RecoversFromPanics(t *testing.T) {
	s, err := NewServer(ServerConfig{Dir: t.TempDir()})
	require.NoError(t, err)
	s.router.Get("/panic", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
