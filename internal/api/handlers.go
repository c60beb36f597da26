package api

import (
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nauticalab/uconfig/internal/document"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	// dir is the directory of config documents being served
	dir *document.Dir
	// version is the application version
	version string
	// gitCommit is the git commit hash of the build
	gitCommit string
	// buildTime is the time when the application was built
	buildTime string
	// goVersion is the Go version used to build the application
	goVersion string
}

// NewHandler creates a new Handler instance
func NewHandler(dir *document.Dir, version, gitCommit, buildTime, goVersion string) *Handler {
	return &Handler{
		dir:       dir,
		version:   version,
		gitCommit: gitCommit,
		buildTime: buildTime,
		goVersion: goVersion,
	}
}

// Health handles GET /api/v1/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Version handles GET /api/v1/version
func (h *Handler) Version(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, VersionResponse{
		Version:   h.version,
		GitCommit: h.gitCommit,
		BuildTime: h.buildTime,
		GoVersion: h.goVersion,
	})
}

// ListConfigs handles GET /api/v1/configs
// Documents that fail to load are listed with valid=false and the reason.
func (h *Handler) ListConfigs(w http.ResponseWriter, r *http.Request) {
	entries, err := h.dir.List()
	if err != nil {
		log.Printf("Failed to list configs: %v", err)
		respondInternalError(w, "Failed to list configs")
		return
	}

	summaries := make([]ConfigSummary, 0, len(entries))
	for _, entry := range entries {
		summary := ConfigSummary{
			Name:   entry.Name,
			File:   filepath.Base(entry.Path),
			Format: string(entry.Format),
		}
		cfg, err := document.LoadFile(entry.Path)
		if err != nil {
			summary.Error = err.Error()
		} else {
			summary.Valid = true
			summary.Fields = cfg.Len()
		}
		summaries = append(summaries, summary)
	}

	respondSuccess(w, ListConfigsResponse{
		Configs: summaries,
		Count:   len(summaries),
	})
}

// GetConfig handles GET /api/v1/configs/{name}
func (h *Handler) GetConfig(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	cfg, err := h.dir.Load(name)
	if err != nil {
		respondLoadError(w, err)
		return
	}

	respondSuccess(w, ConfigResponse{
		Name:   cfg.Name(),
		Fields: cfg.Flattened(),
	})
}

// DiffConfigs handles GET /api/v1/configs/{name}/diff/{other}
func (h *Handler) DiffConfigs(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	other := chi.URLParam(r, "other")

	first, err := h.dir.Load(name)
	if err != nil {
		respondLoadError(w, err)
		return
	}
	second, err := h.dir.Load(other)
	if err != nil {
		respondLoadError(w, err)
		return
	}

	diff, err := first.Difference(second)
	if err != nil {
		respondInternalError(w, err.Error())
		return
	}

	respondSuccess(w, DiffResponse{
		First:       name,
		Second:      other,
		Equal:       diff.Len() == 0,
		Differences: diff,
	})
}
