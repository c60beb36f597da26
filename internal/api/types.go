package api

import (
	"time"

	"github.com/nauticalab/uconfig/pkg/uconfig"
)

// ConfigSummary describes one config document in a listing
type ConfigSummary struct {
	Name   string `json:"name"`
	File   string `json:"file"`
	Format string `json:"format"`
	Fields int    `json:"fields"`
	Valid  bool   `json:"valid"`
	Error  string `json:"error,omitempty"`
}

// ListConfigsResponse represents the response for listing configs
type ListConfigsResponse struct {
	Configs []ConfigSummary `json:"configs"`
	Count   int             `json:"count"`
}

// ConfigResponse carries a config's flattened fields in definition order
type ConfigResponse struct {
	Name   string       `json:"name"`
	Fields *uconfig.Map `json:"fields"`
}

// DiffResponse represents the difference between two configs
type DiffResponse struct {
	First       string       `json:"first"`
	Second      string       `json:"second"`
	Equal       bool         `json:"equal"`
	Differences *uconfig.Map `json:"differences"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// VersionResponse represents the version information
type VersionResponse struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
