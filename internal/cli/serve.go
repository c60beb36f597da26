package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/nauticalab/uconfig/internal/api"
)

// ServeOptions holds configuration for the serve command
type ServeOptions struct {
	Port      int
	Dir       string
	Version   string
	BuildTime string
	GitCommit string
	GoVersion string
}

// RunServe serves the config directory over HTTP until interrupted.
func RunServe(w io.Writer, opts ServeOptions) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	server, err := api.NewServer(api.ServerConfig{
		Port:      opts.Port,
		Dir:       opts.Dir,
		Version:   opts.Version,
		GitCommit: opts.GitCommit,
		BuildTime: opts.BuildTime,
		GoVersion: opts.GoVersion,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	printInfo(w, "serving configs from %s on port %d", opts.Dir, opts.Port)
	fmt.Fprintf(w, "\nEndpoints:\n")
	fmt.Fprintf(w, "  GET /api/v1/health                      - Health check\n")
	fmt.Fprintf(w, "  GET /api/v1/version                     - Version information\n")
	fmt.Fprintf(w, "  GET /api/v1/configs                     - List configs\n")
	fmt.Fprintf(w, "  GET /api/v1/configs/{name}              - Show a config\n")
	fmt.Fprintf(w, "  GET /api/v1/configs/{name}/diff/{other} - Compare two configs\n")
	fmt.Fprintf(w, "\n")

	if err := server.StartWithContext(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	printSuccess(w, "server shutdown complete")
	return nil
}
