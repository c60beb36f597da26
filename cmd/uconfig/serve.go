package main

import (
	"github.com/spf13/cobra"

	"github.com/nauticalab/uconfig/internal/cli"
)

var (
	// Serve command flags
	servePort int
	serveDir  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a directory of configs over a read-only HTTP API",
	Long: `Start an HTTP server exposing the configs in a directory:
  - List configs and whether they are valid
  - Show a config's fields in definition order
  - Compare two configs
  - Health and version endpoints`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.RunServe(cmd.OutOrStdout(), cli.ServeOptions{
			Port:      servePort,
			Dir:       stringFlag(cmd, "dir", serveDir, settings.ServeDir),
			Version:   version,
			BuildTime: buildTime,
			GitCommit: gitCommit,
			GoVersion: goVersion,
		})
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "Port to listen on")
	serveCmd.Flags().StringVarP(&serveDir, "dir", "d", ".", "Directory containing config documents")
}
