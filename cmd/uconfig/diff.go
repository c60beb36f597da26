package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nauticalab/uconfig/internal/cli"
)

var (
	// Diff command flags
	diffText     bool
	diffRevision string
	diffExitCode bool
)

// diffCmd represents the diff command
var diffCmd = &cobra.Command{
	Use:   "diff <a> <b> | diff --rev <revision> <file>",
	Short: "Show the fields that differ between two configs",
	Long: `Compare two configs field by field. Fields only in, or different in, the
first config are printed as first.<key>; the same for the second config as
second.<key>.

Examples:
  uconfig diff staging.json production.yaml
  uconfig diff --text staging.json production.json
  uconfig diff --rev HEAD~1 app.json`,
	Args: func(cmd *cobra.Command, args []string) error {
		if diffRevision != "" {
			if len(args) != 1 {
				return fmt.Errorf("--rev takes exactly one file, got %d", len(args))
			}
			return nil
		}
		return cobra.ExactArgs(2)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := cli.DiffOptions{Text: diffText, FailOnDiff: diffExitCode}
		if diffRevision != "" {
			return cli.RunDiffRevision(cmd.OutOrStdout(), args[0], diffRevision, opts)
		}
		return cli.RunDiff(cmd.OutOrStdout(), args[0], args[1], opts)
	},
}

func init() {
	diffCmd.Flags().BoolVar(&diffText, "text", false, "Compare the rendered JSON documents line by line")
	diffCmd.Flags().StringVar(&diffRevision, "rev", "", "Compare a file with its contents at a Git revision")
	diffCmd.Flags().BoolVar(&diffExitCode, "exit-code", false, "Exit with status 1 when the configs differ")
}
