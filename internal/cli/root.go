// Package cli wires the interactive run flow behind a cobra command
// surface. It is thin plumbing by design: all pipeline logic lives in
// the scan, transfer, and excel packages and is called here with
// already-resolved parameters.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "delivsync",
	Short: "Sync project deliverables between internal and external areas",
	Long: `delivsync synchronizes deliverable files between an internal workspace
and an external (customer-facing) workspace that share a fixed
phase-based folder hierarchy.

A run scans the source area for documents, review records, and
configured extra files, lets you pick a subset, and copies them with
category-specific destination rules. Incoming review records are
reconciled by name against files already staged internally.

Exit Codes:
  0  - Success (including a run aborted at a prompt)
  1  - General error (scan/copy failure, configuration load failure)
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error`,
	SilenceUsage: true,
	RunE:         runSync,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.Flags().StringP("config", "i", "config.ini",
		"Path to the settings file")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
