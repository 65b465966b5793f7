package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/PolarWolf314/libset/cmd"
)

var rootCmd = &cobra.Command{
	Use:   "libset",
	Short: "libset - Per-application settings storage in TOML, JSON, RON or plain text.",
	Long: `libset stores application settings in the platform's standard
configuration and data directories.

Features:
  - Keep versioned, optionally scoped settings files, one per key
  - Lay out an application's config directory and describe it in a manifest
  - Track a project directory with a metadata record and find files in it

Usage:
  libset <command> [flags]

Available Commands:
  store      Read and write keyed settings files
  tree       Lay out an application's config directory
  project    Manage a project directory and its metadata record

Run 'libset help <command>' for more details on a specific command.
`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "Welcome to libset! Run 'libset --help' to see available commands.")
	},
}

func init() {
	rootCmd.AddCommand(cmd.StoreCmd)
	rootCmd.AddCommand(cmd.TreeCmd)
	rootCmd.AddCommand(cmd.ProjectCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
