// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands implements the bookmarks-mcp command line.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string

	configPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bookmarks-mcp",
	Short: "Bookmarks MCP server - task orchestration over a bookmark store",
	Long: `bookmarks-mcp serves the MCP task orchestration protocol over HTTP.

Clients submit bookmark actions as tasks. Each task is dispatched against the
configured bookmark store and resolved with typed artifacts. A server-sent
event stream announces the server capabilities on connect.`,
	Version: version,
	RunE: func(cmd *cobra.Command, args []string) error {
		// If no subcommand is specified, show help
		return cmd.Help()
	},
	FParseErrWhitelist: cobra.FParseErrWhitelist{},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file (default: ./config.yaml or /etc/bookmarks-mcp/config.yaml)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tokenCmd)
}
