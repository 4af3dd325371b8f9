package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RPP1011/asset-gen-tool/pkg/config"
)

var (
	// Global flags
	flagJSON  bool
	flagRaw   bool
	flagQuiet bool

	// Version metadata (filled by goreleaser)
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "agt",
	Short: "Asset generation dashboard",
	Long:  "A command-line dashboard for the asset generation API: browse organizations, projects, assets, generations and variants.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if _, err := config.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "error: failed to load config: %v\n", err)
			os.Exit(1)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Machine-readable JSON output")
	rootCmd.PersistentFlags().BoolVar(&flagRaw, "raw", false, "Minimal human output (no decoration)")
	rootCmd.PersistentFlags().BoolVar(&flagQuiet, "quiet", false, "Suppress non-essential output")
}

func Execute() error {
	return rootCmd.Execute()
}
