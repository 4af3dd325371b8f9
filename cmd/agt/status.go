package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/RPP1011/asset-gen-tool/pkg/config"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check API connectivity",
	Run: func(cmd *cobra.Command, args []string) {
		c := getClient()
		out := getOutputPrinter()

		health, err := c.Health(cmd.Context())
		if err != nil {
			out.Error(err)
			os.Exit(1)
		}

		if flagJSON {
			out.Success(health)
			return
		}

		out.Printf("API %s: %s\n", config.GetAPIUrl(), health.Status)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := getOutputPrinter()
		if flagJSON {
			out.Success(map[string]string{
				"version": version,
				"commit":  commit,
				"date":    date,
			})
			return
		}
		out.Printf("agt %s (%s, built %s)\n", version, commit, date)
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(versionCmd)
}
