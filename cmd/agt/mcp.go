package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RPP1011/asset-gen-tool/pkg/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server",
	Long:  "Start an MCP (Model Context Protocol) server on stdio, exposing the asset generation API as agent tools.",
	Run: func(cmd *cobra.Command, args []string) {
		srv := mcp.NewServer()
		if err := srv.ServeContext(cmd.Context()); err != nil {
			fmt.Fprintf(os.Stderr, "error: mcp server: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
