package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/RPP1011/asset-gen-tool/pkg/workspace"
)

var useCmd = &cobra.Command{
	Use:   "use",
	Short: "Set the working org/project/asset",
	Long:  "Remember an organization, project or asset so later commands can omit the id chain.",
}

var useOrgCmd = &cobra.Command{
	Use:   "org <org_id>",
	Short: "Set the working organization",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		out := getOutputPrinter()
		if err := workspace.SetOrg(args[0]); err != nil {
			out.Error(err)
			os.Exit(1)
		}
		if !flagQuiet {
			out.Printf("Using org %s\n", args[0])
		}
	},
}

var useProjectCmd = &cobra.Command{
	Use:   "project <project_id>",
	Short: "Set the working project",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		out := getOutputPrinter()
		if err := workspace.SetProject(args[0]); err != nil {
			out.Error(err)
			os.Exit(1)
		}
		if !flagQuiet {
			out.Printf("Using project %s\n", args[0])
		}
	},
}

var useAssetCmd = &cobra.Command{
	Use:   "asset <asset_id>",
	Short: "Set the working asset",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		out := getOutputPrinter()
		if err := workspace.SetAsset(args[0]); err != nil {
			out.Error(err)
			os.Exit(1)
		}
		if !flagQuiet {
			out.Printf("Using asset %s\n", args[0])
		}
	},
}

var useShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current workspace",
	Run: func(cmd *cobra.Command, args []string) {
		out := getOutputPrinter()
		ws, err := workspace.Load()
		if err != nil {
			out.Println("No workspace set")
			return
		}
		if flagJSON {
			out.Success(ws)
			return
		}
		if ws.OrgID != "" {
			out.Printf("Org: %s\n", ws.OrgID)
		}
		if ws.ProjectID != "" {
			out.Printf("Project: %s\n", ws.ProjectID)
		}
		if ws.AssetID != "" {
			out.Printf("Asset: %s\n", ws.AssetID)
		}
	},
}

var useClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget the current workspace",
	Run: func(cmd *cobra.Command, args []string) {
		out := getOutputPrinter()
		if err := workspace.Clear(); err != nil {
			out.Error(err)
			os.Exit(1)
		}
		if !flagQuiet {
			out.Println("Workspace cleared")
		}
	},
}

func init() {
	rootCmd.AddCommand(useCmd)
	useCmd.AddCommand(useOrgCmd)
	useCmd.AddCommand(useProjectCmd)
	useCmd.AddCommand(useAssetCmd)
	useCmd.AddCommand(useShowCmd)
	useCmd.AddCommand(useClearCmd)
}
