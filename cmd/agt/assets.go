package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RPP1011/asset-gen-tool/pkg/client"
	"github.com/RPP1011/asset-gen-tool/pkg/output"
	"github.com/RPP1011/asset-gen-tool/pkg/workspace"
)

var (
	assetOrg     string
	assetProject string
	assetName    string
	assetID      string
	assetDesc    string
	assetPrompt  string
	assetSize    string
	assetTheme   string
	assetTags    []string
	assetTag     string
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Manage assets within a project",
}

// assetScope resolves the org/project pair from flags or workspace.
func assetScope(out *output.Printer) (string, string) {
	org, err := workspace.ResolveOrg(assetOrg)
	if err != nil {
		out.Error(err)
		os.Exit(1)
	}
	project, err := workspace.ResolveProject(assetProject)
	if err != nil {
		out.Error(err)
		os.Exit(1)
	}
	return org, project
}

var assetsLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List assets",
	Run: func(cmd *cobra.Command, args []string) {
		c := getClient()
		out := getOutputPrinter()
		org, project := assetScope(out)

		var opts *client.ListAssetsOptions
		if assetTag != "" || assetTheme != "" {
			opts = &client.ListAssetsOptions{Tag: assetTag, ThemeID: assetTheme}
		}

		assets, err := c.ListAssets(cmd.Context(), org, project, opts)
		if err != nil {
			out.Error(err)
			os.Exit(1)
		}

		if flagJSON {
			out.Success(assets)
			return
		}

		if len(assets) == 0 {
			out.Println("No assets found")
			return
		}

		rows := make([][]string, 0, len(assets))
		for _, a := range assets {
			rows = append(rows, []string{
				a.ID, a.Name, a.ThemeName, strings.Join(a.Tags, ","), timeStr(a.LatestGenerationAt),
			})
		}
		out.Table([]string{"ID", "NAME", "THEME", "TAGS", "LAST GEN"}, rows)
	},
}

var assetsShowCmd = &cobra.Command{
	Use:   "show <asset_id|this>",
	Short: "Show one asset",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := getClient()
		out := getOutputPrinter()
		org, project := assetScope(out)

		id, err := workspace.ResolveAsset(args[0])
		if err != nil {
			out.Error(err)
			os.Exit(1)
		}

		asset, err := c.GetAsset(cmd.Context(), org, project, id)
		if err != nil {
			out.Error(err)
			os.Exit(1)
		}

		workspace.SetAsset(asset.ID)

		if flagJSON {
			out.Success(asset)
			return
		}

		out.Printf("%s (%s)\n", asset.Name, asset.ID)
		if asset.Description != "" {
			out.Println(asset.Description)
		}
		if asset.Prompt != "" {
			out.Printf("Prompt: %s\n", asset.Prompt)
		}
		if asset.Size != "" {
			out.Printf("Size: %s\n", asset.Size)
		}
		if asset.ThemeName != "" {
			out.Printf("Theme: %s (%s)\n", asset.ThemeName, asset.ThemeID)
		}
		if len(asset.Tags) > 0 {
			out.Printf("Tags: %s\n", strings.Join(asset.Tags, ", "))
		}
		if asset.CurrentImageURL != "" {
			out.Printf("Image: %s\n", asset.CurrentImageURL)
		}
		if asset.LatestGenerationID != "" {
			out.Printf("Latest generation: %s (%s)\n", asset.LatestGenerationID, timeStr(asset.LatestGenerationAt))
		}
	},
}

var assetsCreateCmd = &cobra.Command{
	Use:   "create --name <name>",
	Short: "Create an asset",
	Run: func(cmd *cobra.Command, args []string) {
		c := getClient()
		out := getOutputPrinter()
		org, project := assetScope(out)

		if assetName == "" {
			out.Error(errMissingFlag("name"))
			os.Exit(1)
		}

		asset, err := c.CreateAsset(cmd.Context(), org, project, &client.CreateAssetRequest{
			ID:          assetID,
			Name:        assetName,
			Description: assetDesc,
			Prompt:      assetPrompt,
			Size:        assetSize,
			ThemeID:     assetTheme,
			Tags:        assetTags,
		})
		if err != nil {
			out.Error(err)
			os.Exit(1)
		}

		workspace.SetAsset(asset.ID)

		if flagJSON {
			out.Success(asset)
		} else if !flagQuiet {
			out.Printf("Created asset %s (%s)\n", asset.Name, asset.ID)
		}
	},
}

var assetsSetCmd = &cobra.Command{
	Use:   "set <asset_id|this>",
	Short: "Update an asset",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := getClient()
		out := getOutputPrinter()
		org, project := assetScope(out)

		id, err := workspace.ResolveAsset(args[0])
		if err != nil {
			out.Error(err)
			os.Exit(1)
		}

		req := &client.UpdateAssetRequest{}
		if cmd.Flags().Changed("name") {
			req.Name = &assetName
		}
		if cmd.Flags().Changed("desc") {
			req.Description = &assetDesc
		}
		if cmd.Flags().Changed("prompt") {
			req.Prompt = &assetPrompt
		}
		if cmd.Flags().Changed("size") {
			req.Size = &assetSize
		}
		if cmd.Flags().Changed("theme") {
			req.ThemeID = &assetTheme
		}
		if cmd.Flags().Changed("tags") {
			req.Tags = assetTags
		}

		asset, err := c.UpdateAsset(cmd.Context(), org, project, id, req)
		if err != nil {
			out.Error(err)
			os.Exit(1)
		}

		if flagJSON {
			out.Success(asset)
		} else if !flagQuiet {
			out.Printf("Updated asset %s\n", asset.ID)
		}
	},
}

var assetsRmCmd = &cobra.Command{
	Use:   "rm <asset_id>",
	Short: "Delete an asset",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := getClient()
		out := getOutputPrinter()
		org, project := assetScope(out)

		if err := c.DeleteAsset(cmd.Context(), org, project, args[0]); err != nil {
			out.Error(err)
			os.Exit(1)
		}

		if !flagQuiet {
			out.Printf("Deleted asset %s\n", args[0])
		}
	},
}

func init() {
	rootCmd.AddCommand(assetsCmd)
	assetsCmd.AddCommand(assetsLsCmd)
	assetsCmd.AddCommand(assetsShowCmd)
	assetsCmd.AddCommand(assetsCreateCmd)
	assetsCmd.AddCommand(assetsSetCmd)
	assetsCmd.AddCommand(assetsRmCmd)

	assetsCmd.PersistentFlags().StringVar(&assetOrg, "org", "", "Organization id (defaults to workspace)")
	assetsCmd.PersistentFlags().StringVar(&assetProject, "project", "", "Project id (defaults to workspace)")

	assetsLsCmd.Flags().StringVar(&assetTag, "tag", "", "Filter by tag")
	assetsLsCmd.Flags().StringVar(&assetTheme, "theme", "", "Filter by theme id")

	assetsCreateCmd.Flags().StringVar(&assetName, "name", "", "Asset name")
	assetsCreateCmd.Flags().StringVar(&assetID, "id", "", "Pin the document id")
	assetsCreateCmd.Flags().StringVar(&assetDesc, "desc", "", "Asset description")
	assetsCreateCmd.Flags().StringVar(&assetPrompt, "prompt", "", "Base prompt for the asset")
	assetsCreateCmd.Flags().StringVar(&assetSize, "size", "", "Size preset, e.g. 512x512")
	assetsCreateCmd.Flags().StringVar(&assetTheme, "theme", "", "Theme id")
	assetsCreateCmd.Flags().StringSliceVar(&assetTags, "tags", nil, "Tags")

	assetsSetCmd.Flags().StringVar(&assetName, "name", "", "Asset name")
	assetsSetCmd.Flags().StringVar(&assetDesc, "desc", "", "Asset description")
	assetsSetCmd.Flags().StringVar(&assetPrompt, "prompt", "", "Base prompt for the asset")
	assetsSetCmd.Flags().StringVar(&assetSize, "size", "", "Size preset")
	assetsSetCmd.Flags().StringVar(&assetTheme, "theme", "", "Theme id")
	assetsSetCmd.Flags().StringSliceVar(&assetTags, "tags", nil, "Tags")
}
