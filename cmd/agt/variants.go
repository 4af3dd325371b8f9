package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/RPP1011/asset-gen-tool/pkg/client"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "Browse candidate outputs of a generation run",
}

var variantsLsCmd = &cobra.Command{
	Use:   "ls <generation_id>",
	Short: "List variants of a generation run",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := getClient()
		out := getOutputPrinter()
		org, project, asset := genScope(out)

		variants, err := c.ListVariants(cmd.Context(), org, project, asset, args[0])
		if err != nil {
			out.Error(err)
			os.Exit(1)
		}

		if flagJSON {
			out.Success(variants)
			return
		}

		if len(variants) == 0 {
			out.Println("No variants found")
			return
		}

		rows := make([][]string, 0, len(variants))
		for _, v := range variants {
			selected := ""
			if v.IsSelected {
				selected = "*"
			}
			rows = append(rows, []string{v.ID, selected, truncate(v.ImageURL, 60), timeStr(v.CreatedAt)})
		}
		out.Table([]string{"ID", "SEL", "IMAGE", "CREATED"}, rows)
	},
}

var variantsShowCmd = &cobra.Command{
	Use:   "show <generation_id> <variant_id>",
	Short: "Show one variant",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		c := getClient()
		out := getOutputPrinter()
		org, project, asset := genScope(out)

		variant, err := c.GetVariant(cmd.Context(), org, project, asset, args[0], args[1])
		if err != nil {
			out.Error(err)
			os.Exit(1)
		}

		if flagJSON {
			out.Success(variant)
			return
		}

		out.Printf("Variant %s\n", variant.ID)
		out.Printf("Image: %s\n", variant.ImageURL)
		if variant.IsSelected {
			out.Println("Selected as final output")
		}
		if variant.Feedback != "" {
			out.Printf("Feedback: %s\n", variant.Feedback)
		}
		if variant.CreatedAt != nil {
			out.Printf("Created: %s\n", timeStr(variant.CreatedAt))
		}
	},
}

var variantsPickCmd = &cobra.Command{
	Use:   "pick <generation_id> <variant_id>",
	Short: "Select a variant as the asset's final output",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		c := getClient()
		out := getOutputPrinter()
		org, project, asset := genScope(out)
		generationID, variantID := args[0], args[1]

		selected := true
		variant, err := c.UpdateVariant(cmd.Context(), org, project, asset, generationID, variantID, &client.UpdateVariantRequest{
			IsSelected: &selected,
		})
		if err != nil {
			out.Error(err)
			os.Exit(1)
		}

		updated, err := c.UpdateAsset(cmd.Context(), org, project, asset, &client.UpdateAssetRequest{
			FinalVariantID:  &variant.ID,
			CurrentImageURL: &variant.ImageURL,
		})
		if err != nil {
			out.Error(err)
			os.Exit(1)
		}

		if flagJSON {
			out.Success(updated)
		} else if !flagQuiet {
			out.Printf("Picked variant %s for asset %s\n", variant.ID, updated.ID)
		}
	},
}

func init() {
	rootCmd.AddCommand(variantsCmd)
	variantsCmd.AddCommand(variantsLsCmd)
	variantsCmd.AddCommand(variantsShowCmd)
	variantsCmd.AddCommand(variantsPickCmd)

	variantsCmd.PersistentFlags().StringVar(&genOrg, "org", "", "Organization id (defaults to workspace)")
	variantsCmd.PersistentFlags().StringVar(&genProject, "project", "", "Project id (defaults to workspace)")
	variantsCmd.PersistentFlags().StringVar(&genAsset, "asset", "", "Asset id (defaults to workspace)")
}
