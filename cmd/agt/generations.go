package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/RPP1011/asset-gen-tool/pkg/client"
	"github.com/RPP1011/asset-gen-tool/pkg/output"
	"github.com/RPP1011/asset-gen-tool/pkg/workspace"
)

var (
	genOrg     string
	genProject string
	genAsset   string
	genPrompt  string
	genCount   int
	genTheme   string
	genNotes   string
	genOrderBy string
	genAsc     bool
)

var gensCmd = &cobra.Command{
	Use:   "gens",
	Short: "Browse generation runs for an asset",
}

// genScope resolves the org/project/asset chain from flags or workspace.
func genScope(out *output.Printer) (string, string, string) {
	org, err := workspace.ResolveOrg(genOrg)
	if err != nil {
		out.Error(err)
		os.Exit(1)
	}
	project, err := workspace.ResolveProject(genProject)
	if err != nil {
		out.Error(err)
		os.Exit(1)
	}
	asset, err := workspace.ResolveAsset(genAsset)
	if err != nil {
		out.Error(err)
		os.Exit(1)
	}
	return org, project, asset
}

var gensLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List generation runs",
	Run: func(cmd *cobra.Command, args []string) {
		c := getClient()
		out := getOutputPrinter()
		org, project, asset := genScope(out)

		var opts *client.ListGenerationsOptions
		if genOrderBy != "" || genAsc {
			opts = &client.ListGenerationsOptions{OrderBy: genOrderBy}
			if genAsc {
				desc := false
				opts.Descending = &desc
			}
		}

		gens, err := c.ListGenerations(cmd.Context(), org, project, asset, opts)
		if err != nil {
			out.Error(err)
			os.Exit(1)
		}

		if flagJSON {
			out.Success(gens)
			return
		}

		if len(gens) == 0 {
			out.Println("No generations found")
			return
		}

		rows := make([][]string, 0, len(gens))
		for _, g := range gens {
			rows = append(rows, []string{
				g.ID, string(g.Status), truncate(g.PromptText, 50), timeStr(g.CreatedAt),
			})
		}
		out.Table([]string{"ID", "STATUS", "PROMPT", "CREATED"}, rows)
	},
}

var gensShowCmd = &cobra.Command{
	Use:   "show <generation_id>",
	Short: "Show one generation run",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := getClient()
		out := getOutputPrinter()
		org, project, asset := genScope(out)

		gen, err := c.GetGeneration(cmd.Context(), org, project, asset, args[0])
		if err != nil {
			out.Error(err)
			os.Exit(1)
		}

		if flagJSON {
			out.Success(gen)
			return
		}

		out.Printf("Generation %s [%s]\n", gen.ID, gen.Status)
		out.Printf("Prompt: %s\n", gen.PromptText)
		out.Printf("Variants: %d\n", gen.VariantCount)
		if gen.TriggeredBy != "" {
			out.Printf("Triggered by: %s\n", gen.TriggeredBy)
		}
		if gen.Notes != "" {
			out.Printf("Notes: %s\n", gen.Notes)
		}
		if gen.CreatedAt != nil {
			out.Printf("Created: %s\n", timeStr(gen.CreatedAt))
		}
	},
}

var gensCreateCmd = &cobra.Command{
	Use:   "create --prompt <text>",
	Short: "Record a new generation run",
	Run: func(cmd *cobra.Command, args []string) {
		c := getClient()
		out := getOutputPrinter()
		org, project, asset := genScope(out)

		if genPrompt == "" {
			out.Error(errMissingFlag("prompt"))
			os.Exit(1)
		}

		gen, err := c.CreateGeneration(cmd.Context(), org, project, asset, &client.CreateGenerationRequest{
			PromptText:   genPrompt,
			VariantCount: genCount,
			ThemeID:      genTheme,
			Notes:        genNotes,
		})
		if err != nil {
			out.Error(err)
			os.Exit(1)
		}

		if flagJSON {
			out.Success(gen)
		} else if !flagQuiet {
			out.Printf("Created generation %s\n", gen.ID)
		}
	},
}

func init() {
	rootCmd.AddCommand(gensCmd)
	gensCmd.AddCommand(gensLsCmd)
	gensCmd.AddCommand(gensShowCmd)
	gensCmd.AddCommand(gensCreateCmd)

	gensCmd.PersistentFlags().StringVar(&genOrg, "org", "", "Organization id (defaults to workspace)")
	gensCmd.PersistentFlags().StringVar(&genProject, "project", "", "Project id (defaults to workspace)")
	gensCmd.PersistentFlags().StringVar(&genAsset, "asset", "", "Asset id (defaults to workspace)")

	gensLsCmd.Flags().StringVar(&genOrderBy, "order-by", "", "Order field (default created_at)")
	gensLsCmd.Flags().BoolVar(&genAsc, "asc", false, "Oldest first")

	gensCreateCmd.Flags().StringVar(&genPrompt, "prompt", "", "Prompt text for the run")
	gensCreateCmd.Flags().IntVar(&genCount, "count", 0, "Expected variant count")
	gensCreateCmd.Flags().StringVar(&genTheme, "theme", "", "Theme id")
	gensCreateCmd.Flags().StringVar(&genNotes, "notes", "", "Run notes")
}
