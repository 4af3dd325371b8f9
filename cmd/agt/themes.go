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
	themeOrg      string
	themeProject  string
	themeName     string
	themeID       string
	themeDesc     string
	themeKeywords []string
	themePalette  []string
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "Manage themes within a project",
}

func themeScope(out *output.Printer) (string, string) {
	org, err := workspace.ResolveOrg(themeOrg)
	if err != nil {
		out.Error(err)
		os.Exit(1)
	}
	project, err := workspace.ResolveProject(themeProject)
	if err != nil {
		out.Error(err)
		os.Exit(1)
	}
	return org, project
}

var themesLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List themes",
	Run: func(cmd *cobra.Command, args []string) {
		c := getClient()
		out := getOutputPrinter()
		org, project := themeScope(out)

		themes, err := c.ListThemes(cmd.Context(), org, project)
		if err != nil {
			out.Error(err)
			os.Exit(1)
		}

		if flagJSON {
			out.Success(themes)
			return
		}

		if len(themes) == 0 {
			out.Println("No themes found")
			return
		}

		rows := make([][]string, 0, len(themes))
		for _, th := range themes {
			rows = append(rows, []string{
				th.ID, th.Name, truncate(strings.Join(th.StyleKeywords, ","), 40), timeStr(th.CreatedAt),
			})
		}
		out.Table([]string{"ID", "NAME", "KEYWORDS", "CREATED"}, rows)
	},
}

var themesShowCmd = &cobra.Command{
	Use:   "show <theme_id>",
	Short: "Show one theme",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := getClient()
		out := getOutputPrinter()
		org, project := themeScope(out)

		theme, err := c.GetTheme(cmd.Context(), org, project, args[0])
		if err != nil {
			out.Error(err)
			os.Exit(1)
		}

		if flagJSON {
			out.Success(theme)
			return
		}

		out.Printf("%s (%s)\n", theme.Name, theme.ID)
		if theme.Description != "" {
			out.Println(theme.Description)
		}
		if len(theme.StyleKeywords) > 0 {
			out.Printf("Keywords: %s\n", strings.Join(theme.StyleKeywords, ", "))
		}
		if len(theme.ColorPalette) > 0 {
			out.Printf("Palette: %s\n", strings.Join(theme.ColorPalette, " "))
		}
		if theme.ExampleImage != "" {
			out.Printf("Example: %s\n", theme.ExampleImage)
		}
	},
}

var themesCreateCmd = &cobra.Command{
	Use:   "create --name <name>",
	Short: "Create a theme",
	Run: func(cmd *cobra.Command, args []string) {
		c := getClient()
		out := getOutputPrinter()
		org, project := themeScope(out)

		if themeName == "" {
			out.Error(errMissingFlag("name"))
			os.Exit(1)
		}

		theme, err := c.CreateTheme(cmd.Context(), org, project, &client.CreateThemeRequest{
			ID:            themeID,
			Name:          themeName,
			Description:   themeDesc,
			StyleKeywords: themeKeywords,
			ColorPalette:  themePalette,
		})
		if err != nil {
			out.Error(err)
			os.Exit(1)
		}

		if flagJSON {
			out.Success(theme)
		} else if !flagQuiet {
			out.Printf("Created theme %s (%s)\n", theme.Name, theme.ID)
		}
	},
}

var themesSetCmd = &cobra.Command{
	Use:   "set <theme_id>",
	Short: "Update a theme",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := getClient()
		out := getOutputPrinter()
		org, project := themeScope(out)

		req := &client.UpdateThemeRequest{}
		if cmd.Flags().Changed("name") {
			req.Name = &themeName
		}
		if cmd.Flags().Changed("desc") {
			req.Description = &themeDesc
		}
		if cmd.Flags().Changed("keywords") {
			req.StyleKeywords = themeKeywords
		}
		if cmd.Flags().Changed("palette") {
			req.ColorPalette = themePalette
		}

		theme, err := c.UpdateTheme(cmd.Context(), org, project, args[0], req)
		if err != nil {
			out.Error(err)
			os.Exit(1)
		}

		if flagJSON {
			out.Success(theme)
		} else if !flagQuiet {
			out.Printf("Updated theme %s\n", theme.ID)
		}
	},
}

var themesRmCmd = &cobra.Command{
	Use:   "rm <theme_id>",
	Short: "Delete a theme",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := getClient()
		out := getOutputPrinter()
		org, project := themeScope(out)

		if err := c.DeleteTheme(cmd.Context(), org, project, args[0]); err != nil {
			out.Error(err)
			os.Exit(1)
		}

		if !flagQuiet {
			out.Printf("Deleted theme %s\n", args[0])
		}
	},
}

func init() {
	rootCmd.AddCommand(themesCmd)
	themesCmd.AddCommand(themesLsCmd)
	themesCmd.AddCommand(themesShowCmd)
	themesCmd.AddCommand(themesCreateCmd)
	themesCmd.AddCommand(themesSetCmd)
	themesCmd.AddCommand(themesRmCmd)

	themesCmd.PersistentFlags().StringVar(&themeOrg, "org", "", "Organization id (defaults to workspace)")
	themesCmd.PersistentFlags().StringVar(&themeProject, "project", "", "Project id (defaults to workspace)")

	themesCreateCmd.Flags().StringVar(&themeName, "name", "", "Theme name")
	themesCreateCmd.Flags().StringVar(&themeID, "id", "", "Pin the document id")
	themesCreateCmd.Flags().StringVar(&themeDesc, "desc", "", "Theme description")
	themesCreateCmd.Flags().StringSliceVar(&themeKeywords, "keywords", nil, "Style keywords")
	themesCreateCmd.Flags().StringSliceVar(&themePalette, "palette", nil, "Color palette hex codes")

	themesSetCmd.Flags().StringVar(&themeName, "name", "", "Theme name")
	themesSetCmd.Flags().StringVar(&themeDesc, "desc", "", "Theme description")
	themesSetCmd.Flags().StringSliceVar(&themeKeywords, "keywords", nil, "Style keywords")
	themesSetCmd.Flags().StringSliceVar(&themePalette, "palette", nil, "Color palette hex codes")
}
