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
	imageOrg     string
	imageProject string
	imageURL     string
	imageDesc    string
	imageTheme   string
	imageAsset   string
	imageTags    []string
	imageTag     string
)

var imagesCmd = &cobra.Command{
	Use:   "images",
	Short: "Manage concept images within a project",
}

func imageScope(out *output.Printer) (string, string) {
	org, err := workspace.ResolveOrg(imageOrg)
	if err != nil {
		out.Error(err)
		os.Exit(1)
	}
	project, err := workspace.ResolveProject(imageProject)
	if err != nil {
		out.Error(err)
		os.Exit(1)
	}
	return org, project
}

var imagesLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List concept images",
	Run: func(cmd *cobra.Command, args []string) {
		c := getClient()
		out := getOutputPrinter()
		org, project := imageScope(out)

		var opts *client.ListConceptImagesOptions
		if imageTag != "" {
			opts = &client.ListConceptImagesOptions{Tag: imageTag}
		}

		images, err := c.ListConceptImages(cmd.Context(), org, project, opts)
		if err != nil {
			out.Error(err)
			os.Exit(1)
		}

		if flagJSON {
			out.Success(images)
			return
		}

		if len(images) == 0 {
			out.Println("No concept images found")
			return
		}

		rows := make([][]string, 0, len(images))
		for _, img := range images {
			rows = append(rows, []string{
				img.ID, truncate(img.ImageURL, 50), strings.Join(img.Tags, ","), timeStr(img.CreatedAt),
			})
		}
		out.Table([]string{"ID", "IMAGE", "TAGS", "CREATED"}, rows)
	},
}

var imagesShowCmd = &cobra.Command{
	Use:   "show <image_id>",
	Short: "Show one concept image",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := getClient()
		out := getOutputPrinter()
		org, project := imageScope(out)

		img, err := c.GetConceptImage(cmd.Context(), org, project, args[0])
		if err != nil {
			out.Error(err)
			os.Exit(1)
		}

		if flagJSON {
			out.Success(img)
			return
		}

		out.Printf("Concept image %s\n", img.ID)
		out.Printf("Image: %s\n", img.ImageURL)
		if img.Description != "" {
			out.Println(img.Description)
		}
		if len(img.Tags) > 0 {
			out.Printf("Tags: %s\n", strings.Join(img.Tags, ", "))
		}
		if img.Attribution != "" {
			out.Printf("Attribution: %s\n", img.Attribution)
		}
	},
}

var imagesAddCmd = &cobra.Command{
	Use:   "add --url <image_url>",
	Short: "Register a concept image",
	Run: func(cmd *cobra.Command, args []string) {
		c := getClient()
		out := getOutputPrinter()
		org, project := imageScope(out)

		if imageURL == "" {
			out.Error(errMissingFlag("url"))
			os.Exit(1)
		}

		img, err := c.CreateConceptImage(cmd.Context(), org, project, &client.CreateConceptImageRequest{
			ImageURL:    imageURL,
			Description: imageDesc,
			Tags:        imageTags,
			ThemeID:     imageTheme,
			AssetID:     imageAsset,
		})
		if err != nil {
			out.Error(err)
			os.Exit(1)
		}

		if flagJSON {
			out.Success(img)
		} else if !flagQuiet {
			out.Printf("Added concept image %s\n", img.ID)
		}
	},
}

var imagesRmCmd = &cobra.Command{
	Use:   "rm <image_id>",
	Short: "Delete a concept image",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := getClient()
		out := getOutputPrinter()
		org, project := imageScope(out)

		if err := c.DeleteConceptImage(cmd.Context(), org, project, args[0]); err != nil {
			out.Error(err)
			os.Exit(1)
		}

		if !flagQuiet {
			out.Printf("Deleted concept image %s\n", args[0])
		}
	},
}

func init() {
	rootCmd.AddCommand(imagesCmd)
	imagesCmd.AddCommand(imagesLsCmd)
	imagesCmd.AddCommand(imagesShowCmd)
	imagesCmd.AddCommand(imagesAddCmd)
	imagesCmd.AddCommand(imagesRmCmd)

	imagesCmd.PersistentFlags().StringVar(&imageOrg, "org", "", "Organization id (defaults to workspace)")
	imagesCmd.PersistentFlags().StringVar(&imageProject, "project", "", "Project id (defaults to workspace)")

	imagesLsCmd.Flags().StringVar(&imageTag, "tag", "", "Filter by tag")

	imagesAddCmd.Flags().StringVar(&imageURL, "url", "", "Image URL or storage path")
	imagesAddCmd.Flags().StringVar(&imageDesc, "desc", "", "Description")
	imagesAddCmd.Flags().StringSliceVar(&imageTags, "tags", nil, "Tags")
	imagesAddCmd.Flags().StringVar(&imageTheme, "theme", "", "Related theme id")
	imagesAddCmd.Flags().StringVar(&imageAsset, "asset", "", "Related asset id")
}
