package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/RPP1011/asset-gen-tool/pkg/client"
	"github.com/RPP1011/asset-gen-tool/pkg/workspace"
)

var (
	projectOrg  string
	projectName string
	projectID   string
	projectDesc string
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Manage projects within an organization",
}

var projectsLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List projects",
	Run: func(cmd *cobra.Command, args []string) {
		c := getClient()
		out := getOutputPrinter()

		org, err := workspace.ResolveOrg(projectOrg)
		if err != nil {
			out.Error(err)
			os.Exit(1)
		}

		projects, err := c.ListProjects(cmd.Context(), org)
		if err != nil {
			out.Error(err)
			os.Exit(1)
		}

		if flagJSON {
			out.Success(projects)
			return
		}

		if len(projects) == 0 {
			out.Println("No projects found")
			return
		}

		rows := make([][]string, 0, len(projects))
		for _, p := range projects {
			rows = append(rows, []string{p.ID, p.Name, truncate(p.Description, 40), timeStr(p.CreatedAt)})
		}
		out.Table([]string{"ID", "NAME", "DESCRIPTION", "CREATED"}, rows)
	},
}

var projectsShowCmd = &cobra.Command{
	Use:   "show <project_id|this>",
	Short: "Show one project",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := getClient()
		out := getOutputPrinter()

		org, err := workspace.ResolveOrg(projectOrg)
		if err != nil {
			out.Error(err)
			os.Exit(1)
		}
		id, err := workspace.ResolveProject(args[0])
		if err != nil {
			out.Error(err)
			os.Exit(1)
		}

		project, err := c.GetProject(cmd.Context(), org, id)
		if err != nil {
			out.Error(err)
			os.Exit(1)
		}

		workspace.SetProject(project.ID)

		if flagJSON {
			out.Success(project)
			return
		}

		out.Printf("%s (%s)\n", project.Name, project.ID)
		if project.Description != "" {
			out.Println(project.Description)
		}
		out.Printf("Assets: %d | Themes: %d\n", project.AssetCount, project.ThemeCount)
		if project.CreatedAt != nil {
			out.Printf("Created: %s\n", timeStr(project.CreatedAt))
		}
	},
}

var projectsCreateCmd = &cobra.Command{
	Use:   "create --name <name>",
	Short: "Create a project",
	Run: func(cmd *cobra.Command, args []string) {
		c := getClient()
		out := getOutputPrinter()

		org, err := workspace.ResolveOrg(projectOrg)
		if err != nil {
			out.Error(err)
			os.Exit(1)
		}
		if projectName == "" {
			out.Error(errMissingFlag("name"))
			os.Exit(1)
		}

		project, err := c.CreateProject(cmd.Context(), org, &client.CreateProjectRequest{
			ID:          projectID,
			Name:        projectName,
			Description: projectDesc,
		})
		if err != nil {
			out.Error(err)
			os.Exit(1)
		}

		workspace.SetProject(project.ID)

		if flagJSON {
			out.Success(project)
		} else if !flagQuiet {
			out.Printf("Created project %s (%s)\n", project.Name, project.ID)
		}
	},
}

var projectsSetCmd = &cobra.Command{
	Use:   "set <project_id|this>",
	Short: "Update a project",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := getClient()
		out := getOutputPrinter()

		org, err := workspace.ResolveOrg(projectOrg)
		if err != nil {
			out.Error(err)
			os.Exit(1)
		}
		id, err := workspace.ResolveProject(args[0])
		if err != nil {
			out.Error(err)
			os.Exit(1)
		}

		req := &client.UpdateProjectRequest{}
		if cmd.Flags().Changed("name") {
			req.Name = &projectName
		}
		if cmd.Flags().Changed("desc") {
			req.Description = &projectDesc
		}

		project, err := c.UpdateProject(cmd.Context(), org, id, req)
		if err != nil {
			out.Error(err)
			os.Exit(1)
		}

		if flagJSON {
			out.Success(project)
		} else if !flagQuiet {
			out.Printf("Updated project %s\n", project.ID)
		}
	},
}

var projectsRmCmd = &cobra.Command{
	Use:   "rm <project_id>",
	Short: "Delete a project",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := getClient()
		out := getOutputPrinter()

		org, err := workspace.ResolveOrg(projectOrg)
		if err != nil {
			out.Error(err)
			os.Exit(1)
		}

		if err := c.DeleteProject(cmd.Context(), org, args[0]); err != nil {
			out.Error(err)
			os.Exit(1)
		}

		if !flagQuiet {
			out.Printf("Deleted project %s\n", args[0])
		}
	},
}

func init() {
	rootCmd.AddCommand(projectsCmd)
	projectsCmd.AddCommand(projectsLsCmd)
	projectsCmd.AddCommand(projectsShowCmd)
	projectsCmd.AddCommand(projectsCreateCmd)
	projectsCmd.AddCommand(projectsSetCmd)
	projectsCmd.AddCommand(projectsRmCmd)

	projectsCmd.PersistentFlags().StringVar(&projectOrg, "org", "", "Organization id (defaults to workspace)")

	projectsCreateCmd.Flags().StringVar(&projectName, "name", "", "Project name")
	projectsCreateCmd.Flags().StringVar(&projectID, "id", "", "Pin the document id")
	projectsCreateCmd.Flags().StringVar(&projectDesc, "desc", "", "Project description")

	projectsSetCmd.Flags().StringVar(&projectName, "name", "", "Project name")
	projectsSetCmd.Flags().StringVar(&projectDesc, "desc", "", "Project description")
}
