package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/RPP1011/asset-gen-tool/pkg/client"
	"github.com/RPP1011/asset-gen-tool/pkg/workspace"
)

var (
	orgName  string
	orgID    string
	orgOwner string
	orgPlan  string
)

var orgsCmd = &cobra.Command{
	Use:   "orgs",
	Short: "Manage organizations",
}

var orgsLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List organizations",
	Run: func(cmd *cobra.Command, args []string) {
		c := getClient()
		out := getOutputPrinter()

		orgs, err := c.ListOrganizations(cmd.Context())
		if err != nil {
			out.Error(err)
			os.Exit(1)
		}

		if flagJSON {
			out.Success(orgs)
			return
		}

		if len(orgs) == 0 {
			out.Println("No organizations found")
			return
		}

		rows := make([][]string, 0, len(orgs))
		for _, org := range orgs {
			rows = append(rows, []string{org.ID, org.Name, org.PlanTier, timeStr(org.CreatedAt)})
		}
		out.Table([]string{"ID", "NAME", "PLAN", "CREATED"}, rows)
	},
}

var orgsShowCmd = &cobra.Command{
	Use:   "show <org_id|this>",
	Short: "Show one organization",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := getClient()
		out := getOutputPrinter()

		id, err := workspace.ResolveOrg(args[0])
		if err != nil {
			out.Error(err)
			os.Exit(1)
		}

		org, err := c.GetOrganization(cmd.Context(), id)
		if err != nil {
			out.Error(err)
			os.Exit(1)
		}

		workspace.SetOrg(org.ID)

		if flagJSON {
			out.Success(org)
			return
		}

		out.Printf("%s (%s)\n", org.Name, org.ID)
		if org.PlanTier != "" {
			out.Printf("Plan: %s\n", org.PlanTier)
		}
		if org.OwnerUserID != "" {
			out.Printf("Owner: %s\n", org.OwnerUserID)
		}
		if org.CreatedAt != nil {
			out.Printf("Created: %s\n", timeStr(org.CreatedAt))
		}
	},
}

var orgsCreateCmd = &cobra.Command{
	Use:   "create --name <name>",
	Short: "Create an organization",
	Run: func(cmd *cobra.Command, args []string) {
		c := getClient()
		out := getOutputPrinter()

		if orgName == "" {
			out.Error(errMissingFlag("name"))
			os.Exit(1)
		}

		org, err := c.CreateOrganization(cmd.Context(), &client.CreateOrganizationRequest{
			ID:          orgID,
			Name:        orgName,
			OwnerUserID: orgOwner,
			PlanTier:    orgPlan,
		})
		if err != nil {
			out.Error(err)
			os.Exit(1)
		}

		workspace.SetOrg(org.ID)

		if flagJSON {
			out.Success(org)
		} else if !flagQuiet {
			out.Printf("Created org %s (%s)\n", org.Name, org.ID)
		}
	},
}

var orgsSetCmd = &cobra.Command{
	Use:   "set <org_id|this>",
	Short: "Update an organization",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := getClient()
		out := getOutputPrinter()

		id, err := workspace.ResolveOrg(args[0])
		if err != nil {
			out.Error(err)
			os.Exit(1)
		}

		req := &client.UpdateOrganizationRequest{}
		if cmd.Flags().Changed("name") {
			req.Name = &orgName
		}
		if cmd.Flags().Changed("plan") {
			req.PlanTier = &orgPlan
		}
		if cmd.Flags().Changed("owner") {
			req.OwnerUserID = &orgOwner
		}

		org, err := c.UpdateOrganization(cmd.Context(), id, req)
		if err != nil {
			out.Error(err)
			os.Exit(1)
		}

		if flagJSON {
			out.Success(org)
		} else if !flagQuiet {
			out.Printf("Updated org %s\n", org.ID)
		}
	},
}

var orgsRmCmd = &cobra.Command{
	Use:   "rm <org_id>",
	Short: "Delete an organization",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := getClient()
		out := getOutputPrinter()

		if err := c.DeleteOrganization(cmd.Context(), args[0]); err != nil {
			out.Error(err)
			os.Exit(1)
		}

		if !flagQuiet {
			out.Printf("Deleted org %s\n", args[0])
		}
	},
}

func init() {
	rootCmd.AddCommand(orgsCmd)
	orgsCmd.AddCommand(orgsLsCmd)
	orgsCmd.AddCommand(orgsShowCmd)
	orgsCmd.AddCommand(orgsCreateCmd)
	orgsCmd.AddCommand(orgsSetCmd)
	orgsCmd.AddCommand(orgsRmCmd)

	orgsCreateCmd.Flags().StringVar(&orgName, "name", "", "Organization name")
	orgsCreateCmd.Flags().StringVar(&orgID, "id", "", "Pin the document id")
	orgsCreateCmd.Flags().StringVar(&orgOwner, "owner", "", "Owner user id")
	orgsCreateCmd.Flags().StringVar(&orgPlan, "plan", "", "Plan tier")

	orgsSetCmd.Flags().StringVar(&orgName, "name", "", "Organization name")
	orgsSetCmd.Flags().StringVar(&orgOwner, "owner", "", "Owner user id")
	orgsSetCmd.Flags().StringVar(&orgPlan, "plan", "", "Plan tier")
}
