package main

import (
	"os"

	"github.com/spf13/cobra"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Browse user profiles",
}

var usersLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List users",
	Run: func(cmd *cobra.Command, args []string) {
		c := getClient()
		out := getOutputPrinter()

		users, err := c.ListUsers(cmd.Context())
		if err != nil {
			out.Error(err)
			os.Exit(1)
		}

		if flagJSON {
			out.Success(users)
			return
		}

		if len(users) == 0 {
			out.Println("No users found")
			return
		}

		rows := make([][]string, 0, len(users))
		for _, u := range users {
			rows = append(rows, []string{u.ID, u.Name, u.Email, timeStr(u.LastLogin)})
		}
		out.Table([]string{"ID", "NAME", "EMAIL", "LAST LOGIN"}, rows)
	},
}

var usersShowCmd = &cobra.Command{
	Use:   "show <user_id>",
	Short: "Show one user profile",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := getClient()
		out := getOutputPrinter()

		user, err := c.GetUser(cmd.Context(), args[0])
		if err != nil {
			out.Error(err)
			os.Exit(1)
		}

		if flagJSON {
			out.Success(user)
			return
		}

		out.Printf("%s (%s)\n", user.Name, user.ID)
		if user.Email != "" {
			out.Printf("Email: %s\n", user.Email)
		}
		for _, m := range user.OrgMemberships {
			out.Printf("Org %s: %s\n", m.OrgID, m.Role)
		}
		if user.LastLogin != nil {
			out.Printf("Last login: %s\n", timeStr(user.LastLogin))
		}
	},
}

func init() {
	rootCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(usersLsCmd)
	usersCmd.AddCommand(usersShowCmd)
}
