package main

import "github.com/spf13/cobra"

// canteen users
var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List every account (admin)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := boot(); err != nil {
			return err
		}
		app.views.Users()
		return nil
	},
}

// canteen users:show <id>
var usersShowCmd = &cobra.Command{
	Use:   "users:show <id>",
	Short: "Show one account (admin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := boot(); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		app.views.User(id)
		return nil
	},
}

// canteen users:role <id> <role>
var usersRoleCmd = &cobra.Command{
	Use:   "users:role <id> <role>",
	Short: "Reassign an account's role (admin)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := boot(); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		app.views.SetUserRole(id, args[1])
		return nil
	},
}

// canteen users:delete <id>
var usersDeleteCmd = &cobra.Command{
	Use:   "users:delete <id>",
	Short: "Delete an account (admin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := boot(); err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		app.views.DeleteUser(id)
		return nil
	},
}
