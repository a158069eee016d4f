package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smartbytes/canteen/app/models"
	"github.com/smartbytes/canteen/pkg/validate"
)

var loginPassword string

// canteen login <username>
var loginCmd = &cobra.Command{
	Use:   "login <username>",
	Short: "Log in and store the session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := boot(); err != nil {
			return err
		}

		password := loginPassword
		if password == "" {
			fmt.Print("Password: ")
			scanner := bufio.NewScanner(os.Stdin)
			if scanner.Scan() {
				password = strings.TrimSpace(scanner.Text())
			}
		}
		if password == "" {
			return fmt.Errorf("a password is required")
		}

		sess, err := app.sessions.Login(app.auth, args[0], password)
		if err != nil {
			return err
		}
		app.guard.OnLogin(sess.Role)

		fmt.Printf("Logged in as %s (%s).\n", sess.Username, sess.Role)
		return nil
	},
}

// canteen logout
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := boot(); err != nil {
			return err
		}
		app.sessions.Logout()
		app.guard.OnLogout()
		fmt.Println("Logged out.")
		return nil
	},
}

var registerInput models.RegisterRequest

// canteen register
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := boot(); err != nil {
			return err
		}

		if errs := validate.Struct(registerInput); len(errs) > 0 {
			fields := make([]string, 0, len(errs))
			for field := range errs {
				fields = append(fields, field)
			}
			sort.Strings(fields)
			for _, field := range fields {
				fmt.Fprintf(os.Stderr, "%s: %s\n", field, errs[field])
			}
			return fmt.Errorf("registration input is invalid")
		}

		msg, err := app.sessions.Register(app.auth, registerInput)
		if err != nil {
			return err
		}
		fmt.Println(msg)
		return nil
	},
}

// canteen whoami
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the active session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := boot(); err != nil {
			return err
		}
		app.views.Profile()
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "password (prompted when omitted)")

	registerCmd.Flags().StringVar(&registerInput.Username, "username", "", "account username")
	registerCmd.Flags().StringVar(&registerInput.Email, "email", "", "account email")
	registerCmd.Flags().StringVar(&registerInput.Password, "password", "", "account password")
	registerCmd.Flags().StringVar(&registerInput.Role, "role", "student", "student, canteen_manager, admin or ngo")
}
