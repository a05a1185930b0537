package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var signupName string

var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Sign in with an existing account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		ctrl, cleanup, err := newController(ctx, false)
		if err != nil {
			return err
		}
		defer cleanup()

		if err := ctrl.Login(ctx, args[0]); err != nil {
			if msg := ctrl.ErrorMessage(); msg != "" {
				fmt.Fprintln(os.Stderr, msg)
			}
			return err
		}
		user, _ := ctrl.CurrentUser()
		fmt.Printf("signed in as %s (%s)\n", user.Name, user.Email)
		return nil
	},
}

var signupCmd = &cobra.Command{
	Use:   "signup <email>",
	Short: "Create an account and sign in",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		ctrl, cleanup, err := newController(ctx, false)
		if err != nil {
			return err
		}
		defer cleanup()

		if err := ctrl.Signup(ctx, args[0], signupName); err != nil {
			if msg := ctrl.ErrorMessage(); msg != "" {
				fmt.Fprintln(os.Stderr, msg)
			}
			return err
		}
		user, _ := ctrl.CurrentUser()
		fmt.Printf("account created, signed in as %s (%s)\n", user.Name, user.Email)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out of the current account",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		ctrl, cleanup, err := newController(ctx, false)
		if err != nil {
			return err
		}
		defer cleanup()

		if err := ctrl.Logout(ctx); err != nil {
			return err
		}
		fmt.Println("signed out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the active account",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		ctrl, cleanup, err := newController(ctx, false)
		if err != nil {
			return err
		}
		defer cleanup()

		user, ok := ctrl.CurrentUser()
		if !ok {
			fmt.Println("not signed in")
			return nil
		}
		fmt.Printf("%s (%s)\n", user.Name, user.Email)
		return nil
	},
}

func init() {
	signupCmd.Flags().StringVar(&signupName, "name", "", "display name for the new account")
	rootCmd.AddCommand(loginCmd, signupCmd, logoutCmd, whoamiCmd)
}
