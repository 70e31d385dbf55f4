package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"arthsaathi/internal/services"
)

func newSignUpCommand(st *rootState) *cobra.Command {
	var req services.SignUpRequest
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create the local account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			u, err := st.app.Accounts.SignUp(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), green(fmt.Sprintf("Welcome, %s (%s)", u.Name, u.Email)))
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "display name")
	cmd.Flags().StringVar(&req.Email, "email", "", "email address")
	cmd.Flags().StringVar(&req.Password, "password", "", "password")
	cmd.Flags().StringVar(&req.Confirm, "confirm", "", "password confirmation")
	cmd.Flags().StringVar(&req.Code, "code", "", "verification code")
	return cmd
}

func newSignInCommand(st *rootState) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "signin",
		Short: "Sign in to the local account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			u, err := st.app.Accounts.SignIn(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), green("Signed in as "+u.Email))
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password")
	return cmd
}

func newSignOutCommand(st *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "signout",
		Short: "Sign out and clear the local timeline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := st.app.Accounts.SignOut(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}

func newWhoAmICommand(st *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			u, err := st.app.Accounts.Current(cmd.Context())
			if errors.Is(err, services.ErrNotSignedIn) {
				fmt.Fprintln(cmd.OutOrStdout(), gray("Not signed in"))
				return nil
			}
			if err != nil {
				return err
			}
			name := u.Name
			if name == "" {
				name = u.Email
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\n", bold(name), u.Email)
			return nil
		},
	}
}
