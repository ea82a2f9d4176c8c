package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/laplogger/internal/model"
	"github.com/laplogger/internal/session"
	"github.com/spf13/cobra"
)

// readSecret берёт пароль из флага или первой строки stdin.
func readSecret(cmd *cobra.Command, flagValue, prompt string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	fmt.Fprint(cmd.ErrOrStderr(), prompt)
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func newLoginCmd(a *app) *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and keep the session locally",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := readSecret(cmd, password, "Password: ")
			if err != nil {
				return err
			}
			sess, err := a.sess.Login(cmd.Context(), model.Credentials{Username: username, Password: pw})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Logged in as "+sess.User.Username))
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (read from stdin when omitted)")
	cmd.MarkFlagRequired("username")
	return cmd
}

func newRegisterCmd(a *app) *cobra.Command {
	var in model.NewUser
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := readSecret(cmd, in.Password, "Password: ")
			if err != nil {
				return err
			}
			u := in
			u.Password = pw
			sess, err := a.sess.Register(cmd.Context(), u)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Welcome, "+sess.User.Username+"! You are logged in."))
			return nil
		},
	}
	cmd.Flags().StringVarP(&in.Username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&in.Email, "email", "e", "", "Email")
	cmd.Flags().StringVarP(&in.Password, "password", "p", "", "Password (read from stdin when omitted)")
	cmd.MarkFlagRequired("username")
	cmd.MarkFlagRequired("email")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the local session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.sess.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if a.sess.State() != session.Authenticated {
				fmt.Fprintln(out, mutedStyle.Render("Not logged in"))
				return nil
			}
			cur := a.sess.Current()
			fmt.Fprintf(out, "%s %s\n", headerStyle.Render("User: "), textStyle.Render(cur.User.Username))
			fmt.Fprintf(out, "%s %s\n", headerStyle.Render("Email:"), textStyle.Render(cur.User.Email))
			fmt.Fprintf(out, "%s %s\n", headerStyle.Render("API:  "), mutedStyle.Render(a.api.BaseURL()))
			return nil
		},
	}
}
