package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

func newLoginCmd(opts *options) *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and keep the session",
		Args:  cobra.NoArgs,
		RunE: withRuntime(opts, func(ctx context.Context, rt *runtime, _ []string) error {
			if err := runLogin(ctx, rt, username, password); err != nil {
				return err
			}
			if rt.cfg.Redis.Addr == "" {
				rt.render.printf("Note: no redis.addr configured, the session ends with this command.\n")
			}
			return nil
		}),
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "username (prompted if empty)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted if empty)")
	return cmd
}

// runLogin drives the login dialog, prompting for whatever was not supplied.
func runLogin(ctx context.Context, rt *runtime, username, password string) error {
	rt.render.printf("\nWelcome Back\nEnter your credentials to continue your quest.\n")
	dialog := rt.shell.OpenLogin()

	var err error
	if username == "" {
		if username, err = rt.prompt.line("Username: "); err != nil {
			return err
		}
	}
	if password == "" {
		if password, err = rt.prompt.line("Password: "); err != nil {
			return err
		}
	}
	dialog.SetUsername(username)
	dialog.SetPassword(password)
	if !dialog.CanSubmit() {
		dialog.Close()
		return errors.New("username and password are required")
	}

	if err := dialog.Submit(ctx); err != nil {
		rt.render.printf("%s\n", dialog.Error())
		dialog.Close()
		return err
	}
	rt.render.nav(rt.shell)
	return nil
}

func newLogoutCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: withRuntime(opts, func(ctx context.Context, rt *runtime, _ []string) error {
			if err := rt.shell.Logout(ctx); err != nil {
				return err
			}
			rt.render.printf("Logged out.\n")
			return nil
		}),
	}
}

func newWhoamiCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		Args:  cobra.NoArgs,
		RunE: withRuntime(opts, func(_ context.Context, rt *runtime, _ []string) error {
			rt.render.nav(rt.shell)
			return nil
		}),
	}
}
