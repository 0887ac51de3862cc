package cli

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"vestr-cli/internal/app"
	"vestr-cli/internal/domain"
)

func newProfileCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show your progress and badges",
		Args:  cobra.NoArgs,
		RunE: withRuntime(opts, func(ctx context.Context, rt *runtime, _ []string) error {
			return showProfile(ctx, rt)
		}),
	}
}

func showProfile(ctx context.Context, rt *runtime) error {
	if err := rt.shell.Navigate(app.ViewProfile); err != nil {
		if errors.Is(err, domain.ErrNotLoggedIn) {
			rt.render.printf("Log in to see your profile.\n")
		}
		return err
	}
	profile := rt.shell.Profile()
	profile.Load(ctx)
	rt.render.profile(profile.Summary())
	return nil
}

func newPlayCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Start the interactive client",
		Args:  cobra.NoArgs,
		RunE: withRuntime(opts, func(ctx context.Context, rt *runtime, _ []string) error {
			return play(ctx, rt)
		}),
	}
}

const playHelp = `Commands:
  home | explore | profile
  <n>       open adventure n from the explore list
  retry     reload the adventures
  login | signup | logout
  help | quit
`

// play is the interactive loop over the shell's views.
func play(ctx context.Context, rt *runtime) error {
	rt.render.nav(rt.shell)
	rt.render.home()
	rt.render.printf("%s", playHelp)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		answer, err := rt.prompt.line("\n> ")
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			return err
		}

		cmd := strings.ToLower(answer)
		switch cmd {
		case "", "help", "?":
			rt.render.printf("%s", playHelp)
		case "quit", "exit", "q":
			return nil
		case "home":
			_ = rt.shell.Navigate(app.ViewHome)
			rt.render.nav(rt.shell)
			rt.render.home()
		case "explore", "retry":
			if rt.shell.View() != app.ViewExplore || rt.shell.Explore() == nil {
				_ = rt.shell.Navigate(app.ViewExplore)
			}
			rt.shell.Explore().Load(ctx)
			rt.render.explore(rt.shell.Explore())
		case "profile":
			if err := showProfile(ctx, rt); err != nil && !errors.Is(err, domain.ErrNotLoggedIn) {
				return err
			}
		case "login":
			err := runLogin(ctx, rt, "", "")
			if errors.Is(err, errQuit) {
				return nil
			}
			if err != nil && ctx.Err() != nil {
				return err
			}
		case "signup", "start":
			if err := runOnboarding(ctx, rt); err != nil {
				return err
			}
		case "logout":
			if err := rt.shell.Logout(ctx); err != nil {
				return err
			}
			rt.render.printf("Logged out.\n")
			rt.render.nav(rt.shell)
		default:
			if err := openAdventure(ctx, rt, cmd); err != nil {
				rt.render.printf("%v\n", err)
			}
		}
	}
}

func openAdventure(ctx context.Context, rt *runtime, answer string) error {
	n, err := strconv.Atoi(answer)
	if err != nil {
		return errors.New("unknown command, type 'help'")
	}
	explore := rt.shell.Explore()
	if rt.shell.View() != app.ViewExplore || explore == nil {
		return errors.New("open 'explore' first")
	}
	if _, err := explore.Select(n - 1); err != nil {
		return err
	}
	if err := runQuiz(ctx, rt); err != nil {
		return err
	}
	rt.shell.Explore().Load(ctx)
	rt.render.explore(rt.shell.Explore())
	return nil
}
