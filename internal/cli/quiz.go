package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"vestr-cli/internal/app"
	"vestr-cli/internal/domain"
)

func newExploreCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "explore",
		Short: "List the available adventures",
		Args:  cobra.NoArgs,
		RunE: withRuntime(opts, func(ctx context.Context, rt *runtime, _ []string) error {
			if err := rt.shell.Navigate(app.ViewExplore); err != nil {
				return err
			}
			explore := rt.shell.Explore()
			explore.Load(ctx)
			rt.render.explore(explore)
			return explore.Err()
		}),
	}
}

func newQuizCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "quiz <scenario-id>",
		Short: "Play one adventure's challenges",
		Args:  cobra.ExactArgs(1),
		RunE: withRuntime(opts, func(ctx context.Context, rt *runtime, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid scenario id %q", args[0])
			}
			if err := rt.shell.Navigate(app.ViewExplore); err != nil {
				return err
			}
			explore := rt.shell.Explore()
			if explore.Load(ctx) == app.ExploreFailed {
				return explore.Err()
			}
			if _, err := explore.SelectID(id); err != nil {
				return fmt.Errorf("scenario %d: %w", id, err)
			}
			return runQuiz(ctx, rt)
		}),
	}
}

// runQuiz plays the quiz currently mounted on the shell until it is
// collected or abandoned.
func runQuiz(ctx context.Context, rt *runtime) error {
	q := rt.shell.Quiz()
	if q == nil {
		return domain.ErrQuizNotReady
	}
	rt.render.printf("\n%s\n", q.Scenario().NameDisplay)

	if q.Load(ctx) == app.QuizFailed {
		rt.render.quizFailed()
		q.Abort()
		return nil
	}

	for q.Phase() == app.QuizInProgress {
		view, _ := q.Current()
		rt.render.question(view, q.IsGuest())
		rt.render.progressBar(q.Progress())

		if view.Answered {
			label := "Enter for the next challenge, 'q' to leave: "
			if view.Last {
				label = "Enter to finish the quest, 'q' to leave: "
			}
			answer, err := rt.prompt.line(label)
			if errors.Is(err, errQuit) || answer == "q" {
				q.Abort()
				return nil
			}
			if err != nil {
				return err
			}
			if _, err := q.Next(); err != nil {
				return err
			}
			continue
		}

		idx, cmd, err := rt.prompt.choice("Pick an option, 'c' to confirm, 'q' to leave: ", len(view.Options))
		switch {
		case errors.Is(err, errQuit) || cmd == "q":
			q.Abort()
			return nil
		case err != nil:
			rt.render.printf("%v\n", err)
		case cmd == "c":
			correct, err := q.Confirm()
			if errors.Is(err, domain.ErrNoSelection) {
				rt.render.printf("Select an option first.\n")
				continue
			}
			if err != nil {
				return err
			}
			if correct {
				rt.render.printf("Correct! +%s\n", rt.render.xp(view.XPReward))
			} else {
				rt.render.printf("Not quite.\n")
			}
		case idx >= 0:
			if err := q.Select(view.Options[idx].ID); err != nil {
				return err
			}
		default:
			rt.render.printf("Type an option number, 'c' or 'q'.\n")
		}
	}

	rt.render.quizFinished(q)
	label := "Press Enter to collect your XP: "
	if q.IsGuest() {
		label = "Press Enter to return to the adventures: "
	}
	if _, err := rt.prompt.line(label); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	if err := q.Collect(ctx); err != nil {
		return err
	}
	if !q.IsGuest() {
		rt.render.nav(rt.shell)
	}
	return nil
}
