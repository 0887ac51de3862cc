package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"vestr-cli/internal/app"
	"vestr-cli/internal/domain"
)

func newOnboardCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "onboard",
		Short: "Create an account with the onboarding wizard",
		Args:  cobra.NoArgs,
		RunE: withRuntime(opts, func(ctx context.Context, rt *runtime, _ []string) error {
			return runOnboarding(ctx, rt)
		}),
	}
}

// runOnboarding walks the wizard. Typing "back" on a choice step returns
// to the previous step and "quit" abandons the wizard.
func runOnboarding(ctx context.Context, rt *runtime) error {
	w := rt.shell.OpenOnboarding()
	for {
		rt.render.wizardStep(w)
		back, err := fillStep(rt, w)
		if errors.Is(err, errQuit) {
			rt.shell.CloseModals()
			return nil
		}
		if err != nil {
			rt.render.printf("%v\n", err)
			continue
		}
		if back {
			w.Back()
			continue
		}

		done, err := rt.shell.AdvanceOnboarding(ctx)
		if errors.Is(err, domain.ErrStepIncomplete) {
			rt.render.printf("Please fill in this step before you continue.\n")
			continue
		}
		if err != nil {
			return err
		}
		if done {
			user, _ := rt.shell.User()
			rt.render.printf("\nWelcome aboard, %s. Your quest begins.\n", user.Username)
			rt.render.nav(rt.shell)
			return nil
		}
	}
}

func fillStep(rt *runtime, w *app.Wizard) (back bool, err error) {
	switch w.Step() {
	case app.StepCredentials:
		username, err := rt.prompt.line("Username: ")
		if err != nil {
			return false, err
		}
		password, err := rt.prompt.line("Password: ")
		if err != nil {
			return false, err
		}
		w.SetUsername(username)
		w.SetPassword(password)
		return false, nil

	case app.StepAvatar:
		for i, a := range domain.Avatars {
			rt.render.printf("  %d) %s - %s\n", i+1, a.Name, a.Desc)
		}
		idx, cmd, err := rt.prompt.choice("Persona: ", len(domain.Avatars))
		if err != nil || cmd != "" {
			return stepCommand(cmd, err)
		}
		if idx < 0 {
			return false, nil
		}
		return false, w.ChooseAvatar(domain.Avatars[idx].Name)

	case app.StepExperience:
		for i, level := range domain.ExperienceLevels {
			rt.render.printf("  %d) %s - %s\n", i+1, level, level.Blurb())
		}
		idx, cmd, err := rt.prompt.choice("Level [Enter keeps "+string(w.Data().Experience)+"]: ", len(domain.ExperienceLevels))
		if err != nil || cmd != "" {
			return stepCommand(cmd, err)
		}
		if idx < 0 {
			return false, nil
		}
		return false, w.ChooseExperience(domain.ExperienceLevels[idx])

	default:
		for i, goal := range domain.Goals {
			rt.render.printf("  %d) %s\n", i+1, goal)
		}
		idx, cmd, err := rt.prompt.choice("Goal: ", len(domain.Goals))
		if err != nil || cmd != "" {
			return stepCommand(cmd, err)
		}
		if idx < 0 {
			return false, nil
		}
		return false, w.ChooseGoal(domain.Goals[idx])
	}
}

func stepCommand(cmd string, err error) (bool, error) {
	if err != nil {
		return false, err
	}
	switch cmd {
	case "back", "b":
		return true, nil
	case "quit", "q":
		return false, errQuit
	}
	return false, errors.New("type a number, 'back' or 'quit'")
}
