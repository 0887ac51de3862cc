package app

import (
	"fmt"
	"slices"

	"vestr-cli/internal/domain"
)

// Step is a stage of the onboarding wizard.
type Step int

const (
	StepCredentials Step = iota
	StepAvatar
	StepExperience
	StepGoal
)

// StepInfo is the static heading of a wizard step.
type StepInfo struct {
	ID          string
	Title       string
	Description string
}

var steps = []StepInfo{
	{ID: "credentials", Title: "Join the Expedition", Description: "Secure your terminal before we begin."},
	{ID: "avatar", Title: "Choose Your Persona", Description: "Who will you be on this financial quest?"},
	{ID: "experience", Title: "Experience Level", Description: "How familiar are you with the markets?"},
	{ID: "goal", Title: "Set Your Goal", Description: "What is the ultimate prize for your journey?"},
}

// StepCount is the number of wizard steps.
var StepCount = len(steps)

// Wizard collects a new user's record over four linear steps. The password
// is held separately and never becomes part of the emitted record.
type Wizard struct {
	step       Step
	data       domain.UserData
	password   string
	onComplete func(domain.UserData)
}

func NewWizard(onComplete func(domain.UserData)) *Wizard {
	return &Wizard{
		data:       domain.UserData{Experience: domain.ExperienceNewbie},
		onComplete: onComplete,
	}
}

func (w *Wizard) Step() Step { return w.step }
func (w *Wizard) Info() StepInfo { return steps[w.step] }
func (w *Wizard) Data() domain.UserData { return w.data }
func (w *Wizard) Password() string { return w.password }

func (w *Wizard) SetUsername(username string) { w.data.Username = username }
func (w *Wizard) SetPassword(password string) { w.password = password }

// ChooseAvatar picks one of domain.Avatars by display name.
func (w *Wizard) ChooseAvatar(name string) error {
	for _, a := range domain.Avatars {
		if a.Name == name {
			w.data.Avatar = name
			return nil
		}
	}
	return fmt.Errorf("unknown avatar %q", name)
}

func (w *Wizard) ChooseExperience(level domain.ExperienceLevel) error {
	if !slices.Contains(domain.ExperienceLevels, level) {
		return fmt.Errorf("unknown experience level %q", level)
	}
	w.data.Experience = level
	return nil
}

func (w *Wizard) ChooseGoal(goal string) error {
	if !slices.Contains(domain.Goals, goal) {
		return fmt.Errorf("unknown goal %q", goal)
	}
	w.data.Goal = goal
	return nil
}

// CanContinue reports whether the current step's required fields are filled.
func (w *Wizard) CanContinue() bool {
	switch w.step {
	case StepCredentials:
		return w.data.Username != "" && w.password != ""
	case StepAvatar:
		return w.data.Avatar != ""
	case StepGoal:
		return w.data.Goal != ""
	default:
		return true
	}
}

// ContinueLabel is the caption of the forward button.
func (w *Wizard) ContinueLabel() string {
	if w.IsLast() {
		return "Begin Quest"
	}
	return "Continue"
}

func (w *Wizard) IsLast() bool { return int(w.step) == StepCount-1 }

// Next advances one step. On the last step it hands the record to the
// completion callback and reports done.
func (w *Wizard) Next() (done bool, err error) {
	if !w.CanContinue() {
		return false, domain.ErrStepIncomplete
	}
	if !w.IsLast() {
		w.step++
		return false, nil
	}
	if w.onComplete != nil {
		w.onComplete(w.data)
	}
	return true, nil
}

// Back returns to the previous step; it does nothing on the first one.
func (w *Wizard) Back() {
	if w.step > StepCredentials {
		w.step--
	}
}
