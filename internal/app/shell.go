package app

import (
	"context"
	"errors"
	"log/slog"

	"vestr-cli/internal/domain"
)

// View selects the page the shell shows.
type View string

const (
	ViewHome    View = "home"
	ViewExplore View = "explore"
	ViewProfile View = "profile"
)

// Shell is the root of the client. It owns the session, the view selector
// and the modals, and wires the components together through callbacks.
// It is driven by a single input loop and is not safe for concurrent use.
type Shell struct {
	backend Backend
	store   SessionStore

	user *domain.UserData
	view View

	onboardingOpen bool
	loginOpen      bool
	wizard         *Wizard
	login          *LoginDialog

	explore *ExploreView
	profile *ProfileView
	quiz    *QuizSession
}

func NewShell(backend Backend, store SessionStore) *Shell {
	return &Shell{backend: backend, store: store, view: ViewHome}
}

// Restore reloads a previously saved session. A missing session is not an error.
func (s *Shell) Restore(ctx context.Context) error {
	user, err := s.store.Load(ctx)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	s.user = &user
	return nil
}

func (s *Shell) View() View { return s.view }

// User returns the logged-in user, if any.
func (s *Shell) User() (domain.UserData, bool) {
	if s.user == nil {
		return domain.UserData{}, false
	}
	return *s.user, true
}

func (s *Shell) LoggedIn() bool { return s.user != nil }

// XP is the experience shown in the navigation bar.
func (s *Shell) XP() int {
	if s.user == nil {
		return 0
	}
	return s.user.XPOrZero()
}

// Navigate switches page. The profile page needs a logged-in user.
func (s *Shell) Navigate(view View) error {
	if view == ViewProfile && s.user == nil {
		return domain.ErrNotLoggedIn
	}
	s.unmountViews()
	s.view = view
	switch view {
	case ViewExplore:
		s.explore = NewExploreView(s.backend, s.StartQuiz)
	case ViewProfile:
		s.profile = NewProfileView(s.backend, s.user)
	}
	return nil
}

func (s *Shell) Explore() *ExploreView { return s.explore }
func (s *Shell) Profile() *ProfileView { return s.profile }
func (s *Shell) Quiz() *QuizSession { return s.quiz }

// StartQuiz mounts a quiz for scenario. Guests play without a username.
func (s *Shell) StartQuiz(scenario domain.Scenario) {
	if s.quiz != nil {
		s.quiz.Unmount()
	}
	cfg := QuizConfig{
		Scenario:   scenario,
		OnBack:     s.closeQuiz,
		OnComplete: s.completeQuiz,
	}
	if s.user != nil {
		cfg.Username = s.user.Username
	}
	s.quiz = NewQuizSession(s.backend, s.backend, cfg)
}

func (s *Shell) closeQuiz() {
	if s.quiz != nil {
		s.quiz.Unmount()
	}
	s.quiz = nil
	s.view = ViewExplore
}

func (s *Shell) completeQuiz(ctx context.Context, xpEarned int) {
	if s.user != nil {
		updated := s.user.WithXP(s.user.XPOrZero() + xpEarned)
		s.setUser(ctx, updated)
	}
	s.closeQuiz()
}

// OpenLogin shows the login dialog.
func (s *Shell) OpenLogin() *LoginDialog {
	s.onboardingOpen = false
	s.loginOpen = true
	s.login = NewLoginDialog(s.backend, s.setUser, func() { s.loginOpen = false })
	return s.login
}

func (s *Shell) LoginOpen() bool { return s.loginOpen }

// SwitchToSignUp leaves the login dialog for the onboarding wizard.
func (s *Shell) SwitchToSignUp() *Wizard {
	if s.login != nil {
		s.login.Close()
	}
	return s.OpenOnboarding()
}

// OpenOnboarding shows a fresh onboarding wizard.
func (s *Shell) OpenOnboarding() *Wizard {
	s.loginOpen = false
	s.onboardingOpen = true
	s.wizard = NewWizard(nil)
	return s.wizard
}

func (s *Shell) OnboardingOpen() bool { return s.onboardingOpen }

// CloseModals dismisses both dialogs without changing the session.
func (s *Shell) CloseModals() {
	s.onboardingOpen = false
	if s.login != nil {
		s.login.Close()
	}
	s.loginOpen = false
}

// AdvanceOnboarding moves the wizard forward. Finishing it stores the new
// user locally and registers the account; a failed registration is only logged.
func (s *Shell) AdvanceOnboarding(ctx context.Context) (bool, error) {
	if s.wizard == nil || !s.onboardingOpen {
		return false, domain.ErrStepIncomplete
	}
	done, err := s.wizard.Next()
	if err != nil || !done {
		return done, err
	}

	data := s.wizard.Data()
	data = data.WithXP(0)
	reg := domain.Registration{
		Username: data.Username,
		Password: s.wizard.Password(),
		Avatar:   data.Avatar,
		Goal:     data.Goal,
	}
	if _, err := s.backend.Register(ctx, reg); err != nil {
		slog.Warn("failed to register account", "username", reg.Username, "error", err)
	}
	s.setUser(ctx, data)
	s.onboardingOpen = false
	s.wizard = nil
	return true, nil
}

// Logout drops the session and returns to the home page.
func (s *Shell) Logout(ctx context.Context) error {
	s.user = nil
	s.unmountViews()
	if s.quiz != nil {
		s.quiz.Unmount()
		s.quiz = nil
	}
	s.view = ViewHome
	return s.store.Clear(ctx)
}

func (s *Shell) setUser(ctx context.Context, user domain.UserData) {
	s.user = &user
	if err := s.store.Save(ctx, user); err != nil {
		slog.Warn("failed to persist session", "username", user.Username, "error", err)
	}
}

func (s *Shell) unmountViews() {
	if s.explore != nil {
		s.explore.Unmount()
		s.explore = nil
	}
	if s.profile != nil {
		s.profile.Unmount()
		s.profile = nil
	}
}
