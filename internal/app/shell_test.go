package app

import (
	"context"
	"errors"
	"testing"

	"vestr-cli/internal/domain"
)

func TestShellLoginToProfileEndToEnd(t *testing.T) {
	ctx := context.Background()
	maya := domain.UserProfile{User: domain.User{Username: "maya"}, Avatar: "Maya", Goal: "Career Break", XP: 150}
	backend := &fakeBackend{profile: maya, profiles: []domain.UserProfile{maya}}
	store := &fakeStore{}
	shell := NewShell(backend, store)

	if err := shell.Navigate(ViewProfile); !errors.Is(err, domain.ErrNotLoggedIn) {
		t.Fatalf("expected ErrNotLoggedIn, got %v", err)
	}

	login := shell.OpenLogin()
	login.SetUsername("maya")
	login.SetPassword("pw")
	if err := login.Submit(ctx); err != nil {
		t.Fatalf("login: %v", err)
	}
	if shell.LoginOpen() {
		t.Fatal("login modal should be closed")
	}
	if !shell.LoggedIn() || shell.XP() != 150 {
		t.Fatalf("expected logged in with 150 XP, got %d", shell.XP())
	}
	if store.user == nil || store.user.Username != "maya" {
		t.Fatal("session not persisted")
	}

	if err := shell.Navigate(ViewProfile); err != nil {
		t.Fatalf("navigate: %v", err)
	}
	shell.Profile().Load(ctx)
	if badges := shell.Profile().Summary().Badges; len(badges) != 1 || badges[0] != "100 XP" {
		t.Fatalf("expected one badge at 100 XP, got %v", badges)
	}

	if err := shell.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if shell.LoggedIn() || shell.View() != ViewHome || store.user != nil {
		t.Fatalf("logout should clear session and go home (view=%v)", shell.View())
	}
	if shell.Profile() != nil {
		t.Fatal("profile view should be unmounted on logout")
	}
}

func TestShellQuizCompletionAddsXP(t *testing.T) {
	ctx := context.Background()
	backend := &fakeBackend{
		scenarios: []domain.Scenario{{ID: 7, Name: "NIYA"}},
		questions: scenario7(),
	}
	store := &fakeStore{}
	start := domain.UserData{Username: "maya"}.WithXP(60)
	store.user = &start
	shell := NewShell(backend, store)
	if err := shell.Restore(ctx); err != nil {
		t.Fatalf("restore: %v", err)
	}

	_ = shell.Navigate(ViewExplore)
	shell.Explore().Load(ctx)
	if _, err := shell.Explore().SelectID(7); err != nil {
		t.Fatalf("select: %v", err)
	}
	quiz := shell.Quiz()
	if quiz == nil || quiz.IsGuest() {
		t.Fatal("expected an authenticated quiz")
	}
	quiz.Load(ctx)
	_ = quiz.Select(11)
	_, _ = quiz.Confirm()
	_, _ = quiz.Next()
	if err := quiz.Collect(ctx); err != nil {
		t.Fatalf("collect: %v", err)
	}

	if shell.XP() != 110 || store.user.XPOrZero() != 110 {
		t.Fatalf("expected 110 XP, shell=%d store=%d", shell.XP(), store.user.XPOrZero())
	}
	if shell.Quiz() != nil || shell.View() != ViewExplore {
		t.Fatal("quiz should close back to explore")
	}
	if len(backend.awards) != 1 || backend.awards[0].Amount != 50 {
		t.Fatalf("unexpected awards %+v", backend.awards)
	}
}

func TestShellGuestQuizGoesBack(t *testing.T) {
	ctx := context.Background()
	backend := &fakeBackend{questions: scenario7()}
	shell := NewShell(backend, &fakeStore{})

	shell.StartQuiz(domain.Scenario{ID: 7})
	quiz := shell.Quiz()
	if !quiz.IsGuest() {
		t.Fatal("expected guest quiz")
	}
	quiz.Load(ctx)
	_ = quiz.Select(11)
	_, _ = quiz.Confirm()
	_, _ = quiz.Next()
	_ = quiz.Collect(ctx)

	if shell.Quiz() != nil || shell.View() != ViewExplore || shell.LoggedIn() {
		t.Fatal("guest quiz should just return to explore")
	}
	if backend.awardCount() != 0 {
		t.Fatal("guest must not post add_xp")
	}
}

func TestShellOnboardingRegistersAndLogsIn(t *testing.T) {
	backend := &fakeBackend{regErr: errBoom}
	store := &fakeStore{}
	shell := NewShell(backend, store)

	w := shell.OpenOnboarding()
	if !shell.OnboardingOpen() {
		t.Fatal("onboarding should be open")
	}
	w.SetUsername("maya")
	w.SetPassword("pw")
	advance(t, shell, false)
	_ = w.ChooseAvatar("Student Maya")
	advance(t, shell, false)
	advance(t, shell, false)
	_ = w.ChooseGoal("Family Fund")
	advance(t, shell, true)

	if shell.OnboardingOpen() {
		t.Fatal("onboarding should close")
	}
	user, ok := shell.User()
	if !ok || user.Username != "maya" || user.Goal != "Family Fund" || user.XPOrZero() != 0 {
		t.Fatalf("unexpected user %+v", user)
	}
	if len(backend.registrations) != 1 || backend.registrations[0].Password != "pw" {
		t.Fatalf("expected one registration, got %+v", backend.registrations)
	}
}

func TestShellSwitchToSignUp(t *testing.T) {
	shell := NewShell(&fakeBackend{}, &fakeStore{})
	shell.OpenLogin()
	shell.SwitchToSignUp()
	if shell.LoginOpen() || !shell.OnboardingOpen() {
		t.Fatalf("login=%v onboarding=%v", shell.LoginOpen(), shell.OnboardingOpen())
	}
	shell.CloseModals()
	if shell.OnboardingOpen() {
		t.Fatal("modals should close")
	}
}

func advance(t *testing.T, shell *Shell, wantDone bool) {
	t.Helper()
	done, err := shell.AdvanceOnboarding(context.Background())
	if err != nil || done != wantDone {
		t.Fatalf("advance: done=%v err=%v", done, err)
	}
}
