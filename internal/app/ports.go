package app

import (
	"context"

	"vestr-cli/internal/domain"
)

// Authenticator exchanges credentials for a profile envelope.
type Authenticator interface {
	Login(ctx context.Context, creds domain.Credentials) (domain.UserProfile, error)
}

// Registrar creates accounts.
type Registrar interface {
	Register(ctx context.Context, reg domain.Registration) (domain.UserProfile, error)
}

// ScenarioLister lists the available scenarios.
type ScenarioLister interface {
	ListScenarios(ctx context.Context) ([]domain.Scenario, error)
}

// QuestionSource loads the quiz questions of a scenario.
type QuestionSource interface {
	Questions(ctx context.Context, scenarioID int) ([]domain.QuizQuestion, error)
}

// XPAwarder persists earned experience.
type XPAwarder interface {
	AddXP(ctx context.Context, award domain.XPAward) error
}

// ProfileSource lists profiles and scenario progress.
type ProfileSource interface {
	ListProfiles(ctx context.Context) ([]domain.UserProfile, error)
	ListProgress(ctx context.Context) ([]domain.UserScenarioProgress, error)
}

// Backend is everything the shell needs from the remote API.
type Backend interface {
	Authenticator
	Registrar
	ScenarioLister
	QuestionSource
	XPAwarder
	ProfileSource
}

// SessionStore keeps the logged-in user between runs (in-memory, Redis, etc).
type SessionStore interface {
	// Load returns domain.ErrSessionNotFound when nobody is logged in.
	Load(ctx context.Context) (domain.UserData, error)
	Save(ctx context.Context, user domain.UserData) error
	Clear(ctx context.Context) error
}
