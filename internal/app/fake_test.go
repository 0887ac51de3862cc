package app

import (
	"context"
	"errors"
	"sync"

	"vestr-cli/internal/domain"
)

// fakeBackend is an in-memory Backend that records calls.
type fakeBackend struct {
	mu sync.Mutex

	profile   domain.UserProfile
	loginErr  error
	regErr    error
	scenarios []domain.Scenario
	listErr   error
	questions map[int][]domain.QuizQuestion
	qErr      error
	profiles  []domain.UserProfile
	profErr   error
	progress  []domain.UserScenarioProgress
	progErr   error
	xpErr     error

	// block, when set, holds ListScenarios until it is closed or ctx ends.
	block chan struct{}

	logins        []domain.Credentials
	registrations []domain.Registration
	awards        []domain.XPAward
}

func (f *fakeBackend) Login(_ context.Context, creds domain.Credentials) (domain.UserProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logins = append(f.logins, creds)
	if f.loginErr != nil {
		return domain.UserProfile{}, f.loginErr
	}
	return f.profile, nil
}

func (f *fakeBackend) Register(_ context.Context, reg domain.Registration) (domain.UserProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registrations = append(f.registrations, reg)
	if f.regErr != nil {
		return domain.UserProfile{}, f.regErr
	}
	return domain.UserProfile{User: domain.User{Username: reg.Username}, Avatar: reg.Avatar, Goal: reg.Goal}, nil
}

func (f *fakeBackend) ListScenarios(ctx context.Context) ([]domain.Scenario, error) {
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return f.scenarios, f.listErr
}

func (f *fakeBackend) Questions(_ context.Context, scenarioID int) ([]domain.QuizQuestion, error) {
	if f.qErr != nil {
		return nil, f.qErr
	}
	return f.questions[scenarioID], nil
}

func (f *fakeBackend) AddXP(_ context.Context, award domain.XPAward) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.awards = append(f.awards, award)
	return f.xpErr
}

func (f *fakeBackend) ListProfiles(context.Context) ([]domain.UserProfile, error) {
	return f.profiles, f.profErr
}

func (f *fakeBackend) ListProgress(context.Context) ([]domain.UserScenarioProgress, error) {
	return f.progress, f.progErr
}

func (f *fakeBackend) awardCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.awards)
}

// fakeStore is an in-memory SessionStore.
type fakeStore struct {
	user    *domain.UserData
	saveErr error
}

func (s *fakeStore) Load(context.Context) (domain.UserData, error) {
	if s.user == nil {
		return domain.UserData{}, domain.ErrSessionNotFound
	}
	return *s.user, nil
}

func (s *fakeStore) Save(_ context.Context, user domain.UserData) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.user = &user
	return nil
}

func (s *fakeStore) Clear(context.Context) error {
	s.user = nil
	return nil
}

var errBoom = errors.New("boom")

// scenario7 is a single question with the second option correct, worth 50 XP.
func scenario7() map[int][]domain.QuizQuestion {
	return map[int][]domain.QuizQuestion{
		7: {
			{
				ID:           1,
				Scenario:     7,
				QuestionText: "What should an emergency fund cover?",
				XPReward:     50,
				Options: []domain.QuizOption{
					{ID: 10, OptionText: "One week", IsCorrect: false},
					{ID: 11, OptionText: "Three to six months", IsCorrect: true},
				},
			},
		},
	}
}

func threeQuestions() []domain.QuizQuestion {
	return []domain.QuizQuestion{
		{ID: 1, XPReward: 10, Options: []domain.QuizOption{{ID: 1, IsCorrect: true}, {ID: 2}}},
		{ID: 2, XPReward: 20, Options: []domain.QuizOption{{ID: 3}, {ID: 4, IsCorrect: true}}},
		{ID: 3, XPReward: 30, Options: []domain.QuizOption{{ID: 5, IsCorrect: true}, {ID: 6}}},
	}
}
