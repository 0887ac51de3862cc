package api

import (
	"context"
	"strconv"

	"vestr-cli/internal/domain"
)

const (
	pathLogin     = "/users/profiles/login/"
	pathRegister  = "/users/profiles/register/"
	pathProfiles  = "/users/profiles/"
	pathAddXP     = "/users/profiles/add_xp/"
	pathScenarios = "/scenarios/list/"
	pathProgress  = "/scenarios/progress/"
	pathQuestions = "/quizzes/questions/"
)

// Login authenticates and returns the caller's profile envelope.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (domain.UserProfile, error) {
	var profile domain.UserProfile
	err := c.Post(ctx, pathLogin, creds, &profile)
	return profile, err
}

// Register creates an account and returns its profile envelope.
func (c *Client) Register(ctx context.Context, reg domain.Registration) (domain.UserProfile, error) {
	var profile domain.UserProfile
	err := c.Post(ctx, pathRegister, reg, &profile)
	return profile, err
}

func (c *Client) ListScenarios(ctx context.Context) ([]domain.Scenario, error) {
	var scenarios []domain.Scenario
	err := c.Get(ctx, pathScenarios, &scenarios)
	return scenarios, err
}

func (c *Client) ListProfiles(ctx context.Context) ([]domain.UserProfile, error) {
	var profiles []domain.UserProfile
	err := c.Get(ctx, pathProfiles, &profiles)
	return profiles, err
}

func (c *Client) ListProgress(ctx context.Context) ([]domain.UserScenarioProgress, error) {
	var progress []domain.UserScenarioProgress
	err := c.Get(ctx, pathProgress, &progress)
	return progress, err
}

// Questions lists the quiz questions of one scenario.
func (c *Client) Questions(ctx context.Context, scenarioID int) ([]domain.QuizQuestion, error) {
	var questions []domain.QuizQuestion
	err := c.Get(ctx, pathQuestions+"?scenario="+strconv.Itoa(scenarioID), &questions)
	return questions, err
}

// AddXP awards experience to username. The response body is ignored.
func (c *Client) AddXP(ctx context.Context, award domain.XPAward) error {
	return c.Post(ctx, pathAddXP, award, nil)
}
