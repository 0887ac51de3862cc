package domain

import "errors"

var (
	// ErrNoQuestions is returned when a scenario has no quiz questions.
	ErrNoQuestions = errors.New("no quiz questions available")
	// ErrQuizNotReady is returned when a quiz action arrives before questions are loaded or after it finished.
	ErrQuizNotReady = errors.New("quiz is not in progress")
	// ErrNoSelection is returned when confirming without a chosen option.
	ErrNoSelection = errors.New("no option selected")
	// ErrAlreadyAnswered is returned when the current question is frozen.
	ErrAlreadyAnswered = errors.New("question already answered")
	// ErrNotAnswered is returned when advancing past an unconfirmed question.
	ErrNotAnswered = errors.New("question not answered yet")
	// ErrOptionNotFound indicates a selected option ID is not part of the question.
	ErrOptionNotFound = errors.New("option not found")
	// ErrStepIncomplete is returned when the wizard cannot leave the current step.
	ErrStepIncomplete = errors.New("required fields are empty")
	// ErrLoginIncomplete is returned when submitting the login form with empty fields or while a request is in flight.
	ErrLoginIncomplete = errors.New("username and password required")
	// ErrNotLoggedIn is returned by actions that need an authenticated session.
	ErrNotLoggedIn = errors.New("not logged in")
	// ErrSessionNotFound is returned when no stored session exists.
	ErrSessionNotFound = errors.New("session not found")
	// ErrScenarioNotFound is returned when a scenario index or id is unknown.
	ErrScenarioNotFound = errors.New("scenario not found")
)
