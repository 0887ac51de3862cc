package app

import (
	"context"
	"log/slog"

	"vestr-cli/internal/domain"
)

// QuizPhase is the lifecycle stage of a quiz session.
type QuizPhase int

const (
	QuizLoading QuizPhase = iota
	QuizInProgress
	QuizFinished
	// QuizFailed is terminal: questions could not be loaded or there were none.
	QuizFailed
)

func (p QuizPhase) String() string {
	switch p {
	case QuizInProgress:
		return "in-progress"
	case QuizFinished:
		return "finished"
	case QuizFailed:
		return "error"
	default:
		return "loading"
	}
}

// OptionOutcome is what an option reveals once its question is answered.
type OptionOutcome int

const (
	// OutcomeHidden is the only outcome before the answer is confirmed.
	OutcomeHidden OptionOutcome = iota
	OutcomeCorrect
	OutcomeIncorrect
	// OutcomeNeutral marks options that were neither chosen nor correct.
	OutcomeNeutral
)

// OptionView is an option as it may be displayed.
type OptionView struct {
	ID       int
	Text     string
	Selected bool
	Outcome  OptionOutcome
}

// QuestionView is the current question as it may be displayed. It never
// carries correctness flags for an unanswered question.
type QuestionView struct {
	Index    int
	Total    int
	Text     string
	XPReward int
	Answered bool
	Options  []OptionView
	Last     bool
}

// QuizConfig wires a quiz session to its scenario and navigation callbacks.
type QuizConfig struct {
	Scenario domain.Scenario
	// Username is empty for guest sessions; guests never persist XP.
	Username   string
	OnBack     func()
	OnComplete func(ctx context.Context, xpEarned int)
}

// QuizSession steps through one scenario's questions and tracks the score.
type QuizSession struct {
	mount
	questionsSrc QuestionSource
	awarder      XPAwarder
	cfg          QuizConfig

	phase     QuizPhase
	questions []domain.QuizQuestion
	index     int
	selected  int
	hasChoice bool
	answered  bool
	score     int
	saving    bool
	collected bool
	err       error
}

func NewQuizSession(questions QuestionSource, awarder XPAwarder, cfg QuizConfig) *QuizSession {
	return &QuizSession{questionsSrc: questions, awarder: awarder, cfg: cfg}
}

// Load fetches the scenario's questions. A fetch error or an empty list is terminal.
func (q *QuizSession) Load(ctx context.Context) QuizPhase {
	ctx, gen := q.begin(ctx, func() {
		q.phase = QuizLoading
		q.questions = nil
		q.index, q.score = 0, 0
		q.hasChoice, q.answered = false, false
		q.collected = false
		q.err = nil
	})

	questions, err := q.questionsSrc.Questions(ctx, q.cfg.Scenario.ID)
	if err != nil {
		slog.Error("failed to fetch questions", "scenario", q.cfg.Scenario.ID, "error", err)
	}

	q.commit(gen, func() {
		switch {
		case err != nil:
			q.phase, q.err = QuizFailed, err
		case len(questions) == 0:
			q.phase, q.err = QuizFailed, domain.ErrNoQuestions
		default:
			q.phase, q.questions = QuizInProgress, questions
		}
	})
	return q.Phase()
}

func (q *QuizSession) Scenario() domain.Scenario { return q.cfg.Scenario }

// IsGuest reports whether earned XP will be discarded.
func (q *QuizSession) IsGuest() bool { return q.cfg.Username == "" }

func (q *QuizSession) Phase() QuizPhase {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.phase
}

func (q *QuizSession) Err() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.err
}

func (q *QuizSession) Score() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.score
}

// Saving reports whether the XP award request is in flight.
func (q *QuizSession) Saving() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.saving
}

// Progress is the fraction of questions answered, counting the current one once confirmed.
func (q *QuizSession) Progress() float64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.questions) == 0 {
		return 0
	}
	if q.phase == QuizFinished {
		return 1
	}
	done := q.index
	if q.answered {
		done++
	}
	return float64(done) / float64(len(q.questions))
}

// Current returns the question being asked.
func (q *QuizSession) Current() (QuestionView, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.phase != QuizInProgress {
		return QuestionView{}, false
	}
	question := q.questions[q.index]
	view := QuestionView{
		Index:    q.index,
		Total:    len(q.questions),
		Text:     question.QuestionText,
		XPReward: question.XPReward,
		Answered: q.answered,
		Last:     q.index == len(q.questions)-1,
		Options:  make([]OptionView, len(question.Options)),
	}
	for i, opt := range question.Options {
		selected := q.hasChoice && q.selected == opt.ID
		outcome := OutcomeHidden
		if q.answered {
			switch {
			case opt.IsCorrect:
				outcome = OutcomeCorrect
			case selected:
				outcome = OutcomeIncorrect
			default:
				outcome = OutcomeNeutral
			}
		}
		view.Options[i] = OptionView{ID: opt.ID, Text: opt.OptionText, Selected: selected, Outcome: outcome}
	}
	return view, true
}

// Select records a choice for the current question. Once answered it changes nothing.
func (q *QuizSession) Select(optionID int) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.phase != QuizInProgress {
		return domain.ErrQuizNotReady
	}
	if q.answered {
		return domain.ErrAlreadyAnswered
	}
	if _, ok := q.questions[q.index].Option(optionID); !ok {
		return domain.ErrOptionNotFound
	}
	q.selected, q.hasChoice = optionID, true
	return nil
}

// Confirm freezes the choice and scores it. It reports whether the choice was correct.
func (q *QuizSession) Confirm() (bool, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.phase != QuizInProgress {
		return false, domain.ErrQuizNotReady
	}
	if q.answered {
		return false, domain.ErrAlreadyAnswered
	}
	if !q.hasChoice {
		return false, domain.ErrNoSelection
	}

	question := q.questions[q.index]
	opt, _ := question.Option(q.selected)
	if opt.IsCorrect {
		q.score += question.XPReward
	}
	q.answered = true
	return opt.IsCorrect, nil
}

// Next moves to the following question, or finishes after the last one.
func (q *QuizSession) Next() (QuizPhase, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.phase != QuizInProgress {
		return q.phase, domain.ErrQuizNotReady
	}
	if !q.answered {
		return q.phase, domain.ErrNotAnswered
	}
	if q.index < len(q.questions)-1 {
		q.index++
		q.hasChoice, q.answered = false, false
		return q.phase, nil
	}
	q.phase = QuizFinished
	return q.phase, nil
}

// Collect ends a finished quiz. Authenticated sessions post the score and
// complete whether or not the post succeeds; guests navigate back with nothing saved.
// Only the first call does anything.
func (q *QuizSession) Collect(ctx context.Context) error {
	q.mu.Lock()
	if q.phase != QuizFinished {
		q.mu.Unlock()
		return domain.ErrQuizNotReady
	}
	if q.saving || q.collected {
		q.mu.Unlock()
		return nil
	}
	q.collected = true
	score := q.score
	if q.IsGuest() {
		q.mu.Unlock()
		q.back()
		return nil
	}
	q.saving = true
	q.mu.Unlock()

	award := domain.XPAward{Username: q.cfg.Username, Amount: score}
	if err := q.awarder.AddXP(ctx, award); err != nil {
		slog.Error("failed to save XP", "username", award.Username, "amount", award.Amount, "error", err)
	}

	q.mu.Lock()
	q.saving = false
	q.mu.Unlock()

	if q.cfg.OnComplete != nil {
		q.cfg.OnComplete(ctx, score)
	}
	return nil
}

// Abort leaves the quiz at any point without saving.
func (q *QuizSession) Abort() {
	q.Unmount()
	q.back()
}

func (q *QuizSession) back() {
	if q.cfg.OnBack != nil {
		q.cfg.OnBack()
	}
}
