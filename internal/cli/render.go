package cli

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"vestr-cli/internal/app"
	"vestr-cli/internal/domain"
)

// renderer draws views as plain text.
type renderer struct {
	w io.Writer
	p *message.Printer
}

func newRenderer(w io.Writer, locale string) *renderer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &renderer{w: w, p: message.NewPrinter(tag)}
}

func (r *renderer) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.w, format, args...)
}

// xp formats an experience count with locale grouping, e.g. "1,500 XP".
func (r *renderer) xp(n int) string {
	return r.p.Sprintf("%d XP", n)
}

func (r *renderer) nav(shell *app.Shell) {
	user, ok := shell.User()
	if !ok {
		r.printf("Vestr  |  Explore  |  Log in  |  Start Expedition\n")
		return
	}
	r.printf("Vestr  |  Explore  |  Profile  |  %s  |  %s\n", user.Username, r.xp(user.XPOrZero()))
}

func (r *renderer) home() {
	r.printf("\nFinancial Empowerment, Gamified.\n")
	r.printf("Embark on a quest through the markets. Master wealth building through immersive, branching adventures.\n\n")
}

func (r *renderer) explore(v *app.ExploreView) {
	switch v.State() {
	case app.ExploreIdle, app.ExploreLoading:
		r.printf("Loading adventures...\n")
	case app.ExploreFailed:
		r.printf("Adventures are not available right now. Type 'retry' to reload.\n")
	case app.ExploreEmpty:
		r.printf("No adventures yet. Check back soon.\n")
	case app.ExploreReady:
		r.printf("Choose your adventure\n\n")
		for i, s := range v.Scenarios() {
			r.printf("[%d] %s  (%s)\n", i+1, s.NameDisplay, s.Difficulty)
			r.printf("    %s\n", s.Subtitle)
			if s.Description != "" {
				r.printf("    %s\n", s.Description)
			}
			r.printf("    #%s\n\n", strings.Join(s.Tags, " #"))
		}
	}
}

func (r *renderer) question(q app.QuestionView, guest bool) {
	if guest {
		r.printf("Guest mode: XP earned here will not be saved.\n")
	}
	r.printf("\nChallenge %d of %d  (+%d XP)\n", q.Index+1, q.Total, q.XPReward)
	r.printf("%s\n\n", q.Text)
	for i, opt := range q.Options {
		marker := " "
		if opt.Selected {
			marker = ">"
		}
		suffix := ""
		switch opt.Outcome {
		case app.OutcomeCorrect:
			suffix = "  [correct]"
		case app.OutcomeIncorrect:
			suffix = "  [wrong]"
		}
		r.printf("%s %d) %s%s\n", marker, i+1, opt.Text, suffix)
	}
}

func (r *renderer) progressBar(fraction float64) {
	const width = 20
	filled := int(fraction * width)
	r.printf("[%s%s] %3.0f%%\n", strings.Repeat("#", filled), strings.Repeat(".", width-filled), fraction*100)
}

func (r *renderer) quizFinished(q *app.QuizSession) {
	r.printf("\nQuest complete! You earned %s.\n", r.xp(q.Score()))
	if q.IsGuest() {
		r.printf("Login to collect and save XP!\n")
	}
}

func (r *renderer) quizFailed() {
	r.printf("This quest is not available yet.\n")
}

func (r *renderer) profile(s app.ProfileSummary) {
	r.printf("\n%s\n%s\n", s.Username, s.Avatar)
	r.printf("Goal: %s\n", s.Goal)
	r.printf("Experience: %s\n", r.xp(s.XP))
	if len(s.Progress) > 0 {
		r.printf("\nAdventures\n")
		for _, p := range s.Progress {
			name := p.ScenarioDetails.NameDisplay
			if name == "" {
				name = fmt.Sprintf("Scenario %d", p.Scenario)
			}
			r.printf("  %-24s %s\n", name, p.Status.Label())
		}
		r.printf("  solved %d, in progress %d, unsolved %d\n",
			s.StatusCounts[domain.StatusSolved], s.StatusCounts[domain.StatusInProgress], s.StatusCounts[domain.StatusUnsolved])
	}
	r.printf("\nBadges (%d)\n", s.BadgeCount)
	if s.BadgeCount == 0 {
		r.printf("  Earn %s to unlock your first badge.\n", r.xp(domain.XPPerBadge))
	}
	for _, b := range s.Badges {
		r.printf("  * %s\n", b)
	}
	if more := s.BadgeCount - len(s.Badges); more > 0 {
		r.printf("  ... and %d more\n", more)
	}
}

func (r *renderer) wizardStep(w *app.Wizard) {
	info := w.Info()
	r.printf("\n(%d/%d) %s\n%s\n", int(w.Step())+1, app.StepCount, info.Title, info.Description)
}
