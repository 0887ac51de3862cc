package app

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"vestr-cli/internal/domain"
)

// Shown when neither the server nor local data has a value.
const (
	DefaultUsername = "John Doe"
	DefaultAvatar   = "Maya"
	DefaultGoal     = "Career Break"
)

// ProfileSummary is the resolved content of the profile page.
type ProfileSummary struct {
	Username string
	Avatar   string
	Goal     string
	XP       int
	Progress []domain.UserScenarioProgress
	// Badges lists at most domain.MaxBadgeLabels labels; BadgeCount is the full total.
	Badges     []string
	BadgeCount int
	// StatusCounts tallies progress entries per status.
	StatusCounts map[domain.ProgressStatus]int
}

// ProfileView loads the server profile and scenario progress for display.
type ProfileView struct {
	mount
	source ProfileSource
	local  *domain.UserData

	loading  bool
	profile  *domain.UserProfile
	progress []domain.UserScenarioProgress
}

// NewProfileView builds a profile view; local may be nil.
func NewProfileView(source ProfileSource, local *domain.UserData) *ProfileView {
	var copied *domain.UserData
	if local != nil {
		u := *local
		copied = &u
	}
	return &ProfileView{source: source, local: copied}
}

// Load fetches the first listed profile and the progress list independently.
// Failures are logged and leave the defaults in place.
func (v *ProfileView) Load(ctx context.Context) {
	ctx, gen := v.begin(ctx, func() {
		v.loading = true
	})

	var g errgroup.Group
	g.Go(func() error {
		profiles, err := v.source.ListProfiles(ctx)
		if err != nil {
			slog.Error("failed to fetch profile", "error", err)
			return nil
		}
		if len(profiles) == 0 {
			return nil
		}
		first := profiles[0]
		v.commit(gen, func() { v.profile = &first })
		return nil
	})
	g.Go(func() error {
		progress, err := v.source.ListProgress(ctx)
		if err != nil {
			slog.Error("failed to fetch scenario progress", "error", err)
			return nil
		}
		v.commit(gen, func() { v.progress = progress })
		return nil
	})
	_ = g.Wait()

	v.commit(gen, func() { v.loading = false })
}

func (v *ProfileView) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loading
}

// Summary resolves each field: server profile, then local data, then the default.
func (v *ProfileView) Summary() ProfileSummary {
	v.mu.Lock()
	defer v.mu.Unlock()

	var server domain.UserProfile
	if v.profile != nil {
		server = *v.profile
	}
	var local domain.UserData
	if v.local != nil {
		local = *v.local
	}

	xp := 0
	switch {
	case v.profile != nil:
		xp = server.XP
	case local.XP != nil:
		xp = *local.XP
	}

	counts := make(map[domain.ProgressStatus]int)
	for _, p := range v.progress {
		counts[p.Status]++
	}

	return ProfileSummary{
		Username:     firstNonEmpty(server.User.Username, local.Username, DefaultUsername),
		Avatar:       firstNonEmpty(server.Avatar, local.Avatar, DefaultAvatar),
		Goal:         firstNonEmpty(server.Goal, local.Goal, DefaultGoal),
		XP:           xp,
		Badges:       domain.Badges(xp),
		BadgeCount:   domain.BadgeCount(xp),
		Progress:     append([]domain.UserScenarioProgress(nil), v.progress...),
		StatusCounts: counts,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
