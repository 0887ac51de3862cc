package app

import (
	"context"
	"testing"

	"vestr-cli/internal/domain"
)

func TestProfileServerValuesWin(t *testing.T) {
	backend := &fakeBackend{
		profiles: []domain.UserProfile{
			{User: domain.User{Username: "maya"}, Avatar: "Maya", Goal: "Career Break", XP: 150},
			{User: domain.User{Username: "clara"}, XP: 900},
		},
		progress: []domain.UserScenarioProgress{
			{Scenario: 1, Status: domain.StatusSolved},
			{Scenario: 2, Status: domain.StatusInProgress},
			{Scenario: 3, Status: domain.StatusSolved},
		},
	}
	local := domain.UserData{Username: "local", Avatar: "Professional Clara", Goal: "Family Fund"}.WithXP(10)
	v := NewProfileView(backend, &local)
	v.Load(context.Background())

	s := v.Summary()
	if s.Username != "maya" || s.Avatar != "Maya" || s.Goal != "Career Break" || s.XP != 150 {
		t.Fatalf("unexpected summary %+v", s)
	}
	if len(s.Badges) != 1 || s.Badges[0] != "100 XP" || s.BadgeCount != 1 {
		t.Fatalf("expected one 100 XP badge, got %v (count %d)", s.Badges, s.BadgeCount)
	}
	if s.StatusCounts[domain.StatusSolved] != 2 || s.StatusCounts[domain.StatusInProgress] != 1 {
		t.Fatalf("unexpected status counts %v", s.StatusCounts)
	}
	if v.Loading() {
		t.Fatal("loading flag left set")
	}
}

func TestProfileFallsBackToLocalThenDefaults(t *testing.T) {
	backend := &fakeBackend{profErr: errBoom, progErr: errBoom}

	local := domain.UserData{Username: "maya", Goal: "Wealth Building"}.WithXP(250)
	v := NewProfileView(backend, &local)
	v.Load(context.Background())
	s := v.Summary()
	if s.Username != "maya" || s.Avatar != DefaultAvatar || s.Goal != "Wealth Building" || s.XP != 250 {
		t.Fatalf("unexpected summary %+v", s)
	}
	if len(s.Badges) != 2 || s.Badges[1] != "200 XP" {
		t.Fatalf("unexpected badges %v", s.Badges)
	}

	bare := NewProfileView(backend, nil)
	bare.Load(context.Background())
	s = bare.Summary()
	if s.Username != DefaultUsername || s.Goal != DefaultGoal || s.XP != 0 || len(s.Badges) != 0 {
		t.Fatalf("unexpected default summary %+v", s)
	}
}

func TestProfileEmptyListKeepsLocal(t *testing.T) {
	backend := &fakeBackend{profiles: []domain.UserProfile{}}
	local := domain.UserData{Username: "maya"}.WithXP(120)
	v := NewProfileView(backend, &local)
	v.Load(context.Background())
	if s := v.Summary(); s.Username != "maya" || s.XP != 120 {
		t.Fatalf("unexpected summary %+v", s)
	}
}

func TestProfileBoundsBadgeLabelsForHugeXP(t *testing.T) {
	backend := &fakeBackend{profiles: []domain.UserProfile{{User: domain.User{Username: "whale"}, XP: 1 << 40}}}
	v := NewProfileView(backend, nil)
	v.Load(context.Background())

	s := v.Summary()
	if len(s.Badges) != domain.MaxBadgeLabels {
		t.Fatalf("expected %d labels, got %d", domain.MaxBadgeLabels, len(s.Badges))
	}
	if s.BadgeCount != (1<<40)/domain.XPPerBadge {
		t.Fatalf("unexpected badge count %d", s.BadgeCount)
	}
}
