package domain

import "strconv"

// XPPerBadge is the experience needed for each milestone badge.
const XPPerBadge = 100

// BadgeCount returns how many milestones xp has unlocked.
func BadgeCount(xp int) int {
	if xp <= 0 {
		return 0
	}
	return xp / XPPerBadge
}

// MaxBadgeLabels bounds how many milestone labels Badges produces.
const MaxBadgeLabels = 50

// Badges returns the milestone labels unlocked by xp, lowest first, at most
// MaxBadgeLabels of them. BadgeCount has the full total.
func Badges(xp int) []string {
	n := min(BadgeCount(xp), MaxBadgeLabels)
	labels := make([]string, 0, n)
	for i := 0; i < n; i++ {
		labels = append(labels, strconv.Itoa(XPPerBadge*(i+1))+" XP")
	}
	return labels
}
