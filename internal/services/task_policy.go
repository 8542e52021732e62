package services

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/warsom77/to-do-list/internal/models"
)

// UrgentWindow is how close a deadline has to be before an ongoing task
// counts as urgent.
const UrgentWindow = 24 * time.Hour

type pointRange struct {
	min int
	max int
}

var priorityPointRanges = map[string]pointRange{
	models.PriorityLow:    {min: 1, max: 5},
	models.PriorityMedium: {min: 6, max: 10},
	models.PriorityHigh:   {min: 11, max: 15},
}

// legacyPriorityNames maps the Indonesian priority labels still present
// in older task documents onto the canonical set.
var legacyPriorityNames = map[string]string{
	"rendah": models.PriorityLow,
	"sedang": models.PriorityMedium,
	"tinggi": models.PriorityHigh,
}

func CanonicalPriority(raw string) string {
	priority := strings.ToLower(strings.TrimSpace(raw))
	if canonical, ok := legacyPriorityNames[priority]; ok {
		return canonical
	}
	return priority
}

// PointRangeForPriority returns the closed reward range for a priority.
// Unrecognized priorities fall back to the low range.
func PointRangeForPriority(priority string) (int, int) {
	bounds, ok := priorityPointRanges[CanonicalPriority(priority)]
	if !ok {
		bounds = priorityPointRanges[models.PriorityLow]
	}
	return bounds.min, bounds.max
}

// RollTaskPoint draws the reward uniformly from the priority range.
func RollTaskPoint(priority string) int {
	min, max := PointRangeForPriority(priority)
	return min + rand.IntN(max-min+1)
}

// ClassifyDeadline derives the task type from the deadline: already
// past means missed, within the urgent window means urgent, anything
// further out is common.
func ClassifyDeadline(deadline time.Time, now time.Time) string {
	if now.After(deadline) {
		return models.TypeMissed
	}
	if deadline.Sub(now) <= UrgentWindow {
		return models.TypeUrgent
	}
	return models.TypeCommon
}
