package services

import (
	"testing"
	"time"

	"github.com/warsom77/to-do-list/internal/models"
)

var jakartaForTest = time.FixedZone("WIB", 7*60*60)

func mustParsePolicyTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02 15:04", value, jakartaForTest)
	if err != nil {
		t.Fatalf("parse time %q: %v", value, err)
	}
	return parsed
}

func TestResetDue(t *testing.T) {
	tests := []struct {
		name      string
		now       string
		lastReset string
		want      bool
	}{
		{
			name:      "monday after hour floor with stale reset",
			now:       "2026-08-31 01:00", // Monday
			lastReset: "2026-08-24 01:30",
			want:      true,
		},
		{
			name:      "monday before hour floor",
			now:       "2026-08-31 00:59",
			lastReset: "2026-08-24 01:30",
			want:      false,
		},
		{
			name:      "monday but already reset today",
			now:       "2026-08-31 09:00",
			lastReset: "2026-08-31 01:05",
			want:      false,
		},
		{
			name:      "tuesday never fires",
			now:       "2026-09-01 12:00",
			lastReset: "2026-08-24 01:30",
			want:      false,
		},
		{
			name:      "sunday never fires",
			now:       "2026-08-30 12:00",
			lastReset: "2026-08-17 01:30",
			want:      false,
		},
		{
			name:      "monday late evening still fires",
			now:       "2026-08-31 23:30",
			lastReset: "2026-08-24 01:30",
			want:      true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			now := mustParsePolicyTime(t, testCase.now)
			lastReset := mustParsePolicyTime(t, testCase.lastReset)
			if got := ResetDue(now, lastReset, jakartaForTest); got != testCase.want {
				t.Fatalf("ResetDue(%s, %s) = %v, want %v", testCase.now, testCase.lastReset, got, testCase.want)
			}
		})
	}
}

func TestResetDueFiresAtMostOncePerDay(t *testing.T) {
	firstCall := mustParsePolicyTime(t, "2026-08-31 01:00")
	if !ResetDue(firstCall, mustParsePolicyTime(t, "2026-08-24 01:30"), jakartaForTest) {
		t.Fatal("expected first Monday call to fire")
	}

	// After the reset lands, last_reset carries today's date, so any
	// later call on the same day must not fire again.
	laterSameDay := mustParsePolicyTime(t, "2026-08-31 18:00")
	if ResetDue(laterSameDay, firstCall, jakartaForTest) {
		t.Fatal("expected same-day repeat call not to fire")
	}
}

func TestResetDueUsesReferenceZoneDate(t *testing.T) {
	// Sunday 18:30 UTC is already Monday 01:30 in UTC+7.
	nowUTC := time.Date(2026, 8, 30, 18, 30, 0, 0, time.UTC)
	lastReset := mustParsePolicyTime(t, "2026-08-24 01:30")
	if !ResetDue(nowUTC, lastReset, jakartaForTest) {
		t.Fatal("expected reset to fire for Monday in the reference zone")
	}
}

func TestWeeklyTallyOrder(t *testing.T) {
	user := models.User{
		PointMon: 1,
		PointTue: 2,
		PointWed: 3,
		PointThu: 4,
		PointFri: 5,
		PointSat: 6,
		PointSun: 7,
	}

	tally := WeeklyTally(user)
	wantDays := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	if len(tally) != len(wantDays) {
		t.Fatalf("expected %d entries, got %d", len(wantDays), len(tally))
	}
	for index, entry := range tally {
		if entry.Day != wantDays[index] {
			t.Fatalf("entry %d: expected day %s, got %s", index, wantDays[index], entry.Day)
		}
		if entry.Points != index+1 {
			t.Fatalf("entry %d: expected %d points, got %d", index, index+1, entry.Points)
		}
	}
}
