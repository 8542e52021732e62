package services

import (
	"time"

	"github.com/warsom77/to-do-list/internal/models"
)

// weekOrder fixes the presentation order of the counters, Monday first.
var weekOrder = [...]time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

type DayPoints struct {
	Day    string `json:"day"`
	Points int    `json:"points"`
}

// ResetDue reports whether the weekly counter reset should fire. The
// gate is Monday-only with an hour floor, and the stored reset date
// must differ from today so the reset fires at most once per calendar
// day.
func ResetDue(now time.Time, lastReset time.Time, location *time.Location) bool {
	if location == nil {
		location = time.UTC
	}
	localNow := now.In(location)
	if localNow.Weekday() != time.Monday || localNow.Hour() < 1 {
		return false
	}

	nowYear, nowMonth, nowDay := localNow.Date()
	lastYear, lastMonth, lastDay := lastReset.In(location).Date()
	return nowYear != lastYear || nowMonth != lastMonth || nowDay != lastDay
}

func PointsOn(user models.User, day time.Weekday) int {
	switch day {
	case time.Monday:
		return user.PointMon
	case time.Tuesday:
		return user.PointTue
	case time.Wednesday:
		return user.PointWed
	case time.Thursday:
		return user.PointThu
	case time.Friday:
		return user.PointFri
	case time.Saturday:
		return user.PointSat
	case time.Sunday:
		return user.PointSun
	}
	return 0
}

// WeeklyTally flattens the seven counters into the Monday..Sunday
// presentation order.
func WeeklyTally(user models.User) []DayPoints {
	tally := make([]DayPoints, 0, len(weekOrder))
	for _, day := range weekOrder {
		tally = append(tally, DayPoints{
			Day:    day.String(),
			Points: PointsOn(user, day),
		})
	}
	return tally
}
