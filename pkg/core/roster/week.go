package roster

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// WeekRef identifies one duty week
type WeekRef struct {
	Week int `yaml:"week"`
	Year int `yaml:"year"`
}

func (w WeekRef) String() string {
	return fmt.Sprintf("%d/%d", w.Week, w.Year)
}

// dateOnly truncates t to midnight UTC of its calendar date
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekNumber returns the ISO-8601 week number of date.
// The date is shifted to the Thursday of its week (Monday=1..Sunday=7) and the
// week is counted from January 1st of that Thursday's year.
func WeekNumber(date time.Time) int {
	d := dateOnly(date)

	dayNum := int(d.Weekday())
	if dayNum == 0 {
		dayNum = 7
	}
	d = d.AddDate(0, 0, 4-dayNum)

	yearStart := time.Date(d.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	days := int(d.Sub(yearStart).Hours() / 24)

	// ceil((days + 1) / 7)
	return (days + 7) / 7
}

// CurrentWeek returns the week number and calendar year of now
func CurrentWeek(now time.Time) WeekRef {
	return WeekRef{Week: WeekNumber(now), Year: now.Year()}
}

// WeekDates returns the Monday..Friday dates of the given week.
//
// The week start is approximated as January 1st + (week-1)*7 days and then
// snapped to the Monday of that calendar week (a Sunday snaps forward). This is
// not full ISO anchoring: in years where January 1st falls on Friday, Saturday
// or Sunday the dates are one week ahead of WeekNumber's numbering.
func WeekDates(week, year int) []time.Time {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	weekStart := jan1.AddDate(0, 0, (week-1)*7)

	monday := weekStart.AddDate(0, 0, -int(weekStart.Weekday())+1)

	dates := make([]time.Time, len(DutyDays))
	for i := range DutyDays {
		dates[i] = monday.AddDate(0, 0, i)
	}
	return dates
}

// WeekStart returns the Monday of the given week
func WeekStart(week, year int) time.Time {
	return WeekDates(week, year)[0]
}

// FormatWeekRange formats a week as "D.M - D.M.YYYY"
func FormatWeekRange(week, year int) string {
	dates := WeekDates(week, year)
	start := dates[0]
	end := dates[len(dates)-1]

	return fmt.Sprintf("%d.%d - %d.%d.%d",
		start.Day(), int(start.Month()),
		end.Day(), int(end.Month()),
		year,
	)
}

// UpcomingWeeks lists the weeks from `before` weeks ago to `after` weeks ahead of now.
// Each week is anchored on its Thursday so that week number and year always agree.
func UpcomingWeeks(now time.Time, before, after int) ([]WeekRef, error) {
	if before < 0 || after < 0 {
		return nil, fmt.Errorf("week range must not be negative, got before=%d after=%d", before, after)
	}

	today := dateOnly(now)
	dayNum := int(today.Weekday())
	if dayNum == 0 {
		dayNum = 7
	}
	thursday := today.AddDate(0, 0, 4-dayNum)

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: []rrule.Weekday{rrule.TH},
		Dtstart:   thursday.AddDate(0, 0, -7*before),
		Count:     before + after + 1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build week rule: %w", err)
	}

	occurrences := rule.All()
	weeks := make([]WeekRef, 0, len(occurrences))
	for _, th := range occurrences {
		weeks = append(weeks, WeekRef{Week: WeekNumber(th), Year: th.Year()})
	}
	return weeks, nil
}
