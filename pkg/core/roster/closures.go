package roster

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// ClosureRule marks the dates matched by an RFC 5545 recurrence rule as closed
type ClosureRule struct {
	RRule  string
	Reason string
}

// ClosedDays maps closed weekdays to the reason they are closed
type ClosedDays map[Weekday]string

// IsClosed reports whether day is closed
func (c ClosedDays) IsClosed(day Weekday) bool {
	_, ok := c[day]
	return ok
}

// ResolveClosures returns the weekdays of (week, year) matched by any of the rules.
// Rules without a DTSTART are anchored at January 1st of the previous year.
func ResolveClosures(week, year int, rules []ClosureRule) (ClosedDays, error) {
	closed := ClosedDays{}
	if len(rules) == 0 {
		return closed, nil
	}

	dates := WeekDates(week, year)

	for i, rule := range rules {
		opt, err := rrule.StrToROption(rule.RRule)
		if err != nil {
			return nil, fmt.Errorf("invalid closure rule %d: %w", i, err)
		}
		if opt.Dtstart.IsZero() {
			opt.Dtstart = time.Date(year-1, time.January, 1, 0, 0, 0, 0, time.UTC)
		}

		r, err := rrule.NewRRule(*opt)
		if err != nil {
			return nil, fmt.Errorf("invalid closure rule %d: %w", i, err)
		}

		for d, date := range dates {
			endOfDay := date.AddDate(0, 0, 1).Add(-time.Second)
			if len(r.Between(date, endOfDay, true)) > 0 {
				if _, already := closed[DutyDays[d]]; !already {
					closed[DutyDays[d]] = rule.Reason
				}
			}
		}
	}

	return closed, nil
}
