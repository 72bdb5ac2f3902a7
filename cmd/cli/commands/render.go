package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/okulnobet/duty-roster/pkg/core/roster"
)

// printRoster writes the roster day by day with one line per area
func printRoster(w io.Writer, r *roster.Roster, names map[string]string) {
	week := r.Week()
	dates := roster.WeekDates(week.Week, week.Year)
	areas := r.Areas()

	width := 0
	for _, area := range areas {
		width = max(width, len([]rune(area.Name)))
	}

	fmt.Fprintf(w, "\n%d. Hafta (%s)\n", week.Week, roster.FormatWeekRange(week.Week, week.Year))

	for i, day := range roster.DutyDays {
		fmt.Fprintf(w, "\n%s %s", day, dates[i].Format("02.01"))
		if reason, closed := r.Closed()[day]; closed {
			fmt.Fprintf(w, "  KAPALI: %s\n", reason)
			continue
		}
		fmt.Fprintln(w)

		for _, area := range areas {
			assigned := r.Assignments(day, area.ID)
			display := make([]string, len(assigned))
			for j, teacherID := range assigned {
				display[j] = displayName(names, teacherID)
			}
			fmt.Fprintf(w, "  %-*s  %d/%d  %s\n", width, area.Name, len(assigned), area.Capacity, strings.Join(display, ", "))
		}
	}

	fmt.Fprintf(w, "\nToplam atama: %d\n", r.TotalAssignments())
}

// printWarnings writes one line per under-staffed cell
func printWarnings(w io.Writer, warnings []roster.UnderStaffed) {
	if len(warnings) == 0 {
		return
	}
	fmt.Fprintf(w, "\n⚠️  %d nöbet yeri eksik kaldı:\n", len(warnings))
	for _, warning := range warnings {
		fmt.Fprintf(w, "  - %s\n", warning.Error())
	}
}

func displayName(names map[string]string, teacherID string) string {
	if name, ok := names[teacherID]; ok {
		return name
	}
	return teacherID
}
