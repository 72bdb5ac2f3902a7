package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/okulnobet/duty-roster/pkg/core/roster"
)

// addWeekFlags registers --week and --year on cmd
func addWeekFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("week", "w", 0, "Week number (defaults to the current week)")
	cmd.Flags().IntP("year", "y", 0, "Year (defaults to the current year)")
}

// weekFromFlags reads --week and --year, falling back to the week containing now
func weekFromFlags(cmd *cobra.Command, now time.Time) (roster.WeekRef, error) {
	week, err := cmd.Flags().GetInt("week")
	if err != nil {
		return roster.WeekRef{}, err
	}
	year, err := cmd.Flags().GetInt("year")
	if err != nil {
		return roster.WeekRef{}, err
	}

	current := roster.CurrentWeek(now)
	if week == 0 {
		week = current.Week
		if year == 0 {
			year = current.Year
		}
	}
	if year == 0 {
		year = now.Year()
	}

	if week < 1 || week > 53 {
		return roster.WeekRef{}, fmt.Errorf("week must be between 1 and 53, got %d", week)
	}
	return roster.WeekRef{Week: week, Year: year}, nil
}
