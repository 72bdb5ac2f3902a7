package sheetsclient

import (
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/okulnobet/duty-roster/pkg/core/roster"
)

// PublishedRosterRow is one duty area of a published roster
type PublishedRosterRow struct {
	Area     string
	Floor    string
	Teachers map[roster.Weekday][]string // display names per day
}

// PublishedRoster is a saved week laid out for the roster spreadsheet
type PublishedRoster struct {
	Week   int
	Year   int
	Closed map[roster.Weekday]string // closure reason per day
	Rows   []PublishedRosterRow
}

// TabTitle is the tab the roster is published to, e.g. "42. Hafta (12.10 - 16.10.2026)"
func (p *PublishedRoster) TabTitle() string {
	return fmt.Sprintf("%d. Hafta (%s)", p.Week, roster.FormatWeekRange(p.Week, p.Year))
}

// PublishRoster writes a roster to its week tab, creating the tab if needed.
// An existing tab is cleared and rewritten.
func (c *Client) PublishRoster(spreadsheetID string, published *PublishedRoster) (string, error) {
	tabTitle := published.TabTitle()

	existing, err := c.ListSheets(spreadsheetID)
	if err != nil {
		return "", err
	}

	if slices.Contains(existing, tabTitle) {
		if err := c.ClearValues(spreadsheetID, quoteTab(tabTitle)+"!A1:ZZ"); err != nil {
			return "", fmt.Errorf("failed to clear tab %s: %w", tabTitle, err)
		}
		c.logger.Debug("Cleared existing roster tab", zap.String("tab", tabTitle))
	} else if _, err := c.CreateSheet(spreadsheetID, tabTitle); err != nil {
		return "", fmt.Errorf("failed to create tab: %w", err)
	}

	if err := c.UpdateValues(spreadsheetID, quoteTab(tabTitle)+"!A1", buildRosterValues(published)); err != nil {
		return "", fmt.Errorf("failed to write roster to tab %s: %w", tabTitle, err)
	}

	return tabTitle, nil
}

// buildRosterValues lays the roster out as a title row, a blank row, a header row with one
// column per weekday and one row per area listing teacher names
func buildRosterValues(published *PublishedRoster) [][]interface{} {
	dates := roster.WeekDates(published.Week, published.Year)

	header := []interface{}{"Nöbet Yeri", "Kat"}
	for i, day := range roster.DutyDays {
		label := fmt.Sprintf("%s %s", day, dates[i].Format("02.01"))
		if reason, closed := published.Closed[day]; closed {
			label = fmt.Sprintf("%s (%s)", label, reason)
		}
		header = append(header, label)
	}

	values := [][]interface{}{
		{fmt.Sprintf("%d. Hafta Nöbet Çizelgesi (%s)", published.Week, roster.FormatWeekRange(published.Week, published.Year))},
		{},
		header,
	}

	for _, row := range published.Rows {
		sheetRow := []interface{}{row.Area, row.Floor}
		for _, day := range roster.DutyDays {
			sheetRow = append(sheetRow, strings.Join(row.Teachers[day], ", "))
		}
		values = append(values, sheetRow)
	}

	return values
}

// quoteTab quotes a tab title for use in A1 notation
func quoteTab(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}
