package services

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/okulnobet/duty-roster/pkg/core/model"
	"github.com/okulnobet/duty-roster/pkg/core/roster"
)

// AreaTotal is the number of duties in one area over a week
type AreaTotal struct {
	Area     roster.DutyArea
	Duties   int
	Capacity int // area capacity times duty days
}

// TeacherTotal is the number of duties one teacher holds in a week
type TeacherTotal struct {
	TeacherID string
	Name      string
	Duties    int
}

// WeeklyReportResult summarises a saved week
type WeeklyReportResult struct {
	Week     roster.WeekRef
	Range    string
	Total    int
	Areas    []AreaTotal
	Teachers []TeacherTotal
}

// WeeklyReport summarises the saved schedule of week: totals per area in priority order
// and per teacher, most duties first then by name. It fails with ErrNoSchedule if the
// week was never saved.
func WeeklyReport(
	ctx context.Context,
	store OpenRosterStore,
	teachers TeacherSource,
	logger *zap.Logger,
	week roster.WeekRef,
) (*WeeklyReportResult, error) {
	areas, err := loadAreas(ctx, store)
	if err != nil {
		return nil, err
	}

	saved, err := loadSchedule(ctx, store, week)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoSchedule, week)
	}

	staff, err := teachers.ListTeachers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teachers: %w", err)
	}
	names := model.TeacherNames(staff)

	result := &WeeklyReportResult{
		Week:  week,
		Range: roster.FormatWeekRange(week.Week, week.Year),
		Total: roster.TotalAssignments(saved.Schedule),
	}

	for _, area := range areas {
		total := AreaTotal{Area: area, Capacity: area.Capacity * len(roster.DutyDays)}
		for _, day := range roster.DutyDays {
			total.Duties += len(saved.Schedule[day][area.ID])
		}
		result.Areas = append(result.Areas, total)
	}

	counts := make(map[string]int)
	for _, day := range roster.DutyDays {
		for _, teacherIDs := range saved.Schedule[day] {
			for _, teacherID := range teacherIDs {
				counts[teacherID]++
			}
		}
	}
	for teacherID, duties := range counts {
		result.Teachers = append(result.Teachers, TeacherTotal{
			TeacherID: teacherID,
			Name:      teacherName(names, teacherID),
			Duties:    duties,
		})
	}
	sortTeacherTotals(result.Teachers)

	logger.Debug("Built weekly report",
		zap.Int("week", week.Week),
		zap.Int("year", week.Year),
		zap.Int("total", result.Total))

	return result, nil
}

// sortTeacherTotals orders by duties descending, then by name
func sortTeacherTotals(totals []TeacherTotal) {
	byName := make([]model.Teacher, len(totals))
	for i, t := range totals {
		byName[i] = model.Teacher{ID: t.TeacherID, Name: t.Name}
	}
	model.SortTeachersByName(byName)

	rank := make(map[string]int, len(byName))
	for i, t := range byName {
		rank[t.ID] = i
	}

	sort.SliceStable(totals, func(i, j int) bool {
		if totals[i].Duties != totals[j].Duties {
			return totals[i].Duties > totals[j].Duties
		}
		return rank[totals[i].TeacherID] < rank[totals[j].TeacherID]
	})
}
