package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slot(teacherID string, day Weekday, week, year int, active bool) DutySlot {
	return DutySlot{TeacherID: teacherID, AreaID: "area-1", Day: day, Week: week, Year: year, IsActive: active}
}

func TestTeacherDutyLoad_NoHistory(t *testing.T) {
	stats := TeacherDutyLoad("t1", nil, 42, 2026)

	assert.Equal(t, "t1", stats.TeacherID)
	assert.Equal(t, 0, stats.WeeklyDuties)
	assert.Equal(t, 0, stats.MonthlyDuties)
	assert.Equal(t, 0, stats.TotalDuties)
	assert.Nil(t, stats.LastDutyDate)
}

func TestTeacherDutyLoad_Counts(t *testing.T) {
	slots := []DutySlot{
		slot("t1", Monday, 42, 2026, true),
		slot("t1", Wednesday, 42, 2026, true),
		slot("t1", Tuesday, 41, 2026, true),  // starts 5 October
		slot("t1", Friday, 44, 2026, true),   // starts 26 October
		slot("t1", Monday, 40, 2026, false),  // inactive
		slot("t2", Monday, 42, 2026, true),   // someone else
		slot("t1", Thursday, 30, 2026, true), // July
	}

	stats := TeacherDutyLoad("t1", slots, 42, 2026)

	assert.Equal(t, 2, stats.WeeklyDuties)
	assert.Equal(t, 4, stats.MonthlyDuties)
	assert.Equal(t, 5, stats.TotalDuties)
}

func TestTeacherDutyLoad_LastDutyDateFollowsInputOrder(t *testing.T) {
	slots := []DutySlot{
		slot("t1", Monday, 44, 2026, true),
		slot("t1", Monday, 30, 2026, true),
	}

	stats := TeacherDutyLoad("t1", slots, 42, 2026)

	require.NotNil(t, stats.LastDutyDate)
	assert.Equal(t, WeekStart(30, 2026), *stats.LastDutyDate)
}

func TestTeacherDutyLoad_MonthBoundaryUsesWeekStart(t *testing.T) {
	// Week 40 of 2026 starts on 28 September, so it is not in October
	slots := []DutySlot{slot("t1", Friday, 40, 2026, true)}

	stats := TeacherDutyLoad("t1", slots, 42, 2026)

	assert.Equal(t, 0, stats.MonthlyDuties)
	assert.Equal(t, 1, stats.TotalDuties)
}
