package roster

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAreas() []DutyArea {
	return []DutyArea{
		{ID: "bahce", Name: "Bahçe", Capacity: 3, Priority: 5, IsActive: true},
		{ID: "kat3", Name: "3. Kat", Capacity: 2, Priority: 1, IsActive: true},
		{ID: "atolye", Name: "Atölye Katı", Capacity: 1, Priority: 6, IsActive: true},
	}
}

func newTestRoster() *Roster {
	return NewRoster(WeekRef{Week: 42, Year: 2026}, testAreas(), nil, nil)
}

func TestNewRoster_EmptyGridHasEveryCell(t *testing.T) {
	r := newTestRoster()

	grid := r.Grid()
	require.Len(t, grid, 5)
	for _, day := range DutyDays {
		require.Len(t, grid[day], 3)
		for _, area := range testAreas() {
			assert.NotNil(t, grid[day][area.ID])
			assert.Empty(t, grid[day][area.ID])
		}
	}
	assert.False(t, r.HasUnsavedChanges())
}

func TestNewRoster_AreasInPriorityOrder(t *testing.T) {
	r := newTestRoster()

	areas := r.Areas()
	require.Len(t, areas, 3)
	assert.Equal(t, "kat3", areas[0].ID)
	assert.Equal(t, "bahce", areas[1].ID)
	assert.Equal(t, "atolye", areas[2].ID)
}

func TestNewRoster_NormalisesPartialGrid(t *testing.T) {
	grid := Grid{Monday: {"kat3": {"t1"}}}

	r := NewRoster(WeekRef{Week: 42, Year: 2026}, testAreas(), grid, nil)

	assert.Equal(t, []string{"t1"}, r.Assignments(Monday, "kat3"))
	assert.Empty(t, r.Assignments(Friday, "bahce"))
	assert.Len(t, grid, 1, "input grid must not be modified")
}

func TestAssign_AppendsInOrder(t *testing.T) {
	r := newTestRoster()

	require.NoError(t, r.Assign(Monday, "bahce", "t1"))
	require.NoError(t, r.Assign(Monday, "bahce", "t2"))
	require.NoError(t, r.Assign(Monday, "bahce", "t3"))

	assert.Equal(t, []string{"t1", "t2", "t3"}, r.Assignments(Monday, "bahce"))
	assert.Equal(t, 3, r.TotalAssignments())
	assert.True(t, r.HasUnsavedChanges())
}

func TestAssign_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(r *Roster)
		day      Weekday
		areaID   string
		expected error
	}{
		{
			name:     "already assigned",
			setup:    func(r *Roster) { _ = r.Assign(Monday, "kat3", "t1") },
			day:      Monday,
			areaID:   "kat3",
			expected: ErrAlreadyAssigned,
		},
		{
			name:     "capacity exceeded",
			setup:    func(r *Roster) { _ = r.Assign(Monday, "atolye", "t2") },
			day:      Monday,
			areaID:   "atolye",
			expected: ErrCapacityExceeded,
		},
		{
			name: "weekly limit reached",
			setup: func(r *Roster) {
				_ = r.Assign(Monday, "kat3", "t1")
				_ = r.Assign(Tuesday, "kat3", "t1")
			},
			day:      Wednesday,
			areaID:   "bahce",
			expected: ErrWeeklyLimitReached,
		},
		{
			name:     "daily conflict",
			setup:    func(r *Roster) { _ = r.Assign(Monday, "kat3", "t1") },
			day:      Monday,
			areaID:   "bahce",
			expected: ErrDailyConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRoster()
			tt.setup(r)
			before := r.Grid()

			err := r.Assign(tt.day, tt.areaID, "t1")

			assert.ErrorIs(t, err, tt.expected)
			var assignErr *AssignmentError
			require.True(t, errors.As(err, &assignErr))
			assert.Equal(t, tt.day, assignErr.Day)
			assert.Equal(t, tt.areaID, assignErr.AreaID)
			assert.Equal(t, "t1", assignErr.TeacherID)
			assert.Equal(t, before, r.Grid(), "rejected assignment must not change the schedule")
		})
	}
}

func TestAssign_ThirdDutyFails(t *testing.T) {
	r := newTestRoster()

	require.NoError(t, r.Assign(Monday, "kat3", "t1"))
	require.NoError(t, r.Assign(Thursday, "atolye", "t1"))

	err := r.Assign(Friday, "bahce", "t1")
	assert.ErrorIs(t, err, ErrWeeklyLimitReached)
	assert.Equal(t, 2, r.WeeklyCount("t1"))
}

func TestAssign_UnknownAreaAndDay(t *testing.T) {
	r := newTestRoster()

	assert.ErrorIs(t, r.Assign(Monday, "nowhere", "t1"), ErrUnknownArea)
	assert.ErrorIs(t, r.Assign(Weekday("Pazar"), "kat3", "t1"), ErrUnknownDay)
}

func TestAssign_ClosedDay(t *testing.T) {
	r := NewRoster(WeekRef{Week: 44, Year: 2026}, testAreas(), nil, ClosedDays{Thursday: "Cumhuriyet Bayramı"})

	assert.ErrorIs(t, r.Assign(Thursday, "kat3", "t1"), ErrDayClosed)
	assert.NoError(t, r.Assign(Friday, "kat3", "t1"))
}

func TestUnassign_RestoresPriorSequence(t *testing.T) {
	r := newTestRoster()
	require.NoError(t, r.Assign(Monday, "bahce", "t1"))
	require.NoError(t, r.Assign(Monday, "bahce", "t2"))
	before := r.Grid()

	require.NoError(t, r.Assign(Monday, "bahce", "t3"))
	require.NoError(t, r.Unassign(Monday, "bahce", "t3"))

	assert.Equal(t, before, r.Grid())
}

func TestUnassign_KeepsOrderOfOthers(t *testing.T) {
	r := newTestRoster()
	require.NoError(t, r.Assign(Monday, "bahce", "t1"))
	require.NoError(t, r.Assign(Monday, "bahce", "t2"))
	require.NoError(t, r.Assign(Monday, "bahce", "t3"))

	require.NoError(t, r.Unassign(Monday, "bahce", "t2"))

	assert.Equal(t, []string{"t1", "t3"}, r.Assignments(Monday, "bahce"))
}

func TestUnassign_AbsentIsNoop(t *testing.T) {
	r := newTestRoster()
	require.NoError(t, r.Assign(Monday, "bahce", "t1"))
	before := r.Grid()

	assert.NoError(t, r.Unassign(Monday, "bahce", "t9"))
	assert.NoError(t, r.Unassign(Tuesday, "nowhere", "t1"))
	assert.Equal(t, before, r.Grid())
}

func TestUnassign_UnknownDay(t *testing.T) {
	r := newTestRoster()
	assert.ErrorIs(t, r.Unassign(Weekday("Pazar"), "kat3", "t1"), ErrUnknownDay)
}

func TestReset(t *testing.T) {
	r := newTestRoster()
	require.NoError(t, r.Assign(Monday, "kat3", "t1"))

	err := r.Reset(func() bool { return false })
	assert.ErrorIs(t, err, ErrResetNotConfirmed)
	assert.Equal(t, 1, r.TotalAssignments())

	assert.ErrorIs(t, r.Reset(nil), ErrResetNotConfirmed)

	require.NoError(t, r.Reset(func() bool { return true }))
	assert.Equal(t, 0, r.TotalAssignments())
	assert.NotNil(t, r.Assignments(Monday, "kat3"))
}

func TestReplace(t *testing.T) {
	r := newTestRoster()
	require.NoError(t, r.Assign(Monday, "kat3", "t1"))

	r.Replace(Grid{Tuesday: {"bahce": {"t2", "t3"}}})

	assert.Empty(t, r.Assignments(Monday, "kat3"))
	assert.Equal(t, []string{"t2", "t3"}, r.Assignments(Tuesday, "bahce"))
	assert.Equal(t, 2, r.TotalAssignments())
}

func TestGrid_CopiesAreIndependent(t *testing.T) {
	r := newTestRoster()
	require.NoError(t, r.Assign(Monday, "kat3", "t1"))

	grid := r.Grid()
	grid[Monday]["kat3"][0] = "changed"
	assignments := r.Assignments(Monday, "kat3")
	assignments[0] = "changed"

	assert.Equal(t, []string{"t1"}, r.Assignments(Monday, "kat3"))
}

func TestEligibleTeachers(t *testing.T) {
	r := newTestRoster()
	require.NoError(t, r.Assign(Monday, "kat3", "t1"))
	require.NoError(t, r.Assign(Tuesday, "kat3", "t2"))
	require.NoError(t, r.Assign(Wednesday, "kat3", "t2"))

	eligible := r.EligibleTeachers(Monday, "bahce", []string{"t1", "t2", "t3", "t4"})

	// t1 is on duty Monday, t2 holds two duties
	assert.Equal(t, []string{"t3", "t4"}, eligible)
}

func TestTotalAssignments(t *testing.T) {
	grid := Grid{
		Monday:  {"a": {"t1", "t2"}, "b": {"t3"}},
		Tuesday: {"a": {}},
	}
	assert.Equal(t, 3, TotalAssignments(grid))
	assert.Equal(t, 0, TotalAssignments(nil))
}
