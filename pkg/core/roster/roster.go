package roster

import (
	"fmt"
	"slices"
)

// Roster is the schedule of one week under edit.
// It is owned by a single editing session and is not safe for concurrent use.
type Roster struct {
	week   WeekRef
	areas  []DutyArea
	byID   map[string]DutyArea
	closed ClosedDays
	grid   Grid
}

// NewRoster starts an editing session over grid for the given week and areas.
// A nil grid starts empty. The grid is copied and normalised.
func NewRoster(week WeekRef, areas []DutyArea, grid Grid, closed ClosedDays) *Roster {
	sorted := SortAreasByPriority(areas)

	byID := make(map[string]DutyArea, len(sorted))
	for _, area := range sorted {
		byID[area.ID] = area
	}

	if grid == nil {
		grid = NewGrid(sorted)
	} else {
		grid = grid.Normalize(sorted)
	}
	if closed == nil {
		closed = ClosedDays{}
	}

	return &Roster{
		week:   week,
		areas:  sorted,
		byID:   byID,
		closed: closed,
		grid:   grid,
	}
}

// Week returns the week being edited
func (r *Roster) Week() WeekRef {
	return r.week
}

// Areas returns the areas in priority order
func (r *Roster) Areas() []DutyArea {
	return slices.Clone(r.areas)
}

// Area looks up an area by ID
func (r *Roster) Area(areaID string) (DutyArea, bool) {
	area, ok := r.byID[areaID]
	return area, ok
}

// Closed returns the closed days of the week
func (r *Roster) Closed() ClosedDays {
	return r.closed
}

// Grid returns a copy of the current schedule
func (r *Roster) Grid() Grid {
	return r.grid.Clone()
}

// Assignments returns a copy of the teachers assigned to an area on a day
func (r *Roster) Assignments(day Weekday, areaID string) []string {
	return slices.Clone(r.grid.Assignments(day, areaID))
}

// WeeklyCount returns the teacher's number of duties in the current schedule
func (r *Roster) WeeklyCount(teacherID string) int {
	return r.grid.DutyCount(teacherID)
}

// TotalAssignments returns the number of assignments in the current schedule
func (r *Roster) TotalAssignments() int {
	return TotalAssignments(r.grid)
}

// HasUnsavedChanges reports whether the schedule holds any assignment
func (r *Roster) HasUnsavedChanges() bool {
	return r.TotalAssignments() > 0
}

// Check validates an assignment without applying it
func (r *Roster) Check(day Weekday, areaID, teacherID string) error {
	if !day.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownDay, day)
	}
	area, ok := r.byID[areaID]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownArea, areaID)
	}

	reject := func(reason error) error {
		return &AssignmentError{Reason: reason, Day: day, AreaID: areaID, TeacherID: teacherID}
	}

	if r.closed.IsClosed(day) {
		return reject(ErrDayClosed)
	}

	current := r.grid.Assignments(day, areaID)
	if slices.Contains(current, teacherID) {
		return reject(ErrAlreadyAssigned)
	}
	if len(current) >= area.Capacity {
		return reject(ErrCapacityExceeded)
	}
	if r.grid.DutyCount(teacherID) >= MaxWeeklyDuties {
		return reject(ErrWeeklyLimitReached)
	}
	if r.grid.OnDay(day, teacherID) {
		return reject(ErrDailyConflict)
	}

	return nil
}

// Assign appends the teacher to an area on a day.
// The schedule is unchanged when an error is returned.
func (r *Roster) Assign(day Weekday, areaID, teacherID string) error {
	if err := r.Check(day, areaID, teacherID); err != nil {
		return err
	}
	r.grid[day][areaID] = append(r.grid[day][areaID], teacherID)
	return nil
}

// Unassign removes the teacher from an area on a day.
// Removing a teacher who is not assigned is a no-op.
func (r *Roster) Unassign(day Weekday, areaID, teacherID string) error {
	if !day.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownDay, day)
	}

	current := r.grid[day][areaID]
	idx := slices.Index(current, teacherID)
	if idx < 0 {
		return nil
	}
	r.grid[day][areaID] = slices.Delete(slices.Clone(current), idx, idx+1)
	return nil
}

// Reset clears every assignment once confirm returns true
func (r *Roster) Reset(confirm func() bool) error {
	if confirm == nil || !confirm() {
		return ErrResetNotConfirmed
	}
	r.grid = NewGrid(r.areas)
	return nil
}

// Replace discards the current schedule in favour of grid
func (r *Roster) Replace(grid Grid) {
	r.grid = grid.Normalize(r.areas)
}

// EligibleTeachers filters teacherIDs to those that could be assigned to the area on the day
func (r *Roster) EligibleTeachers(day Weekday, areaID string, teacherIDs []string) []string {
	eligible := make([]string, 0, len(teacherIDs))
	for _, teacherID := range teacherIDs {
		if r.Check(day, areaID, teacherID) == nil {
			eligible = append(eligible, teacherID)
		}
	}
	return eligible
}
