package roster

import "slices"

// Grid maps day -> area ID -> teacher IDs in assignment order
type Grid map[Weekday]map[string][]string

// NewGrid returns an empty grid with an entry for every duty day and area
func NewGrid(areas []DutyArea) Grid {
	grid := make(Grid, len(DutyDays))
	for _, day := range DutyDays {
		grid[day] = make(map[string][]string, len(areas))
		for _, area := range areas {
			grid[day][area.ID] = []string{}
		}
	}
	return grid
}

// Normalize fills in missing day and area entries so every cell exists.
// Entries for areas not in the list are kept.
func (g Grid) Normalize(areas []DutyArea) Grid {
	out := g.Clone()
	for _, day := range DutyDays {
		if out[day] == nil {
			out[day] = make(map[string][]string, len(areas))
		}
		for _, area := range areas {
			if out[day][area.ID] == nil {
				out[day][area.ID] = []string{}
			}
		}
	}
	return out
}

// Clone returns a deep copy of the grid
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for day, areas := range g {
		out[day] = make(map[string][]string, len(areas))
		for areaID, teacherIDs := range areas {
			out[day][areaID] = slices.Clone(teacherIDs)
			if out[day][areaID] == nil {
				out[day][areaID] = []string{}
			}
		}
	}
	return out
}

// Assignments returns the teachers assigned to an area on a day
func (g Grid) Assignments(day Weekday, areaID string) []string {
	return g[day][areaID]
}

// OnDay reports whether the teacher holds any duty on the day
func (g Grid) OnDay(day Weekday, teacherID string) bool {
	for _, teacherIDs := range g[day] {
		if slices.Contains(teacherIDs, teacherID) {
			return true
		}
	}
	return false
}

// DutyCount returns how many duties the teacher holds across the whole grid
func (g Grid) DutyCount(teacherID string) int {
	count := 0
	for _, areas := range g {
		for _, teacherIDs := range areas {
			if slices.Contains(teacherIDs, teacherID) {
				count++
			}
		}
	}
	return count
}

// TotalAssignments sums the number of assignments across all days and areas
func TotalAssignments(g Grid) int {
	total := 0
	for _, areas := range g {
		for _, teacherIDs := range areas {
			total += len(teacherIDs)
		}
	}
	return total
}
