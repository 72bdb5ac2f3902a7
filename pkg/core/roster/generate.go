package roster

import (
	"fmt"
	"math/rand"
	"sort"
)

// GenerateInput holds the snapshot a roster is generated from
type GenerateInput struct {
	// Week is the target week
	Week WeekRef

	// TeacherIDs is the full staff list
	TeacherIDs []string

	// Areas is the duty area catalog, in any order
	Areas []DutyArea

	// Slots is the historical slot log used to balance load
	Slots []DutySlot

	// Closed days are left empty
	Closed ClosedDays
}

// GenerateOutcome is a complete replacement schedule plus the cells left short
type GenerateOutcome struct {
	Grid     Grid
	Warnings []UnderStaffed
}

type candidate struct {
	teacherID    string
	totalDuties  int
	weeklyDuties int
}

// Generate builds a full week's schedule with a load-balanced greedy fill.
//
// Teachers are ordered by lifetime duty count (ties broken by rng), then each
// day's areas are filled in priority order. Every required position goes to the
// first teacher in that order who is still eligible, scanning from the top again
// for each position. A teacher is eligible while under MaxWeeklyDuties and not
// yet on duty that day. Cells that cannot be filled are reported as UnderStaffed
// warnings. The input is never modified.
func Generate(input GenerateInput, rng *rand.Rand) (*GenerateOutcome, error) {
	if rng == nil {
		return nil, fmt.Errorf("random source is required")
	}
	for _, area := range input.Areas {
		if err := area.Validate(); err != nil {
			return nil, err
		}
	}

	areas := SortAreasByPriority(input.Areas)

	candidates := make([]*candidate, 0, len(input.TeacherIDs))
	for _, teacherID := range input.TeacherIDs {
		stats := TeacherDutyLoad(teacherID, input.Slots, input.Week.Week, input.Week.Year)
		candidates = append(candidates, &candidate{
			teacherID:   teacherID,
			totalDuties: stats.TotalDuties,
		})
	}

	// Shuffle then stable sort so equal loads end up in random order
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].totalDuties < candidates[j].totalDuties
	})

	grid := NewGrid(areas)
	outcome := &GenerateOutcome{Grid: grid, Warnings: []UnderStaffed{}}

	for _, day := range DutyDays {
		if input.Closed.IsClosed(day) {
			continue
		}

		for _, area := range areas {
			assigned := 0
			for assigned < area.Capacity {
				next := nextCandidate(candidates, grid, day)
				if next == nil {
					break
				}
				grid[day][area.ID] = append(grid[day][area.ID], next.teacherID)
				next.weeklyDuties++
				assigned++
			}

			if assigned < area.Capacity {
				outcome.Warnings = append(outcome.Warnings, UnderStaffed{
					Day:      day,
					AreaID:   area.ID,
					AreaName: area.Name,
					Required: area.Capacity,
					Assigned: assigned,
				})
			}
		}
	}

	return outcome, nil
}

// nextCandidate returns the first teacher in order who can still take a duty on day
func nextCandidate(candidates []*candidate, grid Grid, day Weekday) *candidate {
	for _, c := range candidates {
		if c.weeklyDuties < MaxWeeklyDuties && !grid.OnDay(day, c.teacherID) {
			return c
		}
	}
	return nil
}
