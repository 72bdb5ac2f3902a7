package roster

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// MaxWeeklyDuties is the most duties one teacher may hold within a single week
const MaxWeeklyDuties = 2

// Weekday is one of the duty day labels in DutyDays
type Weekday string

const (
	Monday    Weekday = "Pazartesi"
	Tuesday   Weekday = "Salı"
	Wednesday Weekday = "Çarşamba"
	Thursday  Weekday = "Perşembe"
	Friday    Weekday = "Cuma"
)

// DutyDays lists the duty weekdays in order
var DutyDays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}

var englishDayNames = map[string]Weekday{
	"monday":    Monday,
	"tuesday":   Tuesday,
	"wednesday": Wednesday,
	"thursday":  Thursday,
	"friday":    Friday,
}

// IsValid reports whether d is one of DutyDays
func (d Weekday) IsValid() bool {
	return d.Index() >= 0
}

// Index returns the position of d in DutyDays, or -1
func (d Weekday) Index() int {
	for i, day := range DutyDays {
		if day == d {
			return i
		}
	}
	return -1
}

// ParseWeekday accepts a duty day label ("Pazartesi") or an English day name ("monday")
func ParseWeekday(s string) (Weekday, error) {
	s = strings.TrimSpace(s)
	for _, day := range DutyDays {
		if strings.EqualFold(string(day), s) {
			return day, nil
		}
	}
	if day, ok := englishDayNames[strings.ToLower(s)]; ok {
		return day, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDay, s)
}

// DutyArea is a post teachers can be assigned to
type DutyArea struct {
	ID          string    `yaml:"id"`
	Name        string    `yaml:"name" validate:"required"`
	Floor       string    `yaml:"floor"`
	Capacity    int       `yaml:"capacity" validate:"min=1"`
	Priority    int       `yaml:"priority" validate:"min=1"`
	IsActive    bool      `yaml:"isActive"`
	Description string    `yaml:"description,omitempty"`
	CreatedAt   time.Time `yaml:"createdAt"`
}

var validate = validator.New()

// Validate checks the area's invariants
func (a DutyArea) Validate() error {
	if err := validate.Struct(a); err != nil {
		return fmt.Errorf("invalid duty area %q: %w", a.Name, err)
	}
	return nil
}

// SortAreasByPriority returns a copy of areas ordered by ascending priority
func SortAreasByPriority(areas []DutyArea) []DutyArea {
	sorted := make([]DutyArea, len(areas))
	copy(sorted, areas)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority < sorted[j].Priority
	})
	return sorted
}

// DutySlot is one committed assignment of a teacher to an area on a day of a week
type DutySlot struct {
	ID        string
	TeacherID string
	AreaID    string
	Day       Weekday
	Week      int
	Year      int
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DutySchedule is the saved roster for one week
type DutySchedule struct {
	ID        string
	Week      int
	Year      int
	Schedule  Grid
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TeacherDutyStats is derived from the slot log, never stored
type TeacherDutyStats struct {
	TeacherID     string
	WeeklyDuties  int
	MonthlyDuties int
	TotalDuties   int
	LastDutyDate  *time.Time
}
