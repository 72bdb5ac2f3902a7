package roster

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyAssigned    = errors.New("teacher is already assigned to this area")
	ErrCapacityExceeded   = errors.New("area capacity is full")
	ErrWeeklyLimitReached = errors.New("teacher already holds the weekly maximum of duties")
	ErrDailyConflict      = errors.New("teacher already has a duty in another area on this day")
	ErrUnderStaffed       = errors.New("not enough eligible teachers")
	ErrUnknownArea        = errors.New("unknown duty area")
	ErrUnknownDay         = errors.New("unknown duty day")
	ErrDayClosed          = errors.New("duty day is closed")
	ErrResetNotConfirmed  = errors.New("reset was not confirmed")
)

// AssignmentError describes why an assignment was rejected.
// It unwraps to one of the sentinel errors above.
type AssignmentError struct {
	Reason    error
	Day       Weekday
	AreaID    string
	TeacherID string
}

func (e *AssignmentError) Error() string {
	return fmt.Sprintf("cannot assign teacher %s to area %s on %s: %v", e.TeacherID, e.AreaID, e.Day, e.Reason)
}

func (e *AssignmentError) Unwrap() error {
	return e.Reason
}

// UnderStaffed is a generation warning for a day/area that could not reach capacity
type UnderStaffed struct {
	Day      Weekday
	AreaID   string
	AreaName string
	Required int
	Assigned int
}

func (w UnderStaffed) Error() string {
	return fmt.Sprintf("%s: %s günü yeterli öğretmen atanamadı (%d/%d)", w.AreaName, w.Day, w.Assigned, w.Required)
}

func (w UnderStaffed) Unwrap() error {
	return ErrUnderStaffed
}
