package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNoAreas is returned when the store holds no duty areas
	ErrNoAreas = errors.New("no duty areas found, run seedAreas first")

	// ErrNoSchedule is returned when no schedule is saved for the requested week
	ErrNoSchedule = errors.New("no schedule saved for this week")
)

// Save stages, in the order they are written
const (
	StageSchedule   = "schedule"
	StageDeactivate = "deactivate"
	StageSlots      = "slots"
)

// PersistenceError reports which stage of a save failed. Stages before it were written.
type PersistenceError struct {
	Stage string
	Err   error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to save roster at stage %s: %v", e.Stage, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
