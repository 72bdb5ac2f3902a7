package drafts

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/okulnobet/duty-roster/pkg/core/roster"
)

// ErrNotFound is returned when no draft exists for a week
var ErrNotFound = errors.New("draft not found")

// Draft is the unsaved grid of an editing session
type Draft struct {
	Week      roster.WeekRef `yaml:"week"`
	Grid      roster.Grid    `yaml:"grid"`
	UpdatedAt time.Time      `yaml:"updatedAt"`
}

// Store keeps one YAML draft file per week in a directory
type Store struct {
	dir string
	now func() time.Time
}

// NewStore creates a store writing to dir. The directory is created on first save.
func NewStore(dir string) *Store {
	return &Store{dir: dir, now: time.Now}
}

func (s *Store) path(week roster.WeekRef) string {
	return filepath.Join(s.dir, fmt.Sprintf("%d-W%02d.yaml", week.Year, week.Week))
}

// Save writes the grid as the draft for week, replacing any previous draft
func (s *Store) Save(week roster.WeekRef, grid roster.Grid) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create draft directory: %w", err)
	}

	data, err := yaml.Marshal(Draft{Week: week, Grid: grid, UpdatedAt: s.now().UTC()})
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}

	// Written to a temp file and renamed into place
	tmp := s.path(week) + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write draft: %w", err)
	}
	if err := os.Rename(tmp, s.path(week)); err != nil {
		return fmt.Errorf("failed to write draft: %w", err)
	}

	return nil
}

// Load reads the draft for week, returning ErrNotFound if there is none
func (s *Store) Load(week roster.WeekRef) (*Draft, error) {
	data, err := os.ReadFile(s.path(week))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w for week %s", ErrNotFound, week)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read draft: %w", err)
	}

	var draft Draft
	if err := yaml.Unmarshal(data, &draft); err != nil {
		return nil, fmt.Errorf("failed to parse draft %s: %w", s.path(week), err)
	}
	if draft.Week != week {
		return nil, fmt.Errorf("draft %s is for week %s, not %s", s.path(week), draft.Week, week)
	}
	if draft.Grid == nil {
		draft.Grid = roster.Grid{}
	}

	return &draft, nil
}

// Delete removes the draft for week. Deleting a missing draft is not an error.
func (s *Store) Delete(week roster.WeekRef) error {
	if err := os.Remove(s.path(week)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}

// List returns the weeks that have a draft, oldest first
func (s *Store) List() ([]roster.WeekRef, error) {
	matches, err := filepath.Glob(filepath.Join(s.dir, "*-W*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}

	weeks := make([]roster.WeekRef, 0, len(matches))
	for _, match := range matches {
		var week roster.WeekRef
		if _, err := fmt.Sscanf(filepath.Base(match), "%d-W%d.yaml", &week.Year, &week.Week); err != nil {
			continue
		}
		weeks = append(weeks, week)
	}

	sort.Slice(weeks, func(i, j int) bool {
		if weeks[i].Year != weeks[j].Year {
			return weeks[i].Year < weeks[j].Year
		}
		return weeks[i].Week < weeks[j].Week
	})

	return weeks, nil
}
