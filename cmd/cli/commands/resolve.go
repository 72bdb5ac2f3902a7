package commands

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/okulnobet/duty-roster/pkg/core/model"
	"github.com/okulnobet/duty-roster/pkg/core/roster"
)

// resolveArea finds an area by ID or case-insensitive name
func resolveArea(areas []roster.DutyArea, s string) (roster.DutyArea, error) {
	s = strings.TrimSpace(s)
	for _, area := range areas {
		if area.ID == s {
			return area, nil
		}
	}
	for _, area := range areas {
		if foldEqual(area.Name, s) {
			return area, nil
		}
	}
	return roster.DutyArea{}, fmt.Errorf("%w: %q", roster.ErrUnknownArea, s)
}

// resolveTeacher finds a teacher by ID, or by name when the name is unambiguous
func resolveTeacher(teachers []model.Teacher, s string) (model.Teacher, error) {
	s = strings.TrimSpace(s)
	for _, t := range teachers {
		if t.ID == s {
			return t, nil
		}
	}

	var matches []model.Teacher
	for _, t := range teachers {
		if foldEqual(t.Name, s) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 0:
		return model.Teacher{}, fmt.Errorf("unknown teacher: %q", s)
	case 1:
		return matches[0], nil
	default:
		ids := make([]string, len(matches))
		for i, m := range matches {
			ids[i] = m.ID
		}
		return model.Teacher{}, fmt.Errorf("teacher name %q is ambiguous, use one of the IDs: %s", s, strings.Join(ids, ", "))
	}
}

// foldEqual compares names case-insensitively under Turkish casing rules, so "IŞIK"
// matches "Işık" but not "İşik"
func foldEqual(a, b string) bool {
	lower := cases.Lower(language.Turkish)
	return lower.String(a) == lower.String(b)
}
