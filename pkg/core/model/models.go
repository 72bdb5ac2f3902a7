package model

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// StatusActive marks teachers who take part in the duty rotation
const StatusActive = "Aktif"

// Teacher is a member of staff who can be given duties
type Teacher struct {
	ID     string
	Name   string
	Branch string
	Level  string
	Status string
}

// IsActive reports whether the teacher takes part in the rotation.
// An empty status counts as active.
func (t Teacher) IsActive() bool {
	return t.Status == "" || strings.EqualFold(t.Status, StatusActive)
}

// SortTeachersByName orders teachers by name using Turkish collation, so that
// "Çelik" sorts between "Cem" and "Demir" and "İnce" after "Işık".
func SortTeachersByName(teachers []Teacher) {
	c := collate.New(language.Turkish, collate.IgnoreCase)
	sort.SliceStable(teachers, func(i, j int) bool {
		return c.CompareString(teachers[i].Name, teachers[j].Name) < 0
	})
}

// SortNames orders plain names using Turkish collation
func SortNames(names []string) {
	c := collate.New(language.Turkish, collate.IgnoreCase)
	c.SortStrings(names)
}

// ActiveTeachers filters teachers to those taking part in the rotation
func ActiveTeachers(teachers []Teacher) []Teacher {
	active := make([]Teacher, 0, len(teachers))
	for _, t := range teachers {
		if t.IsActive() {
			active = append(active, t)
		}
	}
	return active
}

// TeacherIDs extracts teacher IDs in order
func TeacherIDs(teachers []Teacher) []string {
	ids := make([]string, len(teachers))
	for i, t := range teachers {
		ids[i] = t.ID
	}
	return ids
}

// TeacherNames maps teacher ID to display name
func TeacherNames(teachers []Teacher) map[string]string {
	names := make(map[string]string, len(teachers))
	for _, t := range teachers {
		names[t.ID] = t.Name
	}
	return names
}
