package sheetsclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/okulnobet/duty-roster/pkg/core/model"
)

// Column names of the staff sheet
const (
	teacherIDField     = "ID"
	teacherNameField   = "Ad Soyad"
	teacherBranchField = "Branş"
	teacherLevelField  = "Kademe"
	teacherStatusField = "Durum"
)

var requiredTeacherFields = []string{teacherIDField, teacherNameField}

var optionalTeacherFields = []string{teacherBranchField, teacherLevelField, teacherStatusField}

// ValueReader reads cell values from a spreadsheet range
type ValueReader interface {
	GetValues(spreadsheetID, sheetRange string) ([][]interface{}, error)
}

// StaffSheet reads the teacher list from one tab of a spreadsheet
type StaffSheet struct {
	reader        ValueReader
	spreadsheetID string
	tab           string
}

// NewStaffSheet creates a staff sheet reading tab of spreadsheetID through reader
func NewStaffSheet(reader ValueReader, spreadsheetID, tab string) *StaffSheet {
	return &StaffSheet{
		reader:        reader,
		spreadsheetID: spreadsheetID,
		tab:           tab,
	}
}

// StaffSheet returns the staff sheet at tab of spreadsheetID
func (c *Client) StaffSheet(spreadsheetID, tab string) *StaffSheet {
	return NewStaffSheet(c, spreadsheetID, tab)
}

// ListTeachers retrieves and parses every teacher on the staff sheet, ordered by name
func (s *StaffSheet) ListTeachers(ctx context.Context) ([]model.Teacher, error) {
	values, err := s.reader.GetValues(s.spreadsheetID, s.tab)
	if err != nil {
		return nil, fmt.Errorf("failed to get staff data: %w", err)
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("staff sheet is empty")
	}

	teachers, err := parseTeachers(values)
	if err != nil {
		return nil, fmt.Errorf("failed to parse teachers: %w", err)
	}

	model.SortTeachersByName(teachers)
	return teachers, nil
}

// parseTeachers converts raw spreadsheet data into Teacher structs
func parseTeachers(raw [][]interface{}) ([]model.Teacher, error) {
	if len(raw) < 1 {
		return nil, fmt.Errorf("no header row found")
	}

	fieldIndexes := make(map[string]int)
	for i, cell := range raw[0] {
		if cellStr, ok := cell.(string); ok {
			fieldIndexes[strings.TrimSpace(cellStr)] = i
		}
	}

	for _, field := range requiredTeacherFields {
		if _, ok := fieldIndexes[field]; !ok {
			return nil, fmt.Errorf("missing required field in header: %s", field)
		}
	}
	for _, field := range optionalTeacherFields {
		if _, ok := fieldIndexes[field]; !ok {
			fieldIndexes[field] = -1
		}
	}

	getField := func(field string, row []interface{}) string {
		index := fieldIndexes[field]
		if index < 0 || index >= len(row) {
			return ""
		}
		if str, ok := row[index].(string); ok {
			return strings.TrimSpace(str)
		}
		return ""
	}

	teachers := make([]model.Teacher, 0, len(raw)-1)
	seen := make(map[string]int)
	for i := 1; i < len(raw); i++ {
		row := raw[i]

		name := getField(teacherNameField, row)
		// Skip empty rows
		if name == "" {
			continue
		}

		id := getField(teacherIDField, row)
		if id == "" {
			return nil, fmt.Errorf("missing ID for teacher %q in row %d", name, i+1)
		}
		if prev, ok := seen[id]; ok {
			return nil, fmt.Errorf("duplicate ID %s in rows %d and %d", id, prev, i+1)
		}
		seen[id] = i + 1

		teachers = append(teachers, model.Teacher{
			ID:     id,
			Name:   name,
			Branch: getField(teacherBranchField, row),
			Level:  getField(teacherLevelField, row),
			Status: getField(teacherStatusField, row),
		})
	}

	return teachers, nil
}
