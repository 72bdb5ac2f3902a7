package sheetsclient

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okulnobet/duty-roster/pkg/core/model"
)

type fakeReader struct {
	values    [][]interface{}
	err       error
	gotSheet  string
	gotRanges []string
}

func (f *fakeReader) GetValues(spreadsheetID, sheetRange string) ([][]interface{}, error) {
	f.gotSheet = spreadsheetID
	f.gotRanges = append(f.gotRanges, sheetRange)
	return f.values, f.err
}

func TestParseTeachers(t *testing.T) {
	raw := [][]interface{}{
		{"Ad Soyad", "ID", "Branş", "Kademe", "Durum", "Not"},
		{"Zeynep Yıldız", "T01", "Matematik", "Lise", "Aktif", ""},
		{" Ahmet Kaya ", "T02", "Fizik", "", "Pasif"},
		{"", "", "", "", ""},
		{"Çağla Demir", "T03"},
	}

	teachers, err := parseTeachers(raw)
	require.NoError(t, err)

	assert.Equal(t, []model.Teacher{
		{ID: "T01", Name: "Zeynep Yıldız", Branch: "Matematik", Level: "Lise", Status: "Aktif"},
		{ID: "T02", Name: "Ahmet Kaya", Branch: "Fizik", Status: "Pasif"},
		{ID: "T03", Name: "Çağla Demir"},
	}, teachers)
}

func TestParseTeachers_OptionalColumnsMissing(t *testing.T) {
	teachers, err := parseTeachers([][]interface{}{
		{"ID", "Ad Soyad"},
		{"T01", "Zeynep Yıldız"},
	})
	require.NoError(t, err)
	require.Len(t, teachers, 1)
	assert.True(t, teachers[0].IsActive())
}

func TestParseTeachers_Errors(t *testing.T) {
	tests := []struct {
		name     string
		raw      [][]interface{}
		contains string
	}{
		{"no header", [][]interface{}{}, "no header row found"},
		{"missing name column", [][]interface{}{{"ID", "Branş"}}, "missing required field in header: Ad Soyad"},
		{"missing id column", [][]interface{}{{"Ad Soyad"}}, "missing required field in header: ID"},
		{"missing id", [][]interface{}{{"ID", "Ad Soyad"}, {"", "Ahmet Kaya"}}, `missing ID for teacher "Ahmet Kaya" in row 2`},
		{"duplicate id", [][]interface{}{{"ID", "Ad Soyad"}, {"T01", "Ahmet Kaya"}, {"T01", "Ayşe Kaya"}}, "duplicate ID T01 in rows 2 and 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseTeachers(tt.raw)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestStaffSheet_ListTeachers(t *testing.T) {
	reader := &fakeReader{values: [][]interface{}{
		{"ID", "Ad Soyad", "Durum"},
		{"T01", "Demir Kaya", "Aktif"},
		{"T02", "Çelik Ay", "Aktif"},
		{"T03", "Cem Su", "Aktif"},
	}}

	teachers, err := NewStaffSheet(reader, "staff123", "Öğretmenler").ListTeachers(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "staff123", reader.gotSheet)
	assert.Equal(t, []string{"Öğretmenler"}, reader.gotRanges)
	assert.Equal(t, []string{"Cem Su", "Çelik Ay", "Demir Kaya"},
		[]string{teachers[0].Name, teachers[1].Name, teachers[2].Name})
}

func TestStaffSheet_ListTeachers_Errors(t *testing.T) {
	_, err := NewStaffSheet(&fakeReader{err: errors.New("quota exceeded")}, "staff123", "Öğretmenler").
		ListTeachers(context.Background())
	assert.ErrorContains(t, err, "failed to get staff data: quota exceeded")

	_, err = NewStaffSheet(&fakeReader{}, "staff123", "Öğretmenler").ListTeachers(context.Background())
	assert.ErrorContains(t, err, "staff sheet is empty")
}
