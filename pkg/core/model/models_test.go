package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortTeachersByName_TurkishOrder(t *testing.T) {
	teachers := []Teacher{
		{ID: "1", Name: "Demir Ali"},
		{ID: "2", Name: "Çelik Ayşe"},
		{ID: "3", Name: "Cem Yılmaz"},
		{ID: "4", Name: "İnce Murat"},
		{ID: "5", Name: "Işık Zeynep"},
		{ID: "6", Name: "Şahin Elif"},
		{ID: "7", Name: "Sarı Can"},
		{ID: "8", Name: "Öztürk Emre"},
		{ID: "9", Name: "Ozan Deniz"},
	}

	SortTeachersByName(teachers)

	names := make([]string, len(teachers))
	for i, teacher := range teachers {
		names[i] = teacher.Name
	}
	assert.Equal(t, []string{
		"Cem Yılmaz",
		"Çelik Ayşe",
		"Demir Ali",
		"Işık Zeynep",
		"İnce Murat",
		"Ozan Deniz",
		"Öztürk Emre",
		"Sarı Can",
		"Şahin Elif",
	}, names)
}

func TestSortTeachersByName_StableForEqualNames(t *testing.T) {
	teachers := []Teacher{
		{ID: "b", Name: "Ayşe Kaya"},
		{ID: "a", Name: "Ayşe Kaya"},
	}

	SortTeachersByName(teachers)

	assert.Equal(t, "b", teachers[0].ID)
	assert.Equal(t, "a", teachers[1].ID)
}

func TestSortNames(t *testing.T) {
	names := []string{"Zümre", "Çağla", "Can", "Ümit", "Uğur"}
	SortNames(names)
	assert.Equal(t, []string{"Can", "Çağla", "Uğur", "Ümit", "Zümre"}, names)
}

func TestActiveTeachers(t *testing.T) {
	teachers := []Teacher{
		{ID: "1", Status: "Aktif"},
		{ID: "2", Status: "aktif"},
		{ID: "3", Status: ""},
		{ID: "4", Status: "İzinli"},
	}

	assert.Equal(t, []string{"1", "2", "3"}, TeacherIDs(ActiveTeachers(teachers)))
}

func TestTeacherNames(t *testing.T) {
	names := TeacherNames([]Teacher{{ID: "1", Name: "Ayşe"}, {ID: "2", Name: "Mehmet"}})
	assert.Equal(t, map[string]string{"1": "Ayşe", "2": "Mehmet"}, names)
}
