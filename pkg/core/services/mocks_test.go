package services

import (
	"context"
	"errors"
	"time"

	"github.com/okulnobet/duty-roster/pkg/core/model"
	"github.com/okulnobet/duty-roster/pkg/core/roster"
	"github.com/okulnobet/duty-roster/pkg/db"
)

var errStore = errors.New("store unavailable")

// mockStore is an in-memory db.Database
type mockStore struct {
	areas     []db.DutyArea
	slots     []db.DutySlot
	schedules []db.DutySchedule

	getAreasErr     error
	insertAreasErr  error
	getSlotsErr     error
	insertSlotsErr  error
	deactivateErr   error
	getSchedulesErr error
	insertSchedErr  error
	updateSchedErr  error

	calls []string
}

func (m *mockStore) GetDutyAreas(ctx context.Context) ([]db.DutyArea, error) {
	if m.getAreasErr != nil {
		return nil, m.getAreasErr
	}
	return m.areas, nil
}

func (m *mockStore) InsertDutyAreas(ctx context.Context, areas []db.DutyArea) error {
	m.calls = append(m.calls, "InsertDutyAreas")
	if m.insertAreasErr != nil {
		return m.insertAreasErr
	}
	m.areas = append(m.areas, areas...)
	return nil
}

func (m *mockStore) GetDutySlots(ctx context.Context) ([]db.DutySlot, error) {
	if m.getSlotsErr != nil {
		return nil, m.getSlotsErr
	}
	return m.slots, nil
}

func (m *mockStore) InsertDutySlots(ctx context.Context, slots []db.DutySlot) error {
	m.calls = append(m.calls, "InsertDutySlots")
	if m.insertSlotsErr != nil {
		return m.insertSlotsErr
	}
	m.slots = append(m.slots, slots...)
	return nil
}

func (m *mockStore) DeactivateDutySlots(ctx context.Context, week, year int, updatedAt string) error {
	m.calls = append(m.calls, "DeactivateDutySlots")
	if m.deactivateErr != nil {
		return m.deactivateErr
	}
	for i := range m.slots {
		if m.slots[i].IsActive && m.slots[i].Week == week && m.slots[i].Year == year {
			m.slots[i].IsActive = false
			m.slots[i].UpdatedAt = updatedAt
		}
	}
	return nil
}

func (m *mockStore) GetDutySchedules(ctx context.Context) ([]db.DutySchedule, error) {
	if m.getSchedulesErr != nil {
		return nil, m.getSchedulesErr
	}
	return m.schedules, nil
}

func (m *mockStore) InsertDutySchedule(ctx context.Context, schedule *db.DutySchedule) error {
	m.calls = append(m.calls, "InsertDutySchedule")
	if m.insertSchedErr != nil {
		return m.insertSchedErr
	}
	m.schedules = append(m.schedules, *schedule)
	return nil
}

func (m *mockStore) UpdateDutySchedule(ctx context.Context, schedule *db.DutySchedule) error {
	m.calls = append(m.calls, "UpdateDutySchedule")
	if m.updateSchedErr != nil {
		return m.updateSchedErr
	}
	for i := range m.schedules {
		if m.schedules[i].ID == schedule.ID {
			m.schedules[i] = *schedule
			return nil
		}
	}
	return errors.New("schedule not found")
}

func (m *mockStore) activeSlots(week, year int) []db.DutySlot {
	var active []db.DutySlot
	for _, s := range m.slots {
		if s.IsActive && s.Week == week && s.Year == year {
			active = append(active, s)
		}
	}
	return active
}

// mockTeachers implements TeacherSource and TeacherSink
type mockTeachers struct {
	teachers  []model.Teacher
	listErr   error
	upserted  []model.Teacher
	upsertErr error
}

func (m *mockTeachers) ListTeachers(ctx context.Context) ([]model.Teacher, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.teachers, nil
}

func (m *mockTeachers) UpsertTeachers(ctx context.Context, teachers []model.Teacher) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.upserted = append(m.upserted, teachers...)
	return nil
}

var testNow = time.Date(2026, time.October, 16, 9, 30, 0, 0, time.UTC)

var week42 = roster.WeekRef{Week: 42, Year: 2026}

// testAreas is a small catalog: kat3 (cap 2, pri 1), bahce (cap 3, pri 5), atolye (cap 1, pri 6)
func testAreas() []db.DutyArea {
	return []db.DutyArea{
		{ID: "bahce", Name: "Bahçe", Floor: "Dış Alan", Capacity: 3, Priority: 5, IsActive: true, CreatedAt: "2026-09-01T08:00:00Z"},
		{ID: "kat3", Name: "3. Kat", Floor: "3. Kat", Capacity: 2, Priority: 1, IsActive: true, CreatedAt: "2026-09-01T08:00:00Z"},
		{ID: "atolye", Name: "Atölye Katı", Floor: "Atölye", Capacity: 1, Priority: 6, IsActive: true, CreatedAt: "2026-09-01T08:00:00Z"},
	}
}

func testTeachers(n int) []model.Teacher {
	names := []string{"Zeynep Yıldız", "Ahmet Kaya", "Çağla Demir", "Cem Su", "İpek Işık", "Işıl Ak", "Deniz Öz", "Burak Şen",
		"Elif Çelik", "Fatma Arslan", "Gökhan Ünal", "Hakan Tekin", "Irmak Koç", "Kemal Aydın", "Leyla Güneş", "Murat Er"}
	teachers := make([]model.Teacher, n)
	for i := 0; i < n; i++ {
		teachers[i] = model.Teacher{
			ID:     "t" + string(rune('a'+i)),
			Name:   names[i%len(names)],
			Status: model.StatusActive,
		}
	}
	return teachers
}
