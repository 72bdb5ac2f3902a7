package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/okulnobet/duty-roster/pkg/db"
)

func TestWeeklyReport(t *testing.T) {
	store := &mockStore{
		areas: testAreas(),
		schedules: []db.DutySchedule{{
			ID:   "w42",
			Week: 42,
			Year: 2026,
			Schedule: `{
				"Pazartesi": {"kat3": ["ta", "tb"], "bahce": ["tc"], "atolye": []},
				"Salı": {"kat3": ["tc"], "atolye": ["ghost"]},
				"Cuma": {"bahce": ["ta", "td"]}
			}`,
		}},
	}

	report, err := WeeklyReport(context.Background(), store, &mockTeachers{teachers: testTeachers(4)}, zap.NewNop(), week42)
	require.NoError(t, err)

	assert.Equal(t, "12.10 - 16.10.2026", report.Range)
	assert.Equal(t, 7, report.Total)

	require.Len(t, report.Areas, 3)
	assert.Equal(t, "kat3", report.Areas[0].Area.ID)
	assert.Equal(t, 3, report.Areas[0].Duties)
	assert.Equal(t, 10, report.Areas[0].Capacity)
	assert.Equal(t, "bahce", report.Areas[1].Area.ID)
	assert.Equal(t, 3, report.Areas[1].Duties)
	assert.Equal(t, 15, report.Areas[1].Capacity)
	assert.Equal(t, 1, report.Areas[2].Duties)

	assert.Equal(t, []TeacherTotal{
		{TeacherID: "tc", Name: "Çağla Demir", Duties: 2},
		{TeacherID: "ta", Name: "Zeynep Yıldız", Duties: 2},
		{TeacherID: "tb", Name: "Ahmet Kaya", Duties: 1},
		{TeacherID: "td", Name: "Cem Su", Duties: 1},
		{TeacherID: "ghost", Name: "ghost", Duties: 1},
	}, report.Teachers)
}

func TestWeeklyReport_NotSaved(t *testing.T) {
	store := &mockStore{areas: testAreas()}

	_, err := WeeklyReport(context.Background(), store, &mockTeachers{}, zap.NewNop(), week42)
	assert.ErrorIs(t, err, ErrNoSchedule)
	assert.ErrorContains(t, err, "42/2026")
}
