package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSyncTeachers(t *testing.T) {
	teachers := testTeachers(3)
	teachers[1].Status = "Pasif"
	source := &mockTeachers{teachers: teachers}
	sink := &mockTeachers{}

	count, err := SyncTeachers(context.Background(), source, sink, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, 3, count)
	assert.Equal(t, teachers, sink.upserted, "inactive teachers are copied too")
}

func TestSyncTeachers_Errors(t *testing.T) {
	_, err := SyncTeachers(context.Background(), &mockTeachers{listErr: errStore}, &mockTeachers{}, zap.NewNop())
	assert.ErrorIs(t, err, errStore)
	assert.ErrorContains(t, err, "failed to list teachers")

	_, err = SyncTeachers(context.Background(), &mockTeachers{teachers: testTeachers(1)}, &mockTeachers{upsertErr: errStore}, zap.NewNop())
	assert.ErrorIs(t, err, errStore)
	assert.ErrorContains(t, err, "failed to store teachers")
}
