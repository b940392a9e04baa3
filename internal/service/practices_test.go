package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pribylovaa/mindwell/internal/models"
	"github.com/stretchr/testify/require"
)

func TestSedonaExercises_Static(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	ex := svc.SedonaExercises()
	require.Len(t, ex, 3)
	require.Equal(t, "Basic Releasing", ex[0].Title)
	for _, e := range ex {
		require.NotEmpty(t, e.Steps)
	}
}

func TestLogSedonaSession(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("blank reflection stored as null", func(t *testing.T) {
		svc, d := newTestService(t)
		d.sedona.EXPECT().CreateSedonaLog(gomock.Any(), int64(1), (*string)(nil)).
			Return(&models.SedonaLog{ID: 1, UserID: 1}, nil)

		l, err := svc.LogSedonaSession(ctx, 1, ptr("   "))
		require.NoError(t, err)
		require.Equal(t, int64(1), l.ID)
	})

	t.Run("reflection trimmed", func(t *testing.T) {
		svc, d := newTestService(t)
		d.sedona.EXPECT().CreateSedonaLog(gomock.Any(), int64(1), ptr("calmer now")).
			Return(&models.SedonaLog{ID: 2, UserID: 1, ReflectionText: ptr("calmer now")}, nil)

		l, err := svc.LogSedonaSession(ctx, 1, ptr("  calmer now\n"))
		require.NoError(t, err)
		require.Equal(t, "calmer now", *l.ReflectionText)
	})

	t.Run("storage failure is internal", func(t *testing.T) {
		svc, d := newTestService(t)
		d.sedona.EXPECT().CreateSedonaLog(gomock.Any(), int64(1), gomock.Any()).Return(nil, errors.New("db down"))

		_, err := svc.LogSedonaSession(ctx, 1, nil)
		require.Error(t, err)

		var se *Error
		require.False(t, errors.As(err, &se))
	})
}

func TestSedonaLogs_EmptyIsNotNull(t *testing.T) {
	t.Parallel()

	svc, d := newTestService(t)
	d.sedona.EXPECT().SedonaLogs(gomock.Any(), int64(5)).Return(nil, nil)

	logs, err := svc.SedonaLogs(context.Background(), 5)
	require.NoError(t, err)
	require.NotNil(t, logs)
	require.Empty(t, logs)
}

func TestMusicPlaylists_Static(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	pl := svc.MusicPlaylists()
	require.Len(t, pl, 1)
	require.Len(t, pl[0].Tracks, 3)
}
