package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pribylovaa/mindwell/internal/models"
	"github.com/stretchr/testify/require"
)

func TestLogMood(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("validation", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.LogMood(ctx, 1, "bored", nil, nil)
		require.ErrorIs(t, err, ErrInvalidMood)

		_, err = svc.LogMood(ctx, 1, "happy", nil, ptr(0))
		require.ErrorIs(t, err, ErrInvalidIntensity)

		_, err = svc.LogMood(ctx, 1, "happy", nil, ptr(6))
		require.ErrorIs(t, err, ErrInvalidIntensity)
	})

	t.Run("defaults", func(t *testing.T) {
		svc, d := newTestService(t)
		d.moods.EXPECT().CreateMoodLog(gomock.Any(), &models.MoodLog{UserID: 1, Mood: "sad", Intensity: 3}).
			Return(&models.MoodLog{ID: 1}, nil)

		_, err := svc.LogMood(ctx, 1, " SAD ", ptr("  "), nil)
		require.NoError(t, err)
	})
}

func TestMoodLogs_Range(t *testing.T) {
	t.Parallel()

	svc, d := newTestService(t)
	from := fixedNow
	to := fixedNow.Add(-time.Hour)

	_, err := svc.MoodLogs(context.Background(), 1, &from, &to)
	require.ErrorIs(t, err, ErrInvalidRange)

	d.moods.EXPECT().MoodLogs(gomock.Any(), int64(1), &from, nil).Return([]models.MoodLog{}, nil)
	_, err = svc.MoodLogs(context.Background(), 1, &from, nil)
	require.NoError(t, err)
}
