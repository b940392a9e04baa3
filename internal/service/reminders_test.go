package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pribylovaa/mindwell/internal/models"
	"github.com/pribylovaa/mindwell/internal/storage"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	t.Parallel()

	ok := map[string]string{
		"08:30":    "08:30:00",
		"23:59:59": "23:59:59",
		" 7:05 ":   "07:05:00",
	}
	for in, want := range ok {
		got, err := parseClock(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got)
	}

	for _, in := range []string{"", "24:00", "12:60", "noon", "12:30pm"} {
		_, err := parseClock(in)
		require.ErrorIs(t, err, ErrInvalidReminderTime, in)
	}
}

func TestReminders_GroupedByType(t *testing.T) {
	t.Parallel()

	svc, d := newTestService(t)
	d.reminders.EXPECT().Reminders(gomock.Any(), int64(1)).Return([]models.Reminder{
		{ID: 1, Type: models.ReminderWater},
		{ID: 2, Type: models.ReminderWater},
		{ID: 3, Type: models.ReminderMood},
	}, nil)

	got, err := svc.Reminders(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got[models.ReminderWater], 2)
	require.Len(t, got[models.ReminderMood], 1)
	require.NotNil(t, got[models.ReminderMindfulness])
	require.Empty(t, got[models.ReminderMindfulness])
}

func TestCreateReminder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("validation", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.CreateReminder(ctx, 1, ReminderInput{Type: "sleep", Title: "x", Time: "08:00"})
		require.ErrorIs(t, err, ErrInvalidReminderType)

		_, err = svc.CreateReminder(ctx, 1, ReminderInput{Type: "water", Title: " ", Time: "08:00"})
		require.ErrorIs(t, err, ErrReminderTitleRequired)

		_, err = svc.CreateReminder(ctx, 1, ReminderInput{Type: "water", Title: "drink", Time: "8am"})
		require.ErrorIs(t, err, ErrInvalidReminderTime)

		_, err = svc.CreateReminder(ctx, 1, ReminderInput{Type: "water", Title: "drink", Time: "08:00", FrequencyHours: ptr(0)})
		require.ErrorIs(t, err, ErrInvalidFrequency)
	})

	t.Run("enabled by default", func(t *testing.T) {
		svc, d := newTestService(t)
		d.reminders.EXPECT().CreateReminder(gomock.Any(), &models.Reminder{
			UserID: 1, Type: "water", Title: "drink", Time: "08:00:00", Enabled: true, FrequencyHours: ptr(2),
		}).Return(&models.Reminder{ID: 1}, nil)

		_, err := svc.CreateReminder(ctx, 1, ReminderInput{Type: "Water", Title: "drink", Time: "08:00", FrequencyHours: ptr(2)})
		require.NoError(t, err)
	})
}

func TestUpdateAndDeleteReminder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, d := newTestService(t)

	_, err := svc.UpdateReminder(ctx, 1, "water", 1, storage.ReminderUpdate{})
	require.ErrorIs(t, err, ErrNoValidFields)

	d.reminders.EXPECT().UpdateReminder(gomock.Any(), int64(1), "mood", int64(4), storage.ReminderUpdate{Time: ptr("21:00:00")}).
		Return(nil, storage.ErrNotFound)
	_, err = svc.UpdateReminder(ctx, 1, "mood", 4, storage.ReminderUpdate{Time: ptr("21:00")})
	require.ErrorIs(t, err, ErrReminderNotFound)

	require.ErrorIs(t, svc.DeleteReminder(ctx, 1, "sleep", 4), ErrInvalidReminderType)

	d.reminders.EXPECT().DeleteReminder(gomock.Any(), int64(1), "mood", int64(4)).Return(nil)
	require.NoError(t, svc.DeleteReminder(ctx, 1, "mood", 4))
}
