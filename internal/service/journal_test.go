package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pribylovaa/mindwell/internal/models"
	"github.com/pribylovaa/mindwell/internal/storage"
	"github.com/stretchr/testify/require"
)

func lockedEntry(id int64) *models.JournalEntry {
	return &models.JournalEntry{ID: id, UserID: 1, Title: "t", Content: ptr("private"), Mood: "sad", IsLocked: true}
}

func TestJournalEntries_MasksLocked(t *testing.T) {
	t.Parallel()

	svc, d := newTestService(t)
	d.journal.EXPECT().JournalEntries(gomock.Any(), int64(1)).Return([]models.JournalEntry{
		*lockedEntry(1),
		{ID: 2, UserID: 1, Title: "open", Content: ptr("visible"), Mood: "happy"},
	}, nil)

	entries, err := svc.JournalEntries(context.Background(), 1)
	require.NoError(t, err)
	require.Nil(t, entries[0].Content)
	require.Equal(t, "visible", *entries[1].Content)
}

func TestJournalEntry_OtherUsersAreNotFound(t *testing.T) {
	t.Parallel()

	svc, d := newTestService(t)
	d.journal.EXPECT().JournalEntry(gomock.Any(), int64(2), int64(1)).Return(nil, storage.ErrNotFound)

	_, err := svc.JournalEntry(context.Background(), 2, 1)
	require.ErrorIs(t, err, ErrEntryNotFound)
}

func TestCreateJournalEntry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("required fields", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.CreateJournalEntry(ctx, 1, JournalInput{Title: " ", Content: "x"})
		require.ErrorIs(t, err, ErrJournalFieldsRequired)
	})

	t.Run("unknown mood becomes neutral", func(t *testing.T) {
		svc, d := newTestService(t)
		d.journal.EXPECT().CreateJournalEntry(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *models.JournalEntry) (*models.JournalEntry, error) {
				require.Equal(t, models.MoodNeutral, e.Mood)
				require.Equal(t, "body", *e.Content)
				return e, nil
			})

		_, err := svc.CreateJournalEntry(ctx, 1, JournalInput{Title: "day", Content: " body ", Mood: "ecstatic"})
		require.NoError(t, err)
	})

	t.Run("mood is case-insensitive", func(t *testing.T) {
		svc, d := newTestService(t)
		d.journal.EXPECT().CreateJournalEntry(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *models.JournalEntry) (*models.JournalEntry, error) {
				require.Equal(t, "anxious", e.Mood)
				return e, nil
			})

		_, err := svc.CreateJournalEntry(ctx, 1, JournalInput{Title: "day", Content: "body", Mood: "Anxious"})
		require.NoError(t, err)
	})

	t.Run("lock needs journal password", func(t *testing.T) {
		svc, d := newTestService(t)
		d.users.EXPECT().UserByID(gomock.Any(), int64(1)).Return(testUser(1), nil)

		_, err := svc.CreateJournalEntry(ctx, 1, JournalInput{Title: "day", Content: "body", IsLocked: true})
		require.ErrorIs(t, err, ErrLockNeedsPassword)
	})

	t.Run("unknown category", func(t *testing.T) {
		svc, d := newTestService(t)
		d.journal.EXPECT().CreateJournalEntry(gomock.Any(), gomock.Any()).Return(nil, storage.ErrInvalidReference)

		_, err := svc.CreateJournalEntry(ctx, 1, JournalInput{Title: "day", Content: "body", CategoryID: ptr(int64(999))})
		require.ErrorIs(t, err, ErrInvalidCategory)
	})
}

func TestUpdateJournalEntry_PassesFullReplacement(t *testing.T) {
	t.Parallel()

	svc, d := newTestService(t)
	d.journal.EXPECT().UpdateJournalEntry(gomock.Any(), int64(1), int64(3), storage.JournalUpdate{
		Title: "new", Content: "text", Mood: "happy",
	}).Return(&models.JournalEntry{ID: 3}, nil)

	_, err := svc.UpdateJournalEntry(context.Background(), 1, 3, JournalInput{Title: "new", Content: "text", Mood: "HAPPY"})
	require.NoError(t, err)
}

func TestUnlockJournalEntry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	withPassword := func() *models.User {
		u := testUser(1)
		u.JournalPasswordHash = ptr(mustHash(t, "diary-pass"))
		return u
	}

	t.Run("password not set", func(t *testing.T) {
		svc, d := newTestService(t)
		d.users.EXPECT().UserByID(gomock.Any(), int64(1)).Return(testUser(1), nil)

		_, err := svc.UnlockJournalEntry(ctx, 1, 7, "x")
		require.ErrorIs(t, err, ErrJournalPasswordNotSet)
	})

	t.Run("entry not locked", func(t *testing.T) {
		svc, d := newTestService(t)
		d.users.EXPECT().UserByID(gomock.Any(), int64(1)).Return(withPassword(), nil)
		d.journal.EXPECT().JournalEntry(gomock.Any(), int64(1), int64(7)).Return(&models.JournalEntry{ID: 7}, nil)

		_, err := svc.UnlockJournalEntry(ctx, 1, 7, "diary-pass")
		require.ErrorIs(t, err, ErrEntryNotLocked)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, d := newTestService(t)
		d.users.EXPECT().UserByID(gomock.Any(), int64(1)).Return(withPassword(), nil)
		d.journal.EXPECT().JournalEntry(gomock.Any(), int64(1), int64(7)).Return(lockedEntry(7), nil)

		_, err := svc.UnlockJournalEntry(ctx, 1, 7, "nope")
		require.ErrorIs(t, err, ErrIncorrectJournalPass)
		require.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("ok returns content", func(t *testing.T) {
		svc, d := newTestService(t)
		d.users.EXPECT().UserByID(gomock.Any(), int64(1)).Return(withPassword(), nil)
		d.journal.EXPECT().JournalEntry(gomock.Any(), int64(1), int64(7)).Return(lockedEntry(7), nil)

		e, err := svc.UnlockJournalEntry(ctx, 1, 7, "diary-pass")
		require.NoError(t, err)
		require.Equal(t, "private", *e.Content)
	})
}
