package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pribylovaa/mindwell/internal/models"
	"github.com/pribylovaa/mindwell/internal/storage"
	"github.com/stretchr/testify/require"
)

func TestDailyQuote_StableWithinDay(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	day := fixedNow.YearDay()
	require.Equal(t, quotes[day%len(quotes)], svc.DailyQuote())

	svc.now = func() time.Time { return fixedNow.Add(10 * time.Hour) }
	require.Equal(t, quotes[day%len(quotes)], svc.DailyQuote())

	svc.now = func() time.Time { return fixedNow.AddDate(0, 0, 1) }
	require.Equal(t, quotes[(day+1)%len(quotes)], svc.DailyQuote())
}

func TestEmergencyLists(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	contacts := svc.EmergencyContacts()
	require.Len(t, contacts, 3)
	require.Equal(t, "988", contacts[0].Number)

	resources := svc.EmergencyResources()
	require.Len(t, resources, 3)
	require.Equal(t, "self-help", resources[0].Type)
}

func TestMeditations(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	asAdmin := func(d *testDeps) {
		d.roles.EXPECT().HasAnyRole(gomock.Any(), int64(1), models.RoleAdmin).Return(true, nil)
	}

	t.Run("admin only", func(t *testing.T) {
		svc, d := newTestService(t)
		d.roles.EXPECT().HasAnyRole(gomock.Any(), int64(2), models.RoleAdmin).Return(false, nil)

		_, err := svc.CreateMeditation(ctx, 2, models.Meditation{Title: "a", AudioURL: "b"})
		require.ErrorIs(t, err, ErrRequiresAdmin)
	})

	t.Run("required fields", func(t *testing.T) {
		svc, d := newTestService(t)
		asAdmin(d)

		_, err := svc.CreateMeditation(ctx, 1, models.Meditation{Title: "Calm"})
		require.ErrorIs(t, err, ErrMeditationRequired)
	})

	t.Run("update rejects blank title", func(t *testing.T) {
		svc, d := newTestService(t)
		asAdmin(d)

		_, err := svc.UpdateMeditation(ctx, 1, 3, storage.MeditationUpdate{Title: ptr(" ")})
		require.ErrorIs(t, err, ErrMeditationRequired)
	})

	t.Run("delete missing", func(t *testing.T) {
		svc, d := newTestService(t)
		asAdmin(d)
		d.content.EXPECT().DeleteMeditation(gomock.Any(), int64(3)).Return(storage.ErrNotFound)

		require.ErrorIs(t, svc.DeleteMeditation(ctx, 1, 3), ErrMeditationNotFound)
	})
}

func TestResources(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	asAdmin := func(d *testDeps) {
		d.roles.EXPECT().HasAnyRole(gomock.Any(), int64(1), models.RoleAdmin).Return(true, nil)
	}

	t.Run("category must be known", func(t *testing.T) {
		svc, d := newTestService(t)
		asAdmin(d)

		_, err := svc.CreateResource(ctx, 1, models.Resource{Category: "Yoga", Title: "x"})
		require.ErrorIs(t, err, ErrInvalidResourceCategory)
	})

	t.Run("create", func(t *testing.T) {
		svc, d := newTestService(t)
		asAdmin(d)
		d.content.EXPECT().CreateResource(gomock.Any(), &models.Resource{Category: "Hotlines", Title: "988"}).
			Return(&models.Resource{ID: 1, Category: "Hotlines", Title: "988"}, nil)

		r, err := svc.CreateResource(ctx, 1, models.Resource{Category: " Hotlines ", Title: "988"})
		require.NoError(t, err)
		require.Equal(t, int64(1), r.ID)
	})

	t.Run("update unknown category", func(t *testing.T) {
		svc, d := newTestService(t)
		asAdmin(d)

		_, err := svc.UpdateResource(ctx, 1, 4, storage.ResourceUpdate{Category: ptr("Spa")})
		require.ErrorIs(t, err, ErrInvalidResourceCategory)
	})
}
