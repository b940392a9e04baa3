package mocks

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pribylovaa/mindwell/internal/models"
	"github.com/pribylovaa/mindwell/internal/storage"
	"github.com/stretchr/testify/require"
)

var (
	_ storage.Storage         = (*MockStorage)(nil)
	_ storage.UserStorage     = (*MockUserStorage)(nil)
	_ storage.RoleStorage     = (*MockRoleStorage)(nil)
	_ storage.ForumStorage    = (*MockForumStorage)(nil)
	_ storage.ReportStorage   = (*MockReportStorage)(nil)
	_ storage.SearchStorage   = (*MockSearchStorage)(nil)
	_ storage.JournalStorage  = (*MockJournalStorage)(nil)
	_ storage.MoodStorage     = (*MockMoodStorage)(nil)
	_ storage.SedonaStorage   = (*MockSedonaStorage)(nil)
	_ storage.WaterStorage    = (*MockWaterStorage)(nil)
	_ storage.ReminderStorage = (*MockReminderStorage)(nil)
	_ storage.ContentStorage  = (*MockContentStorage)(nil)
	_ storage.AvatarStorage   = (*MockAvatarStorage)(nil)
	_ storage.TokenDenylist   = (*MockTokenDenylist)(nil)
)

// Аргумент-модель доходит до матчера, а не подменяется ресивером мока.
func TestMockStorage_ModelArguments(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	st := NewMockStorage(ctrl)
	ctx := context.Background()

	in := &models.MoodLog{UserID: 1, Mood: "happy", Intensity: 4}
	st.EXPECT().CreateMoodLog(gomock.Any(), in).Return(&models.MoodLog{ID: 10, UserID: 1, Mood: "happy", Intensity: 4}, nil)

	got, err := st.CreateMoodLog(ctx, in)
	require.NoError(t, err)
	require.Equal(t, int64(10), got.ID)

	med := &models.Meditation{Title: "Breath", AudioURL: "https://cdn.example.com/a.mp3"}
	st.EXPECT().CreateMeditation(gomock.Any(), med).Return(&models.Meditation{ID: 3, Title: "Breath"}, nil)

	created, err := st.CreateMeditation(ctx, med)
	require.NoError(t, err)
	require.Equal(t, int64(3), created.ID)
}

func TestMockMoodAndContentStorage_ModelArguments(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	ctx := context.Background()

	moods := NewMockMoodStorage(ctrl)
	in := &models.MoodLog{UserID: 2, Mood: "calm", Intensity: 3}
	moods.EXPECT().CreateMoodLog(gomock.Any(), in).Return(in, nil)

	got, err := moods.CreateMoodLog(ctx, in)
	require.NoError(t, err)
	require.Same(t, in, got)

	content := NewMockContentStorage(ctrl)
	med := &models.Meditation{Title: "Sleep", AudioURL: "https://cdn.example.com/s.mp3"}
	content.EXPECT().CreateMeditation(gomock.Any(), med).Return(med, nil)

	created, err := content.CreateMeditation(ctx, med)
	require.NoError(t, err)
	require.Same(t, med, created)
}
