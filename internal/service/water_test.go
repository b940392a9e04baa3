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

func TestWaterProgressMath(t *testing.T) {
	t.Parallel()

	cases := []struct {
		goal, current int
		want          models.WaterProgress
	}{
		{2000, 0, models.WaterProgress{Goal: 2000, Current: 0, Percentage: 0, Remaining: 2000}},
		{2000, 500, models.WaterProgress{Goal: 2000, Current: 500, Percentage: 25, Remaining: 1500}},
		{2000, 1333, models.WaterProgress{Goal: 2000, Current: 1333, Percentage: 67, Remaining: 667}},
		{2000, 2500, models.WaterProgress{Goal: 2000, Current: 2500, Percentage: 100, Remaining: 0}},
		{0, 300, models.WaterProgress{Goal: 0, Current: 300, Percentage: 0, Remaining: 0}},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, *waterProgress(tc.goal, tc.current))
	}
}

func TestWaterStatsMath(t *testing.T) {
	t.Parallel()

	require.Equal(t, models.WaterStats{}, *waterStats(2000, nil))

	got := waterStats(2000, []int{1500, 2000, 2600})
	require.Equal(t, models.WaterStats{
		AverageDailyIntake: 2033,
		MaxDailyIntake:     2600,
		DaysLogged:         3,
		GoalAchievedDays:   2,
	}, *got)
}

func TestLogWater(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("non-positive amount", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.LogWater(ctx, 1, 0)
		require.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("returns today's progress", func(t *testing.T) {
		svc, d := newTestService(t)
		d.water.EXPECT().LogWater(gomock.Any(), int64(1), 250).Return(&models.WaterLog{ID: 1, AmountML: 250}, nil)
		d.water.EXPECT().WaterGoal(gomock.Any(), int64(1)).Return(2000, nil)
		d.water.EXPECT().WaterDay(gomock.Any(), int64(1), fixedNow).Return(&models.WaterDay{TotalIntake: 1000, LogCount: 4}, nil)

		res, err := svc.LogWater(ctx, 1, 250)
		require.NoError(t, err)
		require.Equal(t, 250, res.Log.AmountML)
		require.Equal(t, 50, res.Progress.Percentage)
	})

	t.Run("user vanished", func(t *testing.T) {
		svc, d := newTestService(t)
		d.water.EXPECT().LogWater(gomock.Any(), int64(1), 250).Return(nil, storage.ErrNotFound)

		_, err := svc.LogWater(ctx, 1, 250)
		require.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestWaterStats_DefaultWindow(t *testing.T) {
	t.Parallel()

	svc, d := newTestService(t)
	d.water.EXPECT().WaterGoal(gomock.Any(), int64(1)).Return(1000, nil)
	d.water.EXPECT().DailyWaterTotals(gomock.Any(), int64(1), fixedNow.AddDate(0, 0, -29), fixedNow).Return([]int{1000}, nil)

	st, err := svc.WaterStats(context.Background(), 1, time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Equal(t, 1, st.GoalAchievedDays)

	_, err = svc.WaterStats(context.Background(), 1, fixedNow, fixedNow.AddDate(0, 0, -1))
	require.ErrorIs(t, err, ErrInvalidRange)
}

func TestSetWaterGoal(t *testing.T) {
	t.Parallel()

	svc, d := newTestService(t)

	_, err := svc.SetWaterGoal(context.Background(), 1, -5)
	require.ErrorIs(t, err, ErrInvalidGoal)

	d.water.EXPECT().SetWaterGoal(gomock.Any(), int64(1), 2500).Return(2500, nil)
	goal, err := svc.SetWaterGoal(context.Background(), 1, 2500)
	require.NoError(t, err)
	require.Equal(t, 2500, goal)
}
