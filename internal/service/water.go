package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/pribylovaa/mindwell/internal/models"
	"github.com/pribylovaa/mindwell/internal/storage"
)

// Окно статистики по умолчанию, если границы не заданы.
const defaultStatsDays = 30

// WaterLogResult — новый лог и прогресс за сегодня.
type WaterLogResult struct {
	Log      *models.WaterLog      `json:"log"`
	Progress *models.WaterProgress `json:"progress"`
}

// WaterProgress считает прогресс за сутки day (UTC). Нулевой day означает сегодня.
func (s *Service) WaterProgress(ctx context.Context, userID int64, day time.Time) (*models.WaterProgress, error) {
	const op = "service.water.WaterProgress"

	if day.IsZero() {
		day = s.clock()
	}

	goal, err := s.waterGoal(ctx, op, userID)
	if err != nil {
		return nil, err
	}

	total, err := s.water.WaterDay(ctx, userID, day)
	if err != nil {
		return nil, internalErr(ctx, op, err)
	}

	return waterProgress(goal, total.TotalIntake), nil
}

func (s *Service) WaterLogsDetailed(ctx context.Context, userID int64, day time.Time) ([]models.WaterLogDetail, error) {
	const op = "service.water.WaterLogsDetailed"

	if day.IsZero() {
		day = s.clock()
	}

	logs, err := s.water.WaterLogsDetailed(ctx, userID, day)
	if err != nil {
		return nil, internalErr(ctx, op, err)
	}

	return logs, nil
}

func (s *Service) LogWater(ctx context.Context, userID int64, amountML int) (*WaterLogResult, error) {
	const op = "service.water.LogWater"

	if amountML <= 0 {
		return nil, wrap(op, ErrInvalidAmount)
	}

	wl, err := s.water.LogWater(ctx, userID, amountML)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, wrap(op, ErrUserNotFound)
		}

		return nil, internalErr(ctx, op, err)
	}

	progress, err := s.WaterProgress(ctx, userID, s.clock())
	if err != nil {
		return nil, err
	}

	return &WaterLogResult{Log: wl, Progress: progress}, nil
}

func (s *Service) WaterGoal(ctx context.Context, userID int64) (int, error) {
	const op = "service.water.WaterGoal"

	return s.waterGoal(ctx, op, userID)
}

func (s *Service) SetWaterGoal(ctx context.Context, userID int64, goalML int) (int, error) {
	const op = "service.water.SetWaterGoal"

	if goalML <= 0 {
		return 0, wrap(op, ErrInvalidGoal)
	}

	goal, err := s.water.SetWaterGoal(ctx, userID, goalML)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return 0, wrap(op, ErrUserNotFound)
		case errors.Is(err, storage.ErrInvalidValue):
			return 0, wrap(op, ErrInvalidGoal)
		}

		return 0, internalErr(ctx, op, err)
	}

	return goal, nil
}

// WaterStats — агрегаты по дням с логами в диапазоне [from, to].
// Без границ берутся последние 30 дней.
func (s *Service) WaterStats(ctx context.Context, userID int64, from, to time.Time) (*models.WaterStats, error) {
	const op = "service.water.WaterStats"

	if to.IsZero() {
		to = s.clock()
	}
	if from.IsZero() {
		from = to.AddDate(0, 0, -(defaultStatsDays - 1))
	}
	if to.Before(from) {
		return nil, wrap(op, ErrInvalidRange)
	}

	goal, err := s.waterGoal(ctx, op, userID)
	if err != nil {
		return nil, err
	}

	totals, err := s.water.DailyWaterTotals(ctx, userID, from, to)
	if err != nil {
		return nil, internalErr(ctx, op, err)
	}

	return waterStats(goal, totals), nil
}

func (s *Service) waterGoal(ctx context.Context, op string, userID int64) (int, error) {
	goal, err := s.water.WaterGoal(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return 0, wrap(op, ErrUserNotFound)
		}

		return 0, internalErr(ctx, op, err)
	}

	return goal, nil
}

// waterProgress: percentage = min(100, round(current/goal*100)).
func waterProgress(goal, current int) *models.WaterProgress {
	p := &models.WaterProgress{Goal: goal, Current: current}
	if goal > 0 {
		p.Percentage = int(math.Min(100, math.Round(float64(current)/float64(goal)*100)))
	}
	if current < goal {
		p.Remaining = goal - current
	}

	return p
}

func waterStats(goal int, totals []int) *models.WaterStats {
	st := &models.WaterStats{DaysLogged: len(totals)}
	if len(totals) == 0 {
		return st
	}

	sum := 0
	for _, t := range totals {
		sum += t
		if t > st.MaxDailyIntake {
			st.MaxDailyIntake = t
		}
		if goal > 0 && t >= goal {
			st.GoalAchievedDays++
		}
	}
	st.AverageDailyIntake = int(math.Round(float64(sum) / float64(len(totals))))

	return st
}
