package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/mindwell/internal/models"
	"github.com/pribylovaa/mindwell/internal/storage"
)

// dayBounds — полуинтервал [00:00, 24:00) суток day в UTC.
func dayBounds(day time.Time) (time.Time, time.Time) {
	y, m, d := day.UTC().Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}

func (s *Storage) WaterDay(ctx context.Context, userID int64, day time.Time) (*models.WaterDay, error) {
	const op = "storage.postgres.WaterDay"

	start, end := dayBounds(day)

	var wd models.WaterDay
	err := s.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount_ml), 0), COUNT(*), MIN(logged_at), MAX(logged_at)
		FROM water_logs
		WHERE user_id = $1 AND logged_at >= $2 AND logged_at < $3`,
		userID, start, end,
	).Scan(&wd.TotalIntake, &wd.LogCount, &wd.FirstLog, &wd.LastLog)
	if err != nil {
		return nil, mapPgError(op, err)
	}

	return &wd, nil
}

func (s *Storage) WaterLogsDetailed(ctx context.Context, userID int64, day time.Time) ([]models.WaterLogDetail, error) {
	const op = "storage.postgres.WaterLogsDetailed"

	start, end := dayBounds(day)

	rows, err := s.db.Query(ctx, `
		SELECT log_id, amount_ml, logged_at,
		       EXTRACT(HOUR FROM logged_at AT TIME ZONE 'UTC')::int,
		       EXTRACT(MINUTE FROM logged_at AT TIME ZONE 'UTC')::int
		FROM water_logs
		WHERE user_id = $1 AND logged_at >= $2 AND logged_at < $3
		ORDER BY logged_at ASC, log_id ASC`,
		userID, start, end)
	if err != nil {
		return nil, mapPgError(op, err)
	}

	logs, err := pgx.CollectRows(rows, func(r pgx.CollectableRow) (models.WaterLogDetail, error) {
		var l models.WaterLogDetail
		err := r.Scan(&l.ID, &l.AmountML, &l.LoggedAt, &l.Hour, &l.Minute)
		return l, err
	})
	if err != nil {
		return nil, mapPgError(op, err)
	}

	return logs, nil
}

// LogWater проверяет пользователя и пишет лог в одной транзакции.
func (s *Storage) LogWater(ctx context.Context, userID int64, amountML int) (*models.WaterLog, error) {
	const op = "storage.postgres.LogWater"

	var l models.WaterLog
	err := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE user_id = $1)`, userID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return pgx.ErrNoRows
		}

		return tx.QueryRow(ctx, `
			INSERT INTO water_logs (user_id, amount_ml) VALUES ($1, $2)
			RETURNING log_id, user_id, amount_ml, logged_at`, userID, amountML,
		).Scan(&l.ID, &l.UserID, &l.AmountML, &l.LoggedAt)
	})
	if err != nil {
		return nil, mapPgError(op, err)
	}

	return &l, nil
}

func (s *Storage) WaterGoal(ctx context.Context, userID int64) (int, error) {
	const op = "storage.postgres.WaterGoal"

	var goal int
	if err := s.db.QueryRow(ctx, `SELECT water_goal_ml FROM users WHERE user_id = $1`, userID).Scan(&goal); err != nil {
		return 0, mapPgError(op, err)
	}

	return goal, nil
}

func (s *Storage) SetWaterGoal(ctx context.Context, userID int64, goalML int) (int, error) {
	const op = "storage.postgres.SetWaterGoal"

	var goal int
	err := s.db.QueryRow(ctx, `
		UPDATE users SET water_goal_ml = $2, updated_at = now()
		WHERE user_id = $1
		RETURNING water_goal_ml`, userID, goalML,
	).Scan(&goal)
	if err != nil {
		return 0, mapPgError(op, err)
	}

	return goal, nil
}

// DailyWaterTotals — суммы по UTC-суткам диапазона, только дни с логами.
func (s *Storage) DailyWaterTotals(ctx context.Context, userID int64, from, to time.Time) ([]int, error) {
	const op = "storage.postgres.DailyWaterTotals"

	if to.Before(from) {
		return nil, fmt.Errorf("%s: %w: range end before start", op, storage.ErrInvalidValue)
	}

	start, _ := dayBounds(from)
	_, end := dayBounds(to)

	rows, err := s.db.Query(ctx, `
		SELECT SUM(amount_ml)::int
		FROM water_logs
		WHERE user_id = $1 AND logged_at >= $2 AND logged_at < $3
		GROUP BY (logged_at AT TIME ZONE 'UTC')::date
		ORDER BY (logged_at AT TIME ZONE 'UTC')::date`,
		userID, start, end)
	if err != nil {
		return nil, mapPgError(op, err)
	}

	totals, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return nil, mapPgError(op, err)
	}

	return totals, nil
}
