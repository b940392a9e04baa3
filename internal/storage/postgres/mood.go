package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/mindwell/internal/models"
)

func (s *Storage) CreateMoodLog(ctx context.Context, m *models.MoodLog) (*models.MoodLog, error) {
	const op = "storage.postgres.CreateMoodLog"

	var created models.MoodLog
	err := s.db.QueryRow(ctx, `
		INSERT INTO mood_logs (user_id, mood, note, mood_intensity)
		VALUES ($1, $2, $3, $4)
		RETURNING log_id, user_id, mood, note, mood_intensity, logged_at`,
		m.UserID, m.Mood, m.Note, m.Intensity,
	).Scan(&created.ID, &created.UserID, &created.Mood, &created.Note, &created.Intensity, &created.LoggedAt)
	if err != nil {
		return nil, mapPgError(op, err)
	}

	return &created, nil
}

// MoodLogs возвращает логи пользователя в [from, to] по возрастанию времени.
func (s *Storage) MoodLogs(ctx context.Context, userID int64, from, to *time.Time) ([]models.MoodLog, error) {
	const op = "storage.postgres.MoodLogs"

	b := psql.Select("log_id", "user_id", "mood", "note", "mood_intensity", "logged_at").
		From("mood_logs").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("logged_at ASC", "log_id ASC")
	if from != nil {
		b = b.Where(sq.GtOrEq{"logged_at": *from})
	}
	if to != nil {
		b = b.Where(sq.LtOrEq{"logged_at": *to})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapPgError(op, err)
	}

	logs, err := pgx.CollectRows(rows, func(r pgx.CollectableRow) (models.MoodLog, error) {
		var m models.MoodLog
		err := r.Scan(&m.ID, &m.UserID, &m.Mood, &m.Note, &m.Intensity, &m.LoggedAt)
		return m, err
	})
	if err != nil {
		return nil, mapPgError(op, err)
	}

	return logs, nil
}

// MoodSummary агрегирует все логи; средний балл — средняя интенсивность.
func (s *Storage) MoodSummary(ctx context.Context) (*models.MoodSummary, error) {
	const op = "storage.postgres.MoodSummary"

	sum := models.MoodSummary{MoodCounts: map[string]int64{}}
	err := s.db.QueryRow(ctx, `
		SELECT COUNT(*), AVG(mood_intensity)::float8 FROM mood_logs`,
	).Scan(&sum.TotalEntries, &sum.AverageMoodScore)
	if err != nil {
		return nil, mapPgError(op, err)
	}

	rows, err := s.db.Query(ctx, `SELECT mood, COUNT(*) FROM mood_logs GROUP BY mood`)
	if err != nil {
		return nil, mapPgError(op, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			mood string
			n    int64
		)
		if err := rows.Scan(&mood, &n); err != nil {
			return nil, mapPgError(op, err)
		}
		sum.MoodCounts[mood] = n
	}

	if err := rows.Err(); err != nil {
		return nil, mapPgError(op, err)
	}

	return &sum, nil
}
