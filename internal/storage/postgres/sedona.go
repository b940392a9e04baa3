package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/mindwell/internal/models"
)

func (s *Storage) CreateSedonaLog(ctx context.Context, userID int64, reflection *string) (*models.SedonaLog, error) {
	const op = "storage.postgres.CreateSedonaLog"

	var l models.SedonaLog
	err := s.db.QueryRow(ctx, `
		INSERT INTO sedona_method_logs (user_id, reflection_text)
		VALUES ($1, $2)
		RETURNING log_id, user_id, session_timestamp, reflection_text`,
		userID, reflection,
	).Scan(&l.ID, &l.UserID, &l.SessionAt, &l.ReflectionText)
	if err != nil {
		return nil, mapPgError(op, err)
	}

	return &l, nil
}

func (s *Storage) SedonaLogs(ctx context.Context, userID int64) ([]models.SedonaLog, error) {
	const op = "storage.postgres.SedonaLogs"

	rows, err := s.db.Query(ctx, `
		SELECT log_id, user_id, session_timestamp, reflection_text
		FROM sedona_method_logs
		WHERE user_id = $1
		ORDER BY session_timestamp DESC, log_id DESC`, userID)
	if err != nil {
		return nil, mapPgError(op, err)
	}

	logs, err := pgx.CollectRows(rows, func(r pgx.CollectableRow) (models.SedonaLog, error) {
		var l models.SedonaLog
		err := r.Scan(&l.ID, &l.UserID, &l.SessionAt, &l.ReflectionText)
		return l, err
	})
	if err != nil {
		return nil, mapPgError(op, err)
	}

	return logs, nil
}
