package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/mindwell/internal/models"
	"github.com/pribylovaa/mindwell/internal/storage"
)

// TIME отдаётся текстом HH:MM:SS.
const reminderColumns = `id, user_id, type, title, to_char(time, 'HH24:MI:SS'), frequency_hours, enabled, created_at, updated_at`

func scanReminder(row pgx.Row) (models.Reminder, error) {
	var r models.Reminder
	err := row.Scan(&r.ID, &r.UserID, &r.Type, &r.Title, &r.Time, &r.FrequencyHours, &r.Enabled, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

func (s *Storage) Reminders(ctx context.Context, userID int64) ([]models.Reminder, error) {
	const op = "storage.postgres.Reminders"

	rows, err := s.db.Query(ctx, `SELECT `+reminderColumns+` FROM reminders WHERE user_id = $1 ORDER BY time, id`, userID)
	if err != nil {
		return nil, mapPgError(op, err)
	}

	reminders, err := pgx.CollectRows(rows, func(r pgx.CollectableRow) (models.Reminder, error) { return scanReminder(r) })
	if err != nil {
		return nil, mapPgError(op, err)
	}

	return reminders, nil
}

func (s *Storage) CreateReminder(ctx context.Context, r *models.Reminder) (*models.Reminder, error) {
	const op = "storage.postgres.CreateReminder"

	created, err := scanReminder(s.db.QueryRow(ctx, `
		INSERT INTO reminders (user_id, type, title, time, frequency_hours, enabled)
		VALUES ($1, $2, $3, $4::time, $5, $6)
		RETURNING `+reminderColumns,
		r.UserID, r.Type, r.Title, r.Time, r.FrequencyHours, r.Enabled,
	))
	if err != nil {
		return nil, mapPgError(op, err)
	}

	return &created, nil
}

// UpdateReminder меняет только заданные поля напоминания нужного типа.
func (s *Storage) UpdateReminder(ctx context.Context, userID int64, typ string, id int64, upd storage.ReminderUpdate) (*models.Reminder, error) {
	const op = "storage.postgres.UpdateReminder"

	if upd.Empty() {
		return nil, fmt.Errorf("%s: %w: empty update", op, storage.ErrInvalidValue)
	}

	set := map[string]any{"updated_at": sqNow}
	putIf(set, "title", upd.Title)
	if upd.Time != nil {
		set["time"] = sq.Expr("?::time", *upd.Time)
	}
	putIf(set, "enabled", upd.Enabled)
	putIf(set, "frequency_hours", upd.FrequencyHours)

	query, args, err := psql.Update("reminders").
		SetMap(set).
		Where(sq.Eq{"id": id, "user_id": userID, "type": typ}).
		Suffix("RETURNING " + reminderColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	r, err := scanReminder(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, mapPgError(op, err)
	}

	return &r, nil
}

func (s *Storage) DeleteReminder(ctx context.Context, userID int64, typ string, id int64) error {
	const op = "storage.postgres.DeleteReminder"

	tag, err := s.db.Exec(ctx, `DELETE FROM reminders WHERE id = $1 AND user_id = $2 AND type = $3`, id, userID, typ)
	if err != nil {
		return mapPgError(op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
