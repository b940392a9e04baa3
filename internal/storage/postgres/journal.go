package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/mindwell/internal/models"
	"github.com/pribylovaa/mindwell/internal/storage"
)

const journalSelect = `
	SELECT je.id, je.user_id, je.title, je.content, je.mood, je.is_locked,
	       je.category_id, jc.name, je.created_at, je.updated_at
	FROM journal_entries je
	LEFT JOIN journal_categories jc ON jc.category_id = je.category_id`

func scanJournalEntry(row pgx.Row) (models.JournalEntry, error) {
	var e models.JournalEntry
	err := row.Scan(&e.ID, &e.UserID, &e.Title, &e.Content, &e.Mood, &e.IsLocked,
		&e.CategoryID, &e.CategoryName, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

func journalEntry(ctx context.Context, q querier, userID, id int64) (*models.JournalEntry, error) {
	e, err := scanJournalEntry(q.QueryRow(ctx, journalSelect+` WHERE je.user_id = $1 AND je.id = $2`, userID, id))
	if err != nil {
		return nil, err
	}

	return &e, nil
}

func (s *Storage) JournalEntries(ctx context.Context, userID int64) ([]models.JournalEntry, error) {
	const op = "storage.postgres.JournalEntries"

	rows, err := s.db.Query(ctx, journalSelect+` WHERE je.user_id = $1 ORDER BY je.created_at DESC, je.id DESC`, userID)
	if err != nil {
		return nil, mapPgError(op, err)
	}

	entries, err := pgx.CollectRows(rows, func(r pgx.CollectableRow) (models.JournalEntry, error) { return scanJournalEntry(r) })
	if err != nil {
		return nil, mapPgError(op, err)
	}

	return entries, nil
}

// JournalEntry возвращает запись только её владельцу; для чужой записи ErrNotFound.
func (s *Storage) JournalEntry(ctx context.Context, userID, id int64) (*models.JournalEntry, error) {
	const op = "storage.postgres.JournalEntry"

	e, err := journalEntry(ctx, s.db, userID, id)
	if err != nil {
		return nil, mapPgError(op, err)
	}

	return e, nil
}

func (s *Storage) CreateJournalEntry(ctx context.Context, e *models.JournalEntry) (*models.JournalEntry, error) {
	const op = "storage.postgres.CreateJournalEntry"

	var created *models.JournalEntry
	err := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		var id int64
		err := tx.QueryRow(ctx, `
			INSERT INTO journal_entries (user_id, title, content, mood, is_locked, category_id)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
			e.UserID, e.Title, e.Content, e.Mood, e.IsLocked, e.CategoryID,
		).Scan(&id)
		if err != nil {
			return err
		}

		created, err = journalEntry(ctx, tx, e.UserID, id)
		return err
	})
	if err != nil {
		return nil, mapPgError(op, err)
	}

	return created, nil
}

func (s *Storage) UpdateJournalEntry(ctx context.Context, userID, id int64, upd storage.JournalUpdate) (*models.JournalEntry, error) {
	const op = "storage.postgres.UpdateJournalEntry"

	var updated *models.JournalEntry
	err := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE journal_entries
			SET title = $3, content = $4, mood = $5, is_locked = $6, category_id = $7, updated_at = now()
			WHERE user_id = $1 AND id = $2`,
			userID, id, upd.Title, upd.Content, upd.Mood, upd.IsLocked, upd.CategoryID,
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}

		updated, err = journalEntry(ctx, tx, userID, id)
		return err
	})
	if err != nil {
		return nil, mapPgError(op, err)
	}

	return updated, nil
}

func (s *Storage) DeleteJournalEntry(ctx context.Context, userID, id int64) error {
	const op = "storage.postgres.DeleteJournalEntry"

	tag, err := s.db.Exec(ctx, `DELETE FROM journal_entries WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return mapPgError(op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func (s *Storage) JournalCategories(ctx context.Context) ([]models.JournalCategory, error) {
	const op = "storage.postgres.JournalCategories"

	rows, err := s.db.Query(ctx, `SELECT category_id, name FROM journal_categories ORDER BY name`)
	if err != nil {
		return nil, mapPgError(op, err)
	}

	cats, err := pgx.CollectRows(rows, func(r pgx.CollectableRow) (models.JournalCategory, error) {
		var c models.JournalCategory
		err := r.Scan(&c.ID, &c.Name)
		return c, err
	})
	if err != nil {
		return nil, mapPgError(op, err)
	}

	return cats, nil
}
