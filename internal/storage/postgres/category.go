package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/mindwell/internal/models"
)

func scanCategory(r pgx.CollectableRow) (models.Category, error) {
	var c models.Category
	err := r.Scan(&c.ID, &c.Name, &c.Description)
	return c, err
}

func (s *Storage) Categories(ctx context.Context) ([]models.Category, error) {
	const op = "storage.postgres.Categories"

	rows, err := s.db.Query(ctx, `SELECT category_id, name, description FROM thread_categories ORDER BY name`)
	if err != nil {
		return nil, mapPgError(op, err)
	}

	cats, err := pgx.CollectRows(rows, scanCategory)
	if err != nil {
		return nil, mapPgError(op, err)
	}

	return cats, nil
}

// AddThreadCategories привязывает категории к треду; повторы игнорируются.
// Неизвестная категория даёт ErrInvalidReference.
func (s *Storage) AddThreadCategories(ctx context.Context, threadID int64, categoryIDs []int64) ([]models.ThreadCategoryMapping, error) {
	const op = "storage.postgres.AddThreadCategories"

	var mappings []models.ThreadCategoryMapping
	err := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			INSERT INTO thread_category_mappings (thread_id, category_id)
			SELECT $1, unnest($2::bigint[])
			ON CONFLICT DO NOTHING`, threadID, categoryIDs,
		); err != nil {
			return err
		}

		rows, err := tx.Query(ctx, `
			SELECT thread_id, category_id FROM thread_category_mappings
			WHERE thread_id = $1 ORDER BY category_id`, threadID)
		if err != nil {
			return err
		}

		mappings, err = pgx.CollectRows(rows, func(r pgx.CollectableRow) (models.ThreadCategoryMapping, error) {
			var m models.ThreadCategoryMapping
			err := r.Scan(&m.ThreadID, &m.CategoryID)
			return m, err
		})
		return err
	})
	if err != nil {
		return nil, mapPgError(op, err)
	}

	return mappings, nil
}
