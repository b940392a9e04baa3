package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/mindwell/internal/storage"
)

func (s *Storage) UserRoles(ctx context.Context, userID int64) ([]string, error) {
	const op = "storage.postgres.UserRoles"

	rows, err := s.db.Query(ctx, `
		SELECT r.name FROM user_role_mappings m
		JOIN user_roles r ON r.role_id = m.role_id
		WHERE m.user_id = $1
		ORDER BY r.name`, userID)
	if err != nil {
		return nil, mapPgError(op, err)
	}

	roles, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, mapPgError(op, err)
	}

	return roles, nil
}

func (s *Storage) HasAnyRole(ctx context.Context, userID int64, roles ...string) (bool, error) {
	const op = "storage.postgres.HasAnyRole"

	var ok bool
	err := s.db.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM user_role_mappings m
			JOIN user_roles r ON r.role_id = m.role_id
			WHERE m.user_id = $1 AND r.name = ANY($2)
		)`, userID, roles).Scan(&ok)
	if err != nil {
		return false, mapPgError(op, err)
	}

	return ok, nil
}

// AssignRole назначает роль; повторное назначение ничего не меняет.
func (s *Storage) AssignRole(ctx context.Context, userID int64, role string) error {
	const op = "storage.postgres.AssignRole"

	err := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		var roleID int
		if err := tx.QueryRow(ctx, `SELECT role_id FROM user_roles WHERE name = $1`, role).Scan(&roleID); err != nil {
			return err
		}

		_, err := tx.Exec(ctx, `
			INSERT INTO user_role_mappings (user_id, role_id) VALUES ($1, $2)
			ON CONFLICT DO NOTHING`, userID, roleID)
		return err
	})
	if err != nil {
		return mapPgError(op, err)
	}

	return nil
}

func (s *Storage) RemoveRole(ctx context.Context, userID int64, role string) error {
	const op = "storage.postgres.RemoveRole"

	tag, err := s.db.Exec(ctx, `
		DELETE FROM user_role_mappings m
		USING user_roles r
		WHERE m.role_id = r.role_id AND m.user_id = $1 AND r.name = $2`, userID, role)
	if err != nil {
		return mapPgError(op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
