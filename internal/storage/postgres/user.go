package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/mindwell/internal/models"
	"github.com/pribylovaa/mindwell/internal/storage"
)

// userSelect читает пользователя вместе с именами его ролей.
const userSelect = `
	SELECT u.user_id, u.username, u.email, u.password_hash, u.full_name, u.date_of_birth,
	       u.gender, u.bio, u.profile_image, u.avatar_key,
	       u.emergency_contact_name, u.emergency_contact_phone, u.water_goal_ml,
	       u.journal_password_hash, u.is_banned, u.created_at, u.updated_at,
	       ARRAY(
	           SELECT r.name FROM user_role_mappings m
	           JOIN user_roles r ON r.role_id = m.role_id
	           WHERE m.user_id = u.user_id ORDER BY r.name
	       ) AS roles
	FROM users u`

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FullName, &u.DateOfBirth,
		&u.Gender, &u.Bio, &u.ProfileImage, &u.AvatarKey,
		&u.EmergencyContactName, &u.EmergencyContactPhone, &u.WaterGoalML,
		&u.JournalPasswordHash, &u.IsBanned, &u.CreatedAt, &u.UpdatedAt,
		&u.Roles,
	)
	if err != nil {
		return nil, err
	}

	u.JournalPasswordSet = u.JournalPasswordHash != nil

	return &u, nil
}

func userByID(ctx context.Context, q querier, id int64) (*models.User, error) {
	return scanUser(q.QueryRow(ctx, userSelect+` WHERE u.user_id = $1`, id))
}

// CreateUser сохраняет пользователя и назначает роль user в одной транзакции.
func (s *Storage) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	const op = "storage.postgres.CreateUser"

	var created *models.User
	err := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		var id int64
		err := tx.QueryRow(ctx, `
			INSERT INTO users (username, email, password_hash)
			VALUES ($1, $2, $3)
			RETURNING user_id`,
			user.Username, user.Email, user.PasswordHash,
		).Scan(&id)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO user_role_mappings (user_id, role_id)
			SELECT $1, role_id FROM user_roles WHERE name = $2`,
			id, models.RoleUser,
		)
		if err != nil {
			return err
		}

		created, err = userByID(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, mapPgError(op, err)
	}

	return created, nil
}

// UserByID находит пользователя по ID.
func (s *Storage) UserByID(ctx context.Context, id int64) (*models.User, error) {
	const op = "storage.postgres.UserByID"

	u, err := userByID(ctx, s.db, id)
	if err != nil {
		return nil, mapPgError(op, err)
	}

	return u, nil
}

// UserByEmail находит пользователя по email.
func (s *Storage) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.postgres.UserByEmail"

	u, err := scanUser(s.db.QueryRow(ctx, userSelect+` WHERE u.email = $1`, email))
	if err != nil {
		return nil, mapPgError(op, err)
	}

	return u, nil
}

func (s *Storage) UserTaken(ctx context.Context, email, username string, exceptID int64) (bool, bool, error) {
	const op = "storage.postgres.UserTaken"

	var emailTaken, usernameTaken bool
	err := s.db.QueryRow(ctx, `
		SELECT
			EXISTS(SELECT 1 FROM users WHERE email = $1 AND user_id <> $3),
			EXISTS(SELECT 1 FROM users WHERE username = $2 AND user_id <> $3)`,
		email, username, exceptID,
	).Scan(&emailTaken, &usernameTaken)
	if err != nil {
		return false, false, mapPgError(op, err)
	}

	return emailTaken, usernameTaken, nil
}

// UpdateUser применяет непустые поля UserUpdate.
func (s *Storage) UpdateUser(ctx context.Context, id int64, upd storage.UserUpdate) (*models.User, error) {
	const op = "storage.postgres.UpdateUser"

	if upd.Empty() {
		return nil, fmt.Errorf("%s: %w: empty update", op, storage.ErrInvalidValue)
	}

	set := map[string]any{"updated_at": sqNow}
	putIf(set, "username", upd.Username)
	putIf(set, "full_name", upd.FullName)
	putIf(set, "email", upd.Email)
	putIf(set, "date_of_birth", upd.DateOfBirth)
	putIf(set, "gender", upd.Gender)
	putIf(set, "bio", upd.Bio)
	putIf(set, "profile_image", upd.ProfileImage)
	putIf(set, "avatar_key", upd.AvatarKey)
	putIf(set, "emergency_contact_name", upd.EmergencyContactName)
	putIf(set, "emergency_contact_phone", upd.EmergencyContactPhone)
	putIf(set, "water_goal_ml", upd.WaterGoalML)

	query, args, err := psql.Update("users").SetMap(set).Where("user_id = ?", id).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var updated *models.User
	err = pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, query, args...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}

		updated, err = userByID(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, mapPgError(op, err)
	}

	return updated, nil
}

func (s *Storage) ListUsers(ctx context.Context) ([]models.User, error) {
	const op = "storage.postgres.ListUsers"

	rows, err := s.db.Query(ctx, userSelect+` ORDER BY u.created_at DESC, u.user_id DESC`)
	if err != nil {
		return nil, mapPgError(op, err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, mapPgError(op, err)
		}
		users = append(users, *u)
	}

	if err := rows.Err(); err != nil {
		return nil, mapPgError(op, err)
	}

	return users, nil
}

// DeleteUser удаляет личные данные и строку пользователя.
// Контент форума остаётся с user_id = NULL.
func (s *Storage) DeleteUser(ctx context.Context, id int64) error {
	const op = "storage.postgres.DeleteUser"

	err := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		for _, q := range []string{
			`DELETE FROM journal_entries WHERE user_id = $1`,
			`DELETE FROM mood_logs WHERE user_id = $1`,
			`DELETE FROM water_logs WHERE user_id = $1`,
		} {
			if _, err := tx.Exec(ctx, q, id); err != nil {
				return err
			}
		}

		tag, err := tx.Exec(ctx, `DELETE FROM users WHERE user_id = $1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}

		return nil
	})
	if err != nil {
		return mapPgError(op, err)
	}

	return nil
}

func (s *Storage) SetBanned(ctx context.Context, id int64, banned bool) (*models.User, error) {
	const op = "storage.postgres.SetBanned"

	tag, err := s.db.Exec(ctx,
		`UPDATE users SET is_banned = $2, updated_at = now() WHERE user_id = $1`, id, banned)
	if err != nil {
		return nil, mapPgError(op, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	u, err := userByID(ctx, s.db, id)
	if err != nil {
		return nil, mapPgError(op, err)
	}

	return u, nil
}

// SetJournalPasswordHash при hash == nil также снимает блокировку со всех записей.
func (s *Storage) SetJournalPasswordHash(ctx context.Context, id int64, hash *string) error {
	const op = "storage.postgres.SetJournalPasswordHash"

	err := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE users SET journal_password_hash = $2, updated_at = now() WHERE user_id = $1`, id, hash)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}

		if hash == nil {
			_, err = tx.Exec(ctx, `
				UPDATE journal_entries SET is_locked = FALSE, updated_at = now()
				WHERE user_id = $1 AND is_locked`, id)
		}

		return err
	})
	if err != nil {
		return mapPgError(op, err)
	}

	return nil
}
