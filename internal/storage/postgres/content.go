package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/mindwell/internal/models"
	"github.com/pribylovaa/mindwell/internal/storage"
)

const meditationColumns = `meditation_id, title, description, theme, audio_url, duration_seconds, created_at, updated_at`

func scanMeditation(row pgx.Row) (models.Meditation, error) {
	var m models.Meditation
	err := row.Scan(&m.ID, &m.Title, &m.Description, &m.Theme, &m.AudioURL, &m.DurationSeconds, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

func (s *Storage) Meditations(ctx context.Context) ([]models.Meditation, error) {
	const op = "storage.postgres.Meditations"

	rows, err := s.db.Query(ctx, `SELECT `+meditationColumns+` FROM meditations ORDER BY theme NULLS LAST, title`)
	if err != nil {
		return nil, mapPgError(op, err)
	}

	list, err := pgx.CollectRows(rows, func(r pgx.CollectableRow) (models.Meditation, error) { return scanMeditation(r) })
	if err != nil {
		return nil, mapPgError(op, err)
	}

	return list, nil
}

func (s *Storage) CreateMeditation(ctx context.Context, m *models.Meditation) (*models.Meditation, error) {
	const op = "storage.postgres.CreateMeditation"

	created, err := scanMeditation(s.db.QueryRow(ctx, `
		INSERT INTO meditations (title, description, theme, audio_url, duration_seconds)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+meditationColumns,
		m.Title, m.Description, m.Theme, m.AudioURL, m.DurationSeconds,
	))
	if err != nil {
		return nil, mapPgError(op, err)
	}

	return &created, nil
}

func (s *Storage) UpdateMeditation(ctx context.Context, id int64, upd storage.MeditationUpdate) (*models.Meditation, error) {
	const op = "storage.postgres.UpdateMeditation"

	if upd.Empty() {
		return nil, fmt.Errorf("%s: %w: empty update", op, storage.ErrInvalidValue)
	}

	set := map[string]any{"updated_at": sqNow}
	putIf(set, "title", upd.Title)
	putIf(set, "description", upd.Description)
	putIf(set, "theme", upd.Theme)
	putIf(set, "audio_url", upd.AudioURL)
	putIf(set, "duration_seconds", upd.DurationSeconds)

	query, args, err := psql.Update("meditations").
		SetMap(set).
		Where(sq.Eq{"meditation_id": id}).
		Suffix("RETURNING " + meditationColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	m, err := scanMeditation(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, mapPgError(op, err)
	}

	return &m, nil
}

func (s *Storage) DeleteMeditation(ctx context.Context, id int64) error {
	const op = "storage.postgres.DeleteMeditation"

	return deleteByID(ctx, s.db, op, `DELETE FROM meditations WHERE meditation_id = $1`, id)
}

const resourceColumns = `resource_id, category, title, description, contact_info, link, created_at, updated_at`

func scanResource(row pgx.Row) (models.Resource, error) {
	var r models.Resource
	err := row.Scan(&r.ID, &r.Category, &r.Title, &r.Description, &r.ContactInfo, &r.Link, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

func (s *Storage) Resources(ctx context.Context) ([]models.Resource, error) {
	const op = "storage.postgres.Resources"

	rows, err := s.db.Query(ctx, `SELECT `+resourceColumns+` FROM professional_resources ORDER BY category, title`)
	if err != nil {
		return nil, mapPgError(op, err)
	}

	list, err := pgx.CollectRows(rows, func(r pgx.CollectableRow) (models.Resource, error) { return scanResource(r) })
	if err != nil {
		return nil, mapPgError(op, err)
	}

	return list, nil
}

func (s *Storage) CreateResource(ctx context.Context, r *models.Resource) (*models.Resource, error) {
	const op = "storage.postgres.CreateResource"

	created, err := scanResource(s.db.QueryRow(ctx, `
		INSERT INTO professional_resources (category, title, description, contact_info, link)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+resourceColumns,
		r.Category, r.Title, r.Description, r.ContactInfo, r.Link,
	))
	if err != nil {
		return nil, mapPgError(op, err)
	}

	return &created, nil
}

func (s *Storage) UpdateResource(ctx context.Context, id int64, upd storage.ResourceUpdate) (*models.Resource, error) {
	const op = "storage.postgres.UpdateResource"

	if upd.Empty() {
		return nil, fmt.Errorf("%s: %w: empty update", op, storage.ErrInvalidValue)
	}

	set := map[string]any{"updated_at": sqNow}
	putIf(set, "category", upd.Category)
	putIf(set, "title", upd.Title)
	putIf(set, "description", upd.Description)
	putIf(set, "contact_info", upd.ContactInfo)
	putIf(set, "link", upd.Link)

	query, args, err := psql.Update("professional_resources").
		SetMap(set).
		Where(sq.Eq{"resource_id": id}).
		Suffix("RETURNING " + resourceColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	r, err := scanResource(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, mapPgError(op, err)
	}

	return &r, nil
}

func (s *Storage) DeleteResource(ctx context.Context, id int64) error {
	const op = "storage.postgres.DeleteResource"

	return deleteByID(ctx, s.db, op, `DELETE FROM professional_resources WHERE resource_id = $1`, id)
}

func deleteByID(ctx context.Context, q querier, op, query string, id int64) error {
	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return mapPgError(op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
