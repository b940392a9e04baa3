package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/mindwell/internal/models"
)

const reportColumns = `report_id, reporter_id, thread_id, comment_id, reason, status, created_at, resolved_by, resolved_at`

func scanReport(row pgx.Row) (*models.Report, error) {
	var r models.Report
	err := row.Scan(&r.ID, &r.ReporterID, &r.ThreadID, &r.CommentID, &r.Reason, &r.Status,
		&r.CreatedAt, &r.ResolvedBy, &r.ResolvedAt)
	if err != nil {
		return nil, err
	}

	return &r, nil
}

func (s *Storage) CreateReport(ctx context.Context, r *models.Report) (*models.Report, error) {
	const op = "storage.postgres.CreateReport"

	created, err := scanReport(s.db.QueryRow(ctx, `
		INSERT INTO content_reports (reporter_id, thread_id, comment_id, reason)
		VALUES ($1, $2, $3, $4)
		RETURNING `+reportColumns,
		r.ReporterID, r.ThreadID, r.CommentID, r.Reason,
	))
	if err != nil {
		return nil, mapPgError(op, err)
	}

	return created, nil
}

// Reports — жалобы в статусе status на ещё живой контент, новые сверху.
func (s *Storage) Reports(ctx context.Context, status string) ([]models.Report, error) {
	const op = "storage.postgres.Reports"

	query, args, err := psql.Select(
		"r.report_id", "r.reporter_id", "r.thread_id", "r.comment_id", "r.reason", "r.status",
		"r.created_at", "r.resolved_by", "r.resolved_at", "t.title", "c.content", "u.username",
	).
		From("content_reports r").
		LeftJoin("threads t ON t.thread_id = r.thread_id").
		LeftJoin("comments c ON c.comment_id = r.comment_id").
		LeftJoin("users u ON u.user_id = r.reporter_id").
		Where(sq.Eq{"r.status": status}).
		Where("(r.thread_id IS NULL OR t.deleted_at IS NULL)").
		Where("(r.comment_id IS NULL OR c.deleted_at IS NULL)").
		OrderBy("r.created_at DESC", "r.report_id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapPgError(op, err)
	}

	reports, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Report, error) {
		var r models.Report
		err := row.Scan(&r.ID, &r.ReporterID, &r.ThreadID, &r.CommentID, &r.Reason, &r.Status,
			&r.CreatedAt, &r.ResolvedBy, &r.ResolvedAt,
			&r.ThreadTitle, &r.CommentContent, &r.ReporterUsername)
		return r, err
	})
	if err != nil {
		return nil, mapPgError(op, err)
	}

	return reports, nil
}

func (s *Storage) ResolveReport(ctx context.Context, id int64, status string, resolverID int64) (*models.Report, error) {
	const op = "storage.postgres.ResolveReport"

	r, err := scanReport(s.db.QueryRow(ctx, `
		UPDATE content_reports
		SET status = $2, resolved_by = $3, resolved_at = now()
		WHERE report_id = $1
		RETURNING `+reportColumns, id, status, resolverID))
	if err != nil {
		return nil, mapPgError(op, err)
	}

	return r, nil
}
