package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/mindwell/internal/models"
	"github.com/pribylovaa/mindwell/internal/storage"
)

// commentQuery не фильтрует удалённые: решение о заглушках принимает сервис.
func commentQuery(viewerID int64) sq.SelectBuilder {
	return psql.Select(
		"c.comment_id", "c.thread_id", "c.user_id", "c.parent_comment_id", "c.content",
		"c.created_at", "c.updated_at", "c.deleted_at", "c.deleted_by", "u.username",
		"(SELECT COUNT(*) FROM comment_likes l WHERE l.comment_id = c.comment_id)",
	).
		Column("EXISTS(SELECT 1 FROM comment_likes l WHERE l.comment_id = c.comment_id AND l.user_id = ?)", viewerID).
		From("comments c").
		LeftJoin("users u ON u.user_id = c.user_id")
}

func scanComment(row pgx.Row) (models.Comment, error) {
	var c models.Comment
	err := row.Scan(
		&c.ID, &c.ThreadID, &c.UserID, &c.ParentCommentID, &c.Content,
		&c.CreatedAt, &c.UpdatedAt, &c.DeletedAt, &c.DeletedBy, &c.Username,
		&c.LikeCount, &c.UserLiked,
	)
	c.IsDeleted = c.DeletedAt != nil
	return c, err
}

func commentByID(ctx context.Context, q querier, id, viewerID int64) (*models.Comment, error) {
	query, args, err := commentQuery(viewerID).Where(sq.Eq{"c.comment_id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	c, err := scanComment(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// CommentsByThread — все комментарии треда в хронологическом порядке.
func (s *Storage) CommentsByThread(ctx context.Context, threadID, viewerID int64) ([]models.Comment, error) {
	const op = "storage.postgres.CommentsByThread"

	query, args, err := commentQuery(viewerID).
		Where(sq.Eq{"c.thread_id": threadID}).
		OrderBy("c.created_at ASC", "c.comment_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapPgError(op, err)
	}

	comments, err := pgx.CollectRows(rows, func(r pgx.CollectableRow) (models.Comment, error) { return scanComment(r) })
	if err != nil {
		return nil, mapPgError(op, err)
	}

	return comments, nil
}

func (s *Storage) CommentByID(ctx context.Context, id int64) (*models.Comment, error) {
	const op = "storage.postgres.CommentByID"

	c, err := commentByID(ctx, s.db, id, 0)
	if err != nil {
		return nil, mapPgError(op, err)
	}

	return c, nil
}

func (s *Storage) CreateComment(ctx context.Context, c *models.Comment) (*models.Comment, error) {
	const op = "storage.postgres.CreateComment"

	var created models.Comment
	err := s.db.QueryRow(ctx, `
		INSERT INTO comments (thread_id, user_id, parent_comment_id, content)
		VALUES ($1, $2, $3, $4)
		RETURNING comment_id, thread_id, user_id, parent_comment_id, content, created_at, updated_at,
		          (SELECT username FROM users WHERE user_id = $2)`,
		c.ThreadID, c.UserID, c.ParentCommentID, c.Content,
	).Scan(
		&created.ID, &created.ThreadID, &created.UserID, &created.ParentCommentID, &created.Content,
		&created.CreatedAt, &created.UpdatedAt, &created.Username,
	)
	if err != nil {
		return nil, mapPgError(op, err)
	}

	return &created, nil
}

// EditComment сохраняет прежний текст в comment_edits и обновляет комментарий.
func (s *Storage) EditComment(ctx context.Context, id, editorID int64, content string, reason *string) (*models.Comment, error) {
	const op = "storage.postgres.EditComment"

	var edited *models.Comment
	err := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		var prev string
		err := tx.QueryRow(ctx, `
			SELECT content FROM comments
			WHERE comment_id = $1 AND deleted_at IS NULL
			FOR UPDATE`, id,
		).Scan(&prev)
		if err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, `
			INSERT INTO comment_edits (comment_id, editor_id, previous_content, edit_reason)
			VALUES ($1, $2, $3, $4)`, id, editorID, prev, reason,
		); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, `
			UPDATE comments SET content = $2, updated_at = now()
			WHERE comment_id = $1`, id, content,
		); err != nil {
			return err
		}

		edited, err = commentByID(ctx, tx, id, editorID)
		return err
	})
	if err != nil {
		return nil, mapPgError(op, err)
	}

	return edited, nil
}

func (s *Storage) SoftDeleteComment(ctx context.Context, id, actorID int64) error {
	const op = "storage.postgres.SoftDeleteComment"

	tag, err := s.db.Exec(ctx, `
		UPDATE comments SET deleted_at = now(), deleted_by = $2
		WHERE comment_id = $1 AND deleted_at IS NULL`, id, actorID)
	if err != nil {
		return mapPgError(op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func (s *Storage) CommentEdits(ctx context.Context, commentID int64) ([]models.ContentEdit, error) {
	const op = "storage.postgres.CommentEdits"

	rows, err := s.db.Query(ctx, `
		SELECT edit_id, comment_id, editor_id, NULL::text, previous_content, edit_reason, edited_at
		FROM comment_edits
		WHERE comment_id = $1
		ORDER BY edited_at DESC, edit_id DESC`, commentID)
	if err != nil {
		return nil, mapPgError(op, err)
	}

	edits, err := pgx.CollectRows(rows, scanEdit)
	if err != nil {
		return nil, mapPgError(op, err)
	}

	return edits, nil
}

func (s *Storage) ToggleCommentLike(ctx context.Context, commentID, userID int64) (*models.LikeResult, error) {
	const op = "storage.postgres.ToggleCommentLike"

	res, err := s.toggleLike(ctx, commentLikes, commentID, userID)
	if err != nil {
		return nil, mapPgError(op, err)
	}

	return res, nil
}
