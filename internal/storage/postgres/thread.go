package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/mindwell/internal/models"
	"github.com/pribylovaa/mindwell/internal/storage"
)

// threadQuery — тред с автором и живыми счётчиками для зрителя viewerID.
func threadQuery(viewerID int64) sq.SelectBuilder {
	return psql.Select(
		"t.thread_id", "t.user_id", "t.topic_id", "t.title", "t.content",
		"t.created_at", "t.updated_at", "u.username",
		"(SELECT COUNT(*) FROM comments c WHERE c.thread_id = t.thread_id AND c.deleted_at IS NULL)",
		"(SELECT COUNT(*) FROM thread_likes l WHERE l.thread_id = t.thread_id)",
	).
		Column("EXISTS(SELECT 1 FROM thread_likes l WHERE l.thread_id = t.thread_id AND l.user_id = ?)", viewerID).
		From("threads t").
		LeftJoin("users u ON u.user_id = t.user_id").
		Where("t.deleted_at IS NULL")
}

func scanThread(row pgx.Row) (models.Thread, error) {
	var t models.Thread
	err := row.Scan(
		&t.ID, &t.UserID, &t.TopicID, &t.Title, &t.Content,
		&t.CreatedAt, &t.UpdatedAt, &t.AuthorName,
		&t.CommentsCount, &t.LikeCount, &t.UserLiked,
	)
	return t, err
}

func queryThreads(ctx context.Context, q querier, b sq.SelectBuilder) ([]models.Thread, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(r pgx.CollectableRow) (models.Thread, error) { return scanThread(r) })
}

func threadByID(ctx context.Context, q querier, id, viewerID int64) (*models.Thread, error) {
	query, args, err := threadQuery(viewerID).Where(sq.Eq{"t.thread_id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	t, err := scanThread(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, err
	}

	return &t, nil
}

// ThreadsByTopic — живые треды топика, новые сверху.
func (s *Storage) ThreadsByTopic(ctx context.Context, topicID, viewerID int64, page storage.Page) ([]models.Thread, error) {
	const op = "storage.postgres.ThreadsByTopic"

	b := threadQuery(viewerID).
		Where(sq.Eq{"t.topic_id": topicID}).
		OrderBy("t.created_at DESC", "t.thread_id DESC")

	threads, err := queryThreads(ctx, s.db, window(b, page))
	if err != nil {
		return nil, mapPgError(op, err)
	}

	return threads, nil
}

func (s *Storage) ThreadByID(ctx context.Context, id, viewerID int64) (*models.Thread, error) {
	const op = "storage.postgres.ThreadByID"

	t, err := threadByID(ctx, s.db, id, viewerID)
	if err != nil {
		return nil, mapPgError(op, err)
	}

	rows, err := s.db.Query(ctx, `
		SELECT tc.category_id, tc.name, tc.description
		FROM thread_category_mappings m
		JOIN thread_categories tc ON tc.category_id = m.category_id
		WHERE m.thread_id = $1
		ORDER BY tc.name`, id)
	if err != nil {
		return nil, mapPgError(op, err)
	}

	t.Categories, err = pgx.CollectRows(rows, scanCategory)
	if err != nil {
		return nil, mapPgError(op, err)
	}

	return t, nil
}

func (s *Storage) CreateThread(ctx context.Context, t *models.Thread) (*models.Thread, error) {
	const op = "storage.postgres.CreateThread"

	var created models.Thread
	err := s.db.QueryRow(ctx, `
		INSERT INTO threads (user_id, topic_id, title, content)
		VALUES ($1, $2, $3, $4)
		RETURNING thread_id, user_id, topic_id, title, content, created_at, updated_at,
		          (SELECT username FROM users WHERE user_id = $1)`,
		t.UserID, t.TopicID, t.Title, t.Content,
	).Scan(
		&created.ID, &created.UserID, &created.TopicID, &created.Title, &created.Content,
		&created.CreatedAt, &created.UpdatedAt, &created.AuthorName,
	)
	if err != nil {
		return nil, mapPgError(op, err)
	}

	return &created, nil
}

// EditThread сохраняет прежние title/content в thread_edits и обновляет тред.
func (s *Storage) EditThread(ctx context.Context, id, editorID int64, title, content string, reason *string) (*models.Thread, error) {
	const op = "storage.postgres.EditThread"

	var edited *models.Thread
	err := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		var prevTitle, prevContent string
		err := tx.QueryRow(ctx, `
			SELECT title, content FROM threads
			WHERE thread_id = $1 AND deleted_at IS NULL
			FOR UPDATE`, id,
		).Scan(&prevTitle, &prevContent)
		if err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, `
			INSERT INTO thread_edits (thread_id, editor_id, previous_title, previous_content, edit_reason)
			VALUES ($1, $2, $3, $4, $5)`,
			id, editorID, prevTitle, prevContent, reason,
		); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, `
			UPDATE threads SET title = $2, content = $3, updated_at = now()
			WHERE thread_id = $1`, id, title, content,
		); err != nil {
			return err
		}

		edited, err = threadByID(ctx, tx, id, editorID)
		return err
	})
	if err != nil {
		return nil, mapPgError(op, err)
	}

	return edited, nil
}

// SoftDeleteThread помечает тред удалённым; комментарии не трогаются.
func (s *Storage) SoftDeleteThread(ctx context.Context, id, actorID int64) error {
	const op = "storage.postgres.SoftDeleteThread"

	tag, err := s.db.Exec(ctx, `
		UPDATE threads SET deleted_at = now(), deleted_by = $2
		WHERE thread_id = $1 AND deleted_at IS NULL`, id, actorID)
	if err != nil {
		return mapPgError(op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func (s *Storage) ThreadEdits(ctx context.Context, threadID int64) ([]models.ContentEdit, error) {
	const op = "storage.postgres.ThreadEdits"

	rows, err := s.db.Query(ctx, `
		SELECT edit_id, thread_id, editor_id, previous_title, previous_content, edit_reason, edited_at
		FROM thread_edits
		WHERE thread_id = $1
		ORDER BY edited_at DESC, edit_id DESC`, threadID)
	if err != nil {
		return nil, mapPgError(op, err)
	}

	edits, err := pgx.CollectRows(rows, scanEdit)
	if err != nil {
		return nil, mapPgError(op, err)
	}

	return edits, nil
}

func scanEdit(r pgx.CollectableRow) (models.ContentEdit, error) {
	var e models.ContentEdit
	err := r.Scan(&e.ID, &e.TargetID, &e.EditorID, &e.PreviousTitle, &e.PreviousContent, &e.EditReason, &e.EditedAt)
	return e, err
}

func (s *Storage) ToggleThreadLike(ctx context.Context, threadID, userID int64) (*models.LikeResult, error) {
	const op = "storage.postgres.ToggleThreadLike"

	res, err := s.toggleLike(ctx, threadLikes, threadID, userID)
	if err != nil {
		return nil, mapPgError(op, err)
	}

	return res, nil
}
