package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/mindwell/internal/models"
)

// likeTarget — фиксированный набор SQL для одной пары (таблица лайков, таблица цели).
type likeTarget struct {
	alive  string
	exists string
	delete string
	insert string
	count  string
}

var threadLikes = likeTarget{
	alive:  `SELECT EXISTS(SELECT 1 FROM threads WHERE thread_id = $1 AND deleted_at IS NULL)`,
	exists: `SELECT EXISTS(SELECT 1 FROM thread_likes WHERE thread_id = $1 AND user_id = $2)`,
	delete: `DELETE FROM thread_likes WHERE thread_id = $1 AND user_id = $2`,
	insert: `INSERT INTO thread_likes (thread_id, user_id) VALUES ($1, $2)`,
	count:  `SELECT COUNT(*) FROM thread_likes WHERE thread_id = $1`,
}

var commentLikes = likeTarget{
	alive:  `SELECT EXISTS(SELECT 1 FROM comments WHERE comment_id = $1 AND deleted_at IS NULL)`,
	exists: `SELECT EXISTS(SELECT 1 FROM comment_likes WHERE comment_id = $1 AND user_id = $2)`,
	delete: `DELETE FROM comment_likes WHERE comment_id = $1 AND user_id = $2`,
	insert: `INSERT INTO comment_likes (comment_id, user_id) VALUES ($1, $2)`,
	count:  `SELECT COUNT(*) FROM comment_likes WHERE comment_id = $1`,
}

// toggleLike: проверка строки → удаление или вставка → COUNT(*) в одной транзакции.
// Гонка двух вставок отдаёт unique violation, которую вызывающий видит как ErrAlreadyExists.
func (s *Storage) toggleLike(ctx context.Context, t likeTarget, targetID, userID int64) (*models.LikeResult, error) {
	var res models.LikeResult

	err := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		var alive bool
		if err := tx.QueryRow(ctx, t.alive, targetID).Scan(&alive); err != nil {
			return err
		}
		if !alive {
			return pgx.ErrNoRows
		}

		var liked bool
		if err := tx.QueryRow(ctx, t.exists, targetID, userID).Scan(&liked); err != nil {
			return err
		}

		stmt := t.insert
		if liked {
			stmt = t.delete
		}
		if _, err := tx.Exec(ctx, stmt, targetID, userID); err != nil {
			return err
		}
		res.Liked = !liked

		return tx.QueryRow(ctx, t.count, targetID).Scan(&res.LikeCount)
	})
	if err != nil {
		return nil, err
	}

	return &res, nil
}
