package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/mindwell/internal/models"
)

// UserActivity — публичный профиль, живые треды и комментарии пользователя и сводка лайков.
func (s *Storage) UserActivity(ctx context.Context, userID, viewerID int64) (*models.CommunityProfile, error) {
	const op = "storage.postgres.UserActivity"

	var p models.CommunityProfile
	err := s.db.QueryRow(ctx, `
		SELECT user_id, username, profile_image, created_at FROM users WHERE user_id = $1`, userID,
	).Scan(&p.User.ID, &p.User.Username, &p.User.ProfileImage, &p.User.CreatedAt)
	if err != nil {
		return nil, mapPgError(op, err)
	}

	p.Threads, err = queryThreads(ctx, s.db, threadQuery(viewerID).
		Where(sq.Eq{"t.user_id": userID}).
		OrderBy("t.created_at DESC", "t.thread_id DESC"))
	if err != nil {
		return nil, mapPgError(op, err)
	}

	query, args, err := commentQuery(viewerID).
		Column("t.title").
		Join("threads t ON t.thread_id = c.thread_id AND t.deleted_at IS NULL").
		Where(sq.Eq{"c.user_id": userID}).
		Where("c.deleted_at IS NULL").
		OrderBy("c.created_at DESC", "c.comment_id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapPgError(op, err)
	}

	p.Comments, err = pgx.CollectRows(rows, func(r pgx.CollectableRow) (models.Comment, error) {
		var c models.Comment
		err := r.Scan(
			&c.ID, &c.ThreadID, &c.UserID, &c.ParentCommentID, &c.Content,
			&c.CreatedAt, &c.UpdatedAt, &c.DeletedAt, &c.DeletedBy, &c.Username,
			&c.LikeCount, &c.UserLiked, &c.ThreadTitle,
		)
		return c, err
	})
	if err != nil {
		return nil, mapPgError(op, err)
	}

	p.Stats.ThreadCount = int64(len(p.Threads))
	p.Stats.CommentCount = int64(len(p.Comments))
	for _, t := range p.Threads {
		p.Stats.TotalLikes += t.LikeCount
	}
	for _, c := range p.Comments {
		p.Stats.TotalLikes += c.LikeCount
	}

	return &p, nil
}
