package postgres

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/mindwell/internal/models"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern строит ILIKE-шаблон «подстрока», экранируя спецсимволы.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// SearchThreads ищет по заголовку и тексту живых тредов и по живым комментариям.
func (s *Storage) SearchThreads(ctx context.Context, term string) ([]models.SearchHit, error) {
	const op = "storage.postgres.SearchThreads"

	rows, err := s.db.Query(ctx, `
		SELECT t.thread_id, t.user_id, t.topic_id, t.title, t.content, t.created_at, t.updated_at,
		       u.username,
		       (SELECT COUNT(*) FROM comments c WHERE c.thread_id = t.thread_id AND c.deleted_at IS NULL),
		       (SELECT COUNT(*) FROM thread_likes l WHERE l.thread_id = t.thread_id),
		       ARRAY(
		           SELECT tc.name FROM thread_category_mappings m
		           JOIN thread_categories tc ON tc.category_id = m.category_id
		           WHERE m.thread_id = t.thread_id ORDER BY tc.name
		       )
		FROM threads t
		LEFT JOIN users u ON u.user_id = t.user_id
		WHERE t.deleted_at IS NULL
		  AND (
		      t.title ILIKE $1 ESCAPE '\'
		      OR t.content ILIKE $1 ESCAPE '\'
		      OR EXISTS (
		          SELECT 1 FROM comments c
		          WHERE c.thread_id = t.thread_id AND c.deleted_at IS NULL
		            AND c.content ILIKE $1 ESCAPE '\'
		      )
		  )
		ORDER BY t.created_at DESC, t.thread_id DESC`, containsPattern(term))
	if err != nil {
		return nil, mapPgError(op, err)
	}

	hits, err := pgx.CollectRows(rows, func(r pgx.CollectableRow) (models.SearchHit, error) {
		var h models.SearchHit
		err := r.Scan(&h.ThreadID, &h.UserID, &h.TopicID, &h.Title, &h.Content, &h.CreatedAt, &h.UpdatedAt,
			&h.AuthorName, &h.CommentCount, &h.LikeCount, &h.CategoryNames)
		return h, err
	})
	if err != nil {
		return nil, mapPgError(op, err)
	}

	return hits, nil
}
