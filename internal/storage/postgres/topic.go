package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/mindwell/internal/models"
)

const topicSelect = `
	SELECT tp.topic_id, tp.name, tp.description,
	       (SELECT COUNT(*) FROM threads t WHERE t.topic_id = tp.topic_id AND t.deleted_at IS NULL)
	FROM topics tp`

func scanTopic(row pgx.Row) (models.Topic, error) {
	var t models.Topic
	err := row.Scan(&t.ID, &t.Name, &t.Description, &t.ThreadCount)
	return t, err
}

// Topics возвращает топики по имени с живым счётчиком тредов.
func (s *Storage) Topics(ctx context.Context) ([]models.Topic, error) {
	const op = "storage.postgres.Topics"

	rows, err := s.db.Query(ctx, topicSelect+` ORDER BY tp.name`)
	if err != nil {
		return nil, mapPgError(op, err)
	}

	topics, err := pgx.CollectRows(rows, func(r pgx.CollectableRow) (models.Topic, error) { return scanTopic(r) })
	if err != nil {
		return nil, mapPgError(op, err)
	}

	return topics, nil
}

func (s *Storage) TopicByID(ctx context.Context, id int64) (*models.Topic, error) {
	const op = "storage.postgres.TopicByID"

	t, err := scanTopic(s.db.QueryRow(ctx, topicSelect+` WHERE tp.topic_id = $1`, id))
	if err != nil {
		return nil, mapPgError(op, err)
	}

	return &t, nil
}

func (s *Storage) TopicThreadCounts(ctx context.Context) ([]models.TopicThreadCount, error) {
	const op = "storage.postgres.TopicThreadCounts"

	rows, err := s.db.Query(ctx, `
		SELECT tp.topic_id, COUNT(t.thread_id)
		FROM topics tp
		LEFT JOIN threads t ON t.topic_id = tp.topic_id AND t.deleted_at IS NULL
		GROUP BY tp.topic_id
		ORDER BY tp.topic_id`)
	if err != nil {
		return nil, mapPgError(op, err)
	}

	counts, err := pgx.CollectRows(rows, func(r pgx.CollectableRow) (models.TopicThreadCount, error) {
		var c models.TopicThreadCount
		err := r.Scan(&c.TopicID, &c.ThreadCount)
		return c, err
	})
	if err != nil {
		return nil, mapPgError(op, err)
	}

	return counts, nil
}
