// redis хранит отозванные токены доступа до истечения их срока.
package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/pribylovaa/mindwell/internal/storage"
	"github.com/redis/go-redis/v9"
)

const defaultPrefix = "mindwell:revoked:"

// Denylist — набор jti отозванных токенов. Ключ живёт ровно столько,
// сколько жил бы сам токен.
type Denylist struct {
	rdb    *redis.Client
	prefix string
}

// New подключается по URL (redis://:pass@host:6379/0) и проверяет доступность.
func New(ctx context.Context, redisURL, prefix string) (*Denylist, error) {
	const op = "storage.redis.New"

	if prefix == "" {
		prefix = defaultPrefix
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rdb := redis.NewClient(opt)

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Denylist{rdb: rdb, prefix: prefix}, nil
}

func (d *Denylist) key(jti string) string { return d.prefix + jti }

// Revoke отзывает токен. Нулевой или отрицательный ttl означает, что токен уже истёк.
func (d *Denylist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	const op = "storage.redis.Revoke"

	if ttl <= 0 {
		return nil
	}

	revokedAt := strconv.FormatInt(time.Now().UTC().Unix(), 10)
	if err := d.rdb.Set(ctx, d.key(jti), revokedAt, ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (d *Denylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	const op = "storage.redis.IsRevoked"

	n, err := d.rdb.Exists(ctx, d.key(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return n > 0, nil
}

// Ping используется проверкой готовности.
func (d *Denylist) Ping(ctx context.Context) error { return d.rdb.Ping(ctx).Err() }

func (d *Denylist) Close() error { return d.rdb.Close() }

var _ storage.TokenDenylist = (*Denylist)(nil)
