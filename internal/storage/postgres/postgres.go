// postgres реализует storage.Storage поверх pgx/v5.
//
// Многошаговые операции выполняются в pgx.BeginFunc: commit при nil,
// rollback при ошибке. Динамические UPDATE/фильтры собираются squirrel
// только из фиксированного набора колонок.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pribylovaa/mindwell/internal/config"
	"github.com/pribylovaa/mindwell/internal/storage"
)

// psql — построитель запросов с плейсхолдерами $N.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// querier — общее подмножество *pgxpool.Pool и pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Storage struct {
	db *pgxpool.Pool
}

// New создаёт пул соединений с параметрами из конфига и проверяет доступность БД.
func New(ctx context.Context, cfg config.PostgresConfig) (*Storage, error) {
	const op = "storage.postgres.New"

	pcfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if cfg.MaxConns > 0 {
		pcfg.MaxConns = cfg.MaxConns
	}
	if cfg.MaxConnIdle > 0 {
		pcfg.MaxConnIdleTime = cfg.MaxConnIdle
	}
	if cfg.ConnectTimeout > 0 {
		pcfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout
	}

	db, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) Ping(ctx context.Context) error { return s.db.Ping(ctx) }

// Close закрывает пул соединений.
func (s *Storage) Close() {
	s.db.Close()
}

// migrationLockID — ключ advisory-lock, сериализующего параллельные миграции.
const migrationLockID = 7_305_118

// Migrate применяет *.up.sql из fsys, которых ещё нет в schema_migrations.
// Каждый файл применяется в своей транзакции. Возвращает имена применённых файлов.
func (s *Storage) Migrate(ctx context.Context, fsys fs.FS) ([]string, error) {
	const op = "storage.postgres.Migrate"

	_, err := s.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	files, err := migrationFiles(fsys)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var applied []string
	for _, name := range files {
		body, err := fs.ReadFile(fsys, name)
		if err != nil {
			return applied, fmt.Errorf("%s: %w", op, err)
		}

		done := false
		err = pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
			if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, migrationLockID); err != nil {
				return err
			}

			var exists bool
			if err := tx.QueryRow(ctx,
				`SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`, name,
			).Scan(&exists); err != nil {
				return err
			}
			if exists {
				return nil
			}

			if _, err := tx.Exec(ctx, string(body)); err != nil {
				return err
			}

			if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, name); err != nil {
				return err
			}

			done = true
			return nil
		})
		if err != nil {
			return applied, fmt.Errorf("%s: %s: %w", op, name, err)
		}

		if done {
			applied = append(applied, name)
		}
	}

	return applied, nil
}

// migrationFiles сортирует файлы по числовому префиксу до первого '_'.
func migrationFiles(fsys fs.FS) ([]string, error) {
	names, err := fs.Glob(fsys, "*.up.sql")
	if err != nil {
		return nil, err
	}

	versions := make(map[string]int, len(names))
	for _, n := range names {
		prefix, _, _ := strings.Cut(path.Base(n), "_")
		v, err := strconv.Atoi(prefix)
		if err != nil {
			return nil, fmt.Errorf("migration %q: bad version prefix", n)
		}
		versions[n] = v
	}

	sort.Slice(names, func(i, j int) bool { return versions[names[i]] < versions[names[j]] })

	return names, nil
}

// mapPgError переводит ошибки pgx в sentinel-ошибки storage.
func mapPgError(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			switch pgErr.ConstraintName {
			case "users_email_key":
				return fmt.Errorf("%s: %w", op, storage.ErrEmailExists)
			case "users_username_key":
				return fmt.Errorf("%s: %w", op, storage.ErrUsernameExists)
			default:
				return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
			}
		case pgerrcode.ForeignKeyViolation:
			return fmt.Errorf("%s: %w: %s", op, storage.ErrInvalidReference, pgErr.ConstraintName)
		case pgerrcode.CheckViolation,
			pgerrcode.NotNullViolation,
			pgerrcode.InvalidTextRepresentation,
			pgerrcode.InvalidDatetimeFormat,
			pgerrcode.DatetimeFieldOverflow:
			return fmt.Errorf("%s: %w: %s", op, storage.ErrInvalidValue, pgErr.Message)
		}
	}

	return fmt.Errorf("%s: %w", op, err)
}

var _ storage.Storage = (*Storage)(nil)
