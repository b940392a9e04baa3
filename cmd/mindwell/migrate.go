package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pribylovaa/mindwell/internal/config"
	"github.com/pribylovaa/mindwell/internal/storage/postgres"
	"github.com/pribylovaa/mindwell/migrations"
)

func newMigrateCmd(load func() (*config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply embedded SQL migrations and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}

			log := setupLogger(cfg.Env)

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			st, err := postgres.New(ctx, cfg.Postgres)
			if err != nil {
				log.Error("postgres_connect_failed", slog.String("err", err.Error()))
				return err
			}
			defer st.Close()

			return migrate(ctx, log, st)
		},
	}
}

// migrate применяет встроенные миграции и логирует применённые файлы.
func migrate(ctx context.Context, log *slog.Logger, st *postgres.Storage) error {
	applied, err := st.Migrate(ctx, migrations.FS)
	if err != nil {
		log.Error("migrations_failed", slog.String("err", err.Error()), slog.Any("applied", applied))
		return err
	}

	log.Info("migrations_applied", slog.Int("count", len(applied)), slog.Any("files", applied))

	return nil
}
