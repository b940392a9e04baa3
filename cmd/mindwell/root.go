package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/pribylovaa/mindwell/internal/config"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// NewRootCmd собирает корневую команду mindwell с подкомандами serve и migrate.
func NewRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "mindwell",
		Short: "Mindwell wellness API",
		Long: `Mindwell — REST API приложения ментального здоровья:
аккаунты, дневник, настроение, вода, напоминания и сообщество.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// .env необязателен; переменные окружения процесса имеют приоритет.
			_ = godotenv.Load()
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")

	load := func() (*config.Config, error) { return config.Load(configPath) }

	root.AddCommand(newServeCmd(load), newMigrateCmd(load))

	return root
}

func setupLogger(env string) *slog.Logger {
	switch env {
	case envLocal:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
