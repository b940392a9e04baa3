package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/pribylovaa/mindwell/internal/config"
	mwhttp "github.com/pribylovaa/mindwell/internal/http"
	"github.com/pribylovaa/mindwell/internal/http/middleware"
	"github.com/pribylovaa/mindwell/internal/service"
	"github.com/pribylovaa/mindwell/internal/storage/minio"
	"github.com/pribylovaa/mindwell/internal/storage/postgres"
	"github.com/pribylovaa/mindwell/internal/storage/redis"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(load func() (*config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}

			return serve(cmd.Context(), cfg)
		},
	}
}

func serve(parent context.Context, cfg *config.Config) error {
	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting mindwell", slog.String("env", cfg.Env))

	if parent == nil {
		parent = context.Background()
	}
	rootCtx, rootCancel := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	st, err := postgres.New(rootCtx, cfg.Postgres)
	if err != nil {
		log.Error("postgres_connect_failed", slog.String("err", err.Error()))
		return err
	}
	defer st.Close()

	log.Info("postgres_connected")

	if cfg.Postgres.AutoMigrate {
		if err := migrate(rootCtx, log, st); err != nil {
			return err
		}
	}

	svc := service.New(st, cfg.Auth)

	if cfg.Redis.Enabled() {
		denylist, err := redis.New(rootCtx, cfg.Redis.URL, cfg.Redis.KeyPrefix)
		if err != nil {
			log.Error("redis_connect_failed", slog.String("err", err.Error()))
			return err
		}
		defer func() {
			if cerr := denylist.Close(); cerr != nil {
				log.Warn("redis_close_failed", slog.String("err", cerr.Error()))
			}
		}()

		svc.SetDenylist(denylist)
		log.Info("redis_connected")
	} else {
		log.Warn("redis_disabled", slog.String("effect", "logout does not revoke tokens"))
	}

	if cfg.S3.Enabled() {
		avatars, err := minio.New(rootCtx, cfg.S3, cfg.Avatar)
		if err != nil {
			log.Error("minio_init_failed", slog.String("err", err.Error()))
			return err
		}

		svc.SetAvatars(avatars)
		log.Info("minio_connected", slog.String("bucket", cfg.S3.Bucket))
	} else {
		log.Warn("minio_disabled", slog.String("effect", "avatar upload unavailable"))
	}

	apiHandler := mwhttp.NewRouter(svc, mwhttp.Options{
		Logger:      log,
		Timeout:     cfg.Timeouts.Service,
		BasePath:    "/api",
		CORSOrigins: cfg.HTTP.CORSOrigins,
		Metrics:     middleware.NewMetrics(prometheus.DefaultRegisterer),
	})

	var ready int32 // 1 после старта листенера

	mux := http.NewServeMux()
	mux.HandleFunc("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	healthz := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.LoadInt32(&ready) != 1 {
			http.Error(w, "not ready", http.StatusServiceUnavailable)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := st.Ping(ctx); err != nil {
			http.Error(w, "postgres unavailable", http.StatusServiceUnavailable)
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.Handle("/healthz", middleware.Chain(healthz, middleware.Recover()))
	mux.Handle("/metrics", middleware.Chain(promhttp.Handler(), middleware.Recover()))
	mux.Handle("/", apiHandler)

	httpAddr := cfg.HTTP.Addr()
	httpSrv := &http.Server{
		Addr:              httpAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", httpAddr)
	if err != nil {
		log.Error("http_listen_failed", slog.String("addr", httpAddr), slog.String("err", err.Error()))
		return err
	}

	log.Info("http_listen_start", slog.String("addr", httpAddr))

	serveErrCh := make(chan error, 1)
	go func() {
		if err := httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrCh <- err
		}
		close(serveErrCh)
	}()

	atomic.StoreInt32(&ready, 1)
	log.Info("mindwell_ready")

	var serveErr error
	select {
	case <-rootCtx.Done():
		log.Info("shutdown_requested")
	case serveErr = <-serveErrCh:
		if serveErr != nil {
			log.Error("http_serve_failed", slog.String("err", serveErr.Error()))
		}
	}

	atomic.StoreInt32(&ready, 0)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http_shutdown_incomplete", slog.String("err", err.Error()))
	} else {
		log.Info("http_stopped")
	}

	log.Info("service_stopped")

	return serveErr
}
