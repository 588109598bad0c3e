package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-site/internal/config"
	"portfolio-site/internal/db"
	"portfolio-site/internal/httpserver"
	"portfolio-site/internal/i18n"
	"portfolio-site/internal/icons"
	"portfolio-site/internal/logging"
	"portfolio-site/internal/migrate"
	"portfolio-site/internal/profile"
	"portfolio-site/internal/realtime"
	userrepo "portfolio-site/internal/repository/adminuser"
	sessionrepo "portfolio-site/internal/repository/session"
	authsvc "portfolio-site/internal/service/auth"
	"portfolio-site/internal/service/content"
	"portfolio-site/internal/storage"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const sessionSweepInterval = 15 * time.Minute

func main() {
	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		panic(err)
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, "api")
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	if err := cfg.RequireSecret(); err != nil {
		logger.Fatal("refusing to start", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.Connect(ctx, cfg.DBConnString, logger)
	if err != nil {
		logger.Fatal("connect to db", zap.Error(err))
	}
	defer pool.Close()

	if cfg.MigrateOnStart {
		if err := migrate.Apply(ctx, pool); err != nil {
			logger.Fatal("apply migrations", zap.Error(err))
		}
		logger.Info("migrations applied")
	}

	hub := realtime.NewHub(logger)
	go hub.Run(ctx)

	contentService := content.NewService(content.PostgresStores(pool), hub, logger)
	authService := authsvc.New(
		userrepo.NewPostgres(pool, logger),
		sessionrepo.NewPostgres(pool),
		authsvc.Options{Secret: cfg.JWTSecret, SessionTTL: cfg.SessionTTL(), AllowSignUp: cfg.AllowSignUp},
		logger,
	)

	bucket, err := storage.NewS3(ctx, cfg.Storage)
	if err != nil {
		logger.Fatal("init storage", zap.Error(err))
	}

	registry := icons.Default()
	siteProfile, err := profile.Load(registry)
	if err != nil {
		logger.Fatal("load profile", zap.Error(err))
	}

	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		Content:     contentService,
		Auth:        authService,
		Uploads:     storage.NewUploader(bucket, cfg.UploadMaxBytes, logger),
		Profile:     siteProfile,
		Icons:       registry,
		Hub:         hub,
		Translator:  i18n.New(cfg.DefaultLocale),
		CORSOrigins: cfg.CORSOrigins,
		Checks: map[string]httpserver.Pinger{
			"db":      pool,
			"storage": bucket,
		},
	})
	if err != nil {
		logger.Fatal("init server", zap.Error(err))
	}

	go sweepSessions(ctx, authService, logger)

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting http server", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	case err := <-serverErr:
		logger.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}

func sweepSessions(ctx context.Context, svc *authsvc.Service, logger *zap.Logger) {
	ticker := time.NewTicker(sessionSweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := svc.PurgeExpired(ctx)
			if err != nil {
				logger.Warn("purge expired sessions", zap.Error(err))
				continue
			}
			if n > 0 {
				logger.Debug("purged expired sessions", zap.Int64("count", n))
			}
		}
	}
}
