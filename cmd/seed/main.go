package main

import (
	"context"

	"portfolio-site/internal/config"
	"portfolio-site/internal/db"
	"portfolio-site/internal/logging"
	userrepo "portfolio-site/internal/repository/adminuser"
	sessionrepo "portfolio-site/internal/repository/session"
	"portfolio-site/internal/seed"
	authsvc "portfolio-site/internal/service/auth"
	"portfolio-site/internal/service/content"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.FromEnv()
	if err != nil {
		panic(err)
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, "seed")
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString, logger)
	if err != nil {
		logger.Fatal("connect db", zap.Error(err))
	}
	defer pool.Close()

	svc := content.NewService(content.PostgresStores(pool), nil, logger)
	users := authsvc.New(userrepo.NewPostgres(pool, logger), sessionrepo.NewPostgres(pool),
		authsvc.Options{Secret: cfg.JWTSecret, SessionTTL: cfg.SessionTTL()}, logger)

	admin := seed.Admin{Email: cfg.AdminEmail, Password: cfg.AdminPassword}
	if err := seed.Apply(ctx, svc, users, admin, logger); err != nil {
		logger.Fatal("seed apply", zap.Error(err))
	}
	logger.Info("seed applied")
}
