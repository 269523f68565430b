package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/socialhub/socialhub-api/internal/api"
	"github.com/socialhub/socialhub-api/internal/infrastructure/config"
	mongostore "github.com/socialhub/socialhub-api/internal/infrastructure/db/mongo"
	redisstore "github.com/socialhub/socialhub-api/internal/infrastructure/db/redis"
	"github.com/socialhub/socialhub-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if err := mongostore.ValidateCollections(); err != nil {
		log.Fatal().Err(err).Msg("invalid collection mapping")
	}

	ctx := context.Background()

	client, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	if err := mongostore.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user indexes failed")
	}
	if err := mongostore.NewSessionRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("session indexes failed")
	}
	if err := mongostore.NewUploadLogRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("upload log indexes failed")
	}

	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	e := api.NewRouter(db, rdb, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("socialhub api listening")
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("server stopped")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}
