package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Kariqs/vastra-api/initializers"
	"github.com/Kariqs/vastra-api/routes"
	"github.com/Kariqs/vastra-api/store"
	"github.com/Kariqs/vastra-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func main() {
	bootLogger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	if err := initializers.LoadEnv(); err != nil {
		bootLogger.Fatal().Err(err).Msg("load env")
	}
	cfg, err := initializers.LoadConfig()
	if err != nil {
		bootLogger.Fatal().Err(err).Msg("load config")
	}

	gin.SetMode(cfg.GinMode)
	logger := initializers.NewLogger(cfg)
	ctx := context.Background()

	db, err := initializers.ConnectToDB(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect database")
	}
	if err := initializers.SyncDatabase(db, logger); err != nil {
		logger.Fatal().Err(err).Msg("sync database")
	}

	tokens, err := utils.NewTokenMaker(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, cfg.JWTTTL)
	if err != nil {
		logger.Fatal().Err(err).Msg("token maker")
	}

	deps := routes.Dependencies{
		Store:       store.NewGormStore(db),
		Tokens:      tokens,
		Logger:      logger,
		CORSOrigins: cfg.AllowedOrigins(),
	}

	loginLimiter, redisClient, err := initializers.NewLoginLimiter(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("login rate limiter")
	}
	if loginLimiter != nil {
		deps.LoginLimiter = loginLimiter
		defer redisClient.Close()
	} else {
		logger.Warn().Msg("REDIS_ADDR not set, login rate limiting disabled")
	}

	if cfg.S3Bucket != "" {
		images, err := utils.NewS3ImageStore(ctx, cfg.S3Bucket)
		if err != nil {
			logger.Fatal().Err(err).Msg("image store")
		}
		deps.Images = images
	} else {
		logger.Warn().Msg("AWS_S3_BUCKET not set, product image uploads disabled")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.SetupRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		logger.Info().Msg("Received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("server shutdown")
		}
	}()

	logger.Info().Str("addr", srv.Addr).Msg("Server starting")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("listen")
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	logger.Info().Msg("closed completed")
}
