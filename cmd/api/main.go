package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/vrentals-api/internal/config"
	jwtinfra "github.com/vrentals-api/internal/infrastructure/jwt"
	s3infra "github.com/vrentals-api/internal/infrastructure/s3"
	"github.com/vrentals-api/internal/pkg/logger"
	transporthttp "github.com/vrentals-api/internal/transport/http"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.IsDevelopment(), cfg.LogLevel)
	if envErr != nil {
		log.Debug().Msg("no .env file found, reading from environment")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx := context.Background()

	repos, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StoreDriver).Msg("store unavailable")
	}
	defer closeStore()

	jwtProvider, err := jwtinfra.NewProvider(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("JWT provider not available")
	}

	s3Client, err := s3infra.NewClient(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("S3 client not available")
	}

	mailer, err := newMailer(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("channel", cfg.NotifyChannel).Msg("notification sender not available")
	}

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid REDIS_URL")
		}
		rdb = redis.NewClient(opts)
		defer rdb.Close()
	}

	deps := &transporthttp.Deps{
		UserRepo:      repos.users,
		ListingRepo:   repos.listings,
		ResetCodeRepo: repos.resetCodes,
		ObjectStore:   s3infra.NewStore(s3Client, cfg),
		Mailer:        mailer,
		JWTProvider:   jwtProvider,
		Redis:         rdb,
		Logger:        log.Logger,
	}
	svcs := transporthttp.NewServices(cfg, deps)

	if cfg.SeedListings {
		if _, err := svcs.Listing.SeedIfEmpty(ctx); err != nil {
			log.Warn().Err(err).Msg("seeding listings failed")
		}
	}

	router, stopRouter := transporthttp.NewRouter(cfg, deps, svcs)
	defer stopRouter()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.AppPort).Str("env", cfg.AppEnv).Str("store", cfg.StoreDriver).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
		return
	}
	log.Info().Msg("server stopped")
}
