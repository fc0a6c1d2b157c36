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

	"github.com/rs/zerolog"

	"github.com/shs/account-service/internal/api"
	"github.com/shs/account-service/internal/api/handler"
	"github.com/shs/account-service/internal/core/service"
	"github.com/shs/account-service/internal/infrastructure/config"
	mongodb "github.com/shs/account-service/internal/infrastructure/db/mongo"
	redisstore "github.com/shs/account-service/internal/infrastructure/db/redis"
	"github.com/shs/account-service/internal/infrastructure/queue"
	"github.com/shs/account-service/internal/infrastructure/security"
	"github.com/shs/account-service/pkg/logger"
)

const (
	serviceName     = "shs-account-service"
	shutdownTimeout = 10 * time.Second
)

// @title                       SHS Account Service API
// @version                     1.0
// @description                 Account authorization and session engine.
// @BasePath                    /
// @securityDefinitions.apikey  SessionToken
// @in                          header
// @name                        Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: serviceName,
		Env:     cfg.Env,
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	// --- Credential store ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Timeout:  cfg.StoreTimeout,
	})
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	accountRepo := mongodb.NewAccountRepository(db, cfg.StoreTimeout)
	if err := accountRepo.EnsureIndexes(ctx); err != nil {
		return err
	}

	// --- Session store ---
	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		Timeout:  cfg.StoreTimeout,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()

	// --- Services ---
	hasher := security.NewBcryptHasher(cfg.Session.BcryptCost)
	sessions := service.NewSessionRegistry(redisstore.NewSessionStore(rdb), cfg.Session.TTL, logger.Component("sessions"))

	authService, err := service.NewAuthService(accountRepo, hasher, sessions, logger.Component("auth"))
	if err != nil {
		return fmt.Errorf("auth service: %w", err)
	}

	purgeCtx, cancelPurge := context.WithCancel(context.Background())
	purger := queue.NewDispatcher(cfg.Session.PurgeWorkers, sessions, logger.Component("session-purge"))
	purger.Start(purgeCtx)
	defer func() {
		cancelPurge()
		purger.Wait()
	}()

	accountService := service.NewAccountService(accountRepo, hasher, purger, logger.Component("accounts"))
	if err := accountService.EnsureSuperAdmin(ctx, cfg.SuperAdmin.Username, cfg.SuperAdmin.Password, cfg.SuperAdmin.DisplayName); err != nil {
		return fmt.Errorf("seed superadmin: %w", err)
	}

	// --- HTTP ---
	e := api.NewRouter(api.Dependencies{
		Auth:     authService,
		Accounts: accountService,
		Logger:   logger.Component("http"),
		Checks: map[string]handler.DependencyCheck{
			"mongodb": func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) },
			"redis":   func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		},
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
