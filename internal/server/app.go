// Package server initializes and runs the Refuture backend: database and
// migrations, the Redis session registry, object storage, and the HTTP API.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"

	"github.com/vincenttwizere/Refuture-sub002/internal/logging"
	"github.com/vincenttwizere/Refuture-sub002/internal/server/config"
	"github.com/vincenttwizere/Refuture-sub002/internal/server/httpapi"
	"github.com/vincenttwizere/Refuture-sub002/internal/server/repositories/repomanager"
	"github.com/vincenttwizere/Refuture-sub002/internal/server/services"
	"github.com/vincenttwizere/Refuture-sub002/internal/server/sessions"
	"github.com/vincenttwizere/Refuture-sub002/internal/server/storage"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	redis  *redis.Client
	api    *httpapi.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewJSON()

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	repos := repomanager.NewPostgresManager()
	if err := repos.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping error: %w", err)
	}

	registry := sessions.NewRedisRegistry(rdb)
	documents := storage.NewDocuments(cfg)

	api := httpapi.NewServer(
		cfg.Addr,
		logger,
		services.NewAuthService(repos.Users(db), registry, cfg),
		services.NewProfileService(db, repos, documents),
		services.NewOpportunityService(repos.Opportunities(db)),
		services.NewUserService(repos.Users(db)),
		services.NewSettingsService(repos.Settings(db)),
		services.NewContactService(repos.Contact(db)),
	)

	return &App{config: cfg, logger: logger, db: db, redis: rdb, api: api}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves the HTTP API until an OS signal or a server error, then
// closes the backends.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting app", "addr", app.config.Addr)

	app.initSignalHandler(cancelFunc)

	if err := app.api.Run(ctx); err != nil {
		app.logger.Error(ctx, "http server", "error", err.Error())
	}

	if err := app.redis.Close(); err != nil {
		app.logger.Error(ctx, "closing redis", "error", err.Error())
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "closing db", "error", err.Error())
	}

	app.logger.Info(ctx, "app stopped")
}
