package app

import (
	"context"
	"log"
	"time"

	"github.com/help-yourself-test/help-yourself/internal/config"
	"github.com/help-yourself-test/help-yourself/internal/database"
	"github.com/help-yourself-test/help-yourself/internal/database/migration"
	dbpostgres "github.com/help-yourself-test/help-yourself/internal/database/postgres"
	"github.com/help-yourself-test/help-yourself/internal/database/seeder"
	"github.com/help-yourself-test/help-yourself/internal/infrastructure/cache"
	"github.com/help-yourself-test/help-yourself/internal/repository"
	"github.com/help-yourself-test/help-yourself/internal/ws"
)

// Container owns the long-lived infrastructure: the connection pool, the
// cache client, and the websocket hub.
type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	Logger *log.Logger
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := migration.Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	users := repository.NewPostgresUserRepository(db)
	if err := seeder.EnsureAdmin(ctx, users, cfg.Admin, logger); err != nil {
		_ = db.Close()
		return nil, err
	}

	hub := ws.NewHub(logger)
	go hub.Run()
	ws.SetDefaultHub(hub)

	return &Container{
		Config: cfg,
		DB:     db,
		Cache:  cache.NewRedis(cfg.Redis, logger),
		Hub:    hub,
		Logger: logger,
	}, nil
}

func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
