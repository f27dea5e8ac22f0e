package app

import (
	"context"
	"log"
	"time"

	"resume-builder/internal/assistant"
	"resume-builder/internal/config"
	"resume-builder/internal/database"
	"resume-builder/internal/database/migration"
	dbpostgres "resume-builder/internal/database/postgres"
	"resume-builder/internal/database/seeder"
	"resume-builder/internal/infrastructure/cache"
)

// Container holds the process-wide infrastructure: the database pool,
// the redis cache, and the chat hub. Everything else is built per
// route group from these.
type Container struct {
	Config  config.Config
	DB      database.DB
	Cache   *cache.Redis
	ChatHub *assistant.Hub
	Logger  *log.Logger
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.Default()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := (migration.Runner{Dir: "migrations"}).Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, err
	}

	if cfg.App.Environment == "development" {
		run := seeder.Runner{Seeders: []seeder.Seeder{seeder.DemoAccount{}}}
		if err := run.Run(ctx, db); err != nil {
			logger.Printf("demo seed skipped | error=%v", err)
		}
	}

	hub := assistant.NewHub(logger)
	go hub.Run()

	return &Container{
		Config:  cfg,
		DB:      db,
		Cache:   cache.NewRedis(cfg.Redis, logger),
		ChatHub: hub,
		Logger:  logger,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
