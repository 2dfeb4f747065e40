package app

import (
	"context"
	"log"
	"time"

	"jobpilot/internal/config"
	"jobpilot/internal/database"
	"jobpilot/internal/database/migration"
	dbpostgres "jobpilot/internal/database/postgres"
	"jobpilot/internal/infrastructure/cache"
)

// Container holds the process-wide infrastructure: config, the database
// pool and the redis cache.
type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Logger *log.Logger
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := migration.Run(ctx, db, migration.All()); err != nil {
		_ = db.Close()
		return nil, err
	}

	redis := cache.NewRedis(cfg.Redis, logger)

	return &Container{Config: cfg, DB: db, Cache: redis, Logger: logger}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
