package routes

import (
	"log"

	"jobpilot/internal/config"
	"jobpilot/internal/database"
	"jobpilot/internal/delivery/http/handler"
	v1 "jobpilot/internal/delivery/http/routes/v1"
	"jobpilot/internal/infrastructure/cache"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	cfg    config.Config
	db     database.DB
	redis  *cache.Redis
	logger *log.Logger
}

func NewRegistry(cfg config.Config, db database.DB, redis *cache.Redis, logger *log.Logger) *Registry {
	return &Registry{cfg: cfg, db: db, redis: redis, logger: logger}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	handler.NewHealthHandler(r.db).RegisterRoutes(app)

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.cfg, r.db, r.redis, r.logger)
}
