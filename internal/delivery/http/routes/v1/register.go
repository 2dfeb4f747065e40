package v1

import (
	"log"

	"jobpilot/internal/config"
	"jobpilot/internal/database"
	"jobpilot/internal/delivery/http/handler"
	"jobpilot/internal/delivery/http/middleware"
	"jobpilot/internal/domain/skills"
	"jobpilot/internal/infrastructure/cache"
	"jobpilot/internal/infrastructure/resumeparser"
	"jobpilot/internal/jobsearch"
	"jobpilot/internal/pkg/jwt"
	"jobpilot/internal/repository"
	"jobpilot/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// Register wires the v1 API: repositories, usecases and handlers are
// constructed here, grouped under /auth, /users, /resume and /jobs.
func Register(r fiber.Router, cfg config.Config, db database.DB, redis *cache.Redis, logger *log.Logger) {
	if r == nil {
		return
	}
	if logger == nil {
		logger = log.Default()
	}

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(db)
	bookmarkRepo := repository.NewPostgresBookmarkRepository(db)

	extractor := skills.NewExtractor(skills.DefaultVocabulary())
	searchClient := jobsearch.NewClient(jobsearch.Config{
		BaseURL:  cfg.JobSearch.BaseURL,
		APIKey:   cfg.JobSearch.APIKey,
		APIHost:  cfg.JobSearch.APIHost,
		Country:  cfg.JobSearch.Country,
		NumPages: cfg.JobSearch.NumPages,
		Timeout:  cfg.JobSearch.Timeout,
	})
	searcher := jobsearch.NewAdapter(searchClient, logger)
	parser := resumeparser.NewClient(cfg.ResumeParser.BaseURL, logger)

	var searchCache usecase.SearchCache
	if redis != nil {
		searchCache = redis
	}

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	userUC := usecase.NewUserUsecase(userRepo)
	resumeUC := usecase.NewResumeUsecase(userRepo, parser)
	recommendationUC := usecase.NewRecommendationUsecase(userRepo, searcher, searchCache, logger)
	bookmarkUC := usecase.NewBookmarkUsecase(bookmarkRepo)
	gapUC := usecase.NewSkillGapUsecase(userRepo, bookmarkRepo, extractor)

	authGroup := r.Group("/auth")
	handler.NewAuthHandler(authUC).RegisterRoutes(authGroup)

	protected := r.Group("", authMw.Middleware())

	handler.NewUserHandler(userUC).RegisterRoutes(protected.Group("/users"))
	handler.NewResumeHandler(resumeUC).RegisterRoutes(protected.Group("/resume"))

	jobs := protected.Group("/jobs")
	handler.NewJobHandler(recommendationUC).RegisterRoutes(jobs)
	handler.NewSavedJobHandler(bookmarkUC, gapUC).RegisterRoutes(jobs)
}
