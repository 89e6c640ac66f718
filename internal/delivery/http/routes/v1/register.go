package v1

import (
	"log"

	"github.com/gofiber/fiber/v3"

	"github.com/help-yourself-test/help-yourself/internal/config"
	"github.com/help-yourself-test/help-yourself/internal/database"
	"github.com/help-yourself-test/help-yourself/internal/delivery/http/handler"
	"github.com/help-yourself-test/help-yourself/internal/delivery/http/middleware"
	"github.com/help-yourself-test/help-yourself/internal/infrastructure/cache"
	"github.com/help-yourself-test/help-yourself/internal/pkg/jwt"
	"github.com/help-yourself-test/help-yourself/internal/repository"
	"github.com/help-yourself-test/help-yourself/internal/usecase"
)

func Register(r fiber.Router, cfg config.Config, db database.DB, redis *cache.Redis, logger *log.Logger) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(db)
	jobRepo := repository.NewPostgresJobRepository(db)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	userUC := usecase.NewUserUsecase(userRepo, redis, logger)
	jobUC := usecase.NewJobUsecase(jobRepo, redis, logger)
	matchUC := usecase.NewMatchingUsecase(userRepo, jobRepo, redis, logger)
	adminUC := usecase.NewAdminUsecase(userRepo, logger)

	authHandler := handler.NewAuthHandler(authUC)
	userHandler := handler.NewUserHandler(userUC)
	jobHandler := handler.NewJobHandler(jobUC)
	matchHandler := handler.NewMatchHandler(matchUC)
	adminHandler := handler.NewAdminHandler(adminUC)

	authHandler.RegisterRoutes(r.Group("/auth"))

	jobs := r.Group("/jobs")
	jobs.Get("/", jobHandler.HandleListJobs)
	jobs.Get("/:job_id", jobHandler.HandleGetJob)
	jobs.Get("/:job_id/match", matchHandler.HandleJobMatch, authMw.Middleware())
	jobs.Post("/", jobHandler.HandleCreateJob, authMw.Middleware(), middleware.RequireJobManager())
	jobs.Put("/:job_id", jobHandler.HandleUpdateJob, authMw.Middleware(), middleware.RequireJobManager())
	jobs.Delete("/:job_id", jobHandler.HandleDeleteJob, authMw.Middleware(), middleware.RequireJobManager())

	r.Post("/match/preview", matchHandler.HandleMatchPreview, authMw.Middleware())

	userHandler.RegisterRoutes(r.Group("/users", authMw.Middleware()))

	adminHandler.RegisterRoutes(r.Group("/admin", authMw.Middleware(), middleware.RequireAdmin()))
}
