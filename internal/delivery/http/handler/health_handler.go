package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/help-yourself-test/help-yourself/internal/database"
	"github.com/help-yourself-test/help-yourself/internal/infrastructure/cache"
	"github.com/help-yourself-test/help-yourself/internal/pkg/response"
)

type HealthHandler struct {
	db    database.DB
	cache *cache.Redis
}

func NewHealthHandler(db database.DB, cache *cache.Redis) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "ok"
	if h.db == nil {
		dbStatus = "not configured"
	} else if row := h.db.QueryRow(ctx, "SELECT 1"); row != nil {
		var one int
		if err := row.Scan(&one); err != nil {
			dbStatus = "unreachable"
		}
	}

	cacheStatus := "ok"
	if err := h.cache.Ping(ctx); err != nil {
		cacheStatus = "unreachable"
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{
		"database": dbStatus,
		"cache":    cacheStatus,
	})
}
