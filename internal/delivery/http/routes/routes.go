package routes

import (
	"log"

	"github.com/gofiber/fiber/v3"

	"github.com/help-yourself-test/help-yourself/internal/config"
	"github.com/help-yourself-test/help-yourself/internal/database"
	"github.com/help-yourself-test/help-yourself/internal/delivery/http/handler"
	v1 "github.com/help-yourself-test/help-yourself/internal/delivery/http/routes/v1"
	"github.com/help-yourself-test/help-yourself/internal/infrastructure/cache"
	"github.com/help-yourself-test/help-yourself/internal/ws"
)

// Deps carries everything route registration needs; the container builds
// it once at startup.
type Deps struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	Logger *log.Logger
}

func Register(app *fiber.App, d Deps) {
	if app == nil {
		return
	}

	handler.NewHealthHandler(d.DB, d.Cache).RegisterRoutes(app)

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), d.Config, d.DB, d.Cache, d.Logger)

	wsHandler := ws.NewHandler(d.Hub, d.Logger)
	app.Get("/ws/events", wsHandler.HandleEventsWS)
}
