package handler

import (
	"github.com/gofiber/fiber/v2"

	"pingpong/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Keep handlers minimal and free of business logic in this skeleton.
func RegisterRoutes(app *fiber.App, appName, appVersion string, svc service.GreetingService) {
	app.Get("/", Home(appName, appVersion))
	app.Get("/ping", Ping())
	app.Post("/hello", Hello(svc))
	app.Post("/iseven", IsEven())
	app.Get("/health", HealthCheck(appName, appVersion))
	app.Get("/healthz", LivenessProbe())
}
