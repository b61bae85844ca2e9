package restapi

import (
	"github.com/Sa-pphire/qr-code-gen/config"
	v1 "github.com/Sa-pphire/qr-code-gen/internal/controller/restapi/v1"
	"github.com/Sa-pphire/qr-code-gen/internal/usecase"
	"github.com/Sa-pphire/qr-code-gen/pkg/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// @title QR landing pages
// @version 1.0.0
// @host localhost:8080
// @BasePath /v1
func NewRouter(app *fiber.App, cfg *config.Config, lp usecase.LandingPageUseCase, l logger.Interface) {
	// Swagger
	if cfg.Swagger.Enabled {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	// K8s probe
	app.Get("/healthz", func(ctx *fiber.Ctx) error { return ctx.SendString("ok") })

	// Routers
	apiV1Group := app.Group("/v1")
	{
		v1.NewLandingPageRoutes(apiV1Group, lp, cfg.HTTP.PublicBaseURL, l)
	}
}
