package v1

import (
	"github.com/Sa-pphire/qr-code-gen/internal/usecase"
	"github.com/Sa-pphire/qr-code-gen/pkg/logger"
	"github.com/gofiber/fiber/v2"
)

func NewLandingPageRoutes(apiV1Group fiber.Router, lp usecase.LandingPageUseCase, baseURL string, l logger.Interface) {
	r := &V1{lp: lp, baseURL: baseURL, logger: l}

	{
		apiV1Group.Post("/landing-pages", r.createLandingPage)
		apiV1Group.Get("/landing-pages/:id", r.getLandingPage)
	}
}
