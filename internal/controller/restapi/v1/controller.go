package v1

import (
	"github.com/Sa-pphire/qr-code-gen/internal/usecase"
	"github.com/Sa-pphire/qr-code-gen/pkg/logger"
)

type V1 struct {
	lp      usecase.LandingPageUseCase
	baseURL string
	logger  logger.Interface
}
