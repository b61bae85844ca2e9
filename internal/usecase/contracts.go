package usecase

import (
	"context"

	"github.com/Sa-pphire/qr-code-gen/internal/dto"
	"github.com/Sa-pphire/qr-code-gen/internal/entity"
)

type (
	LandingPageUseCase interface {
		Generate(ctx context.Context, input dto.GenerateInput) (*dto.GeneratedLandingPage, error)
		View(ctx context.Context, id string) (*entity.LandingPage, error)
	}
)
