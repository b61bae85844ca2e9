package repo

import (
	"context"

	"github.com/Sa-pphire/qr-code-gen/internal/entity"
)

type (
	// AssetRepo stores binary assets and hands back a reference that can be
	// used to fetch them later. Every Store call yields a new reference.
	AssetRepo interface {
		Store(ctx context.Context, data []byte, category entity.AssetCategory) (string, error)
		Delete(ctx context.Context, reference string) error
	}

	// LandingPageRepo persists landing page records. Writes are single-writer
	// per record: one Create followed by at most one AttachQRReference.
	LandingPageRepo interface {
		Create(ctx context.Context, fields entity.LandingPageFields) (string, error)
		AttachQRReference(ctx context.Context, id, reference string) error
		GetByID(ctx context.Context, id string) (*entity.LandingPage, error)
	}
)
