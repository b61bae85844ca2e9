package infrastructure

import (
	"context"

	"github.com/Sa-pphire/qr-code-gen/internal/dto"
)

type (
	QREncoder interface {
		Encode(ctx context.Context, content string) ([]byte, error)
	}

	ImageResizer interface {
		ResizeToWidth(ctx context.Context, data []byte, width int) ([]byte, error)
	}

	EventPublisher interface {
		PublishGenerated(ctx context.Context, event dto.LandingPageGeneratedEvent) error
		Close() error
	}
)
