package landing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Sa-pphire/qr-code-gen/internal/dto"
	"github.com/Sa-pphire/qr-code-gen/internal/entity"
	"github.com/Sa-pphire/qr-code-gen/internal/infrastructure"
	"github.com/Sa-pphire/qr-code-gen/internal/repo"
	"github.com/Sa-pphire/qr-code-gen/pkg/logger"
	"github.com/Sa-pphire/qr-code-gen/pkg/types/errs"
)

type UseCase struct {
	assets repo.AssetRepo
	pages  repo.LandingPageRepo

	encoder     infrastructure.QREncoder
	resizer     infrastructure.ImageResizer
	resizeWidth int
	events      infrastructure.EventPublisher

	logger logger.Interface
}

type Option func(*UseCase)

// WithResize makes Generate rescale the QR image to width before storing it.
func WithResize(resizer infrastructure.ImageResizer, width int) Option {
	return func(uc *UseCase) {
		uc.resizer = resizer
		uc.resizeWidth = width
	}
}

func WithEvents(events infrastructure.EventPublisher) Option {
	return func(uc *UseCase) {
		uc.events = events
	}
}

func New(
	assets repo.AssetRepo,
	pages repo.LandingPageRepo,
	encoder infrastructure.QREncoder,
	l logger.Interface,
	opts ...Option,
) *UseCase {
	uc := &UseCase{
		assets:  assets,
		pages:   pages,
		encoder: encoder,
		logger:  l,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// ViewURL is the public address of a landing page, and the QR code payload.
func ViewURL(baseURL, id string) string {
	return strings.TrimRight(baseURL, "/") + "/view/" + id
}

// Generate stores the uploaded files, creates the record and attaches a QR
// code pointing at the record's view URL.
//
// A failure before the record exists leaves nothing behind. A failure after
// it returns *errs.GenerationError and the record stays without a QR
// reference; it is not retried.
func (uc *UseCase) Generate(ctx context.Context, input dto.GenerateInput) (*dto.GeneratedLandingPage, error) {
	if len(input.PDF) == 0 {
		return nil, fmt.Errorf("LandingUseCase - Generate - pdf is missing: %w", errs.ErrUploadFailure)
	}
	if len(input.Preview) == 0 {
		return nil, fmt.Errorf("LandingUseCase - Generate - preview is missing: %w", errs.ErrUploadFailure)
	}

	// 1. pdf
	pdfRef, err := uc.assets.Store(ctx, input.PDF, entity.AssetPDF)
	if err != nil {
		return nil, fmt.Errorf("LandingUseCase - Generate - uc.assets.Store(pdf): %w", err)
	}

	// 2. preview
	previewRef, err := uc.assets.Store(ctx, input.Preview, entity.AssetPreview)
	if err != nil {
		uc.discardAssets(ctx, pdfRef)

		return nil, fmt.Errorf("LandingUseCase - Generate - uc.assets.Store(preview): %w", err)
	}

	// 3. record
	id, err := uc.pages.Create(ctx, entity.LandingPageFields{
		Title:                 input.Metadata.Title,
		Subtitle:              input.Metadata.Subtitle,
		Description:           input.Metadata.Description,
		BackgroundColor:       input.Metadata.BackgroundColor,
		PDFReference:          pdfRef,
		PreviewImageReference: previewRef,
	})
	if err != nil {
		uc.discardAssets(ctx, pdfRef, previewRef)

		return nil, fmt.Errorf("LandingUseCase - Generate - uc.pages.Create: %w", err)
	}

	// 4-8. qr code
	viewURL := ViewURL(input.BaseURL, id)

	qrImage, qrRef, err := uc.attachQRCode(ctx, id, viewURL)
	if err != nil {
		return nil, &errs.GenerationError{ID: id, ViewURL: viewURL, Err: err}
	}

	uc.publishGenerated(ctx, dto.LandingPageGeneratedEvent{
		ID:          id,
		ViewURL:     viewURL,
		QRReference: qrRef,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	})

	return &dto.GeneratedLandingPage{
		ID:                  id,
		ViewURL:             viewURL,
		QRImage:             qrImage,
		QRDownloadReference: qrRef,
	}, nil
}

func (uc *UseCase) View(ctx context.Context, id string) (*entity.LandingPage, error) {
	page, err := uc.pages.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("LandingUseCase - View - uc.pages.GetByID: %w", err)
	}

	return page, nil
}

func (uc *UseCase) attachQRCode(ctx context.Context, id, viewURL string) ([]byte, string, error) {
	qrImage, err := uc.encoder.Encode(ctx, viewURL)
	if err != nil {
		return nil, "", fmt.Errorf("LandingUseCase - attachQRCode - uc.encoder.Encode: %w", err)
	}

	if uc.resizer != nil {
		qrImage, err = uc.resizer.ResizeToWidth(ctx, qrImage, uc.resizeWidth)
		if err != nil {
			return nil, "", fmt.Errorf("LandingUseCase - attachQRCode - uc.resizer.ResizeToWidth: %w", err)
		}
	}

	qrRef, err := uc.assets.Store(ctx, qrImage, entity.AssetQR)
	if err != nil {
		return nil, "", fmt.Errorf("LandingUseCase - attachQRCode - uc.assets.Store(qr): %w", err)
	}

	err = uc.pages.AttachQRReference(ctx, id, qrRef)
	if err != nil {
		return nil, "", fmt.Errorf("LandingUseCase - attachQRCode - uc.pages.AttachQRReference: %w", err)
	}

	return qrImage, qrRef, nil
}

// discardAssets removes assets that no record will ever point at.
func (uc *UseCase) discardAssets(ctx context.Context, refs ...string) {
	ctx = context.WithoutCancel(ctx)

	for _, ref := range refs {
		if err := uc.assets.Delete(ctx, ref); err != nil {
			uc.logger.Warn("LandingUseCase - discardAssets - failed to delete %s: %v", ref, err)
		}
	}
}

func (uc *UseCase) publishGenerated(ctx context.Context, event dto.LandingPageGeneratedEvent) {
	if uc.events == nil {
		return
	}

	if err := uc.events.PublishGenerated(ctx, event); err != nil {
		uc.logger.Error(err, "LandingUseCase - publishGenerated - id=%s", event.ID)
	}
}
