package upload

import (
	"fmt"
	"io"
	"strings"

	"github.com/Sa-pphire/qr-code-gen/internal/dto"
	"github.com/Sa-pphire/qr-code-gen/pkg/types/errs"
	"github.com/gofiber/fiber/v2"
)

const (
	MaxPDFSize     int64 = 25 * 1024 * 1024
	MaxPreviewSize int64 = 10 * 1024 * 1024

	PDFField         = "pdf"
	PreviewField     = "preview"
	TitleField       = "title"
	SubtitleField    = "subtitle"
	DescriptionField = "description"
	BgColorField     = "bgColor"
)

// ParseGenerateForm reads the multipart fields of a generate request. Missing,
// empty or oversized files are reported as errs.ErrUploadFailure. Text fields
// are passed through untouched.
func ParseGenerateForm(ctx *fiber.Ctx, baseURL string) (dto.GenerateInput, error) {
	pdf, err := readFormFile(ctx, PDFField, MaxPDFSize)
	if err != nil {
		return dto.GenerateInput{}, err
	}

	preview, err := readFormFile(ctx, PreviewField, MaxPreviewSize)
	if err != nil {
		return dto.GenerateInput{}, err
	}

	return dto.GenerateInput{
		PDF:     pdf,
		Preview: preview,
		Metadata: dto.Metadata{
			Title:           ctx.FormValue(TitleField),
			Subtitle:        ctx.FormValue(SubtitleField),
			Description:     ctx.FormValue(DescriptionField),
			BackgroundColor: ctx.FormValue(BgColorField),
		},
		BaseURL: BaseURL(ctx, baseURL),
	}, nil
}

// BaseURL returns the configured public base URL, or the scheme and host the
// request came in on.
func BaseURL(ctx *fiber.Ctx, configured string) string {
	if configured != "" {
		return strings.TrimRight(configured, "/")
	}

	return ctx.BaseURL()
}

func readFormFile(ctx *fiber.Ctx, field string, maxSize int64) ([]byte, error) {
	fh, err := ctx.FormFile(field)
	if err != nil {
		return nil, fmt.Errorf("upload - readFormFile - %s is required: %w", field, errs.ErrUploadFailure)
	}

	if fh.Size == 0 {
		return nil, fmt.Errorf("upload - readFormFile - %s is empty: %w", field, errs.ErrUploadFailure)
	}

	if fh.Size > maxSize {
		return nil, fmt.Errorf("upload - readFormFile - %s exceeds %d bytes: %w", field, maxSize, errs.ErrUploadFailure)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("upload - readFormFile - fh.Open: %w: %w", errs.ErrUploadFailure, err)
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("upload - readFormFile - io.ReadAll: %w: %w", errs.ErrUploadFailure, err)
	}

	return b, nil
}
