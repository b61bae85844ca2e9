package persistent

import (
	"github.com/Sa-pphire/qr-code-gen/internal/entity"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

const (
	pdfContentType = "application/pdf"
	pngContentType = "image/png"
)

// assetObject derives a fresh object name and content type for data.
func assetObject(data []byte, category entity.AssetCategory) (name string, contentType string) {
	var ext string

	switch category {
	case entity.AssetPDF:
		ext, contentType = ".pdf", pdfContentType
	case entity.AssetQR:
		ext, contentType = ".png", pngContentType
	default:
		mt := mimetype.Detect(data)
		ext, contentType = mt.Extension(), mt.String()
	}

	return uuid.NewString() + ext, contentType
}
