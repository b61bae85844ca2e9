package processor

import (
	"bytes"
	"context"
	"fmt"

	"github.com/Sa-pphire/qr-code-gen/pkg/types/errs"
	"github.com/disintegration/imaging"
)

type ImageProcessor struct {
}

func New() *ImageProcessor {
	return &ImageProcessor{}
}

// ResizeToWidth scales the image to width, keeping its aspect ratio, and
// re-encodes it as PNG.
func (p *ImageProcessor) ResizeToWidth(ctx context.Context, data []byte, width int) ([]byte, error) {
	if width <= 0 {
		return nil, fmt.Errorf("ImageProcessor - ResizeToWidth - width %d: %w", width, errs.ErrEncodingFailure)
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("ImageProcessor - ResizeToWidth - imaging.Decode: %w: %w", errs.ErrEncodingFailure, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("ImageProcessor - ResizeToWidth: %w", err)
	}

	// nearest neighbour keeps module edges sharp
	resized := imaging.Resize(img, width, 0, imaging.NearestNeighbor)

	var buf bytes.Buffer
	err = imaging.Encode(&buf, resized, imaging.PNG)
	if err != nil {
		return nil, fmt.Errorf("ImageProcessor - ResizeToWidth - imaging.Encode: %w: %w", errs.ErrEncodingFailure, err)
	}

	return buf.Bytes(), nil
}
