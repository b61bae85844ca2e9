package processor

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/Sa-pphire/qr-code-gen/pkg/types/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			if (x+y)%2 == 0 {
				img.Set(x, y, color.Black)
			} else {
				img.Set(x, y, color.White)
			}
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func TestImageProcessor_ResizeToWidth(t *testing.T) {
	p := New()

	tests := []struct {
		name         string
		w, h, width  int
		wantW, wantH int
	}{
		{"square upscale", 256, 256, 500, 500, 500},
		{"keeps aspect", 200, 100, 500, 500, 250},
		{"downscale", 1000, 500, 500, 500, 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := p.ResizeToWidth(context.Background(), pngBytes(t, tt.w, tt.h), tt.width)
			require.NoError(t, err)

			cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
			require.NoError(t, err)
			assert.Equal(t, "png", format)
			assert.Equal(t, tt.wantW, cfg.Width)
			assert.Equal(t, tt.wantH, cfg.Height)
		})
	}
}

func TestImageProcessor_ResizeToWidthErrors(t *testing.T) {
	p := New()

	_, err := p.ResizeToWidth(context.Background(), []byte("not an image"), 500)
	assert.ErrorIs(t, err, errs.ErrEncodingFailure)

	_, err = p.ResizeToWidth(context.Background(), pngBytes(t, 10, 10), 0)
	assert.ErrorIs(t, err, errs.ErrEncodingFailure)
}
