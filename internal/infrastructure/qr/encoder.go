package qr

import (
	"context"
	"fmt"

	"github.com/Sa-pphire/qr-code-gen/pkg/types/errs"
	qrcode "github.com/skip2/go-qrcode"
)

const _defaultSize = 256

type Encoder struct {
	level qrcode.RecoveryLevel
	size  int
}

// New returns an encoder producing size x size PNGs at error correction
// level H (about 30% recovery).
func New(size int) *Encoder {
	if size <= 0 {
		size = _defaultSize
	}

	return &Encoder{
		level: qrcode.Highest,
		size:  size,
	}
}

func (e *Encoder) Encode(_ context.Context, content string) ([]byte, error) {
	png, err := qrcode.Encode(content, e.level, e.size)
	if err != nil {
		return nil, fmt.Errorf("Encoder - Encode - qrcode.Encode: %w: %w", errs.ErrEncodingFailure, err)
	}

	return png, nil
}
