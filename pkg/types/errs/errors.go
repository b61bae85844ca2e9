package errs

import (
	"errors"
	"fmt"
)

var (
	ErrUploadFailure      = errors.New("upload failure")
	ErrStorageFailure     = errors.New("storage failure")
	ErrPersistenceFailure = errors.New("persistence failure")
	ErrRecordNotFound     = errors.New("record not found")
	ErrEncodingFailure    = errors.New("encoding failure")
)

// GenerationError is returned when a landing page record was created but its
// QR code could not be produced, stored or attached. The record stays readable
// without a QR reference.
type GenerationError struct {
	ID      string
	ViewURL string
	Err     error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("landing page %s: qr code generation: %v", e.ID, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
