package persistent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Sa-pphire/qr-code-gen/internal/entity"
	"github.com/Sa-pphire/qr-code-gen/pkg/types/errs"
	"github.com/google/renameio/v2"
	"github.com/google/uuid"
)

type landingPageDocument struct {
	Title        string    `json:"title"`
	Subtitle     string    `json:"subtitle"`
	Description  string    `json:"description"`
	BgColor      string    `json:"bgColor"`
	PDFURL       string    `json:"pdfUrl"`
	PreviewImage string    `json:"previewImage"`
	QRCodeURL    *string   `json:"qrCodeUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// LandingPageFileRepo keeps every record in a single JSON object keyed by id.
// The file is read once on construction and rewritten in full on each
// mutation via write-then-rename, so a crash never leaves a half-written file.
// The mutex only serialises access inside this process; there is no
// cross-process locking and no conflict detection between writers.
type LandingPageFileRepo struct {
	mu      sync.RWMutex
	path    string
	records map[string]landingPageDocument
}

func NewLandingPageFileRepo(path string) (*LandingPageFileRepo, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("LandingPageFileRepo - New - os.MkdirAll: %w", err)
	}

	r := &LandingPageFileRepo{
		path:    path,
		records: make(map[string]landingPageDocument),
	}

	if err := r.load(); err != nil {
		return nil, fmt.Errorf("LandingPageFileRepo - New - r.load: %w", err)
	}

	return r, nil
}

func (r *LandingPageFileRepo) Create(ctx context.Context, fields entity.LandingPageFields) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("LandingPageFileRepo - Create: %w: %w", errs.ErrPersistenceFailure, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.NewString()
	now := time.Now().UTC()

	r.records[id] = landingPageDocument{
		Title:        fields.Title,
		Subtitle:     fields.Subtitle,
		Description:  fields.Description,
		BgColor:      fields.BackgroundColor,
		PDFURL:       fields.PDFReference,
		PreviewImage: fields.PreviewImageReference,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := r.persist(); err != nil {
		delete(r.records, id)

		return "", fmt.Errorf("LandingPageFileRepo - Create - r.persist: %w: %w", errs.ErrPersistenceFailure, err)
	}

	return id, nil
}

func (r *LandingPageFileRepo) AttachQRReference(ctx context.Context, id, reference string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("LandingPageFileRepo - AttachQRReference: %w: %w", errs.ErrPersistenceFailure, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	doc, ok := r.records[id]
	if !ok {
		return fmt.Errorf("LandingPageFileRepo - AttachQRReference: %w", errs.ErrRecordNotFound)
	}

	updated := doc
	updated.QRCodeURL = &reference
	updated.UpdatedAt = time.Now().UTC()
	r.records[id] = updated

	if err := r.persist(); err != nil {
		r.records[id] = doc

		return fmt.Errorf("LandingPageFileRepo - AttachQRReference - r.persist: %w: %w", errs.ErrPersistenceFailure, err)
	}

	return nil
}

func (r *LandingPageFileRepo) GetByID(_ context.Context, id string) (*entity.LandingPage, error) {
	r.mu.RLock()
	doc, ok := r.records[id]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("LandingPageFileRepo - GetByID: %w", errs.ErrRecordNotFound)
	}

	page := &entity.LandingPage{
		ID:                    id,
		Title:                 doc.Title,
		Subtitle:              doc.Subtitle,
		Description:           doc.Description,
		BackgroundColor:       doc.BgColor,
		PDFReference:          doc.PDFURL,
		PreviewImageReference: doc.PreviewImage,
		CreatedAt:             doc.CreatedAt,
		UpdatedAt:             doc.UpdatedAt,
	}
	if doc.QRCodeURL != nil {
		ref := *doc.QRCodeURL
		page.QRImageReference = &ref
	}

	return page, nil
}

func (r *LandingPageFileRepo) load() error {
	b, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("os.ReadFile: %w", err)
	}

	if len(b) == 0 {
		return nil
	}

	if err := json.Unmarshal(b, &r.records); err != nil {
		return fmt.Errorf("json.Unmarshal: %w", err)
	}

	// a "null" document leaves the map nil
	if r.records == nil {
		r.records = make(map[string]landingPageDocument)
	}

	return nil
}

// persist must be called with mu held for writing.
func (r *LandingPageFileRepo) persist() error {
	b, err := json.MarshalIndent(r.records, "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent: %w", err)
	}

	if err := renameio.WriteFile(r.path, b, 0o644); err != nil {
		return fmt.Errorf("renameio.WriteFile: %w", err)
	}

	return nil
}
