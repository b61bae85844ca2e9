package persistent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Sa-pphire/qr-code-gen/internal/entity"
	"github.com/Sa-pphire/qr-code-gen/pkg/types/errs"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type landingPageModel struct {
	ID           string  `gorm:"primaryKey;size:36"`
	Title        string  `gorm:"not null;default:''"`
	Subtitle     string  `gorm:"not null;default:''"`
	Description  string  `gorm:"not null;default:''"`
	BgColor      string  `gorm:"column:bg_color;not null;default:''"`
	PDFURL       string  `gorm:"column:pdf_url;not null"`
	PreviewImage string  `gorm:"column:preview_image;not null"`
	QRCodeURL    *string `gorm:"column:qr_code_url"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (landingPageModel) TableName() string {
	return landingPagesTable
}

type LandingPageSQLiteRepo struct {
	db *gorm.DB
}

// NewLandingPageSQLiteRepo auto-migrates the landing_pages table.
func NewLandingPageSQLiteRepo(gdb *gorm.DB) (*LandingPageSQLiteRepo, error) {
	if err := gdb.AutoMigrate(&landingPageModel{}); err != nil {
		return nil, fmt.Errorf("LandingPageSQLiteRepo - New - gdb.AutoMigrate: %w", err)
	}

	return &LandingPageSQLiteRepo{db: gdb}, nil
}

func (r *LandingPageSQLiteRepo) Create(ctx context.Context, fields entity.LandingPageFields) (string, error) {
	m := landingPageModel{
		ID:           uuid.NewString(),
		Title:        fields.Title,
		Subtitle:     fields.Subtitle,
		Description:  fields.Description,
		BgColor:      fields.BackgroundColor,
		PDFURL:       fields.PDFReference,
		PreviewImage: fields.PreviewImageReference,
	}

	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return "", fmt.Errorf("LandingPageSQLiteRepo - Create - r.db.Create: %w: %w", errs.ErrPersistenceFailure, err)
	}

	return m.ID, nil
}

func (r *LandingPageSQLiteRepo) AttachQRReference(ctx context.Context, id, reference string) error {
	res := r.db.WithContext(ctx).
		Model(&landingPageModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"qr_code_url": reference,
			"updated_at":  time.Now(),
		})
	if res.Error != nil {
		return fmt.Errorf("LandingPageSQLiteRepo - AttachQRReference - r.db.Updates: %w: %w", errs.ErrPersistenceFailure, res.Error)
	}

	if res.RowsAffected == 0 {
		return fmt.Errorf("LandingPageSQLiteRepo - AttachQRReference: %w", errs.ErrRecordNotFound)
	}

	return nil
}

func (r *LandingPageSQLiteRepo) GetByID(ctx context.Context, id string) (*entity.LandingPage, error) {
	var m landingPageModel

	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("LandingPageSQLiteRepo - GetByID: %w", errs.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("LandingPageSQLiteRepo - GetByID - r.db.First: %w: %w", errs.ErrPersistenceFailure, err)
	}

	return &entity.LandingPage{
		ID:                    m.ID,
		Title:                 m.Title,
		Subtitle:              m.Subtitle,
		Description:           m.Description,
		BackgroundColor:       m.BgColor,
		PDFReference:          m.PDFURL,
		PreviewImageReference: m.PreviewImage,
		QRImageReference:      m.QRCodeURL,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}, nil
}
