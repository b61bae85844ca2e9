package persistent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/Sa-pphire/qr-code-gen/internal/entity"
	"github.com/Sa-pphire/qr-code-gen/pkg/postgres"
	"github.com/Sa-pphire/qr-code-gen/pkg/types/errs"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	// Table
	landingPagesTable = "landing_pages"

	// Columns
	idColumn           = "id"
	titleColumn        = "title"
	subtitleColumn     = "subtitle"
	descriptionColumn  = "description"
	bgColorColumn      = "bg_color"
	pdfURLColumn       = "pdf_url"
	previewImageColumn = "preview_image"
	qrCodeURLColumn    = "qr_code_url"
	createdAtColumn    = "created_at"
	updatedAtColumn    = "updated_at"
)

// landingPagesMigrationLock is the advisory lock key held while migrating.
const landingPagesMigrationLock int64 = 0x6c616e64

var landingPagesSchema = []string{
	`CREATE TABLE IF NOT EXISTS landing_pages (
		id            UUID PRIMARY KEY,
		title         TEXT NOT NULL DEFAULT '',
		subtitle      TEXT NOT NULL DEFAULT '',
		description   TEXT NOT NULL DEFAULT '',
		bg_color      TEXT NOT NULL DEFAULT '',
		pdf_url       TEXT NOT NULL,
		preview_image TEXT NOT NULL,
		qr_code_url   TEXT,
		created_at    TIMESTAMPTZ NOT NULL,
		updated_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS landing_pages_created_at_idx ON landing_pages (created_at)`,
}

type LandingPagePostgresRepo struct {
	*postgres.Postgres
}

func NewLandingPagePostgresRepo(pg *postgres.Postgres) *LandingPagePostgresRepo {
	return &LandingPagePostgresRepo{pg}
}

// Migrate creates the landing_pages table when missing. Instances starting
// together serialise on an advisory lock.
func (r *LandingPagePostgresRepo) Migrate(ctx context.Context) error {
	err := r.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := r.AdvisoryXactLock(ctx, landingPagesMigrationLock); err != nil {
			return err
		}

		executor := r.GetExecutor(ctx)

		for _, stmt := range landingPagesSchema {
			if _, err := executor.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("executor.Exec: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("LandingPagePostgresRepo - Migrate: %w", err)
	}

	return nil
}

func (r *LandingPagePostgresRepo) Create(ctx context.Context, fields entity.LandingPageFields) (string, error) {
	id := uuid.New()
	now := time.Now().UTC()

	sql, args, err := r.Builder.
		Insert(landingPagesTable).
		Columns(
			idColumn,
			titleColumn,
			subtitleColumn,
			descriptionColumn,
			bgColorColumn,
			pdfURLColumn,
			previewImageColumn,
			createdAtColumn,
			updatedAtColumn,
		).
		Values(
			id,
			fields.Title,
			fields.Subtitle,
			fields.Description,
			fields.BackgroundColor,
			fields.PDFReference,
			fields.PreviewImageReference,
			now,
			now,
		).ToSql()
	if err != nil {
		return "", fmt.Errorf("LandingPagePostgresRepo - Create - r.Builder.ToSql: %w: %w", errs.ErrPersistenceFailure, err)
	}

	executor := r.GetExecutor(ctx)

	_, err = executor.Exec(ctx, sql, args...)
	if err != nil {
		return "", fmt.Errorf("LandingPagePostgresRepo - Create - executor.Exec: %w: %w", errs.ErrPersistenceFailure, err)
	}

	return id.String(), nil
}

func (r *LandingPagePostgresRepo) AttachQRReference(ctx context.Context, id, reference string) error {
	pageID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("LandingPagePostgresRepo - AttachQRReference - uuid.Parse: %w", errs.ErrRecordNotFound)
	}

	sql, args, err := r.Builder.
		Update(landingPagesTable).
		Set(qrCodeURLColumn, reference).
		Set(updatedAtColumn, time.Now().UTC()).
		Where(squirrel.Eq{idColumn: pageID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("LandingPagePostgresRepo - AttachQRReference - r.Builder.ToSql: %w: %w", errs.ErrPersistenceFailure, err)
	}

	executor := r.GetExecutor(ctx)

	tag, err := executor.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("LandingPagePostgresRepo - AttachQRReference - executor.Exec: %w: %w", errs.ErrPersistenceFailure, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("LandingPagePostgresRepo - AttachQRReference: %w", errs.ErrRecordNotFound)
	}

	return nil
}

func (r *LandingPagePostgresRepo) GetByID(ctx context.Context, id string) (*entity.LandingPage, error) {
	pageID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("LandingPagePostgresRepo - GetByID - uuid.Parse: %w", errs.ErrRecordNotFound)
	}

	sql, args, err := r.Builder.
		Select(
			idColumn,
			titleColumn,
			subtitleColumn,
			descriptionColumn,
			bgColorColumn,
			pdfURLColumn,
			previewImageColumn,
			qrCodeURLColumn,
			createdAtColumn,
			updatedAtColumn,
		).
		From(landingPagesTable).
		Where(squirrel.Eq{idColumn: pageID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("LandingPagePostgresRepo - GetByID - r.Builder.ToSql: %w: %w", errs.ErrPersistenceFailure, err)
	}

	executor := r.GetExecutor(ctx)

	var (
		page  entity.LandingPage
		rowID uuid.UUID
	)
	err = executor.QueryRow(ctx, sql, args...).Scan(
		&rowID,
		&page.Title,
		&page.Subtitle,
		&page.Description,
		&page.BackgroundColor,
		&page.PDFReference,
		&page.PreviewImageReference,
		&page.QRImageReference,
		&page.CreatedAt,
		&page.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("LandingPagePostgresRepo - GetByID: %w", errs.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("LandingPagePostgresRepo - GetByID - executor.QueryRow: %w: %w", errs.ErrPersistenceFailure, err)
	}

	page.ID = rowID.String()

	return &page, nil
}
