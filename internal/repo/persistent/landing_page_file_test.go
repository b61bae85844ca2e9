package persistent

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Sa-pphire/qr-code-gen/internal/entity"
	"github.com/Sa-pphire/qr-code-gen/pkg/types/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFields() entity.LandingPageFields {
	return entity.LandingPageFields{
		Title:                 "A",
		Subtitle:              "B",
		Description:           "C",
		BackgroundColor:       "#fff",
		PDFReference:          "/uploads/qr_pdfs/doc.pdf",
		PreviewImageReference: "/uploads/qr_previews/preview.png",
	}
}

func TestLandingPageFileRepo_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo, err := NewLandingPageFileRepo(filepath.Join(t.TempDir(), "data", "records.json"))
	require.NoError(t, err)

	id, err := repo.Create(ctx, testFields())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	page, err := repo.GetByID(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, id, page.ID)
	assert.Equal(t, "A", page.Title)
	assert.Equal(t, "B", page.Subtitle)
	assert.Equal(t, "C", page.Description)
	assert.Equal(t, "#fff", page.BackgroundColor)
	assert.Equal(t, "/uploads/qr_pdfs/doc.pdf", page.PDFReference)
	assert.Equal(t, "/uploads/qr_previews/preview.png", page.PreviewImageReference)
	assert.Nil(t, page.QRImageReference)
	assert.False(t, page.HasQRCode())
}

func TestLandingPageFileRepo_UniqueIDs(t *testing.T) {
	ctx := context.Background()
	repo, err := NewLandingPageFileRepo(filepath.Join(t.TempDir(), "records.json"))
	require.NoError(t, err)

	seen := make(map[string]struct{})
	for i := 0; i < 20; i++ {
		id, err := repo.Create(ctx, testFields())
		require.NoError(t, err)

		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestLandingPageFileRepo_AttachQRReference(t *testing.T) {
	ctx := context.Background()
	repo, err := NewLandingPageFileRepo(filepath.Join(t.TempDir(), "records.json"))
	require.NoError(t, err)

	id, err := repo.Create(ctx, testFields())
	require.NoError(t, err)

	require.NoError(t, repo.AttachQRReference(ctx, id, "/uploads/qr_codes/qr.png"))

	page, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.True(t, page.HasQRCode())
	assert.Equal(t, "/uploads/qr_codes/qr.png", *page.QRImageReference)
}

func TestLandingPageFileRepo_NotFound(t *testing.T) {
	ctx := context.Background()
	repo, err := NewLandingPageFileRepo(filepath.Join(t.TempDir(), "records.json"))
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, "nonexistent")
	assert.ErrorIs(t, err, errs.ErrRecordNotFound)

	err = repo.AttachQRReference(ctx, "nonexistent", "/uploads/qr_codes/qr.png")
	assert.ErrorIs(t, err, errs.ErrRecordNotFound)
}

func TestLandingPageFileRepo_ReloadsFromDisk(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "records.json")

	repo, err := NewLandingPageFileRepo(path)
	require.NoError(t, err)

	id, err := repo.Create(ctx, testFields())
	require.NoError(t, err)
	require.NoError(t, repo.AttachQRReference(ctx, id, "/uploads/qr_codes/qr.png"))

	reopened, err := NewLandingPageFileRepo(path)
	require.NoError(t, err)

	page, err := reopened.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "A", page.Title)
	require.NotNil(t, page.QRImageReference)
	assert.Equal(t, "/uploads/qr_codes/qr.png", *page.QRImageReference)
}

func TestLandingPageFileRepo_FileLayout(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "records.json")

	repo, err := NewLandingPageFileRepo(path)
	require.NoError(t, err)

	id, err := repo.Create(ctx, testFields())
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"`+id+`"`)
	assert.Contains(t, string(b), `"bgColor": "#fff"`)
	assert.NotContains(t, string(b), "qrCodeUrl")
}

func TestLandingPageFileRepo_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewLandingPageFileRepo(path)
	assert.Error(t, err)
}

func TestLandingPageFileRepo_NullDocument(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "records.json")
	require.NoError(t, os.WriteFile(path, []byte("null"), 0o644))

	repo, err := NewLandingPageFileRepo(path)
	require.NoError(t, err)

	id, err := repo.Create(ctx, testFields())
	require.NoError(t, err)

	page, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "A", page.Title)
}

func TestLandingPageFileRepo_PersistFailureKeepsState(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permissions are not enforced for root")
	}

	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "records.json")

	repo, err := NewLandingPageFileRepo(path)
	require.NoError(t, err)

	id, err := repo.Create(ctx, testFields())
	require.NoError(t, err)

	require.NoError(t, os.Chmod(dir, 0o500))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	err = repo.AttachQRReference(ctx, id, "/uploads/qr_codes/qr.png")
	require.ErrorIs(t, err, errs.ErrPersistenceFailure)

	page, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, page.QRImageReference)

	_, err = repo.Create(ctx, testFields())
	assert.ErrorIs(t, err, errs.ErrPersistenceFailure)
}
