package persistent

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Sa-pphire/qr-code-gen/internal/entity"
	"github.com/Sa-pphire/qr-code-gen/pkg/types/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalAssetRepo_Store(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	repo, err := NewLocalAssetRepo(dir, "/uploads/")
	require.NoError(t, err)

	tests := []struct {
		category entity.AssetCategory
		data     []byte
		prefix   string
		ext      string
	}{
		{entity.AssetPDF, []byte("%PDF-1.4 body"), "/uploads/qr_pdfs/", ".pdf"},
		{entity.AssetPreview, []byte("\x89PNG\r\n\x1a\n0000"), "/uploads/qr_previews/", ".png"},
		{entity.AssetQR, []byte("qr bytes"), "/uploads/qr_codes/", ".png"},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			ref, err := repo.Store(ctx, tt.data, tt.category)
			require.NoError(t, err)

			assert.True(t, strings.HasPrefix(ref, tt.prefix), ref)
			assert.True(t, strings.HasSuffix(ref, tt.ext), ref)

			b, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(ref, "/uploads/")))
			require.NoError(t, err)
			assert.Equal(t, tt.data, b)
		})
	}
}

func TestLocalAssetRepo_DistinctReferences(t *testing.T) {
	ctx := context.Background()

	repo, err := NewLocalAssetRepo(t.TempDir(), "/uploads")
	require.NoError(t, err)

	first, err := repo.Store(ctx, []byte("same"), entity.AssetPDF)
	require.NoError(t, err)
	second, err := repo.Store(ctx, []byte("same"), entity.AssetPDF)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestLocalAssetRepo_Delete(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	repo, err := NewLocalAssetRepo(dir, "/uploads")
	require.NoError(t, err)

	ref, err := repo.Store(ctx, []byte("%PDF-1.4"), entity.AssetPDF)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, ref))
	_, err = os.Stat(filepath.Join(dir, strings.TrimPrefix(ref, "/uploads/")))
	assert.True(t, os.IsNotExist(err))

	// already gone
	assert.NoError(t, repo.Delete(ctx, ref))

	assert.ErrorIs(t, repo.Delete(ctx, "/uploads/../secret"), errs.ErrStorageFailure)
	assert.ErrorIs(t, repo.Delete(ctx, "https://elsewhere/file.pdf"), errs.ErrStorageFailure)
}

func TestLocalAssetRepo_DeleteAtRootURLPath(t *testing.T) {
	ctx := context.Background()

	for _, urlPath := range []string{"/", ""} {
		t.Run("url path "+urlPath, func(t *testing.T) {
			dir := t.TempDir()

			repo, err := NewLocalAssetRepo(dir, urlPath)
			require.NoError(t, err)

			ref, err := repo.Store(ctx, []byte("%PDF-1.4"), entity.AssetPDF)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(ref, "/qr_pdfs/"), ref)

			require.NoError(t, repo.Delete(ctx, ref))
			_, err = os.Stat(filepath.Join(dir, strings.TrimPrefix(ref, "/")))
			assert.True(t, os.IsNotExist(err))
		})
	}
}

func TestLocalAssetRepo_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo, err := NewLocalAssetRepo(t.TempDir(), "/uploads")
	require.NoError(t, err)

	_, err = repo.Store(ctx, []byte("data"), entity.AssetPDF)
	assert.ErrorIs(t, err, errs.ErrStorageFailure)
}
