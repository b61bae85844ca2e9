package persistent

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/Sa-pphire/qr-code-gen/internal/entity"
	"github.com/Sa-pphire/qr-code-gen/pkg/types/errs"
	"github.com/google/renameio/v2"
)

// LocalAssetRepo keeps assets on disk under dir. References are server-relative
// paths under urlPath, which the HTTP layer serves statically.
type LocalAssetRepo struct {
	dir     string
	urlPath string
}

func NewLocalAssetRepo(dir, urlPath string) (*LocalAssetRepo, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("LocalAssetRepo - New - os.MkdirAll: %w", err)
	}

	return &LocalAssetRepo{
		dir:     dir,
		urlPath: "/" + strings.Trim(urlPath, "/"),
	}, nil
}

func (r *LocalAssetRepo) Store(ctx context.Context, data []byte, category entity.AssetCategory) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("LocalAssetRepo - Store: %w: %w", errs.ErrStorageFailure, err)
	}

	name, _ := assetObject(data, category)
	folder := filepath.Join(r.dir, category.Folder())

	if err := os.MkdirAll(folder, 0o755); err != nil {
		return "", fmt.Errorf("LocalAssetRepo - Store - os.MkdirAll: %w: %w", errs.ErrStorageFailure, err)
	}

	if err := renameio.WriteFile(filepath.Join(folder, name), data, 0o644); err != nil {
		return "", fmt.Errorf("LocalAssetRepo - Store - renameio.WriteFile: %w: %w", errs.ErrStorageFailure, err)
	}

	return path.Join(r.urlPath, category.Folder(), name), nil
}

func (r *LocalAssetRepo) Delete(_ context.Context, reference string) error {
	rel, ok := strings.CutPrefix(reference, strings.TrimRight(r.urlPath, "/")+"/")
	if !ok || !fs.ValidPath(rel) {
		return fmt.Errorf("LocalAssetRepo - Delete - unknown reference %q: %w", reference, errs.ErrStorageFailure)
	}

	err := os.Remove(filepath.Join(r.dir, filepath.FromSlash(rel)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("LocalAssetRepo - Delete - os.Remove: %w: %w", errs.ErrStorageFailure, err)
	}

	return nil
}
