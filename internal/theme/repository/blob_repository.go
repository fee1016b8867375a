package repository

import (
	"context"

	"github.com/swadhinshop/pos-backend-go/internal/platform/storage"
)

type ThemeRepository interface {
	// Load returns the stored preference, or "" when none was saved yet.
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, theme string) error
}

type blobThemeRepository struct {
	store storage.BlobStore
}

func NewBlobThemeRepository(store storage.BlobStore) ThemeRepository {
	return &blobThemeRepository{store: store}
}

func (r *blobThemeRepository) Load(ctx context.Context) (string, error) {
	value, ok, err := r.store.Get(ctx, storage.KeyTheme)
	if err != nil || !ok {
		return "", err
	}
	return value, nil
}

func (r *blobThemeRepository) Save(ctx context.Context, theme string) error {
	return r.store.Set(ctx, storage.KeyTheme, theme)
}
