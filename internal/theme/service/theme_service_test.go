package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/swadhinshop/pos-backend-go/internal/platform/storage"
	"github.com/swadhinshop/pos-backend-go/internal/theme/repository"
)

func TestThemeService(t *testing.T) {
	ctx := context.TODO()
	svc := NewThemeService(repository.NewBlobThemeRepository(storage.NewMemoryStore()))

	t.Run("Defaults to light", func(t *testing.T) {
		theme, err := svc.Get(ctx)
		assert.NoError(t, err)
		assert.Equal(t, ThemeLight, theme)
	})

	t.Run("Round-trips dark", func(t *testing.T) {
		assert.NoError(t, svc.Set(ctx, ThemeDark))
		theme, err := svc.Get(ctx)
		assert.NoError(t, err)
		assert.Equal(t, ThemeDark, theme)
	})

	t.Run("Rejects unknown values", func(t *testing.T) {
		err := svc.Set(ctx, "sepia")
		assert.ErrorIs(t, err, ErrInvalidTheme)

		theme, _ := svc.Get(ctx)
		assert.Equal(t, ThemeDark, theme) // stored preference untouched
	})
}
