package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testStoreRoundTrip(t *testing.T, store BlobStore) {
	t.Helper()
	ctx := context.TODO()

	_, ok, err := store.Get(ctx, KeyTheme)
	assert.NoError(t, err)
	assert.False(t, ok, "unwritten key must report ok=false")

	assert.NoError(t, store.Set(ctx, KeyTheme, "dark"))
	value, ok, err := store.Get(ctx, KeyTheme)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", value)

	// Overwrite, not append.
	assert.NoError(t, store.Set(ctx, KeyTheme, "light"))
	value, _, _ = store.Get(ctx, KeyTheme)
	assert.Equal(t, "light", value)
}

func TestMemoryStore(t *testing.T) {
	testStoreRoundTrip(t, NewMemoryStore())
}

func TestSQLiteStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "data", "shop.db")

	store, closeStore, err := NewSQLiteStore(dbPath)
	assert.NoError(t, err)
	defer closeStore()

	testStoreRoundTrip(t, store)
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	ctx := context.TODO()
	dbPath := filepath.Join(t.TempDir(), "shop.db")

	store, closeStore, err := NewSQLiteStore(dbPath)
	assert.NoError(t, err)
	assert.NoError(t, store.Set(ctx, KeyProducts, `[{"id":1}]`))
	assert.NoError(t, closeStore())

	reopened, closeReopened, err := NewSQLiteStore(dbPath)
	assert.NoError(t, err)
	defer closeReopened()

	value, ok, err := reopened.Get(ctx, KeyProducts)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":1}]`, value)
}
