package storage

import "context"

// Blob keys carried over from the shop's original localStorage layout so an
// exported database stays recognizable.
const (
	KeyProducts = "swadhinShopProducts"
	KeySales    = "swadhinShopSales"
	KeyTheme    = "swadhinShopTheme"
)

// BlobStore persists named string blobs. Get reports ok=false when the key
// has never been written; callers fall back to their defaults in that case.
type BlobStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}
