package settings

import "context"

// Store persists settings as an opaque key-value map. Values are
// stored as strings; typed conversion happens in the application
// layer.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	GetAll(ctx context.Context) (map[string]string, error)
}
