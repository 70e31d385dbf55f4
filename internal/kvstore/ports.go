package kvstore

import "context"

// Keys used by the services.
const (
	KeyUser     = "arth_user"
	KeyTimeline = "arth_timeline"
)

// Store is a string key-value port for small on-device documents.
// A missing key is reported with ok=false and a nil error.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}
