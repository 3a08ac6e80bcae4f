// Package blob persists one opaque JSON document per string key inside a
// small set of named collections. There is no locking and no versioning:
// a Write is a full overwrite and concurrent read-modify-write sequences
// against the same key can lose updates (last writer wins).
package blob

import (
	"context"
	"errors"
)

// Collection is one of the logical buckets the service writes to.
type Collection string

const (
	Users  Collection = "users"
	Orders Collection = "orders"
)

// ErrNotFound is the normal outcome for a missing key. Callers must treat
// it separately from decode failures on a present-but-corrupt document.
var ErrNotFound = errors.New("blob not found")

type Store interface {
	Exists(ctx context.Context, c Collection, key string) (bool, error)
	Read(ctx context.Context, c Collection, key string) ([]byte, error)
	Write(ctx context.Context, c Collection, key string, data []byte) error
	Remove(ctx context.Context, c Collection, key string) error
}
