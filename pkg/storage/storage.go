package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/rs/xid"
)

// ErrNotFound is returned when a key does not exist in the store
var ErrNotFound = errors.New("object not found")

// Store is a remote blob store addressed by string keys.
// The relational database remains the source of truth for existence;
// a store only owns body bytes.
type Store interface {
	// EnsureDir provisions the parent directory for a key. Implementations
	// must treat "already exists" as success. Backends without directories
	// return nil.
	EnsureDir(ctx context.Context, dir string) error
	// Upload writes body under key so that a later Download returns
	// identical bytes.
	Upload(ctx context.Context, key string, body io.Reader) error
	// Download retrieves the bytes stored under key. The caller closes the
	// returned reader.
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	// Delete removes the object under key. Used only as best-effort
	// compensation when a commit fails after a successful upload.
	Delete(ctx context.Context, key string) error
}

// GenerateKey mints a content key namespaced by author and creation time.
// The xid suffix keeps keys unique even for rapid repeated posts by the
// same author within one second.
func GenerateKey(prefix string, authorID int64, now time.Time) string {
	return fmt.Sprintf("%s/%d_%d_%s.txt", prefix, authorID, now.Unix(), xid.New().String())
}

// ParentDir returns the directory portion of a key
func ParentDir(key string) string {
	return path.Dir(key)
}
