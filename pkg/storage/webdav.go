package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/studio-b12/gowebdav"
	pkglogger "github.com/pulseapp/pulse-backend/pkg/logger"
)

// WebDAVStore is a blob store backed by a WebDAV server
// (e.g. a Hetzner storage box).
type WebDAVStore struct {
	client *gowebdav.Client
}

// WebDAVConfig holds WebDAV storage configuration
type WebDAVConfig struct {
	Hostname string // e.g. https://uXXXXXX.your-storagebox.de/
	Username string
	Password string
	Timeout  time.Duration // per-operation timeout, 0 means no timeout
}

// NewWebDAVStore creates a new WebDAV-backed blob store
func NewWebDAVStore(cfg WebDAVConfig) (*WebDAVStore, error) {
	client := gowebdav.NewClient(cfg.Hostname, cfg.Username, cfg.Password)
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}

	if err := client.Connect(); err != nil {
		return nil, fmt.Errorf("webdav connect failed: %w", err)
	}

	pkglogger.GetLogger().Info().
		Str("hostname", cfg.Hostname).
		Msg("WebDAV storage client initialized")

	return &WebDAVStore{client: client}, nil
}

// EnsureDir provisions dir if it does not exist yet. A concurrent creation
// losing the check-then-create race is treated as success.
func (s *WebDAVStore) EnsureDir(_ context.Context, dir string) error {
	if _, err := s.client.Stat(dir); err == nil {
		return nil
	}

	if err := s.client.MkdirAll(dir, 0o755); err != nil {
		// Another writer may have created it between the check and the mkdir
		if _, statErr := s.client.Stat(dir); statErr == nil {
			return nil
		}
		return fmt.Errorf("webdav mkdir failed: %w", err)
	}
	return nil
}

// Upload writes body under key
func (s *WebDAVStore) Upload(_ context.Context, key string, body io.Reader) error {
	if err := s.client.WriteStream(key, body, 0o644); err != nil {
		return fmt.Errorf("webdav upload failed: %w", err)
	}
	return nil
}

// Download retrieves the object stored under key
func (s *WebDAVStore) Download(_ context.Context, key string) (io.ReadCloser, error) {
	stream, err := s.client.ReadStream(key)
	if err != nil {
		if gowebdav.IsErrNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("webdav download failed: %w", err)
	}
	return stream, nil
}

// Delete removes the object under key
func (s *WebDAVStore) Delete(_ context.Context, key string) error {
	if err := s.client.Remove(key); err != nil {
		return fmt.Errorf("webdav delete failed: %w", err)
	}
	return nil
}
