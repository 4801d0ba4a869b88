package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pulseapp/pulse-backend/internal/common"
	pkglogger "github.com/pulseapp/pulse-backend/pkg/logger"
	"github.com/pulseapp/pulse-backend/pkg/storage"
)

// PlaceholderContent is rendered in place of a post body that could not be
// fetched from the blob store. Read failures degrade to this sentinel per
// post; they never fail a whole feed render.
const PlaceholderContent = "[content unavailable]"

// ContentStore persists and retrieves post bodies on a remote blob store,
// keeping body bytes out of the relational hot path. The relational row
// remains the source of truth for existence; the blob store only owns
// content bytes addressed by the key recorded in the row.
type ContentStore interface {
	// Put uploads content and returns the minted key. The caller commits
	// the relational row only after Put succeeds, so a crash in between
	// leaks a remote object but never leaves a dangling reference.
	Put(ctx context.Context, authorID int64, content string) (string, error)
	// Get fetches the content stored under key. It never returns an error:
	// any failure yields PlaceholderContent.
	Get(ctx context.Context, key string) string
	// Remove deletes the object under key. Best-effort compensation for a
	// failed relational commit after a successful upload.
	Remove(ctx context.Context, key string)
}

type contentStore struct {
	store     storage.Store
	keyPrefix string
	spoolDir  string
	timeout   time.Duration
}

// NewContentStore creates a ContentStore on top of the given blob store.
// spoolDir is where staging files live; empty means the OS temp directory.
func NewContentStore(store storage.Store, keyPrefix, spoolDir string, timeout time.Duration) ContentStore {
	if keyPrefix == "" {
		keyPrefix = "posts"
	}
	return &contentStore{
		store:     store,
		keyPrefix: keyPrefix,
		spoolDir:  spoolDir,
		timeout:   timeout,
	}
}

func (s *contentStore) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *contentStore) Put(ctx context.Context, authorID int64, content string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", common.ErrEmptyContent
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	key := storage.GenerateKey(s.keyPrefix, authorID, time.Now())

	// Provision the parent directory. A failure here is not fatal on its
	// own; the upload below is authoritative.
	if err := s.store.EnsureDir(ctx, storage.ParentDir(key)); err != nil {
		pkglogger.GetLogger().Warn().Err(err).
			Str("key", key).
			Msg("failed to ensure remote directory")
	}

	// Stage the body through a local spool file, removed on every exit path
	spool, err := os.CreateTemp(s.spoolDir, "pulse-upload-*.txt")
	if err != nil {
		return "", fmt.Errorf("%w: %s", common.ErrStoreUnavailable, err)
	}
	defer func() {
		spool.Close()
		os.Remove(spool.Name())
	}()

	if _, err := spool.WriteString(content); err != nil {
		return "", fmt.Errorf("%w: %s", common.ErrStoreUnavailable, err)
	}
	if _, err := spool.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("%w: %s", common.ErrStoreUnavailable, err)
	}

	if err := s.store.Upload(ctx, key, spool); err != nil {
		pkglogger.GetLogger().Error().Err(err).
			Str("key", key).
			Msg("content upload failed")
		return "", fmt.Errorf("%w: %s", common.ErrStoreUnavailable, err)
	}

	return key, nil
}

func (s *contentStore) Get(ctx context.Context, key string) string {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	stream, err := s.store.Download(ctx, key)
	if err != nil {
		pkglogger.GetLogger().Warn().Err(err).
			Str("key", key).
			Msg("content download failed")
		return PlaceholderContent
	}
	defer stream.Close()

	// Stage through a spool file, removed on every exit path
	spool, err := os.CreateTemp(s.spoolDir, "pulse-download-*.txt")
	if err != nil {
		return PlaceholderContent
	}
	defer func() {
		spool.Close()
		os.Remove(spool.Name())
	}()

	if _, err := io.Copy(spool, stream); err != nil {
		pkglogger.GetLogger().Warn().Err(err).
			Str("key", key).
			Msg("content read failed")
		return PlaceholderContent
	}

	data, err := os.ReadFile(spool.Name())
	if err != nil {
		return PlaceholderContent
	}
	return string(data)
}

func (s *contentStore) Remove(ctx context.Context, key string) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	if err := s.store.Delete(ctx, key); err != nil {
		// A leaked remote object is the accepted failure mode; the row was
		// never committed so nothing dangles.
		pkglogger.GetLogger().Warn().Err(err).
			Str("key", key).
			Msg("failed to remove orphaned content object")
	}
}
