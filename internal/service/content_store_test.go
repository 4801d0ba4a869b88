package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"sync"
	"testing"

	"github.com/pulseapp/pulse-backend/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory blob store double
type memStore struct {
	mu            sync.Mutex
	objects       map[string][]byte
	dirs          map[string]int
	failUpload    bool
	failDownload  bool
	failEnsureDir bool
}

func newMemStore() *memStore {
	return &memStore{
		objects: make(map[string][]byte),
		dirs:    make(map[string]int),
	}
}

func (s *memStore) EnsureDir(_ context.Context, dir string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failEnsureDir {
		return errors.New("mkdir failed")
	}
	s.dirs[dir]++
	return nil
}

func (s *memStore) Upload(_ context.Context, key string, body io.Reader) error {
	if s.failUpload {
		return errors.New("connection refused")
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data
	return nil
}

func (s *memStore) Download(_ context.Context, key string) (io.ReadCloser, error) {
	if s.failDownload {
		return nil, errors.New("connection refused")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[key]
	if !ok {
		return nil, errors.New("object not found")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *memStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

func assertSpoolEmpty(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "spool files must be removed on every exit path")
}

func TestContentStore_RoundTrip(t *testing.T) {
	store := newMemStore()
	spool := t.TempDir()
	cs := NewContentStore(store, "posts", spool, 0)

	text := "hello, wörld: exact bytes matter\n"
	key, err := cs.Put(context.Background(), 1, text)
	require.NoError(t, err)
	assert.NotEmpty(t, key)

	got := cs.Get(context.Background(), key)
	assert.Equal(t, text, got)
	assertSpoolEmpty(t, spool)
}

func TestContentStore_PutEmptyContent(t *testing.T) {
	store := newMemStore()
	cs := NewContentStore(store, "posts", t.TempDir(), 0)

	_, err := cs.Put(context.Background(), 1, "   \n")
	assert.ErrorIs(t, err, common.ErrEmptyContent)
	assert.Empty(t, store.objects, "no upload on rejected content")
}

func TestContentStore_PutUploadFailure(t *testing.T) {
	store := newMemStore()
	store.failUpload = true
	spool := t.TempDir()
	cs := NewContentStore(store, "posts", spool, 0)

	_, err := cs.Put(context.Background(), 1, "body")
	assert.ErrorIs(t, err, common.ErrStoreUnavailable)
	assertSpoolEmpty(t, spool)
}

func TestContentStore_PutTwiceSameAuthor(t *testing.T) {
	// Directory provisioning is idempotent and keys never collide
	store := newMemStore()
	cs := NewContentStore(store, "posts", t.TempDir(), 0)

	key1, err := cs.Put(context.Background(), 7, "first")
	require.NoError(t, err)
	key2, err := cs.Put(context.Background(), 7, "second")
	require.NoError(t, err)

	assert.NotEqual(t, key1, key2)
	assert.Equal(t, 2, store.dirs["posts"], "directory ensured on every put without error")
}

func TestContentStore_EnsureDirFailureTolerated(t *testing.T) {
	// A mkdir failure alone does not abort the put; the upload decides
	store := newMemStore()
	store.failEnsureDir = true
	cs := NewContentStore(store, "posts", t.TempDir(), 0)

	key, err := cs.Put(context.Background(), 1, "body")
	require.NoError(t, err)
	assert.Equal(t, "body", cs.Get(context.Background(), key))
}

func TestContentStore_GetFailureReturnsPlaceholder(t *testing.T) {
	store := newMemStore()
	store.failDownload = true
	spool := t.TempDir()
	cs := NewContentStore(store, "posts", spool, 0)

	got := cs.Get(context.Background(), "posts/1_0_missing.txt")
	assert.Equal(t, PlaceholderContent, got)
	assertSpoolEmpty(t, spool)
}

func TestContentStore_GetMissingKeyReturnsPlaceholder(t *testing.T) {
	store := newMemStore()
	cs := NewContentStore(store, "posts", t.TempDir(), 0)

	got := cs.Get(context.Background(), "posts/1_0_never-written.txt")
	assert.Equal(t, PlaceholderContent, got)
}
