package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/hyoga-dev/PermafrostDig_Go/internal/domain"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/logger"
)

// Store is the persistence boundary for all game state. Values are
// whole JSON documents keyed by name; there are no partial updates.
type Store interface {
	// Get unmarshals the value for key into target. Returns false when the
	// key has never been written.
	Get(ctx context.Context, key string, target any) (bool, error)
	// Put replaces the value for key atomically.
	Put(ctx context.Context, key string, value any) error
	// Delete removes the key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Ping verifies the backing directory is reachable.
	Ping(ctx context.Context) error
}

// FileStore keeps each key in its own pretty-printed JSON file so a player
// can inspect and hand-edit their save. Writes go through a temp file and
// rename to stay crash-safe. A small expirable LRU caches raw document
// bytes to skip disk reads on hot keys.
type FileStore struct {
	dir   string
	mu    sync.Mutex
	cache *docCache
}

// NewFileStore creates the save directory if needed and returns a store
// over it.
func NewFileStore(dir string, cacheSize int, cacheTTL time.Duration) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextCreateDataDir, err)
	}
	return &FileStore{
		dir:   dir,
		cache: newDocCache(cacheSize, cacheTTL),
	}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+FileExtension)
}

// Get reads a key, preferring the decode cache over disk.
func (s *FileStore) Get(ctx context.Context, key string, target any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if raw, ok := s.cache.Get(key); ok {
		if err := json.Unmarshal(raw, target); err != nil {
			return false, fmt.Errorf("%s %q: %w", ErrContextDecodeValue, key, err)
		}
		return true, nil
	}

	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("%s %q: %w: %w", ErrContextReadKey, key, domain.ErrStorageError, err)
	}

	if err := json.Unmarshal(raw, target); err != nil {
		return false, fmt.Errorf("%s %q: %w", ErrContextDecodeValue, key, err)
	}

	s.cache.Set(key, raw)
	return true, nil
}

// Put writes a key atomically and refreshes the cache.
func (s *FileStore) Put(ctx context.Context, key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("%s %q: %w", ErrContextEncodeValue, key, err)
	}

	tmp, err := os.CreateTemp(s.dir, key+TempFilePattern)
	if err != nil {
		return fmt.Errorf("%s %q: %w: %w", ErrContextWriteKey, key, domain.ErrStorageError, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%s %q: %w: %w", ErrContextWriteKey, key, domain.ErrStorageError, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%s %q: %w: %w", ErrContextWriteKey, key, domain.ErrStorageError, err)
	}

	if err := os.Rename(tmpName, s.path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%s %q: %w: %w", ErrContextWriteKey, key, domain.ErrStorageError, err)
	}

	s.cache.Set(key, raw)

	logger.FromContext(ctx).Debug(LogMsgKeyWritten, "key", key, "bytes", len(raw))
	return nil
}

// Delete removes the key from disk and cache.
func (s *FileStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache.Invalidate(key)

	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s %q: %w: %w", ErrContextDeleteKey, key, domain.ErrStorageError, err)
	}
	return nil
}

// Ping checks the save directory is still there.
func (s *FileStore) Ping(ctx context.Context) error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", ErrContextPing, domain.ErrStorageError, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w: not a directory", ErrContextPing, domain.ErrStorageError)
	}
	return nil
}
