package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"github.com/zatekoja/physiodesk/backend/internal/domain/providers"
	apperrors "github.com/zatekoja/physiodesk/backend/pkg/errors"
)

// FileAdapter persists every slot as <dir>/<escaped key>.json. Writes go to a temp file
// that is renamed over the target, so readers never see a half-written slot.
type FileAdapter struct {
	dir string
	mu  sync.RWMutex
}

// NewFileAdapter creates dir if needed and returns a file-backed slot store
func NewFileAdapter(dir string) (*FileAdapter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, apperrors.NewInternalError(fmt.Sprintf("failed to create storage dir %s", dir), err)
	}
	return &FileAdapter{dir: dir}, nil
}

var _ providers.KeyValueStore = (*FileAdapter)(nil)

func (a *FileAdapter) path(key string) string {
	return filepath.Join(a.dir, url.PathEscape(key)+".json")
}

// Get reads a slot file
func (a *FileAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	data, err := os.ReadFile(a.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("key not found: %s", key))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to read slot file", err)
	}
	return data, nil
}

// Set replaces a slot file
func (a *FileAdapter) Set(ctx context.Context, key string, value []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	tmp, err := os.CreateTemp(a.dir, ".slot-*")
	if err != nil {
		return apperrors.NewInternalError("failed to create temp slot file", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return apperrors.NewInternalError("failed to write slot file", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return apperrors.NewInternalError("failed to flush slot file", err)
	}
	if err := os.Rename(tmpName, a.path(key)); err != nil {
		os.Remove(tmpName)
		return apperrors.NewInternalError("failed to replace slot file", err)
	}
	return nil
}

// Delete removes a slot file
func (a *FileAdapter) Delete(ctx context.Context, key string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	err := os.Remove(a.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return apperrors.NewInternalError("failed to delete slot file", err)
	}
	return nil
}

// Exists checks if a slot file is present
func (a *FileAdapter) Exists(ctx context.Context, key string) (bool, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	_, err := os.Stat(a.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, apperrors.NewInternalError("failed to stat slot file", err)
	}
	return true, nil
}
