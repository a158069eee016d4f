// Package state persists the client stores. Each store owns exactly one
// key and is its sole writer; every save overwrites the key wholesale.
//
// The keys mirror the browser client this replaces: "user", "cartItems"
// and "notifications".
package state

import (
	"fmt"
	"sync"

	"github.com/smartbytes/canteen/config"
	"github.com/smartbytes/canteen/pkg/storage"
)

// Repository is the persistence boundary for the session, cart and
// notification stores.
type Repository interface {
	// Load returns the raw persisted value for key. found is false when
	// the key is absent or unreadable; callers degrade to their empty
	// default rather than failing.
	Load(key string) (data []byte, found bool)
	// Save overwrites the value for key.
	Save(key string, data []byte) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(key string) error
}

// Open builds the repository selected by STATE_DRIVER.
func Open() (Repository, error) {
	switch driver := config.StateDriver(); driver {
	case "database":
		return openDatabase()
	case "file":
		disk, err := storage.Open(config.StateDisk())
		if err != nil {
			return nil, fmt.Errorf("state: %w", err)
		}
		return NewFile(disk), nil
	default:
		return nil, fmt.Errorf("state: unknown driver %q", driver)
	}
}

// ── File driver ──────────────────────────────────────────────────────────────

// fileRepository stores each key as a JSON file on a storage disk
// (local directory or S3 bucket).
type fileRepository struct {
	disk storage.Disk
}

// NewFile returns a Repository writing through disk.
func NewFile(disk storage.Disk) Repository {
	return &fileRepository{disk: disk}
}

func (r *fileRepository) path(key string) string { return key + ".json" }

func (r *fileRepository) Load(key string) ([]byte, bool) {
	if !r.disk.Exists(r.path(key)) {
		return nil, false
	}
	data, err := r.disk.Get(r.path(key))
	if err != nil {
		return nil, false
	}
	return data, true
}

func (r *fileRepository) Save(key string, data []byte) error {
	return r.disk.Put(r.path(key), data)
}

func (r *fileRepository) Delete(key string) error {
	return r.disk.Delete(r.path(key))
}

// ── Memory driver ────────────────────────────────────────────────────────────

// memoryRepository keeps state in-process. Used by tests and by commands
// that must not touch persisted state.
type memoryRepository struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory returns an empty in-memory Repository.
func NewMemory() Repository {
	return &memoryRepository{data: map[string][]byte{}}
}

func (r *memoryRepository) Load(key string) ([]byte, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	data, ok := r.data[key]
	if !ok {
		return nil, false
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, true
}

func (r *memoryRepository) Save(key string, data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	r.data[key] = cp
	return nil
}

func (r *memoryRepository) Delete(key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, key)
	return nil
}
