package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/smartbytes/canteen/config"
)

// localDisk is the local-filesystem driver. State files live under
// STATE_DIR, resolved against the user home directory when relative.
type localDisk struct {
	root string
}

func newLocalDisk() *localDisk {
	root := config.StateDir()
	if !filepath.IsAbs(root) {
		if home, err := os.UserHomeDir(); err == nil {
			root = filepath.Join(home, root)
		}
	}
	return &localDisk{root: root}
}

func (d *localDisk) abs(path string) string {
	return filepath.Join(d.root, filepath.FromSlash(path))
}

func (d *localDisk) Put(path string, content []byte) error {
	full := d.abs(path)
	if err := os.MkdirAll(filepath.Dir(full), 0o700); err != nil {
		return fmt.Errorf("storage/local: mkdir: %w", err)
	}
	// Session files carry the bearer credential; keep them owner-only.
	if err := os.WriteFile(full, content, 0o600); err != nil {
		return fmt.Errorf("storage/local: write %s: %w", path, err)
	}
	return nil
}

func (d *localDisk) Get(path string) ([]byte, error) {
	data, err := os.ReadFile(d.abs(path))
	if err != nil {
		return nil, fmt.Errorf("storage/local: get %s: %w", path, err)
	}
	return data, nil
}

func (d *localDisk) Exists(path string) bool {
	_, err := os.Stat(d.abs(path))
	return err == nil
}

func (d *localDisk) Delete(path string) error {
	err := os.Remove(d.abs(path))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage/local: delete %s: %w", path, err)
	}
	return nil
}
