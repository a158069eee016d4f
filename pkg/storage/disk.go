// Package storage abstracts where persisted client state lives: the local
// filesystem for a normal install, or an S3-compatible bucket for kiosk
// fleets sharing one credential store.
package storage

import "fmt"

// Disk is a flat key/value file store.
type Disk interface {
	// Put writes content to path, creating parents as needed.
	Put(path string, content []byte) error
	// Get returns the content at path.
	Get(path string) ([]byte, error)
	// Exists reports whether path is present.
	Exists(path string) bool
	// Delete removes path. Removing an absent path is not an error.
	Delete(path string) error
}

// Open returns the named disk driver: "local" or "s3".
func Open(name string) (Disk, error) {
	switch name {
	case "local":
		return newLocalDisk(), nil
	case "s3":
		return newS3Disk()
	default:
		return nil, fmt.Errorf("storage: unknown disk %q (supported: local, s3)", name)
	}
}
