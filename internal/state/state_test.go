package state

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDisk is an in-memory storage.Disk for exercising the file driver.
type fakeDisk struct {
	files map[string][]byte
}

func newFakeDisk() *fakeDisk { return &fakeDisk{files: make(map[string][]byte)} }

func (d *fakeDisk) Put(path string, content []byte) error {
	d.files[path] = append([]byte(nil), content...)
	return nil
}

func (d *fakeDisk) Get(path string) ([]byte, error) {
	content, ok := d.files[path]
	if !ok {
		return nil, fmt.Errorf("not found: %s", path)
	}
	return content, nil
}

func (d *fakeDisk) Exists(path string) bool {
	_, ok := d.files[path]
	return ok
}

func (d *fakeDisk) Delete(path string) error {
	delete(d.files, path)
	return nil
}

func TestMemoryRoundTrip(t *testing.T) {
	repo := NewMemory()

	_, found := repo.Load("user")
	assert.False(t, found)

	require.NoError(t, repo.Save("user", []byte(`{"id":1}`)))
	data, found := repo.Load("user")
	require.True(t, found)
	assert.Equal(t, `{"id":1}`, string(data))

	require.NoError(t, repo.Delete("user"))
	_, found = repo.Load("user")
	assert.False(t, found)
}

func TestMemoryReturnsCopies(t *testing.T) {
	repo := NewMemory()
	require.NoError(t, repo.Save("cartItems", []byte("abc")))

	data, _ := repo.Load("cartItems")
	data[0] = 'X'

	again, _ := repo.Load("cartItems")
	assert.Equal(t, "abc", string(again))
}

func TestFileRepositoryKeysAsJSONFiles(t *testing.T) {
	disk := newFakeDisk()
	repo := NewFile(disk)

	require.NoError(t, repo.Save("notifications", []byte("[]")))
	assert.True(t, disk.Exists("notifications.json"))

	data, found := repo.Load("notifications")
	require.True(t, found)
	assert.Equal(t, "[]", string(data))

	require.NoError(t, repo.Delete("notifications"))
	assert.False(t, disk.Exists("notifications.json"))
}

func TestFileRepositoryDeleteAbsentKey(t *testing.T) {
	repo := NewFile(newFakeDisk())
	assert.NoError(t, repo.Delete("user"))
}
