// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Storage is the byte-stream layer a File reads from and writes to.
//
// The codec only ever reads a whole object sequentially from offset 0 and
// replaces a whole object in one call.
type Storage interface {
	// Size reports the length of the object at path. A missing object
	// returns an error wrapping fs.ErrNotExist.
	Size(path string) (int64, error)
	// Open returns a reader positioned at offset 0.
	Open(path string) (io.ReadCloser, error)
	// WriteFile replaces the object at path with data.
	WriteFile(path string, data []byte) error
}

// OSStorage is the Storage backed by the local file system.
type OSStorage struct{}

func (OSStorage) Size(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	if info.IsDir() {
		return 0, errors.Errorf("%s: is a directory", path)
	}

	return info.Size(), nil
}

func (OSStorage) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// WriteFile writes data to a temporary sibling of path and renames it over
// path, so readers see either the old object or the complete new one.
func (OSStorage) WriteFile(path string, data []byte) error {
	tmpPath := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}

	return nil
}

// MemStorage keeps objects in memory. The zero value is ready to use and is
// safe for concurrent use.
type MemStorage struct {
	mtx   sync.Mutex
	files map[string][]byte
}

func (m *MemStorage) Size(path string) (int64, error) {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	data, ok := m.files[path]
	if !ok {
		return 0, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
	}

	return int64(len(data)), nil
}

func (m *MemStorage) Open(path string) (io.ReadCloser, error) {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	data, ok := m.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}

	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *MemStorage) WriteFile(path string, data []byte) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	if m.files == nil {
		m.files = make(map[string][]byte)
	}
	m.files[path] = bytes.Clone(data)

	return nil
}

// Bytes returns a copy of the object at path.
func (m *MemStorage) Bytes(path string) ([]byte, bool) {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	data, ok := m.files[path]

	return bytes.Clone(data), ok
}
