package fileio

import (
	"os"

	"github.com/hupe1980/textaccel/internal/mmap"
)

// Mapped is a zero-copy view of a file's content.
//
// It is the explicit-lifetime alternative to ReadFile: the bytes remain
// valid until Close, and Close must be called exactly once the caller is
// done with them. When mapping is unavailable the view is transparently
// backed by a heap copy, so Bytes and Close behave the same either way.
type Mapped struct {
	data []byte
	m    *mmap.Mapping // nil when heap-backed
}

// Bytes returns the file content. The slice is valid only until Close.
func (m *Mapped) Bytes() []byte {
	if m == nil {
		return nil
	}
	return m.data
}

// Close releases the mapping, if any. It is idempotent.
func (m *Mapped) Close() error {
	if m == nil {
		return nil
	}
	m.data = nil
	if m.m != nil {
		err := m.m.Close()
		m.m = nil
		return err
	}
	return nil
}

// Map opens path and returns a zero-copy view of its content.
//
// The underlying file descriptor is closed before Map returns; only the
// mapping (or fallback heap copy) stays alive until Close.
func Map(path string) (*Mapped, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &AccessError{Path: path, Err: err}
	}
	defer f.Close()

	m, err := mmap.Map(f)
	if err == nil {
		return &Mapped{data: m.Bytes(), m: m}, nil
	}

	data, err := readBuffered(f)
	if err != nil {
		return nil, &AccessError{Path: path, Err: err}
	}
	return &Mapped{data: data}, nil
}
