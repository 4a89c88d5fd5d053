// Package fileio implements whole-file reads with a memory-mapped primary
// path and a buffered fallback.
//
// The two strategies return byte-identical content; mapping only changes the
// throughput and memory profile. A mapped read avoids the doubled peak memory
// of growing an intermediate buffer for large files. Any handle or mapping
// acquired during a read is released before the call returns; callers own the
// returned bytes outright.
//
// For callers that can manage the mapping lifetime themselves, Map returns a
// true zero-copy view instead.
package fileio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hupe1980/textaccel/codec"
	"github.com/hupe1980/textaccel/internal/mmap"
)

// ErrEmptyPath is returned when the path argument is empty.
// It marks a caller contract violation, not an environment failure.
var ErrEmptyPath = errors.New("fileio: empty path")

// AccessError indicates the file could not be opened, read or decoded by any
// strategy. The underlying cause (e.g. os.ErrNotExist, os.ErrPermission) can
// be accessed via errors.Unwrap.
type AccessError struct {
	Path string
	Err  error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("fileio: read %s: %v", e.Path, e.Err)
}

func (e *AccessError) Unwrap() error { return e.Err }

// Strategy selects the file access path.
type Strategy int

const (
	// StrategyAuto memory-maps the file and silently falls back to a
	// buffered read when mapping is unavailable. This is the default.
	StrategyAuto Strategy = iota
	// StrategyMapped requires the mapped path; mapping failure is an error.
	// Mostly useful in tests that pin down strategy behavior.
	StrategyMapped
	// StrategyBuffered always uses the buffered sequential read.
	StrategyBuffered
)

// Reader reads whole files using a configured access strategy.
// The zero value reads with StrategyAuto and no decoding.
// A Reader is stateless across calls and safe for concurrent use.
type Reader struct {
	strategy Strategy
	decode   bool
}

// Option configures a Reader.
type Option func(*Reader)

// WithStrategy forces a specific access strategy.
func WithStrategy(s Strategy) Option {
	return func(r *Reader) { r.strategy = s }
}

// WithDecoding enables transparent decompression of files whose extension
// has a registered codec decoder (.zst, .gz, .s2, .lz4).
func WithDecoding() Option {
	return func(r *Reader) { r.decode = true }
}

// NewReader creates a Reader.
func NewReader(opts ...Option) *Reader {
	r := &Reader{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// defaultReader serves the package-level ReadFile.
var defaultReader = NewReader()

// ReadFile returns the entire content of the file at path using the default
// Reader (mapped access with buffered fallback, no decoding).
func ReadFile(path string) ([]byte, error) {
	return defaultReader.ReadFile(path)
}

// ReadFile returns the entire content of the file at path.
//
// An empty file yields an empty non-nil result. The returned slice is owned
// by the caller; no handle or mapping outlives the call.
func (r *Reader) ReadFile(path string) ([]byte, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	data, err := r.readRaw(path)
	if err != nil {
		return nil, err
	}

	if r.decode {
		if d, ok := codec.ByExtension(filepath.Ext(path)); ok {
			decoded, err := d.Decode(data)
			if err != nil {
				return nil, &AccessError{Path: path, Err: fmt.Errorf("decode %s: %w", d.Name(), err)}
			}
			return decoded, nil
		}
	}

	return data, nil
}

func (r *Reader) readRaw(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &AccessError{Path: path, Err: err}
	}
	defer f.Close()

	if r.strategy != StrategyBuffered {
		data, err := readMapped(f)
		if err == nil {
			return data, nil
		}
		if r.strategy == StrategyMapped {
			return nil, &AccessError{Path: path, Err: err}
		}
		// Mapping unavailable for this file or platform; the buffered
		// path serves the identical bytes.
	}

	data, err := readBuffered(f)
	if err != nil {
		return nil, &AccessError{Path: path, Err: err}
	}
	return data, nil
}

// readMapped copies the file content out of a transient read-only mapping.
// The mapping is released before return on every path.
func readMapped(f *os.File) ([]byte, error) {
	m, err := mmap.Map(f)
	if err != nil {
		return nil, err
	}
	defer m.Close()

	// Advisory only; reads proceed the same without it.
	_ = m.Advise(mmap.AccessSequential)

	out := make([]byte, m.Size())
	copy(out, m.Bytes())
	return out, nil
}

// readBuffered performs a sequential read of the remaining file content into
// a single slice, sized from Stat when possible.
func readBuffered(f *os.File) ([]byte, error) {
	var size int64
	if fi, err := f.Stat(); err == nil && fi.Size() > 0 {
		size = fi.Size()
	}

	data := make([]byte, 0, size+1)
	for {
		n, err := f.Read(data[len(data):cap(data)])
		data = data[:len(data)+n]
		if err != nil {
			if err == io.EOF {
				return data, nil
			}
			return nil, err
		}
		if len(data) == cap(data) {
			// Size hint was short (file grew or Stat failed); grow.
			data = append(data, 0)[:len(data)]
		}
	}
}
