// Package scanner fans the search-and-read primitives out across many files.
//
// A Scan reads each file (mapped access with buffered fallback) and reports
// the first occurrence of the pattern per file. Files are processed by a
// bounded pool of workers; an optional bytes-per-second limiter throttles
// aggregate read throughput so a background scan does not starve foreground
// I/O.
//
// The scanner builds only on the read and search primitives: it does not
// parse, tokenize or index the files it visits.
package scanner

import (
	"context"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/hupe1980/textaccel/fileio"
	"github.com/hupe1980/textaccel/pattern"
)

// Match reports the first occurrence of the needle within one file.
type Match struct {
	// Path is the scanned file.
	Path string
	// Offset is the byte offset of the first occurrence.
	Offset int
	// Size is the content length that was searched, after any decoding.
	Size int
}

// Scanner runs pattern searches across sets of files.
// A Scanner is stateless across Scan calls and safe for concurrent use.
type Scanner struct {
	reader     *fileio.Reader
	maxWorkers int
	limiter    *rate.Limiter
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithReader replaces the file reader, e.g. to force an access strategy or
// enable transparent decompression.
func WithReader(r *fileio.Reader) Option {
	return func(s *Scanner) {
		if r != nil {
			s.reader = r
		}
	}
}

// WithMaxWorkers bounds the number of files read concurrently.
// Values below 1 fall back to GOMAXPROCS.
func WithMaxWorkers(n int) Option {
	return func(s *Scanner) {
		if n > 0 {
			s.maxWorkers = n
		}
	}
}

// WithIOLimit throttles aggregate read throughput to bytesPerSec.
// Zero or negative means unlimited.
func WithIOLimit(bytesPerSec int64) Option {
	return func(s *Scanner) {
		if bytesPerSec > 0 {
			s.limiter = rate.NewLimiter(rate.Limit(bytesPerSec), int(bytesPerSec))
		}
	}
}

// New creates a Scanner.
func New(opts ...Option) *Scanner {
	s := &Scanner{
		reader:     fileio.NewReader(),
		maxWorkers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan reads every path and returns a Match for each file containing needle,
// ordered by path. Files without a match are omitted. An empty needle
// matches every readable file at offset 0.
//
// The scan stops at the first read failure or context cancellation and
// returns that error; matches gathered so far are discarded.
func (s *Scanner) Scan(ctx context.Context, paths []string, needle []byte) ([]Match, error) {
	m := pattern.Compile(needle)

	var (
		mu      sync.Mutex
		matches []Match
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxWorkers)

	for _, path := range paths {
		path := path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			data, err := s.reader.ReadFile(path)
			if err != nil {
				return err
			}

			if err := s.waitIO(ctx, len(data)); err != nil {
				return err
			}

			off := m.Index(data)
			if off < 0 {
				return nil
			}

			mu.Lock()
			matches = append(matches, Match{Path: path, Offset: off, Size: len(data)})
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].Path < matches[j].Path })
	return matches, nil
}

// waitIO charges n bytes against the throughput limiter.
func (s *Scanner) waitIO(ctx context.Context, n int) error {
	if s.limiter == nil || n == 0 {
		return nil
	}

	// WaitN cannot exceed the limiter burst; charge oversized reads in
	// burst-sized installments.
	burst := s.limiter.Burst()
	for n > 0 {
		chunk := min(n, burst)
		if err := s.limiter.WaitN(ctx, chunk); err != nil {
			return err
		}
		n -= chunk
	}
	return nil
}
