package textaccel

import (
	"context"
	"time"

	"github.com/hupe1980/textaccel/fileio"
	"github.com/hupe1980/textaccel/pattern"
	"github.com/hupe1980/textaccel/scanner"
)

// Engine exposes the acceleration primitives with logging and metrics wired
// in. An Engine holds no mutable state and is safe for concurrent use; all
// operations are synchronous and independent of each other.
type Engine struct {
	logger  *Logger
	metrics MetricsCollector
	reader  *fileio.Reader
	scanner *scanner.Scanner
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	o := options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
	for _, opt := range opts {
		opt(&o)
	}

	readerOpts := []fileio.Option{fileio.WithStrategy(o.readStrategy)}
	if o.decode {
		readerOpts = append(readerOpts, fileio.WithDecoding())
	}
	reader := fileio.NewReader(readerOpts...)

	scanOpts := []scanner.Option{scanner.WithReader(reader)}
	if o.maxWorkers > 0 {
		scanOpts = append(scanOpts, scanner.WithMaxWorkers(o.maxWorkers))
	}
	if o.ioLimitBytesPerSec > 0 {
		scanOpts = append(scanOpts, scanner.WithIOLimit(o.ioLimitBytesPerSec))
	}

	return &Engine{
		logger:  o.logger,
		metrics: o.metricsCollector,
		reader:  reader,
		scanner: scanner.New(scanOpts...),
	}
}

// Search returns the lowest byte offset in haystack at which needle occurs,
// or -1 if needle is not present. An empty needle matches at offset 0;
// a needle longer than the haystack never matches. Search cannot fail on
// well-formed input; degenerate inputs are normal results, not errors.
func (e *Engine) Search(haystack, needle []byte) int {
	start := time.Now()
	offset := pattern.Index(haystack, needle)
	elapsed := time.Since(start)

	e.logger.LogSearch(len(haystack), len(needle), offset, elapsed)
	e.metrics.RecordSearch(len(haystack), len(needle), offset >= 0, elapsed)
	return offset
}

// ReadFile returns the entire content of the file at path.
//
// The content is read via the engine's configured access strategy; strategy
// choice never changes the returned bytes. The returned slice is owned by
// the caller. Failures wrap ErrFileAccess, except for an empty path which
// wraps ErrInvalidArgument.
func (e *Engine) ReadFile(path string) ([]byte, error) {
	start := time.Now()
	data, err := e.reader.ReadFile(path)
	elapsed := time.Since(start)

	e.logger.LogRead(path, len(data), elapsed, err)
	e.metrics.RecordRead(len(data), elapsed, err)
	return data, translateError(err)
}

// Scan reads every path and returns a match for each file containing
// needle, ordered by path. It stops at the first failure or context
// cancellation.
func (e *Engine) Scan(ctx context.Context, paths []string, needle []byte) ([]scanner.Match, error) {
	start := time.Now()
	matches, err := e.scanner.Scan(ctx, paths, needle)
	elapsed := time.Since(start)

	e.logger.LogScan(ctx, len(paths), len(matches), elapsed, err)
	e.metrics.RecordScan(len(paths), len(matches), elapsed, err)
	return matches, translateError(err)
}

// defaultEngine serves the package-level convenience functions.
var defaultEngine = New()

// Search is a convenience wrapper around a default Engine's Search.
func Search(haystack, needle []byte) int {
	return defaultEngine.Search(haystack, needle)
}

// ReadFile is a convenience wrapper around a default Engine's ReadFile.
func ReadFile(path string) ([]byte, error) {
	return defaultEngine.ReadFile(path)
}
