package textaccel

import "github.com/hupe1980/textaccel/fileio"

type options struct {
	logger             *Logger
	metricsCollector   MetricsCollector
	readStrategy       fileio.Strategy
	decode             bool
	maxWorkers         int
	ioLimitBytesPerSec int64
}

// Option configures Engine construction.
type Option func(*options)

// WithLogger sets the structured logger. Defaults to a no-op logger.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetricsCollector sets the metrics collector. Defaults to a no-op.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc != nil {
			o.metricsCollector = mc
		}
	}
}

// WithReadStrategy forces a file access strategy for ReadFile and Scan.
// The default maps files and silently falls back to buffered reads.
func WithReadStrategy(s fileio.Strategy) Option {
	return func(o *options) {
		o.readStrategy = s
	}
}

// WithDecoding enables transparent decompression of compressed corpus files
// (.zst, .gz, .s2, .lz4) in ReadFile and Scan.
func WithDecoding() Option {
	return func(o *options) {
		o.decode = true
	}
}

// WithMaxWorkers bounds Scan's file-level concurrency.
// Defaults to GOMAXPROCS.
func WithMaxWorkers(n int) Option {
	return func(o *options) {
		o.maxWorkers = n
	}
}

// WithIOLimitBytesPerSec throttles Scan's aggregate read throughput.
// Zero means unlimited.
func WithIOLimitBytesPerSec(n int64) Option {
	return func(o *options) {
		o.ioLimitBytesPerSec = n
	}
}
