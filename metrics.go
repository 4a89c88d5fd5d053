package textaccel

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordSearch is called after each search.
	// found reports whether the needle was present.
	RecordSearch(haystackLen, needleLen int, found bool, duration time.Duration)

	// RecordRead is called after each file read.
	// size is the content length returned, 0 on failure.
	RecordRead(size int, duration time.Duration, err error)

	// RecordScan is called after each multi-file scan.
	// files is the number of paths visited, matched the number of hits.
	RecordScan(files, matched int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSearch(int, int, bool, time.Duration) {}
func (NoopMetricsCollector) RecordRead(int, time.Duration, error)       {}
func (NoopMetricsCollector) RecordScan(int, int, time.Duration, error)  {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SearchCount      atomic.Int64
	SearchHits       atomic.Int64
	SearchTotalNanos atomic.Int64
	ReadCount        atomic.Int64
	ReadErrors       atomic.Int64
	ReadBytes        atomic.Int64
	ReadTotalNanos   atomic.Int64
	ScanCount        atomic.Int64
	ScanErrors       atomic.Int64
	ScanFiles        atomic.Int64
	ScanMatches      atomic.Int64
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(haystackLen, needleLen int, found bool, duration time.Duration) {
	b.SearchCount.Add(1)
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	if found {
		b.SearchHits.Add(1)
	}
}

// RecordRead implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRead(size int, duration time.Duration, err error) {
	b.ReadCount.Add(1)
	b.ReadTotalNanos.Add(duration.Nanoseconds())
	b.ReadBytes.Add(int64(size))
	if err != nil {
		b.ReadErrors.Add(1)
	}
}

// RecordScan implements MetricsCollector.
func (b *BasicMetricsCollector) RecordScan(files, matched int, duration time.Duration, err error) {
	b.ScanCount.Add(1)
	b.ScanFiles.Add(int64(files))
	b.ScanMatches.Add(int64(matched))
	if err != nil {
		b.ScanErrors.Add(1)
	}
}
