// Package textaccel provides the native acceleration primitives of a code
// scanner: fast first-occurrence substring search over in-memory text, and
// efficient whole-file reading with a zero-copy access path.
//
// Both operations are stateless, synchronous and safe for concurrent use;
// there is no shared state between calls and no caching across them.
//
// # Quick Start
//
//	engine := textaccel.New()
//
//	// First-occurrence substring search.
//	off := engine.Search([]byte("hello world"), []byte("world")) // 6
//
//	// Whole-file read: memory-mapped when possible, buffered otherwise.
//	data, err := engine.ReadFile("main.go")
//
//	// Fan both primitives out across a file set.
//	matches, err := engine.Scan(ctx, paths, []byte("TODO"))
//
// The package-level Search and ReadFile helpers use a default engine for
// callers that need no configuration.
//
// # Search Strategies
//
// Search dispatches on needle length: short needles use a direct linear
// scan, longer needles a Boyer-Moore matcher with bad-character and
// good-suffix skip tables. The strategies report identical offsets; only
// throughput differs. See the pattern package for the compile-once API.
//
// # File Access Strategies
//
// ReadFile memory-maps the file and copies the content out before unmapping,
// falling back to a buffered sequential read when mapping is unavailable.
// Content is byte-identical either way. See the fileio package for the
// explicit zero-copy Map variant and for transparent decompression of
// compressed corpora.
//
// # Observability
//
// New accepts a structured logger (log/slog based) and a MetricsCollector
// for integration with monitoring systems. Both default to no-ops.
package textaccel
