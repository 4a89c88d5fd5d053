// Package mmap provides read-only memory-mapped file access for zero-copy
// text scanning.
//
// # Overview
//
// Memory mapping lets the reader hand out file contents without copying data
// through an intermediate application buffer. For the large source trees this
// library is built to scan, that avoids doubling peak memory during a read.
//
// # Usage
//
//	m, err := mmap.Open("corpus.txt")
//	if err != nil { ... }
//	defer m.Close()
//
//	// Zero-copy view of the file contents.
//	data := m.Bytes()
//
//	// Hint the expected access pattern to the kernel.
//	_ = m.Advise(mmap.AccessSequential)
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with madvise(2) for access hints
//   - Windows: CreateFileMapping/MapViewOfFile (Advise is a no-op)
//
// # Thread Safety
//
// A Mapping is safe for concurrent reads. Close is idempotent, but callers
// must ensure no goroutine touches Bytes() after Close returns.
package mmap
