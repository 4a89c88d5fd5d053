// Package pattern implements first-occurrence substring search over byte
// sequences.
//
// Two strategies back the single Index contract: a direct linear scan for
// short needles, and a compiled Boyer-Moore matcher (bad-character and
// good-suffix skip tables) for longer ones, where the table setup cost pays
// for itself through sub-linear expected scanning. Both strategies report the
// same offsets; only throughput differs.
//
// All functions are pure and safe for concurrent use.
package pattern

import "bytes"

// shortPatternCutoff is the needle length below which a linear scan beats a
// compiled matcher. Building skip tables costs more than it saves on
// patterns this short.
const shortPatternCutoff = 5

// Index returns the lowest byte offset in haystack at which needle occurs,
// or -1 if needle is not present.
//
// An empty needle matches everywhere; the leftmost match is offset 0.
// A needle longer than the haystack never matches.
func Index(haystack, needle []byte) int {
	switch {
	case len(needle) == 0:
		return 0
	case len(needle) > len(haystack):
		return -1
	case len(needle) < shortPatternCutoff:
		return indexShort(haystack, needle)
	}
	return newBoyerMoore(needle).index(haystack)
}

// indexShort performs a forward scan, skipping between candidate positions
// with IndexByte on the needle's first byte.
func indexShort(haystack, needle []byte) int {
	c := needle[0]
	last := len(haystack) - len(needle)
	for i := 0; i <= last; {
		j := bytes.IndexByte(haystack[i:last+1], c)
		if j < 0 {
			return -1
		}
		i += j
		if bytes.Equal(haystack[i:i+len(needle)], needle) {
			return i
		}
		i++
	}
	return -1
}
