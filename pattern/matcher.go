package pattern

import "bytes"

// Matcher is a needle bound to the search strategy Index would choose for
// its length. Compile once and reuse the Matcher across haystacks; the
// scanner does this when matching one pattern against many files.
//
// A Matcher is immutable after Compile and safe for concurrent use.
type Matcher struct {
	needle []byte
	index  func(haystack []byte) int
}

// Compile prepares needle for repeated searches.
// The needle bytes are copied, so the caller's slice may be reused.
func Compile(needle []byte) *Matcher {
	m := &Matcher{needle: append([]byte(nil), needle...)}

	switch {
	case len(m.needle) == 0:
		m.index = func([]byte) int { return 0 }
	case len(m.needle) < shortPatternCutoff:
		m.index = func(haystack []byte) int {
			return indexShort(haystack, m.needle)
		}
	default:
		m.index = newBoyerMoore(m.needle).index
	}

	return m
}

// Needle returns a copy of the compiled needle.
func (m *Matcher) Needle() []byte {
	return append([]byte(nil), m.needle...)
}

// Index returns the lowest byte offset in haystack at which the compiled
// needle occurs, or -1 if it is not present. The result is identical to
// pattern.Index(haystack, m.Needle()).
func (m *Matcher) Index(haystack []byte) int {
	return m.index(haystack)
}

// boyerMoore holds the skip tables for sub-linear expected-case scanning of
// needles long enough to amortize the setup cost.
type boyerMoore struct {
	needle []byte

	// badCharSkip[b] is how far the search may advance when the haystack
	// byte under the needle's last position is b.
	badCharSkip [256]int

	// goodSuffixSkip[i] is how far the search may advance after a mismatch
	// at needle position i with the suffix needle[i+1:] already matched.
	goodSuffixSkip []int
}

// newBoyerMoore builds the skip tables for needle. needle must be non-empty
// and is retained without copying; callers must not mutate it while the
// matcher is in use.
func newBoyerMoore(needle []byte) *boyerMoore {
	bm := &boyerMoore{
		needle:         needle,
		goodSuffixSkip: make([]int, len(needle)),
	}
	last := len(needle) - 1

	// Bytes absent from the needle allow a full-length skip. Bytes present
	// align their rightmost occurrence under the mismatch position.
	for i := range bm.badCharSkip {
		bm.badCharSkip[i] = len(needle)
	}
	for i := 0; i < last; i++ {
		bm.badCharSkip[needle[i]] = last - i
	}

	// First pass: for each position, skip so the longest needle prefix
	// that is also a suffix of the matched part lines up again.
	lastPrefix := last
	for i := last; i >= 0; i-- {
		if bytes.HasPrefix(needle, needle[i+1:]) {
			lastPrefix = i + 1
		}
		bm.goodSuffixSkip[i] = lastPrefix + last - i
	}

	// Second pass: shorter skips when the matched suffix reoccurs earlier
	// in the needle preceded by a different byte.
	for i := 0; i < last; i++ {
		lenSuffix := longestCommonSuffix(needle, needle[1:i+1])
		if needle[i-lenSuffix] != needle[last-lenSuffix] {
			bm.goodSuffixSkip[last-lenSuffix] = lenSuffix + last - i
		}
	}

	return bm
}

func (bm *boyerMoore) index(haystack []byte) int {
	n := len(bm.needle)

	i := n - 1
	for i < len(haystack) {
		// Compare backwards from the end of the needle.
		j := n - 1
		for j >= 0 && haystack[i] == bm.needle[j] {
			i--
			j--
		}
		if j < 0 {
			return i + 1
		}
		i += max(bm.badCharSkip[haystack[i]], bm.goodSuffixSkip[j])
	}
	return -1
}

func longestCommonSuffix(a, b []byte) (i int) {
	for ; i < len(a) && i < len(b); i++ {
		if a[len(a)-1-i] != b[len(b)-1-i] {
			break
		}
	}
	return
}
