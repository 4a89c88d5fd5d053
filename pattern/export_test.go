package pattern

// Hooks for strategy-equivalence tests: force one strategy regardless of the
// length dispatch in Index.

var IndexShort = indexShort

func IndexBoyerMoore(haystack, needle []byte) int {
	if len(needle) == 0 {
		return 0
	}
	return newBoyerMoore(needle).index(haystack)
}

const ShortPatternCutoff = shortPatternCutoff
