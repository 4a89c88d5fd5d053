// Package codec centralizes transparent decoding of compressed corpus files.
//
// Scanning targets are sometimes stored compressed (archived logs, vendored
// corpora). The reader can decode such files on the fly when decoding is
// enabled; the decoder is picked by file extension. Decoding is strictly
// opt-in so that the default read path returns file bytes untouched.
package codec

import "strings"

// Decoder decompresses a file's raw bytes.
// Implementations must be safe for concurrent use.
type Decoder interface {
	// Name is the stable identifier of the compression format.
	Name() string
	// Decode returns the decompressed form of data.
	Decode(data []byte) ([]byte, error)
}

// builtin maps file extensions to their decoders.
var builtin = map[string]Decoder{
	".zst": Zstd{},
	".gz":  Gzip{},
	".s2":  S2{},
	".lz4": LZ4{},
}

// ByExtension returns the built-in decoder for a file extension
// (e.g. ".zst"). The lookup is case-insensitive.
func ByExtension(ext string) (Decoder, bool) {
	d, ok := builtin[strings.ToLower(ext)]
	return d, ok
}

// Extensions returns the file extensions with built-in decoders.
func Extensions() []string {
	exts := make([]string, 0, len(builtin))
	for ext := range builtin {
		exts = append(exts, ext)
	}
	return exts
}
