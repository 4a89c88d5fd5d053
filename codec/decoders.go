package codec

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Zstd decodes Zstandard frames.
type Zstd struct{}

func (Zstd) Name() string { return "zstd" }

func (Zstd) Decode(data []byte) ([]byte, error) {
	d, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer d.Close()
	return d.DecodeAll(data, nil)
}

// Gzip decodes gzip streams.
type Gzip struct{}

func (Gzip) Name() string { return "gzip" }

func (Gzip) Decode(data []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}

// S2 decodes S2 streams (Snappy-compatible framing).
type S2 struct{}

func (S2) Name() string { return "s2" }

func (S2) Decode(data []byte) ([]byte, error) {
	return io.ReadAll(s2.NewReader(bytes.NewReader(data)))
}

// LZ4 decodes LZ4 frames.
type LZ4 struct{}

func (LZ4) Name() string { return "lz4" }

func (LZ4) Decode(data []byte) ([]byte, error) {
	return io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
}
