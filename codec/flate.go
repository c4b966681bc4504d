package codec

import (
	"fmt"

	"github.com/klauspost/compress/flate"

	"github.com/compbench/compbench/internal/pool"
)

// FlateCompressor produces a raw DEFLATE stream at the library's default
// level.
type FlateCompressor struct{}

var _ Compressor = FlateCompressor{}

// NewFlateCompressor creates a new DEFLATE compressor.
func NewFlateCompressor() FlateCompressor {
	return FlateCompressor{}
}

// Compress compresses the input data as a raw DEFLATE stream.
func (FlateCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	buf := pool.GetCompressBuffer()
	defer pool.PutCompressBuffer(buf)

	w, err := flate.NewWriter(buf, flate.DefaultCompression)
	if err != nil {
		return nil, fmt.Errorf("deflate: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("deflate: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("deflate: %w", err)
	}

	return buf.Copy(), nil
}
