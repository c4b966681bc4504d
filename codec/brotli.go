package codec

import (
	"fmt"

	"github.com/andybalholm/brotli"

	"github.com/compbench/compbench/internal/pool"
)

// BrotliCompressor produces a Brotli stream at the library's default
// quality.
type BrotliCompressor struct{}

var _ Compressor = BrotliCompressor{}

// NewBrotliCompressor creates a new Brotli compressor.
func NewBrotliCompressor() BrotliCompressor {
	return BrotliCompressor{}
}

// Compress compresses the input data as a Brotli stream.
func (BrotliCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	buf := pool.GetCompressBuffer()
	defer pool.PutCompressBuffer(buf)

	w := brotli.NewWriter(buf)
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("brotli: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("brotli: %w", err)
	}

	return buf.Copy(), nil
}
