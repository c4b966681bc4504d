package codec

import (
	"fmt"

	"github.com/ulikunitz/xz/lzma"

	"github.com/compbench/compbench/internal/pool"
)

// LZMACompressor produces a classic LZMA ("alone") stream with the
// library's default writer configuration.
type LZMACompressor struct{}

var _ Compressor = LZMACompressor{}

// NewLZMACompressor creates a new LZMA compressor.
func NewLZMACompressor() LZMACompressor {
	return LZMACompressor{}
}

// Compress compresses the input data as an LZMA stream.
func (LZMACompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	buf := pool.GetCompressBuffer()
	defer pool.PutCompressBuffer(buf)

	w, err := lzma.NewWriter(buf)
	if err != nil {
		return nil, fmt.Errorf("lzma: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("lzma: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("lzma: %w", err)
	}

	return buf.Copy(), nil
}
