package codec

import (
	"fmt"

	"github.com/dsnet/compress/bzip2"

	"github.com/compbench/compbench/internal/pool"
)

// Bzip2Compressor produces a bzip2 stream at the library's default
// compression level. The standard library only ships a bzip2 reader, so
// this adapter delegates to dsnet/compress for the writer side.
type Bzip2Compressor struct{}

var _ Compressor = Bzip2Compressor{}

// NewBzip2Compressor creates a new bzip2 compressor.
func NewBzip2Compressor() Bzip2Compressor {
	return Bzip2Compressor{}
}

// Compress compresses the input data as a bzip2 stream.
func (Bzip2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	buf := pool.GetCompressBuffer()
	defer pool.PutCompressBuffer(buf)

	w, err := bzip2.NewWriter(buf, &bzip2.WriterConfig{Level: bzip2.DefaultCompression})
	if err != nil {
		return nil, fmt.Errorf("bzip2: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("bzip2: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("bzip2: %w", err)
	}

	return buf.Copy(), nil
}
