package codec

import (
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/compbench/compbench/internal/pool"
)

// lz4WriterPool pools lz4.Writer instances for reuse. The writer keeps
// internal block buffers that are expensive to reallocate per call.
var lz4WriterPool = sync.Pool{
	New: func() any {
		return lz4.NewWriter(nil)
	},
}

// LZ4Compressor produces an LZ4 frame with the library's default options.
type LZ4Compressor struct{}

var _ Compressor = LZ4Compressor{}

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses the input data into an LZ4 frame.
func (LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	buf := pool.GetCompressBuffer()
	defer pool.PutCompressBuffer(buf)

	w, _ := lz4WriterPool.Get().(*lz4.Writer)
	defer lz4WriterPool.Put(w)
	w.Reset(buf)

	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("lz4: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("lz4: %w", err)
	}

	return buf.Copy(), nil
}
