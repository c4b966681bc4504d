package codec

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/gzip"

	"github.com/compbench/compbench/internal/pool"
)

// gzipWriterPool pools gzip.Writer instances for reuse; the writer carries
// sizable internal compression state that benefits from Reset.
var gzipWriterPool = sync.Pool{
	New: func() any {
		return gzip.NewWriter(nil)
	},
}

// GzipCompressor produces a gzip member at the library's default level.
type GzipCompressor struct{}

var _ Compressor = GzipCompressor{}

// NewGzipCompressor creates a new gzip compressor.
func NewGzipCompressor() GzipCompressor {
	return GzipCompressor{}
}

// Compress compresses the input data into a single gzip member.
func (GzipCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	buf := pool.GetCompressBuffer()
	defer pool.PutCompressBuffer(buf)

	w, _ := gzipWriterPool.Get().(*gzip.Writer)
	defer gzipWriterPool.Put(w)
	w.Reset(buf)

	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("gzip: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("gzip: %w", err)
	}

	return buf.Copy(), nil
}
