// Package pool provides reusable byte buffers for the stream-writer codec
// adapters, so repeated benchmark calls do not reallocate their output
// sinks from scratch.
package pool

import "sync"

const (
	// CompressBufferSize is the initial capacity of pooled buffers.
	CompressBufferSize = 64 * 1024
	// CompressBufferMaxThreshold is the largest capacity returned to the
	// pool; bigger buffers are discarded to avoid retaining the footprint
	// of one oversized payload forever.
	CompressBufferMaxThreshold = 8 * 1024 * 1024
)

// ByteBuffer is a growable byte sink that satisfies io.Writer.
type ByteBuffer struct {
	B []byte
}

// Write appends p to the buffer, growing it as needed.
func (bb *ByteBuffer) Write(p []byte) (int, error) {
	bb.B = append(bb.B, p...)
	return len(p), nil
}

// Bytes returns the accumulated bytes.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the number of accumulated bytes.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Reset empties the buffer while keeping its capacity for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Copy returns a newly allocated copy of the buffer contents. Callers hand
// the copy out and return the buffer itself to the pool.
func (bb *ByteBuffer) Copy() []byte {
	out := make([]byte, len(bb.B))
	copy(out, bb.B)

	return out
}

var compressPool = sync.Pool{
	New: func() any {
		return &ByteBuffer{B: make([]byte, 0, CompressBufferSize)}
	},
}

// GetCompressBuffer retrieves an empty ByteBuffer from the pool.
func GetCompressBuffer() *ByteBuffer {
	bb, _ := compressPool.Get().(*ByteBuffer)
	return bb
}

// PutCompressBuffer returns a ByteBuffer to the pool for reuse.
func PutCompressBuffer(bb *ByteBuffer) {
	if bb == nil || cap(bb.B) > CompressBufferMaxThreshold {
		return
	}

	bb.Reset()
	compressPool.Put(bb)
}
