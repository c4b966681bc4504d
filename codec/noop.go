package codec

// NoOpCompressor passes data through unchanged. It is the baseline entry
// of the registry: every comparison includes the cost of doing nothing.
type NoOpCompressor struct{}

var _ Compressor = NoOpCompressor{}

// NewNoOpCompressor creates a new passthrough compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns the input slice as-is, without copying. Callers must
// not mutate the input while holding the returned slice.
func (NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}
