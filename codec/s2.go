package codec

import "github.com/klauspost/compress/s2"

// S2Compressor produces an S2 block (Snappy-compatible successor format).
type S2Compressor struct{}

var _ Compressor = S2Compressor{}

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses the input data using S2 block encoding.
func (S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}
