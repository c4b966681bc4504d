package codec

// RunLengthCompressor is the one transform implemented natively rather
// than delegated. It encodes consecutive equal bytes as fixed 2-byte
// (value, count) records with the count capped at 255; longer runs are
// split across records.
//
// There is no literal escape to distinguish coded output from raw bytes,
// so input with few repeats (average run length 1) grows to exactly twice
// its size. That expansion is the point: the codec is a deliberately
// naive worst-case reference, not an adaptive coder.
type RunLengthCompressor struct{}

var _ Compressor = RunLengthCompressor{}

// maxRunLength is the largest run a single record's count byte can hold.
const maxRunLength = 255

// NewRunLengthCompressor creates a new run-length compressor.
func NewRunLengthCompressor() RunLengthCompressor {
	return RunLengthCompressor{}
}

// Compress encodes data as a sequence of (value, count) records. Empty
// input maps to empty output; otherwise the output length is always even
// and at least 2.
func (RunLengthCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out := make([]byte, 0, 2*len(data))

	value := data[0]
	count := 1
	for _, b := range data[1:] {
		if b == value && count < maxRunLength {
			count++
			continue
		}
		out = append(out, value, byte(count))
		value = b
		count = 1
	}
	out = append(out, value, byte(count))

	return out, nil
}
