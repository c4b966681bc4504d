package codec

// ZstdCompressor produces a Zstandard frame at the library's default
// level.
//
// Two implementations exist behind build tags: a pure-Go one based on
// klauspost/compress/zstd, and a cgo one based on valyala/gozstd for
// builds where cgo is available. Both honor the same contract; only the
// exact frame bytes differ, which is fine since the benchmark contract
// only requires size determinism for a fixed input.
type ZstdCompressor struct{}

var _ Compressor = ZstdCompressor{}

// NewZstdCompressor creates a new Zstandard compressor.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
