// Package codec provides the compression transforms benchmarked by this
// module.
//
// Each codec is a named one-shot transform with the contract
// Compress(data []byte) ([]byte, error). All built-in codecs except
// run-length are thin adapters over external compression libraries called
// with their default settings:
//
//   - deflate, gzip: github.com/klauspost/compress (flate, gzip)
//   - zstandard:     github.com/klauspost/compress/zstd, or
//     github.com/valyala/gozstd under cgo builds
//   - s2:            github.com/klauspost/compress/s2
//   - lz4:           github.com/pierrec/lz4/v4 (frame format)
//   - brotli:        github.com/andybalholm/brotli
//   - bzip2:         github.com/dsnet/compress/bzip2
//   - lzma:          github.com/ulikunitz/xz/lzma
//
// The run-length codec is implemented natively; it is deliberately naive
// (fixed 2-byte records, no literal escape) and exists as a worst-case
// reference point rather than a practical compressor. The "none" codec
// passes data through unchanged and serves as the baseline.
//
// Codecs are collected in a Registry, an immutable lookup table built once
// via NewRegistry and passed by reference to the benchmark runner:
//
//	registry := codec.NewRegistry()
//	c, err := registry.Get(codec.Gzip)
//	if err != nil {
//	    return err
//	}
//	compressed, err := c.Compress(payload)
//
// No decoders are provided. The benchmark compares sizes only; round-trip
// verification is out of scope.
package codec
