package codec

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownCodec is returned by Registry.Get for names outside the catalogue.
var ErrUnknownCodec = errors.New("unknown codec")

// Compressor is a named one-shot compression transform.
//
// Implementations call the underlying library's standard entry point with
// its default settings; compression level, windowing and framing are
// opaque to callers. Contract:
//   - The input slice is never modified.
//   - The returned slice is newly allocated and owned by the caller.
//   - Repeated calls are safe; no mutable state is shared between calls.
//   - Output size is deterministic for a fixed input, even for codecs
//     whose framing is not byte-for-byte reproducible.
type Compressor interface {
	// Compress compresses data and returns the result. Empty input maps
	// to empty output for every built-in codec.
	Compress(data []byte) ([]byte, error)
}

// Registry names for the built-in codecs.
const (
	Deflate   = "deflate"
	Gzip      = "gzip"
	Brotli    = "brotli"
	LZ4       = "lz4"
	RunLength = "run-length"
	Bzip2     = "bzip2"
	Zstandard = "zstandard"
	LZMA      = "lzma"
	S2        = "s2"
	None      = "none"
)

// Registry is a name-keyed catalogue of compressors. It is built once at
// startup and passed by reference into the benchmark runner; there is no
// process-global registry.
type Registry struct {
	codecs map[string]Compressor
}

// NewRegistry builds the default codec catalogue.
//
// Every entry except run-length delegates to a third-party library;
// run-length is implemented natively in this package.
func NewRegistry() *Registry {
	return &Registry{codecs: map[string]Compressor{
		Deflate:   NewFlateCompressor(),
		Gzip:      NewGzipCompressor(),
		Brotli:    NewBrotliCompressor(),
		LZ4:       NewLZ4Compressor(),
		RunLength: NewRunLengthCompressor(),
		Bzip2:     NewBzip2Compressor(),
		Zstandard: NewZstdCompressor(),
		LZMA:      NewLZMACompressor(),
		S2:        NewS2Compressor(),
		None:      NewNoOpCompressor(),
	}}
}

// Get resolves name to its registered compressor. Unknown names fail with
// an error satisfying errors.Is(err, ErrUnknownCodec).
func (r *Registry) Get(name string) (Compressor, error) {
	c, ok := r.codecs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}

	return c, nil
}

// Register adds a codec under name. Registration is startup wiring, done
// before the registry is handed to a runner; duplicates are rejected so a
// built-in cannot be silently shadowed.
func (r *Registry) Register(name string, c Compressor) error {
	if name == "" {
		return errors.New("codec name must not be empty")
	}
	if c == nil {
		return fmt.Errorf("codec %q must not be nil", name)
	}
	if _, ok := r.codecs[name]; ok {
		return fmt.Errorf("codec %q already registered", name)
	}
	r.codecs[name] = c

	return nil
}

// Names returns the registered codec names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.codecs))
	for name := range r.codecs {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
