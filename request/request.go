// Package request models the configuration surface shared by the command
// line and any interactive front end: what the payload is, how to acquire
// its bytes, and which codec to benchmark it against.
package request

import (
	"errors"
	"fmt"
	"os"

	"github.com/compbench/compbench/payload"
)

// PayloadType selects how the payload bytes are acquired.
type PayloadType string

// Recognized payload types.
const (
	TypeString PayloadType = "string"
	TypeFile   PayloadType = "file"
	TypeImage  PayloadType = "image"
	TypeRandom PayloadType = "random"
)

func (t PayloadType) String() string {
	return string(t)
}

func (t PayloadType) valid() bool {
	switch t {
	case TypeString, TypeFile, TypeImage, TypeRandom:
		return true
	default:
		return false
	}
}

var (
	// ErrInvalidType reports an unrecognized payload type.
	ErrInvalidType = errors.New("unknown payload type")
	// ErrMissingPayload reports an absent payload argument for a type that
	// requires one.
	ErrMissingPayload = errors.New("payload is required for this payload type")
	// ErrInvalidSize reports a missing or non-positive size for a random
	// payload.
	ErrInvalidSize = errors.New("size must be a positive integer for random payloads")
	// ErrMissingCodec reports an absent codec name where one is required.
	ErrMissingCodec = errors.New("codec name is required")
	// ErrMissingSource reports a payload file or image path that does not
	// exist.
	ErrMissingSource = errors.New("payload source does not exist")
)

// Request describes one benchmark invocation.
type Request struct {
	// Type selects the payload source.
	Type PayloadType

	// Text is the inline payload for TypeString.
	Text string

	// Path is the file or image path for TypeFile and TypeImage.
	Path string

	// Size and TargetEntropy parameterize TypeRandom: the byte count to
	// generate and the desired entropy in bits per byte.
	Size          int
	TargetEntropy float64

	// Codec is the registry name to benchmark against. Not used for
	// TypeImage, which takes the lossless re-encode path, nor when
	// CompareAll is set.
	Codec string

	// CompareAll requests a comparison across every registered codec
	// instead of a single one.
	CompareAll bool
}

// Validate checks the request before any work happens. It covers the
// invalid-parameter surface: a failed validation means nothing was read,
// generated or compressed.
func (r Request) Validate() error {
	if !r.Type.valid() {
		return fmt.Errorf("%w: %q", ErrInvalidType, r.Type)
	}

	switch r.Type {
	case TypeString:
		if r.Text == "" {
			return fmt.Errorf("%w: %s", ErrMissingPayload, r.Type)
		}
	case TypeFile, TypeImage:
		if r.Path == "" {
			return fmt.Errorf("%w: %s", ErrMissingPayload, r.Type)
		}
	case TypeRandom:
		if r.Size <= 0 {
			return fmt.Errorf("%w: got %d", ErrInvalidSize, r.Size)
		}
		if r.TargetEntropy < 0 || r.TargetEntropy > 8 {
			return fmt.Errorf("%w: got %g", payload.ErrEntropyRange, r.TargetEntropy)
		}
	}

	if r.Type != TypeImage && !r.CompareAll && r.Codec == "" {
		return ErrMissingCodec
	}

	return nil
}

// Resolve validates the request and acquires the payload bytes: the inline
// string, the file or image contents, or a synthesized random buffer.
// A missing file fails with ErrMissingSource wrapping the OS error.
// Generation options only apply to TypeRandom.
func (r Request) Resolve(opts ...payload.Option) ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	switch r.Type {
	case TypeString:
		return []byte(r.Text), nil
	case TypeFile, TypeImage:
		data, err := os.ReadFile(r.Path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s: %w", ErrMissingSource, r.Path, err)
			}

			return nil, fmt.Errorf("read %s: %w", r.Path, err)
		}

		return data, nil
	default: // TypeRandom, the only remaining valid type.
		return payload.Generate(r.Size, r.TargetEntropy, opts...)
	}
}
