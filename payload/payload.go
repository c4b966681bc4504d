// Package payload generates synthetic byte buffers with a controllable
// information content, used to probe codec behavior across the whole
// compressibility range.
package payload

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/compbench/compbench/internal/options"
)

var (
	// ErrEntropyRange reports a target entropy outside [0, 8].
	ErrEntropyRange = errors.New("target entropy must be between 0 and 8 bits per byte")
	// ErrNegativeSize reports a negative payload size.
	ErrNegativeSize = errors.New("payload size must not be negative")
)

type generator struct {
	rng *rand.Rand
}

// Option configures Generate.
type Option = options.Option[*generator]

// WithSeed derives the random source from a fixed seed, making the
// generated payload reproducible.
func WithSeed(seed uint64) Option {
	return options.NoError(func(g *generator) {
		g.rng = rand.New(rand.NewPCG(seed, seed))
	})
}

// WithRand uses rng as the random source.
func WithRand(rng *rand.Rand) Option {
	return options.New(func(g *generator) error {
		if rng == nil {
			return errors.New("payload: WithRand requires a non-nil source")
		}
		g.rng = rng

		return nil
	})
}

// Generate produces a buffer of exactly size bytes whose empirical entropy
// approximates targetEntropy bits per byte.
//
// The approximation is deliberately coarse. A target of 0 repeats a single
// uniformly chosen byte value, so the output measures exactly 0. A target
// of 8 draws every byte uniformly from the full 0-255 range, approaching 8
// for large sizes. Any other target draws uniformly from the alphabet
// {0, ..., k-1} with k = floor(2^targetEntropy), so the expected entropy is
// log2(k) rather than the target itself; the two only coincide for integer
// targets. Callers that need the achieved figure should measure the result
// with entropy.Estimate. Hitting non-integer targets exactly would require
// a non-uniform symbol distribution and is intentionally not done here.
//
// Targets outside [0, 8] fail with ErrEntropyRange and produce no buffer.
func Generate(size int, targetEntropy float64, opts ...Option) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeSize, size)
	}
	if targetEntropy < 0 || targetEntropy > 8 || math.IsNaN(targetEntropy) {
		return nil, fmt.Errorf("%w: got %g", ErrEntropyRange, targetEntropy)
	}

	g := &generator{}
	if err := options.Apply(g, opts...); err != nil {
		return nil, err
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	buf := make([]byte, size)

	switch {
	case targetEntropy == 0:
		// A single symbol carries zero information; which one is irrelevant.
		value := byte(g.rng.IntN(256))
		for i := range buf {
			buf[i] = value
		}
	case targetEntropy == 8:
		for i := range buf {
			buf[i] = byte(g.rng.IntN(256))
		}
	default:
		// Alphabet of k = floor(2^target) values. Note that targets below
		// 1 round down to a one-symbol alphabet and yield zero entropy.
		k := int(math.Pow(2, targetEntropy))
		for i := range buf {
			buf[i] = byte(g.rng.IntN(k))
		}
	}

	return buf, nil
}
