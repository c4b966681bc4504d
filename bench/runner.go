// Package bench orchestrates compressibility benchmarks: it measures a
// payload's entropy, runs it through a named codec and reports the size
// delta.
package bench

import (
	"fmt"
	"time"

	"github.com/compbench/compbench/codec"
	"github.com/compbench/compbench/entropy"
	"github.com/compbench/compbench/internal/hash"
)

// CodecError reports a failure inside a delegated codec. The original
// cause is preserved for errors.Is and errors.As; there is no retry and
// no fallback codec.
type CodecError struct {
	Codec string
	Err   error
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("codec %q failed: %v", e.Codec, e.Err)
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// Runner benchmarks payloads against the codecs of a fixed registry.
//
// A Runner holds no mutable state. Every call is synchronous and
// independent: no caching, no concurrency, no observable effect beyond
// the returned report. Peak memory per call is the payload plus its
// compressed form.
type Runner struct {
	registry *codec.Registry
}

// NewRunner creates a Runner over an explicitly constructed registry.
func NewRunner(registry *codec.Registry) *Runner {
	return &Runner{registry: registry}
}

// Run benchmarks data against the named codec.
//
// The codec name is resolved first: an unknown name fails with
// codec.ErrUnknownCodec before any entropy estimation or compression
// happens. A codec failure is wrapped in *CodecError with the cause
// attached. Either a complete report or a single error is returned,
// never a partial report.
func (r *Runner) Run(data []byte, codecName string) (Report, error) {
	c, err := r.registry.Get(codecName)
	if err != nil {
		return Report{}, err
	}

	est := entropy.Estimate(data)

	start := time.Now()
	compressed, err := c.Compress(data)
	if err != nil {
		return Report{}, &CodecError{Codec: codecName, Err: err}
	}

	return Report{
		Codec:          codecName,
		PayloadID:      hash.ID(data),
		OriginalSize:   len(data),
		CompressedSize: len(compressed),
		Entropy:        est,
		HasEntropy:     true,
		Elapsed:        time.Since(start),
	}, nil
}

// RunAll benchmarks data against every registered codec, in the order of
// Names(). It fails on the first codec error; there is no partial result.
func (r *Runner) RunAll(data []byte) ([]Report, error) {
	names := r.registry.Names()

	reports := make([]Report, 0, len(names))
	for _, name := range names {
		report, err := r.Run(data, name)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}

	return reports, nil
}
