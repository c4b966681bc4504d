// Package compbench benchmarks the compressibility of byte payloads.
//
// Given a payload — text, file bytes, or a synthetically generated buffer —
// compbench estimates its information content and compares the byte size
// achieved by one or more compression codecs against the original.
//
// # Core pieces
//
//   - entropy: order-0 Shannon entropy estimation (bits per byte)
//   - payload: entropy-targeted synthetic payload generation
//   - codec: the codec catalogue, mostly thin adapters over external
//     libraries plus one native run-length coder
//   - bench: the runner producing size-comparison reports
//   - recode: the separate lossless re-encode flow for image payloads
//   - request: the configuration surface shared by the front ends
//
// # Basic usage
//
// Benchmark a payload against one codec:
//
//	report, err := compbench.Run(data, codec.Gzip)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(report)
//
// Generate an incompressible payload and compare every codec:
//
//	data, _ := compbench.Generate(1<<20, 8)
//	reports, _ := compbench.RunAll(data)
//
// The package-level functions use a shared default registry. Callers that
// need custom codecs build their own codec.Registry and bench.Runner.
package compbench

import (
	"github.com/compbench/compbench/bench"
	"github.com/compbench/compbench/codec"
	"github.com/compbench/compbench/entropy"
	"github.com/compbench/compbench/payload"
)

// defaultRegistry backs the package-level convenience API. Built once,
// never mutated.
var defaultRegistry = codec.NewRegistry()

// Estimate returns the order-0 Shannon entropy of data in bits per byte.
func Estimate(data []byte) float64 {
	return entropy.Estimate(data)
}

// Generate produces size bytes approximating targetEntropy bits per byte.
func Generate(size int, targetEntropy float64, opts ...payload.Option) ([]byte, error) {
	return payload.Generate(size, targetEntropy, opts...)
}

// Codecs lists the codec names in the default registry.
func Codecs() []string {
	return defaultRegistry.Names()
}

// Run benchmarks data against the named codec from the default registry.
func Run(data []byte, codecName string) (bench.Report, error) {
	return bench.NewRunner(defaultRegistry).Run(data, codecName)
}

// RunAll benchmarks data against every codec in the default registry.
func RunAll(data []byte) ([]bench.Report, error) {
	return bench.NewRunner(defaultRegistry).RunAll(data)
}
