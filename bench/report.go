package bench

import (
	"fmt"
	"strings"
	"time"
)

// Report captures the outcome of benchmarking one payload against one
// codec. Reports are plain values: created fresh per call and never
// mutated afterwards.
type Report struct {
	// Codec is the registry name of the transform that produced the report.
	Codec string

	// PayloadID is the xxHash64 fingerprint of the original payload. It
	// ties together the reports of a multi-codec comparison.
	PayloadID uint64

	// OriginalSize is the payload size in bytes before compression.
	OriginalSize int

	// CompressedSize is the output size in bytes after compression.
	CompressedSize int

	// Entropy is the order-0 entropy estimate of the original payload in
	// bits per byte. Only meaningful when HasEntropy is true; the image
	// re-encode flow reuses this shape without an entropy figure.
	Entropy float64

	// HasEntropy reports whether Entropy was computed for this report.
	HasEntropy bool

	// Elapsed is the wall time spent inside the codec's Compress call.
	Elapsed time.Duration
}

// Reduction returns the percent size reduction from original to
// compressed. Negative values mean the codec expanded the data. The
// percentage is undefined for an empty original payload; ok reports
// whether it applies.
func (r Report) Reduction() (float64, bool) {
	if r.OriginalSize == 0 {
		return 0, false
	}

	return float64(r.OriginalSize-r.CompressedSize) / float64(r.OriginalSize) * 100.0, true
}

// Ratio returns compressed size over original size. Values below 1.0
// indicate successful compression; 0.0 is returned for an empty payload.
func (r Report) Ratio() float64 {
	if r.OriginalSize == 0 {
		return 0.0
	}

	return float64(r.CompressedSize) / float64(r.OriginalSize)
}

// String renders the report the way the presentation front ends show it.
func (r Report) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Original size: %d bytes\n", r.OriginalSize)
	fmt.Fprintf(&sb, "Compressed size: %d bytes\n", r.CompressedSize)

	if reduction, ok := r.Reduction(); ok && r.CompressedSize < r.OriginalSize {
		fmt.Fprintf(&sb, "Compression reduced the size by %.2f%%", reduction)
	} else {
		sb.WriteString("Compression did not reduce the size.")
	}

	return sb.String()
}
