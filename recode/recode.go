// Package recode implements the lossless image re-encode comparison.
//
// Image payloads do not go through the codec registry or the entropy
// estimator. Applying a general-purpose codec to an already-encoded image
// mostly measures the container format, so images get their own flow:
// decode, normalize to 3-channel RGB, re-encode at maximum JPEG quality,
// and compare sizes. The result reuses the bench.Report shape without an
// entropy figure so both flows render the same way.
package recode

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"time"

	// Decoder registrations for the formats accepted by the front ends.
	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/compbench/compbench/bench"
	"github.com/compbench/compbench/internal/hash"
)

// Name identifies the re-encode flow in reports, in place of a registry
// codec name.
const Name = "jpeg-lossless"

// JPEGLossless decodes raw image bytes, normalizes the pixels to a plain
// 3-channel RGB raster and re-encodes them at maximum JPEG quality with
// optimized default settings. The input may be PNG, JPEG, GIF, BMP, TIFF
// or WebP encoded.
func JPEGLossless(data []byte) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("recode: decode image: %w", err)
	}

	// The source raster may be paletted, grayscale or subsampled YCbCr;
	// redraw it so every source feeds the encoder the same representation.
	bounds := img.Bounds()
	rgb := image.NewRGBA(bounds)
	draw.Draw(rgb, bounds, img, bounds.Min, draw.Src)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, rgb, &jpeg.Options{Quality: 100}); err != nil {
		return nil, fmt.Errorf("recode: re-encode %s image: %w", format, err)
	}

	return buf.Bytes(), nil
}

// Benchmark re-encodes raw image bytes and compares sizes in the shared
// report shape. HasEntropy is left false: no entropy estimate applies to
// this flow.
func Benchmark(data []byte) (bench.Report, error) {
	start := time.Now()

	encoded, err := JPEGLossless(data)
	if err != nil {
		return bench.Report{}, err
	}

	return bench.Report{
		Codec:          Name,
		PayloadID:      hash.ID(data),
		OriginalSize:   len(data),
		CompressedSize: len(encoded),
		Elapsed:        time.Since(start),
	}, nil
}
