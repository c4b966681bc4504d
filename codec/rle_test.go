package codec

import (
	"bytes"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunLength_Empty(t *testing.T) {
	out, err := NewRunLengthCompressor().Compress(nil)
	require.NoError(t, err)
	require.Empty(t, out)

	out, err = NewRunLengthCompressor().Compress([]byte{})
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestRunLength_Records(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  []byte
	}{
		{name: "single byte", input: []byte{'A'}, want: []byte{'A', 1}},
		{name: "one run", input: []byte("AAAA"), want: []byte{'A', 4}},
		{name: "two runs", input: []byte("AAB"), want: []byte{'A', 2, 'B', 1}},
		{name: "no repeats doubles", input: []byte("ABAB"), want: []byte{'A', 1, 'B', 1, 'A', 1, 'B', 1}},
		{name: "zero value runs", input: []byte{0, 0, 0, 1}, want: []byte{0, 3, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := NewRunLengthCompressor().Compress(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, out)
		})
	}
}

func TestRunLength_LongRunSplit(t *testing.T) {
	// The count byte caps at 255; longer runs must split, never overflow.
	tests := []struct {
		name   string
		length int
		want   []byte
	}{
		{name: "exactly 255", length: 255, want: []byte{'x', 255}},
		{name: "256 splits", length: 256, want: []byte{'x', 255, 'x', 1}},
		{name: "300 splits", length: 300, want: []byte{'x', 255, 'x', 45}},
		{name: "510 is two full records", length: 510, want: []byte{'x', 255, 'x', 255}},
		{name: "511 needs a third record", length: 511, want: []byte{'x', 255, 'x', 255, 'x', 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := NewRunLengthCompressor().Compress(bytes.Repeat([]byte{'x'}, tt.length))
			require.NoError(t, err)
			require.Equal(t, tt.want, out)
		})
	}
}

func TestRunLength_RecordShapeProperty(t *testing.T) {
	// For any input: even output length, >= 2 when non-empty, and the
	// counts add back up to the input length.
	rng := rand.New(rand.NewPCG(11, 11))

	for trial := 0; trial < 50; trial++ {
		size := 1 + rng.IntN(2000)
		data := make([]byte, size)
		for i := range data {
			// Small alphabet to force a mix of short and long runs.
			data[i] = byte(rng.IntN(3))
		}

		out, err := NewRunLengthCompressor().Compress(data)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(out), 2)
		require.Zero(t, len(out)%2, "output must be whole 2-byte records")

		total := 0
		for i := 1; i < len(out); i += 2 {
			require.NotZero(t, out[i], "record counts are never zero")
			total += int(out[i])
		}
		require.Equal(t, size, total)
	}
}
