package codec

import (
	"bytes"
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_Names(t *testing.T) {
	names := NewRegistry().Names()

	require.True(t, sort.StringsAreSorted(names))

	for _, want := range []string{
		Deflate, Gzip, Brotli, LZ4, RunLength, Bzip2, Zstandard, LZMA, S2, None,
	} {
		require.Contains(t, names, want)
	}
}

func TestRegistry_GetUnknown(t *testing.T) {
	_, err := NewRegistry().Get("snappy-turbo")

	require.ErrorIs(t, err, ErrUnknownCodec)
	require.Contains(t, err.Error(), "snappy-turbo")
}

func TestRegistry_Register(t *testing.T) {
	reg := NewRegistry()

	require.NoError(t, reg.Register("identity", NewNoOpCompressor()))

	c, err := reg.Get("identity")
	require.NoError(t, err)
	require.NotNil(t, c)

	require.Error(t, reg.Register("identity", NewNoOpCompressor()), "duplicate names are rejected")
	require.Error(t, reg.Register(Gzip, NewNoOpCompressor()), "built-ins cannot be shadowed")
	require.Error(t, reg.Register("", NewNoOpCompressor()))
	require.Error(t, reg.Register("nil-codec", nil))
}

func TestCompress_EmptyInput(t *testing.T) {
	reg := NewRegistry()

	for _, name := range reg.Names() {
		t.Run(name, func(t *testing.T) {
			c, err := reg.Get(name)
			require.NoError(t, err)

			out, err := c.Compress(nil)
			require.NoError(t, err)
			require.Empty(t, out)
		})
	}
}

func TestCompress_RepetitiveInput(t *testing.T) {
	// Every delegated codec should beat a 4KiB buffer made of an 8-byte
	// repeating pattern by a wide margin.
	data := bytes.Repeat([]byte("abcdefgh"), 512)
	reg := NewRegistry()

	for _, name := range reg.Names() {
		if name == RunLength || name == None {
			continue
		}

		t.Run(name, func(t *testing.T) {
			c, err := reg.Get(name)
			require.NoError(t, err)

			out, err := c.Compress(data)
			require.NoError(t, err)
			require.NotEmpty(t, out)
			require.Less(t, len(out), len(data))
		})
	}
}

func TestCompress_SizeDeterminism(t *testing.T) {
	// Framing details may vary per call for some libraries, but the output
	// size for a fixed input must not.
	rng := rand.New(rand.NewPCG(5, 5))
	data := make([]byte, 8192)
	for i := range data {
		data[i] = byte(rng.IntN(64))
	}

	reg := NewRegistry()
	for _, name := range reg.Names() {
		t.Run(name, func(t *testing.T) {
			c, err := reg.Get(name)
			require.NoError(t, err)

			first, err := c.Compress(data)
			require.NoError(t, err)
			second, err := c.Compress(data)
			require.NoError(t, err)

			require.Equal(t, len(first), len(second))
		})
	}
}

func TestCompress_DoesNotMutateInput(t *testing.T) {
	data := bytes.Repeat([]byte("payload"), 100)
	snapshot := bytes.Clone(data)

	reg := NewRegistry()
	for _, name := range reg.Names() {
		c, err := reg.Get(name)
		require.NoError(t, err)

		_, err = c.Compress(data)
		require.NoError(t, err)
		require.Equal(t, snapshot, data, "codec %s mutated its input", name)
	}
}

func TestNoOp_Passthrough(t *testing.T) {
	data := []byte("as-is")

	out, err := NewNoOpCompressor().Compress(data)
	require.NoError(t, err)
	require.Equal(t, data, out)
}
