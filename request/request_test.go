package request

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/compbench/compbench/payload"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{
			name:    "unknown type",
			req:     Request{Type: "tarball", Codec: "gzip"},
			wantErr: ErrInvalidType,
		},
		{
			name:    "string without payload",
			req:     Request{Type: TypeString, Codec: "gzip"},
			wantErr: ErrMissingPayload,
		},
		{
			name:    "file without path",
			req:     Request{Type: TypeFile, Codec: "gzip"},
			wantErr: ErrMissingPayload,
		},
		{
			name:    "image without path",
			req:     Request{Type: TypeImage},
			wantErr: ErrMissingPayload,
		},
		{
			name:    "random without size",
			req:     Request{Type: TypeRandom, TargetEntropy: 4, Codec: "gzip"},
			wantErr: ErrInvalidSize,
		},
		{
			name:    "random with negative size",
			req:     Request{Type: TypeRandom, Size: -5, TargetEntropy: 4, Codec: "gzip"},
			wantErr: ErrInvalidSize,
		},
		{
			name:    "random with entropy out of range",
			req:     Request{Type: TypeRandom, Size: 16, TargetEntropy: 9, Codec: "gzip"},
			wantErr: payload.ErrEntropyRange,
		},
		{
			name:    "missing codec",
			req:     Request{Type: TypeString, Text: "hello"},
			wantErr: ErrMissingCodec,
		},
		{
			name: "valid string request",
			req:  Request{Type: TypeString, Text: "hello", Codec: "gzip"},
		},
		{
			name: "image needs no codec",
			req:  Request{Type: TypeImage, Path: "photo.png"},
		},
		{
			name: "compare-all needs no codec",
			req:  Request{Type: TypeString, Text: "hello", CompareAll: true},
		},
		{
			name: "valid random request",
			req:  Request{Type: TypeRandom, Size: 1024, TargetEntropy: 4.5, Codec: "lz4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestResolve_String(t *testing.T) {
	data, err := Request{Type: TypeString, Text: "hello world", Codec: "gzip"}.Resolve()
	require.NoError(t, err)
	require.Equal(t, []byte("hello world"), data)
}

func TestResolve_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payload.bin")
	require.NoError(t, os.WriteFile(path, []byte("file contents"), 0o644))

	data, err := Request{Type: TypeFile, Path: path, Codec: "gzip"}.Resolve()
	require.NoError(t, err)
	require.Equal(t, []byte("file contents"), data)
}

func TestResolve_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.bin")

	data, err := Request{Type: TypeFile, Path: path, Codec: "gzip"}.Resolve()
	require.ErrorIs(t, err, ErrMissingSource)
	require.ErrorIs(t, err, os.ErrNotExist)
	require.Nil(t, data)
}

func TestResolve_Random(t *testing.T) {
	req := Request{Type: TypeRandom, Size: 512, TargetEntropy: 3, Codec: "gzip"}

	first, err := req.Resolve(payload.WithSeed(1))
	require.NoError(t, err)
	require.Len(t, first, 512)

	second, err := req.Resolve(payload.WithSeed(1))
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestResolve_ValidatesBeforeWork(t *testing.T) {
	// An invalid random request must fail during validation, not inside
	// the generator.
	_, err := Request{Type: TypeRandom, Size: 0, TargetEntropy: 4, Codec: "gzip"}.Resolve()
	require.ErrorIs(t, err, ErrInvalidSize)
}
