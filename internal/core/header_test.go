package core

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scigolib/ustar/internal/utils"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		h    *Header
	}{
		{"regular file", &Header{Name: "hello.txt", Mode: 0644, UID: 1000, GID: 1000, Size: 11, ModTime: 1700000000, Typeflag: TypeReg}},
		{"directory", &Header{Name: "dir/", Mode: 0755, Typeflag: TypeDir}},
		{"symlink", &Header{Name: "link", LinkName: "target", Typeflag: TypeSymlink}},
		{"zero mode defaults", &Header{Name: "f", Typeflag: TypeReg}},
		{"max size", &Header{Name: "big", Size: utils.MaxOctal11, Typeflag: TypeReg}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block, err := Encode(tt.h)
			require.NoError(t, err)
			require.Len(t, block, RecordSize)

			got, err := Decode(block)
			require.NoError(t, err)

			require.Equal(t, tt.h.Name, got.Name)
			require.Equal(t, tt.h.LinkName, got.LinkName)
			require.Equal(t, tt.h.Typeflag, got.Typeflag)
			require.Equal(t, tt.h.Size, got.Size)
			require.Equal(t, tt.h.ModTime, got.ModTime)
			require.Equal(t, tt.h.UID, got.UID)
			require.Equal(t, tt.h.GID, got.GID)
			if tt.h.Mode == 0 {
				require.EqualValues(t, DefaultMode, got.Mode)
			} else {
				require.Equal(t, tt.h.Mode, got.Mode)
			}
		})
	}
}

func TestDecodeNullRecord(t *testing.T) {
	block := make([]byte, RecordSize)
	_, err := Decode(block)
	require.ErrorIs(t, err, utils.ErrNullRecord)
}

func TestDecodeBadChecksum(t *testing.T) {
	block, err := Encode(&Header{Name: "x", Typeflag: TypeReg})
	require.NoError(t, err)

	block[148] ^= 0xFF

	_, err = Decode(block)
	require.Error(t, err)
	require.True(t, utils.Is(err, utils.BadChecksum))
}

func TestDecodeWrongSize(t *testing.T) {
	_, err := Decode(make([]byte, 100))
	require.Error(t, err)
	require.True(t, utils.Is(err, utils.Failure))
}

func TestEncodeNameOverflow(t *testing.T) {
	long := make([]byte, utils.MaxNameLen+1)
	for i := range long {
		long[i] = 'a'
	}
	_, err := Encode(&Header{Name: string(long)})
	require.Error(t, err)
	require.True(t, utils.Is(err, utils.Overflow))
}

func TestEncodeSizeOverflow(t *testing.T) {
	_, err := Encode(&Header{Name: "f", Size: utils.MaxOctal11 + 1})
	require.Error(t, err)
	require.True(t, utils.Is(err, utils.Overflow))
}

func TestEncodeNegativeSize(t *testing.T) {
	_, err := Encode(&Header{Name: "f", Size: -1})
	require.Error(t, err)
	require.True(t, utils.Is(err, utils.Overflow))
}

func TestPadding(t *testing.T) {
	require.EqualValues(t, 0, Padding(0))
	require.EqualValues(t, 0, Padding(512))
	require.EqualValues(t, 502, Padding(10))
	require.EqualValues(t, 1, Padding(511))
}

func TestTerminator(t *testing.T) {
	term := Terminator()
	require.Len(t, term, RecordSize*2)
	for _, b := range term {
		require.Zero(t, b)
	}
}
