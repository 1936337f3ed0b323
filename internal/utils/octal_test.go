package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseOctal(t *testing.T) {
	tests := []struct {
		name    string
		field   []byte
		want    int64
		wantErr bool
	}{
		{"typical mode", []byte("0000664\x00"), 0664, false},
		{"NUL terminated", []byte("00000013\x00"), 013, false},
		{"space terminated", []byte("0000013 "), 013, false},
		{"leading spaces", []byte("     013"), 013, false},
		{"all zero", []byte("0000000\x00"), 0, false},
		{"empty field", []byte("\x00\x00\x00\x00\x00\x00\x00\x00"), 0, true},
		{"not octal", []byte("abcdefg\x00"), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOctal(tt.field)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFormatOctal(t *testing.T) {
	field := make([]byte, 8)
	require.NoError(t, FormatOctal(0664, field))
	got, err := ParseOctal(field)
	require.NoError(t, err)
	require.Equal(t, int64(0664), got)
	require.Equal(t, byte(0), field[7])

	require.Error(t, FormatOctal(-1, field))

	tiny := make([]byte, 2)
	require.Error(t, FormatOctal(100, tiny), "100 in octal needs 3 digits, field only fits 1")
}

func TestFormatOctalRoundTrip(t *testing.T) {
	values := []int64{0, 1, 7, 8, 511, 0664, 1_000_000}
	field := make([]byte, 12)
	for _, v := range values {
		require.NoError(t, FormatOctal(v, field))
		got, err := ParseOctal(field)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}
