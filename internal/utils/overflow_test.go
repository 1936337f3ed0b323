package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateSize(t *testing.T) {
	tests := []struct {
		name    string
		size    int64
		wantErr bool
	}{
		{"zero", 0, false},
		{"typical file", 11, false},
		{"at the 11-octal-digit ceiling", MaxOctal11, false},
		{"one past the ceiling", MaxOctal11 + 1, true},
		{"negative", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSize(tt.size)
			if tt.wantErr {
				require.Error(t, err)
				require.True(t, Is(err, Overflow))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestSafeAdd(t *testing.T) {
	v, err := SafeAdd(500, 12)
	require.NoError(t, err)
	require.Equal(t, int64(512), v)

	_, err = SafeAdd(math.MaxInt64, 1)
	require.Error(t, err)
	require.True(t, Is(err, Overflow))

	_, err = SafeAdd(math.MinInt64, -1)
	require.Error(t, err)
}

func TestValidateName(t *testing.T) {
	require.NoError(t, ValidateName("name", "test1.txt", MaxNameLen))

	long := make([]byte, MaxNameLen+1)
	for i := range long {
		long[i] = 'a'
	}
	err := ValidateName("name", string(long), MaxNameLen)
	require.Error(t, err)
	require.True(t, Is(err, Overflow))
}
