package backend

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryReaderReadSeek(t *testing.T) {
	r := NewMemoryReader([]byte("hello world"))

	buf := make([]byte, 5)
	n, err := r.Read(buf)
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, "hello", string(buf))

	pos, err := r.Seek(6, io.SeekStart)
	require.NoError(t, err)
	require.EqualValues(t, 6, pos)

	n, err = r.Read(buf)
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, "world", string(buf[:n]))

	_, err = r.Read(buf)
	require.ErrorIs(t, err, io.EOF)
}

func TestMemoryReaderSeekWhence(t *testing.T) {
	r := NewMemoryReader([]byte("0123456789"))

	pos, err := r.Seek(-2, io.SeekEnd)
	require.NoError(t, err)
	require.EqualValues(t, 8, pos)

	pos, err = r.Seek(1, io.SeekCurrent)
	require.NoError(t, err)
	require.EqualValues(t, 9, pos)

	_, err = r.Seek(-100, io.SeekStart)
	require.Error(t, err)
}

func TestMemoryReaderClosed(t *testing.T) {
	r := NewMemoryReader([]byte("x"))
	require.NoError(t, r.Close())

	_, err := r.Read(make([]byte, 1))
	require.Error(t, err)

	_, err = r.Seek(0, io.SeekStart)
	require.Error(t, err)
}

func TestMemoryWriterGrowsAndAccumulates(t *testing.T) {
	w := NewMemoryWriter(0)

	n, err := w.Write([]byte("abc"))
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, 3, w.Len())

	big := make([]byte, 1000)
	for i := range big {
		big[i] = 'z'
	}
	_, err = w.Write(big)
	require.NoError(t, err)
	require.Equal(t, 1003, w.Len())

	buf := w.TakeBuffer()
	require.Len(t, buf, 1003)
	require.Equal(t, "abc", string(buf[:3]))
	require.Equal(t, 0, w.Len())
}

func TestMemoryWriterClosed(t *testing.T) {
	w := NewMemoryWriter(0)
	require.NoError(t, w.Close())

	_, err := w.Write([]byte("x"))
	require.Error(t, err)
}
