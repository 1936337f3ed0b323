package backend

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCustomReaderDelegates(t *testing.T) {
	src := bytes.NewReader([]byte("payload"))
	closed := false

	r := &CustomReader{
		ReadFunc: src.Read,
		SeekFunc: src.Seek,
		CloseFunc: func() error {
			closed = true
			return nil
		},
	}

	buf := make([]byte, 7)
	n, err := r.Read(buf)
	require.NoError(t, err)
	require.Equal(t, "payload", string(buf[:n]))

	pos, err := r.Seek(0, io.SeekStart)
	require.NoError(t, err)
	require.Zero(t, pos)

	require.NoError(t, r.Close())
	require.True(t, closed)
}

func TestCustomReaderNilFuncsFail(t *testing.T) {
	r := &CustomReader{}

	_, err := r.Read(make([]byte, 1))
	require.Error(t, err)

	_, err = r.Seek(0, io.SeekStart)
	require.Error(t, err)

	require.NoError(t, r.Close(), "a nil CloseFunc is a no-op, not an error")
}

func TestCustomWriterDelegates(t *testing.T) {
	var dst bytes.Buffer
	closed := false

	w := &CustomWriter{
		WriteFunc: dst.Write,
		CloseFunc: func() error {
			closed = true
			return nil
		},
	}

	n, err := w.Write([]byte("hi"))
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, "hi", dst.String())

	require.NoError(t, w.Close())
	require.True(t, closed)
}

func TestCustomWriterNilWriteFuncFails(t *testing.T) {
	w := &CustomWriter{}
	_, err := w.Write([]byte("x"))
	require.Error(t, err)
}
