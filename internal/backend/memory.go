package backend

import (
	"io"

	"github.com/scigolib/ustar/internal/utils"
)

// MemoryReader is a SeekReader over an in-memory byte slice, for archives
// that live entirely in memory rather than on disk.
type MemoryReader struct {
	data   []byte
	pos    int64
	closed bool
}

// NewMemoryReader wraps data for random-access reading. The slice is not
// copied; the caller must not mutate it while the reader is in use.
func NewMemoryReader(data []byte) *MemoryReader {
	return &MemoryReader{data: data}
}

func (r *MemoryReader) Read(p []byte) (int, error) {
	if r.closed {
		return 0, utils.New(utils.ReadFail, "read from closed memory reader")
	}
	if r.pos >= int64(len(r.data)) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += int64(n)
	return n, nil
}

func (r *MemoryReader) Seek(offset int64, whence int) (int64, error) {
	if r.closed {
		return 0, utils.New(utils.SeekFail, "seek on closed memory reader")
	}
	var target int64
	switch whence {
	case io.SeekStart:
		target = offset
	case io.SeekCurrent:
		target = r.pos + offset
	case io.SeekEnd:
		target = int64(len(r.data)) + offset
	default:
		return 0, utils.New(utils.SeekFail, "invalid whence")
	}
	if target < 0 {
		return 0, utils.New(utils.SeekFail, "negative seek position")
	}
	r.pos = target
	return target, nil
}

func (r *MemoryReader) Close() error {
	r.closed = true
	return nil
}

// MemoryWriter is a Writer that appends to a growable in-memory buffer,
// for building an archive entirely in memory.
type MemoryWriter struct {
	buf    []byte
	closed bool
}

// NewMemoryWriter creates an empty growable buffer, optionally pre-sized
// with capacity hint.
func NewMemoryWriter(capacityHint int) *MemoryWriter {
	return &MemoryWriter{buf: make([]byte, 0, capacityHint)}
}

func (w *MemoryWriter) Write(p []byte) (int, error) {
	if w.closed {
		return 0, utils.New(utils.WriteFail, "write to closed memory writer")
	}
	needed := len(w.buf) + len(p)
	if needed > cap(w.buf) {
		grown := make([]byte, len(w.buf), doubleUntil(cap(w.buf), needed))
		copy(grown, w.buf)
		w.buf = grown
	}
	w.buf = append(w.buf, p...)
	return len(p), nil
}

func (w *MemoryWriter) Close() error {
	w.closed = true
	return nil
}

// Len returns the number of bytes written so far.
func (w *MemoryWriter) Len() int {
	return len(w.buf)
}

// TakeBuffer returns the accumulated bytes and resets the writer to empty.
// The caller takes ownership of the returned slice.
func (w *MemoryWriter) TakeBuffer() []byte {
	out := w.buf
	w.buf = nil
	return out
}

// doubleUntil grows cap by doubling (starting from 64 if empty) until it
// can hold needed bytes.
func doubleUntil(cap, needed int) int {
	if cap == 0 {
		cap = 64
	}
	for cap < needed {
		cap *= 2
	}
	return cap
}
