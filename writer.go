package ustar

import (
	"github.com/scigolib/ustar/internal/backend"
	"github.com/scigolib/ustar/internal/core"
	"github.com/scigolib/ustar/internal/utils"
)

// Writer emits conforming tar records to a file, an in-memory buffer, or
// a caller-supplied custom backend. It tracks the running written-byte
// offset and the current record's expected-payload counter.
//
// State machine: Idle -> HeaderWritten(remaining) -> Idle once remaining
// reaches 0, which triggers emission of the record's zero-padding.
// Finalize may be called from either state: a caller that underruns a
// declared payload gets a truncated archive, not a blocked one.
type Writer struct {
	w      backend.Writer
	mem    *backend.MemoryWriter // set only for CreateMemory, enables TakeBuffer
	cursor *backend.Cursor

	open        bool  // true from WriteHeader until this record's payload (and padding) is fully flushed
	remaining   int64 // payload bytes still owed for the open header; 0 means Idle
	currentSize int64 // declared size of the open header, for padding once remaining hits 0
}

// CreateFile creates (truncating if present) path for writing.
func CreateFile(path string) (*Writer, error) {
	w, err := backend.CreateFile(path)
	if err != nil {
		return nil, err
	}
	return newWriter(w, nil), nil
}

// CreateMemory creates a writer backed by a growable in-memory buffer.
// capacityHint pre-sizes the buffer; 0 is a reasonable default.
func CreateMemory(capacityHint int) *Writer {
	mw := backend.NewMemoryWriter(capacityHint)
	return newWriter(mw, mw)
}

// CreateCustom creates a writer over caller-supplied write/close
// callbacks.
func CreateCustom(cw *backend.CustomWriter) *Writer {
	return newWriter(cw, nil)
}

func newWriter(w backend.Writer, mem *backend.MemoryWriter) *Writer {
	return &Writer{w: w, mem: mem, cursor: backend.NewCursor(0)}
}

// WriteHeader writes h as-is. It is the general entry point
// WriteFileHeader and WriteDirHeader build on; most callers want one of
// those instead.
func (w *Writer) WriteHeader(h *Header) error {
	if w.remaining != 0 {
		return utils.New(utils.Failure, "WriteHeader called before prior payload finished")
	}

	block, err := core.Encode(h)
	if err != nil {
		return err
	}
	if err := w.writeBlock(block); err != nil {
		return err
	}

	w.remaining = h.Size
	w.currentSize = h.Size
	if w.remaining == 0 {
		w.open = false
		return w.emitPadding()
	}
	w.open = true
	return nil
}

// WriteFileHeader writes a regular-file header for name with the given
// declared payload size, and records size as the expected-payload
// counter for the matching WriteData calls.
func (w *Writer) WriteFileHeader(name string, size int64) error {
	return w.WriteHeader(&Header{Name: name, Size: size, Typeflag: TypeReg})
}

// WriteDirHeader writes a directory header (type '5', size 0); no
// payload or padding follows it.
func (w *Writer) WriteDirHeader(name string) error {
	return w.WriteHeader(&Header{Name: name, Typeflag: TypeDir})
}

// WriteData writes len(buf) bytes of payload for the header most
// recently opened with WriteHeader/WriteFileHeader. Once the declared
// size is fully written, the record's zero-padding is emitted and the
// writer returns to Idle. Writing more than declared is a fatal
// Overflow; writing less is permitted and leaves the archive with a
// payload underrun, which is the caller's responsibility, not a codec
// error.
func (w *Writer) WriteData(buf []byte) error {
	if !w.open {
		return utils.New(utils.Failure, "WriteData called with no open header awaiting payload")
	}
	if int64(len(buf)) > w.remaining {
		return utils.New(utils.Overflow, "write would exceed declared payload size")
	}

	if _, err := w.cursor.Advance(int64(len(buf))); err != nil {
		return utils.Wrap(utils.Overflow, "advancing write cursor", err)
	}
	if _, err := w.w.Write(buf); err != nil {
		return utils.Wrap(utils.WriteFail, "writing payload", err)
	}
	w.remaining -= int64(len(buf))

	if w.remaining == 0 {
		w.open = false
		return w.emitPadding()
	}
	return nil
}

// emitPadding writes the zero bytes needed to bring the just-finished
// record up to a 512-byte boundary.
func (w *Writer) emitPadding() error {
	pad := core.Padding(w.currentSize)
	if pad == 0 {
		return nil
	}
	return w.writeBlock(make([]byte, pad))
}

func (w *Writer) writeBlock(block []byte) error {
	if _, err := w.cursor.Advance(int64(len(block))); err != nil {
		return utils.Wrap(utils.Overflow, "advancing write cursor", err)
	}
	if _, err := w.w.Write(block); err != nil {
		return utils.Wrap(utils.WriteFail, "writing block", err)
	}
	return nil
}

// Finalize writes the two-block zero terminator. It must be called
// before Close. It succeeds even if the most recent WriteHeader's
// declared size was never fully written: a payload underrun leaves the
// archive truncated, which is the caller's bug to fix, not a condition
// the library refuses to close out.
func (w *Writer) Finalize() error {
	return w.writeBlock(core.Terminator())
}

// Close releases the underlying backend. For a memory-backed writer,
// call TakeBuffer before Close if the buffer is still needed.
func (w *Writer) Close() error {
	return w.w.Close()
}

// Offset returns the number of bytes written to the archive so far: the
// running written-byte count spec.md §3 has the handle carry as the
// terminator/alignment reference.
func (w *Writer) Offset() int64 {
	return w.cursor.Offset()
}

// MemSize returns the logical size written so far, per spec.md §4.6's
// mem_size() operation. It is equivalent to Offset for every backend,
// not just the memory one: the running written-byte count is the same
// number regardless of where the bytes end up.
func (w *Writer) MemSize() int64 {
	return w.cursor.Offset()
}

// TakeBuffer returns the accumulated archive bytes and resets the
// backing buffer to empty. It is only valid for a writer created with
// CreateMemory; calling it on any other writer is a programming error.
func (w *Writer) TakeBuffer() ([]byte, error) {
	if w.mem == nil {
		return nil, utils.New(utils.Failure, "TakeBuffer called on a non-memory writer")
	}
	return w.mem.TakeBuffer(), nil
}
