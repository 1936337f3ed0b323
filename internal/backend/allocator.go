// Package backend provides the storage abstractions the codec writes to
// and reads from: a file, an in-memory buffer, or a caller-supplied set of
// callbacks, plus the append-only offset tracker the writer uses to place
// records.
package backend

import "fmt"

// Cursor tracks the next free offset in an archive being written.
//
// Strategy:
//   - End-of-stream allocation: every Advance call reserves space at the
//     current offset and moves the cursor past it.
//   - No reuse: tar has no free list; once written, a byte is never
//     revisited.
//   - No overlap tracking: writes are strictly sequential by construction,
//     so there is nothing to validate.
//
// Thread safety: NOT thread-safe. A Writer owns exactly one Cursor.
type Cursor struct {
	offset int64
}

// NewCursor creates a cursor starting at the given offset, typically 0 for
// a fresh archive.
func NewCursor(initialOffset int64) *Cursor {
	return &Cursor{offset: initialOffset}
}

// Advance reserves size bytes at the current offset and returns the
// address they start at.
func (c *Cursor) Advance(size int64) (int64, error) {
	if size < 0 {
		return 0, fmt.Errorf("cannot advance by negative size %d", size)
	}
	addr := c.offset
	c.offset += size
	return addr, nil
}

// Offset returns the current end-of-stream position: where the next
// Advance call would place its block.
func (c *Cursor) Offset() int64 {
	return c.offset
}
