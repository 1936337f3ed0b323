// Package linear implements the non-seekable stream decoder (component E):
// a header-then-payload record parser fed byte chunks of arbitrary size,
// never seeking backward, and holding at most one 512-byte scratch record
// of state between feeds regardless of how much payload flows through it.
package linear

import (
	"github.com/scigolib/ustar/internal/core"
	"github.com/scigolib/ustar/internal/utils"
)

// state is the decoder's position in the header/payload cycle.
type state int

const (
	stateNeedHeader state = iota
	stateHavePayload
	stateEnd
)

// ErrNeedMoreData is returned by Next when the fed window was exhausted
// before a full 512-byte header could be assembled, or before the previous
// record's remaining padding could be skipped. It is informational,
// like utils.ErrNullRecord: the caller should Feed more bytes and call
// Next again.
var ErrNeedMoreData = utils.New(utils.Failure, "linear decoder needs more input")

// Decoder is a demand-driven tar stream parser. Its entire cross-feed
// footprint is the fixed 512-byte scratch buffer plus a handful of
// counters — it never buffers payload bytes itself.
type Decoder struct {
	scratch [core.RecordSize]byte
	held    int

	state     state
	remaining int64 // payload bytes still owed for the current record
	pad       int64 // padding bytes still owed before the next header

	window []byte // unconsumed tail of the most recent Feed call
}

// New creates a decoder ready to parse from the start of an archive.
func New() *Decoder {
	return &Decoder{state: stateNeedHeader}
}

// Feed hands the decoder the next chunk of archive bytes. The decoder
// does not copy the slice; the caller must not modify it until the
// decoder has fully consumed it (LinearDataAvailable returns 0) or
// crossed into the next Feed call. Feed fails if the previous window was
// not fully drained first.
func (d *Decoder) Feed(data []byte) error {
	if len(d.window) > 0 {
		return utils.New(utils.Failure, "previous feed window not fully consumed")
	}
	d.window = data
	return nil
}

// Next attempts to decode the next header from accumulated input.
//
// If the current record's payload has been fully read but some of its
// padding is still owed, Next first skips that padding from the window,
// returning ErrNeedMoreData if the window runs dry before it is skipped.
// In stateNeedHeader it pulls bytes from the window into the scratch
// buffer; once 512 bytes are collected it decodes them. A decoded header
// moves the decoder to stateHavePayload. The all-zero sentinel moves it
// to stateEnd, discards the rest of the window, and returns
// utils.ErrNullRecord; every later call discards any newly fed bytes and
// returns utils.ErrNullRecord again. If the window runs dry before a full
// header is assembled, it returns ErrNeedMoreData — Feed more data and
// call Next again.
//
// Calling Next while payload bytes of the current record are still
// unread is a programming error and returns Failure.
func (d *Decoder) Next() (*core.Header, error) {
	switch d.state {
	case stateEnd:
		d.window = nil
		return nil, utils.ErrNullRecord
	case stateHavePayload:
		if d.remaining > 0 {
			return nil, utils.New(utils.Failure, "Next called before payload fully read")
		}
		n := d.pad
		if n > int64(len(d.window)) {
			n = int64(len(d.window))
		}
		d.window = d.window[n:]
		d.pad -= n
		if d.pad > 0 {
			return nil, ErrNeedMoreData
		}
		d.state = stateNeedHeader
	}

	for d.held < core.RecordSize && len(d.window) > 0 {
		n := copy(d.scratch[d.held:], d.window)
		d.held += n
		d.window = d.window[n:]
	}
	if d.held < core.RecordSize {
		return nil, ErrNeedMoreData
	}

	block := d.scratch[:]
	d.held = 0

	h, err := core.Decode(block)
	if err != nil {
		if utils.Is(err, utils.NullRecord) {
			d.state = stateEnd
			d.window = nil
		}
		return nil, err
	}

	d.remaining = h.Size
	d.pad = core.Padding(h.Size)
	d.state = stateHavePayload
	return h, nil
}

// ReadPayload copies up to len(out) bytes of the current record's payload
// into out, returning how many bytes were copied. Once the payload is
// exhausted it silently drains the record's padding (which does not
// appear in out) and, once that drains too, returns to stateNeedHeader so
// the next Next call can decode the following header. Padding may span
// multiple Feed calls just like payload does.
//
// ReadPayload outside stateHavePayload is a programming error and returns
// Failure.
func (d *Decoder) ReadPayload(out []byte) (int, error) {
	if d.state != stateHavePayload {
		return 0, utils.New(utils.Failure, "ReadPayload called outside a payload record")
	}

	if d.remaining > 0 {
		n := int64(len(out))
		if n > d.remaining {
			n = d.remaining
		}
		if n > int64(len(d.window)) {
			n = int64(len(d.window))
		}
		copy(out[:n], d.window[:n])
		d.window = d.window[n:]
		d.remaining -= n
		return int(n), nil
	}

	for d.pad > 0 && len(d.window) > 0 {
		n := d.pad
		if n > int64(len(d.window)) {
			n = int64(len(d.window))
		}
		d.window = d.window[n:]
		d.pad -= n
	}
	if d.pad == 0 {
		d.state = stateNeedHeader
	}
	return 0, nil
}

// LinearDataAvailable returns how many unconsumed bytes remain in the
// current feed window.
func (d *Decoder) LinearDataAvailable() int {
	return len(d.window)
}

// FileDataRemaining returns how many payload bytes are still owed for the
// record currently being read.
func (d *Decoder) FileDataRemaining() int64 {
	return d.remaining
}
