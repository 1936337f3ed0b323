package ustar

import (
	"io"

	"github.com/scigolib/ustar/internal/backend"
	"github.com/scigolib/ustar/internal/core"
	"github.com/scigolib/ustar/internal/utils"
)

// Reader iterates a seekable tar archive: a file, an in-memory buffer, or
// a caller-supplied custom backend with read+seek. It supports name
// lookup and re-reading a header without advancing past it.
type Reader struct {
	sr     backend.SeekReader
	offset int64 // start of the current (not yet advanced-past) header

	header     *core.Header // cached result of the last ReadHeader, cleared by Next/Rewind
	payloadPos int64        // bytes of the current payload already delivered via ReadData
}

// OpenFile opens path for reading.
func OpenFile(path string) (*Reader, error) {
	sr, err := backend.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return newReader(sr), nil
}

// OpenMemory opens an archive held entirely in data. The slice is not
// copied; the caller must keep it live until Close.
func OpenMemory(data []byte) (*Reader, error) {
	return newReader(backend.NewMemoryReader(data)), nil
}

// OpenCustom opens an archive over caller-supplied read/seek/close
// callbacks.
func OpenCustom(cr *backend.CustomReader) (*Reader, error) {
	return newReader(cr), nil
}

func newReader(sr backend.SeekReader) *Reader {
	return &Reader{sr: sr}
}

// ReadHeader reads the 512-byte block at the current offset and decodes
// it, without advancing past it: calling ReadHeader twice in a row
// returns the cached header again. It returns ErrEndOfArchive on the
// zero-record terminator.
func (r *Reader) ReadHeader() (*Header, error) {
	if r.header != nil {
		return r.header, nil
	}

	if _, err := r.sr.Seek(r.offset, io.SeekStart); err != nil {
		return nil, utils.Wrap(utils.SeekFail, "seeking to header", err)
	}

	block := utils.GetBuffer(core.RecordSize)
	defer utils.ReleaseBuffer(block)

	if _, err := io.ReadFull(r.sr, block); err != nil {
		return nil, utils.Wrap(utils.ReadFail, "reading header block", err)
	}

	h, err := core.Decode(block)
	if err != nil {
		return nil, err
	}

	r.header = h
	r.payloadPos = 0
	return h, nil
}

// ReadData reads len(buf) bytes of the current record's payload into
// buf. ReadHeader must have been called for the current record. Reading
// past the header's declared size is a fatal error; the reader refuses
// rather than crossing into the next record.
func (r *Reader) ReadData(buf []byte) (int, error) {
	if r.header == nil {
		return 0, utils.New(utils.Failure, "ReadData called before ReadHeader")
	}
	remaining := r.header.Size - r.payloadPos
	if int64(len(buf)) > remaining {
		return 0, utils.New(utils.Overflow, "read would cross past declared payload size")
	}

	if _, err := r.sr.Seek(r.offset+core.RecordSize+r.payloadPos, io.SeekStart); err != nil {
		return 0, utils.Wrap(utils.SeekFail, "seeking into payload", err)
	}
	n, err := io.ReadFull(r.sr, buf)
	if err != nil {
		return n, utils.Wrap(utils.ReadFail, "reading payload", err)
	}
	r.payloadPos += int64(n)
	return n, nil
}

// Next advances the cursor past the current record's header and its
// padded payload, so the next ReadHeader call decodes the following
// record.
func (r *Reader) Next() error {
	size := int64(0)
	if r.header != nil {
		size = r.header.Size
	}
	r.offset += core.RecordSize + size + core.Padding(size)
	r.header = nil
	r.payloadPos = 0
	return nil
}

// Find rewinds to the archive origin, then iterates headers until one
// whose name equals name is found, leaving the cursor positioned so
// ReadData works. It returns a NotFound error if the archive is
// exhausted without a match.
func (r *Reader) Find(name string) (*Header, error) {
	if err := r.Rewind(); err != nil {
		return nil, err
	}
	for {
		h, err := r.ReadHeader()
		if err != nil {
			if utils.Is(err, utils.NullRecord) {
				return nil, utils.New(utils.NotFound, "name not found: "+name)
			}
			return nil, err
		}
		if h.Name == name {
			return h, nil
		}
		if err := r.Next(); err != nil {
			return nil, err
		}
	}
}

// Offset returns the byte offset of the current (not yet advanced-past)
// header, for callers that want to report or index by record position.
func (r *Reader) Offset() int64 {
	return r.offset
}

// Rewind seeks back to the archive origin and discards any cached
// header state.
func (r *Reader) Rewind() error {
	r.offset = 0
	r.header = nil
	r.payloadPos = 0
	return nil
}

// List returns every header in the archive, in order, leaving the
// cursor rewound to the origin afterward.
func (r *Reader) List() ([]Header, error) {
	if err := r.Rewind(); err != nil {
		return nil, err
	}
	defer func() { _ = r.Rewind() }()

	var headers []Header
	for {
		h, err := r.ReadHeader()
		if err != nil {
			if utils.Is(err, utils.NullRecord) {
				return headers, nil
			}
			return nil, err
		}
		headers = append(headers, *h)
		if err := r.Next(); err != nil {
			return nil, err
		}
	}
}

// Close releases the underlying backend.
func (r *Reader) Close() error {
	return r.sr.Close()
}
