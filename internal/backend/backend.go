package backend

import "io"

// SeekReader is what the seekable Reader needs from its source: a file, an
// in-memory buffer, or anything else a caller wires up that also supports
// random access.
type SeekReader interface {
	io.Reader
	io.Seeker
	io.Closer
}

// Writer is what the seekable Writer needs from its destination: a file,
// a growable in-memory buffer, or a caller-supplied sink. Archive writes
// are strictly sequential, so no Seeker is required.
type Writer interface {
	io.Writer
	io.Closer
}
