package utils

import "sync"

// RecordSize is the on-wire size of every tar block: a header, a payload
// chunk, or padding. The pool below is sized to it since it is the only
// buffer shape the codec's hot path ever needs.
const RecordSize = 512

var bufferPool = sync.Pool{
	New: func() interface{} {
		return make([]byte, 0, RecordSize)
	},
}

// GetBuffer returns a byte slice of length size from the pool, growing the
// backing array if the pooled buffer is too small.
func GetBuffer(size int) []byte {
	buf := bufferPool.Get().([]byte)
	if cap(buf) < size {
		return make([]byte, size)
	}
	return buf[:size]
}

// ReleaseBuffer returns a buffer to the pool.
func ReleaseBuffer(buf []byte) {
	//nolint:staticcheck // SA6002: slice descriptor copy is acceptable for sync.Pool
	bufferPool.Put(buf[:0])
}
