package ustar

import "github.com/scigolib/ustar/internal/utils"

// Kind categorizes a failure the way the underlying codec and backends
// report it, independent of its string message.
type Kind = utils.Kind

// Error kinds. Success is never returned as an error value; it exists so
// Kind has a defined zero value. NullRecord is informational, like
// io.EOF: it marks the end of an archive, not a corrupt one.
const (
	Success     = utils.Success
	Failure     = utils.Failure
	OpenFail    = utils.OpenFail
	ReadFail    = utils.ReadFail
	WriteFail   = utils.WriteFail
	SeekFail    = utils.SeekFail
	BadChecksum = utils.BadChecksum
	NullRecord  = utils.NullRecord
	NotFound    = utils.NotFound
	Overflow    = utils.Overflow
	Memory      = utils.Memory
)

// Error is the concrete error type every exported operation returns on
// failure. Use errors.As to recover one and inspect its Kind, or
// errors.Is against ErrEndOfArchive for the end-of-stream sentinel.
type Error = utils.Error

// ErrEndOfArchive is returned by Reader.ReadHeader (and by the linear
// decoder's Next) when an all-zero record, the start of the terminator,
// is reached. It is not a failure: callers should treat it like io.EOF.
var ErrEndOfArchive = utils.ErrNullRecord

// KindOf extracts the Kind from err, walking its Unwrap chain. It returns
// Success for a nil error and Failure for an error this package did not
// produce.
func KindOf(err error) Kind {
	return utils.KindOf(err)
}
