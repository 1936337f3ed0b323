// Package utils provides helpers shared across the ustar codec: the typed
// error surface, a scratch-buffer pool, octal field codecs, and overflow
// guards for attacker- or caller-controlled sizes.
package utils

import "fmt"

// Kind enumerates the error conditions a codec operation can signal: a
// small closed set of sentinels rather than ad-hoc error strings, so
// callers can branch on what happened instead of parsing messages.
type Kind int

// Error kinds. Success is never constructed as an error value; it exists
// so Kind's zero value has a name.
const (
	Success Kind = iota
	Failure
	OpenFail
	ReadFail
	WriteFail
	SeekFail
	BadChecksum
	NullRecord
	NotFound
	Overflow
	Memory
)

var kindNames = map[Kind]string{
	Success:     "SUCCESS",
	Failure:     "FAILURE",
	OpenFail:    "OPENFAIL",
	ReadFail:    "READFAIL",
	WriteFail:   "WRITEFAIL",
	SeekFail:    "SEEKFAIL",
	BadChecksum: "BADCHKSUM",
	NullRecord:  "NULLRECORD",
	NotFound:    "NOTFOUND",
	Overflow:    "OVERFLOW",
	Memory:      "MEMORY",
}

// String returns the short ASCII name for the kind, e.g. "BADCHKSUM".
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// Error is a wrapped, typed codec error: a Kind (for callers that branch
// on error class), a human-readable context, and an optional cause.
type Error struct {
	Kind    Kind
	Context string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Context, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Context)
}

// Unwrap exposes the wrapped cause to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a contextual error of the given kind with no wrapped cause.
func New(kind Kind, context string) error {
	return &Error{Kind: kind, Context: context}
}

// Wrap creates a contextual error of the given kind around cause. Wrap
// returns nil if cause is nil, so callers can write
// `return utils.Wrap(utils.ReadFail, "...", err)` unconditionally.
func Wrap(kind Kind, context string, cause error) error {
	if cause == nil {
		return nil
	}
	return &Error{Kind: kind, Context: context, Cause: cause}
}

// KindOf reports the Kind of err: Success if err is nil, otherwise the
// Kind of the first *Error found walking err's Unwrap chain, or Failure if
// the chain holds no *Error.
func KindOf(err error) Kind {
	if err == nil {
		return Success
	}
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	if u, ok := err.(interface{ Unwrap() error }); ok {
		return KindOf(u.Unwrap())
	}
	return Failure
}

// Is reports whether err, or anything it wraps, is a *Error of the given
// kind. This is the typed-error-kind analogue of errors.Is for a specific
// sentinel: callers that only care about "was this a checksum failure"
// use Is(err, BadChecksum) instead of comparing against a singleton value.
func Is(err error, kind Kind) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.Kind == kind {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// ErrNullRecord is the sentinel returned by the header codec when it reads
// an all-zero record. It is not a failure: callers pattern-match on it to
// detect the normal end of an archive. The codec always returns this exact
// value, never a freshly built copy, so `err == ErrNullRecord` and
// `errors.Is(err, ErrNullRecord)` both work, the same way callers compare
// against io.EOF.
var ErrNullRecord = &Error{Kind: NullRecord, Context: "end of archive"}
