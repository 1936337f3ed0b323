// Package ustar is a portable codec for ustar/old-GNU tar archives.
//
// It provides three access modalities over the same record format:
//
//   - Reader/Writer opened on a file or an in-memory buffer, which can
//     seek and therefore support Find and random re-reads.
//   - Reader/Writer opened on a caller-supplied set of read/write/seek
//     callbacks (a custom backend), for hosts that want to drive I/O
//     themselves.
//   - A linear (non-seekable) decoder, in the internal/linear package,
//     for streams that can only be pushed forward once.
//
// Every failure mode is reported through a typed *Error carrying a Kind
// (see Kind and its constants), so callers can branch on error category
// with errors.As without string matching.
package ustar
