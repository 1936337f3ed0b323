package utils

import (
	"fmt"
	"math"
)

// MaxOctal11 is the largest value that fits in an 11-digit octal field
// (the size and mtime fields are 12 bytes wide, NUL-terminated, leaving 11
// digits): 8^11 - 1. A decoded or requested payload size beyond this would
// silently truncate in the base ustar format, so the codec rejects it
// instead (see spec §9 Open Questions).
const MaxOctal11 int64 = 8589934591

// MaxNameLen and MaxLinkNameLen are the longest name the 100-byte name and
// linkname fields can hold once a trailing NUL is reserved.
const (
	MaxNameLen     = 99
	MaxLinkNameLen = 99
)

// ValidateSize checks that a payload size is representable in the ustar
// size field and cannot itself overflow int64 arithmetic the codec does
// on it (e.g. computing padded record length).
func ValidateSize(size int64) error {
	if size < 0 {
		return New(Overflow, fmt.Sprintf("negative size %d", size))
	}
	if size > MaxOctal11 {
		return New(Overflow, fmt.Sprintf("size %d exceeds ustar size field maximum %d", size, MaxOctal11))
	}
	return nil
}

// CheckAddOverflow reports whether a+b would overflow int64.
func CheckAddOverflow(a, b int64) error {
	if a > 0 && b > math.MaxInt64-a {
		return New(Overflow, fmt.Sprintf("addition overflow: %d + %d", a, b))
	}
	if a < 0 && b < math.MinInt64-a {
		return New(Overflow, fmt.Sprintf("addition underflow: %d + %d", a, b))
	}
	return nil
}

// SafeAdd adds a and b, returning an Overflow error instead of wrapping.
func SafeAdd(a, b int64) (int64, error) {
	if err := CheckAddOverflow(a, b); err != nil {
		return 0, err
	}
	return a + b, nil
}

// ValidateName checks a name or linkname against the field width the
// ustar format reserves for it.
func ValidateName(field, name string, max int) error {
	if len(name) > max {
		return New(Overflow, fmt.Sprintf("%s %q exceeds %d-byte field", field, name, max))
	}
	return nil
}
