package utils

import "strconv"

// ParseOctal decodes a right-justified, NUL- or space-terminated octal
// ASCII field (mode, uid, gid, size, mtime). Leading spaces and NULs are
// skipped; scanning stops at the first NUL, space, or the end of field.
// An empty or non-octal field is a fatal parse error per the header codec
// design.
func ParseOctal(field []byte) (int64, error) {
	i := 0
	for i < len(field) && (field[i] == ' ' || field[i] == 0) {
		i++
	}
	start := i
	for i < len(field) && field[i] != 0 && field[i] != ' ' {
		i++
	}
	if i == start {
		return 0, New(Failure, "empty octal field")
	}
	v, err := strconv.ParseInt(string(field[start:i]), 8, 64)
	if err != nil {
		return 0, Wrap(Failure, "invalid octal field", err)
	}
	return v, nil
}

// FormatOctal writes v into field as a zero-padded octal number occupying
// all but the field's last byte, NUL-terminated, per the classic tar
// numeric-field convention. It returns Overflow if v does not fit.
func FormatOctal(v int64, field []byte) error {
	if v < 0 {
		return New(Overflow, "cannot encode negative value as octal")
	}
	width := len(field) - 1
	digits := strconv.FormatInt(v, 8)
	if len(digits) > width {
		return New(Overflow, "value does not fit in octal field")
	}
	for i := range field {
		field[i] = 0
	}
	pad := width - len(digits)
	for i := 0; i < pad; i++ {
		field[i] = '0'
	}
	copy(field[pad:width], digits)
	return nil
}
