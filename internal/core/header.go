// Package core provides the ustar/old-GNU record codec: encoding and
// decoding the 512-byte header block, its checksum, and the logical
// Header it represents. It does no I/O of its own; the backend and reader
// packages hand it bytes and get a Header back, or vice versa.
package core

import (
	"github.com/scigolib/ustar/internal/utils"
)

// RecordSize is the size of every tar block: header, payload chunk, or
// padding.
const RecordSize = utils.RecordSize

// Type flags recognized on the wire. Unknown flags are surfaced verbatim;
// the codec does not interpret them.
const (
	TypeRegA    = 0    // pre-POSIX NUL type flag for a regular file
	TypeReg     = '0'  // regular file
	TypeLink    = '1'  // hard link
	TypeSymlink = '2'  // symbolic link
	TypeChar    = '3'  // character device
	TypeBlock   = '4'  // block device
	TypeDir     = '5'  // directory
	TypeFifo    = '6'  // FIFO
	TypeCont    = '7'  // contiguous file
)

// DefaultMode is substituted when a caller passes a zero Mode to Encode.
const DefaultMode = 0664

// Field offsets and widths within the 512-byte record, per the ustar/v7
// layout this codec speaks.
const (
	nameOff, nameLen     = 0, 100
	modeOff, modeLen     = 100, 8
	uidOff, uidLen       = 108, 8
	gidOff, gidLen       = 116, 8
	sizeOff, sizeLen     = 124, 12
	mtimeOff, mtimeLen   = 136, 12
	chksumOff, chksumLen = 148, 8
	typeOff              = 156
	linkOff, linkLen     = 157, 100
)

// Header is the decoded form of a tar record: everything the logical data
// model (spec §3) carries about one archive entry.
type Header struct {
	Name     string
	LinkName string
	Mode     int64
	UID      int64
	GID      int64
	Size     int64
	ModTime  int64
	Typeflag byte
}

// isZero reports whether a 512-byte block is entirely zero: the null
// record sentinel that marks a gap, or half of the end-of-archive
// terminator.
func isZero(block []byte) bool {
	for _, b := range block {
		if b != 0 {
			return false
		}
	}
	return true
}

// checksum computes the classic tar checksum: the unsigned-byte sum of
// the whole record with the checksum field treated as eight ASCII spaces.
func checksum(block []byte) int64 {
	var sum int64
	for i, b := range block {
		if i >= chksumOff && i < chksumOff+chksumLen {
			sum += int64(' ')
			continue
		}
		sum += int64(b)
	}
	return sum
}

func cString(field []byte) string {
	for i, b := range field {
		if b == 0 {
			return string(field[:i])
		}
	}
	return string(field)
}

// Decode parses a 512-byte block into a Header. It returns
// utils.ErrNullRecord (not wrapped, so errors.Is/== both work) if the
// block is the all-zero sentinel, a *utils.Error of Kind BadChecksum if
// the checksum field is unparsable or does not match, Overflow if the
// size field exceeds utils.MaxOctal11, or Failure on any other malformed
// record.
func Decode(block []byte) (*Header, error) {
	if len(block) != RecordSize {
		return nil, utils.New(utils.Failure, "record is not 512 bytes")
	}
	if isZero(block) {
		return nil, utils.ErrNullRecord
	}

	wantChk, err := utils.ParseOctal(block[chksumOff : chksumOff+chksumLen])
	if err != nil {
		return nil, utils.Wrap(utils.BadChecksum, "parsing checksum field", err)
	}
	if gotChk := checksum(block); gotChk != wantChk {
		return nil, utils.New(utils.BadChecksum, "header checksum mismatch")
	}

	mode, err := utils.ParseOctal(block[modeOff : modeOff+modeLen])
	if err != nil {
		return nil, utils.Wrap(utils.Failure, "parsing mode field", err)
	}
	uid, err := utils.ParseOctal(block[uidOff : uidOff+uidLen])
	if err != nil {
		return nil, utils.Wrap(utils.Failure, "parsing uid field", err)
	}
	gid, err := utils.ParseOctal(block[gidOff : gidOff+gidLen])
	if err != nil {
		return nil, utils.Wrap(utils.Failure, "parsing gid field", err)
	}
	size, err := utils.ParseOctal(block[sizeOff : sizeOff+sizeLen])
	if err != nil {
		return nil, utils.Wrap(utils.Failure, "parsing size field", err)
	}
	if err := utils.ValidateSize(size); err != nil {
		return nil, err
	}
	mtime, err := utils.ParseOctal(block[mtimeOff : mtimeOff+mtimeLen])
	if err != nil {
		return nil, utils.Wrap(utils.Failure, "parsing mtime field", err)
	}

	return &Header{
		Name:     cString(block[nameOff : nameOff+nameLen]),
		LinkName: cString(block[linkOff : linkOff+linkLen]),
		Mode:     mode,
		UID:      uid,
		GID:      gid,
		Size:     size,
		ModTime:  mtime,
		Typeflag: block[typeOff],
	}, nil
}

// Encode renders h as a 512-byte record. A zero Mode encodes as
// DefaultMode, a zero Typeflag encodes as TypeReg, and a zero ModTime
// encodes as 0, matching the codec's defaulting policy. Encode returns
// Overflow if Name, LinkName, or Size do not fit their fields.
func Encode(h *Header) ([]byte, error) {
	if err := utils.ValidateName("name", h.Name, utils.MaxNameLen); err != nil {
		return nil, err
	}
	if err := utils.ValidateName("linkname", h.LinkName, utils.MaxLinkNameLen); err != nil {
		return nil, err
	}
	if err := utils.ValidateSize(h.Size); err != nil {
		return nil, err
	}

	block := make([]byte, RecordSize)
	copy(block[nameOff:nameOff+nameLen], h.Name)
	copy(block[linkOff:linkOff+linkLen], h.LinkName)

	mode := h.Mode
	if mode == 0 {
		mode = DefaultMode
	}
	if err := utils.FormatOctal(mode, block[modeOff:modeOff+modeLen]); err != nil {
		return nil, utils.Wrap(utils.Overflow, "encoding mode field", err)
	}
	if err := utils.FormatOctal(h.UID, block[uidOff:uidOff+uidLen]); err != nil {
		return nil, utils.Wrap(utils.Overflow, "encoding uid field", err)
	}
	if err := utils.FormatOctal(h.GID, block[gidOff:gidOff+gidLen]); err != nil {
		return nil, utils.Wrap(utils.Overflow, "encoding gid field", err)
	}
	if err := utils.FormatOctal(h.Size, block[sizeOff:sizeOff+sizeLen]); err != nil {
		return nil, utils.Wrap(utils.Overflow, "encoding size field", err)
	}
	if err := utils.FormatOctal(h.ModTime, block[mtimeOff:mtimeOff+mtimeLen]); err != nil {
		return nil, utils.Wrap(utils.Overflow, "encoding mtime field", err)
	}

	typeflag := h.Typeflag
	if typeflag == 0 {
		typeflag = TypeReg
	}
	block[typeOff] = typeflag

	// Classic POSIX checksum convention: spaces while summing, then a
	// six-digit octal value followed by NUL and a trailing space.
	for i := chksumOff; i < chksumOff+chksumLen; i++ {
		block[i] = ' '
	}
	sum := checksum(block)
	chkField := block[chksumOff : chksumOff+chksumLen]
	if err := utils.FormatOctal(sum, chkField[:7]); err != nil {
		return nil, utils.Wrap(utils.Failure, "encoding checksum field", err)
	}
	chkField[6] = 0
	chkField[7] = ' '

	return block, nil
}

// Padding returns the number of zero bytes that follow a payload of the
// given size to reach the next 512-byte boundary.
func Padding(size int64) int64 {
	rem := size % RecordSize
	if rem == 0 {
		return 0
	}
	return RecordSize - rem
}

// Terminator returns the two all-zero 512-byte records that mark the end
// of an archive.
func Terminator() []byte {
	return make([]byte, RecordSize*2)
}
