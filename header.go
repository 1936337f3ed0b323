package ustar

import "github.com/scigolib/ustar/internal/core"

// Header is the logical record every archive entry carries: name,
// ownership, size, modification time, and the tar type flag. It is the
// public face of internal/core.Header.
type Header = core.Header

// Type flags identifying what kind of entry a Header describes.
const (
	TypeReg     = core.TypeReg
	TypeLink    = core.TypeLink
	TypeSymlink = core.TypeSymlink
	TypeChar    = core.TypeChar
	TypeBlock   = core.TypeBlock
	TypeDir     = core.TypeDir
	TypeFifo    = core.TypeFifo
	TypeCont    = core.TypeCont
)
