package backend

import (
	"os"

	"github.com/scigolib/ustar/internal/utils"
)

// OpenFile opens path for reading and returns a SeekReader over it.
func OpenFile(path string) (SeekReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, utils.Wrap(utils.OpenFail, "opening archive file", err)
	}
	return f, nil
}

// CreateFile creates (truncating if present) path for writing and returns
// a Writer over it.
func CreateFile(path string) (Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, utils.Wrap(utils.OpenFail, "creating archive file", err)
	}
	return f, nil
}
