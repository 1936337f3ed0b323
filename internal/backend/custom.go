package backend

import "github.com/scigolib/ustar/internal/utils"

// CustomReader adapts caller-supplied callbacks to the SeekReader
// interface, for hosts that want to drive I/O themselves (a ring buffer,
// a network socket wrapper, an instrumented pass-through) without
// implementing a full os.File-like type.
//
// A nil ReadFunc or SeekFunc is a programming error on the caller's part
// and surfaces as a Failure when invoked; a nil CloseFunc makes Close a
// no-op.
type CustomReader struct {
	ReadFunc  func(p []byte) (int, error)
	SeekFunc  func(offset int64, whence int) (int64, error)
	CloseFunc func() error
}

func (c *CustomReader) Read(p []byte) (int, error) {
	if c.ReadFunc == nil {
		return 0, utils.New(utils.Failure, "custom backend has no ReadFunc")
	}
	return c.ReadFunc(p)
}

func (c *CustomReader) Seek(offset int64, whence int) (int64, error) {
	if c.SeekFunc == nil {
		return 0, utils.New(utils.Failure, "custom backend has no SeekFunc")
	}
	return c.SeekFunc(offset, whence)
}

func (c *CustomReader) Close() error {
	if c.CloseFunc == nil {
		return nil
	}
	return c.CloseFunc()
}

// CustomWriter adapts caller-supplied callbacks to the Writer interface.
type CustomWriter struct {
	WriteFunc func(p []byte) (int, error)
	CloseFunc func() error
}

func (c *CustomWriter) Write(p []byte) (int, error) {
	if c.WriteFunc == nil {
		return 0, utils.New(utils.Failure, "custom backend has no WriteFunc")
	}
	return c.WriteFunc(p)
}

func (c *CustomWriter) Close() error {
	if c.CloseFunc == nil {
		return nil
	}
	return c.CloseFunc()
}
