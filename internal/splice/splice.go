// Package splice replaces byte ranges of an open file in place while keeping
// memory use bounded by a caller-chosen buffer size.
//
// The file is not modified atomically: an I/O error in the middle of a splice
// can leave the tail partially shifted.
package splice

import (
	"io"

	"go.uber.org/zap"

	"gosplice/pkg/region"
)

// File is the handle the engine works on. It is owned by the caller and
// never closed here. *os.File satisfies it.
type File interface {
	io.ReadWriteSeeker
	Truncate(size int64) error
	Sync() error
}

// direction of a tail shift.
type direction int

const (
	forward  direction = iota // tail moves toward the start, copy front to back
	backward                  // tail moves toward the end, copy back to front
)

func (d direction) String() string {
	if d == backward {
		return "backward"
	}
	return "forward"
}

var logger = zap.NewNop()

// SetLogger replaces the package logger. A nil logger disables logging.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// Splice replaces bytes [r.Begin, r.End()) of f with r.Data, growing or
// shrinking the file. At most bufferSize bytes are held in memory at once.
//
// A region ending past the file size is rejected with an *OutOfBoundsError
// before anything is written. Errors from f are returned as they are.
func Splice(f File, r region.Region, bufferSize int) error {
	if bufferSize < 1 {
		return ErrBufferSize
	}
	if err := r.Validate(); err != nil {
		return err
	}
	size, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return err
	}
	if r.Begin > size || r.Len > size-r.Begin {
		return &OutOfBoundsError{Region: r, Size: size}
	}

	delta := r.Delta()
	tail := size - r.End()
	logger.Debug("splicing region",
		zap.Int64("begin", r.Begin),
		zap.Int64("len", r.Len),
		zap.Int("data_len", len(r.Data)),
		zap.Int64("file_size", size),
		zap.Stringer("kind", r.Kind()))

	if delta != 0 && tail > 0 {
		dir := forward
		if delta > 0 {
			dir = backward
		}
		buf := make([]byte, min(int64(bufferSize), tail))
		if err := shiftWindow(f, r.End(), tail, delta, dir, buf); err != nil {
			return err
		}
	}

	if err := writeAt(f, r.Begin, r.Data); err != nil {
		return err
	}
	if err := f.Sync(); err != nil {
		return err
	}
	// Growing already extended the file through the tail writes.
	if delta < 0 {
		return f.Truncate(size + delta)
	}
	return nil
}

// shiftWindow moves the length bytes starting at start by delta bytes, one
// buffer-sized chunk at a time. Moving forward the write cursor trails the read
// cursor, so chunks are taken front to back; moving backward the write cursor
// leads, so chunks are taken from the far end first. Either way every chunk is
// read before a later write can land on it.
func shiftWindow(f File, start, length, delta int64, dir direction, buf []byte) error {
	var moved int64
	for moved < length {
		n := min(int64(len(buf)), length-moved)
		off := start + moved
		if dir == backward {
			off = start + length - moved - n
		}
		chunk := buf[:n]
		if err := readAt(f, off, chunk); err != nil {
			return err
		}
		if err := writeAt(f, off+delta, chunk); err != nil {
			return err
		}
		moved += n
	}
	logger.Debug("shifted tail",
		zap.Int64("from", start),
		zap.Int64("bytes", length),
		zap.Int64("delta", delta),
		zap.Stringer("direction", dir))
	return nil
}

func readAt(f File, off int64, p []byte) error {
	if _, err := f.Seek(off, io.SeekStart); err != nil {
		return err
	}
	_, err := io.ReadFull(f, p)
	return err
}

func writeAt(f File, off int64, p []byte) error {
	if _, err := f.Seek(off, io.SeekStart); err != nil {
		return err
	}
	n, err := f.Write(p)
	if err != nil {
		return err
	}
	if n < len(p) {
		return io.ErrShortWrite
	}
	return nil
}
