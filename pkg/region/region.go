package region

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNegative is returned by Validate when Begin or Len is below zero.
	ErrNegative = errors.New("region offset and length must not be negative")
	// ErrOverflow is returned by Validate when Begin+Len does not fit in an int64.
	ErrOverflow = errors.New("region end overflows int64")
)

// Kind classifies how a region changes the length of the file it is applied to.
type Kind int

const (
	Same   Kind = iota // replacement has the same length as the removed bytes
	Grow               // replacement is longer, the tail moves toward the end
	Shrink             // replacement is shorter, the tail moves toward the start
)

func (k Kind) String() string {
	switch k {
	case Grow:
		return "grow"
	case Shrink:
		return "shrink"
	default:
		return "same"
	}
}

// Region describes one edit: replace Len bytes starting at Begin with Data.
// Len == 0 is a pure insertion, an empty Data is a pure deletion.
type Region struct {
	Begin int64  // Byte offset of the first replaced byte
	Len   int64  // Number of original bytes to remove
	Data  []byte // Replacement bytes
}

// End returns the offset just past the replaced bytes.
func (r Region) End() int64 {
	return r.Begin + r.Len
}

// Delta returns how many bytes the file grows (positive) or shrinks (negative).
func (r Region) Delta() int64 {
	return int64(len(r.Data)) - r.Len
}

// Kind reports whether applying r grows, shrinks or keeps the file length.
func (r Region) Kind() Kind {
	switch d := r.Delta(); {
	case d > 0:
		return Grow
	case d < 0:
		return Shrink
	default:
		return Same
	}
}

// Validate checks the parts of a region that do not depend on the file.
// The file-length bound is checked when the region is applied.
func (r Region) Validate() error {
	if r.Begin < 0 || r.Len < 0 {
		return fmt.Errorf("%w: %s", ErrNegative, r)
	}
	if r.Begin > math.MaxInt64-r.Len {
		return fmt.Errorf("%w: begin %d, len %d", ErrOverflow, r.Begin, r.Len)
	}
	return nil
}

// Overlaps reports whether r and o touch the same original bytes. A pure
// insertion overlaps a region only when it falls strictly inside it.
func (r Region) Overlaps(o Region) bool {
	switch {
	case r.Len == 0 && o.Len == 0:
		return false
	case r.Len == 0:
		return o.Begin < r.Begin && r.Begin < o.End()
	case o.Len == 0:
		return r.Begin < o.Begin && o.Begin < r.End()
	default:
		return r.Begin < o.End() && o.Begin < r.End()
	}
}

// String returns a compact representation, e.g. "[4,6)->3 bytes".
func (r Region) String() string {
	return fmt.Sprintf("[%d,%d)->%d bytes", r.Begin, r.End(), len(r.Data))
}
