package splice

import (
	"errors"
	"fmt"

	"gosplice/pkg/region"
)

var (
	// ErrOutOfBounds is matched by errors.Is for every *OutOfBoundsError.
	ErrOutOfBounds = errors.New("the selected region is out of bounds of the file size")
	// ErrBufferSize is returned when the buffer bound is below one byte.
	ErrBufferSize = errors.New("buffer size must be at least one byte")
	// ErrOverlap is matched by errors.Is for every *OverlapError.
	ErrOverlap = errors.New("regions overlap")
)

// OutOfBoundsError reports a region that ends past the current file length.
// It is returned before the file is touched.
type OutOfBoundsError struct {
	Region region.Region
	Size   int64
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("region %s ends at %d, past file size %d", e.Region, e.Region.End(), e.Size)
}

func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}

// OverlapError names two regions of a batch whose source ranges collide.
type OverlapError struct {
	A, B region.Region
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("regions %s and %s overlap", e.A, e.B)
}

func (e *OverlapError) Is(target error) bool {
	return target == ErrOverlap
}

// BatchError is returned by SpliceAll when one region fails. Applied regions
// are not rolled back: Applied of them were already written to the file.
type BatchError struct {
	Applied int
	Region  region.Region
	Err     error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("applying region %s after %d applied: %v", e.Region, e.Applied, e.Err)
}

func (e *BatchError) Unwrap() error {
	return e.Err
}
