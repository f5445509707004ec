package fsx

import (
	"os"
	"time"

	"github.com/juju/errors"
)

// TimeOptions selects which timestamps CopyTime carries over.
type TimeOptions struct {
	RetainModification bool
	RetainAccess       bool
}

// CopyTime gives to the modification and/or access time of from, as
// selected by opts. Timestamps that are not retained keep their current value.
func CopyTime(from, to string, opts TimeOptions) error {
	if !opts.RetainModification && !opts.RetainAccess {
		return nil
	}
	atime, mtime, err := Times(from)
	if err != nil {
		return err
	}
	return SetTimes(to, atime, mtime, opts)
}

// SetTimes sets the timestamps of path selected by opts. Use it with times
// read by Times when the source is gone by the time they are applied, as
// after a move.
func SetTimes(path string, atime, mtime time.Time, opts TimeOptions) error {
	if !opts.RetainModification && !opts.RetainAccess {
		return nil
	}
	curA, curM, err := Times(path)
	if err != nil {
		return err
	}
	if !opts.RetainModification {
		mtime = curM
	}
	if !opts.RetainAccess {
		atime = curA
	}
	return errors.Annotatef(os.Chtimes(path, atime, mtime), "setting times of %s", path)
}

// Times returns the access and modification time of path.
func Times(path string) (atime, mtime time.Time, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, time.Time{}, errors.Annotatef(err, "reading times of %s", path)
	}
	return accessTime(path, info), info.ModTime(), nil
}
