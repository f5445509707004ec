// Package fsx holds the whole-file and directory helpers around the splice
// engine: copying and moving with progress reports, creating and removing
// directories, retaining timestamps and comparing contents.
package fsx

import (
	"context"
	"io"
	"os"

	"github.com/juju/errors"
	"go.uber.org/zap"
)

// DefaultBufferSize is the copy chunk size used by NewCopyOptions.
const DefaultBufferSize = 64000

// CopyOptions configures how files and directories are copied or moved.
type CopyOptions struct {
	Overwrite  bool // replace existing destination files
	SkipExist  bool // leave existing destination files alone without failing
	BufferSize int  // chunk size for progress-reporting copies
}

// NewCopyOptions returns options that refuse to overwrite and copy in
// DefaultBufferSize chunks.
func NewCopyOptions() CopyOptions {
	return CopyOptions{BufferSize: DefaultBufferSize}
}

func (o CopyOptions) bufferSize() int {
	if o.BufferSize < 1 {
		return DefaultBufferSize
	}
	return o.BufferSize
}

// chunkSize is the copy buffer for a file of fileSize bytes, capped at the
// file size.
func (o CopyOptions) chunkSize(fileSize int64) int {
	n := o.bufferSize()
	if fileSize < int64(n) {
		n = int(max(fileSize, 1))
	}
	return n
}

// TransitProcess is a progress snapshot. For single-file operations the
// file fields mirror the totals.
type TransitProcess struct {
	CopiedBytes     uint64
	TotalBytes      uint64
	FileBytesCopied uint64
	FileTotalBytes  uint64
	FileName        string
}

// ProgressFunc receives a snapshot after every copied chunk.
type ProgressFunc func(TransitProcess)

var logger = zap.NewNop()

// SetLogger replaces the package logger. A nil logger disables logging.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// CopyFile copies the contents and permission bits of from to to and
// returns the number of bytes copied. It fails with a NotFound error when
// from is missing, NotValid when from is not a regular file and
// AlreadyExists when to exists, unless opts allow overwriting or skipping.
// A skipped copy returns 0 and no error.
func CopyFile(from, to string, opts CopyOptions) (uint64, error) {
	return CopyFileWithProgress(context.Background(), from, to, opts, nil)
}

// CopyFileWithProgress is CopyFile reporting progress after every chunk of
// opts.BufferSize bytes. ctx is checked between chunks; on any error the
// partially written destination is removed.
func CopyFileWithProgress(ctx context.Context, from, to string, opts CopyOptions, progress ProgressFunc) (uint64, error) {
	info, skip, err := checkCopy(from, to, opts)
	if err != nil || skip {
		return 0, err
	}

	src, err := os.Open(from)
	if err != nil {
		return 0, errors.Annotatef(err, "opening %s", from)
	}
	defer src.Close()

	dst, err := os.OpenFile(to, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return 0, errors.Annotatef(err, "creating %s", to)
	}

	total := uint64(info.Size())
	copied, err := copyChunks(ctx, dst, src, opts.chunkSize(info.Size()), func(n uint64) {
		if progress != nil {
			progress(TransitProcess{
				CopiedBytes:     n,
				TotalBytes:      total,
				FileBytesCopied: n,
				FileTotalBytes:  total,
				FileName:        info.Name(),
			})
		}
	})
	if err == nil {
		err = dst.Chmod(info.Mode().Perm())
	}
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(to)
		return copied, errors.Annotatef(err, "copying %s to %s", from, to)
	}

	logger.Debug("copied file", zap.String("from", from), zap.String("to", to), zap.Uint64("bytes", copied))
	return copied, nil
}

func copyChunks(ctx context.Context, dst io.Writer, src io.Reader, bufferSize int, report func(uint64)) (uint64, error) {
	buf := make([]byte, bufferSize)
	var copied uint64
	for {
		if err := ctx.Err(); err != nil {
			return copied, err
		}
		n, err := src.Read(buf)
		if n > 0 {
			if _, werr := dst.Write(buf[:n]); werr != nil {
				return copied, werr
			}
			copied += uint64(n)
			report(copied)
		}
		if err == io.EOF {
			return copied, nil
		}
		if err != nil {
			return copied, err
		}
	}
}

// checkCopy validates a file copy. skip is true when the destination exists
// and opts ask to leave it alone.
func checkCopy(from, to string, opts CopyOptions) (os.FileInfo, bool, error) {
	info, err := os.Stat(from)
	if os.IsNotExist(err) {
		return nil, false, errors.NotFoundf("path %q", from)
	}
	if err != nil {
		return nil, false, errors.Annotatef(err, "inspecting %s", from)
	}
	if !info.Mode().IsRegular() {
		return nil, false, errors.NotValidf("path %q as a file", from)
	}
	if toInfo, err := os.Stat(to); err == nil && os.SameFile(info, toInfo) {
		return nil, false, errors.NotValidf("copying %q onto itself", from)
	}
	if !opts.Overwrite && exists(to) {
		if opts.SkipExist {
			return info, true, nil
		}
		return nil, false, errors.AlreadyExistsf("path %q", to)
	}
	return info, false, nil
}

// MoveFile copies from to to and removes from. When the copy is skipped
// because to exists, from is kept.
func MoveFile(from, to string, opts CopyOptions) (uint64, error) {
	return MoveFileWithProgress(context.Background(), from, to, opts, nil)
}

// MoveFileWithProgress is MoveFile reporting progress like CopyFileWithProgress.
func MoveFileWithProgress(ctx context.Context, from, to string, opts CopyOptions, progress ProgressFunc) (uint64, error) {
	keep := opts.SkipExist && !opts.Overwrite && exists(to)
	n, err := CopyFileWithProgress(ctx, from, to, opts, progress)
	if err != nil {
		return n, errors.Trace(err)
	}
	if !keep {
		if err := RemoveFile(from); err != nil {
			return n, errors.Trace(err)
		}
	}
	return n, nil
}

// RemoveFile removes a file. A missing file is not an error.
func RemoveFile(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errors.Annotatef(err, "removing %s", path)
	}
	return nil
}

// ReadToString returns the whole content of a file.
func ReadToString(path string) (string, error) {
	if err := notADirectory(path); err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", errors.NotFoundf("path %q", path)
	}
	if err != nil {
		return "", errors.Annotatef(err, "reading %s", path)
	}
	return string(data), nil
}

// WriteAll creates or truncates path and writes content into it.
func WriteAll(path, content string) error {
	if err := notADirectory(path); err != nil {
		return err
	}
	return errors.Annotatef(os.WriteFile(path, []byte(content), 0644), "writing %s", path)
}

// OpenRW opens an existing regular file for reading and writing without
// truncating it. The caller closes the returned file.
func OpenRW(path string) (*os.File, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, errors.NotFoundf("path %q", path)
	}
	if err != nil {
		return nil, errors.Annotatef(err, "inspecting %s", path)
	}
	if !info.Mode().IsRegular() {
		return nil, errors.NotValidf("path %q as a file", path)
	}
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, errors.Annotatef(err, "opening %s", path)
	}
	return f, nil
}

func notADirectory(path string) error {
	if info, err := os.Stat(path); err == nil && !info.Mode().IsRegular() {
		return errors.NotValidf("path %q as a file", path)
	}
	return nil
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
