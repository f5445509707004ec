package fsx

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/juju/errors"
	"go.uber.org/zap"
)

// CreateDir creates a single directory. With erase set an existing path is
// removed first.
func CreateDir(path string, erase bool) error {
	if erase {
		if err := RemoveDir(path); err != nil {
			return errors.Trace(err)
		}
	}
	return errors.Annotatef(os.Mkdir(path, 0755), "creating %s", path)
}

// CreateAll creates a directory and any missing parents. With erase set an
// existing path is removed first.
func CreateAll(path string, erase bool) error {
	if erase {
		if err := RemoveDir(path); err != nil {
			return errors.Trace(err)
		}
	}
	return errors.Annotatef(os.MkdirAll(path, 0755), "creating %s", path)
}

// RemoveDir removes a directory tree. A missing path is not an error.
func RemoveDir(path string) error {
	return errors.Annotatef(os.RemoveAll(path), "removing %s", path)
}

// Content lists everything below a path. Directories include the root
// itself; Size is the total size of all regular files.
type Content struct {
	Size        uint64
	Files       []string
	Directories []string
}

// DirContent walks path. For a regular file the result holds just that file.
func DirContent(path string) (*Content, error) {
	c := &Content{}
	err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			c.Directories = append(c.Directories, p)
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		c.Files = append(c.Files, p)
		c.Size += uint64(info.Size())
		return nil
	})
	if os.IsNotExist(err) {
		return nil, errors.NotFoundf("path %q", path)
	}
	if err != nil {
		return nil, errors.Annotatef(err, "walking %s", path)
	}
	return c, nil
}

// CopyDir copies the directory from into to, so its content ends up below
// filepath.Join(to, filepath.Base(from)). Files follow the same exist rules
// as CopyFile.
func CopyDir(from, to string, opts CopyOptions) (uint64, error) {
	return CopyDirWithProgress(context.Background(), from, to, opts, nil)
}

// CopyDirWithProgress is CopyDir reporting progress after every chunk, with
// CopiedBytes and TotalBytes covering the whole tree.
func CopyDirWithProgress(ctx context.Context, from, to string, opts CopyOptions, progress ProgressFunc) (uint64, error) {
	dest, err := dirDestination(from, to)
	if err != nil {
		return 0, err
	}
	content, err := DirContent(from)
	if err != nil {
		return 0, errors.Trace(err)
	}

	for _, dir := range content.Directories {
		rel, err := filepath.Rel(from, dir)
		if err != nil {
			return 0, errors.Trace(err)
		}
		if err := os.MkdirAll(filepath.Join(dest, rel), 0755); err != nil {
			return 0, errors.Annotatef(err, "creating %s", filepath.Join(dest, rel))
		}
	}

	var copied uint64
	for _, file := range content.Files {
		rel, err := filepath.Rel(from, file)
		if err != nil {
			return copied, errors.Trace(err)
		}
		done := copied
		n, err := CopyFileWithProgress(ctx, file, filepath.Join(dest, rel), opts, func(tp TransitProcess) {
			if progress == nil {
				return
			}
			tp.CopiedBytes = done + tp.FileBytesCopied
			tp.TotalBytes = content.Size
			tp.FileName = rel
			progress(tp)
		})
		copied += n
		if err != nil {
			return copied, errors.Trace(err)
		}
	}

	logger.Debug("copied directory",
		zap.String("from", from),
		zap.String("to", dest),
		zap.Int("files", len(content.Files)),
		zap.Uint64("bytes", copied))
	return copied, nil
}

// MoveDir copies from into to and removes from afterwards. When SkipExist
// is set without Overwrite and the destination directory already exists,
// from is kept since some of its files may not have been copied.
func MoveDir(from, to string, opts CopyOptions) (uint64, error) {
	return MoveDirWithProgress(context.Background(), from, to, opts, nil)
}

// MoveDirWithProgress is MoveDir reporting progress like CopyDirWithProgress.
func MoveDirWithProgress(ctx context.Context, from, to string, opts CopyOptions, progress ProgressFunc) (uint64, error) {
	dest, err := dirDestination(from, to)
	if err != nil {
		return 0, err
	}
	keep := opts.SkipExist && !opts.Overwrite && exists(dest)

	n, err := CopyDirWithProgress(ctx, from, to, opts, progress)
	if err != nil {
		return n, errors.Trace(err)
	}
	if !keep {
		if err := RemoveDir(from); err != nil {
			return n, errors.Trace(err)
		}
	}
	return n, nil
}

func dirDestination(from, to string) (string, error) {
	info, err := os.Stat(from)
	if os.IsNotExist(err) {
		return "", errors.NotFoundf("path %q", from)
	}
	if err != nil {
		return "", errors.Annotatef(err, "inspecting %s", from)
	}
	if !info.IsDir() {
		return "", errors.NotValidf("path %q as a directory", from)
	}
	base := filepath.Base(filepath.Clean(from))
	if base == "." || base == string(filepath.Separator) {
		return "", errors.NotValidf("source directory %q", from)
	}
	return filepath.Join(to, base), nil
}
