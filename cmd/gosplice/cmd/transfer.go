package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/juju/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gosplice/internal/fsx"
	"gosplice/internal/tui"
)

// transferFlags are shared by copy and move. Each one only switches a
// behaviour on; the configuration file can switch it on as well.
type transferFlags struct {
	overwrite   bool
	skipExist   bool
	progress    bool
	retainMtime bool
	retainAtime bool
	verify      bool
}

func (f *transferFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.overwrite, "overwrite", false, "replace existing destination files")
	cmd.Flags().BoolVar(&f.skipExist, "skip-exist", false, "leave existing destination files alone")
	cmd.Flags().BoolVar(&f.progress, "progress", false, "show a progress bar")
	cmd.Flags().BoolVar(&f.retainMtime, "retain-mtime", false, "keep modification times")
	cmd.Flags().BoolVar(&f.retainAtime, "retain-atime", false, "keep access times")
	cmd.Flags().BoolVar(&f.verify, "verify", false, "compare BLAKE3 digests of every copied file")
}

func (f transferFlags) copyOptions() fsx.CopyOptions {
	return fsx.CopyOptions{
		Overwrite:  cfg.Overwrite || f.overwrite,
		SkipExist:  cfg.SkipExist || f.skipExist,
		BufferSize: cfg.BufferSize.Int(),
	}
}

func (f transferFlags) timeOptions() fsx.TimeOptions {
	return fsx.TimeOptions{
		RetainModification: cfg.RetainTimes.Modification || f.retainMtime,
		RetainAccess:       cfg.RetainTimes.Access || f.retainAtime,
	}
}

// transferOp is one of the fsx copy or move functions.
type transferOp func(ctx context.Context, from, to string, opts fsx.CopyOptions, progress fsx.ProgressFunc) (uint64, error)

// fileState is what a transfer must preserve for one source file.
type fileState struct {
	rel          string // path below the source, "." for a single file
	sum          string
	atime, mtime time.Time
}

// runTransfer copies or moves from to to. A directory ends up below
// to/<base of from>, a file at to itself.
func runTransfer(cmd *cobra.Command, from, to string, f transferFlags, move bool) error {
	info, err := os.Stat(from)
	if os.IsNotExist(err) {
		return errors.NotFoundf("path %q", from)
	}
	if err != nil {
		return errors.Annotatef(err, "inspecting %s", from)
	}

	op, verb := transferOpFor(info.IsDir(), move)
	dest := to
	if info.IsDir() {
		dest = filepath.Join(to, filepath.Base(filepath.Clean(from)))
	}

	times := f.timeOptions()
	verify := f.verify
	states, err := captureStates(from, verify, times)
	if err != nil {
		return errors.Trace(err)
	}

	var copied uint64
	work := func(ctx context.Context, report fsx.ProgressFunc) error {
		var err error
		copied, err = op(ctx, from, to, f.copyOptions(), report)
		return err
	}
	ctx := commandContext(cmd)
	if cfg.Progress || f.progress {
		err = tui.RunProgress(ctx, fmt.Sprintf("%s %s", verb, from), work)
	} else {
		err = work(ctx, nil)
	}
	if err != nil {
		return errors.Annotatef(err, "%s %s", verb, from)
	}

	if err := restoreStates(dest, states, verify, times); err != nil {
		return errors.Trace(err)
	}
	logger.Info("transfer finished",
		zap.String("op", verb),
		zap.String("from", from),
		zap.String("to", dest),
		zap.Uint64("bytes", copied))
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s to %s (%s)\n", verb, from, dest, humanize.IBytes(copied))
	return nil
}

func transferOpFor(dir, move bool) (transferOp, string) {
	switch {
	case dir && move:
		return fsx.MoveDirWithProgress, "moved"
	case dir:
		return fsx.CopyDirWithProgress, "copied"
	case move:
		return fsx.MoveFileWithProgress, "moved"
	default:
		return fsx.CopyFileWithProgress, "copied"
	}
}

// captureStates records digests and timestamps of every file below from
// before it is transferred, since a move removes the source.
func captureStates(from string, verify bool, times fsx.TimeOptions) ([]fileState, error) {
	if !verify && !times.RetainModification && !times.RetainAccess {
		return nil, nil
	}
	content, err := fsx.DirContent(from)
	if err != nil {
		return nil, errors.Trace(err)
	}

	states := make([]fileState, 0, len(content.Files))
	for _, file := range content.Files {
		rel, err := filepath.Rel(from, file)
		if err != nil {
			return nil, errors.Trace(err)
		}
		st := fileState{rel: rel}
		if verify {
			if st.sum, err = fsx.SumFile(file); err != nil {
				return nil, errors.Trace(err)
			}
		}
		if st.atime, st.mtime, err = fsx.Times(file); err != nil {
			return nil, errors.Trace(err)
		}
		states = append(states, st)
	}
	return states, nil
}

// restoreStates applies the recorded timestamps below dest and checks the
// recorded digests.
func restoreStates(dest string, states []fileState, verify bool, times fsx.TimeOptions) error {
	for _, st := range states {
		path := filepath.Join(dest, st.rel)
		if verify {
			sum, err := fsx.SumFile(path)
			if err != nil {
				return errors.Trace(err)
			}
			if sum != st.sum {
				return errors.Errorf("verification failed: %s differs from its source", path)
			}
		}
		if err := fsx.SetTimes(path, st.atime, st.mtime, times); err != nil {
			return errors.Trace(err)
		}
	}
	return nil
}
