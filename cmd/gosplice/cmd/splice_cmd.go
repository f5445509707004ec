package cmd

import (
	"fmt"

	"github.com/juju/errors"
	"github.com/spf13/cobra"

	"gosplice/internal/fsx"
	"gosplice/internal/splice"
	"gosplice/pkg/region"
)

var (
	spliceBegin int64
	spliceLen   int64
	spliceData  dataSource
)

// spliceCmd replaces one byte range of a file.
var spliceCmd = &cobra.Command{
	Use:   "splice FILE",
	Short: "Replace a byte range of FILE in place",
	Long: `Replace --len bytes of FILE starting at --begin with the bytes given by
--text, --hex, --base64 or --data-file. Without any of them the range is
deleted; with --len 0 the bytes are inserted.`,
	Example: `  gosplice splice notes.txt --begin 4 --len 2 --text hello
  gosplice splice image.bin --begin 0 --hex "de ad be ef"
  gosplice splice log.txt --begin 100 --len 20`,
	Args: cobra.ExactArgs(1),
	RunE: runSplice,
}

func runSplice(cmd *cobra.Command, args []string) error {
	r := region.Region{Begin: spliceBegin, Len: spliceLen, Data: spliceData.data}
	if err := spliceFile(args[0], func(f splice.File) error {
		return splice.Splice(f, r, cfg.BufferSize.Int())
	}); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: replaced %d bytes at %d with %d bytes\n",
		args[0], r.Len, r.Begin, len(r.Data))
	return nil
}

// spliceFile opens path for in-place editing, runs edit and closes the file.
func spliceFile(path string, edit func(splice.File) error) (err error) {
	f, err := fsx.OpenRW(path)
	if err != nil {
		return errors.Trace(err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Annotatef(cerr, "closing %s", path)
		}
	}()
	return errors.Annotatef(edit(f), "splicing %s", path)
}

func init() {
	spliceCmd.Flags().Int64Var(&spliceBegin, "begin", 0, "offset of the first replaced byte")
	spliceCmd.Flags().Int64Var(&spliceLen, "len", 0, "number of bytes to replace")
	spliceData.register(spliceCmd.Flags())
	rootCmd.AddCommand(spliceCmd)
}
