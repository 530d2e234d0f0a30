package cmd

import (
	"bufio"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"binpix/cli"
	"binpix/codec"
	"binpix/log"
	"binpix/progress"
	"binpix/source"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var decCmdLogger = log.WithModule("decode-cmd")

var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Decodes a binpix image back to its original binary data.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inPath := "-"
		if len(args) == 1 {
			inPath = args[0]
		}

		// The image reader wants a seekable resource behind it, so
		// stdin is spooled to a scoped temp file here.
		src, err := source.Open(inPath, true)
		if err != nil {
			return err
		}
		defer src.Close()

		img, format, err := image.Decode(bufio.NewReader(src))
		if err != nil {
			return errors.Wrap(err, "error decoding input image")
		}
		decCmdLogger.Debug("decoded input image", "format", format)

		noProgress, _ := cmd.Flags().GetBool(cli.FlagNoProgress)
		meter := progress.NewMeter(os.Stderr, noProgress)

		out, closeOut, err := openOutfile(cmd)
		if err != nil {
			return err
		}
		omitted, err := codec.Decode(img, out, meter.Step)
		meter.Done()
		if err != nil {
			closeOut()
			return err
		}
		if omitted > 0 {
			decCmdLogger.Debug("omitted trailing zeros from end of file", "count", omitted)
		}
		return closeOut()
	},
}

func openOutfile(cmd *cobra.Command) (*bufio.Writer, func() error, error) {
	outPath, err := cmd.Flags().GetString(cli.FlagOutfile)
	if err != nil {
		return nil, nil, err
	}
	if outPath == "" || outPath == "-" {
		w := bufio.NewWriter(os.Stdout)
		return w, func() error {
			return errors.Wrap(w.Flush(), "error flushing output")
		}, nil
	}
	f, err := os.Create(outPath)
	if err != nil {
		return nil, nil, errors.Wrap(err, "error creating output file")
	}
	w := bufio.NewWriter(f)
	return w, func() error {
		if err := w.Flush(); err != nil {
			f.Close()
			return errors.Wrap(err, "error flushing output")
		}
		return errors.Wrap(f.Close(), "error closing output file")
	}, nil
}

func init() {
	decodeCmd.Flags().StringP(cli.FlagOutfile, "o", "-", "Output file. Defaults to stdout.")
	decodeCmd.Flags().Bool(cli.FlagNoProgress, false, "Suppresses the progress meter.")
	rootCmd.AddCommand(decodeCmd)
}
