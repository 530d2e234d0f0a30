package cmd

import (
	"bufio"
	"image"
	"image/png"
	"os"

	"binpix/cli"
	"binpix/codec"
	"binpix/imaging"
	"binpix/log"
	"binpix/progress"
	"binpix/source"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var encLogger = log.WithModule("encode-cmd")

var encodeCmd = &cobra.Command{
	Use:   "encode [file]",
	Short: "Encodes a binary file as a lossless PNG. Reads stdin when no file is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inPath := "-"
		if len(args) == 1 {
			inPath = args[0]
		}

		src, err := source.Open(inPath, false)
		if err != nil {
			return err
		}
		defer src.Close()

		opts, err := planOptsFromFlags(cmd)
		if err != nil {
			return err
		}
		plan := codec.PlanDimensions(src.Len(), opts)
		if !opts.Square && opts.Width == 0 && opts.Height == 0 {
			if plan.Padding > 0 {
				encLogger.Warn(
					"could not find dimensions that perfectly encode the input; the encoding will be tail-padded with zeros",
					"bytes", src.Len(),
					"padding", plan.Padding,
				)
			}
		}

		noProgress := cfg.Encode.NoProgress
		if cmd.Flags().Changed(cli.FlagNoProgress) {
			noProgress, _ = cmd.Flags().GetBool(cli.FlagNoProgress)
		}
		meter := progress.NewMeter(os.Stderr, noProgress)
		img, err := codec.Encode(src, plan.Dimensions, meter.Step)
		meter.Done()
		if err != nil {
			return err
		}

		out, err := resampleStage(cmd, img)
		if err != nil {
			return err
		}
		return writePNG(cmd, out)
	},
}

func planOptsFromFlags(cmd *cobra.Command) (codec.PlanOpts, error) {
	width, err := cmd.Flags().GetInt(cli.FlagWidth)
	if err != nil {
		return codec.PlanOpts{}, err
	}
	height, err := cmd.Flags().GetInt(cli.FlagHeight)
	if err != nil {
		return codec.PlanOpts{}, err
	}
	if width < 0 || height < 0 {
		return codec.PlanOpts{}, errors.New("width and height must be positive")
	}
	square := cfg != nil && cfg.Encode.Square
	if cmd.Flags().Changed(cli.FlagSquare) {
		square, _ = cmd.Flags().GetBool(cli.FlagSquare)
	}
	return codec.PlanOpts{
		Width:  width,
		Height: height,
		Square: square,
	}, nil
}

// resampleStage applies the optional post-encode resample. It runs
// strictly before the image write, and the result is no longer
// losslessly decodable, so enabling it always warns.
func resampleStage(cmd *cobra.Command, img image.Image) (image.Image, error) {
	rcfg := cfg.Encode.Resize
	if cmd.Flags().Changed(cli.FlagResize) {
		spec, _ := cmd.Flags().GetString(cli.FlagResize)
		w, h, err := imaging.ParseSize(spec)
		if err != nil {
			return nil, errors.Wrap(err, "error parsing resize spec")
		}
		rcfg.Enabled = true
		rcfg.Width = w
		rcfg.Height = h
	}
	if cmd.Flags().Changed(cli.FlagFilter) {
		rcfg.Filter, _ = cmd.Flags().GetString(cli.FlagFilter)
	}
	if !rcfg.Enabled {
		return img, nil
	}
	filter, err := imaging.ParseFilter(rcfg.Filter)
	if err != nil {
		return nil, err
	}
	encLogger.Warn(
		"resampling the encoded image; the output will NOT decode back to the original data",
		"width", rcfg.Width,
		"height", rcfg.Height,
		"filter", string(filter),
	)
	return imaging.Resample(img, rcfg.Width, rcfg.Height, filter), nil
}

func writePNG(cmd *cobra.Command, img image.Image) error {
	outPath, err := cmd.Flags().GetString(cli.FlagOutfile)
	if err != nil {
		return err
	}
	if outPath == "" || outPath == "-" {
		w := bufio.NewWriter(os.Stdout)
		if err := png.Encode(w, img); err != nil {
			return errors.Wrap(err, "error writing PNG")
		}
		return errors.Wrap(w.Flush(), "error flushing PNG")
	}
	f, err := os.Create(outPath)
	if err != nil {
		return errors.Wrap(err, "error creating output file")
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return errors.Wrap(err, "error writing PNG")
	}
	return nil
}

func init() {
	encodeCmd.Flags().StringP(cli.FlagOutfile, "o", "-", "Output file. Defaults to stdout.")
	encodeCmd.Flags().IntP(cli.FlagWidth, "w", 0, "Constrains the output PNG to a specific width.")
	encodeCmd.Flags().IntP(cli.FlagHeight, "l", 0, "Constrains the output PNG to a specific height.")
	encodeCmd.Flags().BoolP(cli.FlagSquare, "s", false, "Generates only square images.")
	encodeCmd.Flags().Bool(cli.FlagNoProgress, false, "Suppresses the progress meter.")
	encodeCmd.Flags().String(cli.FlagResize, "", "Resamples the encoded image to WxH before writing. Lossy.")
	encodeCmd.Flags().Lookup(cli.FlagResize).NoOptDefVal = "300x300"
	encodeCmd.Flags().String(cli.FlagFilter, "lanczos", "Resample filter: lanczos, nearest, bilinear or bicubic.")
	rootCmd.AddCommand(encodeCmd)
}
