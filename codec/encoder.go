package codec

import (
	"bufio"
	"image"
	"image/color"
	"io"

	"binpix/log"

	"github.com/pkg/errors"
)

// ErrCapacityExceeded is returned when the input holds more bytes than
// the target grid can store. Only reachable with caller-supplied
// dimensions; planner-chosen dimensions always fit.
var ErrCapacityExceeded = errors.New("data exceeds image capacity")

// ProgressFunc is invoked as rows complete with the number of rows
// finished so far and the total row count. It is a side channel only
// and must not affect codec output.
type ProgressFunc func(row, totalRows int)

var encLogger = log.WithModule("encoder")

// Encode packs src into a pixel grid of exactly dims.Width by
// dims.Height pixels. Bytes map to channels in groups of three,
// (R, G, B), written in raster order: column advances fastest, row
// increments at the width boundary. A short final group zero-fills its
// missing channels, and pixels past the end of the data keep their
// zero (black) value.
func Encode(src io.Reader, dims Dimensions, progress ProgressFunc) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, dims.Width, dims.Height))
	// Opaque alpha everywhere so the PNG encoder emits 24-bit
	// truecolor instead of an alpha channel.
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}

	br := bufio.NewReader(src)
	buf := make([]byte, BytesPerPixel)
	row := 0
	col := -1
	for {
		n, err := io.ReadFull(br, buf)
		if n == 0 {
			if err == io.EOF {
				break
			}
			return nil, errors.Wrap(err, "error reading input")
		}
		if err != nil && err != io.ErrUnexpectedEOF {
			return nil, errors.Wrap(err, "error reading input")
		}

		col++
		if col >= dims.Width {
			col = 0
			row++
			if progress != nil {
				progress(row, dims.Height)
			}
			if row >= dims.Height {
				return nil, errors.WithStack(ErrCapacityExceeded)
			}
		}

		px := color.RGBA{A: 0xff}
		px.R = buf[0]
		if n > 1 {
			px.G = buf[1]
		}
		if n > 2 {
			px.B = buf[2]
		}
		img.SetRGBA(col, row, px)

		if n < BytesPerPixel {
			// Short group only happens at end of stream.
			break
		}
	}
	if progress != nil {
		progress(dims.Height, dims.Height)
	}
	encLogger.Debug("encoded grid", "width", dims.Width, "height", dims.Height)
	return img, nil
}
