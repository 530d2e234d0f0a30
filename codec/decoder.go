package codec

import (
	"bufio"
	"image"
	"image/draw"
	"io"

	"binpix/log"

	"github.com/pkg/errors"
)

var decLogger = log.WithModule("decoder")

// Decode reverses Encode: it walks img in the same raster order the
// encoder wrote it, one channel at a time, and streams the payload to
// out.
//
// Zero channel bytes are not written immediately. They accumulate in a
// pending run that is flushed only when a non-zero byte follows, so
// the zero padding the encoder tail-fills never reaches the output. A
// run still pending at the end of the grid is discarded. This also
// strips genuine trailing zeros from the original input; the caller
// gets the discarded count back so it can surface the loss.
func Decode(img image.Image, out io.Writer, progress ProgressFunc) (int64, error) {
	rgba := toRGBA(img)
	bounds := rgba.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	bw := bufio.NewWriter(out)
	var pending int64
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			px := rgba.RGBAAt(col, row)
			for _, ch := range [BytesPerPixel]byte{px.R, px.G, px.B} {
				if ch == 0 {
					pending++
					continue
				}
				for ; pending > 0; pending-- {
					if err := bw.WriteByte(0); err != nil {
						return 0, errors.Wrap(err, "error writing output")
					}
				}
				if err := bw.WriteByte(ch); err != nil {
					return 0, errors.Wrap(err, "error writing output")
				}
			}
		}
		if progress != nil {
			progress(row+1, height)
		}
	}
	if err := bw.Flush(); err != nil {
		return 0, errors.Wrap(err, "error flushing output")
	}
	if pending > 0 {
		decLogger.Debug("omitting trailing zeros", "count", pending)
	}
	return pending, nil
}

// toRGBA converts any decoded image to RGBA with bounds rooted at
// (0, 0).
func toRGBA(src image.Image) *image.RGBA {
	if rgba, ok := src.(*image.RGBA); ok && rgba.Bounds().Min == image.ZP {
		return rgba
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
