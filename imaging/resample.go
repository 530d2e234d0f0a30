package imaging

import (
	"image"
	"strconv"
	"strings"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

// Filter names an interpolation kernel for the resample stage.
type Filter string

const (
	FilterLanczos  Filter = "lanczos"
	FilterNearest  Filter = "nearest"
	FilterBilinear Filter = "bilinear"
	FilterBicubic  Filter = "bicubic"
)

// ParseFilter validates a filter name from config or flags.
func ParseFilter(s string) (Filter, error) {
	switch Filter(s) {
	case FilterLanczos, FilterNearest, FilterBilinear, FilterBicubic:
		return Filter(s), nil
	default:
		return "", errors.Errorf("unknown resample filter %q", s)
	}
}

func (f Filter) interp() resize.InterpolationFunction {
	switch f {
	case FilterNearest:
		return resize.NearestNeighbor
	case FilterBilinear:
		return resize.Bilinear
	case FilterBicubic:
		return resize.Bicubic
	default:
		return resize.Lanczos3
	}
}

// Resample scales img to width by height with the given filter. This
// is an explicit, optional transform stage between the encoder and the
// image write; a resampled image is no longer losslessly decodable and
// callers are expected to warn when they enable it.
func Resample(img image.Image, width, height int, f Filter) image.Image {
	return resize.Resize(uint(width), uint(height), img, f.interp())
}

// ParseSize parses a "WxH" size spec such as "300x300".
func ParseSize(s string) (width, height int, err error) {
	parts := strings.SplitN(strings.ToLower(s), "x", 2)
	if len(parts) != 2 {
		return 0, 0, errors.New("size must be of the form WxH")
	}
	width, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, errors.Wrap(err, "invalid width")
	}
	height, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, errors.Wrap(err, "invalid height")
	}
	if width < 1 || height < 1 {
		return 0, 0, errors.New("size must be positive")
	}
	return width, height, nil
}
