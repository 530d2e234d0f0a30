package codec

import "math"

// BytesPerPixel is the payload carried by one RGB pixel, one byte per
// channel.
const BytesPerPixel = 3

// Dimensions is the width and height of an output image.
type Dimensions struct {
	Width  int
	Height int
}

// Pixels returns the number of pixels in the grid.
func (d Dimensions) Pixels() int64 {
	return int64(d.Width) * int64(d.Height)
}

// Capacity returns the number of payload bytes the grid can hold.
func (d Dimensions) Capacity() int64 {
	return d.Pixels() * BytesPerPixel
}

// PlanOpts constrains dimension planning. Zero values mean
// unconstrained.
type PlanOpts struct {
	Width  int
	Height int
	Square bool
}

// Plan is a planned set of dimensions together with the padding the
// encode will tail-fill. Padding greater than zero is advisory, not an
// error. When the caller fixes both dimensions the padding can be
// negative; the undersize surfaces later as ErrCapacityExceeded during
// encode.
type Plan struct {
	Dimensions
	Padding int64
}

func ceilDiv(a, b int64) int64 {
	return (a + b - 1) / b
}

// requiredPixels returns P = ceil(numBytes / 3), at least 1 so that
// empty input still plans a minimal 1x1 grid.
func requiredPixels(numBytes int64) int64 {
	p := ceilDiv(numBytes, BytesPerPixel)
	if p < 1 {
		p = 1
	}
	return p
}

// sideCeil returns S = ceil(sqrt(P)), the side of the smallest square
// that fits P pixels. Returns at least 1 so that empty input still
// plans a valid grid.
func sideCeil(numPixels int64) int {
	s := int(math.Ceil(math.Sqrt(float64(numPixels))))
	if s < 1 {
		s = 1
	}
	return s
}

// PlanDimensions chooses image dimensions for numBytes bytes of
// payload. Resolution order:
//
//  1. Both width and height given: returned unchanged, unvalidated.
//  2. Square: (S, S) with S = ceil(sqrt(ceil(numBytes/3))).
//  3. Only width: height = ceil(P / width).
//  4. Only height: width = ceil(P / height).
//  5. Neither: search widths descending from S to 1 for the candidate
//     with the least padding, stopping at the first width that divides
//     P evenly. The descending order makes the largest evenly-dividing
//     width <= S win, which is the most square-like zero-padding
//     rectangle when one exists.
func PlanDimensions(numBytes int64, opts PlanOpts) Plan {
	if opts.Width > 0 && opts.Height > 0 {
		dims := Dimensions{Width: opts.Width, Height: opts.Height}
		return Plan{Dimensions: dims, Padding: dims.Capacity() - numBytes}
	}

	numPixels := requiredPixels(numBytes)
	side := sideCeil(numPixels)

	if opts.Square {
		dims := Dimensions{Width: side, Height: side}
		return Plan{Dimensions: dims, Padding: dims.Capacity() - numBytes}
	}
	if opts.Width > 0 {
		dims := Dimensions{
			Width:  opts.Width,
			Height: int(ceilDiv(numPixels, int64(opts.Width))),
		}
		return Plan{Dimensions: dims, Padding: dims.Capacity() - numBytes}
	}
	if opts.Height > 0 {
		dims := Dimensions{
			Width:  int(ceilDiv(numPixels, int64(opts.Height))),
			Height: opts.Height,
		}
		return Plan{Dimensions: dims, Padding: dims.Capacity() - numBytes}
	}

	var best Plan
	found := false
	for w := side; w >= 1; w-- {
		cand := candidateAt(numBytes, numPixels, w)
		if cand.Pixels() >= numPixels && (!found || cand.Padding < best.Padding) {
			best = cand
			found = true
		}
		if numPixels%int64(w) == 0 {
			// Nothing below w can beat zero padding.
			break
		}
	}
	return best
}

// SearchCandidates returns every candidate the unconstrained planner
// visits, in visit order, for diagnostic display. The final element is
// the planner's choice only when no earlier candidate beat it; use
// PlanDimensions for the actual decision.
func SearchCandidates(numBytes int64) []Plan {
	numPixels := requiredPixels(numBytes)
	side := sideCeil(numPixels)
	var cands []Plan
	for w := side; w >= 1; w-- {
		cand := candidateAt(numBytes, numPixels, w)
		cands = append(cands, cand)
		if numPixels%int64(w) == 0 {
			break
		}
	}
	return cands
}

func candidateAt(numBytes, numPixels int64, w int) Plan {
	dims := Dimensions{
		Width:  w,
		Height: int(ceilDiv(numPixels, int64(w))),
	}
	return Plan{Dimensions: dims, Padding: dims.Capacity() - numBytes}
}
