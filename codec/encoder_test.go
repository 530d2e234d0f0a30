package codec

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestEncodeLaysOutBytesInRasterOrder(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5}
	plan := PlanDimensions(int64(len(data)), PlanOpts{})
	require.Equal(t, 2, plan.Width)
	require.Equal(t, 1, plan.Height)

	img, err := Encode(bytes.NewReader(data), plan.Dimensions, nil)
	require.NoError(t, err)

	p0 := img.RGBAAt(0, 0)
	require.EqualValues(t, 1, p0.R)
	require.EqualValues(t, 2, p0.G)
	require.EqualValues(t, 3, p0.B)

	// The short final group zero-fills its missing channel.
	p1 := img.RGBAAt(1, 0)
	require.EqualValues(t, 4, p1.R)
	require.EqualValues(t, 5, p1.G)
	require.EqualValues(t, 0, p1.B)
}

func TestEncodeTraversalSymmetry(t *testing.T) {
	data := make([]byte, 60)
	for i := range data {
		data[i] = byte(i + 1)
	}
	dims := Dimensions{Width: 4, Height: 5}
	img, err := Encode(bytes.NewReader(data), dims, nil)
	require.NoError(t, err)

	for i, b := range data {
		pixel := i / BytesPerPixel
		col := pixel % dims.Width
		row := pixel / dims.Width
		px := img.RGBAAt(col, row)
		ch := [BytesPerPixel]byte{px.R, px.G, px.B}
		require.Equal(t, b, ch[i%BytesPerPixel], "byte %d", i)
	}
}

func TestEncodePadsUndersizedRegionWithBlack(t *testing.T) {
	data := []byte{255}
	dims := Dimensions{Width: 3, Height: 3}
	img, err := Encode(bytes.NewReader(data), dims, nil)
	require.NoError(t, err)

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			px := img.RGBAAt(col, row)
			require.EqualValues(t, 0xff, px.A)
			if row == 0 && col == 0 {
				continue
			}
			require.EqualValues(t, 0, px.R)
			require.EqualValues(t, 0, px.G)
			require.EqualValues(t, 0, px.B)
		}
	}
	require.True(t, img.Opaque())
}

func TestEncodeEmptyInput(t *testing.T) {
	plan := PlanDimensions(0, PlanOpts{})
	img, err := Encode(bytes.NewReader(nil), plan.Dimensions, nil)
	require.NoError(t, err)
	require.Equal(t, 1, img.Bounds().Dx())
	require.Equal(t, 1, img.Bounds().Dy())

	px := img.RGBAAt(0, 0)
	require.EqualValues(t, 0, px.R)
	require.EqualValues(t, 0, px.G)
	require.EqualValues(t, 0, px.B)
}

func TestEncodeExplicitWidthFitsExactly(t *testing.T) {
	data := []byte{9, 9, 9, 9, 9, 9, 9, 9, 9, 9}
	plan := PlanDimensions(int64(len(data)), PlanOpts{Width: 1})
	require.Equal(t, 1, plan.Width)
	require.Equal(t, 4, plan.Height)

	img, err := Encode(bytes.NewReader(data), plan.Dimensions, nil)
	require.NoError(t, err)
	require.Equal(t, 4, img.Bounds().Dy())
}

func TestEncodeCapacityExceeded(t *testing.T) {
	data := []byte{9, 9, 9, 9, 9, 9, 9, 9, 9, 9}
	plan := PlanDimensions(int64(len(data)), PlanOpts{Width: 1, Height: 1})
	_, err := Encode(bytes.NewReader(data), plan.Dimensions, nil)
	require.Equal(t, ErrCapacityExceeded, errors.Cause(err))
}

func TestEncodeReportsRowProgress(t *testing.T) {
	data := make([]byte, 12)
	dims := Dimensions{Width: 2, Height: 2}
	var steps [][2]int
	_, err := Encode(bytes.NewReader(data), dims, func(rows, total int) {
		steps = append(steps, [2]int{rows, total})
	})
	require.NoError(t, err)
	require.NotEmpty(t, steps)
	last := steps[len(steps)-1]
	require.Equal(t, [2]int{2, 2}, last)
}
