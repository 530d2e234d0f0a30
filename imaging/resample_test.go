package imaging

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFilter(t *testing.T) {
	for _, name := range []string{"lanczos", "nearest", "bilinear", "bicubic"} {
		f, err := ParseFilter(name)
		require.NoError(t, err)
		require.Equal(t, Filter(name), f)
	}
	_, err := ParseFilter("gaussian")
	require.Error(t, err)
}

func TestParseSize(t *testing.T) {
	w, h, err := ParseSize("300x300")
	require.NoError(t, err)
	require.Equal(t, 300, w)
	require.Equal(t, 300, h)

	w, h, err = ParseSize("640X480")
	require.NoError(t, err)
	require.Equal(t, 640, w)
	require.Equal(t, 480, h)

	for _, bad := range []string{"", "300", "x300", "300x", "0x10", "-1x5", "axb"} {
		_, _, err := ParseSize(bad)
		require.Error(t, err, "spec %q", bad)
	}
}

func TestResample(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	dst := Resample(src, 300, 150, FilterLanczos)
	require.Equal(t, 300, dst.Bounds().Dx())
	require.Equal(t, 150, dst.Bounds().Dy())
}
