package source

import (
	"bytes"
	"io/ioutil"
	"os"
	"path"
	"testing"

	"binpix/testutil/testfs"

	"github.com/stretchr/testify/require"
)

func TestFromFile(t *testing.T) {
	dir, done := testfs.NewTempDir(t)
	defer done()

	p := path.Join(dir, "input.bin")
	data := []byte{1, 2, 3, 4, 5}
	require.NoError(t, ioutil.WriteFile(p, data, 0644))

	src, err := FromFile(p)
	require.NoError(t, err)
	defer src.Close()

	require.EqualValues(t, len(data), src.Len())
	require.Equal(t, p, src.Name())

	got, err := ioutil.ReadAll(src)
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestFromFileMissing(t *testing.T) {
	_, err := FromFile("/nonexistent/binpix/input.bin")
	require.Error(t, err)
}

func TestFromReader(t *testing.T) {
	data := []byte("hello binpix")
	src, err := FromReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer src.Close()

	require.EqualValues(t, len(data), src.Len())
	require.Equal(t, "", src.Name())

	// Short reads only at end of stream.
	buf := make([]byte, 5)
	n, err := src.Read(buf)
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, data[:5], buf)

	rest, err := ioutil.ReadAll(src)
	require.NoError(t, err)
	require.Equal(t, data[5:], rest)
}

func TestFromReaderEmpty(t *testing.T) {
	src, err := FromReader(bytes.NewReader(nil))
	require.NoError(t, err)
	defer src.Close()
	require.EqualValues(t, 0, src.Len())
}

func TestFromReaderFileBacked(t *testing.T) {
	data := []byte{9, 8, 7, 6}
	src, err := FromReaderFileBacked(bytes.NewReader(data))
	require.NoError(t, err)

	require.EqualValues(t, len(data), src.Len())
	require.NotEqual(t, "", src.Name())

	_, err = os.Stat(src.Name())
	require.NoError(t, err)

	got, err := ioutil.ReadAll(src)
	require.NoError(t, err)
	require.Equal(t, data, got)

	// Closing removes the temp file.
	require.NoError(t, src.Close())
	_, err = os.Stat(src.Name())
	require.True(t, os.IsNotExist(err))
}

func TestCloseIdempotent(t *testing.T) {
	src, err := FromReaderFileBacked(bytes.NewReader([]byte{1}))
	require.NoError(t, err)
	require.NoError(t, src.Close())
	require.NoError(t, src.Close())
}
