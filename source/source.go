package source

import (
	"bytes"
	"io"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
)

// Source is a length-known byte stream over a file, a pipe, or an
// in-memory buffer. Reads return fewer bytes than requested only at
// end of stream. A Source is scoped to a single encode or decode call
// and must be closed on every exit path; closing a temp-backed Source
// deletes its backing file.
type Source struct {
	r      io.Reader
	length int64
	name   string
	file   *os.File
	temp   bool
}

// FromFile opens a named, seekable file. The length comes from the
// filesystem and reads stream directly from the file.
func FromFile(path string) (*Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrap(err, "error statting input file")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "error opening input file")
	}
	return &Source{
		r:      f,
		length: info.Size(),
		name:   path,
		file:   f,
	}, nil
}

// FromReader eagerly buffers r into memory. Used for non-seekable
// input such as stdin.
func FromReader(r io.Reader) (*Source, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "error buffering input")
	}
	return &Source{
		r:      bytes.NewReader(data),
		length: int64(len(data)),
	}, nil
}

// FromReaderFileBacked eagerly copies r into a fresh temporary file
// and reopens it for reading. The decode path needs this mode since
// the image reader wants a real file behind the stream. The temp file
// is removed by Close regardless of how the enclosing call exits.
func FromReaderFileBacked(r io.Reader) (*Source, error) {
	tmp, err := ioutil.TempFile("", "binpix_")
	if err != nil {
		return nil, errors.Wrap(err, "error creating temp file")
	}
	n, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, errors.Wrap(err, "error materializing input")
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, errors.Wrap(err, "error rewinding temp file")
	}
	return &Source{
		r:      tmp,
		length: n,
		name:   tmp.Name(),
		file:   tmp,
		temp:   true,
	}, nil
}

// Open resolves path into a Source. "-" or "" means stdin. Named
// files use sized-file mode; stdin uses buffered mode, or temp-file
// mode when fileBacked is set.
func Open(path string, fileBacked bool) (*Source, error) {
	if path != "" && path != "-" {
		// A named file is already seekable, no copy needed even in
		// file-backed mode.
		return FromFile(path)
	}
	if fileBacked {
		return FromReaderFileBacked(os.Stdin)
	}
	return FromReader(os.Stdin)
}

// Len returns the total byte length of the input, known up front in
// every mode.
func (s *Source) Len() int64 {
	return s.length
}

// Name returns the path of the backing file, or "" for an in-memory
// Source.
func (s *Source) Name() string {
	return s.name
}

func (s *Source) Read(p []byte) (int, error) {
	return s.r.Read(p)
}

func (s *Source) Close() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	if s.temp {
		if rmErr := os.Remove(s.name); err == nil {
			err = rmErr
		}
	}
	s.file = nil
	return err
}
