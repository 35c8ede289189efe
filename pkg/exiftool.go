package pkg

import (
	"github.com/barasher/go-exiftool"
	"github.com/pkg/errors"
)

// ExiftoolStore is the embedded metadata store backed by a long-running
// exiftool process. It serves as both TagReader and TagWriter.
type ExiftoolStore struct {
	et *exiftool.Exiftool
}

// NewExiftoolStore starts exiftool. binaryPath may be empty to use the
// exiftool found on PATH.
func NewExiftoolStore(binaryPath string) (*ExiftoolStore, error) {
	opts := []func(*exiftool.Exiftool) error{exiftool.Charset("filename=utf8")}
	if binaryPath != "" {
		opts = append(opts, exiftool.SetExiftoolBinaryPath(binaryPath))
	}
	et, err := exiftool.NewExiftool(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "start exiftool")
	}
	return &ExiftoolStore{et: et}, nil
}

// Close stops the exiftool process.
func (s *ExiftoolStore) Close() error {
	return s.et.Close()
}

// ReadTag implements TagReader.
func (s *ExiftoolStore) ReadTag(path, tag string) (string, error) {
	fms := s.et.ExtractMetadata(path)
	if len(fms) == 0 {
		return "", errors.Errorf("exiftool returned no metadata for %s", path)
	}
	if fms[0].Err != nil {
		return "", errors.Wrapf(fms[0].Err, "extract metadata from %s", path)
	}
	value, err := fms[0].GetString(tag)
	if err != nil {
		if errors.Is(err, exiftool.ErrKeyNotFound) {
			return "", errors.Wrapf(ErrTagNotFound, "%s in %s", tag, path)
		}
		return "", errors.Wrapf(err, "read %s from %s", tag, path)
	}
	return value, nil
}

// WriteTags implements TagWriter. Only the given tags are sent to exiftool,
// so every other tag in the file is preserved.
func (s *ExiftoolStore) WriteTags(path string, tags map[string]string) error {
	fms := []exiftool.FileMetadata{writeRequest(path, tags)}
	s.et.WriteMetadata(fms)
	if fms[0].Err != nil {
		return errors.Wrapf(fms[0].Err, "write metadata to %s", path)
	}
	return nil
}

// writeRequest builds the exiftool write for tags. exiftool reads "-TAG="
// as a deletion, so an empty value is sent as "-TAG^=", which stores "".
func writeRequest(path string, tags map[string]string) exiftool.FileMetadata {
	fm := exiftool.EmptyFileMetadata()
	fm.File = path
	for k, v := range tags {
		if v == "" {
			k += "^"
		}
		fm.SetString(k, v)
	}
	return fm
}
