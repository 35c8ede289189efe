package pkg_test

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/user/photo-import/pkg"
)

// exifSegment builds a JPEG APP1 segment whose Exif sub-IFD holds a single
// DateTimeOriginal value. value must be longer than four bytes so it is
// stored out of line.
func exifSegment(value string) []byte {
	le := binary.LittleEndian
	ascii := append([]byte(value), 0)

	var tiff bytes.Buffer
	tiff.WriteString("II")
	_ = binary.Write(&tiff, le, uint16(42))
	_ = binary.Write(&tiff, le, uint32(8))

	// IFD0: a single ExifIFDPointer entry.
	exifIFDOffset := uint32(8 + 2 + 12 + 4)
	_ = binary.Write(&tiff, le, uint16(1))
	_ = binary.Write(&tiff, le, uint16(0x8769))
	_ = binary.Write(&tiff, le, uint16(4)) // LONG
	_ = binary.Write(&tiff, le, uint32(1))
	_ = binary.Write(&tiff, le, exifIFDOffset)
	_ = binary.Write(&tiff, le, uint32(0))

	// Exif IFD: DateTimeOriginal.
	valueOffset := exifIFDOffset + 2 + 12 + 4
	_ = binary.Write(&tiff, le, uint16(1))
	_ = binary.Write(&tiff, le, uint16(0x9003))
	_ = binary.Write(&tiff, le, uint16(2)) // ASCII
	_ = binary.Write(&tiff, le, uint32(len(ascii)))
	_ = binary.Write(&tiff, le, valueOffset)
	_ = binary.Write(&tiff, le, uint32(0))
	tiff.Write(ascii)

	payload := append([]byte("Exif\x00\x00"), tiff.Bytes()...)
	size := len(payload) + 2
	segment := []byte{0xFF, 0xE1, byte(size >> 8), byte(size)}
	return append(segment, payload...)
}

// jpegBytes encodes a small JPEG, with an EXIF DateTimeOriginal tag when
// dateTimeOriginal is not empty.
func jpegBytes(t *testing.T, dateTimeOriginal string) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}), "encode JPEG")

	if dateTimeOriginal == "" {
		return buf.Bytes()
	}
	encoded := buf.Bytes()
	out := append([]byte{}, encoded[:2]...) // SOI
	out = append(out, exifSegment(dateTimeOriginal)...)
	return append(out, encoded[2:]...)
}

// writeJPEG writes a test JPEG into dir and returns its path.
func writeJPEG(t *testing.T, dir, name, dateTimeOriginal string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, jpegBytes(t, dateTimeOriginal), 0644), "write %s", name)
	return path
}

// testLogger returns a colorless console logger writing into buf.
func testLogger(buf *bytes.Buffer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: buf, NoColor: true}).Level(zerolog.DebugLevel)
}

// fakeReader serves DateTimeOriginal values by file name.
type fakeReader map[string]string

func (f fakeReader) ReadTag(path, tag string) (string, error) {
	value, ok := f[filepath.Base(path)]
	if !ok {
		return "", errors.Wrapf(pkg.ErrTagNotFound, "%s in %s", tag, path)
	}
	return value, nil
}

// failingReader fails every read with err.
type failingReader struct{ err error }

func (f failingReader) ReadTag(string, string) (string, error) {
	return "", f.err
}

// fakeWriter records the tags written per path, or fails with err.
type fakeWriter struct {
	writes map[string]map[string]string
	err    error
}

func newFakeWriter() *fakeWriter {
	return &fakeWriter{writes: make(map[string]map[string]string)}
}

func (f *fakeWriter) WriteTags(path string, tags map[string]string) error {
	if f.err != nil {
		return f.err
	}
	f.writes[path] = tags
	return nil
}
