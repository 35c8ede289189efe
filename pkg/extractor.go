package pkg

import (
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rwcarlsen/goexif/exif"
)

// ExifDateTimeLayout is the embedded timestamp convention, "YYYY:MM:DD HH:MM:SS".
const ExifDateTimeLayout = "2006:01:02 15:04:05"

// ErrTagNotFound is returned by a TagReader when the file has no such tag.
var ErrTagNotFound = errors.New("tag not found")

// TagReader reads a single tag value from a file's embedded metadata.
type TagReader interface {
	ReadTag(path, tag string) (string, error)
}

// ExifReader reads EXIF tags natively with goexif.
type ExifReader struct{}

// ReadTag decodes the EXIF block of path and returns tag as a string.
func (ExifReader) ReadTag(path, tag string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, "open %s", path)
	}
	defer file.Close()

	x, err := exif.Decode(file)
	if err != nil {
		return "", errors.Wrapf(err, "decode EXIF data from %s", path)
	}

	t, err := x.Get(exif.FieldName(tag))
	if err != nil {
		if exif.IsTagNotPresentError(err) {
			return "", errors.Wrapf(ErrTagNotFound, "%s in %s", tag, path)
		}
		return "", errors.Wrapf(err, "read %s from %s", tag, path)
	}
	value, err := t.StringVal() // Handles potential null terminators.
	if err != nil {
		return "", errors.Wrapf(err, "read %s from %s as string", tag, path)
	}
	return value, nil
}

// TagReaders tries each reader in order and returns the first value found.
type TagReaders []TagReader

// ReadTag implements TagReader. When every reader fails the last error is
// returned, except that ErrTagNotFound is preferred over I/O and codec
// errors so a plainly missing tag stays recognizable.
func (rs TagReaders) ReadTag(path, tag string) (string, error) {
	err := errors.Errorf("no tag readers configured for %s", path)
	for _, r := range rs {
		value, rerr := r.ReadTag(path, tag)
		if rerr == nil {
			return value, nil
		}
		if errors.Is(err, ErrTagNotFound) && !errors.Is(rerr, ErrTagNotFound) {
			continue
		}
		err = rerr
	}
	return "", err
}

// ParseExifDateTime parses an embedded "YYYY:MM:DD HH:MM:SS" timestamp.
// Out-of-range fields such as month 13 are parse failures.
func ParseExifDateTime(value string) (time.Time, error) {
	value = strings.TrimRight(value, "\x00")
	t, err := time.Parse(ExifDateTimeLayout, value)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "parse date %q", value)
	}
	return t, nil
}

// Extractor resolves a candidate's creation timestamp.
type Extractor struct {
	reader TagReader
	log    zerolog.Logger
}

// NewExtractor returns an Extractor reading tags through reader.
func NewExtractor(reader TagReader, log zerolog.Logger) *Extractor {
	return &Extractor{reader: reader, log: log}
}

// CreationTime returns the original capture time of the candidate. Every
// failure is logged as a warning naming the file and returned wrapped in
// ErrTimestampUnavailable; it never aborts the batch.
func (e *Extractor) CreationTime(c PhotoCandidate) (time.Time, error) {
	raw, err := e.reader.ReadTag(c.Path(), TagDateTimeOriginal)
	if err != nil {
		if errors.Is(err, ErrTagNotFound) {
			e.log.Warn().Str("file", c.Filename).Msg("No created date tag")
		} else {
			e.log.Warn().Str("file", c.Filename).Err(err).Msg("Unable to parse metadata")
		}
		return time.Time{}, errors.Wrap(ErrTimestampUnavailable, err.Error())
	}

	t, err := ParseExifDateTime(raw)
	if err != nil {
		e.log.Warn().Str("file", c.Filename).Str("date", raw).Err(err).Msg("Unable to parse the created date")
		return time.Time{}, errors.Wrap(ErrTimestampUnavailable, err.Error())
	}
	return t, nil
}
