package pkg

import (
	"strings"

	"github.com/pkg/errors"
)

// Embedded tag names, in exiftool's group:tag notation.
// See http://www.photometadata.org/META-101-metadata-Q-and-A for the field meanings.
const (
	TagDateTimeOriginal = "DateTimeOriginal"

	TagKeywords    = "XMP-dc:Subject"        // discrete subject words/phrases
	TagCredit      = "EXIF:Artist"           // photographer, agency, etc.
	TagDescription = "XMP-dc:Description"    // natural-language caption
	TagCopyright   = "EXIF:Copyright"        // rights holder
	TagLocation    = "XMP-iptcCore:Location" // where the image was taken
)

// MetadataRequest holds the user-supplied fields merged into every
// imported photo. A nil Keywords slice means "not requested"; empty
// strings mean the field is unset.
type MetadataRequest struct {
	Keywords    []string
	Credit      string
	Description string
	Copyright   string
	Location    string
}

// ParseKeywords splits a comma-separated list literally, without trimming.
func ParseKeywords(csv string) []string {
	return strings.Split(csv, ",")
}

// Tags returns the embedded tags to set for this request. Unset fields are
// absent from the map so existing values in the file are left untouched.
func (r MetadataRequest) Tags() map[string]string {
	tags := make(map[string]string)
	if len(r.Keywords) > 0 {
		tags[TagKeywords] = strings.Join(r.Keywords, ",")
	}
	if r.Credit != "" {
		tags[TagCredit] = r.Credit
	}
	if r.Description != "" {
		tags[TagDescription] = r.Description
	}
	if r.Copyright != "" {
		tags[TagCopyright] = r.Copyright
	}
	if r.Location != "" {
		tags[TagLocation] = r.Location
	}
	return tags
}

// IsEmpty reports whether the request would not change any tag.
func (r MetadataRequest) IsEmpty() bool {
	return len(r.Tags()) == 0
}

// TagWriter adds or overwrites tags in a file's embedded metadata and
// saves it. Tags not named in the map are left as they are.
type TagWriter interface {
	WriteTags(path string, tags map[string]string) error
}

// MergeMetadata writes the request's fields into the file at path. An empty
// request is a no-op. Failures wrap ErrMetadataWrite.
func MergeMetadata(w TagWriter, path string, req MetadataRequest) error {
	tags := req.Tags()
	if len(tags) == 0 {
		return nil
	}
	if w == nil {
		return errors.Wrap(ErrMetadataWrite, "no metadata writer available")
	}
	if err := w.WriteTags(path, tags); err != nil {
		return errors.Wrapf(ErrMetadataWrite, "%s: %v", path, err)
	}
	return nil
}
