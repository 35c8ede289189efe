package pkg

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// rawExtension is accepted without sniffing; Fuji RAF files are not
// recognized by any registered image decoder. The match is case-sensitive.
const rawExtension = ".RAF"

// PhotoCandidate identifies one discovered file.
type PhotoCandidate struct {
	Dir      string // absolute source directory
	Filename string // base name, no directory component
}

// Path returns the full path of the candidate.
func (c PhotoCandidate) Path() string {
	return filepath.Join(c.Dir, c.Filename)
}

// PhotoPredicate reports whether a path holds a recognized photo format.
type PhotoPredicate func(path string) bool

// DiscoverPhotos lists the photo candidates directly inside sourceDir.
// Subdirectories are not descended into, symbolic links are never
// candidates and only regular files are sniffed. The order of the result is unspecified.
func DiscoverPhotos(sourceDir string, isPhoto PhotoPredicate) ([]PhotoCandidate, error) {
	if isPhoto == nil {
		isPhoto = IsPhoto
	}

	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return nil, errors.Wrapf(err, "read source directory '%s'", sourceDir)
	}

	candidates := []PhotoCandidate{}
	for _, entry := range entries {
		// Type bits come from Lstat, so a link to a photo is still a link here.
		if entry.Type()&os.ModeSymlink != 0 || entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, rawExtension) {
			candidates = append(candidates, PhotoCandidate{Dir: sourceDir, Filename: name})
			continue
		}
		// Opening a FIFO or device to sniff it could block forever.
		if !entry.Type().IsRegular() {
			continue
		}
		if isPhoto(filepath.Join(sourceDir, name)) {
			candidates = append(candidates, PhotoCandidate{Dir: sourceDir, Filename: name})
		}
	}
	return candidates, nil
}
