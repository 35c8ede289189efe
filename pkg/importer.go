package pkg

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// importedFileMode is applied to every copy so the metadata merge can write it.
const importedFileMode os.FileMode = 0644

// Outcome is the terminal state of one candidate.
type Outcome int

const (
	OutcomeSkippedNoDate Outcome = iota
	OutcomeSkippedExisting
	OutcomeCopyFailed
	OutcomeMetadataMerged
	OutcomeMetadataMergeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSkippedNoDate:
		return "skipped-no-date"
	case OutcomeSkippedExisting:
		return "skipped-existing"
	case OutcomeCopyFailed:
		return "copy-failed"
	case OutcomeMetadataMerged:
		return "metadata-merged"
	case OutcomeMetadataMergeFailed:
		return "metadata-merge-failed"
	default:
		return "unknown"
	}
}

// Imported reports whether the candidate ended up copied to the destination.
func (o Outcome) Imported() bool {
	return o == OutcomeMetadataMerged || o == OutcomeMetadataMergeFailed
}

// Importer copies candidates into <root>/YYYY/MM/DD and merges the
// requested metadata into each copy. Candidates are processed one at a
// time; only a directory creation failure stops the run.
type Importer struct {
	destRoot  string
	request   MetadataRequest
	extractor *Extractor
	writer    TagWriter
	log       zerolog.Logger
}

// NewImporter builds an Importer. writer may be nil when request is empty.
func NewImporter(destRoot string, request MetadataRequest, reader TagReader, writer TagWriter, log zerolog.Logger) *Importer {
	return &Importer{
		destRoot:  destRoot,
		request:   request,
		extractor: NewExtractor(reader, log),
		writer:    writer,
		log:       log,
	}
}

// Run imports every candidate and returns the tally. The returned error is
// non-nil only when a destination directory could not be created; the
// summary then covers the candidates processed before the failure.
func (i *Importer) Run(candidates []PhotoCandidate) (Summary, error) {
	summary := Summary{Discovered: len(candidates)}
	for _, c := range candidates {
		outcome, size, err := i.ImportPhoto(c)
		if err != nil {
			return summary, err
		}
		switch outcome {
		case OutcomeSkippedNoDate:
			summary.SkippedNoDate++
		case OutcomeSkippedExisting:
			summary.SkippedExisting++
		case OutcomeCopyFailed:
			summary.CopyFailures++
		case OutcomeMetadataMergeFailed:
			summary.MetadataFailures++
		}
		if outcome.Imported() {
			summary.Imported++
			summary.BytesCopied += size
		}
	}
	return summary, nil
}

// ImportPhoto runs the per-candidate steps and returns the outcome with the
// number of bytes copied. Errors are returned only for ErrDirectoryCreation.
func (i *Importer) ImportPhoto(c PhotoCandidate) (Outcome, int64, error) {
	log := i.log.With().Str("file", c.Filename).Logger()

	created, err := i.extractor.CreationTime(c)
	if err != nil {
		log.Warn().Msg("Photo does not have a created date. Skipping..")
		return OutcomeSkippedNoDate, 0, nil
	}

	dayDir, err := CreateTargetDirectory(i.destRoot, created)
	if err != nil {
		return OutcomeCopyFailed, 0, err
	}

	destPath := filepath.Join(dayDir, c.Filename)
	exists, err := PathExists(destPath)
	if err != nil {
		log.Warn().Err(err).Msg("Unable to check destination. Skipping..")
		return OutcomeCopyFailed, 0, nil
	}
	if exists {
		log.Info().Msg("Photo already exists. Skipping..")
		return OutcomeSkippedExisting, 0, nil
	}

	log.Info().Str("dest", destPath).Msg("Copying photo ..")
	size, err := CopyFile(c.Path(), destPath)
	if err != nil {
		if errors.Is(err, ErrDestinationExists) {
			log.Info().Msg("Photo already exists. Skipping..")
			return OutcomeSkippedExisting, 0, nil
		}
		log.Warn().Err(err).Msg("Unable to copy photo")
		return OutcomeCopyFailed, 0, nil
	}

	if err := os.Chmod(destPath, importedFileMode); err != nil {
		log.Warn().Err(err).Msg("Unable to reset permissions")
	}

	if err := MergeMetadata(i.writer, destPath, i.request); err != nil {
		log.Warn().Err(err).Msg("Unable to write metadata")
		return OutcomeMetadataMergeFailed, size, nil
	}
	log.Debug().Str("dest", destPath).Int64("bytes", size).Msg("Photo imported")
	return OutcomeMetadataMerged, size, nil
}
