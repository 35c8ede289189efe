package photoimport

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/user/photo-import/pkg"
)

// Options carries everything one import run needs, built fresh per invocation.
type Options struct {
	SourceDir    string
	DestDir      string
	Request      pkg.MetadataRequest
	ExiftoolPath string
}

// NewLogger returns a console logger writing one human-readable line per event.
func NewLogger(out io.Writer, verbose, noColor bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05", NoColor: noColor}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// checkDirectories normalizes and validates the source and destination
// arguments before any work begins.
func checkDirectories(opts Options) (sourceDir, destDir string, err error) {
	if sourceDir, err = pkg.NormalizePath(opts.SourceDir); err != nil {
		return "", "", err
	}
	if err = pkg.CheckDirectory(sourceDir, false); err != nil {
		return "", "", err
	}
	if destDir, err = pkg.NormalizePath(opts.DestDir); err != nil {
		return "", "", err
	}
	if err = pkg.CheckDirectory(destDir, true); err != nil {
		return "", "", err
	}
	return sourceDir, destDir, nil
}

// openStore starts exiftool. Without it timestamps are still read natively,
// but tags cannot be written.
func openStore(opts Options, log zerolog.Logger) (pkg.TagReader, pkg.TagWriter, func()) {
	store, err := pkg.NewExiftoolStore(opts.ExiftoolPath)
	if err != nil {
		if opts.Request.IsEmpty() {
			log.Debug().Err(err).Msg("exiftool not available")
		} else {
			log.Warn().Err(err).Msg("exiftool not available, metadata will not be written")
		}
		return pkg.ExifReader{}, nil, func() {}
	}
	closeStore := func() {
		if err := store.Close(); err != nil {
			log.Debug().Err(err).Msg("closing exiftool")
		}
	}
	return pkg.TagReaders{pkg.ExifReader{}, store}, store, closeStore
}

// RunImport validates the arguments, discovers photos in the source
// directory and imports them into the destination tree. The summary is
// written to out. A non-nil error means the run failed: either a
// precondition (pkg.ErrPrecondition) or a destination directory that could
// not be created (pkg.ErrDirectoryCreation).
func RunImport(opts Options, log zerolog.Logger, out io.Writer) error {
	sourceDir, destDir, err := checkDirectories(opts)
	if err != nil {
		return err
	}
	log.Info().Str("source", sourceDir).Str("destination", destDir).Msg("Importing photos")

	candidates, err := pkg.DiscoverPhotos(sourceDir, pkg.IsPhoto)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		log.Info().Msg("No photos found in source directory")
		return pkg.GenerateReport(out, pkg.Summary{})
	}
	log.Debug().Int("count", len(candidates)).Msg("Found photos")

	reader, writer, closeStore := openStore(opts, log)
	defer closeStore()

	importer := pkg.NewImporter(destDir, opts.Request, reader, writer, log)
	summary, runErr := importer.Run(candidates)
	if err := pkg.GenerateReport(out, summary); err != nil && runErr == nil {
		return err
	}
	return runErr
}
