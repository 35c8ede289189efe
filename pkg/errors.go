package pkg

import "github.com/pkg/errors"

var (
	// ErrPrecondition indicates an invalid source or destination argument.
	ErrPrecondition = errors.New("precondition failed")

	// ErrTimestampUnavailable indicates the creation timestamp could not be read or parsed.
	ErrTimestampUnavailable = errors.New("creation timestamp unavailable")

	// ErrDestinationExists indicates something already occupies the destination path.
	ErrDestinationExists = errors.New("destination already exists")

	// ErrDirectoryCreation indicates the date-bucketed destination directory could not be created.
	ErrDirectoryCreation = errors.New("failed to create destination directory")

	// ErrMetadataWrite indicates the copied file's tags could not be updated.
	ErrMetadataWrite = errors.New("failed to write metadata")
)
