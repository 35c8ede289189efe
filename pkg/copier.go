package pkg

import (
	"io"
	"os"

	"github.com/djherbis/times"
	"github.com/pkg/errors"
)

// PathExists reports whether any filesystem entry, including a broken
// symbolic link, occupies path.
func PathExists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Wrapf(err, "check %s", path)
}

// CopyFile copies srcPath to destPath, following a symbolic link at srcPath,
// and carries over the permission bits and access/modification times.
// An existing entry at destPath is never replaced: ErrDestinationExists is
// returned instead. On any other failure nothing is left at destPath.
// Returns the number of bytes copied.
func CopyFile(srcPath, destPath string) (int64, error) {
	sourceFile, err := os.Open(srcPath)
	if err != nil {
		return 0, errors.Wrapf(err, "open source file %s", srcPath)
	}
	defer sourceFile.Close()

	sourceInfo, err := sourceFile.Stat()
	if err != nil {
		return 0, errors.Wrapf(err, "stat source file %s", srcPath)
	}

	destinationFile, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		if os.IsExist(err) {
			return 0, errors.Wrap(ErrDestinationExists, destPath)
		}
		return 0, errors.Wrapf(err, "create destination file %s", destPath)
	}

	size, err := io.Copy(destinationFile, sourceFile)
	if err == nil {
		err = destinationFile.Sync()
	}
	if closeErr := destinationFile.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		// Clean up partial file on error
		_ = os.Remove(destPath)
		return 0, errors.Wrapf(err, "copy content from %s to %s", srcPath, destPath)
	}

	if err := copyAttributes(destPath, sourceInfo); err != nil {
		// A copy without its attributes is removed too, so the next run retries it.
		_ = os.Remove(destPath)
		return 0, err
	}
	return size, nil
}

// chtimes is swapped out in tests to exercise attribute failures.
var chtimes = os.Chtimes

func copyAttributes(destPath string, sourceInfo os.FileInfo) error {
	if err := os.Chmod(destPath, sourceInfo.Mode().Perm()); err != nil {
		return errors.Wrapf(err, "copy permissions to %s", destPath)
	}

	// Times were captured before the copy touched the source's access time.
	ts := times.Get(sourceInfo)
	if err := chtimes(destPath, ts.AccessTime(), ts.ModTime()); err != nil {
		return errors.Wrapf(err, "copy timestamps to %s", destPath)
	}
	return nil
}
