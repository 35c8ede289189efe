package pkg

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// NormalizePath expands environment variables and a leading "~" and
// returns the absolute, cleaned form of path.
func NormalizePath(path string) (string, error) {
	expanded := os.ExpandEnv(path)
	if expanded == "~" || strings.HasPrefix(expanded, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrapf(err, "expand home directory in %q", path)
		}
		expanded = filepath.Join(home, strings.TrimPrefix(expanded, "~"))
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", errors.Wrapf(err, "resolve absolute path of %q", path)
	}
	return abs, nil
}

// CheckDirectory verifies that path is an existing, readable directory,
// and also writable when writable is set. Failures wrap ErrPrecondition.
func CheckDirectory(path string, writable bool) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(ErrPrecondition, "directory '%s' does not exist", path)
		}
		return errors.Wrapf(ErrPrecondition, "could not stat '%s': %v", path, err)
	}
	if !info.IsDir() {
		return errors.Wrapf(ErrPrecondition, "'%s' is not a directory", path)
	}

	mode := uint32(unix.R_OK | unix.X_OK)
	if writable {
		mode |= unix.W_OK
	}
	if err := unix.Access(path, mode); err != nil {
		if writable {
			return errors.Wrapf(ErrPrecondition, "directory '%s' is not writable: %v", path, err)
		}
		return errors.Wrapf(ErrPrecondition, "directory '%s' is not readable: %v", path, err)
	}
	return nil
}

// DestinationDir returns <root>/<YYYY>/<MM>/<DD> for the given date.
func DestinationDir(root string, date time.Time) string {
	return filepath.Join(root, date.Format("2006"), date.Format("01"), date.Format("02"))
}

// CreateTargetDirectory creates the year/month/day directory structure
// (YYYY/MM/DD) within the target base directory. The directory already
// existing is success; anything else wraps ErrDirectoryCreation.
func CreateTargetDirectory(targetBaseDir string, date time.Time) (string, error) {
	dayDir := DestinationDir(targetBaseDir, date)

	mkErr := os.MkdirAll(dayDir, 0755)
	// Only "exists and is a directory" counts, whatever MkdirAll reported.
	if info, err := os.Stat(dayDir); err == nil && info.IsDir() {
		return dayDir, nil
	}
	if mkErr == nil {
		mkErr = errors.Errorf("%s is not a directory", dayDir)
	}
	return "", errors.Wrapf(ErrDirectoryCreation, "%s: %v", dayDir, mkErr)
}
