package pkg

import (
	"fmt"
	"io"
)

// Summary counts what happened to the candidates of one import run.
type Summary struct {
	Discovered       int
	Imported         int // copied, whether or not the metadata merge succeeded
	SkippedExisting  int
	SkippedNoDate    int
	CopyFailures     int
	MetadataFailures int
	BytesCopied      int64
}

// GenerateReport writes a human-readable summary of the run to w.
func GenerateReport(w io.Writer, s Summary) error {
	lines := []string{
		"Photo Import Summary",
		"====================",
		fmt.Sprintf("  - Photos found: %d", s.Discovered),
		fmt.Sprintf("  - Photos imported: %d (%d bytes)", s.Imported, s.BytesCopied),
		fmt.Sprintf("  - Skipped, already present: %d", s.SkippedExisting),
		fmt.Sprintf("  - Skipped, no created date: %d", s.SkippedNoDate),
	}
	if s.CopyFailures > 0 {
		lines = append(lines, fmt.Sprintf("  - Copy failures: %d", s.CopyFailures))
	}
	if s.MetadataFailures > 0 {
		lines = append(lines, fmt.Sprintf("  - Imported without metadata update: %d", s.MetadataFailures))
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
