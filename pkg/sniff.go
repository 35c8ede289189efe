package pkg

import (
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"os"

	_ "github.com/vegidio/heif-go" // Register HEIF/HEVC decoder
	_ "golang.org/x/image/bmp"     // Register BMP decoder
	_ "golang.org/x/image/tiff"    // Register TIFF decoder (also covers TIFF-based raws such as DNG)
	_ "golang.org/x/image/webp"    // Register WebP decoder
)

// IsPhoto reports whether the file at path is in a recognized image format.
// Detection is by content: only the header needed by image.DecodeConfig is read.
func IsPhoto(path string) bool {
	_, err := DetectFormat(path)
	return err == nil
}

// DetectFormat returns the registered image format name of the file at path.
func DetectFormat(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	_, format, err := image.DecodeConfig(file)
	if err != nil {
		return "", err
	}
	return format, nil
}
