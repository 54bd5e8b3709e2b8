package util

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/nvr-ai/go-filters/images"
	"github.com/pkg/errors"
)

// ImageFile represents an image file.
type ImageFile struct {
	// Path is the path to the image file.
	Path string
	// Name is the base name of the image file.
	Name string
	// Format is the format implied by the file extension.
	Format images.ImageFormat
	// Data is the raw bytes of the image file.
	Data []byte
}

// LoadDirectoryImageFiles reads all supported image files from a directory.
// Subdirectories and files with unknown extensions are skipped.
//
// Arguments:
// - dir: Directory path containing image files.
//
// Returns:
// - []ImageFile: Slice of ImageFile sorted by name, each containing the raw bytes of an image file.
// - error: Error if loading fails.
func LoadDirectoryImageFiles(dir string) ([]ImageFile, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read directory %s", dir)
	}

	var imageFiles []ImageFile
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		format, err := images.FormatFromPath(file.Name())
		if err != nil {
			continue
		}

		imgPath := filepath.Join(dir, file.Name())
		data, readErr := os.ReadFile(imgPath)
		if readErr != nil {
			return nil, errors.Wrapf(readErr, "failed to read %s", imgPath)
		}
		imageFiles = append(imageFiles, ImageFile{
			Path:   imgPath,
			Name:   file.Name(),
			Format: format,
			Data:   data,
		})
	}

	sort.Slice(imageFiles, func(i, j int) bool {
		return imageFiles[i].Name < imageFiles[j].Name
	})

	return imageFiles, nil
}
