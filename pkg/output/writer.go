package output

import (
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

var ErrUnsupportedFormat = errors.New("output: unsupported image format")

// Formats lists the image formats that can be written
var Formats = []string{"png", "bmp", "tiff"}

// Encode writes img to w in the named format
func Encode(w io.Writer, img image.Image, format string) error {
	switch strings.ToLower(format) {
	case "png":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff", "tif":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	default:
		return errors.Wrapf(ErrUnsupportedFormat, "%q", format)
	}
}

// FormatFromName infers the image format from a file extension
func FormatFromName(filename string) (string, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	switch ext {
	case "png", "bmp":
		return ext, nil
	case "tiff", "tif":
		return "tiff", nil
	default:
		return "", errors.Wrapf(ErrUnsupportedFormat, "cannot infer format of %q", filename)
	}
}

// Save writes img to filename in the named format
func Save(filename string, img image.Image, format string) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "failed to create output file")
	}

	if err := Encode(file, img, format); err != nil {
		file.Close()
		return errors.Wrapf(err, "failed to encode %s", filename)
	}
	return errors.Wrap(file.Close(), "failed to close output file")
}
