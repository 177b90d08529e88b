// Package output writes finished images to disk and assembles frame directories into movies.
package output

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

var ErrUnknownFormat = errors.New("unknown image format")

// Encoder writes one image in a particular file format.
type Encoder interface {
	Encode(w io.Writer, img image.Image) error
	Extension() string
}

type pngEncoder struct{}

func (pngEncoder) Encode(w io.Writer, img image.Image) error { return png.Encode(w, img) }
func (pngEncoder) Extension() string                          { return "png" }

type jpegEncoder struct {
	quality int
}

func (e jpegEncoder) Encode(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: e.quality})
}
func (jpegEncoder) Extension() string { return "jpg" }

type bmpEncoder struct{}

func (bmpEncoder) Encode(w io.Writer, img image.Image) error { return bmp.Encode(w, img) }
func (bmpEncoder) Extension() string                          { return "bmp" }

type tiffEncoder struct{}

func (tiffEncoder) Encode(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
}
func (tiffEncoder) Extension() string { return "tiff" }

// EncoderFor picks an encoder by format name or file extension, with or without the leading dot.
func EncoderFor(format string) (Encoder, error) {
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "png":
		return pngEncoder{}, nil
	case "jpg", "jpeg":
		return jpegEncoder{quality: 95}, nil
	case "bmp":
		return bmpEncoder{}, nil
	case "tif", "tiff":
		return tiffEncoder{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Save encodes img into path using the format named by the path's extension. A file that could not be
// written completely is removed.
func Save(path string, img image.Image) error {
	encoder, err := EncoderFor(filepath.Ext(path))
	if err != nil {
		return err
	}
	return SaveAs(path, img, encoder)
}

func SaveAs(path string, img image.Image, encoder Encoder) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create image %s - %w", path, err)
	}
	if err = encoder.Encode(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("unable to encode image %s - %w", path, err)
	}
	if err = f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("unable to close image %s - %w", path, err)
	}
	return nil
}

// FramePath names frame index of a sequence inside directory.
func FramePath(directory string, index int, encoder Encoder) string {
	return filepath.Join(directory, fmt.Sprintf("frame%d.%s", index, encoder.Extension()))
}
