package images

import (
	"bufio"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/chai2010/webp"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// DefaultJPEGQuality is used when EncodeOptions.Quality is zero.
const DefaultJPEGQuality = 95

// EncodeOptions tunes lossy encoders.
type EncodeOptions struct {
	// Quality in [1, 100] for JPEG and lossy WebP. Zero selects DefaultJPEGQuality.
	Quality int `json:"quality" yaml:"quality"`
	// Lossless selects lossless WebP.
	Lossless bool `json:"lossless" yaml:"lossless"`
}

// Decode reads any registered image format and packs it into an RGB frame.
//
// Arguments:
// - r: The encoded image stream.
//
// Returns:
// - *Frame: The decoded frame, Format set from the detected codec.
// - error: An error if the stream is not a supported image.
func Decode(r io.Reader) (*Frame, error) {
	img, name, err := image.Decode(r)
	if err != nil {
		return nil, errors.Wrap(err, "image decoding failed")
	}

	frame := FromImage(img)
	frame.Format = ImageFormat(name)

	Logger().Debug("images: decoded", "format", name, "width", frame.Width, "height", frame.Height)
	return frame, nil
}

// Load decodes the image file at path.
func Load(path string) (*Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	frame, err := Decode(bufio.NewReader(f))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", path)
	}
	return frame, nil
}

// Encode writes frame to w in the given format.
//
// Arguments:
// - w: The destination stream.
// - frame: The frame to encode. Its buffer must match its dimensions.
// - format: The output format.
// - opts: Quality settings for lossy formats.
//
// Returns:
// - error: An error if the frame is malformed, the format unknown, or the write fails.
func Encode(w io.Writer, frame *Frame, format ImageFormat, opts EncodeOptions) error {
	if err := frame.Validate(); err != nil {
		return errors.Wrap(err, "invalid frame")
	}

	quality := opts.Quality
	if quality <= 0 {
		quality = DefaultJPEGQuality
	}
	if quality > 100 {
		quality = 100
	}

	img := frame.Image()

	var err error
	switch format {
	case FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case FormatWebP:
		err = webp.Encode(w, img, &webp.Options{Lossless: opts.Lossless, Quality: float32(quality)})
	default:
		return errors.Wrapf(ErrUnsupportedFormat, "format %q", format)
	}
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s", format)
	}

	Logger().Debug("images: encoded", "format", format, "width", frame.Width, "height", frame.Height)
	return nil
}

// Save encodes frame to path, picking the format from the extension.
func Save(path string, frame *Frame, opts EncodeOptions) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}

	w := bufio.NewWriter(f)
	if err := Encode(w, frame, format, opts); err != nil {
		discard(f, path)
		return err
	}
	if err := w.Flush(); err != nil {
		discard(f, path)
		return errors.Wrapf(err, "failed to write %s", path)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return errors.Wrapf(err, "failed to close %s", path)
	}
	return nil
}

// discard closes and removes a partially written file.
func discard(f *os.File, path string) {
	f.Close()
	if err := os.Remove(path); err != nil {
		Logger().Debug("images: failed to remove partial file", "path", path, "error", err)
	}
}
