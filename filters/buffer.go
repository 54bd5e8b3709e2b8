package filters

import (
	"math"

	"github.com/pkg/errors"
)

// Channels is the number of bytes per pixel.
const Channels = 3

// Validate checks that pixels can hold a width x height RGB image.
//
// Arguments:
// - pixels: The packed RGB buffer.
// - width: The image width in pixels.
// - height: The image height in pixels.
//
// Returns:
// - int: The number of pixels to visit (width*height).
// - error: ErrInvalidDimensions or ErrBufferTooShort, wrapped with the offending values.
func Validate(pixels []byte, width, height int) (int, error) {
	if width < 0 || height < 0 {
		return 0, errors.Wrapf(ErrInvalidDimensions, "width=%d height=%d", width, height)
	}
	if width == 0 || height == 0 {
		return 0, nil
	}
	// No slice can be longer than MaxInt, so an overflowing product is always too short.
	if width > math.MaxInt/Channels/height {
		return 0, errors.Wrapf(ErrBufferTooShort, "%dx%d image overflows int", width, height)
	}
	n := width * height
	if need := n * Channels; len(pixels) < need {
		return 0, errors.Wrapf(ErrBufferTooShort, "need %d bytes for %dx%d, have %d", need, width, height, len(pixels))
	}
	return n, nil
}
