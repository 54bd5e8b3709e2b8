package filters

import "github.com/pkg/errors"

var (
	// ErrInvalidDimensions is returned when width or height is negative.
	ErrInvalidDimensions = errors.New("invalid dimensions")
	// ErrBufferTooShort is returned when the buffer cannot hold width*height pixels.
	ErrBufferTooShort = errors.New("buffer too short")
)
