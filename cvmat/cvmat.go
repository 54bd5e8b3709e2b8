// Package cvmat - runs the pixel filters directly on OpenCV frames.
//
// OpenCV stores colour frames as BGR. Both filters treat the three channels
// the same way, so the byte order makes no difference to the result.
package cvmat

import (
	"github.com/nvr-ai/go-filters/filters"
	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

var (
	// ErrEmptyMat is returned for a Mat with no data.
	ErrEmptyMat = errors.New("mat is empty")
	// ErrUnsupportedType is returned for any Mat type other than CV_8UC3.
	ErrUnsupportedType = errors.New("mat type must be CV_8UC3")
	// ErrNotContinuous is returned for ROI views whose rows are not packed.
	ErrNotContinuous = errors.New("mat is not continuous")
)

// Validate checks that mat is a packed 8-bit, 3-channel frame.
func Validate(mat gocv.Mat) error {
	if mat.Empty() {
		return ErrEmptyMat
	}
	if t := mat.Type(); t != gocv.MatTypeCV8UC3 {
		return errors.Wrapf(ErrUnsupportedType, "got %v", t)
	}
	if !mat.IsContinuous() {
		return ErrNotContinuous
	}
	return nil
}

// pixels returns the Mat's own memory, so writes land in the frame.
func pixels(mat gocv.Mat) ([]byte, error) {
	if err := Validate(mat); err != nil {
		return nil, err
	}
	data, err := mat.DataPtrUint8()
	if err != nil {
		return nil, errors.Wrap(err, "failed to access mat data")
	}
	return data, nil
}

// ApplyGrayscale averages every pixel of mat in place. The Mat keeps its
// three channels.
//
// Arguments:
// - mat: A CV_8UC3 continuous frame.
// - opts: Optional parallelism settings.
//
// Returns:
// - error: An error if mat is not a packed 3-channel 8-bit frame.
func ApplyGrayscale(mat gocv.Mat, opts ...filters.Option) error {
	data, err := pixels(mat)
	if err != nil {
		return err
	}
	return filters.ApplyGrayscale(data, mat.Cols(), mat.Rows(), opts...)
}

// ApplyBrightness offsets every channel of mat in place with saturation.
//
// Arguments:
// - mat: A CV_8UC3 continuous frame.
// - factor: The signed offset added to each channel.
// - opts: Optional parallelism settings.
//
// Returns:
// - error: An error if mat is not a packed 3-channel 8-bit frame.
func ApplyBrightness(mat gocv.Mat, factor int, opts ...filters.Option) error {
	data, err := pixels(mat)
	if err != nil {
		return err
	}
	return filters.ApplyBrightness(data, mat.Cols(), mat.Rows(), factor, opts...)
}
