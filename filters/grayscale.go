package filters

// ApplyGrayscale replaces every pixel with the unweighted average of its
// three channels, in place.
//
// The average is truncated: (r+g+b)/3 with integer division. A pixel whose
// channels are already equal is left as is, so applying the transform twice
// gives the same buffer as applying it once.
//
// Arguments:
// - pixels: The packed RGB buffer, at least width*height*3 bytes long.
// - width: The image width in pixels.
// - height: The image height in pixels.
// - opts: Optional parallelism settings.
//
// Returns:
// - error: ErrInvalidDimensions or ErrBufferTooShort. The buffer is untouched on error.
func ApplyGrayscale(pixels []byte, width, height int, opts ...Option) error {
	n, err := Validate(pixels, width, height)
	if err != nil || n == 0 {
		return err
	}

	Parallel(n, newOptions(opts), func(partStart, partEnd int) {
		grayscaleRange(pixels[partStart*Channels : partEnd*Channels])
	})
	return nil
}

// grayscaleRange converts a run of whole pixels.
func grayscaleRange(pix []byte) {
	for i := 0; i+2 < len(pix); i += Channels {
		// Sum of three bytes is at most 765, well inside uint32.
		gray := uint8((uint32(pix[i]) + uint32(pix[i+1]) + uint32(pix[i+2])) / 3)
		pix[i], pix[i+1], pix[i+2] = gray, gray, gray
	}
}
