package filters

// MaxBrightnessFactor is the largest factor magnitude that can still change a
// channel. Anything beyond it saturates every channel.
const MaxBrightnessFactor = 255

// ApplyBrightness adds factor to every channel of every pixel, in place,
// saturating each channel independently to [0, 255].
//
// A zero factor is an identity. Factors beyond ±255 are valid and turn the
// whole image white or black.
//
// Arguments:
// - pixels: The packed RGB buffer, at least width*height*3 bytes long.
// - width: The image width in pixels.
// - height: The image height in pixels.
// - factor: The signed offset to add to each channel.
// - opts: Optional parallelism settings.
//
// Returns:
// - error: ErrInvalidDimensions or ErrBufferTooShort. The buffer is untouched on error.
func ApplyBrightness(pixels []byte, width, height, factor int, opts ...Option) error {
	n, err := Validate(pixels, width, height)
	if err != nil || n == 0 || factor == 0 {
		return err
	}

	// Clamping the factor keeps channel+factor far from int overflow and does
	// not change any result.
	factor = clamp(factor, -MaxBrightnessFactor, MaxBrightnessFactor)

	Parallel(n, newOptions(opts), func(partStart, partEnd int) {
		brightnessRange(pixels[partStart*Channels:partEnd*Channels], factor)
	})
	return nil
}

// brightnessRange offsets a run of whole pixels.
func brightnessRange(pix []byte, factor int) {
	for i := range pix {
		pix[i] = uint8(clamp(int(pix[i])+factor, 0, 255))
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
