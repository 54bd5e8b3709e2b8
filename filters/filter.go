package filters

import "strconv"

// Filter is a named in-place transform over a packed RGB buffer.
type Filter interface {
	// Name identifies the filter in logs and timing reports.
	Name() string
	// Apply transforms pixels in place.
	Apply(pixels []byte, width, height int) error
}

// Grayscale is the Filter form of ApplyGrayscale.
type Grayscale struct {
	Options []Option
}

// Name implements Filter.
func (Grayscale) Name() string { return "grayscale" }

// Apply implements Filter.
func (g Grayscale) Apply(pixels []byte, width, height int) error {
	return ApplyGrayscale(pixels, width, height, g.Options...)
}

// Brightness is the Filter form of ApplyBrightness.
type Brightness struct {
	Factor  int
	Options []Option
}

// Name implements Filter.
func (b Brightness) Name() string { return "brightness(" + strconv.Itoa(b.Factor) + ")" }

// Apply implements Filter.
func (b Brightness) Apply(pixels []byte, width, height int) error {
	return ApplyBrightness(pixels, width, height, b.Factor, b.Options...)
}
