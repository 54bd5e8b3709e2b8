// Package images - decoding, encoding and previewing packed RGB frames for the
// pixel filters.
package images

import (
	"image"

	"github.com/nvr-ai/go-filters/filters"
	"golang.org/x/image/draw"
)

// Frame is an owned, packed RGB888 buffer with its dimensions.
type Frame struct {
	// The format the frame was decoded from, or will be encoded to.
	Format ImageFormat `json:"format" yaml:"format"`
	// Pix holds Width*Height*3 bytes, row-major, R G B per pixel.
	Pix []byte `json:"-" yaml:"-"`
	// The width of the frame.
	Width int `json:"width" yaml:"width"`
	// The height of the frame.
	Height int `json:"height" yaml:"height"`
}

// NewFrame allocates a zeroed frame.
func NewFrame(width, height int) *Frame {
	return &Frame{
		Pix:    make([]byte, width*height*filters.Channels),
		Width:  width,
		Height: height,
	}
}

// Validate checks the frame's buffer against its dimensions.
func (f *Frame) Validate() error {
	_, err := filters.Validate(f.Pix, f.Width, f.Height)
	return err
}

// Clone returns a deep copy of the frame.
func (f *Frame) Clone() *Frame {
	out := *f
	out.Pix = make([]byte, len(f.Pix))
	copy(out.Pix, f.Pix)
	return &out
}

// FromImage packs any image into an RGB frame. Alpha is discarded after
// un-premultiplying, so the frame holds the colour a viewer would see on an
// opaque background of the same colour.
//
// Arguments:
// - img: The source image.
//
// Returns:
// - *Frame: A new frame with the image's width and height.
func FromImage(img image.Image) *Frame {
	b := img.Bounds()
	nrgba, ok := img.(*image.NRGBA)
	if !ok || b.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Copy(nrgba, image.Point{}, img, b, draw.Src, nil)
	}

	frame := NewFrame(b.Dx(), b.Dy())
	for y := 0; y < frame.Height; y++ {
		src := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+frame.Width*4]
		dst := frame.Pix[y*frame.Width*3 : (y+1)*frame.Width*3]
		for x := 0; x < frame.Width; x++ {
			dst[x*3] = src[x*4]
			dst[x*3+1] = src[x*4+1]
			dst[x*3+2] = src[x*4+2]
		}
	}
	return frame
}

// Image expands the frame into an opaque NRGBA image for encoding or drawing.
func (f *Frame) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		src := f.Pix[y*f.Width*3 : (y+1)*f.Width*3]
		dst := img.Pix[y*img.Stride : y*img.Stride+f.Width*4]
		for x := 0; x < f.Width; x++ {
			dst[x*4] = src[x*3]
			dst[x*4+1] = src[x*3+1]
			dst[x*4+2] = src[x*3+2]
			dst[x*4+3] = 0xff
		}
	}
	return img
}
