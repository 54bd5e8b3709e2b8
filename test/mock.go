// Package test - deterministic RGB fixtures shared by package tests.
package test

import "math/rand"

// MockFrameGenerator creates deterministic packed RGB buffers for idempotent testing.
//
// @example
// gen := NewMockFrameGenerator(640, 480)
// pix := gen.GenerateGradientFrame()
type MockFrameGenerator struct {
	width  int
	height int
	seed   int64
}

// NewMockFrameGenerator creates a new frame generator with specified dimensions.
//
// Arguments:
// - width: Frame width in pixels.
// - height: Frame height in pixels.
//
// Returns:
// - A configured MockFrameGenerator instance.
//
// @example
// gen := NewMockFrameGenerator(1920, 1080)
func NewMockFrameGenerator(width, height int) *MockFrameGenerator {
	return &MockFrameGenerator{
		width:  width,
		height: height,
		seed:   42, // Deterministic seed for reproducibility.
	}
}

// Width returns the frame width.
func (g *MockFrameGenerator) Width() int { return g.width }

// Height returns the frame height.
func (g *MockFrameGenerator) Height() int { return g.height }

// Len returns the byte length of a generated frame.
func (g *MockFrameGenerator) Len() int { return g.width * g.height * 3 }

// GenerateSolidFrame creates a frame filled with a single colour.
//
// Arguments:
// - r, g, b: Channel values for every pixel.
//
// Returns:
// - A packed RGB buffer.
func (g *MockFrameGenerator) GenerateSolidFrame(r, gr, b uint8) []byte {
	pix := make([]byte, g.Len())
	for i := 0; i < len(pix); i += 3 {
		pix[i], pix[i+1], pix[i+2] = r, gr, b
	}
	return pix
}

// GenerateGradientFrame creates a frame where red follows x, green follows y
// and blue follows x+y, covering the full 0-255 range on each axis.
//
// Returns:
// - A packed RGB buffer.
func (g *MockFrameGenerator) GenerateGradientFrame() []byte {
	pix := make([]byte, g.Len())
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			i := (y*g.width + x) * 3
			pix[i] = uint8(x * 255 / max(g.width-1, 1))
			pix[i+1] = uint8(y * 255 / max(g.height-1, 1))
			pix[i+2] = uint8((x + y) * 255 / max(g.width+g.height-2, 1))
		}
	}
	return pix
}

// GenerateNoiseFrame creates a frame of seeded pseudo-random bytes. The same
// generator always returns the same noise.
//
// Returns:
// - A packed RGB buffer.
func (g *MockFrameGenerator) GenerateNoiseFrame() []byte {
	pix := make([]byte, g.Len())
	rng := rand.New(rand.NewSource(g.seed))
	rng.Read(pix)
	return pix
}

// Clone returns a copy of pix.
func Clone(pix []byte) []byte {
	out := make([]byte, len(pix))
	copy(out, pix)
	return out
}
