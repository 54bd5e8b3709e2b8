package test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/nvr-ai/go-filters/filters"
	"github.com/nvr-ai/go-filters/images"
	"github.com/nvr-ai/go-filters/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestShapePreservation verifies neither transform changes the buffer length
// or touches bytes past width*height*3.
func TestShapePreservation(t *testing.T) {
	gen := NewMockFrameGenerator(33, 17)

	testCases := []struct {
		name  string
		apply func(pix []byte) error
	}{
		{name: "grayscale", apply: func(pix []byte) error { return filters.ApplyGrayscale(pix, 33, 17) }},
		{name: "brightness", apply: func(pix []byte) error { return filters.ApplyBrightness(pix, 33, 17, 77) }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tail := []byte{1, 2, 3, 4}
			pix := append(gen.GenerateNoiseFrame(), tail...)
			n := len(pix)

			require.NoError(t, tc.apply(pix))
			assert.Len(t, pix, n)
			assert.Equal(t, tail, pix[n-len(tail):])
		})
	}
}

// TestGrayscaleThenBrightnessStaysGray checks that brightness keeps a gray
// image gray, since every channel moves by the same offset.
func TestGrayscaleThenBrightnessStaysGray(t *testing.T) {
	gen := NewMockFrameGenerator(64, 64)
	pix := gen.GenerateGradientFrame()

	require.NoError(t, filters.ApplyGrayscale(pix, 64, 64))
	for _, factor := range []int{-300, -40, 0, 13, 200} {
		work := Clone(pix)
		require.NoError(t, filters.ApplyBrightness(work, 64, 64, factor))
		for i := 0; i < len(work); i += 3 {
			require.Equal(t, work[i], work[i+1])
			require.Equal(t, work[i], work[i+2])
		}
	}
}

// TestFileRoundTrip runs a pipeline on a decoded PNG and checks the saved
// result against applying the filters to the raw fixture.
func TestFileRoundTrip(t *testing.T) {
	gen := NewMockFrameGenerator(48, 32)
	raw := gen.GenerateNoiseFrame()

	var buf bytes.Buffer
	require.NoError(t, images.Encode(&buf, &images.Frame{Pix: Clone(raw), Width: 48, Height: 32}, images.FormatPNG, images.EncodeOptions{}))

	frame, err := images.Decode(&buf)
	require.NoError(t, err)

	p, err := pipeline.New(&pipeline.Config{Steps: []pipeline.Step{
		{Op: pipeline.OpGrayscale},
		{Op: pipeline.OpBrightness, Factor: 30},
	}})
	require.NoError(t, err)
	require.NoError(t, p.RunFrame(frame))

	out := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, images.Save(out, frame, images.EncodeOptions{}))
	saved, err := images.Load(out)
	require.NoError(t, err)

	require.NoError(t, filters.ApplyGrayscale(raw, 48, 32))
	require.NoError(t, filters.ApplyBrightness(raw, 48, 32, 30))
	assert.Equal(t, images.Checksum(raw), images.Checksum(saved.Pix))
}
