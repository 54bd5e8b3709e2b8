package filters

import (
	"testing"

	"github.com/nvr-ai/go-filters/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyGrayscale(t *testing.T) {
	testCases := []struct {
		name   string
		pixels []byte
		want   []byte
	}{
		{name: "average", pixels: []byte{10, 20, 30}, want: []byte{20, 20, 20}},
		{name: "truncates", pixels: []byte{1, 1, 0}, want: []byte{0, 0, 0}},
		{name: "truncates_not_rounds", pixels: []byte{255, 0, 0}, want: []byte{85, 85, 85}},
		{name: "two_thirds", pixels: []byte{2, 2, 1}, want: []byte{1, 1, 1}},
		{name: "white", pixels: []byte{255, 255, 255}, want: []byte{255, 255, 255}},
		{name: "black", pixels: []byte{0, 0, 0}, want: []byte{0, 0, 0}},
		{name: "already_gray", pixels: []byte{77, 77, 77}, want: []byte{77, 77, 77}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, ApplyGrayscale(tc.pixels, 1, 1))
			assert.Equal(t, tc.want, tc.pixels)
		})
	}
}

func TestApplyGrayscaleMatchesAverage(t *testing.T) {
	gen := test.NewMockFrameGenerator(64, 48)
	pix := gen.GenerateNoiseFrame()
	orig := test.Clone(pix)

	require.NoError(t, ApplyGrayscale(pix, gen.Width(), gen.Height()))
	require.Len(t, pix, len(orig))

	for i := 0; i < len(pix); i += Channels {
		want := (int(orig[i]) + int(orig[i+1]) + int(orig[i+2])) / 3
		assert.Equal(t, pix[i], pix[i+1], "pixel %d", i/Channels)
		assert.Equal(t, pix[i], pix[i+2], "pixel %d", i/Channels)
		assert.Equal(t, want, int(pix[i]), "pixel %d", i/Channels)
	}
}

func TestApplyGrayscaleIdempotent(t *testing.T) {
	gen := test.NewMockFrameGenerator(32, 32)
	once := gen.GenerateGradientFrame()
	require.NoError(t, ApplyGrayscale(once, 32, 32))

	twice := test.Clone(once)
	require.NoError(t, ApplyGrayscale(twice, 32, 32))

	assert.Equal(t, once, twice)
}

func TestApplyGrayscaleLeavesTrailingBytes(t *testing.T) {
	pix := []byte{10, 20, 30, 1, 2, 3, 200}
	require.NoError(t, ApplyGrayscale(pix, 1, 1))
	assert.Equal(t, []byte{20, 20, 20, 1, 2, 3, 200}, pix)
}

func TestApplyGrayscaleParallelMatchesSerial(t *testing.T) {
	gen := test.NewMockFrameGenerator(301, 199)
	serial := gen.GenerateNoiseFrame()
	parallel := test.Clone(serial)

	require.NoError(t, ApplyGrayscale(serial, 301, 199, WithWorkers(1)))
	require.NoError(t, ApplyGrayscale(parallel, 301, 199, WithWorkers(7), WithMinParallelPixels(1)))

	assert.Equal(t, serial, parallel)
}

func TestGrayscaleFilter(t *testing.T) {
	var f Filter = Grayscale{}
	pix := []byte{10, 20, 30, 0, 0, 3}
	require.NoError(t, f.Apply(pix, 2, 1))
	assert.Equal(t, "grayscale", f.Name())
	assert.Equal(t, []byte{20, 20, 20, 1, 1, 1}, pix)
}
