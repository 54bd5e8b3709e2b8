package images

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/nvr-ai/go-filters/test"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeLossless(t *testing.T) {
	gen := test.NewMockFrameGenerator(17, 11)
	frame := &Frame{Pix: gen.GenerateNoiseFrame(), Width: 17, Height: 11}

	for _, format := range []ImageFormat{FormatPNG, FormatBMP, FormatTIFF} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, frame, format, EncodeOptions{}))

			back, err := Decode(&buf)
			require.NoError(t, err)
			assert.Equal(t, format, back.Format)
			assert.Equal(t, frame.Pix, back.Pix)
		})
	}
}

func TestEncodeDecodeJPEG(t *testing.T) {
	gen := test.NewMockFrameGenerator(32, 32)
	frame := &Frame{Pix: gen.GenerateSolidFrame(120, 120, 120), Width: 32, Height: 32}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, frame, FormatJPEG, EncodeOptions{Quality: 100}))

	back, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, FormatJPEG, back.Format)
	require.Len(t, back.Pix, len(frame.Pix))
	for i := range back.Pix {
		assert.InDelta(t, 120, int(back.Pix[i]), 3, "byte %d", i)
	}
}

func TestEncodeRejects(t *testing.T) {
	var buf bytes.Buffer

	err := Encode(&buf, NewFrame(1, 1), ImageFormat("gif"), EncodeOptions{})
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))

	err = Encode(&buf, &Frame{Pix: []byte{1}, Width: 1, Height: 1}, FormatPNG, EncodeOptions{})
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	gen := test.NewMockFrameGenerator(8, 6)
	frame := &Frame{Pix: gen.GenerateGradientFrame(), Width: 8, Height: 6}

	path := filepath.Join(dir, "out.png")
	require.NoError(t, Save(path, frame, EncodeOptions{}))

	back, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, frame.Pix, back.Pix)

	err = Save(filepath.Join(dir, "out.gif"), frame, EncodeOptions{})
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))

	_, err = Load(filepath.Join(dir, "missing.png"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestSaveRemovesFileOnEncodeError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.png")
	frame := &Frame{Pix: make([]byte, 2), Width: 2, Height: 2}

	err := Save(path, frame, EncodeOptions{})
	assert.Error(t, err)

	_, statErr := os.Stat(path)
	assert.True(t, errors.Is(statErr, os.ErrNotExist))
}
