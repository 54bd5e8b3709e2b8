package images

import (
	"math"
	"strings"

	"github.com/nfnt/resize"
)

// Fit scales frame down so it fits inside maxWidth x maxHeight, keeping the
// aspect ratio. Frames that already fit are copied unchanged; frames are
// never enlarged.
//
// Arguments:
// - frame: The source frame. It is not modified.
// - maxWidth: The bounding box width. Non-positive disables fitting.
// - maxHeight: The bounding box height. Non-positive disables fitting.
//
// Returns:
// - *Frame: A new frame, resampled with Lanczos3 when scaled.
func Fit(frame *Frame, maxWidth, maxHeight int) *Frame {
	if maxWidth <= 0 || maxHeight <= 0 || frame.Width == 0 || frame.Height == 0 {
		return frame.Clone()
	}

	// float64 keeps the limiting side exactly on the box edge.
	ratio := math.Min(
		float64(maxWidth)/float64(frame.Width),
		float64(maxHeight)/float64(frame.Height),
	)
	if ratio >= 1 {
		return frame.Clone()
	}

	width := max(int(float64(frame.Width)*ratio), 1)
	height := max(int(float64(frame.Height)*ratio), 1)

	scaled := resize.Resize(uint(width), uint(height), frame.Image(), resize.Lanczos3)

	out := FromImage(scaled)
	out.Format = frame.Format

	Logger().Debug("images: fitted preview",
		"from_width", frame.Width, "from_height", frame.Height,
		"to_width", out.Width, "to_height", out.Height)
	return out
}

// Resolution is a named preview bounding box.
type Resolution struct {
	Name   string `json:"name"   yaml:"name"`
	Width  int    `json:"width"  yaml:"width"`
	Height int    `json:"height" yaml:"height"`
}

// Resolutions lists the preview presets accepted by LookupResolution.
var Resolutions = []Resolution{
	{Name: "nhd", Width: 640, Height: 360},
	{Name: "vga", Width: 640, Height: 480},
	{Name: "svga", Width: 800, Height: 600},
	{Name: "720p", Width: 1280, Height: 720},
	{Name: "1080p", Width: 1920, Height: 1080},
	{Name: "1440p", Width: 2560, Height: 1440},
	{Name: "4k", Width: 3840, Height: 2160},
}

// LookupResolution finds a preset by name, case-insensitively.
func LookupResolution(name string) (Resolution, bool) {
	for _, r := range Resolutions {
		if strings.EqualFold(r.Name, name) {
			return r, true
		}
	}
	return Resolution{}, false
}
