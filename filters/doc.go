// Package filters - in-place pixel transforms over packed RGB888 buffers.
//
// A buffer holds width*height pixels in row-major order, three bytes per pixel
// and no padding. The caller owns the buffer: every transform borrows it for
// the duration of the call, validates its shape, and writes the result back
// into the same bytes.
//
// Both transforms treat the three channels symmetrically, so BGR buffers
// (OpenCV frames) work unchanged.
package filters
