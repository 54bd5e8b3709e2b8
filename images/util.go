package images

import (
	"crypto/md5"
	"fmt"
)

// Checksum generates a deterministic checksum for a pixel buffer to verify idempotency.
//
// Arguments:
// - pix: The buffer to compute checksum for.
//
// Returns:
// - A hex-encoded MD5 checksum string, or "empty" for an empty buffer.
//
// Example:
//
// ```go
//
//	before := Checksum(frame.Pix)
//	_ = filters.ApplyGrayscale(frame.Pix, frame.Width, frame.Height)
//	fmt.Println(before != Checksum(frame.Pix))
//
// ```
func Checksum(pix []byte) string {
	if len(pix) == 0 {
		return "empty"
	}
	return fmt.Sprintf("%x", md5.Sum(pix))
}
