package ui

import "github.com/gabriel-vasile/mimetype"

// IsLikelyBinary reports whether data sniffs as non-text content,
// grounded on the teacher's own mimetype-gated upload path (now
// gating the `view` builtin instead of an upload).
func IsLikelyBinary(data []byte) bool {
	mt := mimetype.Detect(data)
	for m := mt; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return false
		}
	}
	return true
}
