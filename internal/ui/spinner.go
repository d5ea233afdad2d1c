package ui

import (
	"fmt"
	"io"
	"time"
)

// Spinner frames for a simple dots animation
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// WithSpinner runs action while writing an indeterminate spinner and
// message to w. The spinner only appears if action takes longer than
// 100ms, so a fast diff doesn't flicker one frame and vanish.
func WithSpinner[T any](w io.Writer, message string, action func() (T, error)) (T, error) {
	done := make(chan struct{})
	var result T
	var err error

	// Run action in goroutine
	go func() {
		result, err = action()
		close(done)
	}()

	// Wait a bit before showing spinner (avoid flicker for fast operations)
	select {
	case <-done:
		return result, err
	case <-time.After(100 * time.Millisecond):
		// Action is taking a while, show spinner
	}

	frame := 0
	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()

	fmt.Fprintf(w, "%s %s", spinnerFrames[frame], message)

	for {
		select {
		case <-done:
			// Clear spinner line
			fmt.Fprintf(w, "\r\033[K")
			return result, err
		case <-ticker.C:
			frame = (frame + 1) % len(spinnerFrames)
			fmt.Fprintf(w, "\r%s %s", spinnerFrames[frame], message)
		}
	}
}
