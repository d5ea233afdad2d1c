package lineedit

import (
	"golang.org/x/term"
)

// RawSession puts a file descriptor into raw (cbreak) mode for the
// duration of the REPL and restores it on Close. Raw mode is what
// makes single-byte reads observe each keystroke immediately instead
// of waiting for a line buffered by the kernel tty driver — the
// precondition spec.md §4.E assumes when it specifies a "single-byte
// read from descriptor 0." Grounded on the teacher's own use of
// golang.org/x/term for password entry (cmd/drime/main.go), generalized
// here from one-shot ReadPassword to a session-scoped raw mode toggle.
type RawSession struct {
	fd    int
	state *term.State
}

// EnterRaw switches fd into raw mode. If fd is not a terminal (e.g. in
// tests or when stdin is a pipe), it returns a no-op session so the
// caller can treat both cases uniformly.
func EnterRaw(fd int) (*RawSession, error) {
	if !term.IsTerminal(fd) {
		return &RawSession{fd: fd}, nil
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return &RawSession{fd: fd, state: state}, nil
}

// Close restores the terminal's prior mode.
func (s *RawSession) Close() error {
	if s.state == nil {
		return nil
	}
	return term.Restore(s.fd, s.state)
}
