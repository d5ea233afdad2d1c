// Package lineedit implements the shell's line editor: a fixed-size
// edit buffer with cursor, intra-line insertion/deletion, bounded
// history navigation, and manual screen repaint — all driven by
// single-byte reads, per spec.md §4.E. It deliberately does not wrap a
// full terminal-control library; see SPEC_FULL.md's note on why this
// is a separate component from the teacher's bubbletea-based
// full-screen editor.
package lineedit

import (
	"io"

	"github.com/teachshell/xvsh/internal/history"
)

// BufCap is the edit buffer's fixed capacity (spec.md §3: N = 100).
const BufCap = 100

// Arrow-key sentinel bytes. The terminal driver this shell targets
// decodes raw ANSI escape sequences into these single bytes before
// the shell ever sees them (spec.md §6); a real ANSI terminal would
// need its own escape-sequence decoder in front of this table.
const (
	KeyUp    byte = 0xE2
	KeyDown  byte = 0xE3
	KeyLeft  byte = 0xE4
	KeyRight byte = 0xE5
)

const (
	backspace1 byte = 0x08
	backspace2 byte = 0x7F
)

// Editor holds one line-editing session's state: the buffer, cursor,
// the previously painted length (so a repaint can erase a shrunk
// tail), and the history navigation index. Fields mirror spec.md §3's
// line-editor state invariants: 0 <= Cursor <= Len < BufCap.
type Editor struct {
	buf     [BufCap]byte
	len     int
	cursor  int
	prevLen int
	histIdx int

	hist   *history.List
	out    io.Writer
	prompt func() string
}

// New creates an Editor that repaints to out using promptFunc for the
// static prompt prefix (re-evaluated on every repaint, so a prompt
// that embeds a changing cwd stays current) and that reads/writes
// entries to hist.
func New(out io.Writer, hist *history.List, promptFunc func() string) *Editor {
	e := &Editor{hist: hist, out: out, prompt: promptFunc}
	e.resetSession()
	return e
}

func (e *Editor) resetSession() {
	e.len = 0
	e.cursor = 0
	e.prevLen = 0
	e.histIdx = e.hist.Len()
}

// Line returns the buffer's current contents as a string.
func (e *Editor) Line() string {
	return string(e.buf[:e.len])
}

// CursorPos and Length expose the invariants spec.md §8 tests for directly.
func (e *Editor) CursorPos() int { return e.cursor }
func (e *Editor) Length() int    { return e.len }

// ReadLine drives one full editing session: it reads single bytes
// from r, dispatching each through the transition table in spec.md
// §4.E, until Enter is pressed (returning the finished line) or EOF
// is reached.
func (e *Editor) ReadLine(r io.Reader) (line string, eof bool) {
	e.resetSession()
	e.repaint()

	var b [1]byte
	for {
		n, err := r.Read(b[:])
		if n == 0 || err != nil {
			return "", true
		}

		c := b[0]
		switch {
		case c == '\n' || c == '\r':
			io.WriteString(e.out, "\r\n")
			line := e.Line()
			e.hist.Add(line)
			return line, false

		case c == KeyLeft:
			if e.cursor > 0 {
				e.cursor--
			}
			e.repaint()

		case c == KeyRight:
			if e.cursor < e.len {
				e.cursor++
			}
			e.repaint()

		case c == KeyUp:
			e.historyUp()
			e.repaint()

		case c == KeyDown:
			e.historyDown()
			e.repaint()

		case c == backspace1 || c == backspace2:
			e.deleteBeforeCursor()
			e.repaint()

		case c >= 0x20 && c < 0x7F:
			e.insert(c)
			e.repaint()

		default:
			// ignored
		}
	}
}

func (e *Editor) historyUp() {
	if e.hist.Len() == 0 {
		return
	}
	if e.histIdx > 0 {
		e.histIdx--
	}
	e.loadHistoryEntry()
}

func (e *Editor) historyDown() {
	if e.hist.Len() == 0 {
		return
	}
	if e.histIdx < e.hist.Len() {
		e.histIdx++
	}
	if e.histIdx == e.hist.Len() {
		e.len = 0
		e.cursor = 0
		return
	}
	e.loadHistoryEntry()
}

func (e *Editor) loadHistoryEntry() {
	entry := e.hist.At(e.histIdx)
	n := copy(e.buf[:], entry)
	e.len = n
	e.cursor = n
}

func (e *Editor) deleteBeforeCursor() {
	if e.cursor == 0 {
		return
	}
	copy(e.buf[e.cursor-1:e.len-1], e.buf[e.cursor:e.len])
	e.len--
	e.cursor--
}

func (e *Editor) insert(c byte) {
	if e.len >= BufCap-1 {
		return
	}
	copy(e.buf[e.cursor+1:e.len+1], e.buf[e.cursor:e.len])
	e.buf[e.cursor] = c
	e.cursor++
	e.len++
}

// repaint realizes spec.md §4.E's five-step algorithm. ANSI SGR
// styling may be embedded in the string e.prompt() returns — escape
// codes are zero-width on the terminal, so they don't perturb the
// length arithmetic below, which only ever measures e.buf and
// e.prevLen (see SPEC_FULL.md / DESIGN.md).
func (e *Editor) repaint() {
	io.WriteString(e.out, "\r")
	io.WriteString(e.out, e.prompt())
	e.out.Write(e.buf[:e.len])

	if e.len < e.prevLen {
		pad := e.prevLen - e.len
		writeRepeated(e.out, ' ', pad)
		writeRepeated(e.out, '\b', pad)
	}

	writeRepeated(e.out, '\b', e.len-e.cursor)
	e.prevLen = e.len
}

func writeRepeated(w io.Writer, b byte, n int) {
	if n <= 0 {
		return
	}
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = b
	}
	w.Write(buf)
}
