// Package langcmd implements the tokenizer, parser, and typed command
// tree for the shell's command language.
package langcmd

// MaxArgs is the largest number of arguments a single Exec command may
// carry. The parser rejects an Exec that would exceed it.
const MaxArgs = 10

// Command is the tagged sum realized as an interface over five
// concrete node types. Each variant owns its children directly; Go's
// garbage collector makes the manual slice-borrowing discipline the
// original C shell relies on unnecessary.
type Command interface {
	isCommand()
}

// ExecCmd runs a program by replacing the current process image (or,
// in this goroutine-based executor, by starting a real child process
// and waiting on it). Args[0] is the program name.
type ExecCmd struct {
	Args []string
}

func (*ExecCmd) isCommand() {}

// RedirMode selects how a redirection target is opened.
type RedirMode int

const (
	// ModeRead opens the target read-only (fd 0, "<").
	ModeRead RedirMode = iota
	// ModeWrite opens (create-or-truncate) the target for writing (fd 1, ">").
	ModeWrite
	// ModeAppend opens (create-or-append) the target for writing (fd 1, ">>").
	//
	// The original xv6 shell tokenizes ">>" as a distinct APPEND token but
	// maps it to the same create-or-write mode as ">", never requesting
	// O_APPEND. This is flagged as an open question in the specification;
	// this implementation resolves it by giving ">>" real append semantics
	// (see DESIGN.md).
	ModeAppend
)

// RedirCmd wraps Inner, reopening file descriptor FD on Path (with
// Mode) before Inner executes. FD is 0 for "<" and 1 for ">"/">>".
type RedirCmd struct {
	Inner Command
	Path  string
	Mode  RedirMode
	FD    int
}

func (*RedirCmd) isCommand() {}

// PipeCmd connects Left's stdout to Right's stdin via an anonymous pipe.
type PipeCmd struct {
	Left  Command
	Right Command
}

func (*PipeCmd) isCommand() {}

// ListCmd runs Left to completion, then Right, in sequence.
type ListCmd struct {
	Left  Command
	Right Command
}

func (*ListCmd) isCommand() {}

// BackCmd runs Inner without waiting for it to finish.
type BackCmd struct {
	Inner Command
}

func (*BackCmd) isCommand() {}
