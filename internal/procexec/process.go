package procexec

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"

	"github.com/teachshell/xvsh/internal/langcmd"
)

// Run realizes run(cmd) from spec.md §4.D. It does not recurse through
// RedirCmd chains or the right branch of a ListCmd — both are tail
// positions per spec.md §9's "recursion in the executor" note, and are
// implemented as a loop here rather than as recursive calls, so an
// arbitrarily long pipeline of redirections or ';'-chained commands
// never grows the call stack.
func Run(ctx context.Context, cmd langcmd.Command, env *ExecutionEnv) error {
	var closers []io.Closer
	defer func() { closeAll(closers) }()

	for {
		switch c := cmd.(type) {

		case *langcmd.RedirCmd:
			next, closer, err := openRedirect(c, env)
			if err != nil {
				return err
			}
			closers = append(closers, closer)
			env = next
			cmd = c.Inner
			continue

		case *langcmd.ListCmd:
			// The right branch begins only after the left has been
			// waited on (spec.md §8 property 6); Run blocks until the
			// left branch's real child process(es) have exited before
			// this call returns. The left's error is deliberately
			// discarded here — "regardless of left error" means the
			// right branch still runs, and the list's own result is
			// whatever the right branch (the new tail of this loop)
			// produces, not the left's.
			_ = Run(ctx, c.Left, env)
			cmd = c.Right
			continue

		case *langcmd.BackCmd:
			// The outer process does not wait for the inner one
			// (spec.md §8 property 7): launch in a detached goroutine
			// standing in for the unwaited forked child, and return to
			// the caller immediately.
			inner, innerEnv := c.Inner, env
			go func() {
				_ = Run(ctx, inner, innerEnv)
			}()
			return nil

		case *langcmd.PipeCmd:
			return runPipe(ctx, c, env)

		case *langcmd.ExecCmd:
			return runExec(ctx, c, env)

		default:
			return fmt.Errorf("procexec: unsupported command type %T", cmd)
		}
	}
}

// runExec realizes the Exec variant: zero arguments exits immediately
// (there is no process to launch); otherwise the current "process" is
// replaced by starting argv[0] as a real child and waiting on it.
func runExec(ctx context.Context, c *langcmd.ExecCmd, env *ExecutionEnv) error {
	if len(c.Args) == 0 {
		return nil
	}

	path, err := exec.LookPath(c.Args[0])
	if err != nil {
		fmt.Fprintf(env.Stderr, "exec %s failed\n", c.Args[0])
		return fmt.Errorf("exec %s failed: %w", c.Args[0], err)
	}

	child := exec.CommandContext(ctx, path, c.Args[1:]...)
	child.Stdin = env.Stdin
	child.Stdout = env.Stdout
	child.Stderr = env.Stderr

	if err := child.Start(); err != nil {
		fmt.Fprintf(env.Stderr, "exec %s failed\n", c.Args[0])
		return fmt.Errorf("exec %s failed: %w", c.Args[0], err)
	}

	// Exit codes are not distinguished anywhere in this shell (spec.md
	// §6); a nonzero exit is simply propagated as an error to the List
	// bookkeeping above, never printed here.
	return child.Wait()
}

// runPipe realizes the Pipe variant. Unlike the fork-based original,
// os.Pipe's two ends are never duplicated into a shared parent that
// must close its copies afterward — each goroutine below is handed
// exactly one end and closes exactly that one when its side finishes,
// so the "parent closes both ends after forking both children"
// invariant in spec.md §5 has no separate step to perform here: there
// never was a parent-held copy to close.
func runPipe(ctx context.Context, c *langcmd.PipeCmd, env *ExecutionEnv) error {
	pr, pw, err := os.Pipe()
	if err != nil {
		fmt.Fprintln(env.Stderr, "pipe failed")
		return fmt.Errorf("pipe failed: %w", err)
	}

	leftEnv := env.with()
	leftEnv.Stdout = pw

	rightEnv := env.with()
	rightEnv.Stdin = pr

	var wg sync.WaitGroup
	var leftErr, rightErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		defer pw.Close()
		leftErr = Run(ctx, c.Left, leftEnv)
	}()
	go func() {
		defer wg.Done()
		defer pr.Close()
		rightErr = Run(ctx, c.Right, rightEnv)
	}()
	wg.Wait()

	if leftErr != nil {
		return leftErr
	}
	return rightErr
}

// openRedirect opens the file named by a RedirCmd and returns an
// ExecutionEnv with the named descriptor rewired to it, plus the
// io.Closer the caller must close once the inner command has finished
// (spec.md: "close the descriptor named by fd, then open the path ...
// the descriptor inherits to any further children").
func openRedirect(c *langcmd.RedirCmd, env *ExecutionEnv) (*ExecutionEnv, io.Closer, error) {
	var flags int
	switch c.Mode {
	case langcmd.ModeRead:
		flags = os.O_RDONLY
	case langcmd.ModeWrite:
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	case langcmd.ModeAppend:
		flags = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	default:
		return nil, nil, fmt.Errorf("procexec: unknown redirection mode %v", c.Mode)
	}

	f, err := os.OpenFile(c.Path, flags, 0o644)
	if err != nil {
		fmt.Fprintf(env.Stderr, "open %s failed\n", c.Path)
		return nil, nil, fmt.Errorf("open %s failed: %w", c.Path, err)
	}

	next := env.with()
	switch c.FD {
	case 0:
		next.Stdin = f
	default:
		next.Stdout = f
	}
	return next, f, nil
}

func closeAll(closers []io.Closer) {
	for _, c := range closers {
		c.Close()
	}
}
