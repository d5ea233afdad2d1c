// Package shell implements the REPL driver (spec.md §4.G): it reads a
// line from the line editor, dispatches the three named builtins
// (cd/pwd/clear) ahead of anything else, and otherwise parses and
// executes the line as a command tree. It also carries the teaching
// shell's own builtins — history, view, edit, diff — none of which
// spec.md names, but each gives a kept teacher dependency a home now
// that the cloud-storage domain is gone.
package shell

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/teachshell/xvsh/internal/config"
	"github.com/teachshell/xvsh/internal/history"
	"github.com/teachshell/xvsh/internal/langcmd"
	"github.com/teachshell/xvsh/internal/lineedit"
	"github.com/teachshell/xvsh/internal/procexec"
	"github.com/teachshell/xvsh/internal/prompttrack"
	"github.com/teachshell/xvsh/internal/sysmem"
	"github.com/teachshell/xvsh/internal/ui"
)

// Shell is the REPL for the teaching shell.
type Shell struct {
	cwd               *prompttrack.Tracker
	hist              *history.List
	editor            *lineedit.Editor
	stdin             io.Reader
	stdout            io.Writer
	stderr            io.Writer
	maxMemoryBufferMB int
}

// New creates a Shell reading single bytes from stdin (expected to
// already be in raw mode; see lineedit.EnterRaw), writing command
// output to stdout and the prompt/keystroke repaint and diagnostics to
// stderr, sized and seeded from cfg.
func New(cfg *config.Config, stdin io.Reader, stdout, stderr io.Writer) *Shell {
	ui.ApplyTheme(ui.ResolveTheme(cfg.Theme))

	sh := &Shell{
		cwd:               prompttrack.NewFrom(cfg.PromptHome),
		hist:              history.NewListWithCapacity(cfg.HistoryCapacity),
		stdin:             stdin,
		stdout:            stdout,
		stderr:            stderr,
		maxMemoryBufferMB: cfg.MaxMemoryBufferMB,
	}
	// The editor's prompt/keystroke repaint is terminal chrome, not
	// command output — it goes to stderr so a piped/redirected stdout
	// carries only what builtins and child processes actually print.
	sh.editor = lineedit.New(stderr, sh.hist, sh.buildPrompt)
	return sh
}

// buildPrompt renders "<cwd>$ " (spec.md §6), optionally colored.
func (sh *Shell) buildPrompt() string {
	return ui.RenderPrompt(sh.cwd.Cwd())
}

// Run drives the prompt → read → dispatch loop until EOF on stdin,
// per spec.md §4.G's numbered steps.
func (sh *Shell) Run() {
	ctx := context.Background()

	for {
		line, eof := sh.editor.ReadLine(sh.stdin)
		if eof {
			return
		}

		line = strings.TrimRight(line, "\n")
		if line == "" {
			continue
		}

		sh.dispatch(ctx, line)
	}
}

// dispatch realizes spec.md §4.G's builtin-first ordering: cd, pwd,
// clear, else parse+execute. The teaching-shell-only builtins
// (history/view/edit/diff) are checked after the three named ones so
// a command literally called "cd" or "pwd" always wins as specified.
func (sh *Shell) dispatch(ctx context.Context, line string) {
	switch {
	case strings.HasPrefix(line, "cd "):
		sh.builtinCd(strings.TrimSpace(line[len("cd "):]))
		return
	case line == "pwd":
		fmt.Fprintln(sh.stdout, sh.cwd.Cwd())
		return
	case line == "clear":
		io.WriteString(sh.stdout, "\x1b[2J\x1b[H")
		return
	}

	fields := strings.Fields(line)
	if len(fields) > 0 {
		switch fields[0] {
		case "history":
			sh.builtinHistory(fields[1:])
			return
		case "view":
			sh.builtinView(fields[1:])
			return
		case "edit":
			sh.builtinEdit(fields[1:])
			return
		case "diff":
			sh.builtinDiff(fields[1:])
			return
		}
	}

	sh.runForeground(ctx, line)
}

// builtinCd realizes spec.md §4.G step 1: chdir, then on success
// update cwd per §4.H; on failure print a diagnostic (never updates
// cwd).
func (sh *Shell) builtinCd(path string) {
	if path == "" {
		return
	}
	if err := os.Chdir(path); err != nil {
		fmt.Fprintln(sh.stderr, ui.ErrorStyle.Render(fmt.Sprintf("cd: %v", err)))
		return
	}
	sh.cwd.Apply(path)
}

// runForeground parses the line, checks the memory guard, and runs
// the resulting tree to completion — the REPL blocks at this call
// exactly as spec.md §4.G step 4's "fork; ... in the parent, wait"
// describes.
func (sh *Shell) runForeground(ctx context.Context, line string) {
	tree, err := langcmd.Parse(line)
	if err != nil {
		fmt.Fprintln(sh.stderr, ui.ErrorStyle.Render(fmt.Sprintf("xvsh: %v", err)))
		return
	}

	if guard := sysmem.CheckBeforeFork(sh.maxMemoryBufferMB); !guard.OK {
		fmt.Fprintln(sh.stderr, ui.ErrorStyle.Render("xvsh: "+guard.AbortReason))
		return
	} else if guard.Warning != "" {
		fmt.Fprintln(sh.stderr, ui.WarningStyle.Render("xvsh: "+guard.Warning))
	}

	env := &procexec.ExecutionEnv{Stdin: sh.stdin, Stdout: sh.stdout, Stderr: sh.stderr}
	if err := procexec.Run(ctx, tree, env); err != nil {
		fmt.Fprintln(sh.stderr, ui.ErrorStyle.Render(fmt.Sprintf("xvsh: %v", err)))
	}
}

// builtinHistory lists the FIFO history through ui.Table, with -n N
// (last N entries) and -c (clear) flags parsed via pflag.
func (sh *Shell) builtinHistory(args []string) {
	fs := pflag.NewFlagSet("history", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	n := fs.IntP("last", "n", 0, "show only the last N entries")
	clear := fs.BoolP("clear", "c", false, "clear history")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(sh.stderr, "history: %v\n", err)
		return
	}

	if *clear {
		sh.hist.Clear()
		return
	}

	entries := sh.hist.Entries()
	start := 0
	if *n > 0 && *n < len(entries) {
		start = len(entries) - *n
	}

	t := ui.NewTable(sh.stdout)
	t.SetHeaders("#", "command")
	for i := start; i < len(entries); i++ {
		t.AddRow(strconv.Itoa(i+1), entries[i])
	}
	t.Render()
}

// builtinView prints a local file's contents, syntax-highlighted
// unless the content sniffs as binary.
func (sh *Shell) builtinView(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(sh.stderr, "view: usage: view <file>")
		return
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(sh.stderr, "view: %v\n", err)
		return
	}

	if ui.IsLikelyBinary(data) {
		fmt.Fprintf(sh.stderr, "view: %s: binary file, not displaying\n", args[0])
		return
	}

	io.WriteString(sh.stdout, ui.HighlightLines(string(data), args[0]))
}

// builtinEdit opens the full-screen editor on a local file and writes
// it back if the session ends in a saved state.
func (sh *Shell) builtinEdit(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(sh.stderr, "edit: usage: edit <file>")
		return
	}
	filename := args[0]

	content := ""
	if data, err := os.ReadFile(filename); err == nil {
		content = string(data)
	} else if !os.IsNotExist(err) {
		fmt.Fprintf(sh.stderr, "edit: %v\n", err)
		return
	}

	result, err := ui.RunEditor(filename, content)
	if err != nil {
		fmt.Fprintf(sh.stderr, "edit: %v\n", err)
		return
	}
	if !result.Saved {
		return
	}
	if err := os.WriteFile(filename, []byte(result.Content), 0o644); err != nil {
		fmt.Fprintf(sh.stderr, "edit: %v\n", err)
		return
	}
	fmt.Fprintln(sh.stdout, ui.SuccessStyle.Render("saved "+filename))
}

// builtinDiff prints a unified diff of two local files.
func (sh *Shell) builtinDiff(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(sh.stderr, "diff: usage: diff <file1> <file2>")
		return
	}
	out, err := ui.WithSpinner(sh.stderr, "diffing", func() (string, error) {
		return ui.UnifiedDiff(args[0], args[1])
	})
	if err != nil {
		fmt.Fprintf(sh.stderr, "diff: %v\n", err)
		return
	}
	io.WriteString(sh.stdout, out)
}
