// Command xvsh starts the teaching shell's REPL on the controlling
// terminal. It replaces the teacher's cloud-authentication startup
// flow (API token prompts, folder-tree prefetch) with the direct raw-
// mode REPL start spec.md §6 describes: three standard descriptors
// already open to a terminal device, then straight into prompt/read.
package main

import (
	"fmt"
	"os"

	"github.com/teachshell/xvsh/internal/config"
	"github.com/teachshell/xvsh/internal/lineedit"
	"github.com/teachshell/xvsh/internal/shell"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "xvsh: error loading config: %v\n", err)
		os.Exit(1)
	}

	raw, err := lineedit.EnterRaw(int(os.Stdin.Fd()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "xvsh: failed to enter raw mode: %v\n", err)
		os.Exit(1)
	}
	defer raw.Close()

	sh := shell.New(cfg, os.Stdin, os.Stdout, os.Stderr)
	sh.Run()
}
