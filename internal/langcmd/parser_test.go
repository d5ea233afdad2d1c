package langcmd_test

import (
	"strings"
	"testing"

	"github.com/teachshell/xvsh/internal/langcmd"
)

func TestParseSimpleExec(t *testing.T) {
	cmd, err := langcmd.Parse("echo hello world")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	exec, ok := cmd.(*langcmd.ExecCmd)
	if !ok {
		t.Fatalf("expected *ExecCmd, got %T", cmd)
	}
	want := []string{"echo", "hello", "world"}
	if len(exec.Args) != len(want) {
		t.Fatalf("got args %v, want %v", exec.Args, want)
	}
	for i := range want {
		if exec.Args[i] != want[i] {
			t.Errorf("arg %d = %q, want %q", i, exec.Args[i], want[i])
		}
	}
}

func TestParseEmptyLineYieldsZeroArgExec(t *testing.T) {
	cmd, err := langcmd.Parse("")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	exec, ok := cmd.(*langcmd.ExecCmd)
	if !ok {
		t.Fatalf("expected *ExecCmd, got %T", cmd)
	}
	if len(exec.Args) != 0 {
		t.Errorf("expected zero args, got %v", exec.Args)
	}
}

func TestParseTooManyArgsFails(t *testing.T) {
	words := make([]string, langcmd.MaxArgs+1)
	for i := range words {
		words[i] = "w"
	}
	_, err := langcmd.Parse(strings.Join(words, " "))
	if err == nil {
		t.Fatal("expected error for too many arguments")
	}
}

func TestParsePipeIsRightAssociative(t *testing.T) {
	cmd, err := langcmd.Parse("a | b | c")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	top, ok := cmd.(*langcmd.PipeCmd)
	if !ok {
		t.Fatalf("expected top-level *PipeCmd, got %T", cmd)
	}
	if _, ok := top.Left.(*langcmd.ExecCmd); !ok {
		t.Fatalf("expected left of top pipe to be *ExecCmd, got %T", top.Left)
	}
	right, ok := top.Right.(*langcmd.PipeCmd)
	if !ok {
		t.Fatalf("expected right of top pipe to be *PipeCmd, got %T", top.Right)
	}
	if _, ok := right.Left.(*langcmd.ExecCmd); !ok {
		t.Fatalf("expected B as left of inner pipe, got %T", right.Left)
	}
	if _, ok := right.Right.(*langcmd.ExecCmd); !ok {
		t.Fatalf("expected C as right of inner pipe, got %T", right.Right)
	}
}

func TestParseSemicolonIsRightAssociative(t *testing.T) {
	// A ; B ; C parses as List(A, List(B, C)).
	cmd, err := langcmd.Parse("a ; b ; c")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	top, ok := cmd.(*langcmd.ListCmd)
	if !ok {
		t.Fatalf("expected top-level *ListCmd, got %T", cmd)
	}
	inner, ok := top.Right.(*langcmd.ListCmd)
	if !ok {
		t.Fatalf("expected right of top List to be *ListCmd, got %T", top.Right)
	}
	if _, ok := inner.Left.(*langcmd.ExecCmd); !ok {
		t.Fatalf("expected B as left of inner list, got %T", inner.Left)
	}
	if _, ok := inner.Right.(*langcmd.ExecCmd); !ok {
		t.Fatalf("expected C as right of inner list, got %T", inner.Right)
	}
}

func TestParseBackground(t *testing.T) {
	cmd, err := langcmd.Parse("sleep 10 &")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if _, ok := cmd.(*langcmd.BackCmd); !ok {
		t.Fatalf("expected *BackCmd, got %T", cmd)
	}
}

func TestParseBackgroundThenSemicolon(t *testing.T) {
	// "A & ; B" yields List(Back(A), B) per spec.md §8 property 4.
	cmd, err := langcmd.Parse("a & ; b")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	top, ok := cmd.(*langcmd.ListCmd)
	if !ok {
		t.Fatalf("expected *ListCmd, got %T", cmd)
	}
	if _, ok := top.Left.(*langcmd.BackCmd); !ok {
		t.Fatalf("expected left of list to be *BackCmd, got %T", top.Left)
	}
}

func TestParseMultipleTrailingAmpersandsWrapRepeatedly(t *testing.T) {
	cmd, err := langcmd.Parse("a & &")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	outer, ok := cmd.(*langcmd.BackCmd)
	if !ok {
		t.Fatalf("expected *BackCmd, got %T", cmd)
	}
	if _, ok := outer.Inner.(*langcmd.BackCmd); !ok {
		t.Fatalf("expected nested *BackCmd, got %T", outer.Inner)
	}
}

func TestParseRedirection(t *testing.T) {
	cmd, err := langcmd.Parse("echo hi > out.txt")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	redir, ok := cmd.(*langcmd.RedirCmd)
	if !ok {
		t.Fatalf("expected *RedirCmd, got %T", cmd)
	}
	if redir.FD != 1 || redir.Mode != langcmd.ModeWrite || redir.Path != "out.txt" {
		t.Errorf("unexpected redirection: %+v", redir)
	}
	if _, ok := redir.Inner.(*langcmd.ExecCmd); !ok {
		t.Fatalf("expected inner *ExecCmd, got %T", redir.Inner)
	}
}

func TestParseAppendRedirection(t *testing.T) {
	cmd, err := langcmd.Parse("echo hi >> out.txt")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	redir := cmd.(*langcmd.RedirCmd)
	if redir.Mode != langcmd.ModeAppend {
		t.Errorf("expected ModeAppend, got %v", redir.Mode)
	}
}

func TestParseInputRedirectionBeforeWords(t *testing.T) {
	cmd, err := langcmd.Parse("< in.txt wc -l")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	redir, ok := cmd.(*langcmd.RedirCmd)
	if !ok {
		t.Fatalf("expected *RedirCmd, got %T", cmd)
	}
	if redir.FD != 0 || redir.Mode != langcmd.ModeRead || redir.Path != "in.txt" {
		t.Errorf("unexpected redirection: %+v", redir)
	}
	exec, ok := redir.Inner.(*langcmd.ExecCmd)
	if !ok || len(exec.Args) != 2 {
		t.Fatalf("expected inner exec with 2 args, got %+v", redir.Inner)
	}
}

func TestParseMissingFileAfterRedirectionFails(t *testing.T) {
	_, err := langcmd.Parse("echo hi >")
	if err == nil {
		t.Fatal("expected error for missing filename")
	}
}

func TestParseMissingCloseParenFails(t *testing.T) {
	_, err := langcmd.Parse("(echo hi")
	if err == nil {
		t.Fatal("expected error for missing ')'")
	}
}

func TestParseTrailingInputFails(t *testing.T) {
	_, err := langcmd.Parse("echo hi )")
	if err == nil {
		t.Fatal("expected error for trailing input after the line completes")
	}
}

func TestParseParenthesizedGroupWithRedirection(t *testing.T) {
	cmd, err := langcmd.Parse("(echo a; echo b) > out.txt")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	redir, ok := cmd.(*langcmd.RedirCmd)
	if !ok {
		t.Fatalf("expected *RedirCmd wrapping the group, got %T", cmd)
	}
	if _, ok := redir.Inner.(*langcmd.ListCmd); !ok {
		t.Fatalf("expected inner *ListCmd, got %T", redir.Inner)
	}
}
