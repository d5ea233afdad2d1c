package prompttrack_test

import (
	"testing"

	"github.com/teachshell/xvsh/internal/prompttrack"
)

func TestNewStartsAtHome(t *testing.T) {
	tr := prompttrack.New()
	if tr.Cwd() != "~/" {
		t.Fatalf("got %q, want %q", tr.Cwd(), "~/")
	}
}

func TestApplyAbsolutePathReplacesCwd(t *testing.T) {
	tr := prompttrack.New()
	tr.Apply("/etc")
	if tr.Cwd() != "/etc" {
		t.Fatalf("got %q", tr.Cwd())
	}
}

func TestApplyRelativePathAppends(t *testing.T) {
	tr := prompttrack.New()
	tr.Apply("src")
	if tr.Cwd() != "~/src" {
		t.Fatalf("got %q", tr.Cwd())
	}
	tr.Apply("internal")
	if tr.Cwd() != "~/src/internal" {
		t.Fatalf("got %q", tr.Cwd())
	}
}

func TestApplyFromRootDoesNotDoubleSlash(t *testing.T) {
	tr := prompttrack.New()
	tr.Apply("/")
	if tr.Cwd() != "/" {
		t.Fatalf("got %q", tr.Cwd())
	}
	tr.Apply("etc")
	if tr.Cwd() != "/etc" {
		t.Fatalf("got %q", tr.Cwd())
	}
}

func TestApplyDoesNotCanonicalizeDotDot(t *testing.T) {
	tr := prompttrack.New()
	tr.Apply("a")
	tr.Apply("..")
	if tr.Cwd() != "~/a/.." {
		t.Fatalf("got %q, want literal non-canonicalized %q", tr.Cwd(), "~/a/..")
	}
}

func TestNewFromEmptySeedFallsBackToHome(t *testing.T) {
	tr := prompttrack.NewFrom("")
	if tr.Cwd() != "~/" {
		t.Fatalf("got %q", tr.Cwd())
	}
}

func TestNewFromCustomSeed(t *testing.T) {
	tr := prompttrack.NewFrom("/srv/")
	if tr.Cwd() != "/srv/" {
		t.Fatalf("got %q", tr.Cwd())
	}
}

func TestPromptFormat(t *testing.T) {
	tr := prompttrack.New()
	if tr.Prompt() != "~/$ " {
		t.Fatalf("got %q", tr.Prompt())
	}
}
