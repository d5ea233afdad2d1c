package ui

import (
	"os"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// UnifiedDiff reads two local files and returns a unified diff between
// them, giving the pack's go-difflib dependency a home now that
// nothing else in this repo has a use for it.
func UnifiedDiff(pathA, pathB string) (string, error) {
	a, err := os.ReadFile(pathA)
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(pathB)
	if err != nil {
		return "", err
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(a)),
		B:        difflib.SplitLines(string(b)),
		FromFile: pathA,
		ToFile:   pathB,
		Context:  3,
	}
	out, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", err
	}
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out, nil
}
