// Package prompttrack realizes spec.md §4.H's approximate working
// directory: a literal string kept in sync with successful cd calls by
// concatenation, never by canonicalizing against the real filesystem.
// This is a deliberate approximation carried over unchanged (spec.md
// §9) — `.`, `..`, and repeated slashes are never resolved.
package prompttrack

import "strings"

// Home is the starting value spec.md §4.H assigns cwd before the first
// cd: "~/".
const Home = "~/"

// Tracker holds the shell's approximate current working directory.
type Tracker struct {
	cwd string
}

// New returns a Tracker seeded at Home.
func New() *Tracker {
	return &Tracker{cwd: Home}
}

// NewFrom returns a Tracker seeded at seed, falling back to Home if
// seed is empty — lets internal/config's PromptHome setting override
// spec.md §4.H's literal "~/" starting value.
func NewFrom(seed string) *Tracker {
	if seed == "" {
		seed = Home
	}
	return &Tracker{cwd: seed}
}

// Cwd returns the tracked path as it stands.
func (t *Tracker) Cwd() string {
	return t.cwd
}

// Apply updates cwd after a successful cd to path, per spec.md §4.H:
// an absolute path (leading '/') replaces cwd outright; anything else
// is appended with a separating '/' unless cwd already ends in one
// (true both of the root "/" and of the default seed "~/"). No
// component of path is inspected for "." or "..".
func (t *Tracker) Apply(path string) {
	if strings.HasPrefix(path, "/") {
		t.cwd = path
		return
	}
	if strings.HasSuffix(t.cwd, "/") {
		t.cwd = t.cwd + path
		return
	}
	t.cwd = t.cwd + "/" + path
}

// Prompt renders the exact prompt string spec.md §6 specifies: the
// tracked cwd immediately followed by "$ ", no separator.
func (t *Tracker) Prompt() string {
	return t.cwd + "$ "
}
