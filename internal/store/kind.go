package store

import (
	"fmt"
	"os"
)

// Kind selects which content variant a Store manages. The three kinds share
// the same addressing, CRUD, and caching machinery and differ only in
// subdirectory, file suffix, and write policy.
type Kind int

// Content kinds.
const (
	KindPrompt Kind = iota
	KindSnippet
	KindScript
)

// kindSpec is the per-kind configuration record.
type kindSpec struct {
	subdir   string
	suffix   string
	singular string
	mode     os.FileMode
	shebang  bool // require a #! first line on create/edit
}

var kindSpecs = map[Kind]kindSpec{
	KindPrompt:  {subdir: "prompts", suffix: ".prompt.md", singular: "prompt", mode: 0o644},
	KindSnippet: {subdir: "snippets", suffix: ".snippet.txt", singular: "snippet", mode: 0o644},
	KindScript:  {subdir: "scripts", suffix: "", singular: "script", mode: 0o755, shebang: true},
}

// ParseKind maps a --kind flag value to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "prompt", "prompts":
		return KindPrompt, nil
	case "snippet", "snippets":
		return KindSnippet, nil
	case "script", "scripts":
		return KindScript, nil
	default:
		return 0, fmt.Errorf("unknown kind %q (expected prompt, snippet, or script)", s)
	}
}

// String returns the singular kind name.
func (k Kind) String() string {
	return kindSpecs[k].singular
}

// Subdir returns the per-worktree content subdirectory for the kind.
func (k Kind) Subdir() string {
	return kindSpecs[k].subdir
}

// Suffix returns the file suffix for the kind. Scripts have none.
func (k Kind) Suffix() string {
	return kindSpecs[k].suffix
}
