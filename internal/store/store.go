// Package store implements the branch-per-user content store for pd.
//
// Each collaborator's items live in their own branch of one shared Git
// repository, materialized locally as a dedicated worktree. Every mutation
// is an ordinary Git operation: write the file, stage, commit, push. Reads
// are served from an in-memory cache where possible.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/promptdir/pd/internal/git"
	"github.com/promptdir/pd/internal/output"
	"github.com/promptdir/pd/internal/worktree"
)

// Prompter is the interactive-input collaborator: confirmations for
// destructive operations and multi-line content entry for new items.
type Prompter interface {
	// Confirm asks a yes/no question. Anything but an affirmative answer
	// means "cancel".
	Confirm(label string) bool
	// CollectLines prints intro and reads lines until the sentinel "EOF"
	// line.
	CollectLines(intro string) ([]string, error)
}

// EditorFunc opens a file in an external editor and blocks until it exits.
type EditorFunc func(path string) error

// Store exposes CRUD, listing, search, and sync over one content kind.
type Store struct {
	kind     Kind
	reg      *worktree.Registry
	cache    *Cache
	user     string
	prompter Prompter
	editor   EditorFunc
}

// Option configures a Store.
type Option func(*Store)

// WithPrompter sets the interactive-input collaborator.
func WithPrompter(p Prompter) Option {
	return func(s *Store) { s.prompter = p }
}

// WithEditor sets the external-editor collaborator.
func WithEditor(e EditorFunc) Option {
	return func(s *Store) { s.editor = e }
}

// New creates a store over the registry for the given kind, ensures the
// acting user's branch and content directory exist, and warms the cache
// with a full scan.
func New(kind Kind, reg *worktree.Registry, opts ...Option) (*Store, error) {
	user, err := reg.UserName()
	if err != nil {
		return nil, err
	}

	s := &Store{
		kind:  kind,
		reg:   reg,
		cache: NewCache(),
		user:  user,
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.ensureSelfBranch(); err != nil {
		return nil, err
	}
	if err := s.RebuildCache(); err != nil {
		return nil, err
	}
	return s, nil
}

// Kind returns the content kind this store manages.
func (s *Store) Kind() Kind {
	return s.kind
}

// User returns the acting identity (branch name).
func (s *Store) User() string {
	return s.user
}

// Cache returns the item cache.
func (s *Store) Cache() *Cache {
	return s.cache
}

// ensureSelfBranch makes sure the acting user has a branch with the content
// subdirectory in place.
func (s *Store) ensureSelfBranch() error {
	if err := s.reg.EnsureBranch(s.user); err != nil {
		return err
	}
	dir, err := s.reg.Worktree(s.user, false)
	if err != nil {
		return err
	}
	return os.MkdirAll(filepath.Join(dir, s.kind.Subdir()), 0o755)
}

// itemPath resolves an address to (worktree dir, file path), materializing
// the owner's worktree if needed.
func (s *Store) itemPath(a Address) (string, string, error) {
	dir, err := s.reg.Worktree(a.Owner, false)
	if err != nil {
		return "", "", err
	}
	return dir, filepath.Join(dir, s.kind.Subdir(), a.Name+s.kind.Suffix()), nil
}

// scan walks every known branch's content subdirectory and returns the full
// address-to-content mapping. Branches that fail to materialize are skipped;
// the scan is best-effort by design.
func (s *Store) scan() (map[string]string, error) {
	branches, err := s.reg.Branches()
	if err != nil {
		return nil, err
	}

	items := make(map[string]string)
	for _, branch := range branches {
		dir, err := s.reg.Worktree(branch, false)
		if err != nil {
			continue
		}
		contentDir := filepath.Join(dir, s.kind.Subdir())
		entries, err := os.ReadDir(contentDir)
		if err != nil {
			continue // branch has no content directory for this kind
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), s.kind.Suffix()) {
				continue
			}
			name := strings.TrimSuffix(entry.Name(), s.kind.Suffix())
			data, err := os.ReadFile(filepath.Join(contentDir, entry.Name()))
			if err != nil {
				continue
			}
			items[branch+"/"+name] = string(data)
		}
	}
	return items, nil
}

// RebuildCache replaces the cache with a fresh full scan. Called after every
// mutation; reads never trigger it implicitly.
func (s *Store) RebuildCache() error {
	items, err := s.scan()
	if err != nil {
		return err
	}
	s.cache.Replace(items)
	return nil
}

// List returns all item names, the acting user's items first (alphabetical,
// rendered bare), then everyone else's (alphabetical, rendered owner/name).
// The partition ordering is a user-facing contract.
func (s *Store) List() ([]string, error) {
	items, err := s.scan()
	if err != nil {
		return nil, err
	}

	var mine, others []string
	for address := range items {
		owner, name, _ := strings.Cut(address, "/")
		if owner == s.user {
			mine = append(mine, name)
		} else {
			others = append(others, address)
		}
	}
	sort.Strings(mine)
	sort.Strings(others)
	return append(mine, others...), nil
}

// Read returns the raw content of the addressed item.
func (s *Store) Read(address string) (string, error) {
	a, err := ParseAddress(address, s.user)
	if err != nil {
		return "", err
	}
	_, path, err := s.itemPath(a)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &NotFoundError{Kind: s.kind, Address: address}
		}
		return "", output.NewSystemErrorWithCause("reading "+path, err)
	}
	return string(data), nil
}

// Content returns the addressed item's content, preferring the cache and
// falling back to the file.
func (s *Store) Content(address string) (string, error) {
	a, err := ParseAddress(address, s.user)
	if err != nil {
		return "", err
	}
	if content, ok := s.cache.Lookup(a.String()); ok {
		return content, nil
	}
	return s.Read(a.String())
}

// Write creates or overwrites an item in the acting user's branch, then
// stages, commits, and pushes it. Writing into another user's branch is
// refused before any file operation.
func (s *Store) Write(address, content string) error {
	a, err := ParseAddress(address, s.user)
	if err != nil {
		return err
	}
	if a.Owner != s.user {
		return &PermissionError{Verb: "write", Owner: a.Owner}
	}

	dir, path, err := s.itemPath(a)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return output.NewSystemErrorWithCause("creating content directory", err)
	}
	if err := os.WriteFile(path, []byte(content), kindSpecs[s.kind].mode); err != nil {
		return output.NewSystemErrorWithCause("writing "+path, err)
	}

	msg := fmt.Sprintf("Update %s: %s", s.kind, a.Name)
	if err := s.commitAndPush(dir, msg, path); err != nil {
		return err
	}
	return s.RebuildCache()
}

// Fork copies an item from another user's branch into targetOwner's branch
// (the acting user when empty) under the same name. The source address must
// be fully qualified.
func (s *Store) Fork(address, targetOwner string) (Address, error) {
	src, err := ParseQualified(address)
	if err != nil {
		return Address{}, err
	}
	if targetOwner == "" {
		targetOwner = s.user
	}

	_, srcPath, err := s.itemPath(src)
	if err != nil {
		return Address{}, err
	}
	data, err := os.ReadFile(srcPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Address{}, &NotFoundError{Kind: s.kind, Address: address}
		}
		return Address{}, output.NewSystemErrorWithCause("reading "+srcPath, err)
	}

	target := Address{Owner: targetOwner, Name: src.Name}
	if err := s.Write(target.String(), string(data)); err != nil {
		return Address{}, err
	}
	return target, nil
}

// EditOutcome reports what an Edit call did.
type EditOutcome int

// Edit outcomes.
const (
	EditNoChange EditOutcome = iota
	EditSaved
	EditReverted
)

// Edit opens the addressed item in the external editor. If the content
// changed, the kind's write policy is re-checked (scripts must keep their
// shebang; a declined check reverts the file), then the change is committed
// and pushed. An unchanged file is a no-op.
func (s *Store) Edit(address string) (EditOutcome, error) {
	a, err := ParseAddress(address, s.user)
	if err != nil {
		return EditNoChange, err
	}
	if a.Owner != s.user {
		return EditNoChange, &PermissionError{Verb: "edit", Owner: a.Owner}
	}

	dir, path, err := s.itemPath(a)
	if err != nil {
		return EditNoChange, err
	}
	before, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return EditNoChange, &NotFoundError{Kind: s.kind, Address: address}
		}
		return EditNoChange, output.NewSystemErrorWithCause("reading "+path, err)
	}

	if err := s.editorFunc()(path); err != nil {
		return EditNoChange, err
	}

	after, err := os.ReadFile(path)
	if err != nil {
		return EditNoChange, output.NewSystemErrorWithCause("re-reading "+path, err)
	}
	if string(before) == string(after) {
		return EditNoChange, nil
	}

	if !s.checkWritePolicy(path) {
		if err := os.WriteFile(path, before, kindSpecs[s.kind].mode); err != nil {
			return EditReverted, output.NewSystemErrorWithCause("reverting "+path, err)
		}
		return EditReverted, nil
	}

	msg := fmt.Sprintf("Edit %s: %s", s.kind, a.Name)
	if err := s.commitAndPush(dir, msg, path); err != nil {
		return EditNoChange, err
	}
	return EditSaved, s.RebuildCache()
}

// Delete removes an item from the acting user's branch after confirmation,
// then stages, commits, and pushes the removal. A declined confirmation is a
// no-op, not an error; Delete reports whether it deleted.
func (s *Store) Delete(address string, force bool) (bool, error) {
	a, err := ParseAddress(address, s.user)
	if err != nil {
		return false, err
	}
	if a.Owner != s.user {
		return false, &PermissionError{Verb: "delete", Owner: a.Owner}
	}

	dir, path, err := s.itemPath(a)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return false, &NotFoundError{Kind: s.kind, Address: address}
	}

	if !force && !s.confirm(fmt.Sprintf("Delete %s %q?", s.kind, a.Name)) {
		return false, nil
	}

	if err := os.Remove(path); err != nil {
		return false, output.NewSystemErrorWithCause("removing "+path, err)
	}

	msg := fmt.Sprintf("Delete %s: %s", s.kind, a.Name)
	if err := s.commitAndPush(dir, msg, path); err != nil {
		return false, err
	}
	return true, s.RebuildCache()
}

// Rename moves an item within the acting user's branch. Both names must be
// unqualified: renames never cross branches.
func (s *Store) Rename(srcName, dstName string) error {
	if strings.Contains(srcName, "/") || strings.Contains(dstName, "/") {
		input := srcName
		if strings.Contains(dstName, "/") {
			input = dstName
		}
		return &InvalidAddressError{Input: input, Reason: "rename takes bare names; it only operates on your own branch"}
	}

	src, err := ParseAddress(srcName, s.user)
	if err != nil {
		return err
	}
	dst, err := ParseAddress(dstName, s.user)
	if err != nil {
		return err
	}

	dir, srcPath, err := s.itemPath(src)
	if err != nil {
		return err
	}
	dstPath := filepath.Join(dir, s.kind.Subdir(), dst.Name+s.kind.Suffix())

	if _, err := os.Stat(srcPath); os.IsNotExist(err) {
		return &NotFoundError{Kind: s.kind, Address: srcName}
	}
	if _, err := os.Stat(dstPath); err == nil {
		return &ExistsError{Kind: s.kind, Address: dstName}
	}

	if err := os.Rename(srcPath, dstPath); err != nil {
		return output.NewSystemErrorWithCause("renaming "+srcPath, err)
	}

	msg := fmt.Sprintf("Rename %s: %s to %s", s.kind, src.Name, dst.Name)
	if err := s.commitAndPush(dir, msg, srcPath, dstPath); err != nil {
		return err
	}
	return s.RebuildCache()
}

// Match is one search hit.
type Match struct {
	Address string `json:"address"`
	Line    int    `json:"line"`
	Text    string `json:"text"`
}

// Search scans every cached item line by line for the query as a literal,
// case-sensitive substring. An empty result set is not an error.
func (s *Store) Search(query string) []Match {
	items := s.cache.Items()

	addresses := make([]string, 0, len(items))
	for address := range items {
		addresses = append(addresses, address)
	}
	sort.Strings(addresses)

	var matches []Match
	for _, address := range addresses {
		for i, line := range strings.Split(items[address], "\n") {
			if strings.Contains(line, query) {
				matches = append(matches, Match{
					Address: address,
					Line:    i + 1,
					Text:    strings.TrimSpace(line),
				})
			}
		}
	}
	return matches
}

// SyncResult reports one branch's outcome from SyncAll.
type SyncResult struct {
	Branch string `json:"branch"`
	Err    error  `json:"-"`
}

// SyncAll fetches all remote refs once, then re-materializes or
// fast-forwards every known branch's worktree. A failure on one branch is
// recorded and the sweep continues. The cache is rebuilt afterwards.
func (s *Store) SyncAll() ([]SyncResult, error) {
	if err := s.reg.FetchAll(); err != nil {
		return nil, err
	}
	branches, err := s.reg.Branches()
	if err != nil {
		return nil, err
	}

	results := make([]SyncResult, 0, len(branches))
	for _, branch := range branches {
		_, err := s.reg.Worktree(branch, true)
		results = append(results, SyncResult{Branch: branch, Err: err})
	}
	return results, s.RebuildCache()
}

// CreateNew interactively collects content for a new item in the acting
// user's branch, terminated by a sentinel "EOF" line. Overwriting an
// existing file requires confirmation. Script content missing a shebang
// requires confirmation too; declining restores the prior content, or
// removes the file when it is new, so no partial artifact remains. The file
// is written locally (commit and push happen on the next write or edit) and
// the cache is refreshed.
func (s *Store) CreateNew(filename string, force bool) (bool, error) {
	if s.kind.Suffix() != "" && !strings.HasSuffix(filename, s.kind.Suffix()) {
		filename += s.kind.Suffix()
	}
	name := strings.TrimSuffix(filename, s.kind.Suffix())
	a, err := ParseAddress(name, s.user)
	if err != nil {
		return false, err
	}

	dir, err := s.reg.Worktree(s.user, false)
	if err != nil {
		return false, err
	}
	contentDir := filepath.Join(dir, s.kind.Subdir())
	if err := os.MkdirAll(contentDir, 0o755); err != nil {
		return false, output.NewSystemErrorWithCause("creating content directory", err)
	}
	path := filepath.Join(contentDir, a.Name+s.kind.Suffix())

	// Capture prior content so a declined shebang check can restore it.
	before, readErr := os.ReadFile(path)
	existed := readErr == nil
	if existed {
		if !force && !s.confirm(fmt.Sprintf("%s %q already exists. Overwrite?", s.kind, filename)) {
			return false, nil
		}
	}

	lines, err := s.collectLines(fmt.Sprintf("Enter content for %s. Type 'EOF' on a new line to finish.", filename))
	if err != nil {
		return false, err
	}
	content := strings.TrimSpace(strings.Join(lines, "\n")) + "\n"

	if err := os.WriteFile(path, []byte(content), kindSpecs[s.kind].mode); err != nil {
		return false, output.NewSystemErrorWithCause("writing "+path, err)
	}

	if !s.checkWritePolicy(path) {
		if existed {
			if err := os.WriteFile(path, before, kindSpecs[s.kind].mode); err != nil {
				return false, output.NewSystemErrorWithCause("restoring "+path, err)
			}
		} else if err := os.Remove(path); err != nil {
			return false, output.NewSystemErrorWithCause("removing "+path, err)
		}
		return false, nil
	}

	return true, s.RebuildCache()
}

// commitAndPush stages the given paths, commits with message, and pushes the
// acting user's branch to origin. A failed push is surfaced as-is: the
// caller must resync, no automatic conflict resolution is attempted.
func (s *Store) commitAndPush(dir, message string, paths ...string) error {
	addArgs := append([]string{"add", "--"}, paths...)
	if _, err := git.RunIn(dir, addArgs...); err != nil {
		return err
	}
	if _, err := git.RunIn(dir, "commit", "-m", message); err != nil {
		return err
	}
	if _, err := git.RunIn(dir, "push", "origin", s.user); err != nil {
		return err
	}
	return nil
}

func (s *Store) editorFunc() EditorFunc {
	if s.editor != nil {
		return s.editor
	}
	return func(string) error {
		return output.NewSystemError("no editor configured")
	}
}

func (s *Store) confirm(label string) bool {
	if s.prompter == nil {
		return false
	}
	return s.prompter.Confirm(label)
}

func (s *Store) collectLines(intro string) ([]string, error) {
	if s.prompter == nil {
		return nil, output.NewSystemError("interactive input is not available")
	}
	return s.prompter.CollectLines(intro)
}
