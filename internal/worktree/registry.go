// Package worktree manages the bare clone and the branch-per-user worktrees
// that back the content store.
//
// One bare clone exists per repository slug under the base directory; each
// branch gets exactly one worktree at a path computed deterministically from
// (repository name, branch name). Worktrees are created lazily and never
// deleted here.
package worktree

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/promptdir/pd/internal/git"
	"github.com/promptdir/pd/internal/output"
)

// MaterializeError reports a failure creating or syncing a branch worktree.
// It is non-fatal: callers surface it and continue.
type MaterializeError struct {
	Branch string
	Cause  error
}

// Error implements the error interface.
func (e *MaterializeError) Error() string {
	return fmt.Sprintf("failed to materialize worktree for branch %q: %v", e.Branch, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *MaterializeError) Unwrap() error {
	return e.Cause
}

// ExitCode maps materialization failures to system errors.
func (e *MaterializeError) ExitCode() int {
	return output.ExitSystemError
}

// Registry maps (repository, branch) to local worktree paths and materializes
// worktrees on demand.
type Registry struct {
	slug     string // e.g. "myorg/prompts"
	repoName string // slug with "/" flattened to "_"
	baseDir  string
	bareDir  string
}

// NewRegistry creates a registry for the repository slug rooted at baseDir.
// It creates baseDir and the bare clone if they do not exist yet.
func NewRegistry(slug, baseDir string) (*Registry, error) {
	if slug == "" {
		return nil, output.NewUserError("no repository configured: use --repo or 'pd config --repo owner/name'")
	}

	repoName := strings.ReplaceAll(strings.TrimSuffix(slug, ".git"), "/", "_")
	repoName = strings.NewReplacer(":", "_", "@", "_").Replace(repoName)

	r := &Registry{
		slug:     slug,
		repoName: repoName,
		baseDir:  baseDir,
		bareDir:  filepath.Join(baseDir, repoName+".bare"),
	}

	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, output.NewSystemErrorWithCause("creating base directory", err)
	}
	if err := r.ensureBare(); err != nil {
		return nil, err
	}
	return r, nil
}

// RemoteURL returns the canonical remote URL for the slug. A slug that
// already looks like a URL or a filesystem path is used as-is; otherwise it
// is treated as a GitHub owner/name pair over SSH.
func (r *Registry) RemoteURL() string {
	if strings.Contains(r.slug, "://") || strings.Contains(r.slug, "@") {
		return r.slug
	}
	if filepath.IsAbs(r.slug) || strings.HasPrefix(r.slug, ".") {
		return r.slug
	}
	return fmt.Sprintf("git@github.com:%s.git", r.slug)
}

// BareDir returns the path of the bare clone.
func (r *Registry) BareDir() string {
	return r.bareDir
}

// ensureBare clones the bare repository on first use. An existing clone is
// never re-created.
func (r *Registry) ensureBare() error {
	if _, err := os.Stat(filepath.Join(r.bareDir, "HEAD")); err == nil {
		return nil
	}
	if _, err := git.Run("clone", "--bare", r.RemoteURL(), r.bareDir); err != nil {
		return err
	}
	// Bare clones get no fetch refspec; without one 'fetch --all' updates
	// nothing.
	if _, err := git.RunIn(r.bareDir, "config", "remote.origin.fetch", "+refs/heads/*:refs/remotes/origin/*"); err != nil {
		return err
	}
	return nil
}

// WorktreePath returns the deterministic local path for a branch's worktree.
func (r *Registry) WorktreePath(branch string) string {
	return filepath.Join(r.baseDir, r.repoName+"_"+branch)
}

// BranchExists reports whether the branch exists in the bare repository.
func (r *Registry) BranchExists(branch string) bool {
	_, err := git.RunIn(r.bareDir, "show-ref", "--verify", "--quiet", "refs/heads/"+branch)
	return err == nil
}

// EnsureBranch creates the branch in the bare repository if it does not
// exist. Idempotent.
func (r *Registry) EnsureBranch(branch string) error {
	if r.BranchExists(branch) {
		return nil
	}
	if _, err := git.RunIn(r.bareDir, "branch", branch); err != nil {
		return &MaterializeError{Branch: branch, Cause: err}
	}
	return nil
}

// Worktree returns the local worktree path for branch, materializing it with
// a worktree add if absent. If sync is true and the worktree already exists,
// it is fast-forwarded with a pull first.
func (r *Registry) Worktree(branch string, sync bool) (string, error) {
	dir := r.WorktreePath(branch)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if _, err := git.RunIn(r.bareDir, "worktree", "add", dir, branch); err != nil {
			return "", &MaterializeError{Branch: branch, Cause: err}
		}
	} else if sync {
		// Worktrees off a bare clone have no upstream tracking, so the
		// remote and ref are always explicit.
		if _, err := git.RunIn(dir, "pull", "--ff-only", "origin", branch); err != nil {
			return "", &MaterializeError{Branch: branch, Cause: err}
		}
	}
	return dir, nil
}

// Branches returns the repository's full branch set, local plus
// remote-tracking, dereferenced to bare branch names. Ordering is whatever
// git's listing produces; callers needing sorted output sort explicitly.
func (r *Registry) Branches() ([]string, error) {
	out, err := git.RunIn(r.bareDir, "branch", "-a")
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var branches []string
	for line := range strings.Lines(out) {
		name := strings.TrimSpace(strings.TrimLeft(line, "+* \t"))
		name = strings.TrimSuffix(name, "\n")
		if name == "" || strings.Contains(name, "->") {
			continue // symbolic HEAD pointer
		}
		name = strings.TrimPrefix(name, "remotes/origin/")
		if name == "HEAD" || seen[name] {
			continue
		}
		seen[name] = true
		branches = append(branches, name)
	}
	return branches, nil
}

// FetchAll fetches every remote ref once. Used by sync before the per-branch
// fast-forward sweep.
func (r *Registry) FetchAll() error {
	_, err := git.RunIn(r.bareDir, "fetch", "--all")
	return err
}

// UserName returns the acting identity: the configured git user.name with
// spaces normalized to underscores. It is both the tenant identifier and the
// branch name.
func (r *Registry) UserName() (string, error) {
	return git.UserName(r.bareDir)
}
