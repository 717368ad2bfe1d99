package mcp

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/promptdir/pd/internal/store"
	"github.com/promptdir/pd/internal/worktree"
)

// runGit runs a git command in dir, failing the test on error.
func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
}

// makeTestStore builds a prompt store over a throwaway origin with alice
// (the acting user) and bob branches.
func makeTestStore(t *testing.T) *store.Store {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	seed := t.TempDir()
	work := filepath.Join(seed, "work")
	if err := os.MkdirAll(filepath.Join(work, "prompts"), 0o755); err != nil {
		t.Fatal(err)
	}
	runGit(t, work, "init", "--initial-branch=alice")
	runGit(t, work, "config", "user.name", "alice")
	runGit(t, work, "config", "user.email", "alice@example.com")
	writeFile(t, filepath.Join(work, "prompts", "capital.prompt.md"), "What is the capital of {country}?\n")
	runGit(t, work, "add", ".")
	runGit(t, work, "commit", "-m", "alice items")

	runGit(t, work, "checkout", "--orphan", "bob")
	runGit(t, work, "rm", "-rf", ".")
	writeFile(t, filepath.Join(work, "prompts", "greeting.prompt.md"), "Say hello to {name}.\n")
	runGit(t, work, "add", ".")
	runGit(t, work, "commit", "-m", "bob items")
	runGit(t, work, "checkout", "alice")

	origin := filepath.Join(seed, "origin.git")
	runGit(t, seed, "clone", "--bare", work, origin)

	reg, err := worktree.NewRegistry(origin, t.TempDir())
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	runGit(t, reg.BareDir(), "config", "user.name", "alice")
	runGit(t, reg.BareDir(), "config", "user.email", "alice@example.com")

	st, err := store.New(store.KindPrompt, reg)
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	return st
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestHandleList(t *testing.T) {
	st := makeTestStore(t)

	_, out, err := handleList(st)(context.Background(), nil, ListInput{})
	if err != nil {
		t.Fatalf("list handler error = %v", err)
	}

	if out.User != "alice" {
		t.Errorf("User = %q, want alice", out.User)
	}
	want := []string{"capital", "bob/greeting"}
	if len(out.Items) != len(want) {
		t.Fatalf("Items = %v, want %v", out.Items, want)
	}
	for i := range want {
		if out.Items[i] != want[i] {
			t.Errorf("Items[%d] = %q, want %q", i, out.Items[i], want[i])
		}
	}
}

func TestHandleRead(t *testing.T) {
	st := makeTestStore(t)

	_, out, err := handleRead(st)(context.Background(), nil, ReadInput{Address: "capital"})
	if err != nil {
		t.Fatalf("read handler error = %v", err)
	}
	if out.Address != "alice/capital" {
		t.Errorf("Address = %q, want alice/capital", out.Address)
	}
	if out.Content != "What is the capital of {country}?\n" {
		t.Errorf("Content = %q", out.Content)
	}
}

func TestHandleReadNotFound(t *testing.T) {
	st := makeTestStore(t)

	_, _, err := handleRead(st)(context.Background(), nil, ReadInput{Address: "nope"})
	if err == nil {
		t.Fatal("read handler expected error")
	}
}

func TestHandleSearch(t *testing.T) {
	st := makeTestStore(t)

	_, out, err := handleSearch(st)(context.Background(), nil, SearchInput{Query: "capital"})
	if err != nil {
		t.Fatalf("search handler error = %v", err)
	}
	if out.Count != 1 || len(out.Matches) != 1 {
		t.Fatalf("Count = %d, Matches = %v", out.Count, out.Matches)
	}
	if out.Matches[0].Address != "alice/capital" {
		t.Errorf("match address = %q", out.Matches[0].Address)
	}
}

func TestHandleHydrate(t *testing.T) {
	st := makeTestStore(t)

	_, out, err := handleHydrate(st)(context.Background(), nil, HydrateInput{
		Address: "capital",
		Args:    map[string]string{"country": "France"},
	})
	if err != nil {
		t.Fatalf("hydrate handler error = %v", err)
	}
	if out.Prompt != "What is the capital of France?\n" {
		t.Errorf("Prompt = %q", out.Prompt)
	}
}

func TestHandleHydrateExtrasSortedByKey(t *testing.T) {
	st := makeTestStore(t)

	_, out, err := handleHydrate(st)(context.Background(), nil, HydrateInput{
		Address: "capital",
		Args: map[string]string{
			"country": "France",
			"tone":    "formal",
			"length":  "short",
		},
	})
	if err != nil {
		t.Fatalf("hydrate handler error = %v", err)
	}
	// JSON objects are unordered, so extras follow key order.
	if !strings.Contains(out.Prompt, ", length is short, tone is formal") {
		t.Errorf("Prompt = %q, want extras in key order", out.Prompt)
	}
}

func TestHandleWriteAndFork(t *testing.T) {
	st := makeTestStore(t)

	_, wout, err := handleWrite(st)(context.Background(), nil, WriteInput{
		Address: "summary",
		Content: "Summarize {topic}.\n",
	})
	if err != nil {
		t.Fatalf("write handler error = %v", err)
	}
	if wout.Address != "alice/summary" {
		t.Errorf("write Address = %q", wout.Address)
	}

	_, fout, err := handleFork(st)(context.Background(), nil, ForkInput{Address: "bob/greeting"})
	if err != nil {
		t.Fatalf("fork handler error = %v", err)
	}
	if fout.Target != "alice/greeting" {
		t.Errorf("fork Target = %q, want alice/greeting", fout.Target)
	}
}

func TestHandleWriteOtherBranchRefused(t *testing.T) {
	st := makeTestStore(t)

	_, _, err := handleWrite(st)(context.Background(), nil, WriteInput{
		Address: "bob/greeting",
		Content: "hijacked",
	})
	if err == nil {
		t.Fatal("write handler into another branch expected error")
	}
}
