package vcs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

func initTestRepo(t *testing.T) (string, *git.Worktree) {
	t.Helper()
	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("PlainInit() error = %v", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Worktree() error = %v", err)
	}
	return dir, wt
}

func commitAll(t *testing.T, wt *git.Worktree, msg string) {
	t.Helper()
	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	_, err := wt.Commit(msg, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "test",
			Email: "test@example.com",
			When:  time.Now(),
		},
	})
	if err != nil {
		t.Fatalf("Commit() error = %v", err)
	}
}

// TestChangedFiles tests modified and untracked detection.
func TestChangedFiles(t *testing.T) {
	dir, wt := initTestRepo(t)

	committed := filepath.Join(dir, "committed.go")
	if err := os.WriteFile(committed, []byte("package a\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	commitAll(t, wt, "initial")

	changed, err := ChangedFiles(dir)
	if err != nil {
		t.Fatalf("ChangedFiles() error = %v", err)
	}
	if len(changed) != 0 {
		t.Errorf("clean worktree changed = %v, want none", changed)
	}

	// Modify a tracked file and add an untracked one.
	if err := os.WriteFile(committed, []byte("package a // edited\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "fresh.go"), []byte("package a\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	changed, err = ChangedFiles(dir)
	if err != nil {
		t.Fatalf("ChangedFiles() error = %v", err)
	}
	want := []string{"committed.go", "fresh.go"}
	if len(changed) != len(want) {
		t.Fatalf("changed = %v, want %v", changed, want)
	}
	for i := range want {
		if changed[i] != want[i] {
			t.Errorf("changed[%d] = %q, want %q", i, changed[i], want[i])
		}
	}
}

// TestChangedFiles_ExcludesDeleted tests that deletions are not reported.
func TestChangedFiles_ExcludesDeleted(t *testing.T) {
	dir, wt := initTestRepo(t)

	doomed := filepath.Join(dir, "doomed.go")
	if err := os.WriteFile(doomed, []byte("package a\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	commitAll(t, wt, "initial")

	if err := os.Remove(doomed); err != nil {
		t.Fatal(err)
	}

	changed, err := ChangedFiles(dir)
	if err != nil {
		t.Fatalf("ChangedFiles() error = %v", err)
	}
	for _, p := range changed {
		if p == "doomed.go" {
			t.Errorf("deleted file reported as changed: %v", changed)
		}
	}
}

// TestChangedFiles_NotARepo tests the error path.
func TestChangedFiles_NotARepo(t *testing.T) {
	if _, err := ChangedFiles(t.TempDir()); err == nil {
		t.Error("ChangedFiles() error = nil outside a repository")
	}
}

// TestChangedFiles_Subdirectory tests dot-git detection from a child path.
func TestChangedFiles_Subdirectory(t *testing.T) {
	dir, wt := initTestRepo(t)

	sub := filepath.Join(dir, "pkg")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "a.go"), []byte("package a\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	commitAll(t, wt, "initial")

	if err := os.WriteFile(filepath.Join(sub, "b.go"), []byte("package a\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	changed, err := ChangedFiles(sub)
	if err != nil {
		t.Fatalf("ChangedFiles() error = %v", err)
	}
	found := false
	for _, p := range changed {
		if p == filepath.Join("pkg", "b.go") {
			found = true
		}
	}
	if !found {
		t.Errorf("changed = %v, want pkg/b.go", changed)
	}
}
