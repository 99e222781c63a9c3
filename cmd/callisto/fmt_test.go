package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"mercator-hq/callisto/pkg/format/token"
	"mercator-hq/callisto/pkg/lang"
)

type nopTokenizer struct{}

func (nopTokenizer) Language() string { return "test" }
func (nopTokenizer) Tokenize(ctx context.Context, src []byte) ([]token.Token, error) {
	return nil, nil
}

func TestCollectFiles(t *testing.T) {
	dir := t.TempDir()
	write := func(rel string) string {
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	aGo := write("a.go")
	write("notes.txt")
	write(filepath.Join(".hidden", "c.go"))
	nested := write(filepath.Join("pkg", "d.go"))

	registry := lang.NewRegistry()
	registry.Register(nopTokenizer{}, ".go")

	files, err := collectFiles([]string{dir}, registry)
	if err != nil {
		t.Fatalf("collectFiles() error = %v", err)
	}

	got := map[string]bool{}
	for _, f := range files {
		got[f] = true
	}
	if !got[aGo] || !got[nested] {
		t.Errorf("files = %v, want %s and %s", files, aGo, nested)
	}
	if len(files) != 2 {
		t.Errorf("files = %v, want exactly the two .go files outside hidden dirs", files)
	}
}

func TestCollectFiles_ExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.txt")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	registry := lang.NewRegistry()
	registry.Register(nopTokenizer{}, ".go")

	// Explicit file arguments bypass the extension filter.
	files, err := collectFiles([]string{path}, registry)
	if err != nil {
		t.Fatalf("collectFiles() error = %v", err)
	}
	if len(files) != 1 || files[0] != path {
		t.Errorf("files = %v, want [%s]", files, path)
	}
}

func TestWriteFilePreservesMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.go")
	if err := os.WriteFile(path, []byte("before"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := writeFile(path, "after"); err != nil {
		t.Fatalf("writeFile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "after" {
		t.Errorf("content = %q, want after", data)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("mode = %v, want 0600", info.Mode().Perm())
	}
}
