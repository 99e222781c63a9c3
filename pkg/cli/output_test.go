package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

// TestNewFormatter tests formatter selection.
func TestNewFormatter(t *testing.T) {
	if _, ok := NewFormatter(FormatJSON).(*JSONFormatter); !ok {
		t.Error("NewFormatter(json) did not return a JSONFormatter")
	}
	if _, ok := NewFormatter(FormatText).(*TextFormatter); !ok {
		t.Error("NewFormatter(text) did not return a TextFormatter")
	}
	if _, ok := NewFormatter("bogus").(*TextFormatter); !ok {
		t.Error("NewFormatter(unknown) did not fall back to text")
	}
}

// TestJSONFormatter tests JSON output.
func TestJSONFormatter(t *testing.T) {
	f := &JSONFormatter{Indent: true}
	data := map[string]any{"file": "a.go", "changed": true}

	var buf bytes.Buffer
	if err := f.FormatTo(&buf, data); err != nil {
		t.Fatalf("FormatTo() error = %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if decoded["file"] != "a.go" {
		t.Errorf("file = %v, want a.go", decoded["file"])
	}
}

// TestDiff tests the unified diff rendering.
func TestDiff(t *testing.T) {
	t.Run("identical is empty", func(t *testing.T) {
		if got := Diff("a.go", "same\n", "same\n"); got != "" {
			t.Errorf("Diff() = %q, want empty", got)
		}
	})

	t.Run("changed lines marked", func(t *testing.T) {
		before := "line one\nline two\nline three\n"
		after := "line one\nline 2\nline three\n"
		got := Diff("a.go", before, after)

		if !strings.HasPrefix(got, "--- a.go\n+++ a.go (formatted)\n") {
			t.Errorf("Diff() missing header:\n%s", got)
		}
		if !strings.Contains(got, "-line two\n") {
			t.Errorf("Diff() missing removal:\n%s", got)
		}
		if !strings.Contains(got, "+line 2\n") {
			t.Errorf("Diff() missing insertion:\n%s", got)
		}
		if !strings.Contains(got, " line one\n") {
			t.Errorf("Diff() missing context line:\n%s", got)
		}
	})
}
