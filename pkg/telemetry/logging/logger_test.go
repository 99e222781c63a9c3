package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

// TestNew tests logger construction across levels and formats.
func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "defaults", cfg: Config{}, wantErr: false},
		{name: "debug json", cfg: Config{Level: "debug", Format: "json"}, wantErr: false},
		{name: "warn text", cfg: Config{Level: "warn", Format: "text"}, wantErr: false},
		{name: "bad level", cfg: Config{Level: "loud"}, wantErr: true},
		{name: "bad format", cfg: Config{Format: "xml"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestLogger_LevelFiltering tests that messages below the configured level
// are dropped.
func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "warn", Format: "text", Writer: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Debug("dropped debug")
	logger.Info("dropped info")
	logger.Warn("kept warn")
	logger.Error("kept error")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("output contains filtered messages: %q", out)
	}
	if !strings.Contains(out, "kept warn") || !strings.Contains(out, "kept error") {
		t.Errorf("output missing kept messages: %q", out)
	}
}

// TestLogger_JSONOutput tests that JSON output carries structured fields.
func TestLogger_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Info("file formatted", "file", "main.go", "cost", 12)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "file formatted" {
		t.Errorf("msg = %v, want %q", entry["msg"], "file formatted")
	}
	if entry["file"] != "main.go" {
		t.Errorf("file = %v, want main.go", entry["file"])
	}
}

// TestLogger_Component tests that component loggers tag every line.
func TestLogger_Component(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Component("format.engine").Info("cache miss")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry["component"] != "format.engine" {
		t.Errorf("component = %v, want format.engine", entry["component"])
	}
}

// TestLogger_ContextFields tests run ID and file extraction from context.
func TestLogger_ContextFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx := ContextWithRunID(context.Background(), "run-42")
	ctx = ContextWithFile(ctx, "pkg/a/a.go")
	logger.InfoContext(ctx, "search started")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry["run_id"] != "run-42" {
		t.Errorf("run_id = %v, want run-42", entry["run_id"])
	}
	if entry["file"] != "pkg/a/a.go" {
		t.Errorf("file = %v, want pkg/a/a.go", entry["file"])
	}
}

// TestLogger_WithContext tests the WithContext fast path and field carry.
func TestLogger_WithContext(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if got := logger.WithContext(context.Background()); got != logger {
		t.Errorf("WithContext(empty) returned a new logger, want the receiver")
	}

	ctx := ContextWithRunID(context.Background(), "run-7")
	logger.WithContext(ctx).Info("bound")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry["run_id"] != "run-7" {
		t.Errorf("run_id = %v, want run-7", entry["run_id"])
	}
}
