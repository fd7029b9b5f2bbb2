package logx

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesTimestampedFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, closer, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Printf("install %s", "started")
	if err := closer.Close(); err != nil {
		t.Fatalf("close log: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read logs dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one log file, got %d", len(entries))
	}
	name := entries[0].Name()
	if !strings.HasSuffix(name, ".log") {
		t.Fatalf("unexpected log file name %q", name)
	}

	contents, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(contents), "install started") {
		t.Fatalf("log line missing, got %q", contents)
	}
}

func TestNewFailsOnUnwritableDir(t *testing.T) {
	parent := filepath.Join(t.TempDir(), "blocked")
	if err := os.WriteFile(parent, []byte("not a dir"), 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}

	if _, _, err := New(filepath.Join(parent, "logs")); err == nil {
		t.Fatal("expected error when the logs path cannot be created")
	}
}

func TestDiscardAcceptsWrites(t *testing.T) {
	logger := Discard()
	logger.Printf("dropped %d", 1)
}
