package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewRotatingWriter(t *testing.T) {
	t.Run("creates log file", func(t *testing.T) {
		logPath := filepath.Join(t.TempDir(), "test.log")

		rw, err := NewRotatingWriter(logPath, DefaultRotationConfig())
		if err != nil {
			t.Fatalf("NewRotatingWriter failed: %v", err)
		}
		defer func() { _ = rw.Close() }()

		if _, err := os.Stat(logPath); os.IsNotExist(err) {
			t.Errorf("log file was not created at %s", logPath)
		}
	})

	t.Run("resumes size from existing file", func(t *testing.T) {
		logPath := filepath.Join(t.TempDir(), "test.log")
		if err := os.WriteFile(logPath, []byte("previous run\n"), 0o644); err != nil {
			t.Fatalf("seeding log file: %v", err)
		}

		rw, err := NewRotatingWriter(logPath, DefaultRotationConfig())
		if err != nil {
			t.Fatalf("NewRotatingWriter failed: %v", err)
		}
		defer func() { _ = rw.Close() }()

		if rw.size != int64(len("previous run\n")) {
			t.Errorf("size = %d, want %d", rw.size, len("previous run\n"))
		}
	})
}

func TestRotatingWriter_NoRotationWhenDisabled(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	rw, err := NewRotatingWriter(logPath, RotationConfig{MaxSizeMB: 0, MaxBackups: 3})
	if err != nil {
		t.Fatalf("NewRotatingWriter failed: %v", err)
	}
	defer func() { _ = rw.Close() }()

	for i := 0; i < 100; i++ {
		if _, err := rw.Write([]byte(strings.Repeat("x", 1024))); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
	}

	if _, err := os.Stat(logPath + ".1"); err == nil {
		t.Error("backup file exists, rotation should be disabled")
	}
}

func TestRotatingWriter_Rotates(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	// 1 MB limit, writes of 600 KB force a rotation on the second write.
	rw, err := NewRotatingWriter(logPath, RotationConfig{MaxSizeMB: 1, MaxBackups: 2})
	if err != nil {
		t.Fatalf("NewRotatingWriter failed: %v", err)
	}
	defer func() { _ = rw.Close() }()

	chunk := []byte(strings.Repeat("x", 600*1024))
	for i := 0; i < 3; i++ {
		if _, err := rw.Write(chunk); err != nil {
			t.Fatalf("Write %d failed: %v", i, err)
		}
	}

	if _, err := os.Stat(logPath + ".1"); err != nil {
		t.Errorf("expected backup at %s.1: %v", logPath, err)
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("stat current log: %v", err)
	}
	if info.Size() > 1024*1024 {
		t.Errorf("current log size = %d, want <= 1MB", info.Size())
	}
}

func TestRotatingWriter_WriteAfterClose(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	rw, err := NewRotatingWriter(logPath, DefaultRotationConfig())
	if err != nil {
		t.Fatalf("NewRotatingWriter failed: %v", err)
	}
	if err := rw.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if _, err := rw.Write([]byte("late")); err == nil {
		t.Error("Write after Close should fail")
	}

	// Second Close is a no-op.
	if err := rw.Close(); err != nil {
		t.Errorf("second Close() = %v, want nil", err)
	}
}
