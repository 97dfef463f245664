package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestGenerateLogFilename(t *testing.T) {
	tests := []struct {
		time     time.Time
		expected string
	}{
		{
			time:     time.Date(2025, 12, 13, 9, 51, 5, 123_000_000, time.UTC),
			expected: "csops-20251213-095105-123.log",
		},
		{
			time:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			expected: "csops-20250101-000000-000.log",
		},
		{
			time:     time.Date(2025, 12, 31, 23, 59, 59, 999_000_000, time.UTC),
			expected: "csops-20251231-235959-999.log",
		},
	}
	for _, tt := range tests {
		if got := GenerateLogFilename(tt.time); got != tt.expected {
			t.Errorf("GenerateLogFilename(%v) = %q, want %q", tt.time, got, tt.expected)
		}
	}
}

func TestOpenLogFile_Stderr(t *testing.T) {
	lf, err := OpenLogFile("-", t.TempDir())
	if err != nil {
		t.Fatalf("OpenLogFile() error = %v", err)
	}
	defer lf.Close()
	if lf.Path != "" {
		t.Errorf("expected no file path, got %q", lf.Path)
	}
	if lf.Writer() != os.Stderr {
		t.Errorf("expected stderr writer")
	}
}

func TestOpenLogFile_None(t *testing.T) {
	lf, err := OpenLogFile("none", t.TempDir())
	if err != nil {
		t.Fatalf("OpenLogFile() error = %v", err)
	}
	defer lf.Close()
	if lf.Writer() != io.Discard {
		t.Errorf("expected discarding writer")
	}
}

func TestOpenLogFile_AutoGenerate(t *testing.T) {
	dir := t.TempDir()
	lf, err := OpenLogFile("", dir)
	if err != nil {
		t.Fatalf("OpenLogFile() error = %v", err)
	}
	defer lf.Close()
	if !strings.HasPrefix(filepath.Base(lf.Path), "csops-") {
		t.Errorf("unexpected file name: %s", lf.Path)
	}
	if _, err := os.Stat(lf.Path); err != nil {
		t.Errorf("log file not created: %v", err)
	}
}

func TestOpenLogFile_RelativePath(t *testing.T) {
	dir := t.TempDir()
	lf, err := OpenLogFile("run.log", dir)
	if err != nil {
		t.Fatalf("OpenLogFile() error = %v", err)
	}
	defer lf.Close()
	if lf.Path != filepath.Join(dir, "run.log") {
		t.Errorf("unexpected path: %s", lf.Path)
	}
	if _, err := lf.Writer().Write([]byte("hello\n")); err != nil {
		t.Errorf("write failed: %v", err)
	}
}

func TestCleanupOldLogFiles(t *testing.T) {
	dir := t.TempDir()

	oldFile := filepath.Join(dir, "csops-20251201-120000-000.log")
	if err := os.WriteFile(oldFile, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}
	oldTime := time.Now().AddDate(0, 0, -30)
	if err := os.Chtimes(oldFile, oldTime, oldTime); err != nil {
		t.Fatal(err)
	}

	newFile := filepath.Join(dir, "csops-20260101-120000-000.log")
	if err := os.WriteFile(newFile, []byte("new"), 0o644); err != nil {
		t.Fatal(err)
	}

	// Unrelated files are never touched, regardless of age.
	otherFile := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(otherFile, []byte("keep"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(otherFile, oldTime, oldTime); err != nil {
		t.Fatal(err)
	}

	if err := CleanupOldLogFiles(dir, 7); err != nil {
		t.Fatalf("CleanupOldLogFiles() error = %v", err)
	}

	if _, err := os.Stat(oldFile); !os.IsNotExist(err) {
		t.Errorf("old log file should have been removed")
	}
	if _, err := os.Stat(newFile); err != nil {
		t.Errorf("recent log file should remain: %v", err)
	}
	if _, err := os.Stat(otherFile); err != nil {
		t.Errorf("unrelated file should remain: %v", err)
	}
}

func TestCleanupOldLogFiles_NonExistentDir(t *testing.T) {
	if err := CleanupOldLogFiles(filepath.Join(t.TempDir(), "missing"), 7); err != nil {
		t.Errorf("should not error for missing dir, got: %v", err)
	}
}

func TestCleanupOldLogFiles_ZeroRetention(t *testing.T) {
	dir := t.TempDir()
	oldFile := filepath.Join(dir, "csops-20251201-120000-000.log")
	if err := os.WriteFile(oldFile, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}
	oldTime := time.Now().AddDate(0, 0, -30)
	if err := os.Chtimes(oldFile, oldTime, oldTime); err != nil {
		t.Fatal(err)
	}

	if err := CleanupOldLogFiles(dir, 0); err != nil {
		t.Fatalf("CleanupOldLogFiles() error = %v", err)
	}
	if _, err := os.Stat(oldFile); err != nil {
		t.Errorf("zero retention must not delete anything: %v", err)
	}
}
