package writeops

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestAtomicWrite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.bin")
	err := Atomic(path, func(w io.Writer) error {
		_, err := w.Write([]byte("content"))
		return err
	})
	if err != nil {
		t.Fatalf("Atomic() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(got) != "content" {
		t.Fatalf("content = %q, want %q", got, "content")
	}
}

func TestAtomicOverwrite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.bin")
	if err := os.WriteFile(path, []byte("old"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	err := Atomic(path, func(w io.Writer) error {
		_, err := w.Write([]byte("new"))
		return err
	})
	if err != nil {
		t.Fatalf("Atomic() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(got) != "new" {
		t.Fatalf("content = %q, want %q", got, "new")
	}
}

func TestAtomicFillErrorLeavesNothing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.bin")
	fillErr := errors.New("fill failed")

	err := Atomic(path, func(io.Writer) error { return fillErr })
	if !errors.Is(err, fillErr) {
		t.Fatalf("Atomic() error = %v, want %v", err, fillErr)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("directory not empty after failed write: %v", entries)
	}
}

func TestAtomicFillErrorKeepsOldContent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.bin")
	if err := os.WriteFile(path, []byte("old"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	err := Atomic(path, func(w io.Writer) error {
		_, _ = w.Write([]byte("partial"))
		return errors.New("fill failed")
	})
	if err == nil {
		t.Fatal("Atomic() error = nil, want error")
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(got) != "old" {
		t.Fatalf("content = %q, want %q", got, "old")
	}
}
