package checksum

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileMD5(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "doc.pdf")
	if err := os.WriteFile(path, []byte("hello world"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got, err := FileMD5(path)
	if err != nil {
		t.Fatalf("FileMD5 error: %v", err)
	}
	if want := "5eb63bbbe01eeed093cb22bb8f5acdc3"; got != want {
		t.Fatalf("digest mismatch: got %s, want %s", got, want)
	}
}

func TestFileMD5MissingFile(t *testing.T) {
	t.Parallel()

	if _, err := (Summer{}).Sum(filepath.Join(t.TempDir(), "nope.pdf")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}
