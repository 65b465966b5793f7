package utils

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	fs := afero.NewOsFs()
	target := filepath.Join(dir, "colors.json")

	if err := WriteFileAtomic(fs, target, []byte("first"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic failed: %v", err)
	}
	if err := WriteFileAtomic(fs, target, []byte("second"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic failed: %v", err)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("Failed to read target: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("Expected second, got %q", data)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected only the target file, got %d entries", len(entries))
	}
}

type failingRenameFs struct {
	afero.Fs
}

func (failingRenameFs) Rename(string, string) error {
	return errors.New("rename refused")
}

func TestWriteFileAtomicCleansUpOnFailure(t *testing.T) {
	fs := failingRenameFs{afero.NewMemMapFs()}
	if err := fs.MkdirAll("/cfg", 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}

	err := WriteFileAtomic(fs, "/cfg/app.toml", []byte("x"), 0o644)
	if err == nil || !strings.Contains(err.Error(), "rename refused") {
		t.Fatalf("Expected rename error, got %v", err)
	}

	entries, err := afero.ReadDir(fs, "/cfg")
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected temp file to be removed, found %d entries", len(entries))
	}
}

func TestWriteFileAtomicMissingDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := WriteFileAtomic(afero.NewReadOnlyFs(fs), "/missing/app.toml", []byte("x"), 0o644); err == nil {
		t.Fatal("Expected an error on a read-only filesystem")
	}
}

func TestIsTempFile(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{".colors.json.0b8f3c1e-7a4d-4e0f-9d3c-5c2f1a6b7e8d.tmp", true},
		{"colors.json", false},
		{".hidden", false},
		{"notes.tmp", false},
	}
	for _, tt := range tests {
		if got := IsTempFile(tt.name); got != tt.want {
			t.Errorf("IsTempFile(%q) = %v, expected %v", tt.name, got, tt.want)
		}
	}
}

func TestSplitSlashPath(t *testing.T) {
	got := SplitSlashPath("/config//themes/ ")
	if strings.Join(got, ",") != "config,themes" {
		t.Errorf("Expected [config themes], got %v", got)
	}
	if len(SplitSlashPath("")) != 0 {
		t.Error("Expected no elements for an empty path")
	}
}

func TestReadAll(t *testing.T) {
	data, err := ReadAll(strings.NewReader("value"))
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if string(data) != "value" {
		t.Errorf("Expected value, got %q", data)
	}

	if _, err := ReadAll(strings.NewReader("")); err == nil {
		t.Error("Expected an error for empty input")
	}
}

func TestDefaultAuthor(t *testing.T) {
	if DefaultAuthor() == "" {
		t.Fatal("Expected a non-empty default author")
	}
}
