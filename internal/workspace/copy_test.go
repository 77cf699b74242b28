package workspace

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "lib.jar")
	if err := os.WriteFile(src, []byte("new build"), 0600); err != nil {
		t.Fatal(err)
	}

	t.Run("new destination", func(t *testing.T) {
		dst := filepath.Join(dir, "fresh.jar")
		if err := CopyFile(src, dst); err != nil {
			t.Fatalf("CopyFile: %v", err)
		}
		data, err := os.ReadFile(dst)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "new build" {
			t.Errorf("content = %q", data)
		}
		if runtime.GOOS != "windows" {
			info, _ := os.Stat(dst)
			if info.Mode().Perm() != 0600 {
				t.Errorf("mode = %v, want 0600", info.Mode().Perm())
			}
		}
	})

	t.Run("existing destination", func(t *testing.T) {
		dst := filepath.Join(dir, "old.jar")
		if err := os.WriteFile(dst, []byte("a much longer stale build"), 0644); err != nil {
			t.Fatal(err)
		}
		if err := CopyFile(src, dst); err != nil {
			t.Fatalf("CopyFile: %v", err)
		}
		data, err := os.ReadFile(dst)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "new build" {
			t.Errorf("content = %q, want truncated copy", data)
		}
		if runtime.GOOS != "windows" {
			info, _ := os.Stat(dst)
			if info.Mode().Perm() != 0644 {
				t.Errorf("mode = %v, want 0644 kept", info.Mode().Perm())
			}
		}
	})
}

func TestCopyFileErrors(t *testing.T) {
	dir := t.TempDir()
	if err := CopyFile(filepath.Join(dir, "missing"), filepath.Join(dir, "dst")); err == nil {
		t.Error("expected error for missing source")
	}
	if err := CopyFile(dir, filepath.Join(dir, "dst")); err == nil {
		t.Error("expected error for directory source")
	}
}
