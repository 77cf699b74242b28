package workspace

import (
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"testing"
)

func TestVisible(t *testing.T) {
	tests := []struct {
		name     string
		names    []string
		expected []string
	}{
		{"empty", nil, []string{}},
		{"no hidden", []string{"atom", "rss"}, []string{"atom", "rss"}},
		{"hidden dropped", []string{".svn", "atom", ".DS_Store", "rss"}, []string{"atom", "rss"}},
		{"only hidden", []string{".git", "."}, []string{}},
		{"order preserved", []string{"rss", "atom", "jamendo"}, []string{"rss", "atom", "jamendo"}},
		{"dot inside name kept", []string{"lib.jar"}, []string{"lib.jar"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Visible(tt.names)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Visible(%v) = %v, want %v", tt.names, got, tt.expected)
			}
		})
	}
}

func TestListVisible(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.jar", ".hidden.jar", "b.jar"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}

	got, err := ListVisible(dir)
	if err != nil {
		t.Fatalf("ListVisible: %v", err)
	}
	want := []string{"a.jar", "b.jar", "sub"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListVisible = %v, want %v", got, want)
	}
}

func TestListVisibleDirs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"atom", ".svn", "rss"} {
		if err := os.Mkdir(filepath.Join(dir, name), 0755); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "README"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := ListVisibleDirs(dir)
	if err != nil {
		t.Fatalf("ListVisibleDirs: %v", err)
	}
	want := []string{"atom", "rss"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListVisibleDirs = %v, want %v", got, want)
	}
}

func TestListVisibleMissingDir(t *testing.T) {
	if _, err := ListVisible(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestListVisibleDirsFollowsSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need extra privileges on windows")
	}
	dir := t.TempDir()
	target := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "atom"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(target, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	links := map[string]string{
		"rss":      target,
		"notes":    filepath.Join(target, "notes.txt"),
		"dangling": filepath.Join(target, "missing"),
	}
	for name, to := range links {
		if err := os.Symlink(to, filepath.Join(dir, name)); err != nil {
			t.Fatal(err)
		}
	}

	got, err := ListVisibleDirs(dir)
	if err != nil {
		t.Fatalf("ListVisibleDirs: %v", err)
	}
	want := []string{"atom", "rss"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListVisibleDirs = %v, want %v", got, want)
	}
}
