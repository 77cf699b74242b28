package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// HiddenPrefix marks entries skipped by every enumeration.
const HiddenPrefix = "."

// IsHidden reports whether name is a hidden entry.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, HiddenPrefix)
}

// Visible returns the names that are not hidden, preserving order.
func Visible(names []string) []string {
	visible := make([]string, 0, len(names))
	for _, name := range names {
		if !IsHidden(name) {
			visible = append(visible, name)
		}
	}
	return visible
}

// ListVisible returns the non-hidden entry names of dir in listing order.
func ListVisible(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return Visible(names), nil
}

// ListVisibleDirs returns the non-hidden subdirectory names of dir in
// listing order. Symlinks to directories count as subdirectories.
func ListVisibleDirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	var names []string
	for _, entry := range entries {
		ok, err := isDir(dir, entry)
		if err != nil {
			return nil, err
		}
		if ok {
			names = append(names, entry.Name())
		}
	}
	return Visible(names), nil
}

// isDir reports whether entry is a directory, following a symlink. A dangling
// link is not a directory.
func isDir(dir string, entry fs.DirEntry) (bool, error) {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir(), nil
	}
	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("resolving %s: %w", filepath.Join(dir, entry.Name()), err)
	}
	return info.IsDir(), nil
}
