package libsync

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/libs-for-android/lfa/internal/workspace"
)

// Report lists what a sync did, in processing order.
type Report struct {
	Copied  []string // destination paths that were overwritten
	Missing []string // artifact names with no build output
}

// LibraryDirs returns <demosDir>/<demo>/libs for every visible demo plus
// testsLibs, sorted by full path.
func LibraryDirs(demosDir, testsLibs string) ([]string, error) {
	demos, err := workspace.ListVisibleDirs(demosDir)
	if err != nil {
		return nil, fmt.Errorf("discovering demos: %w", err)
	}

	dirs := make([]string, 0, len(demos)+1)
	for _, demo := range demos {
		dirs = append(dirs, filepath.Join(demosDir, demo, workspace.LibsDir))
	}
	dirs = append(dirs, testsLibs)
	sort.Strings(dirs)
	return dirs, nil
}

// Syncer copies build outputs from BinDir into library directories.
type Syncer struct {
	BinDir string
	// Out receives the missing-artifact warnings; defaults to os.Stdout.
	Out    io.Writer
	Logger *log.Logger
}

// Sync refreshes every artifact listed in dirs, in the given order. Missing
// build outputs are warned about and skipped; any other filesystem error
// stops the sync and is returned.
func (s *Syncer) Sync(dirs []string) (*Report, error) {
	out := s.Out
	if out == nil {
		out = os.Stdout
	}
	logger := s.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	report := &Report{}
	for _, dir := range dirs {
		libs, err := workspace.ListVisible(dir)
		if err != nil {
			return report, err
		}

		for _, lib := range libs {
			src := filepath.Join(s.BinDir, lib)
			dst := filepath.Join(dir, lib)

			if _, err := os.Stat(src); err != nil {
				if !errors.Is(err, fs.ErrNotExist) {
					return report, fmt.Errorf("checking %s: %w", src, err)
				}
				fmt.Fprintf(out, "WARNING: %s does not exist\n", lib)
				report.Missing = append(report.Missing, lib)
				continue
			}

			if err := workspace.CopyFile(src, dst); err != nil {
				return report, fmt.Errorf("copying %s to %s: %w", src, dst, err)
			}
			logger.Debug("copied artifact", "src", src, "dst", dst)
			report.Copied = append(report.Copied, dst)
		}
	}
	return report, nil
}
