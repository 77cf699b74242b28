package release

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/libs-for-android/lfa/internal/workspace"
)

// Placeholder directories recreated in every shipped demo so the demo keeps
// the layout its build expects.
var demoPlaceholders = []string{workspace.BinDir, "gen"}

// PruneDemos deletes every entry of demosDir not named in include and gives
// each included demo empty bin/ and gen/ directories.
func PruneDemos(demosDir string, include []string) error {
	entries, err := os.ReadDir(demosDir)
	if err != nil {
		return fmt.Errorf("%s: listing %s: %w", StepDemos, demosDir, err)
	}

	for _, entry := range entries {
		path := filepath.Join(demosDir, entry.Name())
		if !slices.Contains(include, entry.Name()) {
			if err := os.RemoveAll(path); err != nil {
				return fmt.Errorf("%s: removing %s: %w", StepDemos, path, err)
			}
			continue
		}

		for _, sub := range demoPlaceholders {
			dir := filepath.Join(path, sub)
			if err := os.RemoveAll(dir); err != nil {
				return fmt.Errorf("%s: clearing %s: %w", StepDemos, dir, err)
			}
			if err := os.Mkdir(dir, 0755); err != nil {
				return fmt.Errorf("%s: creating %s: %w", StepDemos, dir, err)
			}
		}
	}
	return nil
}
