package release

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/Masterminds/semver/v3"
)

// ValidateVersion rejects versions that cannot name a release directory:
// empty strings and strings holding path separators or whitespace.
func ValidateVersion(version string) error {
	if version == "" {
		return fmt.Errorf("release version is empty")
	}
	if version == "." || version == ".." {
		return fmt.Errorf("release version %q is not a valid name", version)
	}
	if strings.ContainsAny(version, `/\`) {
		return fmt.Errorf("release version %q contains a path separator", version)
	}
	if strings.IndexFunc(version, unicode.IsSpace) >= 0 {
		return fmt.Errorf("release version %q contains whitespace", version)
	}
	return nil
}

// IsSemver reports whether version parses as a semantic version. A leading
// "v" is tolerated.
func IsSemver(version string) bool {
	_, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	return err == nil
}
