//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// fakeSVN exports by copying the tree named by LFA_TEST_FIXTURE.
const fakeSVN = `#!/bin/sh
# svn export <url> <dir>
[ "$1" = "export" ] || exit 1
cp -R "$LFA_TEST_FIXTURE" "$3"
`

// fakeAnt produces build output next to the build file and exits with
// LFA_TEST_ANT_STATUS.
const fakeAnt = `#!/bin/sh
# ant -f <build.xml> <targets...>
root=$(dirname "$2")
mkdir -p "$root/bin/classes" "$root/docs"
echo class > "$root/bin/classes/Lib.class"
echo jar > "$root/bin/libs-for-android.jar"
echo doc > "$root/docs/index.html"
exit ${LFA_TEST_ANT_STATUS:-0}
`

// setupFakeTools puts svn and ant stand-ins first on PATH.
func setupFakeTools(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake tools are POSIX shell scripts")
	}

	bin := t.TempDir()
	writeExecutable(t, filepath.Join(bin, "svn"), fakeSVN)
	writeExecutable(t, filepath.Join(bin, "ant"), fakeAnt)
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))
}

// setupFixture writes the source tree the fake svn exports.
func setupFixture(t *testing.T) string {
	t.Helper()
	fixture := filepath.Join(t.TempDir(), "trunk")
	for path, content := range map[string]string{
		"build.xml":                      "<project/>",
		"src/Lib.java":                   "class Lib {}",
		"demos/atom/AndroidManifest.xml": "<manifest/>",
		"demos/rss/AndroidManifest.xml":  "<manifest/>",
		"demos/html/AndroidManifest.xml": "<manifest/>",
		"tests/AndroidManifest.xml":      "<manifest/>",
		"tools/lfa/main.go":              "package main",
		"tools/README":                   "tools",
	} {
		writeFile(t, filepath.Join(fixture, filepath.FromSlash(path)), content)
	}
	t.Setenv("LFA_TEST_FIXTURE", fixture)
	return fixture
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func writeExecutable(t *testing.T, path, content string) {
	t.Helper()
	writeFile(t, path, content)
	if err := os.Chmod(path, 0755); err != nil {
		t.Fatalf("chmod %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertSingleTopLevel fails unless every entry name starts with top + "/".
func assertSingleTopLevel(t *testing.T, archive string, names []string, top string) {
	t.Helper()
	if len(names) == 0 {
		t.Errorf("%s is empty", archive)
	}
	for _, name := range names {
		name = strings.TrimPrefix(name, "./")
		if name != top && name != top+"/" && !strings.HasPrefix(name, top+"/") {
			t.Errorf("%s: entry %q is outside %s/", archive, name, top)
		}
	}
}
