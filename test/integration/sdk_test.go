//go:build integration

package integration_test

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/libs-for-android/lfa/internal/release"
	"github.com/libs-for-android/lfa/internal/shell"
	"github.com/libs-for-android/lfa/internal/workspace"
)

func requireArchivers(t *testing.T) {
	t.Helper()
	for _, tool := range []string{"tar", "zip"} {
		if _, err := exec.LookPath(tool); err != nil {
			t.Skipf("%s not available, skipping", tool)
		}
	}
}

func newPackager(t *testing.T) *release.Packager {
	t.Helper()
	ws := workspace.Layout{Root: t.TempDir()}
	writeFile(t, ws.LocalProperties(), "sdk.dir=/opt/android-sdk\n")

	var discard bytes.Buffer
	return &release.Packager{
		Shell:     &shell.VirtualRunner{Streams: shell.Streams{Stdout: &discard, Stderr: &discard}},
		Workspace: ws,
		Options:   release.DefaultOptions(),
	}
}

func tarNames(t *testing.T, path string) []string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening %s: %v", path, err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		t.Fatalf("creating gzip reader: %v", err)
	}
	defer gz.Close()

	var names []string
	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("reading tar entry: %v", err)
		}
		names = append(names, hdr.Name)
	}
	return names
}

func zipNames(t *testing.T, path string) []string {
	t.Helper()
	r, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("opening %s: %v", path, err)
	}
	defer r.Close()

	var names []string
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	return names
}

func TestSDKRelease(t *testing.T) {
	requireArchivers(t)
	setupFakeTools(t)
	setupFixture(t)

	out := t.TempDir()
	rel, err := newPackager(t).Package(context.Background(), "1.0.0", out)
	if err != nil {
		t.Fatalf("Package: %v", err)
	}

	root := filepath.Join(out, "libs-for-android-1.0.0")
	assertFileExists(t, filepath.Join(root, "bin", "libs-for-android.jar"))
	assertFileExists(t, filepath.Join(root, "docs", "index.html"))
	assertFileNotExists(t, filepath.Join(root, "bin", "classes"))
	assertFileNotExists(t, filepath.Join(root, "local.properties"))
	assertFileExists(t, filepath.Join(root, "demos", "atom", "bin"))
	assertFileExists(t, filepath.Join(root, "demos", "rss", "gen"))
	assertFileNotExists(t, filepath.Join(root, "demos", "html"))
	assertFileNotExists(t, filepath.Join(root, "tests"))
	assertFileNotExists(t, filepath.Join(root, "tools", "lfa"))
	assertFileExists(t, filepath.Join(root, "tools", "README"))

	if len(rel.Archives) != 2 {
		t.Fatalf("Archives = %v", rel.Archives)
	}
	assertSingleTopLevel(t, rel.Archives[0], tarNames(t, rel.Archives[0]), "libs-for-android-1.0.0")
	assertSingleTopLevel(t, rel.Archives[1], zipNames(t, rel.Archives[1]), "libs-for-android-1.0.0")
}

func TestSDKBuildFailure(t *testing.T) {
	setupFakeTools(t)
	setupFixture(t)
	t.Setenv("LFA_TEST_ANT_STATUS", "2")

	out := t.TempDir()
	_, err := newPackager(t).Package(context.Background(), "1.0.0", out)

	var cmdErr *release.CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("expected *release.CommandError, got %v", err)
	}
	if cmdErr.Status != 2 {
		t.Errorf("Status = %d, want 2", cmdErr.Status)
	}
	assertFileNotExists(t, filepath.Join(out, "libs-for-android-1.0.0.tar.gz"))
	assertFileNotExists(t, filepath.Join(out, "libs-for-android-1.0.0.zip"))
}
