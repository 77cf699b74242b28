// Package release builds the SDK archives for a libs-for-android release.
//
// A release is produced from a fresh export of the source repository: the
// export is built, stripped of intermediate output, demos and tests, and
// finally compressed into a .tar.gz and a .zip archive that each contain the
// release directory as their only top-level entry. Every external step runs
// through a shell.CommandRunner and any non-zero exit status aborts the
// release with a *CommandError.
package release
