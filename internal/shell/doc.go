// Package shell defines the CommandRunner interface used for every external
// process the maintenance tools start, and provides two implementations: an
// in-process POSIX shell (VirtualRunner) and the host shell (NativeRunner).
// A non-zero exit status is reported as a status, not as an error.
package shell
