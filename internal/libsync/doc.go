// Package libsync refreshes the library archives checked into each demo's
// libs/ directory (and tests/libs/) from the current build output in bin/.
// Only files already present in a library directory are refreshed; build
// outputs nobody references are left alone.
package libsync
