// Package cli defines the Cobra command tree for the lfa CLI. Each file in
// this package registers one top-level command (demos, libs, sdk, etc.) with
// the root command. Commands delegate to internal packages for the work and
// only handle arguments, output formatting and wiring.
package cli
