// Package config manages lfa settings. Values are layered, lowest first:
// built-in defaults, the user file ~/.lfa/config.yaml, the project file
// <root>/tools/lfa.yaml, LFA_* environment variables and command-line flags.
// Config files are validated against an embedded JSON schema.
package config
